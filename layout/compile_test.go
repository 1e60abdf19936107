package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/fisa/shape"
)

func TestCompile(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		prefix string
		sig    string
		layout string
	}){
		{"oooooooo", "r,nnn", "oooooooo uuuAAAAA BBBBBBBB"},
		{"oooooooo", "", "oooooooo"},
		{"oooooooo", "r,r", "oooooooo uuuuuuAA AAABBBBB"},
		{"oooooooo", "rrrr,fr", "oooooooo uuuuuuuA AAAABBBB"},
		{"oooooooo", "fr,nnnn", "oooooooo uuuuAAAA BBBBBBBB BBBBBBBB BBBBBBBB BBBBBBBB"},
		{"oooooooo", "rr,(rrr,nnn)", "oooooooo uuuuuuAA AAABBBBB BBBBBBBB BBBBBBBB BBBBBBBB"},
		{"oooooooo", "(nnn),nn", "oooooooo AAAAAAAA AAAAAAAA AAAAAAAA BBBBBBBB BBBBBBBB"},
		{"oooooooo", "(rrr,nnn,r)", "oooooooo uuuAAAAA AAAAAAAA AAAAAAAA AAAAAAAA uuuAAAAA"},
		{"ooo", "r", "oooAAAAA"},
		{"ooo", "(nnn)", "ooouuuuu AAAAAAAA AAAAAAAA AAAAAAAA"},
		{"ooo", "r,n", "oooAAAAA BBBBBBBB"},
		{"ooo", "r,r", "oooAAAAA BBBBBuuu"},
		{"ooo0", "fr", "ooo0AAAA"},
		{"ooo1", "(nnn,rrr)", "ooo1uuuu AAAAAAAA AAAAAAAA AAAAAAAA uuuAAAAA"},
		{"oo", "rrr", "ooAAAAAu"},
		{"oo", "r,r", "ooAAAAAB BBBBuuuu"},
		{"oo1", "fr,fr", "oo1AAAAB BBBuuuuu"},
		{"oo", "fr,nnnn", "ooAAAAuu BBBBBBBB BBBBBBBB BBBBBBBB BBBBBBBB"},
		{"oo", "", "oouuuuuu"},
	}

	for _, entry := range table {
		l, err := Compile(entry.prefix, shape.MustParse(entry.sig))
		assert.NoError(err, entry.sig)
		assert.Equal(entry.layout, l.String(), entry.prefix+" "+entry.sig)

		// Compiled layouts always parse back.
		parsed, err := Parse(l.String())
		assert.NoError(err, entry.sig)
		assert.True(parsed.Equal(l), entry.sig)
		assert.Equal(entry.prefix, l.Prefix(), entry.sig)
	}
}

func TestCompileWidths(t *testing.T) {
	assert := assert.New(t)

	for _, sig := range []string{"r,nnn", "(nnn,rrr,nnn),(rrr,nnn)", "fr,(rrr,r)", "rrrr,rr"} {
		sh := shape.MustParse(sig)
		l := MustCompile("oooooooo", sh)
		assert.Equal(0, len(l.bits)%8, sig)

		widths := l.Widths()
		if assert.Equal(len(sh), len(widths), sig) {
			for n, op := range sh {
				assert.Equal(op.Bits(), widths[n], sig)
			}
		}
	}
}

func TestCompileErrors(t *testing.T) {
	assert := assert.New(t)

	sh := shape.MustParse("r")
	for _, prefix := range []string{"", "ooooooooo", "o1o", "oAu", "uooo"} {
		_, err := Compile(prefix, sh)
		assert.Equal(ErrLayoutPrefix(prefix), err, prefix)
	}

	assert.Panics(func() { MustCompile("", sh) })

	wide := shape.MustParse("r,(nnnn,nnnn,nnnn)")
	_, err := Compile("oooooooo", wide)
	assert.Equal(ErrLayoutWidth{Operand: "(nnnn,nnnn,nnnn)", Bits: 96}, err)

	_, err = Compile("oooooooo", shape.MustParse("(nnnn,nnnn)"))
	assert.NoError(err)
}
