package family

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/fisa/catalog"
	"github.com/ezrec/fisa/operator"
)

func build(t *testing.T) *operator.Registry {
	b := &operator.Builder{}
	Register(b)

	reg, err := b.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	return reg
}

func TestOpcode(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("NOP", OP_NOP.String())
	assert.Equal("PUSH", OP_PUSH.String())
	assert.Equal("HALT", OP_HALT.String())
	assert.Equal("Opcode(27)", Opcode(27).String())

	for n, fam := range slices.Collect(All()) {
		assert.Equal(Opcode(n), fam.Opcode, fam.Mnemonic())
	}

	fam, ok := Get(OP_EX)
	assert.True(ok)
	assert.Equal("EX", fam.Mnemonic())

	_, ok = Get(Opcode(200))
	assert.False(ok)
}

func TestRegister(t *testing.T) {
	assert := assert.New(t)

	reg := build(t)

	assert.Equal(27, len(slices.Collect(reg.Primaries())))
	assert.Equal(2025, len(slices.Collect(reg.All())))

	aliases := 0
	for key := range reg.Names() {
		if reg.IsAlias(key) {
			aliases++
		}
	}
	assert.Equal(66, aliases)

	assert.NoError(reg.Verify())
}

func TestFamilySizes(t *testing.T) {
	assert := assert.New(t)

	reg := build(t)

	table := [...]struct {
		opcode Opcode
		count  int
	}{
		{OP_NOP, 0},
		{OP_LD, 235},
		{OP_ADD, 226},
		{OP_CP, 226},
		{OP_AND, 188},
		{OP_INC, 9},
		{OP_SL, 8},
		{OP_PUSH, 9},
		{OP_POP, 8},
		{OP_JP, 4},
		{OP_RET, 0},
		{OP_EX, 5},
		{OP_TAN, 4},
		{OP_HALT, 0},
	}

	for _, entry := range table {
		assert.Equal(entry.count, len(slices.Collect(reg.Secondaries(uint8(entry.opcode)))), entry.opcode.String())
	}
}

func TestFormatOf(t *testing.T) {
	assert := assert.New(t)

	reg := build(t)

	table := [...]struct {
		key    string
		layout string
	}{
		{"ADD r,nnn", "oooooooo uuuAAAAA BBBBBBBB"},
		{"ADD r,n", "oooooooo uuuAAAAA BBBBBBBB"},
		{"LD rr,nnnn", "oooooooo uuuAAAAA BBBBBBBB BBBBBBBB"},
		{"LD rr,(rrr,nnn)", "oooooooo uuuuuuAA AAABBBBB BBBBBBBB BBBBBBBB BBBBBBBB"},
		{"LD fr,(nnn)", "oooooooo uuuuAAAA BBBBBBBB BBBBBBBB BBBBBBBB"},
		{"INC r", "oooAAAAA"},
		{"DEC fr", "ooo0AAAA"},
		{"INC (nnn,rrr)", "ooo1uuuu AAAAAAAA AAAAAAAA AAAAAAAA uuuAAAAA"},
		{"SL rr,n", "oooAAAAA BBBBBBBB"},
		{"RR r,nnn", "oooAAAAA BBBBBBBB"},
		{"JP nnn", "oouuuuuu AAAAAAAA AAAAAAAA AAAAAAAA"},
		{"CALL (rrr)", "ooAAAAAu"},
		{"EX rrrr,rrrr", "oo0AAAAA BBBBBuuu"},
		{"EX fr,fr", "oo1AAAAB BBBuuuuu"},
		{"SIN fr,nnnn", "ooAAAAuu BBBBBBBB BBBBBBBB BBBBBBBB BBBBBBBB"},
		{"PUSH nnn", "oooooooo AAAAAAAA AAAAAAAA AAAAAAAA"},
	}

	for _, entry := range table {
		l, ok := reg.FormatOf(entry.key)
		if assert.True(ok, entry.key) {
			assert.Equal(entry.layout, l.String(), entry.key)
		}
	}

	for _, key := range []string{
		"AND fr,fr",
		"ADD (nnn),(rrr)",
		"LD rr,n",
		"POP nnn",
		"PUSH (nnn,rrr)",
		"INC r,r",
		"NOP r",
		"SQR r",
	} {
		_, ok := reg.FormatOf(key)
		assert.False(ok, key)
	}
}

func TestFullByteSubcodes(t *testing.T) {
	assert := assert.New(t)

	reg := build(t)

	for fam := range All() {
		if len(fam.Modes) == 0 {
			continue
		}
		for sec := range reg.Secondaries(uint8(fam.Opcode)) {
			assert.Equal(uint8(sec.Mode), sec.Subcode.Code, sec.Key())
			assert.Equal(8, sec.Subcode.Bits(), sec.Key())

			mode, ok := catalog.Get(sec.Mode)
			if assert.True(ok) {
				assert.Equal(mode.Layout, sec.Layout.String(), sec.Key())
			}
		}
	}
}

func TestDecodeTotal(t *testing.T) {
	assert := assert.New(t)

	reg := build(t)

	for fam := range All() {
		if len(fam.Matrix) == 0 {
			continue
		}
		// Every sub-opcode of a packed family is in use.
		for raw := range 256 {
			_, ok := reg.DecodeSecondary(uint8(fam.Opcode), uint8(raw))
			assert.True(ok, "%v %08b", fam.Mnemonic(), raw)
		}
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	assert := assert.New(t)

	reg := build(t)

	for sec := range reg.All() {
		values := make([]uint64, sec.Layout.Operands())
		for n, width := range sec.Layout.Widths() {
			// Highest value that fits the field.
			values[n] = (uint64(1) << width) - 1
		}

		data, err := sec.Encode(values...)
		if !assert.NoError(err, sec.Key()) {
			continue
		}
		assert.Equal(sec.Layout.Bytes(), len(data), sec.Key())

		got, ok := reg.DecodeSecondary(sec.Parent, data[0])
		if !assert.True(ok, sec.Key()) {
			continue
		}
		assert.Equal(sec.Key(), got.Key())

		decoded, err := got.Decode(data)
		assert.NoError(err, sec.Key())
		assert.Equal(values, decoded, sec.Key())
	}
}

func TestDescribe(t *testing.T) {
	assert := assert.New(t)

	reg := build(t)

	table := [...]struct {
		key  string
		text string
	}{
		{"LD r,(nnn)", "Copies the memory at (nnn) into an 8-bit register."},
		{"ADD rr,nn", "Adds a 16-bit immediate to a 16-bit register group."},
		{"PUSH fr", "Pushes a float register onto the stack."},
		{"SL rrr,r", "Shifts a 24-bit register group left by an 8-bit register bits."},
	}

	for _, entry := range table {
		sec, ok := reg.Lookup(entry.key)
		if !assert.True(ok, entry.key) {
			continue
		}
		p, ok := reg.PrimaryByOpcode(sec.Parent)
		if assert.True(ok) {
			assert.Equal(entry.text, p.Describe(sec))
		}
	}

	p, _ := reg.Primary("HALT")
	assert.Equal("Stops the processor.", p.Describe(nil))
}
