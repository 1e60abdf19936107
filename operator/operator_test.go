package operator

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/fisa/layout"
)

func TestSubcode(t *testing.T) {
	assert := assert.New(t)

	table := [...]struct {
		subcode Subcode
		raw     uint8
		match   bool
		text    string
	}{
		{Subcode{Code: 5, CodeBits: 8}, 5, true, "00000101"},
		{Subcode{Code: 5, CodeBits: 8}, 6, false, "00000101"},
		{Subcode{Code: 3, CodeBits: 3}, 0b011_10101, true, "011"},
		{Subcode{Code: 3, CodeBits: 3}, 0b111_10101, false, "011"},
		{Subcode{Code: 7, CodeBits: 3, Literal: 0, LiteralBits: 1}, 0b111_0_1010, true, "111.0"},
		{Subcode{Code: 7, CodeBits: 3, Literal: 0, LiteralBits: 1}, 0b111_1_1010, false, "111.0"},
		{Subcode{Code: 7, CodeBits: 3, Literal: 1, LiteralBits: 1}, 0b111_1_0000, true, "111.1"},
		{Subcode{Code: 3, CodeBits: 2, Literal: 1, LiteralBits: 1}, 0b11_1_00000, true, "11.1"},
	}

	for _, entry := range table {
		assert.Equal(entry.match, entry.subcode.Matches(entry.raw), "%v %08b", entry.subcode, entry.raw)
		assert.Equal(entry.text, entry.subcode.String())
	}

	short := Subcode{Code: 7, CodeBits: 3}
	long := Subcode{Code: 7, CodeBits: 3, Literal: 1, LiteralBits: 1}
	other := Subcode{Code: 6, CodeBits: 3}
	assert.True(short.Overlaps(long))
	assert.True(long.Overlaps(short))
	assert.False(other.Overlaps(long))
	assert.Equal(4, long.Bits())
	assert.Equal(uint8(0b1111), long.Prefix())

	secs := func(subcodes ...Subcode) (list []*Secondary) {
		for _, sc := range subcodes {
			list = append(list, &Secondary{Subcode: sc})
		}
		return
	}
	assert.False(overlapping(secs(short, other)))
	assert.True(overlapping(secs(other, short, long)))
	assert.False(overlapping(secs(long)))
}

func TestKey(t *testing.T) {
	assert := assert.New(t)

	table := [...]struct {
		key      string
		mnemonic string
		sig      string
		joined   string
	}{
		{"ADD r,nnn", "ADD", "r,nnn", "ADD r,nnn"},
		{"ld rr,(rrr,nnn)", "LD", "rr,(rrr,nnn)", "LD rr,(rrr,nnn)"},
		{"NOP", "NOP", "", "NOP"},
	}

	for _, entry := range table {
		mnemonic, sig, err := SplitKey(entry.key)
		assert.NoError(err, entry.key)
		assert.Equal(entry.mnemonic, mnemonic)
		assert.Equal(entry.sig, sig)
		assert.Equal(entry.joined, Key(mnemonic, sig))
	}

	_, _, err := SplitKey("  ")
	assert.ErrorIs(err, ErrMnemonicEmpty)

	_, _, err = SplitKey("ADD r,q")
	assert.Error(err)
}

// sample builds a small registry with one full byte family and one packed family.
func sample() *Builder {
	b := &Builder{}

	b.Primary("NOP", 0, "No operation", "Does nothing.")
	b.Primary("ADD", 2, "Add", "Adds %[2]v to %[1]v.")
	b.Primary("LD", 1, "Load", "Loads %[1]v from %[2]v.")
	b.Primary("INC", 6, "Increment", "Adds one to %[1]v.")

	b.Secondary("ADD r,n", 2, 0, 0, "oooooooo uuuAAAAA BBBBBBBB")
	b.Secondary("ADD r,r", 2, 5, 5, "oooooooo uuuuuuAA AAABBBBB")
	b.Alias("ADD r,nnn", "ADD r,n")

	// Same addressing mode in another family.
	b.Secondary("LD r,r", 1, 5, 5, "oooooooo uuuuuuAA AAABBBBB")

	b.Secondary("INC r", 6, 0, 238, "oooAAAAA")
	b.Secondary("INC fr", 6, 7, 242, "ooo0AAAA")
	b.Secondary("INC (nnn,rrr)", 6, 7, 247, "ooo1uuuu AAAAAAAA AAAAAAAA AAAAAAAA uuuAAAAA")

	return b
}

func TestBuild(t *testing.T) {
	assert := assert.New(t)

	reg, err := sample().Build()
	assert.NoError(err)
	if !assert.NotNil(reg) {
		return
	}
	assert.NoError(reg.Verify())

	opcode, ok := reg.Opcode("add")
	assert.True(ok)
	assert.Equal(uint8(2), opcode)
	assert.Equal(uint8(2), reg.PrimaryOpcodeOf("ADD"))

	_, ok = reg.Opcode("NOSUCHOP")
	assert.False(ok)
	assert.Equal(OPCODE_NOP, reg.PrimaryOpcodeOf("NOSUCHOP"))

	p, ok := reg.PrimaryByOpcode(6)
	assert.True(ok)
	assert.Equal("INC", p.Mnemonic)
	_, ok = reg.PrimaryByOpcode(99)
	assert.False(ok)

	l, ok := reg.FormatOf("ADD r,nnn")
	assert.True(ok)
	assert.Equal("oooooooo uuuAAAAA BBBBBBBB", l.String())
	assert.True(reg.IsAlias("add r,nnn"))
	assert.False(reg.IsAlias("ADD r,n"))

	sec, ok := reg.Lookup("ADD r,nnn")
	assert.True(ok)
	assert.Equal("ADD r,n", sec.Key())

	_, ok = reg.FormatOf("ADD (nnn),r")
	assert.False(ok)

	add, _ := reg.Lookup("ADD r,r")
	ld, _ := reg.Lookup("LD r,r")
	assert.Equal(add.Mode, ld.Mode)
	assert.NotEqual(add.Parent, ld.Parent)

	keys := []string{}
	for key := range reg.Names() {
		keys = append(keys, key)
	}
	assert.Equal([]string{"ADD r,n", "ADD r,r", "LD r,r", "INC r", "INC fr", "INC (nnn,rrr)", "ADD r,nnn"}, keys)

	assert.Equal(3, len(slices.Collect(reg.Secondaries(6))))
	assert.Equal(4, len(slices.Collect(reg.Primaries())))
	assert.Equal(6, len(slices.Collect(reg.All())))
}

func TestDecodeSecondary(t *testing.T) {
	assert := assert.New(t)

	reg, err := sample().Build()
	if !assert.NoError(err) {
		return
	}

	table := [...]struct {
		parent uint8
		raw    uint8
		key    string
	}{
		{2, 0x00, "ADD r,n"},
		{2, 0x05, "ADD r,r"},
		{2, 0x06, ""},
		{6, 0b000_00011, "INC r"},
		{6, 0b001_00011, ""},
		{6, 0b111_0_0011, "INC fr"},
		{6, 0b111_1_0000, "INC (nnn,rrr)"},
		{0, 0x00, ""},
		{99, 0x00, ""},
	}

	for _, entry := range table {
		sec, ok := reg.DecodeSecondary(entry.parent, entry.raw)
		if entry.key == "" {
			assert.False(ok, "%02x %08b", entry.parent, entry.raw)
			continue
		}
		if assert.True(ok, entry.key) {
			assert.Equal(entry.key, sec.Key())
		}
	}
}

func TestSecondaryEncode(t *testing.T) {
	assert := assert.New(t)

	reg, err := sample().Build()
	if !assert.NoError(err) {
		return
	}

	sec, _ := reg.Lookup("INC (nnn,rrr)")
	// The address and register of an indirect operand share one field.
	data, err := sec.Encode(0x123456<<5 | 3)
	assert.NoError(err)
	assert.Equal([]byte{0b111_1_0000, 0x12, 0x34, 0x56, 0x03}, data)

	got, ok := reg.DecodeSecondary(6, data[0])
	assert.True(ok)
	assert.Equal(sec, got)

	values, err := got.Decode(data)
	assert.NoError(err)
	assert.Equal([]uint64{0x123456<<5 | 3}, values)

	sec, _ = reg.Lookup("ADD r,r")
	data, err = sec.Encode(1, 2)
	assert.NoError(err)
	assert.Equal([]byte{0x05, 0b000000_00, 0b001_00010}, data)

	_, err = sec.Encode(32, 2)
	var overflow layout.ErrFieldOverflow
	assert.ErrorAs(err, &overflow)
}

func TestDescribe(t *testing.T) {
	assert := assert.New(t)

	reg, err := sample().Build()
	if !assert.NoError(err) {
		return
	}

	p, _ := reg.Primary("ADD")
	sec, _ := reg.Lookup("ADD r,r")
	assert.Equal("Adds an 8-bit register to an 8-bit register.", p.Describe(sec))

	p, _ = reg.Primary("NOP")
	assert.Equal("Does nothing.", p.Describe(nil))
}

func TestBuildErrors(t *testing.T) {
	assert := assert.New(t)

	table := [...]struct {
		name  string
		setup func(b *Builder)
		check func(err error) bool
	}{
		{"duplicate key", func(b *Builder) {
			b.Secondary("ADD r,r", 2, 5, 5, "oooooooo uuuuuuAA AAABBBBB")
		}, func(err error) bool {
			var target ErrDuplicateMnemonic
			return errors.As(err, &target) && string(target) == "ADD r,r"
		}},
		{"duplicate mnemonic", func(b *Builder) {
			b.Primary("ADD", 3, "Add", "")
		}, func(err error) bool {
			var target ErrDuplicateMnemonic
			return errors.As(err, &target)
		}},
		{"duplicate opcode", func(b *Builder) {
			b.Primary("SUB", 2, "Subtract", "")
		}, func(err error) bool {
			var target ErrDuplicateOpcode
			return errors.As(err, &target) && target.Prior == "ADD"
		}},
		{"unknown parent", func(b *Builder) {
			b.Secondary("SUB r,r", 3, 5, 5, "oooooooo uuuuuuAA AAABBBBB")
		}, func(err error) bool {
			var target ErrUnknownParent
			return errors.As(err, &target)
		}},
		{"parent mismatch", func(b *Builder) {
			b.Secondary("LD r,n", 2, 0, 0, "oooooooo uuuAAAAA BBBBBBBB")
		}, func(err error) bool {
			var target ErrParentMismatch
			return errors.As(err, &target) && target.Parent == "ADD"
		}},
		{"mode mismatch", func(b *Builder) {
			b.Secondary("ADD r,rr", 2, 5, 5, "oooooooo uuuuuuAA AAABBBBB")
		}, func(err error) bool {
			var target ErrModeMismatch
			return errors.As(err, &target) && target.Want == "r,r"
		}},
		{"subcode overflow", func(b *Builder) {
			b.Secondary("INC rr", 6, 9, 239, "oooAAAAA")
		}, func(err error) bool {
			var target ErrSubcode
			return errors.As(err, &target)
		}},
		{"bad layout", func(b *Builder) {
			b.Secondary("INC rr", 6, 1, 239, "oooAAAA")
		}, func(err error) bool {
			var target ErrOperator
			return errors.As(err, &target) && target.Key == "INC rr"
		}},
		{"layout mismatch", func(b *Builder) {
			b.Secondary("ADD rr,rr", 2, 10, 10, "oooooooo AAAAABBB BBuuuuuu")
		}, func(err error) bool {
			var target ErrLayoutMismatch
			return errors.As(err, &target) && target.Compiled == "oooooooo uuuuuuAA AAABBBBB"
		}},
		{"ambiguous decode", func(b *Builder) {
			b.Secondary("INC rr", 6, 0, 239, "oooAAAAA")
		}, func(err error) bool {
			var target ErrAmbiguousDecode
			return errors.As(err, &target) && target.First == "INC r" && target.Second == "INC rr"
		}},
		{"literal ambiguity", func(b *Builder) {
			b.Secondary("INC rr", 6, 7, 239, "oooAAAAA")
		}, func(err error) bool {
			var target ErrAmbiguousDecode
			return errors.As(err, &target)
		}},
		{"unknown alias", func(b *Builder) {
			b.Alias("ADD rr,nnn", "ADD rr,nn")
		}, func(err error) bool {
			var target ErrUnknownAlias
			return errors.As(err, &target)
		}},
		{"alias layout", func(b *Builder) {
			b.Alias("ADD r,nn", "ADD r,r")
		}, func(err error) bool {
			var target ErrLayoutMismatch
			return errors.As(err, &target) && target.Key == "ADD r,nn"
		}},
	}

	for _, entry := range table {
		b := sample()
		entry.setup(b)
		reg, err := b.Build()
		assert.Nil(reg, entry.name)
		if !assert.Error(err, entry.name) {
			continue
		}
		var build *ErrBuild
		assert.ErrorAs(err, &build, entry.name)
		assert.True(entry.check(err), "%v: %v", entry.name, err)
	}
}

func TestBuildMnemonicCase(t *testing.T) {
	assert := assert.New(t)

	b := &Builder{}
	b.Primary("add", 2, "Add", "Adds %[2]v to %[1]v.")
	b.Secondary("add r,r", 2, 5, 5, "oooooooo uuuuuuAA AAABBBBB")
	reg, err := b.Build()
	if !assert.NoError(err) {
		return
	}

	opcode, ok := reg.Opcode("add")
	assert.True(ok)
	assert.Equal(uint8(2), opcode)

	p, ok := reg.Primary("Add")
	if assert.True(ok) {
		assert.Equal("ADD", p.Mnemonic)
	}

	sec, ok := reg.Lookup("ADD r,r")
	if assert.True(ok) {
		assert.Equal("ADD", sec.Mnemonic)
	}

	b = &Builder{}
	b.Primary("ADD", 2, "Add", "")
	b.Primary("add", 3, "Add", "")
	_, err = b.Build()
	var target ErrDuplicateMnemonic
	assert.ErrorAs(err, &target)
}

func TestBuildCollectsAll(t *testing.T) {
	assert := assert.New(t)

	b := sample()
	b.Secondary("ADD r,r", 2, 5, 5, "oooooooo uuuuuuAA AAABBBBB")
	b.Secondary("LD r,r", 1, 5, 5, "oooooooo uuuuuuAA AAABBBBB")
	b.Primary("INC", 7, "Increment", "")

	_, err := b.Build()
	var build *ErrBuild
	if assert.ErrorAs(err, &build) {
		assert.Equal(3, len(build.Errs))
		assert.Contains(err.Error(), "'ADD r,r' registered more than once")
		assert.Contains(err.Error(), "'LD r,r' registered more than once")
		assert.Contains(err.Error(), "'INC' registered more than once")
	}
}

func TestVerbose(t *testing.T) {
	assert := assert.New(t)

	b := sample()
	b.Verbose = true
	b.Primary("HALT", 26, "Halt", "Stops the processor.")
	reg, err := b.Build()
	assert.NoError(err)

	p, ok := reg.Primary("halt")
	assert.True(ok)
	assert.Equal("HALT", p.String())
}
