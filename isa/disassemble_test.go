package isa

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/fisa/register"
	"github.com/ezrec/fisa/shape"
)

func TestRegistry(t *testing.T) {
	assert := assert.New(t)

	reg := Registry()
	assert.NotNil(reg)
	assert.NoError(reg.Verify())

	l, ok := reg.FormatOf("ADD r,nnn")
	assert.True(ok)
	assert.Equal("oooooooo uuuAAAAA BBBBBBBB", l.String())

	assert.Equal(uint8(0), reg.PrimaryOpcodeOf("NOSUCHOP"))
	assert.Equal(uint8(2), reg.PrimaryOpcodeOf("ADD"))
}

func TestDisassemble(t *testing.T) {
	assert := assert.New(t)

	table := [...]struct {
		code []byte
		text string
		key  string
	}{
		{[]byte{0x00, 0xff}, "NOP", "NOP"},
		{[]byte{0x01, 0x00, 0x00, 0x05}, "LD A,0x05", "LD r,n"},
		{[]byte{0x01, 0x01, 0x19, 0x12, 0x34}, "LD ZA,0x1234", "LD rr,nn"},
		{[]byte{0x02, 0x05, 0x00, 0x22}, "ADD B,C", "ADD r,r"},
		{[]byte{0x06, 0b111_0_0011}, "INC F3", "INC fr"},
		{[]byte{0x07, 0b111_1_0000, 0x00, 0x01, 0x00, 23}, "DEC (0x000100,XYZ)", "DEC (nnn,rrr)"},
		{[]byte{0x0c, 0b111_00000, 0b00001_000}, "SR ABCD,B", "SR rrrr,r"},
		{[]byte{0x12, 0x00, 0x12, 0x34, 0x56, 0x99}, "JP 0x123456", "JP nnn"},
		{[]byte{0x15, 0b11_1_0001_0, 0b010_00000}, "EX F1,F2", "EX fr,fr"},
		{[]byte{0x10, 0xf6, 0x01, 0x00, 0x00, 0x10}, "PUSH (BCD,0x000010)", "PUSH (rrr,nnn)"},
	}

	for _, entry := range table {
		ins, err := Disassemble(entry.code)
		if !assert.NoError(err, entry.text) {
			continue
		}
		assert.Equal(entry.text, ins.String())
		assert.Equal(entry.key, ins.Key())
		assert.Equal(entry.code[:len(ins.Bytes)], ins.Bytes)
	}

	ins, err := Disassemble([]byte{0x02, 0x05, 0x00, 0x22})
	assert.NoError(err)
	assert.Equal("Adds an 8-bit register to an 8-bit register.", ins.Describe())
}

func TestDisassembleErrors(t *testing.T) {
	assert := assert.New(t)

	table := [...]struct {
		code  []byte
		check func(err error) bool
	}{
		{[]byte{}, func(err error) bool {
			var target ErrShort
			return errors.As(err, &target) && target.Want == 1
		}},
		{[]byte{0xff}, func(err error) bool {
			var target ErrOpcodeUnknown
			return errors.As(err, &target) && uint8(target) == 0xff
		}},
		{[]byte{0x01}, func(err error) bool {
			var target ErrShort
			return errors.As(err, &target) && target.Want == 2
		}},
		{[]byte{0x01, 0x00, 0x00}, func(err error) bool {
			var target ErrShort
			return errors.As(err, &target) && target.Want == 4 && target.Got == 3
		}},
		{[]byte{0x01, 0xf8}, func(err error) bool {
			var target ErrSubcodeUnknown
			return errors.As(err, &target) && target.Mnemonic == "LD"
		}},
		{[]byte{0x01, 0x00, 0x1f, 0x00}, func(err error) bool {
			var target ErrRegisterIndex
			return errors.As(err, &target) && uint64(target) == 31
		}},
	}

	for _, entry := range table {
		_, err := Disassemble(entry.code)
		if assert.Error(err, "% x", entry.code) {
			assert.True(entry.check(err), "% x: %v", entry.code, err)
		}
	}
}

func TestDisassembleAll(t *testing.T) {
	assert := assert.New(t)

	code := []byte{
		0x01, 0x00, 0x00, 0x03,
		0x07, 0x00,
		0x1a,
	}

	prog, err := DisassembleAll(code)
	assert.NoError(err)
	if assert.Equal(3, len(prog.Instructions)) {
		assert.Equal(0, prog.Instructions[0].Offset)
		assert.Equal(4, prog.Instructions[1].Offset)
		assert.Equal(6, prog.Instructions[2].Offset)
		assert.Equal("HALT", prog.Instructions[2].String())
	}
	assert.Equal(code, prog.Binary())

	_, err = DisassembleAll(append(code, 0xfe))
	var offset ErrOffset
	if assert.ErrorAs(err, &offset) {
		assert.Equal(7, offset.Offset)
		assert.ErrorIs(err, ErrOpcodeUnknown(0xfe))
	}
}

// sampleField returns a legal value for an operand field.
func sampleField(op shape.Operand, seed int) (value uint64) {
	switch op.Kind {
	case shape.KIND_REGISTER:
		value = uint64(seed % register.COUNT)
	case shape.KIND_FLOAT:
		value = uint64(seed % register.FLOAT_COUNT)
	case shape.KIND_IMMEDIATE:
		value = uint64(0x5a3c96e1+seed) & ((uint64(1) << op.Bits()) - 1)
	case shape.KIND_INDIRECT:
		for n, part := range op.Parts() {
			value = (value << part.Bits()) | sampleField(part, seed+n+1)
		}
	}

	return
}

func TestRoundTrip(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	count := 0
	for sec := range Registry().All() {
		count++

		values := make([]uint64, len(sec.Shape))
		for n, op := range sec.Shape {
			values[n] = sampleField(op, count+7*n)
		}

		body, err := sec.Encode(values...)
		if !assert.NoError(err, sec.Key()) {
			continue
		}
		code := append([]byte{sec.Parent}, body...)

		ins, err := Disassemble(code)
		if !assert.NoError(err, sec.Key()) {
			continue
		}
		assert.Equal(sec, ins.Secondary, sec.Key())

		data, err := asm.Encode(ins.String())
		if assert.NoError(err, ins.String()) {
			assert.Equal(code, data, ins.String())
		}
	}

	assert.Equal(2025, count)
}

func TestConcurrentReaders(t *testing.T) {
	assert := assert.New(t)

	lines := []string{"LD A,5", "ADD B,C", "INC F3", "JP 0x123456", "EX F1,F2"}

	var wg sync.WaitGroup
	results := make([][]byte, 8*len(lines))
	for n := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			asm := &Assembler{}
			data, err := asm.Encode(lines[n%len(lines)])
			if err == nil {
				results[n] = data
			}
		}()
	}
	wg.Wait()

	for n, data := range results {
		assert.Equal(results[n%len(lines)], data, lines[n%len(lines)])
		assert.NotEmpty(data)
	}
}

func FuzzDisassemble(f *testing.F) {
	f.Add([]byte{0x00})
	f.Add([]byte{0x01, 0x00, 0x00, 0x05})
	f.Add([]byte{0x06, 0xf0, 0x12, 0x34, 0x56, 0x17})
	f.Add([]byte{0x15, 0xe2, 0x40})
	f.Add([]byte{0x10, 0xf6, 0x01, 0x00, 0x00, 0x10})

	f.Fuzz(func(t *testing.T, code []byte) {
		assert := assert.New(t)

		ins, err := Disassemble(code)
		if err != nil {
			return
		}

		asm := &Assembler{}
		data, err := asm.Encode(ins.String())
		if !assert.NoError(err, ins.String()) {
			return
		}
		assert.Equal(len(ins.Bytes), len(data), ins.String())

		again, err := Disassemble(data)
		if assert.NoError(err, ins.String()) {
			assert.Equal(ins.String(), again.String())
			assert.Equal(ins.Key(), again.Key())
		}
	})
}
