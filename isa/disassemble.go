package isa

import (
	"fmt"
	"strings"

	"github.com/ezrec/fisa/operator"
	"github.com/ezrec/fisa/register"
	"github.com/ezrec/fisa/shape"
)

// Instruction is a single decoded instruction.
type Instruction struct {
	Offset    int                 // Code offset of the first byte.
	LineNo    int                 // Source line, when assembled.
	Source    string              // Source text, when assembled.
	Bytes     []byte              // Encoded instruction.
	Primary   *operator.Primary   // Instruction family.
	Secondary *operator.Secondary // Operand form, nil if the family has none.
	Operands  []string            // Operand text.
}

// String returns the instruction as assembly text.
func (ins Instruction) String() string {
	if len(ins.Operands) == 0 {
		return ins.Primary.Mnemonic
	}

	return ins.Primary.Mnemonic + " " + strings.Join(ins.Operands, ",")
}

// Key returns the registry key of the instruction form.
func (ins Instruction) Key() string {
	if ins.Secondary == nil {
		return ins.Primary.Mnemonic
	}

	return ins.Secondary.Key()
}

// Describe returns the help text of the instruction form.
func (ins Instruction) Describe() string {
	return ins.Primary.Describe(ins.Secondary)
}

// formatOperand returns the text of an operand field.
func formatOperand(op shape.Operand, value uint64) (text string, err error) {
	switch op.Kind {
	case shape.KIND_REGISTER:
		if value >= register.COUNT {
			err = ErrRegisterIndex(value)
			return
		}
		text = register.Name(register.Index(value), op.Width)
	case shape.KIND_FLOAT:
		text = register.FloatName(register.Index(value))
	case shape.KIND_IMMEDIATE:
		// Full width, so that the text assembles to the same form.
		text = fmt.Sprintf("0x%0*x", 2*op.Bytes, value)
	case shape.KIND_INDIRECT:
		parts := op.Parts()
		texts := make([]string, len(parts))
		for n := len(parts) - 1; n >= 0; n-- {
			bits := parts[n].Bits()
			texts[n], err = formatOperand(parts[n], value&((uint64(1)<<bits)-1))
			if err != nil {
				return
			}
			value >>= bits
		}
		text = "(" + strings.Join(texts, ",") + ")"
	}

	return
}

// Disassemble decodes the instruction at the start of code.
func Disassemble(code []byte) (ins Instruction, err error) {
	if len(code) == 0 {
		err = ErrShort{Want: 1, Got: 0}
		return
	}

	reg := Registry()

	p, ok := reg.PrimaryByOpcode(code[0])
	if !ok {
		err = ErrOpcodeUnknown(code[0])
		return
	}

	operandless := true
	for range reg.Secondaries(p.Opcode) {
		operandless = false
		break
	}
	if operandless {
		ins = Instruction{Bytes: code[:1:1], Primary: p}
		return
	}

	if len(code) < 2 {
		err = ErrShort{Want: 2, Got: len(code)}
		return
	}

	sec, ok := reg.DecodeSecondary(p.Opcode, code[1])
	if !ok {
		err = ErrSubcodeUnknown{Mnemonic: p.Mnemonic, Raw: code[1]}
		return
	}

	size := 1 + sec.Layout.Bytes()
	if len(code) < size {
		err = ErrShort{Want: size, Got: len(code)}
		return
	}

	values, err := sec.Decode(code[1:size])
	if err != nil {
		return
	}

	operands := make([]string, len(values))
	for n, value := range values {
		operands[n], err = formatOperand(sec.Shape[n], value)
		if err != nil {
			return
		}
	}

	ins = Instruction{
		Bytes:     code[:size:size],
		Primary:   p,
		Secondary: sec,
		Operands:  operands,
	}

	return
}

// DisassembleAll decodes every instruction in code.
func DisassembleAll(code []byte) (prog *Program, err error) {
	prog = &Program{}

	for offset := 0; offset < len(code); {
		var ins Instruction
		ins, err = Disassemble(code[offset:])
		if err != nil {
			err = ErrOffset{Offset: offset, Err: err}
			return
		}
		ins.Offset = offset
		prog.Instructions = append(prog.Instructions, ins)
		offset += len(ins.Bytes)
	}

	return
}
