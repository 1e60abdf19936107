package isa

import (
	"errors"

	"github.com/ezrec/fisa/translate"
)

var f = translate.From

var (
	// Assembler errors
	ErrEquateSyntax    = errors.New(f(".equ syntax"))
	ErrEquateDuplicate = errors.New(f(".equ duplicated"))
	ErrLabelDuplicate  = errors.New(f("label duplicated"))
	ErrMacroSyntax     = errors.New(f(".macro syntax"))
	ErrMacroNesting    = errors.New(f(".macro in .macro prohibited"))
	ErrMacroDuplicate  = errors.New(f(".macro duplicated"))
	ErrMacroLonely     = errors.New(f(".macro without .endm"))
	ErrMacroLonelyEndm = errors.New(f(".endm without .macro"))
	ErrOpcodeMissing   = errors.New(f("opcode missing"))
	ErrOperandEmpty    = errors.New(f("operand empty"))
	ErrOperandExtra    = errors.New(f("excessive operands"))
)

type ErrMnemonicUnknown string

func (err ErrMnemonicUnknown) Error() string {
	return f("'%v' is not an instruction", string(err))
}

type ErrOperandInvalid string

func (err ErrOperandInvalid) Error() string {
	return f("'%v' is not a register, value, or memory operand", string(err))
}

type ErrRegisterSpecial string

func (err ErrRegisterSpecial) Error() string {
	return f("special register %v cannot be an operand", string(err))
}

type ErrLabelMissing string

func (err ErrLabelMissing) Error() string {
	return f("label %v missing", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

// ErrShapeUnknown is a set of operands the instruction has no form for.
type ErrShapeUnknown struct {
	Mnemonic string
	Operands string
}

func (err ErrShapeUnknown) Error() string {
	return f("%v has no form for operands '%v'", err.Mnemonic, err.Operands)
}

// ErrValueRange is an operand value too wide for its field.
type ErrValueRange struct {
	Operand string
	Value   int64
	Bits    int
}

func (err ErrValueRange) Error() string {
	return f("'%v' (%d) does not fit in %d bits", err.Operand, err.Value, err.Bits)
}

// Disassembler errors

type ErrOpcodeUnknown uint8

func (err ErrOpcodeUnknown) Error() string {
	return f("opcode 0x%02x unknown", uint8(err))
}

type ErrSubcodeUnknown struct {
	Mnemonic string
	Raw      uint8
}

func (err ErrSubcodeUnknown) Error() string {
	return f("%v sub-opcode byte 0x%02x unknown", err.Mnemonic, err.Raw)
}

type ErrRegisterIndex uint64

func (err ErrRegisterIndex) Error() string {
	return f("register index %d out of range", uint64(err))
}

type ErrShort struct {
	Want int
	Got  int
}

func (err ErrShort) Error() string {
	return f("instruction needs %d bytes, only %d available", err.Want, err.Got)
}

// ErrOffset is a disassembly error at a code offset.
type ErrOffset struct {
	Offset int
	Err    error
}

func (err ErrOffset) Error() string {
	return f("offset 0x%06x: %v", err.Offset, err.Err)
}

func (err ErrOffset) Unwrap() error {
	return err.Err
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrMacro struct {
	Macro string
	Line  int
	Err   error
}

func (err ErrMacro) Error() string {
	return f("macro %v line %v %v", err.Macro, err.Line, err.Err.Error())
}

func (err ErrMacro) Unwrap() error {
	return err.Err
}
