package layout

import (
	"errors"

	"github.com/ezrec/fisa/translate"
)

var f = translate.From

var (
	ErrLayoutEmpty = errors.New(f("layout empty"))
)

type ErrLayoutGroup string

func (err ErrLayoutGroup) Error() string {
	return f("layout group '%v' is not eight bits", string(err))
}

type ErrLayoutBit Bit

func (err ErrLayoutBit) Error() string {
	return f("layout bit '%c' invalid", rune(err))
}

type ErrLayoutPrefix string

func (err ErrLayoutPrefix) Error() string {
	return f("layout '%v' opcode prefix invalid", string(err))
}

type ErrLayoutOperand string

func (err ErrLayoutOperand) Error() string {
	return f("layout '%v' operand fields out of order", string(err))
}

type ErrLayoutWidth struct {
	Operand string
	Bits    int
}

func (err ErrLayoutWidth) Error() string {
	return f("operand '%v' needs %d bits, more than %d", err.Operand, err.Bits, MAX_FIELD_BITS)
}

type ErrLayoutValues struct {
	Want int
	Got  int
}

func (err ErrLayoutValues) Error() string {
	return f("layout needs %d values, got %d", err.Want, err.Got)
}

type ErrLayoutShort struct {
	Want int
	Got  int
}

func (err ErrLayoutShort) Error() string {
	return f("layout needs %d bytes, got %d", err.Want, err.Got)
}

type ErrCodeOverflow struct {
	Code uint8
	Bits int
}

func (err ErrCodeOverflow) Error() string {
	return f("opcode 0x%02x does not fit in %d bits", err.Code, err.Bits)
}

type ErrFieldOverflow struct {
	Field Bit
	Value uint64
	Bits  int
}

func (err ErrFieldOverflow) Error() string {
	return f("field %c value 0x%x does not fit in %d bits", rune(err.Field), err.Value, err.Bits)
}
