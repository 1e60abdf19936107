package layout

import (
	"github.com/ezrec/fisa/shape"
)

// compiler accumulates layout bits. Register and float fields collect into
// a run that is placed when a byte wide field, or the end, is reached.
type compiler struct {
	bits []byte
	run  []byte
}

func (c *compiler) pad() {
	for len(c.bits)%8 != 0 {
		c.bits = append(c.bits, byte(BIT_PAD))
	}
}

func (c *compiler) flush() {
	if len(c.run) == 0 {
		return
	}

	if len(c.bits)%8 == 0 {
		// Right aligned in its own bytes.
		for range (8 - len(c.run)%8) % 8 {
			c.bits = append(c.bits, byte(BIT_PAD))
		}
		c.bits = append(c.bits, c.run...)
	} else {
		// Packed against the opcode prefix.
		c.bits = append(c.bits, c.run...)
		c.pad()
	}

	c.run = c.run[:0]
}

func (c *compiler) bitField(letter byte, width int) {
	for range width {
		c.run = append(c.run, letter)
	}
}

func (c *compiler) byteField(letter byte, bytes int) {
	c.flush()
	c.pad()
	for range 8 * bytes {
		c.bits = append(c.bits, letter)
	}
}

func (c *compiler) operand(letter byte, op shape.Operand) {
	switch op.Kind {
	case shape.KIND_REGISTER:
		c.bitField(letter, shape.REGISTER_BITS)
	case shape.KIND_FLOAT:
		c.bitField(letter, shape.FLOAT_BITS)
	case shape.KIND_IMMEDIATE:
		c.byteField(letter, op.Bytes)
	case shape.KIND_INDIRECT:
		for _, part := range op.Parts() {
			c.operand(letter, part)
		}
	}
}

// checkPrefix verifies a prefix is opcode bits followed by literal bits.
func checkPrefix(prefix string) (err error) {
	if len(prefix) == 0 || len(prefix) > 8 {
		return ErrLayoutPrefix(prefix)
	}

	literal := false
	for n := range len(prefix) {
		b := Bit(prefix[n])
		switch {
		case b == BIT_OPCODE && !literal:
		case b.IsLiteral():
			literal = true
		default:
			return ErrLayoutPrefix(prefix)
		}
	}

	return
}

// Compile derives the layout of a shape for an opcode prefix.
//
// The prefix holds the family's opcode bits and literal extension bits, for
// example "oooooooo" for a family using all of byte 0 as sub-opcode, or
// "ooo1" for a packed family whose first operand shares byte 0.
func Compile(prefix string, sh shape.Shape) (l Layout, err error) {
	err = checkPrefix(prefix)
	if err != nil {
		return
	}

	if len(sh) > 26 {
		err = ErrLayoutOperand(sh.String())
		return
	}

	for _, op := range sh {
		if op.Bits() > MAX_FIELD_BITS {
			err = ErrLayoutWidth{Operand: op.String(), Bits: op.Bits()}
			return
		}
	}

	c := &compiler{bits: []byte(prefix)}
	for n, op := range sh {
		c.operand(byte('A'+n), op)
	}
	c.flush()
	c.pad()

	l = Layout{bits: string(c.bits)}

	return
}

// MustCompile is Compile for prefixes and shapes known to be valid.
func MustCompile(prefix string, sh shape.Shape) Layout {
	l, err := Compile(prefix, sh)
	if err != nil {
		panic(err)
	}

	return l
}
