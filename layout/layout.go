// Package layout describes and compiles instruction bit layouts.
//
// A layout is written as space separated groups of eight characters, one per
// bit, most significant bit first:
//
//	o     opcode (sub-opcode) bit
//	0, 1  literal bit, extending the opcode
//	u     don't care padding
//	A-Z   bit of the operand field with that letter
//
// Byte 0 always starts with the opcode bits followed by any literal bits.
// The remaining bits of byte 0, if any, belong to the first operand.
package layout

import (
	"strings"
)

// Bit is the tag of a single layout bit.
type Bit byte

const (
	BIT_OPCODE = Bit('o') // Opcode bit.
	BIT_ZERO   = Bit('0') // Literal zero.
	BIT_ONE    = Bit('1') // Literal one.
	BIT_PAD    = Bit('u') // Don't care.
)

const MAX_FIELD_BITS = 64 // Widest operand field.

// IsOperand returns true for operand field bits.
func (b Bit) IsOperand() bool {
	return b >= 'A' && b <= 'Z'
}

// IsLiteral returns true for literal zero and one bits.
func (b Bit) IsLiteral() bool {
	return b == BIT_ZERO || b == BIT_ONE
}

// Operand returns the operand index of an operand field bit.
func (b Bit) Operand() int {
	return int(b - 'A')
}

// Layout is an immutable instruction bit layout.
type Layout struct {
	bits string
}

// Field is a run of identically tagged bits within a single byte.
type Field struct {
	Bit    Bit // Tag of the run.
	Offset int // Bit offset of the run from the start of the layout.
	Width  int // Bits in the run.
}

// Parse parses a layout template string.
func Parse(template string) (l Layout, err error) {
	groups := strings.Fields(template)
	if len(groups) == 0 {
		err = ErrLayoutEmpty
		return
	}

	for _, group := range groups {
		if len(group) != 8 {
			err = ErrLayoutGroup(group)
			return
		}
	}

	bits := strings.Join(groups, "")
	err = validate(bits)
	if err != nil {
		return
	}

	l = Layout{bits: bits}

	return
}

// MustParse is Parse for templates known to be valid. It panics on error.
func MustParse(template string) Layout {
	l, err := Parse(template)
	if err != nil {
		panic(err)
	}

	return l
}

// validate checks the tag alphabet, the byte 0 prefix and the operand order.
func validate(bits string) (err error) {
	prefix := 0
	literal := false
	for prefix < 8 {
		b := Bit(bits[prefix])
		if b == BIT_OPCODE && !literal {
			prefix++
			continue
		}
		if b.IsLiteral() {
			literal = true
			prefix++
			continue
		}
		break
	}

	next := 0
	for n := range len(bits) {
		b := Bit(bits[n])
		switch {
		case n < prefix:
		case b == BIT_PAD:
		case b.IsOperand():
			switch {
			case b.Operand() == next:
				next++
			case b.Operand() > next:
				return ErrLayoutOperand(bits)
			}
		case b == BIT_OPCODE, b.IsLiteral():
			return ErrLayoutPrefix(bits)
		default:
			return ErrLayoutBit(b)
		}
	}

	return
}

// IsZero returns true for the zero value Layout.
func (l Layout) IsZero() bool {
	return len(l.bits) == 0
}

// String returns the layout template, in groups of eight bits.
func (l Layout) String() string {
	groups := make([]string, 0, l.Bytes())
	for n := 0; n < len(l.bits); n += 8 {
		groups = append(groups, l.bits[n:n+8])
	}

	return strings.Join(groups, " ")
}

// Equal returns true if both layouts have identical tags.
func (l Layout) Equal(other Layout) bool {
	return l.bits == other.bits
}

// Bytes returns the size of the layout in bytes.
func (l Layout) Bytes() int {
	return len(l.bits) / 8
}

// Bit returns the tag of a bit.
func (l Layout) Bit(n int) Bit {
	return Bit(l.bits[n])
}

// Prefix returns the opcode and literal bits at the start of byte 0.
func (l Layout) Prefix() string {
	n := 0
	for n < len(l.bits) && n < 8 {
		b := Bit(l.bits[n])
		if b != BIT_OPCODE && !b.IsLiteral() {
			break
		}
		n++
	}

	return l.bits[:n]
}

// OpcodeBits returns the number of opcode bits.
func (l Layout) OpcodeBits() int {
	return strings.Count(l.Prefix(), string(BIT_OPCODE))
}

// Literal returns the value and width of the literal opcode extension.
func (l Layout) Literal() (value uint8, bits int) {
	for _, c := range l.Prefix() {
		switch Bit(c) {
		case BIT_ZERO:
			value <<= 1
			bits++
		case BIT_ONE:
			value = (value << 1) | 1
			bits++
		}
	}

	return
}

// Operands returns the number of operand fields.
func (l Layout) Operands() (count int) {
	for n := range len(l.bits) {
		b := Bit(l.bits[n])
		if b.IsOperand() && b.Operand() >= count {
			count = b.Operand() + 1
		}
	}

	return
}

// Widths returns the total bit width of each operand field.
func (l Layout) Widths() (widths []int) {
	widths = make([]int, l.Operands())
	for n := range len(l.bits) {
		b := Bit(l.bits[n])
		if b.IsOperand() {
			widths[b.Operand()]++
		}
	}

	return
}

// Fields returns the runs of identically tagged bits, split at byte boundaries.
func (l Layout) Fields() (fields []Field) {
	for n := range len(l.bits) {
		b := Bit(l.bits[n])
		if n%8 != 0 && len(fields) > 0 && fields[len(fields)-1].Bit == b {
			fields[len(fields)-1].Width++
			continue
		}
		fields = append(fields, Field{Bit: b, Offset: n, Width: 1})
	}

	return
}

// Encode places the opcode and operand values into instruction bytes.
// Field values are stored most significant bit first; don't care bits are zero.
func (l Layout) Encode(code uint8, values ...uint64) (data []byte, err error) {
	widths := l.Widths()
	if len(values) != len(widths) {
		err = ErrLayoutValues{Want: len(widths), Got: len(values)}
		return
	}

	opBits := l.OpcodeBits()
	if opBits < 8 && (code>>opBits) != 0 {
		err = ErrCodeOverflow{Code: code, Bits: opBits}
		return
	}

	for n, width := range widths {
		if width > MAX_FIELD_BITS {
			err = ErrLayoutWidth{Operand: string(rune('A' + n)), Bits: width}
			return
		}
		if width < MAX_FIELD_BITS && (values[n]>>width) != 0 {
			err = ErrFieldOverflow{Field: Bit('A' + n), Value: values[n], Bits: width}
			return
		}
	}

	data = make([]byte, l.Bytes())
	seen := make([]int, len(widths))
	opSeen := 0
	for n := range len(l.bits) {
		var bit uint64
		b := Bit(l.bits[n])
		switch {
		case b == BIT_OPCODE:
			bit = uint64(code>>(opBits-1-opSeen)) & 1
			opSeen++
		case b == BIT_ONE:
			bit = 1
		case b.IsOperand():
			op := b.Operand()
			bit = (values[op] >> (widths[op] - 1 - seen[op])) & 1
			seen[op]++
		}
		if bit != 0 {
			data[n/8] |= 0x80 >> (n % 8)
		}
	}

	return
}

// Decode extracts the opcode and operand values from instruction bytes.
func (l Layout) Decode(data []byte) (code uint8, values []uint64, err error) {
	if len(data) < l.Bytes() {
		err = ErrLayoutShort{Want: l.Bytes(), Got: len(data)}
		return
	}

	for n, width := range l.Widths() {
		if width > MAX_FIELD_BITS {
			err = ErrLayoutWidth{Operand: string(rune('A' + n)), Bits: width}
			return
		}
	}

	values = make([]uint64, l.Operands())
	for n := range len(l.bits) {
		bit := uint64(data[n/8]>>(7-n%8)) & 1
		b := Bit(l.bits[n])
		switch {
		case b == BIT_OPCODE:
			code = (code << 1) | uint8(bit)
		case b.IsOperand():
			op := b.Operand()
			values[op] = (values[op] << 1) | bit
		}
	}

	return
}
