// Package shape parses operand shape signatures.
//
// A signature is a comma separated list of operand tokens, for example
// "rr,(nnn,rrr)". A run of 1-4 'r' characters is a register group of that
// width, a run of 1-4 'n' characters is an immediate of that many bytes, "fr"
// is a float register, and a parenthesized base with up to two displacements
// is a memory indirect operand.
package shape

import (
	"strings"
)

// Kind is the type of operand.
type Kind int

//go:generate go tool stringer -linecomment -type=Kind
const (
	KIND_REGISTER  = Kind(0) // register
	KIND_FLOAT     = Kind(1) // float
	KIND_IMMEDIATE = Kind(2) // immediate
	KIND_INDIRECT  = Kind(3) // indirect
)

const (
	REGISTER_BITS    = 5 // Bits in a register index field, for any group width.
	FLOAT_BITS       = 4 // Bits in a float register index field.
	MAX_WIDTH        = 4 // Widest register group or immediate.
	MAX_DISPLACEMENT = 2 // Displacements allowed after an indirect base.
)

// Operand is a single operand of a shape.
type Operand struct {
	Kind  Kind
	Width int // Register group width, or immediate token width in bytes.
	Bytes int // Encoded immediate width, in bytes.

	Base         *Operand  // KIND_INDIRECT base register group or address.
	Displacement []Operand // KIND_INDIRECT displacements.
}

// Shape is the ordered list of an instruction's operands.
type Shape []Operand

// Parts returns the fields making up the operand, in encoding order.
func (op Operand) Parts() (parts []Operand) {
	if op.Kind != KIND_INDIRECT {
		return []Operand{op}
	}

	parts = append(parts, *op.Base)
	parts = append(parts, op.Displacement...)

	return
}

// Bits returns the number of encoded bits of the operand.
func (op Operand) Bits() (bits int) {
	switch op.Kind {
	case KIND_REGISTER:
		bits = REGISTER_BITS
	case KIND_FLOAT:
		bits = FLOAT_BITS
	case KIND_IMMEDIATE:
		bits = 8 * op.Bytes
	case KIND_INDIRECT:
		for _, part := range op.Parts() {
			bits += part.Bits()
		}
	}

	return
}

// String returns the signature token of the operand.
func (op Operand) String() string {
	switch op.Kind {
	case KIND_REGISTER:
		return strings.Repeat("r", op.Width)
	case KIND_FLOAT:
		return "fr"
	case KIND_IMMEDIATE:
		return strings.Repeat("n", op.Width)
	case KIND_INDIRECT:
		var tokens []string
		for _, part := range op.Parts() {
			tokens = append(tokens, part.String())
		}
		return "(" + strings.Join(tokens, ",") + ")"
	}

	return "?"
}

// Describe returns a phrase describing the operand, for instruction help text.
func (op Operand) Describe() string {
	switch op.Kind {
	case KIND_REGISTER:
		if op.Width == 1 {
			return f("an 8-bit register")
		}
		return f("a %d-bit register group", 8*op.Width)
	case KIND_FLOAT:
		return f("a float register")
	case KIND_IMMEDIATE:
		return f("a %d-bit immediate", 8*op.Bytes)
	case KIND_INDIRECT:
		return f("the memory at %v", op.String())
	}

	return "?"
}

// String returns the canonical signature of the shape.
func (sh Shape) String() string {
	tokens := make([]string, len(sh))
	for n, op := range sh {
		tokens[n] = op.String()
	}

	return strings.Join(tokens, ",")
}

// Describe returns the Describe() phrase of every operand.
func (sh Shape) Describe() (phrases []any) {
	for _, op := range sh {
		phrases = append(phrases, op.Describe())
	}

	return
}
