// Package family defines the instruction families of the processor, and
// registers them with an operator.Builder.
//
// Most families use the whole byte after the opcode as the sub-opcode, and
// that byte is the catalog ID of the addressing mode. The others pack their
// first operands into the low bits of that byte, with the sub-opcode (and
// sometimes a literal bit extending it) in the high bits.
package family

import (
	"iter"
	"slices"

	"github.com/ezrec/fisa/catalog"
	"github.com/ezrec/fisa/operator"
)

// Row is one secondary operator of a packed family.
type Row struct {
	Code      uint8  // Sub-opcode.
	Signature string // Operand shape.
	Layout    string // Bit layout, including any literal extension.
}

// Family is an instruction family definition.
type Family struct {
	Opcode      Opcode
	Title       string
	Description string

	Modes  []func(catalog.Mode) bool // Catalog filters of a full byte family.
	Matrix []Row                     // Secondary operators of a packed family.
}

// Mnemonic returns the family mnemonic.
func (fam Family) Mnemonic() string {
	return fam.Opcode.String()
}

// Register adds the family and its secondary operators to a builder.
func (fam Family) Register(b *operator.Builder) {
	b.Primary(fam.Mnemonic(), uint8(fam.Opcode), fam.Title, fam.Description)

	switch {
	case len(fam.Matrix) > 0:
		fam.registerMatrix(b)
	case len(fam.Modes) > 0:
		fam.registerModes(b)
	}
}

// registerModes adds every selected catalog mode, with the mode ID as
// the sub-opcode.
func (fam Family) registerModes(b *operator.Builder) {
	for mode := range catalog.Select(fam.Modes...) {
		key := operator.Key(fam.Mnemonic(), mode.Signature)
		b.Secondary(key, uint8(fam.Opcode), uint8(mode.ID), mode.ID, mode.Layout)
		for _, sig := range mode.Aliases {
			b.Alias(operator.Key(fam.Mnemonic(), sig), key)
		}
	}
}

func (fam Family) registerMatrix(b *operator.Builder) {
	for _, row := range fam.Matrix {
		key := operator.Key(fam.Mnemonic(), row.Signature)
		// An unknown signature is reported by the builder.
		id, _ := catalog.Lookup(row.Signature)
		b.Secondary(key, uint8(fam.Opcode), row.Code, id, row.Layout)

		mode, ok := catalog.Get(id)
		if ok && mode.Signature == row.Signature {
			for _, sig := range mode.Aliases {
				b.Alias(operator.Key(fam.Mnemonic(), sig), key)
			}
		}
	}
}

// All iterates over every family in opcode order.
func All() iter.Seq[Family] {
	return slices.Values(families)
}

// Get returns the family of an opcode.
func Get(opcode Opcode) (fam Family, ok bool) {
	for _, fam = range families {
		if fam.Opcode == opcode {
			return fam, true
		}
	}

	return Family{}, false
}

// Register adds every family to a builder, in opcode order.
func Register(b *operator.Builder) {
	for fam := range All() {
		fam.Register(b)
	}
}
