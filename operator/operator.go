// Package operator is the registry of instruction definitions.
//
// A Primary operator is an instruction family, selected by the opcode in the
// first byte of an instruction. A Secondary operator is one operand shape of
// a family; it is selected by the sub-opcode bits at the top of the byte
// after the opcode, and its Layout describes that byte and the ones after it.
//
// Operators are registered with a Builder, which checks the whole table and
// freezes it into a Registry. A Registry is never modified after Build, so
// any number of goroutines may read it.
package operator

import (
	"fmt"
	"strings"

	"github.com/ezrec/fisa/catalog"
	"github.com/ezrec/fisa/layout"
	"github.com/ezrec/fisa/shape"
	"github.com/ezrec/fisa/translate"
)

var f = translate.From

// OPCODE_NOP is the opcode of the no-operation instruction.
const OPCODE_NOP = uint8(0)

// Primary is an instruction family.
type Primary struct {
	Mnemonic    string // Instruction mnemonic, such as "ADD".
	Opcode      uint8  // Opcode byte.
	Title       string // Short human readable name.
	Description string // Message format; operand phrases are its arguments.
}

// String returns the mnemonic.
func (p *Primary) String() string {
	return p.Mnemonic
}

// Describe renders the description for one of the family's operand shapes.
// The description refers to the operands as %[1]v, %[2]v, and so on.
func (p *Primary) Describe(sec *Secondary) string {
	if sec == nil || len(sec.Shape) == 0 {
		return f(p.Description)
	}

	return f(p.Description, sec.Shape.Describe()...)
}

// Subcode is the decode key of a secondary operator: the sub-opcode value
// in the opcode bits of byte 0, followed by the fixed literal bits that
// extend it.
type Subcode struct {
	Code        uint8 // Registered sub-opcode.
	CodeBits    int   // Opcode bits in byte 0.
	Literal     uint8 // Literal extension value.
	LiteralBits int   // Literal extension bits in byte 0.
}

// Bits returns the number of byte 0 bits the subcode occupies.
func (sc Subcode) Bits() int {
	return sc.CodeBits + sc.LiteralBits
}

// Prefix returns the value of the top Bits() bits of a matching byte.
func (sc Subcode) Prefix() uint8 {
	return (sc.Code << sc.LiteralBits) | sc.Literal
}

// Matches returns true if a raw byte 0 selects this subcode.
func (sc Subcode) Matches(raw uint8) bool {
	return raw>>(8-sc.Bits()) == sc.Prefix()
}

// Overlaps returns true if some raw byte matches both subcodes.
func (sc Subcode) Overlaps(other Subcode) bool {
	bits := min(sc.Bits(), other.Bits())

	return sc.Prefix()>>(sc.Bits()-bits) == other.Prefix()>>(other.Bits()-bits)
}

// String returns the subcode bits, with the literal extension after a dot.
func (sc Subcode) String() string {
	text := fmt.Sprintf("%0*b", sc.CodeBits, sc.Code)
	if sc.LiteralBits > 0 {
		text += fmt.Sprintf(".%0*b", sc.LiteralBits, sc.Literal)
	}

	return text
}

// Secondary is one operand shape of an instruction family.
type Secondary struct {
	Mnemonic string        // Family mnemonic, such as "ADD".
	Shape    shape.Shape   // Operand shape.
	Parent   uint8         // Opcode of the family.
	Mode     catalog.ID    // Addressing mode.
	Subcode  Subcode       // Decode key.
	Layout   layout.Layout // Bit layout, starting with the sub-opcode byte.
}

// Key returns the registry key, such as "ADD r,nnn".
func (sec *Secondary) Key() string {
	return Key(sec.Mnemonic, sec.Shape.String())
}

// String returns the registry key.
func (sec *Secondary) String() string {
	return sec.Key()
}

// Matches returns true if the byte after the opcode selects this operator.
func (sec *Secondary) Matches(raw uint8) bool {
	return sec.Subcode.Matches(raw)
}

// Encode returns the bytes following the opcode for a set of operand values.
func (sec *Secondary) Encode(values ...uint64) (data []byte, err error) {
	return sec.Layout.Encode(sec.Subcode.Code, values...)
}

// Decode returns the operand values from the bytes following the opcode.
func (sec *Secondary) Decode(data []byte) (values []uint64, err error) {
	_, values, err = sec.Layout.Decode(data)
	return
}

// Key joins a mnemonic and a shape signature into a registry key.
func Key(mnemonic string, sig string) string {
	if len(sig) == 0 {
		return mnemonic
	}

	return mnemonic + " " + sig
}

// SplitKey splits a registry key into its upper case mnemonic and
// canonical shape signature.
func SplitKey(key string) (mnemonic string, sig string, err error) {
	key = strings.TrimSpace(key)
	mnemonic, sig, _ = strings.Cut(key, " ")
	if len(mnemonic) == 0 {
		err = ErrMnemonicEmpty
		return
	}

	mnemonic = strings.ToUpper(mnemonic)
	sig, err = shape.Canonical(sig)

	return
}
