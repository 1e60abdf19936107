// Package catalog is the numbered table of addressing modes.
//
// An addressing mode is one canonical operand shape, for example "rr,(rrr,nnn)".
// Mode IDs are shared verbatim by every instruction family: "LD rr,(rrr,nnn)"
// and "ADD rr,(rrr,nnn)" carry the same ID, and families that use all of
// byte 0 as sub-opcode encode that ID as their sub-opcode.
package catalog

import (
	"fmt"
	"iter"
	"log"
	"slices"

	"github.com/ezrec/fisa/internal"
	"github.com/ezrec/fisa/shape"
)

// ID of an addressing mode.
type ID uint8

// Class groups addressing modes by the kinds of their operands.
type Class int

//go:generate go tool stringer -linecomment -type=Class
const (
	CLASS_IMMEDIATE       = Class(0) // register,immediate
	CLASS_REGISTER        = Class(1) // register,register
	CLASS_COUNT           = Class(2) // register,count
	CLASS_LOAD            = Class(3) // register,memory
	CLASS_STORE           = Class(4) // memory,register
	CLASS_STORE_IMMEDIATE = Class(5) // memory,immediate
	CLASS_MOVE            = Class(6) // memory,memory
	CLASS_UNARY           = Class(7) // unary
)

// Mode is a single addressing mode.
type Mode struct {
	ID        ID       // Stable mode number.
	Signature string   // Canonical shape signature.
	Class     Class    // Operand kinds.
	Layout    string   // Reference layout with a full byte sub-opcode.
	Aliases   []string // Other signatures with an identical layout.
}

// Shape returns the parsed signature.
func (m Mode) Shape() shape.Shape {
	return shape.MustParse(m.Signature)
}

// Float returns true if any operand is a float register.
func (m Mode) Float() bool {
	for _, op := range m.Shape() {
		if op.Kind == shape.KIND_FLOAT {
			return true
		}
	}

	return false
}

// String returns the mode number and signature.
func (m Mode) String() string {
	return fmt.Sprintf("%d:%v", m.ID, m.Signature)
}

var (
	modes     []Mode        // By ID.
	signature map[string]ID // Canonical and alias signatures.
	alias     map[string]bool
)

func init() {
	modes = slices.Concat(binaryModes, unaryModes)
	signature = make(map[string]ID, len(modes))
	alias = make(map[string]bool)

	add := func(sig string, id ID) {
		canon, err := shape.Canonical(sig)
		if err != nil {
			log.Fatalf("catalog: mode %d: %v", id, err)
		}
		if canon != sig {
			log.Fatalf("catalog: mode %d: '%v' is not canonical", id, sig)
		}
		prior, ok := signature[sig]
		if ok {
			log.Fatalf("catalog: mode %d: '%v' already mode %d", id, sig, prior)
		}
		signature[sig] = id
	}

	for n, mode := range modes {
		if int(mode.ID) != n {
			log.Fatalf("catalog: mode %v out of sequence at %d", mode, n)
		}
		add(mode.Signature, mode.ID)
		for _, sig := range mode.Aliases {
			add(sig, mode.ID)
			alias[sig] = true
		}
	}
}

// Len returns the number of addressing modes.
func Len() int {
	return len(modes)
}

// Get returns the addressing mode for an ID.
func Get(id ID) (mode Mode, ok bool) {
	if int(id) >= len(modes) {
		return
	}

	return modes[id], true
}

// Lookup returns the mode ID of a signature. Aliases return the ID of
// the mode they alias.
func Lookup(sig string) (id ID, ok bool) {
	canon, err := shape.Canonical(sig)
	if err != nil {
		return
	}

	id, ok = signature[canon]

	return
}

// Canonical returns the canonical signature of the mode a signature names.
func Canonical(sig string) (canon string, ok bool) {
	id, ok := Lookup(sig)
	if !ok {
		return
	}

	canon = modes[id].Signature

	return
}

// IsAlias returns true if the signature is an alias of another mode.
func IsAlias(sig string) bool {
	canon, err := shape.Canonical(sig)
	if err != nil {
		return false
	}

	return alias[canon]
}

// All iterates over every mode in ID order.
func All() iter.Seq[Mode] {
	return internal.IterSeqConcat(slices.Values(binaryModes), slices.Values(unaryModes))
}

// Select iterates over the modes accepted by all of the filters.
func Select(filters ...func(Mode) bool) iter.Seq[Mode] {
	return internal.IterSeqFilter(All(), func(mode Mode) bool {
		for _, filter := range filters {
			if !filter(mode) {
				return false
			}
		}
		return true
	})
}

// Classes returns a filter accepting modes of any of the classes.
func Classes(classes ...Class) func(Mode) bool {
	return func(mode Mode) bool {
		return slices.Contains(classes, mode.Class)
	}
}

// Except returns a filter rejecting the listed signatures.
func Except(sigs ...string) func(Mode) bool {
	return func(mode Mode) bool {
		return !slices.Contains(sigs, mode.Signature)
	}
}

// Integer is a filter rejecting modes with float register operands.
func Integer(mode Mode) bool {
	return !mode.Float()
}
