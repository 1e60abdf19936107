package operator

import (
	"iter"
	"maps"
	"slices"
	"strings"

	"github.com/ezrec/fisa/internal"
	"github.com/ezrec/fisa/layout"
)

// Registry is a frozen table of operators.
type Registry struct {
	primaries   []*Primary   // In registration order.
	secondaries []*Secondary // In registration order.

	byMnemonic map[string]*Primary
	byOpcode   [256]*Primary
	byKey      map[string]*Secondary // Canonical and alias keys.
	byParent   [256][]*Secondary
	aliases    map[string]string // Alias key to canonical key.
}

// alias adds an alias key during Build.
func (reg *Registry) alias(key string, canonical string) (errs []error) {
	mnemonic, sig, err := SplitKey(key)
	if err != nil {
		errs = append(errs, ErrOperator{Key: key, Err: err})
		return
	}
	key = Key(mnemonic, sig)

	sec, ok := reg.byKey[canonical]
	if !ok || reg.aliases[canonical] != "" {
		errs = append(errs, ErrUnknownAlias{Key: key, Canonical: canonical})
		return
	}

	if prior, dup := reg.byKey[key]; dup {
		// Repeating an identical alias is harmless.
		if prior == sec && reg.aliases[key] == canonical {
			return
		}
		errs = append(errs, ErrDuplicateMnemonic(key))
		return
	}

	if mnemonic != sec.Mnemonic {
		errs = append(errs, ErrParentMismatch{Key: key, Parent: sec.Mnemonic})
		return
	}

	// The alias must encode exactly as the operator it names.
	l, err := layout.Compile(sec.Layout.Prefix(), mustShape(sig))
	if err != nil {
		errs = append(errs, ErrOperator{Key: key, Err: err})
		return
	}
	if !l.Equal(sec.Layout) {
		errs = append(errs, ErrLayoutMismatch{Key: key, Compiled: l.String(), Layout: sec.Layout.String()})
		return
	}

	reg.byKey[key] = sec
	reg.aliases[key] = canonical

	return
}

// Opcode returns the opcode of a mnemonic.
func (reg *Registry) Opcode(mnemonic string) (opcode uint8, ok bool) {
	p, ok := reg.byMnemonic[strings.ToUpper(mnemonic)]
	if !ok {
		return
	}

	opcode = p.Opcode

	return
}

// PrimaryOpcodeOf returns the opcode of a mnemonic, or OPCODE_NOP if the
// mnemonic is not registered. Use Opcode to tell the two apart.
func (reg *Registry) PrimaryOpcodeOf(mnemonic string) uint8 {
	opcode, ok := reg.Opcode(mnemonic)
	if !ok {
		return OPCODE_NOP
	}

	return opcode
}

// Primary returns the family with a mnemonic.
func (reg *Registry) Primary(mnemonic string) (p *Primary, ok bool) {
	p, ok = reg.byMnemonic[strings.ToUpper(mnemonic)]
	return
}

// PrimaryByOpcode returns the family with an opcode.
func (reg *Registry) PrimaryByOpcode(opcode uint8) (p *Primary, ok bool) {
	p = reg.byOpcode[opcode]
	ok = p != nil
	return
}

// Lookup returns the secondary operator for a canonical or alias key.
// The key's mnemonic is case insensitive and its signature need not be
// canonical.
func (reg *Registry) Lookup(key string) (sec *Secondary, ok bool) {
	mnemonic, sig, err := SplitKey(key)
	if err != nil {
		return
	}

	sec, ok = reg.byKey[Key(mnemonic, sig)]

	return
}

// IsAlias returns true if a key is an alias of another key.
func (reg *Registry) IsAlias(key string) bool {
	mnemonic, sig, err := SplitKey(key)
	if err != nil {
		return false
	}

	_, ok := reg.aliases[Key(mnemonic, sig)]

	return ok
}

// FormatOf returns the layout of a secondary operator.
func (reg *Registry) FormatOf(key string) (l layout.Layout, ok bool) {
	sec, ok := reg.Lookup(key)
	if !ok {
		return
	}

	l = sec.Layout

	return
}

// DecodeSecondary returns the secondary operator of a family that the byte
// after the opcode selects.
func (reg *Registry) DecodeSecondary(parent uint8, raw uint8) (sec *Secondary, ok bool) {
	for _, sec = range reg.byParent[parent] {
		if sec.Matches(raw) {
			return sec, true
		}
	}

	return nil, false
}

// Secondaries iterates over the secondary operators of a family.
func (reg *Registry) Secondaries(parent uint8) iter.Seq[*Secondary] {
	return slices.Values(reg.byParent[parent])
}

// Primaries iterates over the families in registration order.
func (reg *Registry) Primaries() iter.Seq[*Primary] {
	return slices.Values(reg.primaries)
}

// All iterates over every secondary operator in registration order.
func (reg *Registry) All() iter.Seq[*Secondary] {
	return slices.Values(reg.secondaries)
}

// Names iterates over every key, canonical keys first in registration order,
// then aliases in sorted order.
func (reg *Registry) Names() iter.Seq2[string, *Secondary] {
	canonical := func(yield func(string, *Secondary) bool) {
		for _, sec := range reg.secondaries {
			if !yield(sec.Key(), sec) {
				return
			}
		}
	}

	aliases := func(yield func(string, *Secondary) bool) {
		for _, key := range slices.Sorted(maps.Keys(reg.aliases)) {
			if !yield(key, reg.byKey[key]) {
				return
			}
		}
	}

	return internal.IterSeq2Concat(canonical, aliases)
}

// Verify repeats the Build self-test.
func (reg *Registry) Verify() (err error) {
	errs := reg.check()
	if len(errs) > 0 {
		err = &ErrBuild{Errs: errs}
	}

	return
}
