package operator

import (
	"github.com/ezrec/fisa/layout"
	"github.com/ezrec/fisa/shape"
)

func mustShape(sig string) shape.Shape {
	// Signatures reaching here were canonicalized by SplitKey.
	return shape.MustParse(sig)
}

// check is the registry self-test.
func (reg *Registry) check() (errs []error) {
	errs = append(errs, reg.checkLayouts()...)
	errs = append(errs, reg.checkDisjoint()...)

	return
}

// checkLayouts verifies every registered layout is the one compiled from
// its shape and prefix.
func (reg *Registry) checkLayouts() (errs []error) {
	for _, sec := range reg.secondaries {
		compiled, err := layout.Compile(sec.Layout.Prefix(), sec.Shape)
		if err != nil {
			errs = append(errs, ErrOperator{Key: sec.Key(), Err: err})
			continue
		}
		if !compiled.Equal(sec.Layout) {
			errs = append(errs, ErrLayoutMismatch{
				Key:      sec.Key(),
				Compiled: compiled.String(),
				Layout:   sec.Layout.String(),
			})
		}
	}

	return
}

// overlapping returns true if any two subcodes share a raw byte.
func overlapping(secs []*Secondary) bool {
	for n, sec := range secs {
		for _, other := range secs[n+1:] {
			if sec.Subcode.Overlaps(other.Subcode) {
				return true
			}
		}
	}

	return false
}

// checkDisjoint verifies that no byte after an opcode selects more than one
// secondary operator of the family.
func (reg *Registry) checkDisjoint() (errs []error) {
	type pair struct {
		first  *Secondary
		second *Secondary
	}

	for parent := range len(reg.byParent) {
		secs := reg.byParent[parent]
		if len(secs) < 2 || !overlapping(secs) {
			continue
		}

		seen := map[pair]bool{}
		for raw := range 256 {
			var first *Secondary
			for _, sec := range secs {
				if !sec.Matches(uint8(raw)) {
					continue
				}
				if first == nil {
					first = sec
					continue
				}
				p := pair{first: first, second: sec}
				if seen[p] {
					continue
				}
				seen[p] = true
				errs = append(errs, ErrAmbiguousDecode{
					Parent: uint8(parent),
					Raw:    uint8(raw),
					First:  first.Key(),
					Second: sec.Key(),
				})
			}
		}
	}

	return
}
