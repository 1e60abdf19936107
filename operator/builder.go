package operator

import (
	"log"
	"strings"

	"github.com/ezrec/fisa/catalog"
	"github.com/ezrec/fisa/layout"
)

// alias is an extra key for an already registered secondary operator.
type alias struct {
	key       string
	canonical string
}

// Builder collects operator registrations.
//
// Registration never stops at the first problem: every problem is recorded
// and Build reports all of them at once.
type Builder struct {
	Verbose bool // If set, logs every registration.

	primaries   []*Primary
	secondaries []*Secondary
	aliases     []alias
	errs        []error
}

// Primary registers an instruction family.
func (b *Builder) Primary(mnemonic string, opcode uint8, title string, description string) {
	if b.Verbose {
		log.Printf("operator: primary 0x%02x %v", opcode, mnemonic)
	}

	if len(mnemonic) == 0 {
		b.errs = append(b.errs, ErrMnemonicEmpty)
		return
	}

	b.primaries = append(b.primaries, &Primary{
		Mnemonic:    strings.ToUpper(mnemonic),
		Opcode:      opcode,
		Title:       title,
		Description: description,
	})
}

// Secondary registers the operand shape named by key, such as "ADD r,nnn",
// as a member of the family with opcode parent.
//
// The template is the bit layout of the sub-opcode byte and the bytes after
// it; code is the sub-opcode stored in its opcode bits. The shape must be the
// signature of addressing mode id, or one of its aliases. Several families
// may register the same mode id.
func (b *Builder) Secondary(key string, parent uint8, code uint8, id catalog.ID, template string) {
	if b.Verbose {
		log.Printf("operator: secondary 0x%02x.%02x %v [%v]", parent, code, key, template)
	}

	fail := func(err error) {
		b.errs = append(b.errs, ErrOperator{Key: key, Err: err})
	}

	mnemonic, sig, err := SplitKey(key)
	if err != nil {
		fail(err)
		return
	}

	mode, ok := catalog.Get(id)
	if !ok {
		b.errs = append(b.errs, ErrModeMismatch{Key: key, Mode: id})
		return
	}
	modeID, ok := catalog.Lookup(sig)
	if !ok || modeID != id {
		b.errs = append(b.errs, ErrModeMismatch{Key: key, Mode: id, Want: mode.Signature})
		return
	}

	l, err := layout.Parse(template)
	if err != nil {
		fail(err)
		return
	}

	opBits := l.OpcodeBits()
	if opBits == 0 {
		fail(ErrSubcodeBits)
		return
	}
	if opBits < 8 && (code>>opBits) != 0 {
		b.errs = append(b.errs, ErrSubcode{Key: key, Code: code, Bits: opBits})
		return
	}

	literal, literalBits := l.Literal()

	b.secondaries = append(b.secondaries, &Secondary{
		Mnemonic: mnemonic,
		Shape:    mode.Shape(),
		Parent:   parent,
		Mode:     id,
		Subcode: Subcode{
			Code:        code,
			CodeBits:    opBits,
			Literal:     literal,
			LiteralBits: literalBits,
		},
		Layout: l,
	})

	// A secondary key is only ever the canonical spelling of its mode.
	if sig != mode.Signature {
		b.aliases = append(b.aliases, alias{key: key, canonical: Key(mnemonic, mode.Signature)})
	}
}

// Alias registers key as another spelling of an already registered
// secondary operator, for a shape that encodes identically.
func (b *Builder) Alias(key string, canonical string) {
	if b.Verbose {
		log.Printf("operator: alias %v => %v", key, canonical)
	}

	b.aliases = append(b.aliases, alias{key: key, canonical: canonical})
}

// Build checks every registration and freezes them into a Registry.
func (b *Builder) Build() (reg *Registry, err error) {
	errs := append([]error(nil), b.errs...)

	reg = &Registry{
		byMnemonic: make(map[string]*Primary, len(b.primaries)),
		byKey:      make(map[string]*Secondary, len(b.secondaries)+len(b.aliases)),
		aliases:    make(map[string]string, len(b.aliases)),
	}

	for _, p := range b.primaries {
		_, dup := reg.byMnemonic[p.Mnemonic]
		if dup {
			errs = append(errs, ErrDuplicateMnemonic(p.Mnemonic))
			continue
		}
		prior := reg.byOpcode[p.Opcode]
		if prior != nil {
			errs = append(errs, ErrDuplicateOpcode{Opcode: p.Opcode, Mnemonic: p.Mnemonic, Prior: prior.Mnemonic})
			continue
		}
		reg.byMnemonic[p.Mnemonic] = p
		reg.byOpcode[p.Opcode] = p
		reg.primaries = append(reg.primaries, p)
	}

	for _, sec := range b.secondaries {
		key := sec.Key()
		_, dup := reg.byKey[key]
		if dup {
			errs = append(errs, ErrDuplicateMnemonic(key))
			continue
		}
		parent := reg.byOpcode[sec.Parent]
		if parent == nil {
			errs = append(errs, ErrUnknownParent{Key: key, Parent: sec.Parent})
			continue
		}
		if parent.Mnemonic != sec.Mnemonic {
			errs = append(errs, ErrParentMismatch{Key: key, Parent: parent.Mnemonic})
			continue
		}
		reg.byKey[key] = sec
		reg.byParent[sec.Parent] = append(reg.byParent[sec.Parent], sec)
		reg.secondaries = append(reg.secondaries, sec)
	}

	for _, a := range b.aliases {
		errs = append(errs, reg.alias(a.key, a.canonical)...)
	}

	errs = append(errs, reg.check()...)

	if len(errs) > 0 {
		reg = nil
		err = &ErrBuild{Errs: errs}
		return
	}

	return
}
