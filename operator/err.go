package operator

import (
	"errors"
	"strings"

	"github.com/ezrec/fisa/catalog"
)

var (
	ErrMnemonicEmpty = errors.New(f("mnemonic empty"))
	ErrSubcodeBits   = errors.New(f("layout has no sub-opcode bits"))
)

// ErrBuild collects every problem found while building a Registry.
type ErrBuild struct {
	Errs []error
}

func (err *ErrBuild) Error() string {
	lines := []string{f("%d registration errors", len(err.Errs))}
	for _, e := range err.Errs {
		lines = append(lines, "  "+e.Error())
	}

	return strings.Join(lines, "\n")
}

func (err *ErrBuild) Unwrap() []error {
	return err.Errs
}

// ErrOperator is a problem with a single registration.
type ErrOperator struct {
	Key string
	Err error
}

func (err ErrOperator) Error() string {
	return f("%v: %v", err.Key, err.Err)
}

func (err ErrOperator) Unwrap() error {
	return err.Err
}

// ErrDuplicateMnemonic is a mnemonic or key registered more than once.
type ErrDuplicateMnemonic string

func (err ErrDuplicateMnemonic) Error() string {
	return f("'%v' registered more than once", string(err))
}

type ErrDuplicateOpcode struct {
	Opcode   uint8
	Mnemonic string
	Prior    string
}

func (err ErrDuplicateOpcode) Error() string {
	return f("opcode 0x%02x of %v already used by %v", err.Opcode, err.Mnemonic, err.Prior)
}

type ErrUnknownParent struct {
	Key    string
	Parent uint8
}

func (err ErrUnknownParent) Error() string {
	return f("%v: no primary operator with opcode 0x%02x", err.Key, err.Parent)
}

type ErrParentMismatch struct {
	Key    string
	Parent string
}

func (err ErrParentMismatch) Error() string {
	return f("%v: parent opcode belongs to %v", err.Key, err.Parent)
}

type ErrUnknownAlias struct {
	Key       string
	Canonical string
}

func (err ErrUnknownAlias) Error() string {
	return f("%v: aliases unregistered %v", err.Key, err.Canonical)
}

type ErrModeMismatch struct {
	Key  string
	Mode catalog.ID
	Want string
}

func (err ErrModeMismatch) Error() string {
	return f("%v: addressing mode %d is '%v'", err.Key, err.Mode, err.Want)
}

type ErrSubcode struct {
	Key  string
	Code uint8
	Bits int
}

func (err ErrSubcode) Error() string {
	return f("%v: sub-opcode 0x%02x does not fit in %d bits", err.Key, err.Code, err.Bits)
}

// ErrLayoutMismatch is a registered layout that differs from the layout
// compiled from its shape.
type ErrLayoutMismatch struct {
	Key      string
	Compiled string
	Layout   string
}

func (err ErrLayoutMismatch) Error() string {
	return f("%v: layout '%v' should be '%v'", err.Key, err.Layout, err.Compiled)
}

// ErrAmbiguousDecode is a pair of secondary operators of one family that
// both match the same byte.
type ErrAmbiguousDecode struct {
	Parent uint8
	Raw    uint8
	First  string
	Second string
}

func (err ErrAmbiguousDecode) Error() string {
	return f("opcode 0x%02x byte 0x%02x matches both %v and %v", err.Parent, err.Raw, err.First, err.Second)
}
