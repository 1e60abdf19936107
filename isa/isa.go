// Package isa is the instruction set of the processor: the process wide
// operator registry, an assembler producing instruction bytes from text, and
// a disassembler producing text from instruction bytes.
//
// The registry is built when the package is initialized. A registry that
// fails its self-test is a fatal error.
package isa

import (
	"log"

	"github.com/ezrec/fisa/family"
	"github.com/ezrec/fisa/operator"
)

var registry *operator.Registry

func init() {
	b := &operator.Builder{}
	family.Register(b)

	reg, err := b.Build()
	if err != nil {
		log.Fatalf("isa: %v", err)
	}

	registry = reg
}

// Registry returns the instruction set registry.
func Registry() *operator.Registry {
	return registry
}
