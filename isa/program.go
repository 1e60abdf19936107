package isa

import (
	"fmt"
	"iter"
	"strings"
)

// Program is a list of instructions.
type Program struct {
	Instructions []Instruction
}

// Debug locates the instruction containing a code offset.
type Debug struct {
	*Instruction
	Index int // Byte index within the instruction.
}

// Debug returns the instruction containing a code offset. The
// Instruction is nil if no instruction contains the offset.
func (prog *Program) Debug(offset int) (dbg Debug) {
	for n, ins := range prog.Instructions {
		if offset >= ins.Offset && offset < ins.Offset+len(ins.Bytes) {
			dbg = Debug{
				Instruction: &prog.Instructions[n],
				Index:       offset - ins.Offset,
			}
			break
		}
	}

	return
}

// Binary returns the program code.
func (prog *Program) Binary() (data []byte) {
	for _, code := range prog.Codes() {
		data = append(data, code...)
	}

	return
}

// Codes iterates over the offset and bytes of every instruction.
func (prog *Program) Codes() iter.Seq2[int, []byte] {
	return func(yield func(offset int, code []byte) bool) {
		for _, ins := range prog.Instructions {
			if !yield(ins.Offset, ins.Bytes) {
				return
			}
		}
	}
}

// Listing returns a line per instruction with its offset, bytes and text.
func (prog *Program) Listing() string {
	var sb strings.Builder
	for _, ins := range prog.Instructions {
		fmt.Fprintf(&sb, "%06x  %-26s %v\n", ins.Offset, fmt.Sprintf("% x", ins.Bytes), ins.String())
	}

	return sb.String()
}
