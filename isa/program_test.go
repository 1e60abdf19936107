package isa

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgram_Debug(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	prog, err := asm.Parse(strings.NewReader("LD A,5\nINC A\nHALT\n"))
	if !assert.NoError(err) {
		return
	}

	table := [...]struct {
		offset int
		lineNo int
		index  int
	}{
		{0, 1, 0},
		{3, 1, 3},
		{4, 2, 0},
		{5, 2, 1},
		{6, 3, 0},
	}

	for _, entry := range table {
		dbg := prog.Debug(entry.offset)
		if assert.NotNil(dbg.Instruction, entry.offset) {
			assert.Equal(entry.lineNo, dbg.LineNo, entry.offset)
			assert.Equal(entry.index, dbg.Index, entry.offset)
		}
	}

	dbg := prog.Debug(7)
	assert.Nil(dbg.Instruction)
	assert.Equal(0, dbg.Index)
}

func TestProgram_Listing(t *testing.T) {
	assert := assert.New(t)

	prog, err := DisassembleAll([]byte{0x01, 0x00, 0x00, 0x05, 0x1a})
	if !assert.NoError(err) {
		return
	}

	lines := strings.Split(strings.TrimSpace(prog.Listing()), "\n")
	if assert.Equal(2, len(lines)) {
		assert.True(strings.HasPrefix(lines[0], "000000  01 00 00 05"))
		assert.True(strings.HasSuffix(lines[0], "LD A,0x05"))
		assert.True(strings.HasPrefix(lines[1], "000004  1a"))
		assert.True(strings.HasSuffix(lines[1], "HALT"))
	}

	offsets := []int{}
	for offset := range prog.Codes() {
		offsets = append(offsets, offset)
	}
	assert.Equal([]int{0, 4}, offsets)
}
