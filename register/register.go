// Package register maps register names to indices.
//
// The CPU has 26 byte wide general registers named A through Z. Any run of
// one to four alphabetically contiguous letters names a register group that
// starts at its first letter; the alphabet wraps, so "ZA" is the 16-bit
// group made of Z and A and resolves to the same index as "Z". There are 16
// float registers, F0 through F15 (also spelled FR0 through FR15), and a
// handful of special registers that are not part of the indexed table.
package register

import (
	"strconv"
	"strings"
)

// Index of a register or float register.
type Index uint8

const (
	COUNT       = 26 // General purpose registers.
	FLOAT_COUNT = 16 // Float registers.
	MAX_WIDTH   = 4  // Widest register group, in registers.
)

// Special registers.
const (
	SPC = "SPC" // Stack pointer, code.
	SPR = "SPR" // Stack pointer, registers.
	IPO = "IPO" // Instruction pointer.
)

var special = map[string]bool{
	SPC: true,
	SPR: true,
	IPO: true,
}

// groups maps every legal group name to its starting index.
var groups = map[string]Index{}

func init() {
	for start := range COUNT {
		for width := 1; width <= MAX_WIDTH; width++ {
			groups[Name(Index(start), width)] = Index(start)
		}
	}
}

// Resolve returns the index of a register or register group name.
func Resolve(name string) (index Index, ok bool) {
	index, ok = groups[strings.ToUpper(name)]
	return
}

// Width returns the number of registers in a group name.
func Width(name string) (width int, ok bool) {
	_, ok = Resolve(name)
	if ok {
		width = len(name)
	}
	return
}

// ResolveFloat returns the index of a float register name.
func ResolveFloat(name string) (index Index, ok bool) {
	name = strings.ToUpper(name)

	var digits string
	switch {
	case strings.HasPrefix(name, "FR"):
		digits = name[2:]
	case strings.HasPrefix(name, "F"):
		digits = name[1:]
	default:
		return
	}

	if len(digits) == 0 || len(digits) > 2 {
		return
	}
	for _, c := range digits {
		if c < '0' || c > '9' {
			return
		}
	}

	value, err := strconv.Atoi(digits)
	if err != nil || value >= FLOAT_COUNT {
		return
	}

	return Index(value), true
}

// IsSpecial returns true for the stack and instruction pointer names.
func IsSpecial(name string) bool {
	return special[strings.ToUpper(name)]
}

// Name returns the canonical spelling of a register group.
// An out of range index or width yields the empty string.
func Name(index Index, width int) string {
	if index >= COUNT || width < 1 || width > MAX_WIDTH {
		return ""
	}

	var sb strings.Builder
	for n := range width {
		sb.WriteByte(byte('A' + (int(index)+n)%COUNT))
	}

	return sb.String()
}

// FloatName returns the canonical spelling of a float register.
func FloatName(index Index) string {
	if index >= FLOAT_COUNT {
		return ""
	}

	return "F" + strconv.Itoa(int(index))
}
