package isa

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/ezrec/fisa/register"
	"github.com/ezrec/fisa/shape"
)

// ADDRESS_BYTES is the width of a code or data address.
const ADDRESS_BYTES = 3

var labelRe = regexp.MustCompile(`^[A-Za-z_.][A-Za-z0-9_.]*$`)

// operand is a classified source operand.
type operand struct {
	text  string
	kind  shape.Kind
	width int            // Register group width.
	index register.Index // Register or float register index.
	value int64          // Immediate value.
	sizes []int          // Immediate widths that can hold the value, in bytes.
	parts []operand      // Indirect base and displacements.
}

// splitOperands splits operand text at top level commas.
func splitOperands(text string) (ops []string) {
	if len(strings.TrimSpace(text)) == 0 {
		return
	}

	depth := 0
	start := 0
	for n, c := range text {
		switch c {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				ops = append(ops, strings.TrimSpace(text[start:n]))
				start = n + 1
			}
		}
	}
	ops = append(ops, strings.TrimSpace(text[start:]))

	return
}

// valueOf returns the value of a number.
func valueOf(word string) (value int64, err error) {
	value, err = strconv.ParseInt(word, 0, 64)
	if err != nil {
		err = ErrOperandInvalid(word)
	}

	return
}

// immediateSizes returns the immediate widths able to hold a value.
// A hexadecimal literal is no narrower than its digits.
func immediateSizes(word string, value int64) (sizes []int, err error) {
	least := 1
	digits := strings.ToLower(strings.TrimLeft(word, "+-"))
	if strings.HasPrefix(digits, "0x") {
		digits = strings.ReplaceAll(digits[2:], "_", "")
		least = (len(digits) + 1) / 2
	}

	for size := least; size <= shape.MAX_WIDTH; size++ {
		bits := 8 * size
		if value >= -(int64(1)<<(bits-1)) && value < int64(1)<<bits {
			sizes = append(sizes, size)
		}
	}

	if len(sizes) == 0 {
		err = ErrValueRange{Operand: word, Value: value, Bits: 8 * shape.MAX_WIDTH}
	}

	return
}

// isFloat returns true for a decimal floating point literal.
func isFloat(word string) bool {
	digits := strings.ToLower(strings.TrimLeft(word, "+-"))
	if strings.HasPrefix(digits, "0x") || !strings.ContainsAny(digits, ".e") {
		return false
	}

	_, err := strconv.ParseFloat(word, 32)

	return err == nil
}

// classify determines the possible shapes of an operand.
func (asm *Assembler) classify(text string, depth int) (op operand, err error) {
	text = strings.TrimSpace(text)
	op.text = text

	if len(text) == 0 {
		err = ErrOperandEmpty
		return
	}

	if text[0] == '(' {
		if depth > 0 || !strings.HasSuffix(text, ")") {
			err = ErrOperandInvalid(text)
			return
		}
		inner := splitOperands(text[1 : len(text)-1])
		if len(inner) == 0 || len(inner) > 1+shape.MAX_DISPLACEMENT {
			err = ErrOperandInvalid(text)
			return
		}
		op.kind = shape.KIND_INDIRECT
		for _, word := range inner {
			var part operand
			part, err = asm.classify(word, depth+1)
			if err != nil {
				return
			}
			if part.kind != shape.KIND_REGISTER && part.kind != shape.KIND_IMMEDIATE {
				err = ErrOperandInvalid(text)
				return
			}
			op.parts = append(op.parts, part)
		}
		return
	}

	word := text
	equate, ok := asm.Equate[word]
	if ok {
		word = strings.TrimSpace(equate)
		if len(word) == 0 {
			err = ErrOperandEmpty
			return
		}
	}

	if register.IsSpecial(word) {
		err = ErrRegisterSpecial(strings.ToUpper(word))
		return
	}

	if index, ok := register.ResolveFloat(word); ok {
		op.kind = shape.KIND_FLOAT
		op.index = index
		return
	}

	if index, ok := register.Resolve(word); ok {
		op.kind = shape.KIND_REGISTER
		op.index = index
		op.width, _ = register.Width(word)
		return
	}

	op.kind = shape.KIND_IMMEDIATE

	switch {
	case isFloat(word):
		value, _ := strconv.ParseFloat(word, 32)
		op.value = int64(math.Float32bits(float32(value)))
		op.sizes = []int{4}
	case word[0] >= '0' && word[0] <= '9', word[0] == '-', word[0] == '+':
		op.value, err = valueOf(word)
		if err != nil {
			return
		}
		op.sizes, err = immediateSizes(word, op.value)
	case labelRe.MatchString(word):
		op.sizes = []int{ADDRESS_BYTES}
		if asm.linking {
			address, ok := asm.Label[word]
			if !ok {
				err = ErrLabelMissing(word)
				return
			}
			op.value = int64(address)
		}
	default:
		err = ErrOperandInvalid(text)
	}

	return
}

// tokens returns the shape tokens the operand can take, narrowest first.
func (op operand) tokens() (tokens []string) {
	switch op.kind {
	case shape.KIND_REGISTER:
		tokens = []string{strings.Repeat("r", op.width)}
	case shape.KIND_FLOAT:
		tokens = []string{"fr"}
	case shape.KIND_IMMEDIATE:
		for _, size := range op.sizes {
			tokens = append(tokens, strings.Repeat("n", size))
		}
	case shape.KIND_INDIRECT:
		lists := make([][]string, len(op.parts))
		for n, part := range op.parts {
			lists[n] = part.tokens()
		}
		for _, inner := range product(lists) {
			tokens = append(tokens, "("+inner+")")
		}
	}

	return
}

// product returns every comma joined combination of one token per list.
func product(lists [][]string) (sigs []string) {
	sigs = []string{""}
	for n, list := range lists {
		var next []string
		for _, prefix := range sigs {
			for _, token := range list {
				if n > 0 {
					next = append(next, prefix+","+token)
				} else {
					next = append(next, token)
				}
			}
		}
		sigs = next
	}

	return
}

// field returns the encoded field value of the operand for a shape.
func (op operand) field(sh shape.Operand) (value uint64, err error) {
	switch sh.Kind {
	case shape.KIND_REGISTER, shape.KIND_FLOAT:
		value = uint64(op.index)
	case shape.KIND_IMMEDIATE:
		bits := 8 * sh.Bytes
		if op.value < -(int64(1)<<(bits-1)) || op.value >= int64(1)<<bits {
			err = ErrValueRange{Operand: op.text, Value: op.value, Bits: bits}
			return
		}
		value = uint64(op.value) & ((uint64(1) << bits) - 1)
	case shape.KIND_INDIRECT:
		for n, part := range sh.Parts() {
			var v uint64
			v, err = op.parts[n].field(part)
			if err != nil {
				return
			}
			value = (value << part.Bits()) | v
		}
	}

	return
}
