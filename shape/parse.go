package shape

import (
	"strings"
)

// splitTop splits a signature on commas that are not inside parentheses.
func splitTop(sig string) (tokens []string, err error) {
	depth := 0
	start := 0
	for n, c := range sig {
		switch c {
		case '(':
			depth++
			if depth > 1 {
				err = ErrShapeNesting(sig)
				return
			}
		case ')':
			depth--
			if depth < 0 {
				err = ErrShapeToken(sig)
				return
			}
		case ',':
			if depth == 0 {
				tokens = append(tokens, sig[start:n])
				start = n + 1
			}
		}
	}
	if depth != 0 {
		err = ErrShapeToken(sig)
		return
	}

	tokens = append(tokens, sig[start:])

	return
}

// repeated returns the length of word if it is 1-4 copies of c.
func repeated(word string, c byte) (width int, ok bool) {
	if len(word) == 0 || len(word) > MAX_WIDTH {
		return
	}
	for n := range len(word) {
		if word[n] != c {
			return
		}
	}

	return len(word), true
}

// parseScalar parses a register group or immediate token.
func parseScalar(token string) (op Operand, ok bool) {
	if width, is_reg := repeated(token, 'r'); is_reg {
		return Operand{Kind: KIND_REGISTER, Width: width}, true
	}
	if width, is_imm := repeated(token, 'n'); is_imm {
		return Operand{Kind: KIND_IMMEDIATE, Width: width, Bytes: width}, true
	}

	return
}

// parseToken parses a single top-level operand token.
func parseToken(token string) (op Operand, err error) {
	token = strings.TrimSpace(token)
	if len(token) == 0 {
		err = ErrShapeEmpty
		return
	}

	if token == "fr" {
		op = Operand{Kind: KIND_FLOAT}
		return
	}

	if token[0] == '(' {
		if token[len(token)-1] != ')' {
			err = ErrShapeToken(token)
			return
		}
		parts := strings.Split(token[1:len(token)-1], ",")
		if len(parts) > 1+MAX_DISPLACEMENT {
			err = ErrShapeNesting(token)
			return
		}
		for n, part := range parts {
			part = strings.TrimSpace(part)
			if len(part) == 0 {
				err = ErrShapeEmpty
				return
			}
			scalar, ok := parseScalar(part)
			if !ok {
				err = ErrShapeToken(part)
				return
			}
			if n == 0 {
				op = Operand{Kind: KIND_INDIRECT, Base: &scalar}
			} else {
				op.Displacement = append(op.Displacement, scalar)
			}
		}
		return
	}

	op, ok := parseScalar(token)
	if !ok {
		err = ErrShapeToken(token)
	}

	return
}

// Parse parses a shape signature. The empty signature is the empty shape.
func Parse(sig string) (sh Shape, err error) {
	if len(strings.TrimSpace(sig)) == 0 {
		return
	}

	tokens, err := splitTop(sig)
	if err != nil {
		return
	}

	sh = make(Shape, 0, len(tokens))
	for _, token := range tokens {
		var op Operand
		op, err = parseToken(token)
		if err != nil {
			sh = nil
			return
		}
		sh = append(sh, op)
	}

	// An immediate paired with a register group is no wider than the group.
	for n := 1; n < len(sh); n++ {
		prev := sh[n-1]
		if sh[n].Kind == KIND_IMMEDIATE && prev.Kind == KIND_REGISTER {
			sh[n].Bytes = min(sh[n].Width, prev.Width)
		}
	}

	return
}

// MustParse is Parse for signatures known to be valid. It panics on error.
func MustParse(sig string) Shape {
	sh, err := Parse(sig)
	if err != nil {
		panic(err)
	}

	return sh
}

// Canonical returns the canonical spelling of a signature.
func Canonical(sig string) (canon string, err error) {
	sh, err := Parse(sig)
	if err != nil {
		return
	}

	canon = sh.String()

	return
}
