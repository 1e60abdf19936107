// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package isa

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/fisa/operator"
	"github.com/ezrec/fisa/register"
)

// Macro represents a macro definition in the assembly language.
type Macro struct {
	LineNo int      // Line number of the macro definition.
	Args   []string // Arguments for the macro.
	Lines  []string // Lines of macro text to expand.
}

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO":          "0",
	"REGISTERS":       strconv.Itoa(register.COUNT),
	"FLOAT_REGISTERS": strconv.Itoa(register.FLOAT_COUNT),
}

// pending is an instruction waiting for its labels to be linked.
type pending struct {
	lineNo int
	line   string
	offset int
	words  []string
}

// Assembler is a two pass macro assembler.
//
// Each source line holds at most one instruction: a mnemonic followed by
// comma separated operands, for example "LD AB,(CDE,0x10)". Labels end
// with ':', comments start with ';', and $(...) is replaced by the value of
// a Starlark expression.
type Assembler struct {
	Verbose bool // If set, verbosely logs the assembler actions.

	predefine map[string]string   // Predefines
	Label     map[string]int      // Map of labels to code offsets.
	Equate    map[string]string   // Map of equates.
	Macro     map[string](*Macro) // Map of macros.

	pending    []pending
	offset     int
	expansions int  // Macro expansions so far.
	linking    bool // Labels must resolve.
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value int64, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		var v int64
		v, err = valueOf(str)
		if err != nil {
			// Ignore non-integer equates. They may be registers
			// or something else.
			err = nil
			continue
		}
		pred[key] = starlark.MakeInt64(v)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = ErrParseExpression(expr)
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	return
}

var (
	charRe  = regexp.MustCompile(`'\\?[^']'`)
	parenRe = regexp.MustCompile(`\$\([^\$]*\)`)
)

// expand replaces character literals and $() expressions with their values.
func (asm *Assembler) expand(line string) (text string, err error) {
	// Do 'x' evaluations
	text = charRe.ReplaceAllStringFunc(line, func(word string) string {
		str := word[1 : len(word)-1]
		if str[0] == '\\' {
			str = str[1:]
			switch str {
			case "\\":
				str = "\\"
			case "n":
				str = "\n"
			case "r":
				str = "\r"
			case "e":
				str = "\033"
			default:
				return word
			}
		} else if len(str) != 1 {
			return word
		}
		return fmt.Sprintf("%v", str[0])
	})

	// Do $() evaluations
	text = parenRe.ReplaceAllStringFunc(text, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%d", value)
	})

	return
}

// parseLine parses a single line, handling directives, labels and macros.
func (asm *Assembler) parseLine(line string, lineno int) (words []string, err error) {
	// Set line number.
	asm.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	line, err = asm.expand(line)
	if err != nil {
		return
	}

	words = strings.Fields(line)
	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if words[0] == ".equ" {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := asm.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[words[1]] = words[2]
		words = words[:0]
		return
	}

	for strings.HasSuffix(words[0], ":") {
		label := words[0][:len(words[0])-1]
		_, ok := asm.Label[label]
		if ok {
			err = ErrLabelDuplicate
			return
		}

		if asm.Label == nil {
			asm.Label = make(map[string]int, 16)
		}
		asm.Label[label] = asm.offset
		words = words[1:]
		if len(words) == 0 {
			return
		}
	}

	// .macro processing
	macro, ok := asm.Macro[words[0]]
	if ok {
		name := words[0]

		args := splitOperands(strings.Join(words[1:], " "))
		if len(args) != len(macro.Args) || slices.Contains(args, "") {
			err = ErrMacroSyntax
			return
		}
		// Turn args into equs
		old_equate := maps.Clone(asm.Equate)
		for n, arg := range macro.Args {
			asm.Equate[arg] = args[n]
		}
		defer func() { asm.Equate = old_equate }()

		// '@' makes labels local to this expansion.
		asm.expansions++
		local := fmt.Sprintf("%v_%v_", name, asm.expansions)

		for n, line := range macro.Lines {
			lineno := macro.LineNo + n

			line = strings.ReplaceAll(line, "@", local)
			words, err = asm.parseLine(line, lineno)
			if err != nil {
				err = &ErrMacro{Macro: name, Line: lineno, Err: err}
				err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
				return
			}

			err = asm.parseWords(words, lineno, line)
			if err != nil {
				err = &ErrMacro{Macro: name, Line: lineno, Err: err}
				err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
				return
			}
		}

		words = nil
		return
	}

	return
}

// parseWords sizes an instruction and queues it for linking.
func (asm *Assembler) parseWords(words []string, lineno int, line string) (err error) {
	if len(words) == 0 {
		return
	}

	// Operands are substituted now, while macro arguments are in scope.
	ops := splitOperands(strings.Join(words[1:], " "))
	for n, op := range ops {
		ops[n] = asm.substitute(op)
	}
	words = append([]string{words[0]}, ops...)

	data, err := asm.encodeWords(words[0], words[1:])
	if err != nil {
		return
	}

	if asm.Verbose {
		log.Printf("%06x: %v => % x", asm.offset, strings.Join(words, " "), data)
	}

	asm.pending = append(asm.pending, pending{lineNo: lineno, line: line, offset: asm.offset, words: words})
	asm.offset += len(data)

	return
}

// substitute replaces equates in an operand, including inside parentheses.
func (asm *Assembler) substitute(op string) string {
	if strings.HasPrefix(op, "(") && strings.HasSuffix(op, ")") {
		parts := splitOperands(op[1 : len(op)-1])
		for n, part := range parts {
			parts[n] = asm.substitute(part)
		}
		return "(" + strings.Join(parts, ",") + ")"
	}

	equate, ok := asm.Equate[op]
	if ok {
		return equate
	}

	return op
}

// encodeWords encodes an instruction, trying the narrowest operand shapes first.
func (asm *Assembler) encodeWords(mnemonic string, texts []string) (data []byte, err error) {
	reg := Registry()

	p, ok := reg.Primary(mnemonic)
	if !ok {
		err = ErrMnemonicUnknown(mnemonic)
		return
	}

	ops := make([]operand, len(texts))
	lists := make([][]string, len(texts))
	for n, text := range texts {
		ops[n], err = asm.classify(text, 0)
		if err != nil {
			return
		}
		lists[n] = ops[n].tokens()
	}

	operandless := true
	for range reg.Secondaries(p.Opcode) {
		operandless = false
		break
	}
	if operandless {
		if len(ops) > 0 {
			err = ErrOperandExtra
			return
		}
		data = []byte{p.Opcode}
		return
	}

	var rangeErr error
	for _, sig := range product(lists) {
		sec, ok := reg.Lookup(operator.Key(p.Mnemonic, sig))
		if !ok {
			continue
		}

		values := make([]uint64, len(ops))
		for n, op := range ops {
			values[n], err = op.field(sec.Shape[n])
			if err != nil {
				break
			}
		}
		if err != nil {
			if rangeErr == nil {
				rangeErr = err
			}
			err = nil
			continue
		}

		var body []byte
		body, err = sec.Encode(values...)
		if err != nil {
			return
		}

		data = append([]byte{p.Opcode}, body...)
		return
	}

	if rangeErr != nil {
		err = rangeErr
		return
	}

	err = ErrShapeUnknown{Mnemonic: p.Mnemonic, Operands: strings.Join(texts, ",")}

	return
}

// Encode assembles a single instruction. Labels from a previous Parse
// may be used as addresses.
func (asm *Assembler) Encode(line string) (data []byte, err error) {
	text, _, _ := strings.Cut(line, ";")

	text, err = asm.expand(text)
	if err != nil {
		return
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		err = ErrOpcodeMissing
		return
	}

	ops := splitOperands(strings.Join(words[1:], " "))
	for n, op := range ops {
		ops[n] = asm.substitute(op)
	}

	asm.linking = true
	defer func() { asm.linking = false }()

	data, err = asm.encodeWords(words[0], ops)

	return
}

// Parse parses an input stream into a Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {

	scanner := bufio.NewScanner(input)

	var line string
	var lineno int
	var macro *Macro

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	clear(asm.Label)
	asm.pending = asm.pending[:0]
	asm.offset = 0
	asm.expansions = 0
	asm.linking = false
	if asm.Macro == nil {
		asm.Macro = make(map[string](*Macro))
	}
	clear(asm.Macro)
	asm.Equate = maps.Clone(sysEquate)
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		text_comment := strings.Split(text, ";")
		line = strings.TrimSpace(text_comment[0])
		words := strings.Fields(line)

		// .macro NAME arg...
		if len(words) > 0 && words[0] == ".macro" {
			if macro != nil {
				err = ErrMacroNesting
				return
			}
			if len(words) < 2 {
				err = ErrMacroSyntax
				return
			}
			_, ok := asm.Macro[words[1]]
			if ok {
				err = ErrMacroDuplicate
				return
			}
			macro = &Macro{
				LineNo: lineno + 1,
			}
			if len(words) > 2 {
				macro.Args = splitOperands(strings.Join(words[2:], " "))
			}
			asm.Macro[words[1]] = macro
			continue
		}

		if len(words) > 0 && words[0] == ".endm" {
			if macro == nil {
				err = ErrMacroLonelyEndm
				return
			}
			macro = nil
			continue
		}

		if macro != nil {
			macro.Lines = append(macro.Lines, line)
			continue
		}

		words, err = asm.parseLine(line, lineno)
		if err != nil {
			return
		}

		err = asm.parseWords(words, lineno, line)
		if err != nil {
			return
		}
	}

	if macro != nil {
		err = ErrMacroLonely
		return
	}

	// Final linking of labels.
	asm.linking = true
	defer func() { asm.linking = false }()

	prog = &Program{}
	for _, pend := range asm.pending {
		lineno = pend.lineNo
		line = pend.line

		var data []byte
		data, err = asm.encodeWords(pend.words[0], pend.words[1:])
		if err != nil {
			prog = nil
			return
		}

		var ins Instruction
		ins, err = Disassemble(data)
		if err != nil {
			prog = nil
			return
		}
		ins.Offset = pend.offset
		ins.LineNo = pend.lineNo
		ins.Source = pend.line

		prog.Instructions = append(prog.Instructions, ins)
	}

	return
}

// Forms returns every key an instruction can be written as.
func Forms(mnemonic string) (keys []string) {
	reg := Registry()

	p, ok := reg.Primary(mnemonic)
	if !ok {
		return
	}

	for key, sec := range reg.Names() {
		if sec.Parent == p.Opcode {
			keys = append(keys, key)
		}
	}
	slices.Sort(keys)

	return
}
