package family

import (
	"github.com/ezrec/fisa/catalog"
)

// without is a filter rejecting modes of any of the classes.
func without(classes ...catalog.Class) func(catalog.Mode) bool {
	match := catalog.Classes(classes...)
	return func(mode catalog.Mode) bool {
		return !match(mode)
	}
}

var (
	loadModes  = []func(catalog.Mode) bool{without(catalog.CLASS_COUNT, catalog.CLASS_UNARY)}
	arithModes = []func(catalog.Mode) bool{without(catalog.CLASS_COUNT, catalog.CLASS_MOVE, catalog.CLASS_UNARY)}
	logicModes = []func(catalog.Mode) bool{without(catalog.CLASS_COUNT, catalog.CLASS_MOVE, catalog.CLASS_UNARY), catalog.Integer}
	pushModes  = []func(catalog.Mode) bool{catalog.Classes(catalog.CLASS_UNARY), catalog.Except("(nnn,rrr)")}
	popModes   = []func(catalog.Mode) bool{catalog.Classes(catalog.CLASS_UNARY), catalog.Except("nnn", "(nnn,rrr)")}
)

var families = []Family{
	{Opcode: OP_NOP, Title: "No operation", Description: "Does nothing."},
	{Opcode: OP_LD, Title: "Load", Description: "Copies %[2]v into %[1]v.", Modes: loadModes},
	{Opcode: OP_ADD, Title: "Add", Description: "Adds %[2]v to %[1]v.", Modes: arithModes},
	{Opcode: OP_SUB, Title: "Subtract", Description: "Subtracts %[2]v from %[1]v.", Modes: arithModes},
	{Opcode: OP_DIV, Title: "Divide", Description: "Divides %[1]v by %[2]v.", Modes: arithModes},
	{Opcode: OP_MUL, Title: "Multiply", Description: "Multiplies %[1]v by %[2]v.", Modes: arithModes},
	{Opcode: OP_INC, Title: "Increment", Description: "Adds one to %[1]v.", Matrix: incDecMatrix},
	{Opcode: OP_DEC, Title: "Decrement", Description: "Subtracts one from %[1]v.", Matrix: incDecMatrix},
	{Opcode: OP_AND, Title: "Bitwise and", Description: "Masks %[1]v with %[2]v.", Modes: logicModes},
	{Opcode: OP_OR, Title: "Bitwise or", Description: "Sets the bits of %[2]v in %[1]v.", Modes: logicModes},
	{Opcode: OP_XOR, Title: "Bitwise exclusive or", Description: "Flips the bits of %[2]v in %[1]v.", Modes: logicModes},
	{Opcode: OP_SL, Title: "Shift left", Description: "Shifts %[1]v left by %[2]v bits.", Matrix: shiftMatrix},
	{Opcode: OP_SR, Title: "Shift right", Description: "Shifts %[1]v right by %[2]v bits.", Matrix: shiftMatrix},
	{Opcode: OP_RL, Title: "Rotate left", Description: "Rotates %[1]v left by %[2]v bits.", Matrix: shiftMatrix},
	{Opcode: OP_RR, Title: "Rotate right", Description: "Rotates %[1]v right by %[2]v bits.", Matrix: shiftMatrix},
	{Opcode: OP_CP, Title: "Compare", Description: "Compares %[1]v with %[2]v and sets the flags.", Modes: arithModes},
	{Opcode: OP_PUSH, Title: "Push", Description: "Pushes %[1]v onto the stack.", Modes: pushModes},
	{Opcode: OP_POP, Title: "Pop", Description: "Pops the top of the stack into %[1]v.", Modes: popModes},
	{Opcode: OP_JP, Title: "Jump", Description: "Continues execution at %[1]v.", Matrix: flowMatrix},
	{Opcode: OP_CALL, Title: "Call", Description: "Pushes the return address and continues execution at %[1]v.", Matrix: flowMatrix},
	{Opcode: OP_RET, Title: "Return", Description: "Pops the return address and continues execution there."},
	{Opcode: OP_EX, Title: "Exchange", Description: "Swaps %[1]v and %[2]v.", Matrix: exchangeMatrix},
	{Opcode: OP_SQR, Title: "Square root", Description: "Stores a square root in %[1]v.", Matrix: floatMatrix},
	{Opcode: OP_SIN, Title: "Sine", Description: "Stores a sine in %[1]v.", Matrix: floatMatrix},
	{Opcode: OP_COS, Title: "Cosine", Description: "Stores a cosine in %[1]v.", Matrix: floatMatrix},
	{Opcode: OP_TAN, Title: "Tangent", Description: "Stores a tangent in %[1]v.", Matrix: floatMatrix},
	{Opcode: OP_HALT, Title: "Halt", Description: "Stops the processor."},
}
