package family

// Opcode is the first byte of an instruction, selecting its family.
type Opcode uint8

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_NOP  = Opcode(0)  // NOP
	OP_LD   = Opcode(1)  // LD
	OP_ADD  = Opcode(2)  // ADD
	OP_SUB  = Opcode(3)  // SUB
	OP_DIV  = Opcode(4)  // DIV
	OP_MUL  = Opcode(5)  // MUL
	OP_INC  = Opcode(6)  // INC
	OP_DEC  = Opcode(7)  // DEC
	OP_AND  = Opcode(8)  // AND
	OP_OR   = Opcode(9)  // OR
	OP_XOR  = Opcode(10) // XOR
	OP_SL   = Opcode(11) // SL
	OP_SR   = Opcode(12) // SR
	OP_RL   = Opcode(13) // RL
	OP_RR   = Opcode(14) // RR
	OP_CP   = Opcode(15) // CP
	OP_PUSH = Opcode(16) // PUSH
	OP_POP  = Opcode(17) // POP
	OP_JP   = Opcode(18) // JP
	OP_CALL = Opcode(19) // CALL
	OP_RET  = Opcode(20) // RET
	OP_EX   = Opcode(21) // EX
	OP_SQR  = Opcode(22) // SQR
	OP_SIN  = Opcode(23) // SIN
	OP_COS  = Opcode(24) // COS
	OP_TAN  = Opcode(25) // TAN
	OP_HALT = Opcode(26) // HALT
)
