package family

// Packed family layouts. The operand fields share byte 0 with the sub-opcode
// where they fit, and a sub-opcode with a literal extension bit is never
// also used without one.

var incDecMatrix = []Row{
	{Code: 0, Signature: "r", Layout: "oooAAAAA"},
	{Code: 1, Signature: "rr", Layout: "oooAAAAA"},
	{Code: 2, Signature: "rrr", Layout: "oooAAAAA"},
	{Code: 3, Signature: "rrrr", Layout: "oooAAAAA"},
	{Code: 4, Signature: "(rrr)", Layout: "oooAAAAA"},
	{Code: 5, Signature: "(nnn)", Layout: "ooouuuuu AAAAAAAA AAAAAAAA AAAAAAAA"},
	{Code: 6, Signature: "(rrr,nnn)", Layout: "oooAAAAA AAAAAAAA AAAAAAAA AAAAAAAA"},
	{Code: 7, Signature: "fr", Layout: "ooo0AAAA"},
	{Code: 7, Signature: "(nnn,rrr)", Layout: "ooo1uuuu AAAAAAAA AAAAAAAA AAAAAAAA uuuAAAAA"},
}

var shiftMatrix = []Row{
	{Code: 0, Signature: "r,n", Layout: "oooAAAAA BBBBBBBB"},
	{Code: 1, Signature: "rr,n", Layout: "oooAAAAA BBBBBBBB"},
	{Code: 2, Signature: "rrr,n", Layout: "oooAAAAA BBBBBBBB"},
	{Code: 3, Signature: "rrrr,n", Layout: "oooAAAAA BBBBBBBB"},
	{Code: 4, Signature: "r,r", Layout: "oooAAAAA BBBBBuuu"},
	{Code: 5, Signature: "rr,r", Layout: "oooAAAAA BBBBBuuu"},
	{Code: 6, Signature: "rrr,r", Layout: "oooAAAAA BBBBBuuu"},
	{Code: 7, Signature: "rrrr,r", Layout: "oooAAAAA BBBBBuuu"},
}

var flowMatrix = []Row{
	{Code: 0, Signature: "nnn", Layout: "oouuuuuu AAAAAAAA AAAAAAAA AAAAAAAA"},
	{Code: 1, Signature: "(nnn)", Layout: "oouuuuuu AAAAAAAA AAAAAAAA AAAAAAAA"},
	{Code: 2, Signature: "rrr", Layout: "ooAAAAAu"},
	{Code: 3, Signature: "(rrr)", Layout: "ooAAAAAu"},
}

var exchangeMatrix = []Row{
	{Code: 0, Signature: "r,r", Layout: "ooAAAAAB BBBBuuuu"},
	{Code: 1, Signature: "rr,rr", Layout: "ooAAAAAB BBBBuuuu"},
	{Code: 2, Signature: "rrr,rrr", Layout: "ooAAAAAB BBBBuuuu"},
	{Code: 3, Signature: "rrrr,rrrr", Layout: "oo0AAAAA BBBBBuuu"},
	{Code: 3, Signature: "fr,fr", Layout: "oo1AAAAB BBBuuuuu"},
}

var floatMatrix = []Row{
	{Code: 0, Signature: "fr", Layout: "ooAAAAuu"},
	{Code: 1, Signature: "fr,fr", Layout: "ooAAAABB BBuuuuuu"},
	{Code: 2, Signature: "fr,nnnn", Layout: "ooAAAAuu BBBBBBBB BBBBBBBB BBBBBBBB BBBBBBBB"},
	{Code: 3, Signature: "fr,(nnn)", Layout: "ooAAAAuu BBBBBBBB BBBBBBBB BBBBBBBB"},
}
