package catalog

// Addressing mode table. Entries are only ever appended: the ID of an entry
// is its position in binaryModes followed by unaryModes, and the same ID
// names the same operand shape in every instruction family that uses it.
//
// Layout is the reference layout for families using all of byte 0 as the
// sub-opcode. An alias signature compiles to exactly the same layout as its
// entry and shares its ID.

var binaryModes = []Mode{
	// Register, immediate of matching width
	{ID: 0, Signature: "r,n", Class: CLASS_IMMEDIATE, Layout: "oooooooo uuuAAAAA BBBBBBBB", Aliases: []string{"r,nn", "r,nnn", "r,nnnn"}},
	{ID: 1, Signature: "rr,nn", Class: CLASS_IMMEDIATE, Layout: "oooooooo uuuAAAAA BBBBBBBB BBBBBBBB", Aliases: []string{"rr,nnn", "rr,nnnn"}},
	{ID: 2, Signature: "rrr,nnn", Class: CLASS_IMMEDIATE, Layout: "oooooooo uuuAAAAA BBBBBBBB BBBBBBBB BBBBBBBB", Aliases: []string{"rrr,nnnn"}},
	{ID: 3, Signature: "rrrr,nnnn", Class: CLASS_IMMEDIATE, Layout: "oooooooo uuuAAAAA BBBBBBBB BBBBBBBB BBBBBBBB BBBBBBBB"},
	{ID: 4, Signature: "fr,nnnn", Class: CLASS_IMMEDIATE, Layout: "oooooooo uuuuAAAA BBBBBBBB BBBBBBBB BBBBBBBB BBBBBBBB"},

	// Register, register
	{ID: 5, Signature: "r,r", Class: CLASS_REGISTER, Layout: "oooooooo uuuuuuAA AAABBBBB"},
	{ID: 6, Signature: "r,rr", Class: CLASS_REGISTER, Layout: "oooooooo uuuuuuAA AAABBBBB"},
	{ID: 7, Signature: "r,rrr", Class: CLASS_REGISTER, Layout: "oooooooo uuuuuuAA AAABBBBB"},
	{ID: 8, Signature: "r,rrrr", Class: CLASS_REGISTER, Layout: "oooooooo uuuuuuAA AAABBBBB"},
	{ID: 9, Signature: "rr,r", Class: CLASS_REGISTER, Layout: "oooooooo uuuuuuAA AAABBBBB"},
	{ID: 10, Signature: "rr,rr", Class: CLASS_REGISTER, Layout: "oooooooo uuuuuuAA AAABBBBB"},
	{ID: 11, Signature: "rr,rrr", Class: CLASS_REGISTER, Layout: "oooooooo uuuuuuAA AAABBBBB"},
	{ID: 12, Signature: "rr,rrrr", Class: CLASS_REGISTER, Layout: "oooooooo uuuuuuAA AAABBBBB"},
	{ID: 13, Signature: "rrr,r", Class: CLASS_REGISTER, Layout: "oooooooo uuuuuuAA AAABBBBB"},
	{ID: 14, Signature: "rrr,rr", Class: CLASS_REGISTER, Layout: "oooooooo uuuuuuAA AAABBBBB"},
	{ID: 15, Signature: "rrr,rrr", Class: CLASS_REGISTER, Layout: "oooooooo uuuuuuAA AAABBBBB"},
	{ID: 16, Signature: "rrr,rrrr", Class: CLASS_REGISTER, Layout: "oooooooo uuuuuuAA AAABBBBB"},
	{ID: 17, Signature: "rrrr,r", Class: CLASS_REGISTER, Layout: "oooooooo uuuuuuAA AAABBBBB"},
	{ID: 18, Signature: "rrrr,rr", Class: CLASS_REGISTER, Layout: "oooooooo uuuuuuAA AAABBBBB"},
	{ID: 19, Signature: "rrrr,rrr", Class: CLASS_REGISTER, Layout: "oooooooo uuuuuuAA AAABBBBB"},
	{ID: 20, Signature: "rrrr,rrrr", Class: CLASS_REGISTER, Layout: "oooooooo uuuuuuAA AAABBBBB"},
	{ID: 21, Signature: "fr,fr", Class: CLASS_REGISTER, Layout: "oooooooo AAAABBBB"},
	{ID: 22, Signature: "fr,r", Class: CLASS_REGISTER, Layout: "oooooooo uuuuuuuA AAABBBBB"},
	{ID: 23, Signature: "fr,rr", Class: CLASS_REGISTER, Layout: "oooooooo uuuuuuuA AAABBBBB"},
	{ID: 24, Signature: "fr,rrr", Class: CLASS_REGISTER, Layout: "oooooooo uuuuuuuA AAABBBBB"},
	{ID: 25, Signature: "fr,rrrr", Class: CLASS_REGISTER, Layout: "oooooooo uuuuuuuA AAABBBBB"},
	{ID: 26, Signature: "r,fr", Class: CLASS_REGISTER, Layout: "oooooooo uuuuuuuA AAAABBBB"},
	{ID: 27, Signature: "rr,fr", Class: CLASS_REGISTER, Layout: "oooooooo uuuuuuuA AAAABBBB"},
	{ID: 28, Signature: "rrr,fr", Class: CLASS_REGISTER, Layout: "oooooooo uuuuuuuA AAAABBBB"},
	{ID: 29, Signature: "rrrr,fr", Class: CLASS_REGISTER, Layout: "oooooooo uuuuuuuA AAAABBBB"},

	// Register group, 8-bit count
	{ID: 30, Signature: "rr,n", Class: CLASS_COUNT, Layout: "oooooooo uuuAAAAA BBBBBBBB"},
	{ID: 31, Signature: "rrr,n", Class: CLASS_COUNT, Layout: "oooooooo uuuAAAAA BBBBBBBB"},
	{ID: 32, Signature: "rrrr,n", Class: CLASS_COUNT, Layout: "oooooooo uuuAAAAA BBBBBBBB"},

	// Register, memory
	{ID: 33, Signature: "r,(nnn)", Class: CLASS_LOAD, Layout: "oooooooo uuuAAAAA BBBBBBBB BBBBBBBB BBBBBBBB"},
	{ID: 34, Signature: "r,(rrr)", Class: CLASS_LOAD, Layout: "oooooooo uuuuuuAA AAABBBBB"},
	{ID: 35, Signature: "r,(nnn,nnn)", Class: CLASS_LOAD, Layout: "oooooooo uuuAAAAA BBBBBBBB BBBBBBBB BBBBBBBB BBBBBBBB BBBBBBBB BBBBBBBB"},
	{ID: 36, Signature: "r,(nnn,r)", Class: CLASS_LOAD, Layout: "oooooooo uuuAAAAA BBBBBBBB BBBBBBBB BBBBBBBB uuuBBBBB"},
	{ID: 37, Signature: "r,(nnn,rr)", Class: CLASS_LOAD, Layout: "oooooooo uuuAAAAA BBBBBBBB BBBBBBBB BBBBBBBB uuuBBBBB"},
	{ID: 38, Signature: "r,(nnn,rrr)", Class: CLASS_LOAD, Layout: "oooooooo uuuAAAAA BBBBBBBB BBBBBBBB BBBBBBBB uuuBBBBB"},
	{ID: 39, Signature: "r,(rrr,nnn)", Class: CLASS_LOAD, Layout: "oooooooo uuuuuuAA AAABBBBB BBBBBBBB BBBBBBBB BBBBBBBB"},
	{ID: 40, Signature: "r,(rrr,r)", Class: CLASS_LOAD, Layout: "oooooooo uAAAAABB BBBBBBBB"},
	{ID: 41, Signature: "r,(rrr,rr)", Class: CLASS_LOAD, Layout: "oooooooo uAAAAABB BBBBBBBB"},
	{ID: 42, Signature: "r,(rrr,rrr)", Class: CLASS_LOAD, Layout: "oooooooo uAAAAABB BBBBBBBB"},
	{ID: 43, Signature: "r,(rrr,nnn,r)", Class: CLASS_LOAD, Layout: "oooooooo uuuuuuAA AAABBBBB BBBBBBBB BBBBBBBB BBBBBBBB uuuBBBBB"},
	{ID: 44, Signature: "r,(rrr,nnn,rrr)", Class: CLASS_LOAD, Layout: "oooooooo uuuuuuAA AAABBBBB BBBBBBBB BBBBBBBB BBBBBBBB uuuBBBBB"},
	{ID: 45, Signature: "r,(rrr,rrr,nnn)", Class: CLASS_LOAD, Layout: "oooooooo uAAAAABB BBBBBBBB BBBBBBBB BBBBBBBB BBBBBBBB"},
	{ID: 46, Signature: "r,(nnn,rrr,nnn)", Class: CLASS_LOAD, Layout: "oooooooo uuuAAAAA BBBBBBBB BBBBBBBB BBBBBBBB uuuBBBBB BBBBBBBB BBBBBBBB BBBBBBBB"},
	{ID: 47, Signature: "rr,(nnn)", Class: CLASS_LOAD, Layout: "oooooooo uuuAAAAA BBBBBBBB BBBBBBBB BBBBBBBB"},
	{ID: 48, Signature: "rr,(rrr)", Class: CLASS_LOAD, Layout: "oooooooo uuuuuuAA AAABBBBB"},
	{ID: 49, Signature: "rr,(nnn,nnn)", Class: CLASS_LOAD, Layout: "oooooooo uuuAAAAA BBBBBBBB BBBBBBBB BBBBBBBB BBBBBBBB BBBBBBBB BBBBBBBB"},
	{ID: 50, Signature: "rr,(nnn,r)", Class: CLASS_LOAD, Layout: "oooooooo uuuAAAAA BBBBBBBB BBBBBBBB BBBBBBBB uuuBBBBB"},
	{ID: 51, Signature: "rr,(nnn,rr)", Class: CLASS_LOAD, Layout: "oooooooo uuuAAAAA BBBBBBBB BBBBBBBB BBBBBBBB uuuBBBBB"},
	{ID: 52, Signature: "rr,(nnn,rrr)", Class: CLASS_LOAD, Layout: "oooooooo uuuAAAAA BBBBBBBB BBBBBBBB BBBBBBBB uuuBBBBB"},
	{ID: 53, Signature: "rr,(rrr,nnn)", Class: CLASS_LOAD, Layout: "oooooooo uuuuuuAA AAABBBBB BBBBBBBB BBBBBBBB BBBBBBBB"},
	{ID: 54, Signature: "rr,(rrr,r)", Class: CLASS_LOAD, Layout: "oooooooo uAAAAABB BBBBBBBB"},
	{ID: 55, Signature: "rr,(rrr,rr)", Class: CLASS_LOAD, Layout: "oooooooo uAAAAABB BBBBBBBB"},
	{ID: 56, Signature: "rr,(rrr,rrr)", Class: CLASS_LOAD, Layout: "oooooooo uAAAAABB BBBBBBBB"},
	{ID: 57, Signature: "rr,(rrr,nnn,r)", Class: CLASS_LOAD, Layout: "oooooooo uuuuuuAA AAABBBBB BBBBBBBB BBBBBBBB BBBBBBBB uuuBBBBB"},
	{ID: 58, Signature: "rr,(rrr,nnn,rrr)", Class: CLASS_LOAD, Layout: "oooooooo uuuuuuAA AAABBBBB BBBBBBBB BBBBBBBB BBBBBBBB uuuBBBBB"},
	{ID: 59, Signature: "rr,(rrr,rrr,nnn)", Class: CLASS_LOAD, Layout: "oooooooo uAAAAABB BBBBBBBB BBBBBBBB BBBBBBBB BBBBBBBB"},
	{ID: 60, Signature: "rr,(nnn,rrr,nnn)", Class: CLASS_LOAD, Layout: "oooooooo uuuAAAAA BBBBBBBB BBBBBBBB BBBBBBBB uuuBBBBB BBBBBBBB BBBBBBBB BBBBBBBB"},
	{ID: 61, Signature: "rrr,(nnn)", Class: CLASS_LOAD, Layout: "oooooooo uuuAAAAA BBBBBBBB BBBBBBBB BBBBBBBB"},
	{ID: 62, Signature: "rrr,(rrr)", Class: CLASS_LOAD, Layout: "oooooooo uuuuuuAA AAABBBBB"},
	{ID: 63, Signature: "rrr,(nnn,nnn)", Class: CLASS_LOAD, Layout: "oooooooo uuuAAAAA BBBBBBBB BBBBBBBB BBBBBBBB BBBBBBBB BBBBBBBB BBBBBBBB"},
	{ID: 64, Signature: "rrr,(nnn,r)", Class: CLASS_LOAD, Layout: "oooooooo uuuAAAAA BBBBBBBB BBBBBBBB BBBBBBBB uuuBBBBB"},
	{ID: 65, Signature: "rrr,(nnn,rr)", Class: CLASS_LOAD, Layout: "oooooooo uuuAAAAA BBBBBBBB BBBBBBBB BBBBBBBB uuuBBBBB"},
	{ID: 66, Signature: "rrr,(nnn,rrr)", Class: CLASS_LOAD, Layout: "oooooooo uuuAAAAA BBBBBBBB BBBBBBBB BBBBBBBB uuuBBBBB"},
	{ID: 67, Signature: "rrr,(rrr,nnn)", Class: CLASS_LOAD, Layout: "oooooooo uuuuuuAA AAABBBBB BBBBBBBB BBBBBBBB BBBBBBBB"},
	{ID: 68, Signature: "rrr,(rrr,r)", Class: CLASS_LOAD, Layout: "oooooooo uAAAAABB BBBBBBBB"},
	{ID: 69, Signature: "rrr,(rrr,rr)", Class: CLASS_LOAD, Layout: "oooooooo uAAAAABB BBBBBBBB"},
	{ID: 70, Signature: "rrr,(rrr,rrr)", Class: CLASS_LOAD, Layout: "oooooooo uAAAAABB BBBBBBBB"},
	{ID: 71, Signature: "rrr,(rrr,nnn,r)", Class: CLASS_LOAD, Layout: "oooooooo uuuuuuAA AAABBBBB BBBBBBBB BBBBBBBB BBBBBBBB uuuBBBBB"},
	{ID: 72, Signature: "rrr,(rrr,nnn,rrr)", Class: CLASS_LOAD, Layout: "oooooooo uuuuuuAA AAABBBBB BBBBBBBB BBBBBBBB BBBBBBBB uuuBBBBB"},
	{ID: 73, Signature: "rrr,(rrr,rrr,nnn)", Class: CLASS_LOAD, Layout: "oooooooo uAAAAABB BBBBBBBB BBBBBBBB BBBBBBBB BBBBBBBB"},
	{ID: 74, Signature: "rrr,(nnn,rrr,nnn)", Class: CLASS_LOAD, Layout: "oooooooo uuuAAAAA BBBBBBBB BBBBBBBB BBBBBBBB uuuBBBBB BBBBBBBB BBBBBBBB BBBBBBBB"},
	{ID: 75, Signature: "rrrr,(nnn)", Class: CLASS_LOAD, Layout: "oooooooo uuuAAAAA BBBBBBBB BBBBBBBB BBBBBBBB"},
	{ID: 76, Signature: "rrrr,(rrr)", Class: CLASS_LOAD, Layout: "oooooooo uuuuuuAA AAABBBBB"},
	{ID: 77, Signature: "rrrr,(nnn,nnn)", Class: CLASS_LOAD, Layout: "oooooooo uuuAAAAA BBBBBBBB BBBBBBBB BBBBBBBB BBBBBBBB BBBBBBBB BBBBBBBB"},
	{ID: 78, Signature: "rrrr,(nnn,r)", Class: CLASS_LOAD, Layout: "oooooooo uuuAAAAA BBBBBBBB BBBBBBBB BBBBBBBB uuuBBBBB"},
	{ID: 79, Signature: "rrrr,(nnn,rr)", Class: CLASS_LOAD, Layout: "oooooooo uuuAAAAA BBBBBBBB BBBBBBBB BBBBBBBB uuuBBBBB"},
	{ID: 80, Signature: "rrrr,(nnn,rrr)", Class: CLASS_LOAD, Layout: "oooooooo uuuAAAAA BBBBBBBB BBBBBBBB BBBBBBBB uuuBBBBB"},
	{ID: 81, Signature: "rrrr,(rrr,nnn)", Class: CLASS_LOAD, Layout: "oooooooo uuuuuuAA AAABBBBB BBBBBBBB BBBBBBBB BBBBBBBB"},
	{ID: 82, Signature: "rrrr,(rrr,r)", Class: CLASS_LOAD, Layout: "oooooooo uAAAAABB BBBBBBBB"},
	{ID: 83, Signature: "rrrr,(rrr,rr)", Class: CLASS_LOAD, Layout: "oooooooo uAAAAABB BBBBBBBB"},
	{ID: 84, Signature: "rrrr,(rrr,rrr)", Class: CLASS_LOAD, Layout: "oooooooo uAAAAABB BBBBBBBB"},
	{ID: 85, Signature: "rrrr,(rrr,nnn,r)", Class: CLASS_LOAD, Layout: "oooooooo uuuuuuAA AAABBBBB BBBBBBBB BBBBBBBB BBBBBBBB uuuBBBBB"},
	{ID: 86, Signature: "rrrr,(rrr,nnn,rrr)", Class: CLASS_LOAD, Layout: "oooooooo uuuuuuAA AAABBBBB BBBBBBBB BBBBBBBB BBBBBBBB uuuBBBBB"},
	{ID: 87, Signature: "rrrr,(rrr,rrr,nnn)", Class: CLASS_LOAD, Layout: "oooooooo uAAAAABB BBBBBBBB BBBBBBBB BBBBBBBB BBBBBBBB"},
	{ID: 88, Signature: "rrrr,(nnn,rrr,nnn)", Class: CLASS_LOAD, Layout: "oooooooo uuuAAAAA BBBBBBBB BBBBBBBB BBBBBBBB uuuBBBBB BBBBBBBB BBBBBBBB BBBBBBBB"},
	{ID: 89, Signature: "fr,(nnn)", Class: CLASS_LOAD, Layout: "oooooooo uuuuAAAA BBBBBBBB BBBBBBBB BBBBBBBB"},
	{ID: 90, Signature: "fr,(rrr)", Class: CLASS_LOAD, Layout: "oooooooo uuuuuuuA AAABBBBB"},
	{ID: 91, Signature: "fr,(nnn,nnn)", Class: CLASS_LOAD, Layout: "oooooooo uuuuAAAA BBBBBBBB BBBBBBBB BBBBBBBB BBBBBBBB BBBBBBBB BBBBBBBB"},
	{ID: 92, Signature: "fr,(nnn,r)", Class: CLASS_LOAD, Layout: "oooooooo uuuuAAAA BBBBBBBB BBBBBBBB BBBBBBBB uuuBBBBB"},
	{ID: 93, Signature: "fr,(nnn,rr)", Class: CLASS_LOAD, Layout: "oooooooo uuuuAAAA BBBBBBBB BBBBBBBB BBBBBBBB uuuBBBBB"},
	{ID: 94, Signature: "fr,(nnn,rrr)", Class: CLASS_LOAD, Layout: "oooooooo uuuuAAAA BBBBBBBB BBBBBBBB BBBBBBBB uuuBBBBB"},
	{ID: 95, Signature: "fr,(rrr,nnn)", Class: CLASS_LOAD, Layout: "oooooooo uuuuuuuA AAABBBBB BBBBBBBB BBBBBBBB BBBBBBBB"},
	{ID: 96, Signature: "fr,(rrr,r)", Class: CLASS_LOAD, Layout: "oooooooo uuAAAABB BBBBBBBB"},
	{ID: 97, Signature: "fr,(rrr,rr)", Class: CLASS_LOAD, Layout: "oooooooo uuAAAABB BBBBBBBB"},
	{ID: 98, Signature: "fr,(rrr,rrr)", Class: CLASS_LOAD, Layout: "oooooooo uuAAAABB BBBBBBBB"},
	{ID: 99, Signature: "fr,(rrr,nnn,r)", Class: CLASS_LOAD, Layout: "oooooooo uuuuuuuA AAABBBBB BBBBBBBB BBBBBBBB BBBBBBBB uuuBBBBB"},
	{ID: 100, Signature: "fr,(rrr,nnn,rrr)", Class: CLASS_LOAD, Layout: "oooooooo uuuuuuuA AAABBBBB BBBBBBBB BBBBBBBB BBBBBBBB uuuBBBBB"},
	{ID: 101, Signature: "fr,(rrr,rrr,nnn)", Class: CLASS_LOAD, Layout: "oooooooo uuAAAABB BBBBBBBB BBBBBBBB BBBBBBBB BBBBBBBB"},
	{ID: 102, Signature: "fr,(nnn,rrr,nnn)", Class: CLASS_LOAD, Layout: "oooooooo uuuuAAAA BBBBBBBB BBBBBBBB BBBBBBBB uuuBBBBB BBBBBBBB BBBBBBBB BBBBBBBB"},

	// Memory, register
	{ID: 103, Signature: "(nnn),r", Class: CLASS_STORE, Layout: "oooooooo AAAAAAAA AAAAAAAA AAAAAAAA uuuBBBBB"},
	{ID: 104, Signature: "(nnn),rr", Class: CLASS_STORE, Layout: "oooooooo AAAAAAAA AAAAAAAA AAAAAAAA uuuBBBBB"},
	{ID: 105, Signature: "(nnn),rrr", Class: CLASS_STORE, Layout: "oooooooo AAAAAAAA AAAAAAAA AAAAAAAA uuuBBBBB"},
	{ID: 106, Signature: "(nnn),rrrr", Class: CLASS_STORE, Layout: "oooooooo AAAAAAAA AAAAAAAA AAAAAAAA uuuBBBBB"},
	{ID: 107, Signature: "(nnn),fr", Class: CLASS_STORE, Layout: "oooooooo AAAAAAAA AAAAAAAA AAAAAAAA uuuuBBBB"},
	{ID: 108, Signature: "(rrr),r", Class: CLASS_STORE, Layout: "oooooooo uuuuuuAA AAABBBBB"},
	{ID: 109, Signature: "(rrr),rr", Class: CLASS_STORE, Layout: "oooooooo uuuuuuAA AAABBBBB"},
	{ID: 110, Signature: "(rrr),rrr", Class: CLASS_STORE, Layout: "oooooooo uuuuuuAA AAABBBBB"},
	{ID: 111, Signature: "(rrr),rrrr", Class: CLASS_STORE, Layout: "oooooooo uuuuuuAA AAABBBBB"},
	{ID: 112, Signature: "(rrr),fr", Class: CLASS_STORE, Layout: "oooooooo uuuuuuuA AAAABBBB"},
	{ID: 113, Signature: "(nnn,nnn),r", Class: CLASS_STORE, Layout: "oooooooo AAAAAAAA AAAAAAAA AAAAAAAA AAAAAAAA AAAAAAAA AAAAAAAA uuuBBBBB"},
	{ID: 114, Signature: "(nnn,nnn),rr", Class: CLASS_STORE, Layout: "oooooooo AAAAAAAA AAAAAAAA AAAAAAAA AAAAAAAA AAAAAAAA AAAAAAAA uuuBBBBB"},
	{ID: 115, Signature: "(nnn,nnn),rrr", Class: CLASS_STORE, Layout: "oooooooo AAAAAAAA AAAAAAAA AAAAAAAA AAAAAAAA AAAAAAAA AAAAAAAA uuuBBBBB"},
	{ID: 116, Signature: "(nnn,nnn),rrrr", Class: CLASS_STORE, Layout: "oooooooo AAAAAAAA AAAAAAAA AAAAAAAA AAAAAAAA AAAAAAAA AAAAAAAA uuuBBBBB"},
	{ID: 117, Signature: "(nnn,nnn),fr", Class: CLASS_STORE, Layout: "oooooooo AAAAAAAA AAAAAAAA AAAAAAAA AAAAAAAA AAAAAAAA AAAAAAAA uuuuBBBB"},
	{ID: 118, Signature: "(nnn,r),r", Class: CLASS_STORE, Layout: "oooooooo AAAAAAAA AAAAAAAA AAAAAAAA uuuuuuAA AAABBBBB"},
	{ID: 119, Signature: "(nnn,r),rr", Class: CLASS_STORE, Layout: "oooooooo AAAAAAAA AAAAAAAA AAAAAAAA uuuuuuAA AAABBBBB"},
	{ID: 120, Signature: "(nnn,r),rrr", Class: CLASS_STORE, Layout: "oooooooo AAAAAAAA AAAAAAAA AAAAAAAA uuuuuuAA AAABBBBB"},
	{ID: 121, Signature: "(nnn,r),rrrr", Class: CLASS_STORE, Layout: "oooooooo AAAAAAAA AAAAAAAA AAAAAAAA uuuuuuAA AAABBBBB"},
	{ID: 122, Signature: "(nnn,r),fr", Class: CLASS_STORE, Layout: "oooooooo AAAAAAAA AAAAAAAA AAAAAAAA uuuuuuuA AAAABBBB"},
	{ID: 123, Signature: "(nnn,rr),r", Class: CLASS_STORE, Layout: "oooooooo AAAAAAAA AAAAAAAA AAAAAAAA uuuuuuAA AAABBBBB"},
	{ID: 124, Signature: "(nnn,rr),rr", Class: CLASS_STORE, Layout: "oooooooo AAAAAAAA AAAAAAAA AAAAAAAA uuuuuuAA AAABBBBB"},
	{ID: 125, Signature: "(nnn,rr),rrr", Class: CLASS_STORE, Layout: "oooooooo AAAAAAAA AAAAAAAA AAAAAAAA uuuuuuAA AAABBBBB"},
	{ID: 126, Signature: "(nnn,rr),rrrr", Class: CLASS_STORE, Layout: "oooooooo AAAAAAAA AAAAAAAA AAAAAAAA uuuuuuAA AAABBBBB"},
	{ID: 127, Signature: "(nnn,rr),fr", Class: CLASS_STORE, Layout: "oooooooo AAAAAAAA AAAAAAAA AAAAAAAA uuuuuuuA AAAABBBB"},
	{ID: 128, Signature: "(nnn,rrr),r", Class: CLASS_STORE, Layout: "oooooooo AAAAAAAA AAAAAAAA AAAAAAAA uuuuuuAA AAABBBBB"},
	{ID: 129, Signature: "(nnn,rrr),rr", Class: CLASS_STORE, Layout: "oooooooo AAAAAAAA AAAAAAAA AAAAAAAA uuuuuuAA AAABBBBB"},
	{ID: 130, Signature: "(nnn,rrr),rrr", Class: CLASS_STORE, Layout: "oooooooo AAAAAAAA AAAAAAAA AAAAAAAA uuuuuuAA AAABBBBB"},
	{ID: 131, Signature: "(nnn,rrr),rrrr", Class: CLASS_STORE, Layout: "oooooooo AAAAAAAA AAAAAAAA AAAAAAAA uuuuuuAA AAABBBBB"},
	{ID: 132, Signature: "(nnn,rrr),fr", Class: CLASS_STORE, Layout: "oooooooo AAAAAAAA AAAAAAAA AAAAAAAA uuuuuuuA AAAABBBB"},
	{ID: 133, Signature: "(rrr,nnn),r", Class: CLASS_STORE, Layout: "oooooooo uuuAAAAA AAAAAAAA AAAAAAAA AAAAAAAA uuuBBBBB"},
	{ID: 134, Signature: "(rrr,nnn),rr", Class: CLASS_STORE, Layout: "oooooooo uuuAAAAA AAAAAAAA AAAAAAAA AAAAAAAA uuuBBBBB"},
	{ID: 135, Signature: "(rrr,nnn),rrr", Class: CLASS_STORE, Layout: "oooooooo uuuAAAAA AAAAAAAA AAAAAAAA AAAAAAAA uuuBBBBB"},
	{ID: 136, Signature: "(rrr,nnn),rrrr", Class: CLASS_STORE, Layout: "oooooooo uuuAAAAA AAAAAAAA AAAAAAAA AAAAAAAA uuuBBBBB"},
	{ID: 137, Signature: "(rrr,nnn),fr", Class: CLASS_STORE, Layout: "oooooooo uuuAAAAA AAAAAAAA AAAAAAAA AAAAAAAA uuuuBBBB"},
	{ID: 138, Signature: "(rrr,r),r", Class: CLASS_STORE, Layout: "oooooooo uAAAAAAA AAABBBBB"},
	{ID: 139, Signature: "(rrr,r),rr", Class: CLASS_STORE, Layout: "oooooooo uAAAAAAA AAABBBBB"},
	{ID: 140, Signature: "(rrr,r),rrr", Class: CLASS_STORE, Layout: "oooooooo uAAAAAAA AAABBBBB"},
	{ID: 141, Signature: "(rrr,r),rrrr", Class: CLASS_STORE, Layout: "oooooooo uAAAAAAA AAABBBBB"},
	{ID: 142, Signature: "(rrr,r),fr", Class: CLASS_STORE, Layout: "oooooooo uuAAAAAA AAAABBBB"},
	{ID: 143, Signature: "(rrr,rr),r", Class: CLASS_STORE, Layout: "oooooooo uAAAAAAA AAABBBBB"},
	{ID: 144, Signature: "(rrr,rr),rr", Class: CLASS_STORE, Layout: "oooooooo uAAAAAAA AAABBBBB"},
	{ID: 145, Signature: "(rrr,rr),rrr", Class: CLASS_STORE, Layout: "oooooooo uAAAAAAA AAABBBBB"},
	{ID: 146, Signature: "(rrr,rr),rrrr", Class: CLASS_STORE, Layout: "oooooooo uAAAAAAA AAABBBBB"},
	{ID: 147, Signature: "(rrr,rr),fr", Class: CLASS_STORE, Layout: "oooooooo uuAAAAAA AAAABBBB"},
	{ID: 148, Signature: "(rrr,rrr),r", Class: CLASS_STORE, Layout: "oooooooo uAAAAAAA AAABBBBB"},
	{ID: 149, Signature: "(rrr,rrr),rr", Class: CLASS_STORE, Layout: "oooooooo uAAAAAAA AAABBBBB"},
	{ID: 150, Signature: "(rrr,rrr),rrr", Class: CLASS_STORE, Layout: "oooooooo uAAAAAAA AAABBBBB"},
	{ID: 151, Signature: "(rrr,rrr),rrrr", Class: CLASS_STORE, Layout: "oooooooo uAAAAAAA AAABBBBB"},
	{ID: 152, Signature: "(rrr,rrr),fr", Class: CLASS_STORE, Layout: "oooooooo uuAAAAAA AAAABBBB"},
	{ID: 153, Signature: "(rrr,nnn,r),r", Class: CLASS_STORE, Layout: "oooooooo uuuAAAAA AAAAAAAA AAAAAAAA AAAAAAAA uuuuuuAA AAABBBBB"},
	{ID: 154, Signature: "(rrr,nnn,r),rr", Class: CLASS_STORE, Layout: "oooooooo uuuAAAAA AAAAAAAA AAAAAAAA AAAAAAAA uuuuuuAA AAABBBBB"},
	{ID: 155, Signature: "(rrr,nnn,r),rrr", Class: CLASS_STORE, Layout: "oooooooo uuuAAAAA AAAAAAAA AAAAAAAA AAAAAAAA uuuuuuAA AAABBBBB"},
	{ID: 156, Signature: "(rrr,nnn,r),rrrr", Class: CLASS_STORE, Layout: "oooooooo uuuAAAAA AAAAAAAA AAAAAAAA AAAAAAAA uuuuuuAA AAABBBBB"},
	{ID: 157, Signature: "(rrr,nnn,r),fr", Class: CLASS_STORE, Layout: "oooooooo uuuAAAAA AAAAAAAA AAAAAAAA AAAAAAAA uuuuuuuA AAAABBBB"},
	{ID: 158, Signature: "(rrr,nnn,rrr),r", Class: CLASS_STORE, Layout: "oooooooo uuuAAAAA AAAAAAAA AAAAAAAA AAAAAAAA uuuuuuAA AAABBBBB"},
	{ID: 159, Signature: "(rrr,nnn,rrr),rr", Class: CLASS_STORE, Layout: "oooooooo uuuAAAAA AAAAAAAA AAAAAAAA AAAAAAAA uuuuuuAA AAABBBBB"},
	{ID: 160, Signature: "(rrr,nnn,rrr),rrr", Class: CLASS_STORE, Layout: "oooooooo uuuAAAAA AAAAAAAA AAAAAAAA AAAAAAAA uuuuuuAA AAABBBBB"},
	{ID: 161, Signature: "(rrr,nnn,rrr),rrrr", Class: CLASS_STORE, Layout: "oooooooo uuuAAAAA AAAAAAAA AAAAAAAA AAAAAAAA uuuuuuAA AAABBBBB"},
	{ID: 162, Signature: "(rrr,nnn,rrr),fr", Class: CLASS_STORE, Layout: "oooooooo uuuAAAAA AAAAAAAA AAAAAAAA AAAAAAAA uuuuuuuA AAAABBBB"},
	{ID: 163, Signature: "(rrr,rrr,nnn),r", Class: CLASS_STORE, Layout: "oooooooo uuuuuuAA AAAAAAAA AAAAAAAA AAAAAAAA AAAAAAAA uuuBBBBB"},
	{ID: 164, Signature: "(rrr,rrr,nnn),rr", Class: CLASS_STORE, Layout: "oooooooo uuuuuuAA AAAAAAAA AAAAAAAA AAAAAAAA AAAAAAAA uuuBBBBB"},
	{ID: 165, Signature: "(rrr,rrr,nnn),rrr", Class: CLASS_STORE, Layout: "oooooooo uuuuuuAA AAAAAAAA AAAAAAAA AAAAAAAA AAAAAAAA uuuBBBBB"},
	{ID: 166, Signature: "(rrr,rrr,nnn),rrrr", Class: CLASS_STORE, Layout: "oooooooo uuuuuuAA AAAAAAAA AAAAAAAA AAAAAAAA AAAAAAAA uuuBBBBB"},
	{ID: 167, Signature: "(rrr,rrr,nnn),fr", Class: CLASS_STORE, Layout: "oooooooo uuuuuuAA AAAAAAAA AAAAAAAA AAAAAAAA AAAAAAAA uuuuBBBB"},
	{ID: 168, Signature: "(nnn,rrr,nnn),r", Class: CLASS_STORE, Layout: "oooooooo AAAAAAAA AAAAAAAA AAAAAAAA uuuAAAAA AAAAAAAA AAAAAAAA AAAAAAAA uuuBBBBB"},
	{ID: 169, Signature: "(nnn,rrr,nnn),rr", Class: CLASS_STORE, Layout: "oooooooo AAAAAAAA AAAAAAAA AAAAAAAA uuuAAAAA AAAAAAAA AAAAAAAA AAAAAAAA uuuBBBBB"},
	{ID: 170, Signature: "(nnn,rrr,nnn),rrr", Class: CLASS_STORE, Layout: "oooooooo AAAAAAAA AAAAAAAA AAAAAAAA uuuAAAAA AAAAAAAA AAAAAAAA AAAAAAAA uuuBBBBB"},
	{ID: 171, Signature: "(nnn,rrr,nnn),rrrr", Class: CLASS_STORE, Layout: "oooooooo AAAAAAAA AAAAAAAA AAAAAAAA uuuAAAAA AAAAAAAA AAAAAAAA AAAAAAAA uuuBBBBB"},
	{ID: 172, Signature: "(nnn,rrr,nnn),fr", Class: CLASS_STORE, Layout: "oooooooo AAAAAAAA AAAAAAAA AAAAAAAA uuuAAAAA AAAAAAAA AAAAAAAA AAAAAAAA uuuuBBBB"},

	// Memory, immediate
	{ID: 173, Signature: "(nnn),n", Class: CLASS_STORE_IMMEDIATE, Layout: "oooooooo AAAAAAAA AAAAAAAA AAAAAAAA BBBBBBBB"},
	{ID: 174, Signature: "(nnn),nn", Class: CLASS_STORE_IMMEDIATE, Layout: "oooooooo AAAAAAAA AAAAAAAA AAAAAAAA BBBBBBBB BBBBBBBB"},
	{ID: 175, Signature: "(nnn),nnn", Class: CLASS_STORE_IMMEDIATE, Layout: "oooooooo AAAAAAAA AAAAAAAA AAAAAAAA BBBBBBBB BBBBBBBB BBBBBBBB"},
	{ID: 176, Signature: "(nnn),nnnn", Class: CLASS_STORE_IMMEDIATE, Layout: "oooooooo AAAAAAAA AAAAAAAA AAAAAAAA BBBBBBBB BBBBBBBB BBBBBBBB BBBBBBBB"},
	{ID: 177, Signature: "(rrr),n", Class: CLASS_STORE_IMMEDIATE, Layout: "oooooooo uuuAAAAA BBBBBBBB"},
	{ID: 178, Signature: "(rrr),nn", Class: CLASS_STORE_IMMEDIATE, Layout: "oooooooo uuuAAAAA BBBBBBBB BBBBBBBB"},
	{ID: 179, Signature: "(rrr),nnn", Class: CLASS_STORE_IMMEDIATE, Layout: "oooooooo uuuAAAAA BBBBBBBB BBBBBBBB BBBBBBBB"},
	{ID: 180, Signature: "(rrr),nnnn", Class: CLASS_STORE_IMMEDIATE, Layout: "oooooooo uuuAAAAA BBBBBBBB BBBBBBBB BBBBBBBB BBBBBBBB"},
	{ID: 181, Signature: "(nnn,nnn),n", Class: CLASS_STORE_IMMEDIATE, Layout: "oooooooo AAAAAAAA AAAAAAAA AAAAAAAA AAAAAAAA AAAAAAAA AAAAAAAA BBBBBBBB"},
	{ID: 182, Signature: "(nnn,nnn),nn", Class: CLASS_STORE_IMMEDIATE, Layout: "oooooooo AAAAAAAA AAAAAAAA AAAAAAAA AAAAAAAA AAAAAAAA AAAAAAAA BBBBBBBB BBBBBBBB"},
	{ID: 183, Signature: "(nnn,nnn),nnn", Class: CLASS_STORE_IMMEDIATE, Layout: "oooooooo AAAAAAAA AAAAAAAA AAAAAAAA AAAAAAAA AAAAAAAA AAAAAAAA BBBBBBBB BBBBBBBB BBBBBBBB"},
	{ID: 184, Signature: "(nnn,nnn),nnnn", Class: CLASS_STORE_IMMEDIATE, Layout: "oooooooo AAAAAAAA AAAAAAAA AAAAAAAA AAAAAAAA AAAAAAAA AAAAAAAA BBBBBBBB BBBBBBBB BBBBBBBB BBBBBBBB"},
	{ID: 185, Signature: "(nnn,r),n", Class: CLASS_STORE_IMMEDIATE, Layout: "oooooooo AAAAAAAA AAAAAAAA AAAAAAAA uuuAAAAA BBBBBBBB"},
	{ID: 186, Signature: "(nnn,r),nn", Class: CLASS_STORE_IMMEDIATE, Layout: "oooooooo AAAAAAAA AAAAAAAA AAAAAAAA uuuAAAAA BBBBBBBB BBBBBBBB"},
	{ID: 187, Signature: "(nnn,r),nnn", Class: CLASS_STORE_IMMEDIATE, Layout: "oooooooo AAAAAAAA AAAAAAAA AAAAAAAA uuuAAAAA BBBBBBBB BBBBBBBB BBBBBBBB"},
	{ID: 188, Signature: "(nnn,r),nnnn", Class: CLASS_STORE_IMMEDIATE, Layout: "oooooooo AAAAAAAA AAAAAAAA AAAAAAAA uuuAAAAA BBBBBBBB BBBBBBBB BBBBBBBB BBBBBBBB"},
	{ID: 189, Signature: "(nnn,rr),n", Class: CLASS_STORE_IMMEDIATE, Layout: "oooooooo AAAAAAAA AAAAAAAA AAAAAAAA uuuAAAAA BBBBBBBB"},
	{ID: 190, Signature: "(nnn,rr),nn", Class: CLASS_STORE_IMMEDIATE, Layout: "oooooooo AAAAAAAA AAAAAAAA AAAAAAAA uuuAAAAA BBBBBBBB BBBBBBBB"},
	{ID: 191, Signature: "(nnn,rr),nnn", Class: CLASS_STORE_IMMEDIATE, Layout: "oooooooo AAAAAAAA AAAAAAAA AAAAAAAA uuuAAAAA BBBBBBBB BBBBBBBB BBBBBBBB"},
	{ID: 192, Signature: "(nnn,rr),nnnn", Class: CLASS_STORE_IMMEDIATE, Layout: "oooooooo AAAAAAAA AAAAAAAA AAAAAAAA uuuAAAAA BBBBBBBB BBBBBBBB BBBBBBBB BBBBBBBB"},
	{ID: 193, Signature: "(nnn,rrr),n", Class: CLASS_STORE_IMMEDIATE, Layout: "oooooooo AAAAAAAA AAAAAAAA AAAAAAAA uuuAAAAA BBBBBBBB"},
	{ID: 194, Signature: "(nnn,rrr),nn", Class: CLASS_STORE_IMMEDIATE, Layout: "oooooooo AAAAAAAA AAAAAAAA AAAAAAAA uuuAAAAA BBBBBBBB BBBBBBBB"},
	{ID: 195, Signature: "(nnn,rrr),nnn", Class: CLASS_STORE_IMMEDIATE, Layout: "oooooooo AAAAAAAA AAAAAAAA AAAAAAAA uuuAAAAA BBBBBBBB BBBBBBBB BBBBBBBB"},
	{ID: 196, Signature: "(nnn,rrr),nnnn", Class: CLASS_STORE_IMMEDIATE, Layout: "oooooooo AAAAAAAA AAAAAAAA AAAAAAAA uuuAAAAA BBBBBBBB BBBBBBBB BBBBBBBB BBBBBBBB"},
	{ID: 197, Signature: "(rrr,nnn),n", Class: CLASS_STORE_IMMEDIATE, Layout: "oooooooo uuuAAAAA AAAAAAAA AAAAAAAA AAAAAAAA BBBBBBBB"},
	{ID: 198, Signature: "(rrr,nnn),nn", Class: CLASS_STORE_IMMEDIATE, Layout: "oooooooo uuuAAAAA AAAAAAAA AAAAAAAA AAAAAAAA BBBBBBBB BBBBBBBB"},
	{ID: 199, Signature: "(rrr,nnn),nnn", Class: CLASS_STORE_IMMEDIATE, Layout: "oooooooo uuuAAAAA AAAAAAAA AAAAAAAA AAAAAAAA BBBBBBBB BBBBBBBB BBBBBBBB"},
	{ID: 200, Signature: "(rrr,nnn),nnnn", Class: CLASS_STORE_IMMEDIATE, Layout: "oooooooo uuuAAAAA AAAAAAAA AAAAAAAA AAAAAAAA BBBBBBBB BBBBBBBB BBBBBBBB BBBBBBBB"},
	{ID: 201, Signature: "(rrr,r),n", Class: CLASS_STORE_IMMEDIATE, Layout: "oooooooo uuuuuuAA AAAAAAAA BBBBBBBB"},
	{ID: 202, Signature: "(rrr,r),nn", Class: CLASS_STORE_IMMEDIATE, Layout: "oooooooo uuuuuuAA AAAAAAAA BBBBBBBB BBBBBBBB"},
	{ID: 203, Signature: "(rrr,r),nnn", Class: CLASS_STORE_IMMEDIATE, Layout: "oooooooo uuuuuuAA AAAAAAAA BBBBBBBB BBBBBBBB BBBBBBBB"},
	{ID: 204, Signature: "(rrr,r),nnnn", Class: CLASS_STORE_IMMEDIATE, Layout: "oooooooo uuuuuuAA AAAAAAAA BBBBBBBB BBBBBBBB BBBBBBBB BBBBBBBB"},
	{ID: 205, Signature: "(rrr,rr),n", Class: CLASS_STORE_IMMEDIATE, Layout: "oooooooo uuuuuuAA AAAAAAAA BBBBBBBB"},
	{ID: 206, Signature: "(rrr,rr),nn", Class: CLASS_STORE_IMMEDIATE, Layout: "oooooooo uuuuuuAA AAAAAAAA BBBBBBBB BBBBBBBB"},
	{ID: 207, Signature: "(rrr,rr),nnn", Class: CLASS_STORE_IMMEDIATE, Layout: "oooooooo uuuuuuAA AAAAAAAA BBBBBBBB BBBBBBBB BBBBBBBB"},
	{ID: 208, Signature: "(rrr,rr),nnnn", Class: CLASS_STORE_IMMEDIATE, Layout: "oooooooo uuuuuuAA AAAAAAAA BBBBBBBB BBBBBBBB BBBBBBBB BBBBBBBB"},
	{ID: 209, Signature: "(rrr,rrr),n", Class: CLASS_STORE_IMMEDIATE, Layout: "oooooooo uuuuuuAA AAAAAAAA BBBBBBBB"},
	{ID: 210, Signature: "(rrr,rrr),nn", Class: CLASS_STORE_IMMEDIATE, Layout: "oooooooo uuuuuuAA AAAAAAAA BBBBBBBB BBBBBBBB"},
	{ID: 211, Signature: "(rrr,rrr),nnn", Class: CLASS_STORE_IMMEDIATE, Layout: "oooooooo uuuuuuAA AAAAAAAA BBBBBBBB BBBBBBBB BBBBBBBB"},
	{ID: 212, Signature: "(rrr,rrr),nnnn", Class: CLASS_STORE_IMMEDIATE, Layout: "oooooooo uuuuuuAA AAAAAAAA BBBBBBBB BBBBBBBB BBBBBBBB BBBBBBBB"},
	{ID: 213, Signature: "(rrr,nnn,r),n", Class: CLASS_STORE_IMMEDIATE, Layout: "oooooooo uuuAAAAA AAAAAAAA AAAAAAAA AAAAAAAA uuuAAAAA BBBBBBBB"},
	{ID: 214, Signature: "(rrr,nnn,r),nn", Class: CLASS_STORE_IMMEDIATE, Layout: "oooooooo uuuAAAAA AAAAAAAA AAAAAAAA AAAAAAAA uuuAAAAA BBBBBBBB BBBBBBBB"},
	{ID: 215, Signature: "(rrr,nnn,r),nnn", Class: CLASS_STORE_IMMEDIATE, Layout: "oooooooo uuuAAAAA AAAAAAAA AAAAAAAA AAAAAAAA uuuAAAAA BBBBBBBB BBBBBBBB BBBBBBBB"},
	{ID: 216, Signature: "(rrr,nnn,r),nnnn", Class: CLASS_STORE_IMMEDIATE, Layout: "oooooooo uuuAAAAA AAAAAAAA AAAAAAAA AAAAAAAA uuuAAAAA BBBBBBBB BBBBBBBB BBBBBBBB BBBBBBBB"},
	{ID: 217, Signature: "(rrr,nnn,rrr),n", Class: CLASS_STORE_IMMEDIATE, Layout: "oooooooo uuuAAAAA AAAAAAAA AAAAAAAA AAAAAAAA uuuAAAAA BBBBBBBB"},
	{ID: 218, Signature: "(rrr,nnn,rrr),nn", Class: CLASS_STORE_IMMEDIATE, Layout: "oooooooo uuuAAAAA AAAAAAAA AAAAAAAA AAAAAAAA uuuAAAAA BBBBBBBB BBBBBBBB"},
	{ID: 219, Signature: "(rrr,nnn,rrr),nnn", Class: CLASS_STORE_IMMEDIATE, Layout: "oooooooo uuuAAAAA AAAAAAAA AAAAAAAA AAAAAAAA uuuAAAAA BBBBBBBB BBBBBBBB BBBBBBBB"},
	{ID: 220, Signature: "(rrr,nnn,rrr),nnnn", Class: CLASS_STORE_IMMEDIATE, Layout: "oooooooo uuuAAAAA AAAAAAAA AAAAAAAA AAAAAAAA uuuAAAAA BBBBBBBB BBBBBBBB BBBBBBBB BBBBBBBB"},
	{ID: 221, Signature: "(rrr,rrr,nnn),n", Class: CLASS_STORE_IMMEDIATE, Layout: "oooooooo uuuuuuAA AAAAAAAA AAAAAAAA AAAAAAAA AAAAAAAA BBBBBBBB"},
	{ID: 222, Signature: "(rrr,rrr,nnn),nn", Class: CLASS_STORE_IMMEDIATE, Layout: "oooooooo uuuuuuAA AAAAAAAA AAAAAAAA AAAAAAAA AAAAAAAA BBBBBBBB BBBBBBBB"},
	{ID: 223, Signature: "(rrr,rrr,nnn),nnn", Class: CLASS_STORE_IMMEDIATE, Layout: "oooooooo uuuuuuAA AAAAAAAA AAAAAAAA AAAAAAAA AAAAAAAA BBBBBBBB BBBBBBBB BBBBBBBB"},
	{ID: 224, Signature: "(rrr,rrr,nnn),nnnn", Class: CLASS_STORE_IMMEDIATE, Layout: "oooooooo uuuuuuAA AAAAAAAA AAAAAAAA AAAAAAAA AAAAAAAA BBBBBBBB BBBBBBBB BBBBBBBB BBBBBBBB"},
	{ID: 225, Signature: "(nnn,rrr,nnn),n", Class: CLASS_STORE_IMMEDIATE, Layout: "oooooooo AAAAAAAA AAAAAAAA AAAAAAAA uuuAAAAA AAAAAAAA AAAAAAAA AAAAAAAA BBBBBBBB"},
	{ID: 226, Signature: "(nnn,rrr,nnn),nn", Class: CLASS_STORE_IMMEDIATE, Layout: "oooooooo AAAAAAAA AAAAAAAA AAAAAAAA uuuAAAAA AAAAAAAA AAAAAAAA AAAAAAAA BBBBBBBB BBBBBBBB"},
	{ID: 227, Signature: "(nnn,rrr,nnn),nnn", Class: CLASS_STORE_IMMEDIATE, Layout: "oooooooo AAAAAAAA AAAAAAAA AAAAAAAA uuuAAAAA AAAAAAAA AAAAAAAA AAAAAAAA BBBBBBBB BBBBBBBB BBBBBBBB"},
	{ID: 228, Signature: "(nnn,rrr,nnn),nnnn", Class: CLASS_STORE_IMMEDIATE, Layout: "oooooooo AAAAAAAA AAAAAAAA AAAAAAAA uuuAAAAA AAAAAAAA AAAAAAAA AAAAAAAA BBBBBBBB BBBBBBBB BBBBBBBB BBBBBBBB"},

	// Memory, memory
	{ID: 229, Signature: "(nnn),(nnn)", Class: CLASS_MOVE, Layout: "oooooooo AAAAAAAA AAAAAAAA AAAAAAAA BBBBBBBB BBBBBBBB BBBBBBBB"},
	{ID: 230, Signature: "(nnn),(rrr)", Class: CLASS_MOVE, Layout: "oooooooo AAAAAAAA AAAAAAAA AAAAAAAA uuuBBBBB"},
	{ID: 231, Signature: "(nnn),(rrr,nnn)", Class: CLASS_MOVE, Layout: "oooooooo AAAAAAAA AAAAAAAA AAAAAAAA uuuBBBBB BBBBBBBB BBBBBBBB BBBBBBBB"},
	{ID: 232, Signature: "(rrr),(nnn)", Class: CLASS_MOVE, Layout: "oooooooo uuuAAAAA BBBBBBBB BBBBBBBB BBBBBBBB"},
	{ID: 233, Signature: "(rrr),(rrr)", Class: CLASS_MOVE, Layout: "oooooooo uuuuuuAA AAABBBBB"},
	{ID: 234, Signature: "(rrr),(rrr,nnn)", Class: CLASS_MOVE, Layout: "oooooooo uuuuuuAA AAABBBBB BBBBBBBB BBBBBBBB BBBBBBBB"},
	{ID: 235, Signature: "(rrr,nnn),(nnn)", Class: CLASS_MOVE, Layout: "oooooooo uuuAAAAA AAAAAAAA AAAAAAAA AAAAAAAA BBBBBBBB BBBBBBBB BBBBBBBB"},
	{ID: 236, Signature: "(rrr,nnn),(rrr)", Class: CLASS_MOVE, Layout: "oooooooo uuuAAAAA AAAAAAAA AAAAAAAA AAAAAAAA uuuBBBBB"},
	{ID: 237, Signature: "(rrr,nnn),(rrr,nnn)", Class: CLASS_MOVE, Layout: "oooooooo uuuAAAAA AAAAAAAA AAAAAAAA AAAAAAAA uuuBBBBB BBBBBBBB BBBBBBBB BBBBBBBB"},
}

var unaryModes = []Mode{
	{ID: 238, Signature: "r", Class: CLASS_UNARY, Layout: "oooooooo uuuAAAAA"},
	{ID: 239, Signature: "rr", Class: CLASS_UNARY, Layout: "oooooooo uuuAAAAA"},
	{ID: 240, Signature: "rrr", Class: CLASS_UNARY, Layout: "oooooooo uuuAAAAA"},
	{ID: 241, Signature: "rrrr", Class: CLASS_UNARY, Layout: "oooooooo uuuAAAAA"},
	{ID: 242, Signature: "fr", Class: CLASS_UNARY, Layout: "oooooooo uuuuAAAA"},
	{ID: 243, Signature: "nnn", Class: CLASS_UNARY, Layout: "oooooooo AAAAAAAA AAAAAAAA AAAAAAAA"},
	{ID: 244, Signature: "(nnn)", Class: CLASS_UNARY, Layout: "oooooooo AAAAAAAA AAAAAAAA AAAAAAAA"},
	{ID: 245, Signature: "(rrr)", Class: CLASS_UNARY, Layout: "oooooooo uuuAAAAA"},
	{ID: 246, Signature: "(rrr,nnn)", Class: CLASS_UNARY, Layout: "oooooooo uuuAAAAA AAAAAAAA AAAAAAAA AAAAAAAA"},
	{ID: 247, Signature: "(nnn,rrr)", Class: CLASS_UNARY, Layout: "oooooooo AAAAAAAA AAAAAAAA AAAAAAAA uuuAAAAA"},
}
