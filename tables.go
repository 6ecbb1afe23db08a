// tables.go - fixed classification sets and the register/pair/condition
// index orderings the Z80 opcode layout bakes into its bit fields.

package z80asm

// mnemonics is the fixed set of recognized Z80 mnemonics (case-insensitive,
// matched on the uppercased lexeme).
var mnemonics = map[string]bool{
	"NOP": true, "HALT": true, "DI": true, "EI": true, "SCF": true, "CCF": true,
	"CPL": true, "DAA": true, "RLCA": true, "RRCA": true, "RLA": true, "RRA": true,
	"RET": true, "EXX": true, "EX": true,
	"LDI": true, "LDD": true, "LDIR": true, "LDDR": true, "RETI": true, "RETN": true, "NEG": true,
	"JP": true, "CALL": true, "JR": true, "DJNZ": true,
	"LD":  true,
	"ADD": true, "ADC": true, "SUB": true, "SBC": true, "AND": true, "OR": true, "XOR": true, "CP": true,
	"INC": true, "DEC": true,
	"PUSH": true, "POP": true,
	"RST": true,
	"RLC": true, "RRC": true, "RL": true, "RR": true, "SLA": true, "SRA": true, "SLL": true, "SRL": true,
	"BIT": true, "SET": true, "RES": true,
	"IN": true, "OUT": true,
}

// registers is the fixed set of recognized register names. IX/IY and
// their halves lex as registers but have no entry in the encoding tables.
var registers = map[string]bool{
	"A": true, "B": true, "C": true, "D": true, "E": true, "H": true, "L": true,
	"AF": true, "AF'": true, "BC": true, "DE": true, "HL": true, "SP": true, "I": true, "R": true,
	"IX": true, "IY": true, "IXH": true, "IXL": true, "IYH": true, "IYL": true,
}

// conditions is the set of condition-code register-like names recognized
// as operands (NZ, Z, NC, C, PO, PE, P, M). C overlaps with the 8-bit
// register C; the parser disambiguates by operand position.
var conditions = map[string]bool{
	"NZ": true, "Z": true, "NC": true, "C": true, "PO": true, "PE": true, "P": true, "M": true,
}

// directives maps every recognized directive spelling (dotted, undotted,
// and aliases) to a canonical directive name.
var directives = map[string]string{
	".ORG": "ORG", "ORG": "ORG",
	".DB": "DB", "DB": "DB", "DEFB": "DB", ".DEFB": "DB",
	".DW": "DW", "DW": "DW", "DEFW": "DW", ".DEFW": "DW",
	".DS": "DS", "DS": "DS", "DEFS": "DS", ".DEFS": "DS",
	".DEFM": "DB", "DEFM": "DB",
	".EQU": "EQU", "EQU": "EQU",
	".DEFL": "DEFL", "DEFL": "DEFL",
	".END": "END", "END": "END",
}

// reg8Index maps an 8-bit register name to its 3-bit encoding index, in the
// order B C D E H L (HL) A = 0..7.
var reg8Index = map[string]byte{
	"B": 0, "C": 1, "D": 2, "E": 3, "H": 4, "L": 5, "(HL)": 6, "A": 7,
}

// reg16IndexP maps a 16-bit register-pair name to its 2-bit "p" encoding,
// in the order BC DE HL SP = 0..3. Used by LD rr,nn / INC rr / DEC rr /
// ADD HL,rr.
var reg16IndexP = map[string]byte{
	"BC": 0, "DE": 1, "HL": 2, "SP": 3,
}

// reg16IndexQ maps a 16-bit register-pair name to its 2-bit "q" encoding
// used by PUSH/POP, where the fourth slot is AF instead of SP.
var reg16IndexQ = map[string]byte{
	"BC": 0, "DE": 1, "HL": 2, "AF": 3,
}

// condIndex maps a condition-code name to its 3-bit encoding, in the order
// NZ Z NC C PO PE P M = 0..7.
var condIndex = map[string]byte{
	"NZ": 0, "Z": 1, "NC": 2, "C": 3, "PO": 4, "PE": 5, "P": 6, "M": 7,
}

// rstTargets is the set of legal RST operands.
var rstTargets = map[int64]bool{
	0x00: true, 0x08: true, 0x10: true, 0x18: true,
	0x20: true, 0x28: true, 0x30: true, 0x38: true,
}

const defaultOrg = 0x4200
