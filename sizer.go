// sizer.go - pass-1 instruction-width lookahead.
//
// The sizer never evaluates symbol values; it only classifies operand
// shapes (opclassify.go) and applies a fixed decision table. It must
// agree with the encoder's actual byte count for every form so that
// pass-1 addresses never drift from codegen addresses.

package z80asm

var size1NoOperand = map[string]bool{
	"NOP": true, "HALT": true, "DI": true, "EI": true, "SCF": true, "CCF": true,
	"CPL": true, "DAA": true, "RLCA": true, "RRCA": true, "RLA": true, "RRA": true,
	"RET": true, "EXX": true,
}

var size2NoOperand = map[string]bool{
	"LDI": true, "LDD": true, "LDIR": true, "LDDR": true,
	"RETI": true, "RETN": true, "NEG": true,
}

var aluMnemonics = map[string]bool{
	"ADD": true, "ADC": true, "SUB": true, "SBC": true,
	"AND": true, "OR": true, "XOR": true, "CP": true,
}

var cbMnemonics = map[string]bool{
	"RLC": true, "RRC": true, "RL": true, "RR": true, "SLA": true, "SRA": true,
	"SLL": true, "SRL": true, "BIT": true, "SET": true, "RES": true,
}

// sizeInstruction returns the byte width of one instruction statement
// without resolving any symbol value.
func sizeInstruction(mnemonic string, groups []opGroup) (int, error) {
	n := len(groups)

	if n == 0 {
		if size1NoOperand[mnemonic] {
			return 1, nil
		}
		if size2NoOperand[mnemonic] {
			return 2, nil
		}
	}

	switch mnemonic {
	case "EX":
		return 1, nil

	case "RET":
		return 1, nil

	case "JP":
		if n == 1 && groups[0].tag == gIndirectReg && groups[0].name == "HL" {
			return 1, nil
		}
		return 3, nil

	case "CALL":
		return 3, nil

	case "JR", "DJNZ":
		return 2, nil

	case "LD":
		return sizeLD(groups)

	case "ADD":
		if n == 2 && groups[0].tag == gReg16 && groups[0].name == "HL" && groups[1].tag == gReg16 {
			return 1, nil
		}
		return sizeALU(groups)

	case "ADC", "SBC", "SUB", "AND", "OR", "XOR", "CP":
		return sizeALU(groups)

	case "INC", "DEC":
		return 1, nil

	case "PUSH", "POP":
		return 1, nil

	case "RST":
		return 1, nil

	case "IN", "OUT":
		return 2, nil
	}

	if cbMnemonics[mnemonic] {
		return 2, nil
	}

	return 0, &assembleError{kind: ErrSyntaxError, format: "unknown mnemonic for sizing: %s", args: []interface{}{mnemonic}}
}

func sizeALU(groups []opGroup) (int, error) {
	n := len(groups)
	var rhs opGroup
	switch n {
	case 1:
		rhs = groups[0]
	case 2:
		rhs = groups[1]
	default:
		return 0, &assembleError{kind: ErrSyntaxError, format: "ALU instruction expects 1 or 2 operands"}
	}
	if rhs.tag == gReg8 || (rhs.tag == gIndirectReg && rhs.name == "HL") {
		return 1, nil
	}
	return 2, nil
}

// sizeLD mirrors encodeLD's choice of form exactly, by operand shape
// alone: a label reference sizes like the expression it will resolve to.
// Address-operand positions ((label), LD rr,label) are 3-byte forms since
// label addresses are 16-bit; an 8-bit register destination selects the
// 2-byte immediate form regardless of where the value comes from.
func sizeLD(groups []opGroup) (int, error) {
	if len(groups) != 2 {
		return 0, &assembleError{kind: ErrSyntaxError, format: "LD expects 2 operands"}
	}
	dst, src := groups[0], groups[1]

	switch {
	case dst.tag == gReg16 && dst.name == "SP" && src.tag == gReg16 && src.name == "HL":
		return 1, nil
	case dst.tag == gReg8 && dst.name == "A" && src.tag == gIndirectReg && (src.name == "BC" || src.name == "DE"):
		return 1, nil
	case src.tag == gReg8 && src.name == "A" && dst.tag == gIndirectReg && (dst.name == "BC" || dst.name == "DE"):
		return 1, nil
	case isR3Shaped(dst) && isR3Shaped(src):
		return 1, nil
	case isR3Shaped(dst) && isExprShaped(src):
		return 2, nil
	case dst.tag == gReg16 && isExprShaped(src):
		return 3, nil
	case dst.tag == gReg8 && dst.name == "A" && isParenShaped(src):
		return 3, nil
	case isParenShaped(dst) && src.tag == gReg8 && src.name == "A":
		return 3, nil
	case isParenShaped(dst) && src.tag == gReg16 && src.name == "HL":
		return 3, nil
	case dst.tag == gReg16 && dst.name == "HL" && isParenShaped(src):
		return 3, nil
	}
	return 3, nil
}

func isR3Shaped(g opGroup) bool {
	return g.tag == gReg8 || (g.tag == gIndirectReg && g.name == "HL")
}

func isExprShaped(g opGroup) bool {
	return g.tag == gExpr || g.tag == gBareLabel
}

func isParenShaped(g opGroup) bool {
	return g.tag == gParenExpr || g.tag == gParenLabel
}
