// lexer_test.go

package z80asm

import (
	"strings"
	"testing"
)

func lexAll(t *testing.T, src string) []Token {
	t.Helper()
	toks := NewLexer(src).Tokenize()
	if len(toks) == 0 || toks[len(toks)-1].Kind != TokEOF {
		t.Fatalf("token stream not EOF-terminated: %v", toks)
	}
	return toks[:len(toks)-1]
}

func assertTok(t *testing.T, tok Token, kind TokenKind, text string, label string) {
	t.Helper()
	if tok.Kind != kind {
		t.Fatalf("%s: kind = %s, want %s", label, tok.Kind, kind)
	}
	if tok.Text != text {
		t.Fatalf("%s: text = %q, want %q", label, tok.Text, text)
	}
}

func TestLexer_Classification(t *testing.T) {
	toks := lexAll(t, "START: LD A,5 ; load")
	assertTok(t, toks[0], TokLabel, "START", "label")
	assertTok(t, toks[1], TokColon, ":", "colon")
	assertTok(t, toks[2], TokMnemonic, "LD", "mnemonic")
	assertTok(t, toks[3], TokRegister, "A", "register")
	assertTok(t, toks[4], TokComma, ",", "comma")
	assertTok(t, toks[5], TokNumber, "5", "number")
	if toks[6].Kind != TokComment {
		t.Fatalf("comment: kind = %s", toks[6].Kind)
	}
}

func TestLexer_NumberRadixes(t *testing.T) {
	cases := []struct {
		src   string
		value int64
		radix Radix
	}{
		{"$FF", 0xFF, RadixHex},
		{"$4200", 0x4200, RadixHex},
		{"0FFh", 0xFF, RadixHex},
		{"0FFH", 0xFF, RadixHex},
		{"FFH", 0xFF, RadixHex},
		{"%10101010", 0xAA, RadixBinary},
		{"255", 255, RadixDecimal},
		{"0", 0, RadixDecimal},
	}
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			toks := lexAll(t, c.src)
			if len(toks) != 1 {
				t.Fatalf("%q: got %d tokens, want 1", c.src, len(toks))
			}
			tok := toks[0]
			if tok.Kind != TokNumber {
				t.Fatalf("%q: kind = %s, want Number", c.src, tok.Kind)
			}
			if tok.Value != c.value {
				t.Fatalf("%q: value = %d, want %d", c.src, tok.Value, c.value)
			}
			if tok.Radix != c.radix {
				t.Fatalf("%q: radix = %d, want %d", c.src, tok.Radix, c.radix)
			}
		})
	}
}

func TestLexer_DollarAloneIsOperator(t *testing.T) {
	toks := lexAll(t, "$ + 3")
	assertTok(t, toks[0], TokOperator, "$", "dollar")
	assertTok(t, toks[1], TokOperator, "+", "plus")
	assertTok(t, toks[2], TokNumber, "3", "three")
}

func TestLexer_AFPrime(t *testing.T) {
	toks := lexAll(t, "EX AF,AF'")
	assertTok(t, toks[0], TokMnemonic, "EX", "ex")
	assertTok(t, toks[1], TokRegister, "AF", "af")
	assertTok(t, toks[3], TokRegister, "AF'", "af'")
}

func TestLexer_Strings(t *testing.T) {
	toks := lexAll(t, `"HELLO" 'hi'`)
	assertTok(t, toks[0], TokString, "HELLO", "dquote")
	assertTok(t, toks[1], TokString, "hi", "squote")
}

func TestLexer_DirectiveForms(t *testing.T) {
	for _, src := range []string{".ORG", "ORG", ".DB", "DEFB", "defw", ".ds", "DEFM", ".END"} {
		toks := lexAll(t, src)
		if toks[0].Kind != TokDirective {
			t.Fatalf("%q: kind = %s, want Directive", src, toks[0].Kind)
		}
	}
}

func TestLexer_LineAndColumn(t *testing.T) {
	toks := lexAll(t, "NOP\n  HALT")
	if toks[0].Line != 1 || toks[0].Column != 1 {
		t.Fatalf("NOP at %d:%d, want 1:1", toks[0].Line, toks[0].Column)
	}
	// toks[1] is the newline.
	if toks[2].Line != 2 || toks[2].Column != 3 {
		t.Fatalf("HALT at %d:%d, want 2:3", toks[2].Line, toks[2].Column)
	}
}

func TestLexer_UnexpectedCharacter(t *testing.T) {
	toks := lexAll(t, "NOP @ HALT")
	if toks[1].Kind != TokError {
		t.Fatalf("kind = %s, want Error", toks[1].Kind)
	}
	// Scanning continues past the bad character.
	assertTok(t, toks[2], TokMnemonic, "HALT", "halt")
}

func TestLexer_CaseInsensitive(t *testing.T) {
	toks := lexAll(t, "ld hl,video")
	assertTok(t, toks[0], TokMnemonic, "LD", "mnemonic")
	assertTok(t, toks[1], TokRegister, "HL", "register")
	assertTok(t, toks[3], TokLabel, "VIDEO", "label uppercased")
	if toks[3].Raw != "video" {
		t.Fatalf("raw = %q, want original casing", toks[3].Raw)
	}
}

func TestLexer_RawRoundTrip(t *testing.T) {
	src := "START: LD A,$FF ; load\n\tHALT\nMSG .DB \"HI\",'!'\n"
	toks := NewLexer(src).Tokenize()
	var sb strings.Builder
	for _, tok := range toks {
		sb.WriteString(tok.Raw)
	}
	collapse := strings.NewReplacer(" ", "", "\t", "", "\r", "")
	if collapse.Replace(sb.String()) != collapse.Replace(src) {
		t.Fatalf("raw concatenation %q does not reproduce source %q", sb.String(), src)
	}
}

func TestLexer_IndexRegistersRecognized(t *testing.T) {
	for _, name := range []string{"IX", "IY", "IXH", "IXL", "IYH", "IYL"} {
		toks := lexAll(t, name)
		if toks[0].Kind != TokRegister {
			t.Fatalf("%s: kind = %s, want Register", name, toks[0].Kind)
		}
	}
}
