// assembler.go - the assemble facade orchestrating lexer, parser, and
// code generator. An Assembler instance holds diagnostics and an optional
// listing, reset at the top of every Assemble call; a package-level
// convenience wrapper covers the one-shot case.

package z80asm

import (
	"fmt"
	"strings"
)

// TRS-80 Model III memory map.
const (
	ROMStart      = 0x0000
	ROMEnd        = 0x37FF
	KeyboardStart = 0x3800
	KeyboardEnd   = 0x3BFF
	VideoStart    = 0x3C00
	VideoEnd      = 0x3FFF
	RAMStart      = 0x4000
	RAMEnd        = 0x7FFF
	DefaultOrg    = defaultOrg
)

// Result is the aggregate produced by one Assemble call.
type Result struct {
	Success      bool
	Bytes        []byte
	StartAddress uint16
	Errors       []Diagnostic
	Warnings     []Diagnostic
	SymbolTable  SymbolTable
	Instructions []IR
}

// Assembler assembles Z80 source for the TRS-80 Model III memory layout.
// The zero value is ready to use; all per-call state is reset at the top
// of Assemble.
type Assembler struct {
	sink        diagnosticSink
	listingMode bool
	listing     []string
}

// New returns a fresh Assembler.
func New() *Assembler {
	return &Assembler{}
}

// Assemble is a convenience wrapper over a one-shot Assembler.
func Assemble(source string) Result {
	return New().Assemble(source)
}

// SetListingMode enables or disables the address/hex/source listing
// collected during assembly. Off by default.
func (a *Assembler) SetListingMode(enabled bool) {
	a.listingMode = enabled
}

// Listing returns the listing lines from the most recent Assemble call.
func (a *Assembler) Listing() []string {
	return a.listing
}

// Assemble runs the full pipeline over source and returns the result
// aggregate. It never panics: any internal fault becomes a single
// Internal error diagnostic.
func (a *Assembler) Assemble(source string) (result Result) {
	a.sink.reset()
	a.listing = nil

	defer func() {
		if r := recover(); r != nil {
			result = Result{
				StartAddress: defaultOrg,
				Errors: []Diagnostic{{
					Message:  formatDiag(ErrInternal, "%v", r),
					Line:     1,
					Column:   1,
					Severity: SeverityError,
				}},
				SymbolTable: newSymbolTable(),
			}
		}
	}()

	if strings.TrimSpace(source) == "" {
		a.sink.addError(ErrEmptySource, 1, 1, "source is empty")
		return Result{
			StartAddress: defaultOrg,
			Errors:       a.sink.errors,
			SymbolTable:  newSymbolTable(),
		}
	}

	toks := NewLexer(source).Tokenize()
	parser := NewParser(toks, &a.sink)
	irs, symbols, start := parser.Run()
	bytes := generate(irs, symbols, &a.sink, start)

	if a.listingMode {
		a.buildListing(source, irs)
	}

	sortDiagnostics(a.sink.errors)
	sortDiagnostics(a.sink.warnings)

	return Result{
		Success:      len(a.sink.errors) == 0,
		Bytes:        bytes,
		StartAddress: start,
		Errors:       a.sink.errors,
		Warnings:     a.sink.warnings,
		SymbolTable:  symbols,
		Instructions: irs,
	}
}

// buildListing renders one address/hex/source line per intermediate
// record.
func (a *Assembler) buildListing(source string, irs []IR) {
	lines := strings.Split(source, "\n")
	for _, ir := range irs {
		src := ""
		if ir.Line >= 1 && ir.Line <= len(lines) {
			src = strings.TrimRight(lines[ir.Line-1], " \t\r")
		}
		a.listing = append(a.listing,
			fmt.Sprintf("%04X: %-14s %s", ir.Address, hexBytes(ir.Bytes), src))
	}
}

func hexBytes(b []byte) string {
	var sb strings.Builder
	for i, c := range b {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%02X", c)
	}
	return sb.String()
}
