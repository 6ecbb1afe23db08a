package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"golang.design/x/clipboard"
	"golang.org/x/term"

	"github.com/zayn-otley-labs/z80asm"
)

const (
	colorRed    = "\x1b[31m"
	colorYellow = "\x1b[33m"
	colorReset  = "\x1b[0m"
)

func main() {
	outFile := flag.String("o", "", "Output file (default: input .bin)")
	listing := flag.Bool("l", false, "Print an address/hex/source listing")
	symbols := flag.Bool("symbols", false, "Print the symbol table")
	clip := flag.Bool("clip", false, "Copy the assembled bytes as a hex dump to the clipboard")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: z80asm [options] input.asm\n\nAssembles Z80 source for the TRS-80 Model III.\n\nOptions:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  z80asm program.asm\n")
		fmt.Fprintf(os.Stderr, "  z80asm -o program.bin -l program.asm\n")
		fmt.Fprintf(os.Stderr, "  z80asm -symbols -clip program.asm\n")
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	inputPath := flag.Arg(0)
	src, err := os.ReadFile(inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	asm := z80asm.New()
	asm.SetListingMode(*listing)
	res := asm.Assemble(string(src))

	printDiagnostics(inputPath, res)
	if !res.Success {
		os.Exit(1)
	}

	outputPath := *outFile
	if outputPath == "" {
		outputPath = strings.TrimSuffix(inputPath, ".asm") + ".bin"
	}
	if err := os.WriteFile(outputPath, res.Bytes, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "error writing %s: %v\n", outputPath, err)
		os.Exit(1)
	}

	fmt.Printf("%s: %d bytes at $%04X -> %s\n", inputPath, len(res.Bytes), res.StartAddress, outputPath)

	if *listing {
		for _, line := range asm.Listing() {
			fmt.Println(line)
		}
	}
	if *symbols {
		printSymbols(res.SymbolTable)
	}
	if *clip {
		if err := copyHexDump(res.Bytes); err != nil {
			fmt.Fprintf(os.Stderr, "clipboard: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("hex dump copied to clipboard")
	}
}

// printDiagnostics writes errors and warnings to stderr, colorized when
// stderr is a terminal.
func printDiagnostics(path string, res z80asm.Result) {
	colorize := term.IsTerminal(int(os.Stderr.Fd()))
	for _, d := range res.Errors {
		printDiag(path, d, colorize, colorRed, "error")
	}
	for _, d := range res.Warnings {
		printDiag(path, d, colorize, colorYellow, "warning")
	}
}

func printDiag(path string, d z80asm.Diagnostic, colorize bool, color, label string) {
	if colorize {
		fmt.Fprintf(os.Stderr, "%s:%d:%d: %s%s%s: %s\n", path, d.Line, d.Column, color, label, colorReset, d.Message)
		return
	}
	fmt.Fprintf(os.Stderr, "%s:%d:%d: %s: %s\n", path, d.Line, d.Column, label, d.Message)
}

// printSymbols dumps the symbol table sorted by name, packed into columns
// that fit the terminal width.
func printSymbols(table z80asm.SymbolTable) {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)

	entries := make([]string, 0, len(names))
	widest := 0
	for _, name := range names {
		sym := table[name]
		entry := fmt.Sprintf("%s=$%04X (%s)", name, sym.Address, sym.Kind)
		if len(entry) > widest {
			widest = len(entry)
		}
		entries = append(entries, entry)
	}

	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
	}
	perRow := width / (widest + 2)
	if perRow < 1 {
		perRow = 1
	}
	for i, entry := range entries {
		fmt.Printf("%-*s", widest+2, entry)
		if (i+1)%perRow == 0 || i == len(entries)-1 {
			fmt.Println()
		}
	}
}

// copyHexDump puts the assembled bytes on the OS clipboard as a 16-wide
// hex dump.
func copyHexDump(data []byte) error {
	if err := clipboard.Init(); err != nil {
		return err
	}
	var sb strings.Builder
	for i, b := range data {
		if i > 0 {
			if i%16 == 0 {
				sb.WriteByte('\n')
			} else {
				sb.WriteByte(' ')
			}
		}
		fmt.Fprintf(&sb, "%02X", b)
	}
	sb.WriteByte('\n')
	clipboard.Write(clipboard.FmtText, []byte(sb.String()))
	return nil
}
