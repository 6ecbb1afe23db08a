// diagnostics.go - structured per-line diagnostics. Errors and warnings
// accumulate in slices reset at the top of every Assemble call; each
// entry carries line, column, and severity so callers can render them
// however they like.

package z80asm

import (
	"fmt"
	"sort"
)

// Severity distinguishes a fatal error from a non-fatal warning.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

// Diagnostic is a single line/column-tagged assembler message.
type Diagnostic struct {
	Message  string
	Line     int
	Column   int
	Severity Severity
}

// ErrorKind names the coarse category of an error.
type ErrorKind string

const (
	ErrUnexpectedCharacter    ErrorKind = "UnexpectedCharacter"
	ErrEmptySource            ErrorKind = "EmptySource"
	ErrInvalidSourceType      ErrorKind = "InvalidSourceType"
	ErrSyntaxError            ErrorKind = "SyntaxError"
	ErrUnmatchedParenthesis   ErrorKind = "UnmatchedParenthesis"
	ErrDivByZero              ErrorKind = "DivByZero"
	ErrUndefinedSymbol        ErrorKind = "UndefinedSymbol"
	ErrUnsupportedPattern     ErrorKind = "UnsupportedInstructionPattern"
	ErrInvalidRSTAddress      ErrorKind = "InvalidRSTAddress"
	ErrRelativeJumpOutOfRange ErrorKind = "RelativeJumpOutOfRange"
	ErrInternal               ErrorKind = "Internal"
)

// assembleError is an internal error value carrying enough to become a
// Diagnostic once the caller knows the offending line/column; sizing and
// parsing helpers that don't carry position context themselves return one
// of these and let their caller attach position.
type assembleError struct {
	kind   ErrorKind
	format string
	args   []interface{}
}

func (e *assembleError) Error() string {
	return formatDiag(e.kind, e.format, e.args...)
}

type diagnosticSink struct {
	errors   []Diagnostic
	warnings []Diagnostic
}

func (s *diagnosticSink) reset() {
	s.errors = nil
	s.warnings = nil
}

func (s *diagnosticSink) addError(kind ErrorKind, line, col int, format string, args ...interface{}) {
	s.errors = append(s.errors, Diagnostic{
		Message:  formatDiag(kind, format, args...),
		Line:     line,
		Column:   col,
		Severity: SeverityError,
	})
}

func (s *diagnosticSink) addWarning(line, col int, format string, args ...interface{}) {
	s.warnings = append(s.warnings, Diagnostic{
		Message:  formatDiag("", format, args...),
		Line:     line,
		Column:   col,
		Severity: SeverityWarning,
	})
}

// addEvalError records an evaluator or helper failure against the given
// fallback position; ExprError positions, when present, win.
func (s *diagnosticSink) addEvalError(err error, line, col int) {
	switch e := err.(type) {
	case *ExprError:
		if e.Line != 0 {
			line, col = e.Line, e.Column
		}
		switch e.Kind {
		case ExprUndefinedSymbol:
			s.addError(ErrUndefinedSymbol, line, col, "undefined symbol %s", e.Name)
		case ExprDivByZero:
			s.addError(ErrDivByZero, line, col, "division by zero")
		case ExprUnmatchedParen:
			s.addError(ErrUnmatchedParenthesis, line, col, "unmatched parenthesis")
		case ExprEmptyExpr:
			s.addError(ErrSyntaxError, line, col, "expected an expression")
		default:
			s.addError(ErrSyntaxError, line, col, "malformed expression")
		}
	case *assembleError:
		s.addError(e.kind, line, col, e.format, e.args...)
	default:
		s.addError(ErrInternal, line, col, "%v", err)
	}
}

func formatDiag(kind ErrorKind, format string, args ...interface{}) string {
	msg := fmt.Sprintf(format, args...)
	if kind == "" {
		return msg
	}
	return string(kind) + ": " + msg
}

// sortDiagnostics orders by (line, column) so that repeated Assemble calls
// on identical source always produce identical diagnostic ordering,
// independent of which pass happened to append first.
func sortDiagnostics(d []Diagnostic) {
	sort.SliceStable(d, func(i, j int) bool {
		if d[i].Line != d[j].Line {
			return d[i].Line < d[j].Line
		}
		return d[i].Column < d[j].Column
	})
}
