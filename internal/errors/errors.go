// Package errors formats the two error kinds the interpreter core can
// raise: syntax errors from the tokenizer/parser and runtime errors from
// the executor. Both carry enough context to render a single-line,
// caret-style diagnostic the way the REPL boundary expects.
package errors

import (
	"fmt"
	"strings"

	"github.com/ReleasedGroup/go-basic/pkg/token"
)

// SyntaxError is raised by the tokenizer or the parser.
type SyntaxError struct {
	Pos     token.Position
	Message string
	Source  string // the raw line text, for caret rendering
}

func (e *SyntaxError) Error() string {
	return e.Message
}

// Format renders the error with a caret under the offending column.
func (e *SyntaxError) Format() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Syntax error at %d:%d: %s", e.Pos.Line, e.Pos.Column, e.Message)
	if e.Source != "" {
		sb.WriteString("\n  ")
		sb.WriteString(e.Source)
		sb.WriteString("\n  ")
		if e.Pos.Column > 1 {
			sb.WriteString(strings.Repeat(" ", e.Pos.Column-1))
		}
		sb.WriteString("^")
	}
	return sb.String()
}

// LineError wraps a SyntaxError with the program line number it was found
// on, matching the "Line <n>: <message>" convention of Program.Compile.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("Line %d: %s", e.Line, e.Err.Error())
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// RuntimeError is raised by the executor while a program is running.
type RuntimeError struct {
	Message string
	Line    int // source line number the error occurred on, 0 if unknown
}

func (e *RuntimeError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s (line %d)", e.Message, e.Line)
	}
	return e.Message
}

// NewRuntimeError builds a RuntimeError from a canonical message template.
func NewRuntimeError(line int, format string, args ...any) *RuntimeError {
	return &RuntimeError{Message: fmt.Sprintf(format, args...), Line: line}
}

// Canonical runtime message texts, kept as constants so callers and tests
// can compare without re-typing the exact wording from spec section 7.
const (
	MsgDivisionByZero      = "Division by zero"
	MsgOutOfData           = "Out of data"
	MsgReturnWithoutGosub  = "RETURN without GOSUB"
	MsgNextWithoutFor      = "NEXT without FOR"
	MsgNextWithoutMatching = "NEXT without matching FOR"
	MsgEndOfStream         = "INPUT received end of stream"
)

// UndefinedLine formats the "Undefined line <n>" message.
func UndefinedLine(n int) string { return fmt.Sprintf("Undefined line %d", n) }

// ArrayAlreadyDimensioned formats the "Array <name> already dimensioned" message.
func ArrayAlreadyDimensioned(name string) string {
	return fmt.Sprintf("Array %s already dimensioned", name)
}

// IndexOutOfRange formats the "Index out of range for <name>" message.
func IndexOutOfRange(name string) string {
	return fmt.Sprintf("Index out of range for %s", name)
}

// ArrayDimensionMismatch formats the "Array <name> expects <k> dimensions" message.
func ArrayDimensionMismatch(name string, k int) string {
	return fmt.Sprintf("Array %s expects %d dimensions", name, k)
}

// UnknownFunction formats the "Unknown function <name>" message.
func UnknownFunction(name string) string {
	return fmt.Sprintf("Unknown function %s", name)
}

// ChannelNotOpenForOutput formats the "File #<n> is not open for output" message.
func ChannelNotOpenForOutput(n int) string {
	return fmt.Sprintf("File #%d is not open for output", n)
}

// ChannelNotOpenForInput formats the "File #<n> is not open for input" message.
func ChannelNotOpenForInput(n int) string {
	return fmt.Sprintf("File #%d is not open for input", n)
}

// EndOfFile formats the "End of file on channel <n>" message.
func EndOfFile(n int) string { return fmt.Sprintf("End of file on channel %d", n) }

// InvalidNumericInput formats the "Invalid numeric input '<raw>'" message.
func InvalidNumericInput(raw string) string {
	return fmt.Sprintf("Invalid numeric input '%s'", raw)
}
