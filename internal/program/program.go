// Package program holds a BASIC program as an ordered line-number ->
// source-text store, and compiles it into the ordered statement lists
// the executor walks (spec.md section 4.5).
package program

import (
	"sort"
	"strings"

	"github.com/ReleasedGroup/go-basic/internal/ast"
	berrors "github.com/ReleasedGroup/go-basic/internal/errors"
	"github.com/ReleasedGroup/go-basic/internal/lexer"
	"github.com/ReleasedGroup/go-basic/internal/parser"
)

// Program is the editable, uncompiled form: a sparse map of line number to
// raw source text, kept in ascending line-number order.
type Program struct {
	lines map[int]string
	order []int
}

// New creates an empty Program.
func New() *Program {
	return &Program{lines: make(map[int]string)}
}

// SetLine stores source under line number n, replacing any prior line
// there. Setting a blank (or whitespace-only) source removes the line,
// matching how typing a bare line number at the prompt deletes it.
func (p *Program) SetLine(n int, source string) {
	if strings.TrimSpace(source) == "" {
		p.RemoveLine(n)
		return
	}
	if _, exists := p.lines[n]; !exists {
		i := sort.SearchInts(p.order, n)
		p.order = append(p.order, 0)
		copy(p.order[i+1:], p.order[i:])
		p.order[i] = n
	}
	p.lines[n] = source
}

// RemoveLine deletes line n, if present.
func (p *Program) RemoveLine(n int) {
	if _, exists := p.lines[n]; !exists {
		return
	}
	delete(p.lines, n)
	i := sort.SearchInts(p.order, n)
	p.order = append(p.order[:i], p.order[i+1:]...)
}

// Lines returns the stored line numbers in ascending order.
func (p *Program) Lines() []int {
	out := make([]int, len(p.order))
	copy(out, p.order)
	return out
}

// Source returns the raw text stored for line n.
func (p *Program) Source(n int) (string, bool) {
	s, ok := p.lines[n]
	return s, ok
}

// Clear removes every stored line.
func (p *Program) Clear() {
	p.lines = make(map[int]string)
	p.order = nil
}

// Len reports how many lines are stored.
func (p *Program) Len() int { return len(p.order) }

// CompiledProgram is the parsed, line-ordered form the executor runs.
type CompiledProgram struct {
	Lines []ast.Line
	index map[int]int // line number -> index into Lines
}

// IndexOf returns the position of lineNumber within Lines.
func (c *CompiledProgram) IndexOf(lineNumber int) (int, bool) {
	i, ok := c.index[lineNumber]
	return i, ok
}

// Compile tokenizes and parses every stored line in order, reusing one
// parser.Parser so DEF'd function names on earlier lines are visible to
// later ones (spec.md section 4.2). A parse or lex error is wrapped as
// *berrors.LineError so callers can report "Line <n>: <message>".
func Compile(p *Program, parse *parser.Parser) (*CompiledProgram, error) {
	cp := &CompiledProgram{index: make(map[int]int)}
	for i, n := range p.Lines() {
		source := p.lines[n]
		toks, err := lexer.Tokenize(n, source)
		if err != nil {
			return nil, &berrors.LineError{Line: n, Err: err}
		}
		stmts, err := parse.ParseLine(n, source, toks)
		if err != nil {
			return nil, &berrors.LineError{Line: n, Err: err}
		}
		cp.Lines = append(cp.Lines, ast.Line{Number: n, Statements: stmts})
		cp.index[n] = i
	}
	return cp, nil
}

// ProgramCounter locates one statement within a CompiledProgram: the index
// of its line, and the index of the statement within that line.
type ProgramCounter struct {
	LineIndex int
	StmtIndex int
}

// Next advances pc to the following statement, moving to the next line
// when the current line's statements are exhausted. ok is false once the
// program has run off its last line.
func (pc ProgramCounter) Next(cp *CompiledProgram) (ProgramCounter, bool) {
	if pc.LineIndex >= len(cp.Lines) {
		return pc, false
	}
	if pc.StmtIndex+1 < len(cp.Lines[pc.LineIndex].Statements) {
		return ProgramCounter{LineIndex: pc.LineIndex, StmtIndex: pc.StmtIndex + 1}, true
	}
	next := pc.LineIndex + 1
	for next < len(cp.Lines) && len(cp.Lines[next].Statements) == 0 {
		next++
	}
	if next >= len(cp.Lines) {
		return pc, false
	}
	return ProgramCounter{LineIndex: next, StmtIndex: 0}, true
}

// JumpToLine builds the ProgramCounter for the first statement of
// lineNumber.
func JumpToLine(cp *CompiledProgram, lineNumber int) (ProgramCounter, bool) {
	i, ok := cp.IndexOf(lineNumber)
	if !ok {
		return ProgramCounter{}, false
	}
	return ProgramCounter{LineIndex: i, StmtIndex: 0}, true
}

// Statement returns the statement at pc.
func Statement(cp *CompiledProgram, pc ProgramCounter) ast.Statement {
	return cp.Lines[pc.LineIndex].Statements[pc.StmtIndex]
}

// LineNumber returns the source line number pc currently points into.
func LineNumber(cp *CompiledProgram, pc ProgramCounter) int {
	return cp.Lines[pc.LineIndex].Number
}
