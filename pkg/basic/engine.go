// Package basic is go-basic's external-facing wrapper: it owns a
// Program, a Parser, and a Runtime, and exposes the line-editing and
// RUN/CLEAR/NEW lifecycle a REPL or any other embedder drives (spec.md
// section 3).
package basic

import (
	"io"
	"os"

	"github.com/ReleasedGroup/go-basic/internal/interp"
	"github.com/ReleasedGroup/go-basic/internal/parser"
	"github.com/ReleasedGroup/go-basic/internal/program"
)

// Console and FileSystem re-export the interpreter's I/O boundary
// interfaces so embedders never need to import an internal package.
type Console = interp.Console
type FileSystem = interp.FileSystem

// Engine is a stored BASIC program plus the runtime state it executes
// against.
type Engine struct {
	prog   *program.Program
	parser *parser.Parser
	rt     *interp.Runtime
	cp     *program.CompiledProgram

	console Console
	fs      FileSystem
	trace   io.Writer
}

// New creates an Engine, applying opts over the default stdio console
// and OS filesystem.
func New(opts ...EngineOption) *Engine {
	e := &Engine{
		prog:   program.New(),
		parser: parser.New(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.console == nil {
		e.console = NewStdConsole(os.Stdin, os.Stdout)
	}
	if e.fs == nil {
		e.fs = OSFileSystem{}
	}
	e.rt = interp.New(e.console, e.fs)
	if e.trace != nil {
		e.rt.SetTrace(e.trace)
	}
	return e
}

// SetLine stores source under line number n (spec.md section 3); a
// blank source removes the line.
func (e *Engine) SetLine(n int, source string) { e.prog.SetLine(n, source); e.cp = nil }

// RemoveLine deletes line n.
func (e *Engine) RemoveLine(n int) { e.prog.RemoveLine(n); e.cp = nil }

// Lines returns the stored line numbers in ascending order.
func (e *Engine) Lines() []int { return e.prog.Lines() }

// Source returns the raw text stored for line n.
func (e *Engine) Source(n int) (string, bool) { return e.prog.Source(n) }

// Compile parses the stored program, caching the result for Run.
func (e *Engine) Compile() error {
	cp, err := program.Compile(e.prog, e.parser)
	if err != nil {
		return err
	}
	e.cp = cp
	return nil
}

// Run compiles the program if it hasn't been already, resets runtime
// state (variables, arrays, stacks, DATA pointer, RNG, channels), and
// executes it from its first line (spec.md section 3).
func (e *Engine) Run() error {
	if e.cp == nil {
		if err := e.Compile(); err != nil {
			return err
		}
	}
	lines := e.prog.Lines()
	if len(lines) == 0 {
		return nil
	}
	e.rt.Reset()
	start, _ := program.JumpToLine(e.cp, lines[0])
	return e.rt.Run(e.cp, start)
}

// Clear resets runtime state only: variables, arrays, the GOSUB/FOR
// stacks, the DATA cursor, and the RNG. The program store, DEF'd functions, and
// open channels survive (spec.md section 9).
func (e *Engine) Clear() { e.rt.Reset() }

// New resets everything: the program store, the line text, the
// runtime, and the parser's user-function registry, so a later DEF can
// reuse a name that a previous program defined (spec.md section 9).
func (e *Engine) New() {
	e.prog.Clear()
	e.parser.ResetFunctions()
	e.cp = nil
	e.rt = interp.New(e.console, e.fs)
	if e.trace != nil {
		e.rt.SetTrace(e.trace)
	}
}
