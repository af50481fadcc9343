package interp

import (
	"bytes"
	"io"
	"strings"

	"github.com/ReleasedGroup/go-basic/internal/ast"
	"github.com/ReleasedGroup/go-basic/internal/parser"
	"github.com/ReleasedGroup/go-basic/internal/program"
)

// fakeConsole is an in-memory Console: ReadLine drains a canned queue of
// input lines, Write/WriteLine accumulate into a buffer.
type fakeConsole struct {
	in  []string
	out bytes.Buffer
}

func (c *fakeConsole) ReadLine() (string, error) {
	if len(c.in) == 0 {
		return "", io.EOF
	}
	line := c.in[0]
	c.in = c.in[1:]
	return line, nil
}

func (c *fakeConsole) ReadChar() (string, bool) {
	if len(c.in) == 0 || len(c.in[0]) == 0 {
		return "", false
	}
	ch := c.in[0][:1]
	c.in[0] = c.in[0][1:]
	return ch, true
}

func (c *fakeConsole) Write(s string)     { c.out.WriteString(s) }
func (c *fakeConsole) WriteLine(s string) { c.out.WriteString(s + "\n") }

// fakeFile backs both FileReader and FileWriter with an in-memory buffer,
// so OPEN/CLOSE/PRINT#/INPUT# can be exercised without touching disk.
type fakeFile struct {
	lines  []string
	wrote  strings.Builder
	closed bool
}

func (f *fakeFile) ReadLine() (string, error) {
	if len(f.lines) == 0 {
		return "", io.EOF
	}
	line := f.lines[0]
	f.lines = f.lines[1:]
	return line, nil
}

func (f *fakeFile) WriteString(s string) error {
	f.wrote.WriteString(s)
	return nil
}

func (f *fakeFile) Close() error { f.closed = true; return nil }

// fakeFS hands out fakeFiles from a table keyed by path, recording what
// gets written back under the same key so tests can inspect it.
type fakeFS struct {
	files map[string]*fakeFile
}

func newFakeFS() *fakeFS { return &fakeFS{files: make(map[string]*fakeFile)} }

func (fs *fakeFS) OpenForRead(path string) (FileReader, error) {
	f, ok := fs.files[path]
	if !ok {
		f = &fakeFile{}
		fs.files[path] = f
	}
	return f, nil
}

func (fs *fakeFS) OpenForWrite(path string, mode ast.OpenMode) (FileWriter, error) {
	f, ok := fs.files[path]
	if !ok {
		f = &fakeFile{}
		fs.files[path] = f
	}
	return f, nil
}

// compiled bundles a CompiledProgram with its first-line ProgramCounter.
type compiled struct {
	cp    *program.CompiledProgram
	start program.ProgramCounter
}

// mustCompileOne compiles src (in the same "<num> <statement>" form as
// runProgram) without executing it, for tests that need to assert on the
// error Run itself returns.
func mustCompileOne(t interface{ Fatalf(string, ...any) }, src string) compiled {
	p := program.New()
	for _, line := range strings.Split(strings.TrimSpace(src), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		sp := strings.IndexByte(line, ' ')
		if sp < 0 {
			t.Fatalf("malformed test line %q", line)
		}
		n := 0
		for _, c := range line[:sp] {
			n = n*10 + int(c-'0')
		}
		p.SetLine(n, line[sp+1:])
	}
	pr := parser.New()
	cp, err := program.Compile(p, pr)
	if err != nil {
		t.Fatalf("compile error: %v", err)
	}
	start, _ := program.JumpToLine(cp, p.Lines()[0])
	return compiled{cp: cp, start: start}
}

// runProgram compiles and runs src (a newline-separated sequence of
// "<num> <statement>" lines) against console/fs, returning the Runtime so
// callers can inspect final variable/array state.
func runProgram(t interface{ Fatalf(string, ...any) }, src string, console Console, fs FileSystem) *Runtime {
	p := program.New()
	for _, line := range strings.Split(strings.TrimSpace(src), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		sp := strings.IndexByte(line, ' ')
		if sp < 0 {
			t.Fatalf("malformed test line %q", line)
		}
		n := 0
		for _, c := range line[:sp] {
			n = n*10 + int(c-'0')
		}
		p.SetLine(n, line[sp+1:])
	}
	pr := parser.New()
	cp, err := program.Compile(p, pr)
	if err != nil {
		t.Fatalf("compile error: %v", err)
	}
	rt := New(console, fs)
	start, _ := program.JumpToLine(cp, p.Lines()[0])
	if err := rt.Run(cp, start); err != nil {
		t.Fatalf("run error: %v", err)
	}
	return rt
}
