// Package interp is the tree-walking executor: it holds all mutable
// program state (variables, arrays, the FOR/GOSUB stacks, the DATA
// cursor, open channels, the RNG) and walks a compiled program's
// statements one at a time (spec.md section 4.4).
package interp

import (
	"io"
	"math/rand"

	"github.com/ReleasedGroup/go-basic/internal/ast"
	berrors "github.com/ReleasedGroup/go-basic/internal/errors"
	"github.com/ReleasedGroup/go-basic/internal/interp/builtins"
	"github.com/ReleasedGroup/go-basic/internal/program"
	"github.com/ReleasedGroup/go-basic/internal/values"
)

// array is one DIM'd (explicitly or implicitly) variable: a flat,
// row-major backing slice sized by the product of its per-dimension
// bounds.
type array struct {
	dims     []int
	isString bool
	data     []values.Value
}

func newArray(dims []int, isString bool) *array {
	size := 1
	for _, d := range dims {
		size *= d
	}
	data := make([]values.Value, size)
	zero := values.Zero(isString)
	for i := range data {
		data[i] = zero
	}
	return &array{dims: dims, isString: isString, data: data}
}

// offset converts a per-dimension index list to a flat slice offset,
// reporting ok=false if the dimension count or any bound doesn't match.
func (a *array) offset(indices []int) (int, bool) {
	if len(indices) != len(a.dims) {
		return 0, false
	}
	off := 0
	for i, idx := range indices {
		if idx < 0 || idx >= a.dims[i] {
			return 0, false
		}
		off = off*a.dims[i] + idx
	}
	return off, true
}

// forFrame is one open FOR/NEXT loop.
type forFrame struct {
	variable string
	limit    float64
	step     float64
	resume   program.ProgramCounter // where NEXT jumps back to
}

// userFunc is a registered DEF'd function.
type userFunc struct {
	params []string
	body   ast.Expression
}

// Runtime holds every piece of state a running program can mutate.
type Runtime struct {
	vars      map[string]values.Value
	arrays    map[string]*array
	forStack  []forFrame
	gosubStack []program.ProgramCounter
	userFuncs map[string]userFunc

	data      []ast.DataItem
	dataIndex int

	channels map[int]*channelState

	rng     *rand.Rand
	rngSeed int64

	console Console
	fs      FileSystem

	cp          *program.CompiledProgram
	pc          program.ProgramCounter
	pendingJump *program.ProgramCounter
	stopped     bool

	trace io.Writer // non-nil: Run logs each executed line number here
}

// SetTrace enables (w non-nil) or disables (w nil) per-line execution
// tracing, the way the teacher's interpreter takes a --trace flag.
func (rt *Runtime) SetTrace(w io.Writer) { rt.trace = w }

// New creates a Runtime. console and fs may be nil if the program never
// performs INPUT/PRINT or file I/O; calling one of those operations on a
// nil adapter is a programming error in the embedding application, not a
// BASIC runtime error.
func New(console Console, fs FileSystem) *Runtime {
	return &Runtime{
		vars:      make(map[string]values.Value),
		arrays:    make(map[string]*array),
		userFuncs: make(map[string]userFunc),
		channels:  make(map[int]*channelState),
		rng:       rand.New(rand.NewSource(1)),
		console:   console,
		fs:        fs,
	}
}

// Reset clears all program state, matching the CLEAR statement and
// CLEAR command (spec.md section 9): variables, arrays, stacks, and the
// DATA cursor are wiped and the RNG is reseeded to its default, but the
// collected DATA items, user-defined functions, and open channels
// survive (only NEW resets the latter two, at the engine layer).
func (rt *Runtime) Reset() {
	rt.vars = make(map[string]values.Value)
	rt.arrays = make(map[string]*array)
	rt.forStack = nil
	rt.gosubStack = nil
	rt.dataIndex = 0
	rt.rng = rand.New(rand.NewSource(1))
	rt.rngSeed = 0
}

// builtinContext adapts Runtime to builtins.Context.
type builtinContext struct{ rt *Runtime }

func (c builtinContext) NextRandom() float64 { return c.rt.rng.Float64() }

func (c builtinContext) Reseed(seed int64) {
	c.rt.rngSeed = seed
	c.rt.rng = rand.New(rand.NewSource(seed))
}

func (c builtinContext) ReadChar() (string, bool) {
	if c.rt.console == nil {
		return "", false
	}
	return c.rt.console.ReadChar()
}

var _ builtins.Context = builtinContext{}

func (rt *Runtime) getVar(name string) values.Value {
	if v, ok := rt.vars[name]; ok {
		return v
	}
	return values.Zero(isStringName(name))
}

func (rt *Runtime) setVar(name string, v values.Value) {
	rt.vars[name] = v
}

func isStringName(name string) bool {
	return len(name) > 0 && name[len(name)-1] == '$'
}

func randFromSeed(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// errAt wraps err with the current source line number, leaving an
// already-lined *berrors.RuntimeError alone.
func (rt *Runtime) errAt(line int, err error) error {
	if err == nil {
		return nil
	}
	if re, ok := err.(*berrors.RuntimeError); ok {
		if re.Line == 0 {
			re.Line = line
		}
		return re
	}
	return berrors.NewRuntimeError(line, "%s", err.Error())
}
