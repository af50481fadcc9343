package interp

import (
	"time"

	"github.com/ReleasedGroup/go-basic/internal/ast"
	berrors "github.com/ReleasedGroup/go-basic/internal/errors"
	"github.com/ReleasedGroup/go-basic/internal/program"
	"github.com/ReleasedGroup/go-basic/internal/values"
)

func (rt *Runtime) execIf(s *ast.IfStatement) error {
	cond, err := rt.Eval(s.Condition)
	if err != nil {
		return err
	}
	branch := s.Else
	if values.Bool(cond) {
		branch = s.Then
	}
	return rt.execBranch(branch)
}

// execBranch runs a THEN/ELSE statement list in place, immediately (not
// via the normal fetch loop), since an IF branch's statements aren't
// separately addressable program-counter positions. A GOTO inside a
// branch still works: it sets pendingJump, which execBranch honors by
// stopping the in-place loop so Run's own loop picks up the jump.
func (rt *Runtime) execBranch(stmts []ast.Statement) error {
	for _, stmt := range stmts {
		if err := rt.execute(stmt); err != nil {
			return err
		}
		if rt.stopped || rt.pendingJump != nil {
			return nil
		}
	}
	return nil
}

func (rt *Runtime) execOn(s *ast.OnStatement) error {
	sel, err := rt.Eval(s.Selector)
	if err != nil {
		return err
	}
	n := int(values.AsInt32(sel))
	if n < 1 || n > len(s.Targets) {
		return nil // out of range: falls through silently (spec.md section 9)
	}
	line, err := rt.evalLineNumber(s.Targets[n-1])
	if err != nil {
		return err
	}
	if s.IsGosub {
		ret, ok := rt.pc.Next(rt.cp)
		if !ok {
			ret = program.ProgramCounter{LineIndex: len(rt.cp.Lines), StmtIndex: 0}
		}
		rt.gosubStack = append(rt.gosubStack, ret)
	}
	return rt.jumpTo(line)
}

func (rt *Runtime) execFor(s *ast.ForStatement) error {
	start, err := rt.Eval(s.Start)
	if err != nil {
		return err
	}
	limit, err := rt.Eval(s.Limit)
	if err != nil {
		return err
	}
	step, err := rt.Eval(s.Step)
	if err != nil {
		return err
	}
	rt.setVar(s.Variable, start)

	resume, ok := rt.pc.Next(rt.cp)
	if !ok {
		resume = program.ProgramCounter{LineIndex: len(rt.cp.Lines), StmtIndex: 0}
	}
	rt.forStack = append(rt.forStack, forFrame{
		variable: s.Variable,
		limit:    values.AsNumber(limit),
		step:     values.AsNumber(step),
		resume:   resume,
	})
	return nil
}

// execNext implements NEXT [var]. A named NEXT searches the stack
// outward from the top, discarding every inner loop it passes over
// (spec.md section 4.4).
func (rt *Runtime) execNext(s *ast.NextStatement) error {
	if len(rt.forStack) == 0 {
		return berrors.NewRuntimeError(0, "%s", berrors.MsgNextWithoutFor)
	}
	idx := len(rt.forStack) - 1
	if s.Variable != "" {
		idx = -1
		for i := len(rt.forStack) - 1; i >= 0; i-- {
			if rt.forStack[i].variable == s.Variable {
				idx = i
				break
			}
		}
		if idx == -1 {
			return berrors.NewRuntimeError(0, "%s", berrors.MsgNextWithoutMatching)
		}
	}
	rt.forStack = rt.forStack[:idx+1]
	frame := rt.forStack[idx]

	next := values.AsNumber(rt.getVar(frame.variable)) + frame.step
	var continuing bool
	switch {
	case frame.step == 0:
		continuing = false
	case frame.step < 0:
		continuing = next >= frame.limit-values.Epsilon
	default:
		continuing = next <= frame.limit+values.Epsilon
	}
	if continuing {
		rt.setVar(frame.variable, values.Number(next))
		rt.pendingJump = &frame.resume
		return nil
	}
	rt.forStack = rt.forStack[:idx]
	return nil
}

func (rt *Runtime) execRestore(s *ast.RestoreStatement) error {
	if s.Line == nil {
		rt.dataIndex = 0
		return nil
	}
	n, err := rt.evalLineNumber(s.Line)
	if err != nil {
		return err
	}
	for i, item := range rt.data {
		if item.Line >= n {
			rt.dataIndex = i
			return nil
		}
	}
	rt.dataIndex = len(rt.data)
	return nil
}

func (rt *Runtime) execRandomize(s *ast.RandomizeStatement) error {
	if s.Seed == nil {
		rt.rng = randFromSeed(time.Now().UnixNano())
		return nil
	}
	v, err := rt.Eval(s.Seed)
	if err != nil {
		return err
	}
	seed := int64(values.AsInt32(v))
	rt.rngSeed = seed
	rt.rng = randFromSeed(seed)
	return nil
}
