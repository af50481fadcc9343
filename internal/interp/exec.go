package interp

import (
	"fmt"

	"github.com/ReleasedGroup/go-basic/internal/ast"
	berrors "github.com/ReleasedGroup/go-basic/internal/errors"
	"github.com/ReleasedGroup/go-basic/internal/program"
	"github.com/ReleasedGroup/go-basic/internal/values"
)

// Run executes cp starting at start, following GOTO/GOSUB/NEXT jumps via
// the staged pendingJump field until the program falls off its last
// line, hits END/STOP, or a statement returns an error. Open channels are
// always closed on the way out, whatever the reason for stopping.
func (rt *Runtime) Run(cp *program.CompiledProgram, start program.ProgramCounter) error {
	rt.cp = cp
	rt.pc = start
	rt.stopped = false
	defer rt.closeAllChannels()

	// DATA items are collected fresh on every run, in source-line order,
	// so RUN always starts READ back at the first DATA literal.
	rt.collectData(cp)

	for {
		if rt.stopped || rt.pc.LineIndex >= len(cp.Lines) {
			return nil
		}
		stmt := program.Statement(cp, rt.pc)
		line := program.LineNumber(cp, rt.pc)
		rt.pendingJump = nil

		if rt.trace != nil {
			fmt.Fprintf(rt.trace, "[%d]\n", line)
		}

		if err := rt.execute(stmt); err != nil {
			return rt.errAt(line, err)
		}
		if rt.stopped {
			return nil
		}
		if rt.pendingJump != nil {
			rt.pc = *rt.pendingJump
			continue
		}
		next, ok := rt.pc.Next(cp)
		if !ok {
			return nil
		}
		rt.pc = next
	}
}

func (rt *Runtime) collectData(cp *program.CompiledProgram) {
	rt.data = nil
	for _, line := range cp.Lines {
		for _, stmt := range line.Statements {
			if d, ok := stmt.(*ast.DataStatement); ok {
				rt.data = append(rt.data, d.Items...)
			}
		}
	}
	rt.dataIndex = 0
}

func (rt *Runtime) closeAllChannels() {
	for n, ch := range rt.channels {
		ch.close()
		delete(rt.channels, n)
	}
}

func (rt *Runtime) execute(stmt ast.Statement) error {
	switch s := stmt.(type) {
	case *ast.RemStatement:
		return nil
	case *ast.LetStatement:
		return rt.execLet(s)
	case *ast.PrintStatement:
		return rt.execPrint(s)
	case *ast.InputStatement:
		return rt.execInput(s)
	case *ast.ReadStatement:
		return rt.execRead(s)
	case *ast.DataStatement:
		return nil // collected up front by collectData
	case *ast.IfStatement:
		return rt.execIf(s)
	case *ast.OnStatement:
		return rt.execOn(s)
	case *ast.ForStatement:
		return rt.execFor(s)
	case *ast.NextStatement:
		return rt.execNext(s)
	case *ast.GotoStatement:
		return rt.execGoto(s)
	case *ast.GosubStatement:
		return rt.execGosub(s)
	case *ast.ReturnStatement:
		return rt.execReturn(s)
	case *ast.EndStatement:
		rt.stopped = true
		return nil
	case *ast.StopStatement:
		rt.stopped = true
		return nil
	case *ast.ClearStatement:
		rt.Reset()
		return nil
	case *ast.RestoreStatement:
		return rt.execRestore(s)
	case *ast.RandomizeStatement:
		return rt.execRandomize(s)
	case *ast.DimStatement:
		return rt.execDim(s)
	case *ast.OpenStatement:
		return rt.execOpen(s)
	case *ast.CloseStatement:
		return rt.execClose(s)
	case *ast.DefStatement:
		rt.userFuncs[s.Name] = userFunc{params: s.Params, body: s.Body}
		return nil
	default:
		return berrors.NewRuntimeError(0, "cannot execute statement of type %T", stmt)
	}
}

func (rt *Runtime) jumpTo(lineNumber int) error {
	pc, ok := program.JumpToLine(rt.cp, lineNumber)
	if !ok {
		return berrors.NewRuntimeError(0, "%s", berrors.UndefinedLine(lineNumber))
	}
	rt.pendingJump = &pc
	return nil
}

func (rt *Runtime) execGoto(s *ast.GotoStatement) error {
	n, err := rt.evalLineNumber(s.Target)
	if err != nil {
		return err
	}
	return rt.jumpTo(n)
}

func (rt *Runtime) execGosub(s *ast.GosubStatement) error {
	n, err := rt.evalLineNumber(s.Target)
	if err != nil {
		return err
	}
	ret, ok := rt.pc.Next(rt.cp)
	if !ok {
		ret = program.ProgramCounter{LineIndex: len(rt.cp.Lines), StmtIndex: 0}
	}
	rt.gosubStack = append(rt.gosubStack, ret)
	return rt.jumpTo(n)
}

func (rt *Runtime) execReturn(_ *ast.ReturnStatement) error {
	if len(rt.gosubStack) == 0 {
		return berrors.NewRuntimeError(0, "%s", berrors.MsgReturnWithoutGosub)
	}
	top := rt.gosubStack[len(rt.gosubStack)-1]
	rt.gosubStack = rt.gosubStack[:len(rt.gosubStack)-1]
	rt.pendingJump = &top
	return nil
}

func (rt *Runtime) evalLineNumber(expr ast.Expression) (int, error) {
	v, err := rt.Eval(expr)
	if err != nil {
		return 0, err
	}
	return int(values.AsInt32(v)), nil
}
