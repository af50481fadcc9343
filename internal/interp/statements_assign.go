package interp

import (
	"github.com/ReleasedGroup/go-basic/internal/ast"
	berrors "github.com/ReleasedGroup/go-basic/internal/errors"
	"github.com/ReleasedGroup/go-basic/internal/values"
)

func (rt *Runtime) execLet(s *ast.LetStatement) error {
	v, err := rt.Eval(s.Value)
	if err != nil {
		return err
	}
	return rt.assign(s.Target, v)
}

// assign stores v into target: a plain variable, or an array element
// (auto-allocating the array on first reference, spec.md section 4.4).
func (rt *Runtime) assign(target *ast.VariableTarget, v values.Value) error {
	if len(target.Indices) == 0 {
		rt.setVar(target.Name, v)
		return nil
	}
	indices, err := rt.evalIndices(target.Indices)
	if err != nil {
		return err
	}
	arr, err := rt.getOrCreateArray(target.Name, len(indices))
	if err != nil {
		return err
	}
	off, ok := arr.offset(indices)
	if !ok {
		return berrors.NewRuntimeError(0, "%s", berrors.IndexOutOfRange(target.Name))
	}
	arr.data[off] = v
	return nil
}
