package interp

import (
	"github.com/ReleasedGroup/go-basic/internal/ast"
	berrors "github.com/ReleasedGroup/go-basic/internal/errors"
	"github.com/ReleasedGroup/go-basic/internal/values"
)

// execRead consumes one DATA literal per target, in order, advancing the
// shared cursor collectData/RESTORE maintain.
func (rt *Runtime) execRead(s *ast.ReadStatement) error {
	for _, target := range s.Targets {
		if rt.dataIndex >= len(rt.data) {
			return berrors.NewRuntimeError(0, "%s", berrors.MsgOutOfData)
		}
		item := rt.data[rt.dataIndex]
		rt.dataIndex++

		var v values.Value
		if item.IsString {
			v = values.Text(item.Str)
		} else {
			v = values.Number(item.Num)
		}
		if err := rt.assign(target, coerceFor(target, v)); err != nil {
			return err
		}
	}
	return nil
}

// coerceFor converts v to match target's declared type (its '$' sigil),
// the way READ and INPUT silently coerce a DATA/typed-in literal to
// whichever kind of variable it's being stored into.
func coerceFor(target *ast.VariableTarget, v values.Value) values.Value {
	if target.IsString() {
		return values.Text(values.AsString(v))
	}
	return values.Number(values.AsNumber(v))
}
