package interp

import (
	"github.com/ReleasedGroup/go-basic/internal/ast"
	berrors "github.com/ReleasedGroup/go-basic/internal/errors"
	"github.com/ReleasedGroup/go-basic/internal/interp/builtins"
	"github.com/ReleasedGroup/go-basic/internal/values"
)

// Eval evaluates an expression node to a Value. Errors surface plain
// (unlined); Run's caller attaches the current source line.
func (rt *Runtime) Eval(expr ast.Expression) (values.Value, error) {
	switch e := expr.(type) {
	case *ast.NumberLiteral:
		return values.Number(e.Value), nil
	case *ast.StringLiteral:
		return values.Text(e.Value), nil
	case *ast.Identifier:
		return rt.getVar(e.Name), nil
	case *ast.BinaryExpression:
		return rt.evalBinary(e)
	case *ast.UnaryExpression:
		return rt.evalUnary(e)
	case *ast.CallExpression:
		return rt.evalCall(e)
	default:
		return nil, berrors.NewRuntimeError(0, "cannot evaluate expression of type %T", expr)
	}
}

func (rt *Runtime) evalBinary(e *ast.BinaryExpression) (values.Value, error) {
	l, err := rt.Eval(e.Left)
	if err != nil {
		return nil, err
	}
	r, err := rt.Eval(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Operator {
	case "+":
		return values.Add(l, r), nil
	case "-":
		return values.Sub(l, r), nil
	case "*":
		return values.Mul(l, r), nil
	case "/":
		v, ok := values.Div(l, r)
		if !ok {
			return nil, berrors.NewRuntimeError(0, "%s", berrors.MsgDivisionByZero)
		}
		return v, nil
	case "^":
		return values.Pow(l, r), nil
	case "=", "<>", "<", "<=", ">", ">=":
		return values.Compare(e.Operator, l, r), nil
	case "AND":
		return values.And(l, r), nil
	case "OR":
		return values.Or(l, r), nil
	default:
		return nil, berrors.NewRuntimeError(0, "unknown operator %q", e.Operator)
	}
}

func (rt *Runtime) evalUnary(e *ast.UnaryExpression) (values.Value, error) {
	v, err := rt.Eval(e.Operand)
	if err != nil {
		return nil, err
	}
	switch e.Operator {
	case "-":
		return values.Neg(v), nil
	case "+":
		return values.Pos(v), nil
	case "NOT":
		return values.Not(v), nil
	default:
		return nil, berrors.NewRuntimeError(0, "unknown unary operator %q", e.Operator)
	}
}

func (rt *Runtime) evalArgs(exprs []ast.Expression) ([]values.Value, error) {
	out := make([]values.Value, len(exprs))
	for i, e := range exprs {
		v, err := rt.Eval(e)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (rt *Runtime) evalCall(e *ast.CallExpression) (values.Value, error) {
	switch e.Kind {
	case ast.BuiltinCall:
		return rt.evalBuiltinCall(e)
	case ast.UserCall:
		return rt.evalUserCall(e)
	default: // ast.ArrayRef
		return rt.evalArrayRef(e.Name, e.Args)
	}
}

func (rt *Runtime) evalBuiltinCall(e *ast.CallExpression) (values.Value, error) {
	info, ok := builtins.Default.Lookup(e.Name)
	if !ok {
		return nil, berrors.NewRuntimeError(0, "%s", berrors.UnknownFunction(e.Name))
	}
	args, err := rt.evalArgs(e.Args)
	if err != nil {
		return nil, err
	}
	v, err := info.Function(builtinContext{rt: rt}, args)
	if err != nil {
		return nil, berrors.NewRuntimeError(0, "%s", err.Error())
	}
	return v, nil
}

// evalUserCall binds each DEF parameter as a temporary global variable,
// evaluates the function body, then restores whatever that name held
// before the call. DEF provides no recursion guard (spec.md section 9):
// a recursive call simply re-shadows the same globals one level deeper.
func (rt *Runtime) evalUserCall(e *ast.CallExpression) (values.Value, error) {
	fn, ok := rt.userFuncs[e.Name]
	if !ok {
		return nil, berrors.NewRuntimeError(0, "%s", berrors.UnknownFunction(e.Name))
	}
	if len(e.Args) != len(fn.params) {
		return nil, berrors.NewRuntimeError(0, "%s expects %d argument(s), got %d", e.Name, len(fn.params), len(e.Args))
	}
	args, err := rt.evalArgs(e.Args)
	if err != nil {
		return nil, err
	}

	saved := make(map[string]values.Value, len(fn.params))
	hadValue := make(map[string]bool, len(fn.params))
	for i, p := range fn.params {
		if v, ok := rt.vars[p]; ok {
			saved[p] = v
			hadValue[p] = true
		}
		rt.setVar(p, args[i])
	}
	defer func() {
		for _, p := range fn.params {
			if hadValue[p] {
				rt.vars[p] = saved[p]
			} else {
				delete(rt.vars, p)
			}
		}
	}()

	return rt.Eval(fn.body)
}

func (rt *Runtime) evalArrayRef(name string, indexExprs []ast.Expression) (values.Value, error) {
	indices, err := rt.evalIndices(indexExprs)
	if err != nil {
		return nil, err
	}
	arr, err := rt.getOrCreateArray(name, len(indices))
	if err != nil {
		return nil, err
	}
	off, ok := arr.offset(indices)
	if !ok {
		return nil, berrors.NewRuntimeError(0, "%s", berrors.IndexOutOfRange(name))
	}
	return arr.data[off], nil
}

func (rt *Runtime) evalIndices(exprs []ast.Expression) ([]int, error) {
	out := make([]int, len(exprs))
	for i, e := range exprs {
		v, err := rt.Eval(e)
		if err != nil {
			return nil, err
		}
		out[i] = int(values.AsInt32(v))
	}
	return out, nil
}
