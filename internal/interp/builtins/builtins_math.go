package builtins

import (
	"fmt"
	"math"

	"github.com/ReleasedGroup/go-basic/internal/values"
)

func registerMathFunctions(r *Registry) {
	r.Register("ABS", biAbs, 1, 1, CategoryMath, "Returns the absolute value of a number")
	r.Register("ATN", biAtn, 1, 1, CategoryMath, "Returns the arctangent, in radians")
	r.Register("COS", biCos, 1, 1, CategoryMath, "Returns the cosine of an angle in radians")
	r.Register("EXP", biExp, 1, 1, CategoryMath, "Returns e raised to the given power")
	r.Register("INT", biInt, 1, 1, CategoryMath, "Returns the largest integer not greater than the argument")
	r.Register("LOG", biLog, 1, 1, CategoryMath, "Returns the natural logarithm")
	r.Register("SGN", biSgn, 1, 1, CategoryMath, "Returns -1, 0, or 1 depending on the argument's sign")
	r.Register("SIN", biSin, 1, 1, CategoryMath, "Returns the sine of an angle in radians")
	r.Register("SQR", biSqr, 1, 1, CategoryMath, "Returns the square root")
	r.Register("TAN", biTan, 1, 1, CategoryMath, "Returns the tangent of an angle in radians")
	r.Register("RND", biRnd, 0, 1, CategoryMath, "Returns a pseudo-random number")
	r.Register("GET", biGet, 0, 0, CategoryIO, "Reads one character from the console without echoing it")
}

func arity1(args []values.Value) (float64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("expected 1 argument, got %d", len(args))
	}
	return values.AsNumber(args[0]), nil
}

func biAbs(_ Context, args []values.Value) (values.Value, error) {
	n, err := arity1(args)
	if err != nil {
		return nil, err
	}
	return values.Number(math.Abs(n)), nil
}

func biAtn(_ Context, args []values.Value) (values.Value, error) {
	n, err := arity1(args)
	if err != nil {
		return nil, err
	}
	return values.Number(math.Atan(n)), nil
}

func biCos(_ Context, args []values.Value) (values.Value, error) {
	n, err := arity1(args)
	if err != nil {
		return nil, err
	}
	return values.Number(math.Cos(n)), nil
}

func biExp(_ Context, args []values.Value) (values.Value, error) {
	n, err := arity1(args)
	if err != nil {
		return nil, err
	}
	return values.Number(math.Exp(n)), nil
}

func biInt(_ Context, args []values.Value) (values.Value, error) {
	n, err := arity1(args)
	if err != nil {
		return nil, err
	}
	return values.Number(math.Floor(n)), nil
}

func biLog(_ Context, args []values.Value) (values.Value, error) {
	n, err := arity1(args)
	if err != nil {
		return nil, err
	}
	return values.Number(math.Log(n)), nil
}

func biSgn(_ Context, args []values.Value) (values.Value, error) {
	n, err := arity1(args)
	if err != nil {
		return nil, err
	}
	switch {
	case n > 0:
		return values.Number(1), nil
	case n < 0:
		return values.Number(-1), nil
	default:
		return values.Number(0), nil
	}
}

func biSin(_ Context, args []values.Value) (values.Value, error) {
	n, err := arity1(args)
	if err != nil {
		return nil, err
	}
	return values.Number(math.Sin(n)), nil
}

func biSqr(_ Context, args []values.Value) (values.Value, error) {
	n, err := arity1(args)
	if err != nil {
		return nil, err
	}
	return values.Number(math.Sqrt(n)), nil
}

func biTan(_ Context, args []values.Value) (values.Value, error) {
	n, err := arity1(args)
	if err != nil {
		return nil, err
	}
	return values.Number(math.Tan(n)), nil
}

// biRnd implements RND, RND(x), and RND(-x). A negative argument reseeds
// the generator from that argument's value before drawing, matching
// spec.md section 4.3's reseed rule; RND() and RND(positive x) just draw
// the next value.
func biRnd(ctx Context, args []values.Value) (values.Value, error) {
	if len(args) > 1 {
		return nil, fmt.Errorf("expected 0 or 1 arguments, got %d", len(args))
	}
	if len(args) == 1 {
		n := values.AsNumber(args[0])
		if n < 0 {
			ctx.Reseed(int64(n))
		}
	}
	return values.Number(ctx.NextRandom()), nil
}

// biGet implements GET(), returning the ASCII code of the next character
// typed at the console, or 0 if none is waiting.
func biGet(ctx Context, args []values.Value) (values.Value, error) {
	if len(args) != 0 {
		return nil, fmt.Errorf("expected 0 arguments, got %d", len(args))
	}
	ch, ok := ctx.ReadChar()
	if !ok || ch == "" {
		return values.Number(0), nil
	}
	return values.Number(float64(ch[0])), nil
}
