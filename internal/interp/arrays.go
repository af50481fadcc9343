package interp

import (
	"github.com/ReleasedGroup/go-basic/internal/ast"
	berrors "github.com/ReleasedGroup/go-basic/internal/errors"
	"github.com/ReleasedGroup/go-basic/internal/values"
)

// implicitArraySize is the per-dimension size an array gets when it is
// referenced without a prior DIM (indices 0 through 10, per spec.md
// section 4.4).
const implicitArraySize = 11

// getOrCreateArray returns name's array, auto-allocating it at
// implicitArraySize per dimension on first reference if it was never
// DIM'd.
func (rt *Runtime) getOrCreateArray(name string, numDims int) (*array, error) {
	arr, ok := rt.arrays[name]
	if !ok {
		dims := make([]int, numDims)
		for i := range dims {
			dims[i] = implicitArraySize
		}
		arr = newArray(dims, isStringName(name))
		rt.arrays[name] = arr
		return arr, nil
	}
	if len(arr.dims) != numDims {
		return nil, berrors.NewRuntimeError(0, "%s", berrors.ArrayDimensionMismatch(name, len(arr.dims)))
	}
	return arr, nil
}

func (rt *Runtime) execDim(s *ast.DimStatement) error {
	for _, entry := range s.Entries {
		if _, exists := rt.arrays[entry.Name]; exists {
			return berrors.NewRuntimeError(0, "%s", berrors.ArrayAlreadyDimensioned(entry.Name))
		}
		dims := make([]int, len(entry.Dims))
		for i, expr := range entry.Dims {
			v, err := rt.Eval(expr)
			if err != nil {
				return err
			}
			bound := int(values.AsInt32(v))
			if bound < 0 {
				bound = 0
			}
			dims[i] = bound + 1
		}
		rt.arrays[entry.Name] = newArray(dims, isStringName(entry.Name))
	}
	return nil
}
