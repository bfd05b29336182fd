package tensor

import "gonum.org/v1/gonum/mat"

// AsVecDense copies a rank-1 float64 tensor into a gonum vector.
func AsVecDense(t Tensor[float64]) (*mat.VecDense, error) {
	if t.IsErr() {
		return nil, ErrFailed
	}
	if t.Rank() != 1 {
		return nil, ErrShape
	}
	return mat.NewVecDense(t.NumLeaves(), t.Leaves()), nil
}

// AsDense copies a rank-2 float64 tensor into a gonum matrix. The outer
// index maps to rows.
func AsDense(t Tensor[float64]) (*mat.Dense, error) {
	if t.IsErr() {
		return nil, ErrFailed
	}
	shape := t.Shape()
	if len(shape) != 2 {
		return nil, ErrShape
	}
	// Leaves are emitted with the outer index varying slowest, which is
	// exactly gonum's row-major layout.
	return mat.NewDense(shape[0].Size, shape[1].Size, t.Leaves()), nil
}
