package tensor

import "errors"

// Diagnostic messages carried by Err tensors. Construction failures are
// values, not Go errors: builders return an Err tensor holding one of
// these messages instead of a partial tree.
const (
	// MsgArityMismatch is reported when the index-name string and the size
	// list differ in length.
	MsgArityMismatch = "tensor: index names and sizes differ in length"
	// MsgSingleIndexName is reported by rank-1 front-ends when the
	// index-name string is not exactly one character.
	MsgSingleIndexName = "tensor: index name must be exactly one character"
	// MsgNonPositiveSize is reported when any requested index size is < 1.
	MsgNonPositiveSize = "tensor: index size must be positive"
	// MsgChildCount is reported by Finite when the child count does not
	// match the index size.
	MsgChildCount = "tensor: child count does not match index size"
)

var (
	// ErrCoordinate indicates a coordinate tuple that does not address a
	// leaf of the tensor (wrong rank or out-of-range component).
	ErrCoordinate = errors.New("tensor: coordinate does not address a leaf")
	// ErrFailed indicates an operation was applied to an Err tensor.
	ErrFailed = errors.New("tensor: tensor is a construction failure")
	// ErrShape indicates a tensor shape unsupported by the operation.
	ErrShape = errors.New("tensor: unsupported tensor shape")
)
