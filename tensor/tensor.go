package tensor

// Kind discriminates the three tensor variants.
type Kind int

const (
	// KindScalar is a zero-index terminal node holding one value.
	KindScalar Kind = iota
	// KindFinite is a recursive node: one index plus index.Size children.
	KindFinite
	// KindErr marks a construction failure. It propagates inertly:
	// operations consuming an Err tensor degrade to Err or report zero
	// work instead of faulting.
	KindErr
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindFinite:
		return "finite"
	case KindErr:
		return "err"
	}
	return "unknown"
}

// Tensor is an immutable, tree-shaped tensor over element type T. The zero
// value is a scalar holding the zero value of T. Tensors are safe for
// concurrent use: nothing mutates a tensor after construction.
type Tensor[T any] struct {
	kind     Kind
	value    T // kind == KindScalar
	index    Index
	children seq[T] // kind == KindFinite, children.Len() == index.Size
	msg      string // kind == KindErr
}

// Scalar returns a zero-index tensor holding v.
func Scalar[T any](v T) Tensor[T] {
	return Tensor[T]{kind: KindScalar, value: v}
}

// Err returns a construction-failure tensor carrying a diagnostic message.
func Err[T any](msg string) Tensor[T] {
	return Tensor[T]{kind: KindErr, msg: msg}
}

// Finite wraps an ordered child slice under idx. The child count must
// equal idx.Size and no child may itself be a failure; violations degrade
// to an Err tensor rather than producing a malformed tree.
func Finite[T any](idx Index, children []Tensor[T]) Tensor[T] {
	if idx.Size <= 0 {
		return Err[T](MsgNonPositiveSize)
	}
	if len(children) != idx.Size {
		return Err[T](MsgChildCount)
	}
	for _, c := range children {
		if c.kind == KindErr {
			return Err[T](c.msg)
		}
	}
	cs := make(denseSeq[T], len(children))
	copy(cs, children)
	return Tensor[T]{kind: KindFinite, index: idx, children: cs}
}

// finite is the engine-internal constructor: children are known valid.
func finite[T any](idx Index, children seq[T]) Tensor[T] {
	return Tensor[T]{kind: KindFinite, index: idx, children: children}
}

// Kind returns the variant of t.
func (t Tensor[T]) Kind() Kind { return t.kind }

// IsErr reports whether t is a construction failure.
func (t Tensor[T]) IsErr() bool { return t.kind == KindErr }

// Message returns the diagnostic carried by an Err tensor, or "".
func (t Tensor[T]) Message() string { return t.msg }

// Value returns the scalar value. ok is false unless t is a scalar.
func (t Tensor[T]) Value() (v T, ok bool) {
	if t.kind != KindScalar {
		return v, false
	}
	return t.value, true
}

// Index returns the outermost index. ok is false unless t is finite.
func (t Tensor[T]) Index() (Index, bool) {
	if t.kind != KindFinite {
		return Index{}, false
	}
	return t.index, true
}

// Child returns the sub-tensor obtained by fixing the outermost index to
// coordinate i.
func (t Tensor[T]) Child(i int) (Tensor[T], error) {
	if t.kind == KindErr {
		return t, ErrFailed
	}
	if t.kind != KindFinite || i < 0 || i >= t.children.Len() {
		return Tensor[T]{}, ErrCoordinate
	}
	return t.children.At(i), nil
}

// Rank returns the number of indices from the root to any leaf. An Err
// tensor has rank 0; check IsErr to distinguish it from a scalar.
func (t Tensor[T]) Rank() int {
	n := 0
	for t.kind == KindFinite {
		n++
		t = t.children.At(0)
	}
	return n
}

// Shape returns the ordered index list from outermost to innermost. Every
// root-to-leaf path of a well-formed tensor carries the same list.
func (t Tensor[T]) Shape() []Index {
	var shape []Index
	for t.kind == KindFinite {
		shape = append(shape, t.index)
		t = t.children.At(0)
	}
	return shape
}

// At returns the leaf value addressed by the coordinate tuple, one
// component per index in outer-to-inner order.
func (t Tensor[T]) At(coords ...int) (T, error) {
	var zero T
	for _, c := range coords {
		if t.kind == KindErr {
			return zero, ErrFailed
		}
		if t.kind != KindFinite || c < 0 || c >= t.children.Len() {
			return zero, ErrCoordinate
		}
		t = t.children.At(c)
	}
	if t.kind == KindErr {
		return zero, ErrFailed
	}
	if t.kind != KindScalar {
		return zero, ErrCoordinate
	}
	return t.value, nil
}

// Leaves flattens the tensor depth-first into leaf order: the first index
// varies slowest. An Err tensor has no leaves.
func (t Tensor[T]) Leaves() []T {
	switch t.kind {
	case KindScalar:
		return []T{t.value}
	case KindFinite:
		out := make([]T, 0, t.NumLeaves())
		return t.appendLeaves(out)
	}
	return nil
}

func (t Tensor[T]) appendLeaves(out []T) []T {
	switch t.kind {
	case KindScalar:
		return append(out, t.value)
	case KindFinite:
		for i := 0; i < t.children.Len(); i++ {
			out = t.children.At(i).appendLeaves(out)
		}
	}
	return out
}

// NumLeaves returns the product of the shape's sizes, or 1 for a scalar
// and 0 for a failure.
func (t Tensor[T]) NumLeaves() int {
	switch t.kind {
	case KindErr:
		return 0
	case KindScalar:
		return 1
	}
	n := 1
	for _, idx := range t.Shape() {
		n *= idx.Size
	}
	return n
}

// Extend wraps t under a new outer index, yielding idx.Size replicas of t
// as children. The receiver is unchanged; replicas share the immutable
// subtree. Extending an Err tensor yields the same failure.
func (t Tensor[T]) Extend(idx Index) Tensor[T] {
	if t.kind == KindErr {
		return t
	}
	if idx.Size <= 0 {
		return Err[T](MsgNonPositiveSize)
	}
	children := make(denseSeq[T], idx.Size)
	for i := range children {
		children[i] = t
	}
	return finite(idx, children)
}

// Equal reports structural equality of two tensors over a comparable
// element type: same shape, same leaf values, or both the same failure.
func Equal[T comparable](a, b Tensor[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is Equal with a caller-supplied leaf comparison.
func EqualFunc[T any](a, b Tensor[T], eq func(x, y T) bool) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindErr:
		return a.msg == b.msg
	case KindScalar:
		return eq(a.value, b.value)
	}
	if !a.index.Equal(b.index) {
		return false
	}
	for i := 0; i < a.children.Len(); i++ {
		if !EqualFunc(a.children.At(i), b.children.At(i), eq) {
			return false
		}
	}
	return true
}
