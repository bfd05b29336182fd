package tensor

// supplier produces the leaf value for one coordinate tuple. Coordinates
// arrive in outer-to-inner index order and the slice is owned by the
// callee.
type supplier[T any] func(coords []int) T

// FromIndices builds a tensor from an index-name string (one character per
// index), a matching size list, a uniform variance and a pure coordinate
// function. The first-supplied index varies slowest. Arity mismatch or a
// non-positive size yields an Err tensor; no partial tree is ever built.
func FromIndices[T any](names string, sizes []int, v Variance, f func(coords []int) T) Tensor[T] {
	return generate(names, sizes, v, supplier[T](f), false, "fn")
}

// FromIndicesLazy is FromIndices with list-backed children: each
// sub-tensor is materialized on first access and memoized. The resulting
// tree is observationally identical to the eager form.
func FromIndicesLazy[T any](names string, sizes []int, v Variance, f func(coords []int) T) Tensor[T] {
	return generate(names, sizes, v, supplier[T](f), true, "fn_lazy")
}

// Const builds a tensor whose every leaf equals value.
func Const[T any](names string, sizes []int, v Variance, value T) Tensor[T] {
	return generate(names, sizes, v, func([]int) T { return value }, false, "const")
}

func generate[T any](names string, sizes []int, v Variance, f supplier[T], lazy bool, source string) Tensor[T] {
	runes := splitNames(names)
	if len(runes) != len(sizes) {
		buildFailures.Inc()
		return Err[T](MsgArityMismatch)
	}
	for _, s := range sizes {
		if s <= 0 {
			buildFailures.Inc()
			return Err[T](MsgNonPositiveSize)
		}
	}
	t := build(runes, sizes, v, f, lazy, nil)
	tensorsBuilt.WithLabelValues(source).Inc()
	return t
}

// build realizes one level of nesting per remaining index. prefix holds
// the coordinates fixed so far, outer-to-inner.
func build[T any](names []rune, sizes []int, v Variance, f supplier[T], lazy bool, prefix []int) Tensor[T] {
	if len(names) == 0 {
		leavesGenerated.Inc()
		return Scalar(f(prefix))
	}

	idx := Index{Name: names[0], Size: sizes[0], Variance: v}
	if lazy {
		return finite(idx, newLazySeq(idx.Size, func(k int) Tensor[T] {
			return build(names[1:], sizes[1:], v, f, true, extendPrefix(prefix, k))
		}))
	}

	children := make(denseSeq[T], idx.Size)
	for k := range children {
		children[k] = build(names[1:], sizes[1:], v, f, false, extendPrefix(prefix, k))
	}
	return finite(idx, children)
}

// extendPrefix copies rather than appends: suppliers may retain the
// coordinate slice they receive.
func extendPrefix(prefix []int, k int) []int {
	coords := make([]int, len(prefix)+1)
	copy(coords, prefix)
	coords[len(prefix)] = k
	return coords
}
