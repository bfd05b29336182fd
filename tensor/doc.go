// Package tensor builds immutable, tree-shaped tensors from named index
// specifications.
//
// A tensor is a tagged union: a scalar leaf, a finite node carrying one
// Index and an ordered sequence of sub-tensors (one per index value), or a
// construction failure that propagates inertly through further operations.
// The generator engine realizes a tensor of arbitrary rank from an
// index-name string (one character per index), a matching size list, a
// uniform variance, and a leaf-value source: a pure coordinate function, a
// constant, or a Sampler drawing from a probability distribution.
//
// Pure-function builds come in an eager, array-backed form (FromIndices)
// and a lazy, memoized form (FromIndicesLazy); both produce observationally
// identical trees. Sampled builds are always eager so that draw order is
// fixed: depth-first, first-supplied index varying slowest.
package tensor
