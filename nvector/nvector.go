// Package nvector builds n-vectors: tensors of arbitrary rank whose
// indices are uniformly contravariant. The index-name string carries one
// character per index and must match the size list in length; a mismatch
// yields a construction failure, never a partial tree.
package nvector

import (
	"github.com/23skdu/longbow-loom/dist"
	"github.com/23skdu/longbow-loom/tensor"
)

// FromIndices builds an n-vector whose leaf at coordinate tuple c equals
// f(c). The first index in names varies slowest.
func FromIndices[T any](names string, sizes []int, f func(coords []int) T) tensor.Tensor[T] {
	return tensor.FromIndices(names, sizes, tensor.Contravariant, f)
}

// FromIndicesLazy is FromIndices with lazily materialized children.
func FromIndicesLazy[T any](names string, sizes []int, f func(coords []int) T) tensor.Tensor[T] {
	return tensor.FromIndicesLazy(names, sizes, tensor.Contravariant, f)
}

// Const builds an n-vector whose every leaf equals value.
func Const[T any](names string, sizes []int, value T) tensor.Tensor[T] {
	return tensor.Const(names, sizes, tensor.Contravariant, value)
}

// RandomSample builds an n-vector of draws from d using fresh system
// entropy.
func RandomSample(names string, sizes []int, d dist.Distribution) tensor.Tensor[float64] {
	return tensor.RandomSample(names, sizes, tensor.Contravariant, d.Sampler())
}

// RandomSampleSeeded builds an n-vector of draws from d with a
// deterministic generator state derived from seed.
func RandomSampleSeeded(names string, sizes []int, d dist.Distribution, seed uint64) tensor.Tensor[float64] {
	return tensor.RandomSample(names, sizes, tensor.Contravariant, d.SamplerSeeded(seed))
}
