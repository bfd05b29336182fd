// Package form builds linear functionals: rank-1 tensors whose single
// index is covariant. Every entry point requires the index name to be
// exactly one character; any other name yields a construction failure
// regardless of the requested size.
package form

import (
	"github.com/23skdu/longbow-loom/dist"
	"github.com/23skdu/longbow-loom/tensor"
)

// FromIndices builds a functional of the given size with component i
// equal to f(i).
func FromIndices[T any](name string, size int, f func(i int) T) tensor.Tensor[T] {
	if _, ok := tensor.SingleIndexName(name); !ok {
		return tensor.Err[T](tensor.MsgSingleIndexName)
	}
	return tensor.FromIndices(name, []int{size}, tensor.Covariant, func(coords []int) T {
		return f(coords[0])
	})
}

// Const builds a functional whose every component equals value.
func Const[T any](name string, size int, value T) tensor.Tensor[T] {
	if _, ok := tensor.SingleIndexName(name); !ok {
		return tensor.Err[T](tensor.MsgSingleIndexName)
	}
	return tensor.Const(name, []int{size}, tensor.Covariant, value)
}

// RandomSample builds a functional of draws from d using fresh system
// entropy. Repeated calls are not reproducible.
func RandomSample(name string, size int, d dist.Distribution) tensor.Tensor[float64] {
	if _, ok := tensor.SingleIndexName(name); !ok {
		return tensor.Err[float64](tensor.MsgSingleIndexName)
	}
	return tensor.RandomSample(name, []int{size}, tensor.Covariant, d.Sampler())
}

// RandomSampleSeeded builds a functional of draws from d with a
// deterministic generator state derived from seed: identical
// (name, size, d, seed) inputs build identical tensors.
func RandomSampleSeeded(name string, size int, d dist.Distribution, seed uint64) tensor.Tensor[float64] {
	if _, ok := tensor.SingleIndexName(name); !ok {
		return tensor.Err[float64](tensor.MsgSingleIndexName)
	}
	return tensor.RandomSample(name, []int{size}, tensor.Covariant, d.SamplerSeeded(seed))
}
