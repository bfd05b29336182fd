package tensor

import "sync"

// seq is the backing store for a finite tensor's children. Two
// implementations exist: an array-backed eager store and a list-style lazy
// store that materializes children on first access. Both present the same
// ordered, fixed-length view.
type seq[T any] interface {
	Len() int
	At(i int) Tensor[T]
}

type denseSeq[T any] []Tensor[T]

func (s denseSeq[T]) Len() int { return len(s) }

func (s denseSeq[T]) At(i int) Tensor[T] { return s[i] }

// lazySeq defers child construction until a coordinate is first visited.
// Materialized children are memoized so gen runs at most once per
// coordinate even under concurrent readers.
type lazySeq[T any] struct {
	n   int
	gen func(int) Tensor[T]

	mu   sync.RWMutex
	memo map[int]Tensor[T]
}

func newLazySeq[T any](n int, gen func(int) Tensor[T]) *lazySeq[T] {
	return &lazySeq[T]{
		n:    n,
		gen:  gen,
		memo: make(map[int]Tensor[T]),
	}
}

func (s *lazySeq[T]) Len() int { return s.n }

func (s *lazySeq[T]) At(i int) Tensor[T] {
	s.mu.RLock()
	if t, ok := s.memo[i]; ok {
		s.mu.RUnlock()
		return t
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.memo[i]; ok {
		return t
	}
	t := s.gen(i)
	s.memo[i] = t
	return t
}
