// pool.go implements a pool of reusable scratch slices.

// Package pool provides pools for per-frame scratch memory, so that
// filters running once per video frame do not reallocate it every time.
package pool

import (
	"sync"
)

// ReuseMemory may be set to false to disable pooling (e.g. to
// debug memory corruption).
var ReuseMemory = true

// SlicePool hands out zeroed slices of a requested length.
type SlicePool[T any] struct {
	pool   sync.Pool
	maxCap int
}

type sliceHolder[T any] struct {
	data []T
}

// NewSlicePool returns a pool that does not retain slices with capacity
// above maxCap; zero means no limit.
func NewSlicePool[T any](maxCap int) *SlicePool[T] {
	return &SlicePool[T]{
		pool: sync.Pool{
			New: func() any {
				return &sliceHolder[T]{}
			},
		},
		maxCap: maxCap,
	}
}

// Get returns a zeroed slice of length n.
func (p *SlicePool[T]) Get(n int) []T {
	h := p.pool.Get().(*sliceHolder[T])
	if cap(h.data) < n {
		p.pool.Put(h)
		return make([]T, n)
	}
	s := h.data[:n]
	clear(s)
	return s
}

// Put returns the slice to the pool; the caller must not use it afterwards.
func (p *SlicePool[T]) Put(s []T) {
	if !ReuseMemory {
		return
	}
	if p.maxCap > 0 && cap(s) > p.maxCap {
		return
	}
	p.pool.Put(&sliceHolder[T]{data: s[:cap(s)]})
}
