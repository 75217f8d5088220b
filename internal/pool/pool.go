// Package pool recycles the backing arrays of list copies handed out by
// the parser's accessors and returned through their release functions.
package pool

import (
	"sync"
)

// Pool is a type-safe wrapper over sync.Pool with an optional reset hook.
type Pool[T any] struct {
	pool  sync.Pool
	reset func(*T)
}

// NewPool creates a pool with the given factory function.
func NewPool[T any](factory func() *T) *Pool[T] {
	return &Pool[T]{pool: sync.Pool{New: func() any { return factory() }}}
}

// NewPoolWithReset creates a pool whose objects are reset before reuse.
func NewPoolWithReset[T any](factory func() *T, reset func(*T)) *Pool[T] {
	p := NewPool(factory)
	p.reset = reset
	return p
}

// Get retrieves an object from the pool or creates a new one.
func (p *Pool[T]) Get() *T {
	obj := p.pool.Get().(*T)
	if p.reset != nil {
		p.reset(obj)
	}
	return obj
}

// Put returns an object to the pool. nil is ignored.
func (p *Pool[T]) Put(obj *T) {
	if obj == nil {
		return
	}
	p.pool.Put(obj)
}

// maxPooledCap keeps huge one-off lists out of the pool.
const maxPooledCap = 4096

// SlicePool hands out zero-length slices with reusable backing arrays.
type SlicePool[E any] struct {
	p *Pool[[]E]
}

// NewSlicePool creates a slice pool whose fresh slices have defaultCap.
func NewSlicePool[E any](defaultCap int) *SlicePool[E] {
	return &SlicePool[E]{p: NewPoolWithReset(
		func() *[]E {
			s := make([]E, 0, defaultCap)
			return &s
		},
		func(s *[]E) { *s = (*s)[:0] },
	)}
}

// Get returns an empty slice with capacity for at least n elements.
func (sp *SlicePool[E]) Get(n int) []E {
	s := *sp.p.Get()
	if cap(s) < n {
		return make([]E, 0, n)
	}
	return s
}

// Put zeroes the slice's elements and recycles its backing array. The
// caller must not use s afterwards.
func (sp *SlicePool[E]) Put(s []E) {
	if s == nil || cap(s) > maxPooledCap {
		return
	}
	clear(s[:cap(s)])
	s = s[:0]
	sp.p.Put(&s)
}

// Shared pools for the parser's list accessors.
var (
	Ints    = NewSlicePool[int](16)
	Floats  = NewSlicePool[float64](16)
	Strings = NewSlicePool[string](16)
)
