// Package pool provides a small generic object pool used by go-match for
// transient scratch objects, such as the rewrite buffers behind lossy UTF-8
// decoding. Anything handed to a consumer is never pooled; only objects whose
// lifetime ends inside a single call qualify.
package pool

import (
	"sync"
)

// Pool is a type-safe wrapper around sync.Pool with an optional reset hook
// run before an object is handed out again.
type Pool[T any] struct {
	pool  sync.Pool
	reset func(*T)
}

// NewPool creates a pool with the given factory function.
func NewPool[T any](factory func() *T) *Pool[T] {
	return &Pool[T]{
		pool: sync.Pool{
			New: func() any {
				return factory()
			},
		},
	}
}

// NewPoolWithReset creates a pool whose objects are reset before reuse.
func NewPoolWithReset[T any](factory func() *T, reset func(*T)) *Pool[T] {
	p := NewPool(factory)
	p.reset = reset
	return p
}

// Get retrieves an object from the pool, or creates one.
func (p *Pool[T]) Get() *T {
	obj := p.pool.Get().(*T)
	if p.reset != nil {
		p.reset(obj)
	}
	return obj
}

// Put returns an object to the pool for reuse. The caller must not touch the
// object afterwards.
func (p *Pool[T]) Put(obj *T) {
	if obj == nil {
		return
	}
	p.pool.Put(obj)
}
