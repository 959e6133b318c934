package flyweight

import "iter"

// Handle is a stable, compact reference to a pooled value. Handles are
// assigned densely from zero in insertion order and remain valid for the
// pool's lifetime; pooled values are immutable.
type Handle uint32

// Pool deduplicates values of type T, assigning one Handle per distinct
// value. The zero Pool is empty and ready to use.
type Pool[T comparable] struct {
	index map[T]Handle
	items []T
}

// NewPool returns an empty pool.
func NewPool[T comparable]() *Pool[T] { return &Pool[T]{} }

// Insert returns the handle for value, adding it to the pool only if no
// equal value is present.
func (p *Pool[T]) Insert(value T) Handle {
	if h, ok := p.index[value]; ok {
		return h
	}
	if p.index == nil {
		p.index = map[T]Handle{}
	}
	h := Handle(len(p.items))
	p.index[value] = h
	p.items = append(p.items, value)
	return h
}

// Lookup returns the handle for value without inserting.
func (p *Pool[T]) Lookup(value T) (Handle, bool) {
	h, ok := p.index[value]
	return h, ok
}

// Contains reports whether h refers to a pooled value.
func (p *Pool[T]) Contains(h Handle) bool { return int(h) < len(p.items) }

// Value returns the pooled value for h. The handle must have been issued
// by this pool; the burden of validity is on the caller.
func (p *Pool[T]) Value(h Handle) T { return p.items[h] }

// Len returns the number of distinct pooled values.
func (p *Pool[T]) Len() int { return len(p.items) }

// All yields every (handle, value) pair in handle order.
func (p *Pool[T]) All() iter.Seq2[Handle, T] {
	return func(yield func(Handle, T) bool) {
		for i, v := range p.items {
			if !yield(Handle(i), v) {
				return
			}
		}
	}
}
