package grid

import (
	"iter"

	"github.com/tidwall/btree"

	"github.com/forestrie/go-voxelgrid/voxel"
)

// Map is a chunked spatial map from global positions to values of type T.
// See the package documentation for the storage model and invariants.
type Map[T any] struct {
	chunks   btree.Map[uint32, Inner[T]]
	newInner func() Inner[T]
}

// New returns a Map backed by the plain ordered inner map.
func New[T any]() *Map[T] { return NewWith(OrderedInner[T]()) }

// NewDedup returns a Map backed by the deduplicating bucket container.
func NewDedup[T comparable]() *Map[T] { return NewWith(DedupInner[T]()) }

// NewWith returns a Map whose chunks are created by newInner, allowing any
// Inner backend to be injected per map instance.
func NewWith[T any](newInner func() Inner[T]) *Map[T] {
	return &Map[T]{newInner: newInner}
}

// split separates g into its owning chunk's code and its local offset.
func split(g voxel.Global) (uint32, voxel.Local) {
	return voxel.ChunkOf(g).Code(), voxel.LocalOf(g)
}

// Empty reports whether the map holds no entries. Because no chunk entry
// is ever empty, this is a single outer-map check.
func (m *Map[T]) Empty() bool { return m.chunks.Len() == 0 }

// Len returns the total entry count by summing inner sizes. It is
// O(chunks) on every call, deliberately uncached.
func (m *Map[T]) Len() int {
	total := 0
	m.chunks.Scan(func(_ uint32, inner Inner[T]) bool {
		total += inner.Len()
		return true
	})
	return total
}

// Clear removes every chunk.
func (m *Map[T]) Clear() {
	m.chunks = btree.Map[uint32, Inner[T]]{}
}

// Put assigns value to g, creating the chunk and local entry as needed.
func (m *Map[T]) Put(g voxel.Global, value T) {
	code, l := split(g)
	inner, ok := m.chunks.Get(code)
	if !ok {
		inner = m.newInner()
		m.chunks.Set(code, inner)
	}
	inner.Put(l, value)
	m.dropIfDrained(code, inner)
}

// Insert stores value at g only if no entry exists there, reporting
// whether it inserted. It never overwrites.
func (m *Map[T]) Insert(g voxel.Global, value T) bool {
	code, l := split(g)
	inner, ok := m.chunks.Get(code)
	if !ok {
		inner = m.newInner()
		m.chunks.Set(code, inner)
	}
	if inner.Contains(l) {
		return false
	}
	inner.Put(l, value)
	m.dropIfDrained(code, inner)
	// a backend that cannot represent value as an entry stored nothing
	return inner.Contains(l)
}

// Ensure returns the value at g, creating a default entry if absent.
func (m *Map[T]) Ensure(g voxel.Global) T {
	code, l := split(g)
	inner, ok := m.chunks.Get(code)
	if !ok {
		inner = m.newInner()
		m.chunks.Set(code, inner)
	}
	v := inner.Ensure(l)
	m.dropIfDrained(code, inner)
	return v
}

// dropIfDrained removes a chunk whose inner map reports no entries. This
// only fires with backends that cannot represent some values as entries
// (a flyweight block map reads the zero value as absent); it keeps the
// no-empty-chunk invariant independent of the backend.
func (m *Map[T]) dropIfDrained(code uint32, inner Inner[T]) {
	if inner.Len() == 0 {
		m.chunks.Delete(code)
	}
}

// At returns the value at g, or ErrNotFound. A failed At has no side
// effect.
func (m *Map[T]) At(g voxel.Global) (T, error) {
	if v, ok := m.Get(g); ok {
		return v, nil
	}
	var zero T
	return zero, ErrNotFound
}

// Get returns the value at g and whether an entry exists.
func (m *Map[T]) Get(g voxel.Global) (T, bool) {
	code, l := split(g)
	inner, ok := m.chunks.Get(code)
	if !ok {
		var zero T
		return zero, false
	}
	return inner.Get(l)
}

// Contains reports whether g has an entry.
func (m *Map[T]) Contains(g voxel.Global) bool {
	_, ok := m.Get(g)
	return ok
}

// Delete removes the entry at g, returning 0 or 1. A chunk whose inner map
// becomes empty is removed immediately, keeping the outer map free of
// empty chunks.
func (m *Map[T]) Delete(g voxel.Global) int {
	code, l := split(g)
	inner, ok := m.chunks.Get(code)
	if !ok {
		return 0
	}
	n := inner.Erase(l)
	if n != 0 && inner.Len() == 0 {
		m.chunks.Delete(code)
	}
	return n
}

// All yields every entry in ascending global Morton order, composing the
// outer chunk order with each chunk's local order. Positions are
// reconstructed lazily; the map never stores a global key.
func (m *Map[T]) All() iter.Seq2[voxel.Global, T] {
	return func(yield func(voxel.Global, T) bool) {
		m.chunks.Scan(func(code uint32, inner Inner[T]) bool {
			c := voxel.ChunkFromCode(code)
			for l, v := range inner.All() {
				if !yield(voxel.Compose(c, l), v) {
					return false
				}
			}
			return true
		})
	}
}

// Chunks yields each chunk coordinate with its inner map, in ascending
// chunk order. Callers must not retain inner maps past a mutation of m.
func (m *Map[T]) Chunks() iter.Seq2[voxel.Chunk, Inner[T]] {
	return func(yield func(voxel.Chunk, Inner[T]) bool) {
		m.chunks.Scan(func(code uint32, inner Inner[T]) bool {
			return yield(voxel.ChunkFromCode(code), inner)
		})
	}
}
