package grid

import (
	"iter"

	"github.com/tidwall/btree"

	"github.com/forestrie/go-voxelgrid/bucket"
	"github.com/forestrie/go-voxelgrid/voxel"
)

// Inner is the contract an inner-map backend satisfies. Implementations
// store values for local offsets within one chunk and iterate in ascending
// local Morton-code order. Every operation is total; presence checks are
// expressed through the ok result rather than errors.
type Inner[T any] interface {
	// Get returns the value at l and whether it is present.
	Get(l voxel.Local) (T, bool)
	// Put assigns value to l, creating the entry if absent.
	Put(l voxel.Local, value T)
	// Ensure returns the value at l, creating a default entry if absent.
	Ensure(l voxel.Local) T
	// Contains reports whether l has an entry.
	Contains(l voxel.Local) bool
	// Erase removes l's entry, returning 0 or 1.
	Erase(l voxel.Local) int
	// Len returns the number of entries.
	Len() int
	// All yields entries in ascending local code order.
	All() iter.Seq2[voxel.Local, T]
}

// orderedInner is the plain backend: a B-tree keyed by local Morton code.
type orderedInner[T any] struct {
	entries btree.Map[uint32, T]
}

// OrderedInner returns a factory for the plain ordered backend.
func OrderedInner[T any]() func() Inner[T] {
	return func() Inner[T] { return &orderedInner[T]{} }
}

func (m *orderedInner[T]) Get(l voxel.Local) (T, bool) {
	return m.entries.Get(l.Code())
}

func (m *orderedInner[T]) Put(l voxel.Local, value T) {
	m.entries.Set(l.Code(), value)
}

func (m *orderedInner[T]) Ensure(l voxel.Local) T {
	if v, ok := m.entries.Get(l.Code()); ok {
		return v
	}
	var zero T
	m.entries.Set(l.Code(), zero)
	return zero
}

func (m *orderedInner[T]) Contains(l voxel.Local) bool {
	_, ok := m.entries.Get(l.Code())
	return ok
}

func (m *orderedInner[T]) Erase(l voxel.Local) int {
	if _, ok := m.entries.Delete(l.Code()); ok {
		return 1
	}
	return 0
}

func (m *orderedInner[T]) Len() int { return m.entries.Len() }

func (m *orderedInner[T]) All() iter.Seq2[voxel.Local, T] {
	return func(yield func(voxel.Local, T) bool) {
		m.entries.Scan(func(code uint32, v T) bool {
			return yield(voxel.LocalFromCode(code), v)
		})
	}
}

// dedupInner adapts bucket.Map to the Inner contract, keying it by local
// Morton code. Codes are below 32768, so a full chunk is 512 buckets.
type dedupInner[T comparable] struct {
	entries bucket.Map[T]
}

// DedupInner returns a factory for the bucket-dedup backend.
func DedupInner[T comparable]() func() Inner[T] {
	return func() Inner[T] { return &dedupInner[T]{} }
}

func (m *dedupInner[T]) Get(l voxel.Local) (T, bool) { return m.entries.Get(l.Code()) }
func (m *dedupInner[T]) Put(l voxel.Local, value T)  { m.entries.Put(l.Code(), value) }
func (m *dedupInner[T]) Ensure(l voxel.Local) T      { return m.entries.Ensure(l.Code()) }
func (m *dedupInner[T]) Contains(l voxel.Local) bool { return m.entries.Contains(l.Code()) }
func (m *dedupInner[T]) Erase(l voxel.Local) int     { return m.entries.Erase(l.Code()) }
func (m *dedupInner[T]) Len() int                    { return m.entries.Len() }

func (m *dedupInner[T]) All() iter.Seq2[voxel.Local, T] {
	return func(yield func(voxel.Local, T) bool) {
		for code, v := range m.entries.All() {
			if !yield(voxel.LocalFromCode(code), v) {
				return
			}
		}
	}
}
