package bucket

import (
	"iter"
	"math/bits"
	"slices"
)

// Map is a deduplicating container over small unsigned integer keys. See
// the package documentation for the storage model. The zero Map is empty
// and ready to use.
type Map[T comparable] struct {
	// buckets[b] holds pool indices for keys [b*Slots, (b+1)*Slots).
	// Index 0 means absent.
	buckets []PackedArray
	// values is the pool of unique values; slot 0 is the zero value and
	// is never referenced by an occupied slot.
	values []T
	size   int
}

// NewMap returns an empty Map.
func NewMap[T comparable]() *Map[T] { return &Map[T]{} }

// ensurePool reserves pool slot 0 for the zero value.
func (m *Map[T]) ensurePool() {
	if len(m.values) == 0 {
		var zero T
		m.values = append(m.values, zero)
	}
}

// handleAt returns the pool index for key, 0 if absent or out of range.
func (m *Map[T]) handleAt(key uint32) uint32 {
	b := int(key) / Slots
	if b >= len(m.buckets) {
		return 0
	}
	return m.buckets[b].Get(int(key) % Slots)
}

// Len returns the number of assigned keys.
func (m *Map[T]) Len() int { return m.size }

// Empty reports whether no keys are assigned.
func (m *Map[T]) Empty() bool { return m.size == 0 }

// Cap returns the key capacity, a whole number of buckets. It never
// shrinks.
func (m *Map[T]) Cap() int { return len(m.buckets) * Slots }

// Uniques returns the number of pool entries, counting the reserved zero
// slot. Erased values are not reclaimed until Clear.
func (m *Map[T]) Uniques() int {
	if len(m.values) == 0 {
		return 1
	}
	return len(m.values)
}

// Values yields the pool as (handle, value) pairs in handle order,
// starting with the reserved zero slot. Together with HandleAt this is the
// key-to-handle surface a frame codec flattens.
func (m *Map[T]) Values() iter.Seq2[uint32, T] {
	return func(yield func(uint32, T) bool) {
		if len(m.values) == 0 {
			var zero T
			yield(0, zero)
			return
		}
		for i, v := range m.values {
			if !yield(uint32(i), v) {
				return
			}
		}
	}
}

// Contains reports whether key has an assigned value.
func (m *Map[T]) Contains(key uint32) bool { return m.handleAt(key) != 0 }

// HandleAt returns the pool handle for key, or 0 if the key is absent.
// Handles are stable across erases of other keys.
func (m *Map[T]) HandleAt(key uint32) uint32 { return m.handleAt(key) }

// ValueOf returns the pooled value for a handle obtained from HandleAt or
// Nodes. Handle 0 yields the zero value.
func (m *Map[T]) ValueOf(handle uint32) T {
	if int(handle) >= len(m.values) {
		var zero T
		return zero
	}
	return m.values[handle]
}

// At returns the value assigned to key, or ErrNotFound.
func (m *Map[T]) At(key uint32) (T, error) {
	h := m.handleAt(key)
	if h == 0 {
		var zero T
		return zero, ErrNotFound
	}
	return m.values[h], nil
}

// Get returns the value assigned to key and whether it is present.
func (m *Map[T]) Get(key uint32) (T, bool) {
	h := m.handleAt(key)
	if h == 0 {
		var zero T
		return zero, false
	}
	return m.values[h], true
}

// Put assigns value to key. The key's bucket is scanned for an occupied
// slot holding an equal pooled value; only when none matches does the pool
// grow. At most one pool entry is added per distinct value per bucket.
func (m *Map[T]) Put(key uint32, value T) {
	m.ensurePool()
	b := int(key) / Slots
	slot := int(key) % Slots
	for b >= len(m.buckets) {
		m.buckets = append(m.buckets, PackedArray{})
	}
	arr := &m.buckets[b]

	var handle uint32
	for occ := arr.Occupied(); occ != 0; occ &= occ - 1 {
		s := bits.TrailingZeros64(occ)
		if h := arr.Get(s); m.values[h] == value {
			handle = h
			break
		}
	}
	if handle == 0 {
		m.values = append(m.values, value)
		handle = uint32(len(m.values) - 1)
	}
	if arr.Get(slot) == 0 {
		m.size++
	}
	arr.Set(slot, handle)
}

// Ensure returns the value at key, assigning the zero value first if the
// key is absent. The created entry occupies a real pool slot, subject to
// the same bucket-local dedup as Put.
func (m *Map[T]) Ensure(key uint32) T {
	if v, ok := m.Get(key); ok {
		return v
	}
	var zero T
	m.Put(key, zero)
	return zero
}

// Erase clears key's slot and returns how many entries were removed (0 or
// 1). The pool is never compacted.
func (m *Map[T]) Erase(key uint32) int {
	b := int(key) / Slots
	if b >= len(m.buckets) {
		return 0
	}
	arr := &m.buckets[b]
	slot := int(key) % Slots
	if arr.Get(slot) == 0 {
		return 0
	}
	arr.Set(slot, 0)
	m.size--
	return 1
}

// Clear removes all entries and releases the pool.
func (m *Map[T]) Clear() {
	m.buckets = nil
	m.values = nil
	m.size = 0
}

// All yields assigned entries in ascending key order, bucket by bucket.
func (m *Map[T]) All() iter.Seq2[uint32, T] {
	return func(yield func(uint32, T) bool) {
		for b := range m.buckets {
			arr := &m.buckets[b]
			for occ := arr.Occupied(); occ != 0; occ &= occ - 1 {
				s := bits.TrailingZeros64(occ)
				key := uint32(b*Slots + s)
				if !yield(key, m.values[arr.Get(s)]) {
					return
				}
			}
		}
	}
}

// Node groups, within one bucket, a distinct stored value with the mask of
// the keys holding it. Bit i of Mask corresponds to key Bucket*Slots+i.
type Node[T any] struct {
	Bucket int
	Mask   uint64
	Handle uint32
	Value  T
}

// Nodes is a lazy view of the map grouped for bulk export: one Node per
// (bucket, distinct value) pair, buckets ascending, handles ascending
// within a bucket.
func (m *Map[T]) Nodes() iter.Seq[Node[T]] {
	return func(yield func(Node[T]) bool) {
		for b := range m.buckets {
			arr := &m.buckets[b]
			masks := map[uint32]uint64{}
			for occ := arr.Occupied(); occ != 0; occ &= occ - 1 {
				s := bits.TrailingZeros64(occ)
				masks[arr.Get(s)] |= uint64(1) << uint(s)
			}
			handles := make([]uint32, 0, len(masks))
			for h := range masks {
				handles = append(handles, h)
			}
			slices.Sort(handles)
			for _, h := range handles {
				n := Node[T]{Bucket: b, Mask: masks[h], Handle: h, Value: m.values[h]}
				if !yield(n) {
					return
				}
			}
		}
	}
}

// InsertRange merges every entry of other into m. When m is empty the
// other map's storage is adopted by a whole-bucket copy; otherwise entries
// replay key by key through Put, re-deduplicating into m's pool.
func (m *Map[T]) InsertRange(other *Map[T]) {
	if other == nil || other.size == 0 {
		return
	}
	if m.size == 0 {
		m.buckets = make([]PackedArray, len(other.buckets))
		for i := range other.buckets {
			m.buckets[i] = other.buckets[i].Clone()
		}
		m.values = append([]T(nil), other.values...)
		m.size = other.size
		return
	}
	for k, v := range other.All() {
		m.Put(k, v)
	}
}
