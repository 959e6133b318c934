package flyweight

import (
	"iter"

	"github.com/forestrie/go-voxelgrid/grid"
	"github.com/forestrie/go-voxelgrid/voxel"
)

// BlockSlots is the number of value slots per pooled block.
const BlockSlots = 64

// Block is one pooled unit: the value handles of 64 consecutive slots.
type Block [BlockSlots]Handle

// BlockMap stores values for local offsets within one chunk, deduplicating
// through a shared value pool and a shared block pool. See the package
// documentation for semantics; note in particular that the zero value of T
// reads as absent.
type BlockMap[T comparable] struct {
	values *Pool[T]
	blocks *Pool[Block]

	// absent is the handle of the zero value; defBlock is the all-absent
	// block. Both are pooled eagerly so equal-content maps sharing pools
	// agree on them.
	absent   Handle
	defBlock Handle

	// state[i] is the block-pool handle for keys [i*BlockSlots,
	// (i+1)*BlockSlots); entries beyond len(state) are default blocks.
	state []Handle
	size  int
}

// NewBlockMap returns an empty BlockMap storing through the given pools.
// Pools may be shared across any number of maps; sharing is what enables
// cross-instance dedup.
func NewBlockMap[T comparable](values *Pool[T], blocks *Pool[Block]) *BlockMap[T] {
	var zero T
	absent := values.Insert(zero)
	var def Block
	for i := range def {
		def[i] = absent
	}
	return &BlockMap[T]{
		values:   values,
		blocks:   blocks,
		absent:   absent,
		defBlock: blocks.Insert(def),
	}
}

// Inner returns a factory suitable for grid.NewWith, producing block maps
// that all share the given pools.
func Inner[T comparable](values *Pool[T], blocks *Pool[Block]) func() grid.Inner[T] {
	return func() grid.Inner[T] { return NewBlockMap(values, blocks) }
}

func (m *BlockMap[T]) blockAt(i int) Block {
	if i >= len(m.state) {
		return m.blocks.Value(m.defBlock)
	}
	return m.blocks.Value(m.state[i])
}

func (m *BlockMap[T]) setBlock(i int, b Block) {
	for i >= len(m.state) {
		m.state = append(m.state, m.defBlock)
	}
	m.state[i] = m.blocks.Insert(b)
}

// Get returns the value at l and whether a non-zero value is stored there.
func (m *BlockMap[T]) Get(l voxel.Local) (T, bool) {
	code := int(l.Code())
	h := m.blockAt(code / BlockSlots)[code%BlockSlots]
	if h == m.absent {
		var zero T
		return zero, false
	}
	return m.values.Value(h), true
}

// Put assigns value to l. Assigning the zero value is equivalent to Erase.
func (m *BlockMap[T]) Put(l voxel.Local, value T) {
	code := int(l.Code())
	i, slot := code/BlockSlots, code%BlockSlots
	b := m.blockAt(i)
	h := m.values.Insert(value)
	if b[slot] == m.absent && h != m.absent {
		m.size++
	}
	if b[slot] != m.absent && h == m.absent {
		m.size--
	}
	b[slot] = h
	m.setBlock(i, b)
}

// Ensure returns the value at l. The default value reads as absent in this
// backend, so an absent slot stays absent.
func (m *BlockMap[T]) Ensure(l voxel.Local) T {
	v, _ := m.Get(l)
	return v
}

// Contains reports whether l holds a non-zero value.
func (m *BlockMap[T]) Contains(l voxel.Local) bool {
	_, ok := m.Get(l)
	return ok
}

// Erase resets l's slot to the default value, returning 0 or 1.
func (m *BlockMap[T]) Erase(l voxel.Local) int {
	code := int(l.Code())
	i, slot := code/BlockSlots, code%BlockSlots
	b := m.blockAt(i)
	if b[slot] == m.absent {
		return 0
	}
	b[slot] = m.absent
	m.setBlock(i, b)
	m.size--
	return 1
}

// Len returns the number of present slots.
func (m *BlockMap[T]) Len() int { return m.size }

// All yields present entries in ascending local code order.
func (m *BlockMap[T]) All() iter.Seq2[voxel.Local, T] {
	return func(yield func(voxel.Local, T) bool) {
		for i := range m.state {
			b := m.blockAt(i)
			for slot, h := range b {
				if h == m.absent {
					continue
				}
				l := voxel.LocalFromCode(uint32(i*BlockSlots + slot))
				if !yield(l, m.values.Value(h)) {
					return
				}
			}
		}
	}
}

// BlockKeys exposes the per-block pool handles, the observable unit of
// cross-instance dedup; two maps with equal contents sharing pools return
// equal slices.
func (m *BlockMap[T]) BlockKeys() []Handle {
	return append([]Handle(nil), m.state...)
}
