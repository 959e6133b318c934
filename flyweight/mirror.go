package flyweight

import (
	"bytes"
	"encoding/binary"
	"iter"

	"github.com/zeebo/blake3"

	"github.com/forestrie/go-voxelgrid/grid"
	"github.com/forestrie/go-voxelgrid/voxel"
)

// Orientation identifies which member of a block's transform orbit is
// pooled. Bit 0 set means the stored block is the slot-reversal of the
// logical one.
type Orientation uint8

const (
	// Identity stores the block as-is.
	Identity Orientation = 0
	// Reversed stores the block with its slots reversed.
	Reversed Orientation = 1
)

// Reverse returns b with its slots in reverse order. It is its own
// inverse.
func Reverse(b Block) Block {
	var out Block
	for i, h := range b {
		out[BlockSlots-1-i] = h
	}
	return out
}

// MirrorIndex maps a logical slot index to its stored index under o, and
// back: the mapping is an involution.
func MirrorIndex(i int, o Orientation) int {
	if o&1 != 0 {
		return BlockSlots - 1 - i
	}
	return i
}

// Canonicalize picks the canonical member of {b, Reverse(b)}: whichever
// hashes smaller, the block itself on a tie. The choice is deterministic
// and agrees for a block and its reversal, so mirror-image blocks share
// one pooled form. Reapply the returned orientation through MirrorIndex on
// read.
func Canonicalize(b Block) (Block, Orientation) {
	r := Reverse(b)
	hb := hashBlock(b)
	hr := hashBlock(r)
	if bytes.Compare(hb[:], hr[:]) <= 0 {
		return b, Identity
	}
	return r, Reversed
}

// hashBlock digests the block's handles in little-endian slot order.
func hashBlock(b Block) [32]byte {
	var buf [BlockSlots * 4]byte
	for i, h := range b {
		binary.LittleEndian.PutUint32(buf[i*4:], uint32(h))
	}
	return blake3.Sum256(buf[:])
}

// MirrorBlockMap is a BlockMap variant that pools each block in canonical
// mirror form, so a block and its mirror image share one block-pool entry.
// Reads map slot indices through the stored orientation. It satisfies the
// grid inner-map contract like BlockMap, with the same zero-value-is-absent
// caveat.
type MirrorBlockMap[T comparable] struct {
	values *Pool[T]
	blocks *Pool[Block]

	absent   Handle
	defBlock Handle

	state  []Handle
	orient []Orientation
	size   int
}

// NewMirrorBlockMap returns an empty MirrorBlockMap over the given shared
// pools.
func NewMirrorBlockMap[T comparable](values *Pool[T], blocks *Pool[Block]) *MirrorBlockMap[T] {
	var zero T
	absent := values.Insert(zero)
	var def Block
	for i := range def {
		def[i] = absent
	}
	// the default block is palindromic, so canonical form is itself
	return &MirrorBlockMap[T]{
		values:   values,
		blocks:   blocks,
		absent:   absent,
		defBlock: blocks.Insert(def),
	}
}

// MirrorInner returns a factory suitable for grid.NewWith.
func MirrorInner[T comparable](values *Pool[T], blocks *Pool[Block]) func() grid.Inner[T] {
	return func() grid.Inner[T] { return NewMirrorBlockMap(values, blocks) }
}

// blockAt reconstructs the logical block for group i.
func (m *MirrorBlockMap[T]) blockAt(i int) Block {
	if i >= len(m.state) {
		return m.blocks.Value(m.defBlock)
	}
	stored := m.blocks.Value(m.state[i])
	if m.orient[i]&1 != 0 {
		return Reverse(stored)
	}
	return stored
}

// setBlock canonicalizes and pools the logical block for group i.
func (m *MirrorBlockMap[T]) setBlock(i int, b Block) {
	for i >= len(m.state) {
		m.state = append(m.state, m.defBlock)
		m.orient = append(m.orient, Identity)
	}
	canonical, o := Canonicalize(b)
	m.state[i] = m.blocks.Insert(canonical)
	m.orient[i] = o
}

// Get returns the value at l and whether a non-zero value is stored there.
func (m *MirrorBlockMap[T]) Get(l voxel.Local) (T, bool) {
	code := int(l.Code())
	h := m.blockAt(code / BlockSlots)[code%BlockSlots]
	if h == m.absent {
		var zero T
		return zero, false
	}
	return m.values.Value(h), true
}

// Put assigns value to l. Assigning the zero value is equivalent to Erase.
func (m *MirrorBlockMap[T]) Put(l voxel.Local, value T) {
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

// Ensure returns the value at l; absent slots stay absent in this backend.
func (m *MirrorBlockMap[T]) Ensure(l voxel.Local) T {
	v, _ := m.Get(l)
	return v
}

// Contains reports whether l holds a non-zero value.
func (m *MirrorBlockMap[T]) Contains(l voxel.Local) bool {
	_, ok := m.Get(l)
	return ok
}

// Erase resets l's slot to the default value, returning 0 or 1.
func (m *MirrorBlockMap[T]) Erase(l voxel.Local) int {
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
func (m *MirrorBlockMap[T]) Len() int { return m.size }

// All yields present entries in ascending local code order.
func (m *MirrorBlockMap[T]) All() iter.Seq2[voxel.Local, T] {
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
