package bucket

import "math/bits"

// Slots is the fixed number of entries in a PackedArray, and the key width
// of one bucket.
const Slots = 64

// PackedArray holds 64 small unsigned values as bit planes: plane p holds
// bit p of every slot, one slot per bit of a uint64. The number of planes
// is the bit width of the largest value ever stored, so an array of zeros
// occupies no planes at all and an array of indices below 2 occupies one
// word.
//
// The zero PackedArray is empty and ready to use.
type PackedArray struct {
	planes []uint64
}

// Get returns the value at slot i. Slots never written read as zero.
func (a *PackedArray) Get(i int) uint32 {
	var v uint32
	for p, plane := range a.planes {
		v |= uint32(plane>>uint(i)&1) << p
	}
	return v
}

// Set stores v at slot i, widening the array if v needs more planes than
// are present. Widening never discards existing slots.
func (a *PackedArray) Set(i int, v uint32) {
	for bits.Len32(v) > len(a.planes) {
		a.planes = append(a.planes, 0)
	}
	bit := uint64(1) << uint(i)
	for p := range a.planes {
		if v>>uint(p)&1 == 1 {
			a.planes[p] |= bit
		} else {
			a.planes[p] &^= bit
		}
	}
}

// Width returns the current bit width per slot.
func (a *PackedArray) Width() int { return len(a.planes) }

// Occupied returns the mask of slots holding a nonzero value.
func (a *PackedArray) Occupied() uint64 {
	var m uint64
	for _, plane := range a.planes {
		m |= plane
	}
	return m
}

// Clone returns an independent copy of the array.
func (a *PackedArray) Clone() PackedArray {
	out := PackedArray{}
	if len(a.planes) > 0 {
		out.planes = append([]uint64(nil), a.planes...)
	}
	return out
}
