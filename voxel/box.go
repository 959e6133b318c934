package voxel

import "iter"

// Box is an axis-aligned region of cells, minimum corner inclusive and
// maximum corner exclusive.
type Box struct {
	Min, Max Global
}

// NewBox returns the half-open box [min, max).
func NewBox(min, max Global) Box { return Box{Min: min, Max: max} }

// Dx returns the box extent along x.
func (b Box) Dx() uint32 { return b.Max.X - b.Min.X }

// Dy returns the box extent along y.
func (b Box) Dy() uint32 { return b.Max.Y - b.Min.Y }

// Dz returns the box extent along z.
func (b Box) Dz() uint32 { return b.Max.Z - b.Min.Z }

// Volume returns the number of cells the box contains.
func (b Box) Volume() uint64 {
	return uint64(b.Dx()) * uint64(b.Dy()) * uint64(b.Dz())
}

// Empty reports whether the box contains no cells.
func (b Box) Empty() bool {
	return b.Min.X >= b.Max.X || b.Min.Y >= b.Max.Y || b.Min.Z >= b.Max.Z
}

// Contains reports whether p lies inside the box.
func (b Box) Contains(p Global) bool {
	return p.X >= b.Min.X && p.X < b.Max.X &&
		p.Y >= b.Min.Y && p.Y < b.Max.Y &&
		p.Z >= b.Min.Z && p.Z < b.Max.Z
}

// All yields every cell in the box, z varying fastest, then y, then x.
// This is a generation order, not Morton order.
func (b Box) All() iter.Seq[Global] {
	return func(yield func(Global) bool) {
		if b.Empty() {
			return
		}
		for x := b.Min.X; x < b.Max.X; x++ {
			for y := b.Min.Y; y < b.Max.Y; y++ {
				for z := b.Min.Z; z < b.Max.Z; z++ {
					if !yield(Global{x, y, z}) {
						return
					}
				}
			}
		}
	}
}
