package cecd

import (
	"github.com/forestrie/go-voxelgrid/grid"
)

// Inset returns the morphological erosion of m: the voxels whose six face
// neighbors are all present in m. The input is not modified.
func Inset[T any](m *grid.Map[T]) *grid.Map[T] {
	out := grid.New[T]()
	for g, v := range m.All() {
		interior := true
		for _, n := range g.Neighbors() {
			if !m.Contains(n) {
				interior = false
				break
			}
		}
		if interior {
			out.Put(g, v)
		}
	}
	return out
}

// Extrude returns the morphological dilation of m: every voxel of m plus
// all six face neighbors of each, neighbors inheriting the value of the
// voxel that reached them first in Morton order. The input is not
// modified.
func Extrude[T any](m *grid.Map[T]) *grid.Map[T] {
	out := grid.New[T]()
	for g, v := range m.All() {
		out.Insert(g, v)
		for _, n := range g.Neighbors() {
			out.Insert(n, v)
		}
	}
	return out
}

// Decompose splits the voxel set v into ordered, disjoint, approximately
// convex layers; see the package documentation for the peeling loop. The
// input map is never mutated. Layers are freshly allocated maps.
func Decompose[T any](v *grid.Map[T]) []*grid.Map[T] {
	remaining := clone(v)

	var layers []*grid.Map[T]
	for !remaining.Empty() {
		core := detectCore(remaining)
		hull := growHull(core, remaining)
		if hull.Empty() {
			// progress guard; unreachable while cores seed from
			// remaining, but a truncated hull must not loop forever
			break
		}
		layers = append(layers, hull)
		remaining = subtract(remaining, hull)
	}
	return layers
}

// detectCore erodes remaining to the last non-empty inset. A set that
// empties on the first erosion has no interior; its core is seeded with
// the first voxel instead.
func detectCore[T any](remaining *grid.Map[T]) *grid.Map[T] {
	core := Inset(remaining)
	if core.Empty() {
		seed := grid.New[T]()
		for g, v := range remaining.All() {
			seed.Put(g, v)
			break
		}
		return seed
	}
	for {
		next := Inset(core)
		if next.Empty() {
			return core
		}
		core = next
	}
}

// growHull expands core one face-step at a time, keeping growth inside
// remaining, until a step adds nothing. Overlapping with remaining on the
// left keeps each grown voxel's own value; the extrusion only supplies the
// candidate positions.
func growHull[T any](core, remaining *grid.Map[T]) *grid.Map[T] {
	hull := clone(core)
	frontier := core
	for {
		added := grid.New[T]()
		for g, v := range grid.Overlap(remaining, Extrude(frontier)) {
			if !hull.Contains(g) {
				added.Put(g, v)
			}
		}
		if added.Empty() {
			return hull
		}
		for g, v := range added.All() {
			hull.Put(g, v)
		}
		frontier = added
	}
}

// clone copies a map into a fresh default-backend working set.
func clone[T any](m *grid.Map[T]) *grid.Map[T] {
	out := grid.New[T]()
	for g, v := range m.All() {
		out.Put(g, v)
	}
	return out
}

// subtract materializes remaining minus hull.
func subtract[T any](remaining, hull *grid.Map[T]) *grid.Map[T] {
	out := grid.New[T]()
	for g, v := range grid.Subtract(remaining, hull) {
		out.Put(g, v)
	}
	return out
}
