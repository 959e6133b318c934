package grid

import (
	"iter"

	"github.com/forestrie/go-voxelgrid/setops"
	"github.com/forestrie/go-voxelgrid/voxel"
)

// The four operators pair two maps' flattened sequences under exact global
// key equality. Each returns a lazy view that borrows both maps for the
// duration of a traversal; neither map may be mutated while a traversal is
// in progress. Backends may differ between the two maps.

// Overlap yields the entries of a whose positions also exist in b, values
// taken from a.
func Overlap[T any](a, b *Map[T]) iter.Seq2[voxel.Global, T] {
	return setops.Overlap(a.All(), b.All(), voxel.Compare)
}

// Subtract yields the entries of a whose positions do not exist in b.
func Subtract[T any](a, b *Map[T]) iter.Seq2[voxel.Global, T] {
	return setops.Subtract(a.All(), b.All(), voxel.Compare)
}

// Merge yields the union of a and b in ascending global order; on
// positions present in both, a's entry wins.
func Merge[T any](a, b *Map[T]) iter.Seq2[voxel.Global, T] {
	return setops.Merge(a.All(), b.All(), voxel.Compare)
}

// Exclusive yields the entries present in exactly one of a and b.
func Exclusive[T any](a, b *Map[T]) iter.Seq2[voxel.Global, T] {
	return setops.Exclusive(a.All(), b.All(), voxel.Compare)
}
