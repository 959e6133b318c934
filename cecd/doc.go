package cecd

/*
# Core-expanding convex decomposition

Decompose partitions a finite voxel set into an ordered list of layers,
each grown outward from a maximally interior core, so that early layers
capture the fat convex-ish mass of a shape and later layers pick up its
appendages. The layers are disjoint and their union is the input.

One outer iteration peels one layer from the remaining set:

 1. Core detection. Erode the working set repeatedly - an erosion keeps
    only the voxels whose six face neighbors are all present - until the
    next erosion would empty it. The survivors are the core: the cells
    deepest inside the shape. A set with no interior at all (a shell, a
    plate, a lone voxel) seeds the core with its first voxel instead.

 2. Hull growth. Starting from the core, extrude the current frontier by
    one cell in all six face directions, keep what lands inside the
    remaining set and is new, and repeat until an extrusion adds nothing.

 3. The grown hull becomes the next layer and is subtracted from the
    remaining set.

Growth reaches anything face-connected to the core inside the remaining
set, so a connected component is consumed the iteration its core is found,
and disconnected components peel off in separate layers ordered by their
seeds' Morton codes. Each iteration removes at least the seed voxel, so
decomposition of n voxels terminates within n outer iterations and is
total: the empty set yields no layers, a lone voxel yields itself.

The algorithm touches its inputs only through the map operations and the
lazy set views - it has no knowledge of chunking or value dedup - and it
never mutates the input map; the shrinking remainder is a local copy.

The convexity of each layer is approximate and empirical, not enforced.
The acceptance tests check that re-merging all layers recovers at least
95% of the input across seeded random shapes; by construction here the
union is exact, and the threshold guards the algorithm's contract rather
than its implementation.
*/
