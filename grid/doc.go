package grid

/*
# Chunked spatial map

Map is a two-level associative container for voxel data: an outer ordered
map keyed by chunk coordinate, each entry holding an inner map from local
offsets to values. Keys at both levels order by Morton code, and because a
global code is the chunk code concatenated with the local code, walking
chunks outer-first yields one flattened sequence in ascending global order
with the global position reconstructed lazily per element, never stored.

The inner map is pluggable. Any implementation of Inner is a drop-in
backend, chosen per map instance:

  - New        - plain ordered inner map (B-tree)
  - NewDedup   - bucket.Map, per-bucket value dedup
  - NewWith    - any caller-supplied backend, e.g. flyweight.BlockMap for
    cross-instance dedup with injected pools

Two invariants hold at all times:

  - no chunk entry is ever empty: the erase that drains an inner map also
    removes its chunk entry, so outer-map growth is bounded by live data;
  - Len sums inner sizes on demand and is O(chunks); avoid calling it per
    element in tight loops.

Overlap, Subtract, Merge and Exclusive are thin entry points over the
setops merge-join, comparing exact global keys. They borrow both maps for
the duration of a traversal; do not mutate a map while consuming a view of
it.

Maps are exclusively owned by their caller; concurrent mutation is
undefined and must be serialized externally.
*/
