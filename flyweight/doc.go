package flyweight

/*
# Explicit flyweight pools and block-deduplicated storage

Pool assigns each distinct value a stable, compact 32-bit handle. Pools are
plain owned objects passed to whoever needs them; there is deliberately no
process-wide instance per type, so independent pools of the same value type
can coexist and tests never share state.

BlockMap builds one level of nested deduplication on top of two pools: the
values of a 64-slot block are pooled individually, and the resulting
64-handle arrays are pooled again as whole blocks. Two BlockMaps sharing
pools and holding equal contents reference the same block entry, giving
cross-instance dedup — stronger than the per-bucket dedup of bucket.Map.
BlockMap satisfies the grid inner-map contract, so it is a drop-in chunk
backend.

One consequence of block pooling: a slot holding the zero value is
indistinguishable from an absent slot, so the zero value reads as not
present. Store a sentinel non-zero value if presence of "nothing" matters.

MirrorBlockMap adds canonical-form storage: each block is pooled as
whichever of itself and its slot-reversal hashes smaller, along with the
orientation needed to read it back. Mirror-image blocks therefore share one
pool entry. The canonicalization helpers are ordinary pure functions and
reusable for any finite transform orbit of a block.
*/
