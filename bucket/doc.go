package bucket

/*
# Deduplicating bucket map

Map stores values for small unsigned integer keys, grouping keys into fixed
buckets of 64. Storage is split in two:

 1. a pool of unique values, with slot 0 reserved for the zero value and
    meaning "absent";
 2. per bucket, a 64-slot array of pool indices, held as bit planes
    (PackedArray) so that sparse buckets with few distinct values stay
    small.

Assigning a value scans the at-most-64 occupied slots of the key's bucket
for a pool entry equal to it and reuses that entry when found. Dedup is
therefore bucket-local: two keys in different buckets holding equal values
occupy two pool entries. Erase clears the key's slot but never compacts the
pool, so handles returned by HandleAt stay stable until Clear.

Capacity grows by whole buckets as keys are assigned and never shrinks.

The Nodes view is the compaction primitive for bulk export: per bucket it
groups each distinct stored value with the 64-bit mask of the keys holding
it, which is exactly the shape a frame codec wants to flatten.

A Map is exclusively owned by its caller; concurrent mutation is undefined.
*/
