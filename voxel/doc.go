package voxel

/*
# Spatial addressing for a chunked voxel grid

This package defines the three coordinate tiers used across the module and
the total order that makes sorted-merge set algebra possible over them.

## The three tiers

	Global  - an absolute (x,y,z) cell in the world grid
	Chunk   - which 32x32x32 cube of space the cell is in (Global >> 5 per axis)
	Local   - the cell's offset inside its chunk (Global & 31 per axis)

Splitting is lossless: Compose(ChunkOf(g), LocalOf(g)) == g for every g in
the addressable domain. Nothing here allocates; positions are plain value
triples created on demand.

## Ordering

Positions are ordered by their 30-bit Morton code: the low 10 bits of each
axis interleaved so that bit j of x lands at output bit 3j, y at 3j+1, z at
3j+2. Numerically adjacent codes are spatially adjacent cells, which keeps a
code-ordered walk of a voxel set coherent chunk by chunk.

The interleave has a decomposition property the chunked map relies on:

	Code(g) == Code(ChunkOf(g))<<15 | Code(LocalOf(g))

because the five local bits per axis occupy exactly the low 15 interleaved
bits. Walking chunks in chunk-code order and cells in local-code order
within each chunk therefore yields global Morton order with no sorting.

## Addressable domain

Encode packs only the low 10 bits of each axis. Coordinates of 1024 and
above per axis alias lower codes; behavior there is implementation defined,
as is unsigned wraparound when offsetting a zero coordinate. Callers that
stay inside [0, 1024) per axis get a strict total order.
*/
