package voxel

import "cmp"

const (
	// ChunkEdge is the fixed chunk edge length in voxels.
	ChunkEdge = 32

	chunkShift = 5
	localMask  = ChunkEdge - 1

	// localCodeBits is the width of an interleaved Local code: five bits
	// per axis. Code(g) == Code(ChunkOf(g))<<localCodeBits | Code(LocalOf(g)).
	localCodeBits = 15
)

// Global is an absolute world-grid coordinate.
type Global struct {
	X, Y, Z uint32
}

// Chunk identifies a 32x32x32 cube of space.
type Chunk struct {
	X, Y, Z uint32
}

// Local is an offset inside a chunk; each axis is in [0, 32).
type Local struct {
	X, Y, Z uint32
}

// ChunkOf returns the chunk containing g.
func ChunkOf(g Global) Chunk {
	return Chunk{g.X >> chunkShift, g.Y >> chunkShift, g.Z >> chunkShift}
}

// LocalOf returns g's offset inside its chunk.
func LocalOf(g Global) Local {
	return Local{g.X & localMask, g.Y & localMask, g.Z & localMask}
}

// Compose is the exact inverse of the ChunkOf/LocalOf split:
// Compose(ChunkOf(g), LocalOf(g)) == g.
func Compose(c Chunk, l Local) Global {
	return Global{c.X<<chunkShift | l.X, c.Y<<chunkShift | l.Y, c.Z<<chunkShift | l.Z}
}

// Add offsets g component-wise. Components wrap per unsigned arithmetic, so
// a delta of ^uint32(0) steps an axis down by one.
func (g Global) Add(d Global) Global {
	return Global{g.X + d.X, g.Y + d.Y, g.Z + d.Z}
}

// Code returns g's 30-bit Morton code, the sort key for all global
// ordering in this module.
func (g Global) Code() uint32 { return Encode(g.X, g.Y, g.Z) }

// Code returns the chunk's Morton code.
func (c Chunk) Code() uint32 { return Encode(c.X, c.Y, c.Z) }

// Code returns the local offset's Morton code, always below 1<<15.
func (l Local) Code() uint32 { return Encode(l.X, l.Y, l.Z) }

// GlobalFromCode decodes a Morton code into a Global.
func GlobalFromCode(code uint32) Global {
	x, y, z := Decode(code)
	return Global{x, y, z}
}

// ChunkFromCode decodes a Morton code into a Chunk.
func ChunkFromCode(code uint32) Chunk {
	x, y, z := Decode(code)
	return Chunk{x, y, z}
}

// LocalFromCode decodes a Morton code into a Local.
func LocalFromCode(code uint32) Local {
	x, y, z := Decode(code)
	return Local{x, y, z}
}

// Compare orders globals by Morton code. It is a strict weak order over
// the full struct domain and a strict total order for axes below 1024.
func Compare(a, b Global) int { return cmp.Compare(a.Code(), b.Code()) }

// CompareLocal orders locals by Morton code.
func CompareLocal(a, b Local) int { return cmp.Compare(a.Code(), b.Code()) }

// CompareChunk orders chunks by Morton code.
func CompareChunk(a, b Chunk) int { return cmp.Compare(a.Code(), b.Code()) }

// FaceOffsets are the six unit face-neighbor deltas, -x,+x,-y,+y,-z,+z.
// Negative steps are expressed as two's-complement wraparound.
var FaceOffsets = [6]Global{
	{^uint32(0), 0, 0}, {1, 0, 0},
	{0, ^uint32(0), 0}, {0, 1, 0},
	{0, 0, ^uint32(0)}, {0, 0, 1},
}

// Neighbors returns g's six face neighbors. A neighbor of a zero
// coordinate wraps to the top of the unsigned range, which is outside any
// practical working set.
func (g Global) Neighbors() [6]Global {
	var out [6]Global
	for i, d := range FaceOffsets {
		out[i] = g.Add(d)
	}
	return out
}
