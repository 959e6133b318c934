package voxel

// spread3 distributes the low 10 bits of v three positions apart, so bit j
// of the input lands at output bit 3j. The mask cascade is the standard
// parallel-prefix spread; no hardware intrinsics are needed for
// correctness.
func spread3(v uint32) uint32 {
	v &= 0x000003FF
	v = (v | v<<16) & 0x030000FF
	v = (v | v<<8) & 0x0300F00F
	v = (v | v<<4) & 0x030C30C3
	v = (v | v<<2) & 0x09249249
	return v
}

// compact3 inverts spread3, gathering every third bit back into the low 10
// bits.
func compact3(v uint32) uint32 {
	v &= 0x09249249
	v = (v | v>>2) & 0x030C30C3
	v = (v | v>>4) & 0x0300F00F
	v = (v | v>>8) & 0x030000FF
	v = (v | v>>16) & 0x000003FF
	return v
}

// Encode interleaves the low 10 bits of each axis into a 30-bit Morton
// code. Bits above position 9 in any axis are discarded; see the package
// documentation for the addressable domain.
func Encode(x, y, z uint32) uint32 {
	return spread3(x) | spread3(y)<<1 | spread3(z)<<2
}

// Decode recovers the axis values from a 30-bit Morton code. It is the
// exact inverse of Encode over the 10-bit-per-axis domain.
func Decode(code uint32) (x, y, z uint32) {
	return compact3(code), compact3(code >> 1), compact3(code >> 2)
}
