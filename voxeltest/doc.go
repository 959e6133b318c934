// Package voxeltest generates deterministic synthetic voxel sets for
// tests and benchmarks: filled boxes, spheres, and seeded random unions of
// spheres. Generators with a seed are reproducible; shapes carry a uuid so
// failures in randomized runs can name the exact input.
package voxeltest
