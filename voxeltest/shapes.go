package voxeltest

import (
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/forestrie/go-voxelgrid/grid"
	"github.com/forestrie/go-voxelgrid/voxel"
)

// Shape is a generated voxel set with an identity for failure reports.
type Shape struct {
	ID     uuid.UUID
	Name   string
	Voxels *grid.Map[int]
}

// Box fills the half-open box [min, max) with value 1.
func Box(min, max voxel.Global) *grid.Map[int] {
	m := grid.New[int]()
	for g := range voxel.NewBox(min, max).All() {
		m.Put(g, 1)
	}
	return m
}

// Sphere fills the ball of the given radius around center with value 1,
// discarding cells that would fall below zero on any axis.
func Sphere(center voxel.Global, radius int) *grid.Map[int] {
	m := grid.New[int]()
	AddSphere(m, center, radius)
	return m
}

// AddSphere writes the ball of the given radius around center into m.
func AddSphere(m *grid.Map[int], center voxel.Global, radius int) {
	r2 := radius * radius
	for dx := -radius; dx <= radius; dx++ {
		for dy := -radius; dy <= radius; dy++ {
			for dz := -radius; dz <= radius; dz++ {
				if dx*dx+dy*dy+dz*dz > r2 {
					continue
				}
				x := int(center.X) + dx
				y := int(center.Y) + dy
				z := int(center.Z) + dz
				if x < 0 || y < 0 || z < 0 {
					continue
				}
				m.Put(voxel.Global{X: uint32(x), Y: uint32(y), Z: uint32(z)}, 1)
			}
		}
	}
}

// RandomShape builds the union of five spheres with centers in [5, 40] and
// radii in [2, 6], the synthetic corpus used by the decomposition
// acceptance tests. The same seed always produces the same shape.
func RandomShape(seed uint64) Shape {
	rng := rand.New(rand.NewPCG(seed, seed))
	m := grid.New[int]()
	for i := 0; i < 5; i++ {
		center := voxel.Global{
			X: 5 + rng.Uint32N(36),
			Y: 5 + rng.Uint32N(36),
			Z: 5 + rng.Uint32N(36),
		}
		AddSphere(m, center, 2+int(rng.Uint32N(5)))
	}
	return Shape{
		ID:     uuid.New(),
		Name:   fmt.Sprintf("spheres-seed-%d", seed),
		Voxels: m,
	}
}
