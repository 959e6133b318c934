package flyweight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forestrie/go-voxelgrid/grid"
	"github.com/forestrie/go-voxelgrid/voxel"
)

func newTestPools() (*Pool[string], *Pool[Block]) {
	return NewPool[string](), NewPool[Block]()
}

func TestBlockMapPutGetErase(t *testing.T) {
	vp, bp := newTestPools()
	m := NewBlockMap(vp, bp)

	l := voxel.Local{1, 2, 3}
	m.Put(l, "stone")
	v, ok := m.Get(l)
	require.True(t, ok)
	assert.Equal(t, "stone", v)
	assert.Equal(t, 1, m.Len())

	assert.Equal(t, 1, m.Erase(l))
	assert.Equal(t, 0, m.Erase(l))
	assert.False(t, m.Contains(l))
	assert.Zero(t, m.Len())
}

func TestBlockMapZeroValueReadsAsAbsent(t *testing.T) {
	vp, bp := newTestPools()
	m := NewBlockMap(vp, bp)

	l := voxel.Local{0, 0, 1}
	m.Put(l, "")
	assert.False(t, m.Contains(l))
	assert.Zero(t, m.Len())
}

func TestBlockMapCrossInstanceDedup(t *testing.T) {
	vp, bp := newTestPools()
	a := NewBlockMap(vp, bp)
	b := NewBlockMap(vp, bp)

	cells := []voxel.Local{{0, 0, 0}, {1, 0, 0}, {5, 3, 1}}
	for _, l := range cells {
		a.Put(l, "stone")
		b.Put(l, "stone")
	}

	// equal contents through shared pools resolve to the same block keys
	require.Equal(t, a.BlockKeys(), b.BlockKeys())

	blocksBefore := bp.Len()
	c := NewBlockMap(vp, bp)
	for _, l := range cells {
		c.Put(l, "stone")
	}
	assert.Equal(t, blocksBefore, bp.Len(),
		"a third identical map adds no block pool entries")

	b.Put(voxel.Local{9, 9, 9}, "dirt")
	assert.NotEqual(t, a.BlockKeys(), b.BlockKeys())
}

func TestBlockMapAllAscending(t *testing.T) {
	vp, bp := newTestPools()
	m := NewBlockMap(vp, bp)

	cells := []voxel.Local{{7, 1, 0}, {0, 0, 0}, {3, 3, 3}, {31, 31, 31}}
	for _, l := range cells {
		m.Put(l, "v")
	}
	var prev uint32
	n := 0
	for l := range m.All() {
		if n > 0 {
			require.Greater(t, l.Code(), prev)
		}
		prev = l.Code()
		n++
	}
	assert.Equal(t, len(cells), n)
}

func TestBlockMapAsGridBackend(t *testing.T) {
	vp, bp := newTestPools()
	m := grid.NewWith(Inner(vp, bp))

	g := voxel.Global{40, 2, 3}
	m.Put(g, "stone")
	v, err := m.At(g)
	require.NoError(t, err)
	assert.Equal(t, "stone", v)

	assert.Equal(t, 1, m.Delete(g))
	assert.True(t, m.Empty(), "draining the chunk removes its entry")
}

func TestGridInsertZeroValueReportsNoEntry(t *testing.T) {
	vp, bp := newTestPools()
	m := grid.NewWith(Inner(vp, bp))

	// the zero value reads as absent here, so nothing is stored and the
	// insert must not claim otherwise
	g := voxel.Global{1, 1, 1}
	assert.False(t, m.Insert(g, ""))
	assert.True(t, m.Empty())
	assert.False(t, m.Contains(g))

	assert.True(t, m.Insert(g, "stone"))
	assert.Equal(t, 1, m.Len())
}
