package bucket

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapPutAtErase(t *testing.T) {
	m := NewMap[string]()
	require.True(t, m.Empty())

	m.Put(5, "grass")
	m.Put(70, "stone")

	v, err := m.At(5)
	require.NoError(t, err)
	assert.Equal(t, "grass", v)

	_, err = m.At(6)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.Equal(t, 2, m.Len())
	assert.Equal(t, 1, m.Erase(5))
	assert.Equal(t, 0, m.Erase(5))
	assert.Equal(t, 1, m.Len())
	assert.False(t, m.Contains(5))
	assert.True(t, m.Contains(70))
}

func TestMapAtReflectsLatestAssignment(t *testing.T) {
	m := NewMap[int]()
	m.Put(9, 1)
	m.Put(9, 2)
	m.Put(9, 3)
	v, err := m.At(9)
	require.NoError(t, err)
	assert.Equal(t, 3, v)
	assert.Equal(t, 1, m.Len())
}

func TestMapDedupWithinBucket(t *testing.T) {
	m := NewMap[string]()
	m.Put(1, "dirt")
	m.Put(2, "dirt")
	m.Put(63, "dirt")

	// keys in one bucket with equal values share one pool handle
	h := m.HandleAt(1)
	require.NotZero(t, h)
	assert.Equal(t, h, m.HandleAt(2))
	assert.Equal(t, h, m.HandleAt(63))
	assert.Equal(t, "dirt", m.ValueOf(h))

	// reserved zero slot plus one unique value
	assert.Equal(t, 2, m.Uniques())
}

func TestMapDedupIsBucketLocal(t *testing.T) {
	m := NewMap[string]()
	// key 1 is in bucket 0, key 65 in bucket 1
	m.Put(1, "dirt")
	m.Put(65, "dirt")

	require.NotZero(t, m.HandleAt(1))
	require.NotZero(t, m.HandleAt(65))
	assert.NotEqual(t, m.HandleAt(1), m.HandleAt(65))
	assert.Equal(t, 3, m.Uniques())
}

func TestMapEraseNeverCompactsPool(t *testing.T) {
	m := NewMap[string]()
	m.Put(1, "dirt")
	m.Put(2, "sand")
	h := m.HandleAt(2)

	m.Erase(1)
	assert.Equal(t, h, m.HandleAt(2))
	assert.Equal(t, 3, m.Uniques())
}

func TestMapCapacityGrowsByWholeBuckets(t *testing.T) {
	m := NewMap[int]()
	assert.Zero(t, m.Cap())
	m.Put(0, 1)
	assert.Equal(t, Slots, m.Cap())
	m.Put(130, 1)
	assert.Equal(t, 3*Slots, m.Cap())

	m.Erase(130)
	assert.Equal(t, 3*Slots, m.Cap(), "capacity never shrinks")
}

func TestMapEnsure(t *testing.T) {
	m := NewMap[int]()
	assert.Zero(t, m.Ensure(12))
	assert.True(t, m.Contains(12))
	assert.Equal(t, 1, m.Len())

	m.Put(3, 42)
	assert.Equal(t, 42, m.Ensure(3), "Ensure leaves present entries alone")
}

func TestMapAllAscending(t *testing.T) {
	m := NewMap[int]()
	keys := []uint32{130, 5, 64, 0, 63, 200}
	for _, k := range keys {
		m.Put(k, int(k)*10)
	}

	var got []uint32
	for k, v := range m.All() {
		assert.Equal(t, int(k)*10, v)
		got = append(got, k)
	}
	assert.Equal(t, []uint32{0, 5, 63, 64, 130, 200}, got)
}

func TestMapNodesGroupsByValueWithinBucket(t *testing.T) {
	m := NewMap[string]()
	m.Put(1, "dirt")
	m.Put(3, "dirt")
	m.Put(2, "sand")
	m.Put(64, "dirt") // second bucket

	var nodes []Node[string]
	for n := range m.Nodes() {
		nodes = append(nodes, n)
	}
	require.Len(t, nodes, 3)

	assert.Equal(t, 0, nodes[0].Bucket)
	assert.Equal(t, "dirt", nodes[0].Value)
	assert.Equal(t, uint64(1)<<1|uint64(1)<<3, nodes[0].Mask)

	assert.Equal(t, 0, nodes[1].Bucket)
	assert.Equal(t, "sand", nodes[1].Value)
	assert.Equal(t, uint64(1)<<2, nodes[1].Mask)

	assert.Equal(t, 1, nodes[2].Bucket)
	assert.Equal(t, "dirt", nodes[2].Value)
	assert.Equal(t, uint64(1)<<0, nodes[2].Mask)
	assert.NotEqual(t, nodes[0].Handle, nodes[2].Handle, "dedup is bucket-local")
}

func TestMapInsertRangeAdoptsWhenEmpty(t *testing.T) {
	src := NewMap[string]()
	src.Put(1, "a")
	src.Put(80, "b")

	dst := NewMap[string]()
	dst.InsertRange(src)
	assert.Equal(t, 2, dst.Len())

	// adopted storage is independent of the source
	src.Put(1, "mutated")
	v, err := dst.At(1)
	require.NoError(t, err)
	assert.Equal(t, "a", v)
}

func TestMapInsertRangeReplaysWhenOccupied(t *testing.T) {
	src := NewMap[string]()
	src.Put(2, "x")
	src.Put(65, "y")

	dst := NewMap[string]()
	dst.Put(1, "x")
	dst.InsertRange(src)

	assert.Equal(t, 3, dst.Len())
	// replayed entry deduplicated against dst's existing pool entry
	assert.Equal(t, dst.HandleAt(1), dst.HandleAt(2))
}

func TestMapValuesEnumeratesPool(t *testing.T) {
	m := NewMap[string]()
	m.Put(1, "dirt")
	m.Put(2, "sand")

	pool := map[uint32]string{}
	for h, v := range m.Values() {
		pool[h] = v
	}
	require.Len(t, pool, 3)
	assert.Equal(t, "", pool[0], "slot 0 is the reserved zero value")
	assert.Equal(t, "dirt", pool[m.HandleAt(1)])
	assert.Equal(t, "sand", pool[m.HandleAt(2)])
}

func TestMapClear(t *testing.T) {
	m := NewMap[int]()
	m.Put(1, 5)
	m.Clear()
	assert.True(t, m.Empty())
	assert.Zero(t, m.Cap())
	assert.False(t, m.Contains(1))
}

func TestMapZeroValueEntriesAreReal(t *testing.T) {
	// assigning the zero value still creates a present entry, pooled like
	// any other value
	m := NewMap[int]()
	m.Put(7, 0)
	assert.True(t, m.Contains(7))
	v, err := m.At(7)
	require.NoError(t, err)
	assert.Zero(t, v)
	require.NotZero(t, m.HandleAt(7))
}
