package setops

import (
	"cmp"
	"iter"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	k int
	v string
}

func seqOf(entries ...entry) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for _, e := range entries {
			if !yield(e.k, e.v) {
				return
			}
		}
	}
}

func collect(s iter.Seq2[int, string]) []entry {
	var out []entry
	for k, v := range s {
		out = append(out, entry{k, v})
	}
	return out
}

func intCmp(a, b int) int { return cmp.Compare(a, b) }

func TestViews(t *testing.T) {
	a := seqOf(entry{1, "a1"}, entry{3, "a3"}, entry{5, "a5"}, entry{7, "a7"})
	b := seqOf(entry{3, "b3"}, entry{4, "b4"}, entry{7, "b7"}, entry{9, "b9"})

	tests := []struct {
		name string
		view func(x, y iter.Seq2[int, string], c func(int, int) int) iter.Seq2[int, string]
		want []entry
	}{
		{
			"merge favors a on equal keys",
			Merge[int, string],
			[]entry{{1, "a1"}, {3, "a3"}, {4, "b4"}, {5, "a5"}, {7, "a7"}, {9, "b9"}},
		},
		{
			"overlap takes values from a",
			Overlap[int, string],
			[]entry{{3, "a3"}, {7, "a7"}},
		},
		{
			"subtract keeps a-only keys",
			Subtract[int, string],
			[]entry{{1, "a1"}, {5, "a5"}},
		},
		{
			"exclusive keeps keys in exactly one input",
			Exclusive[int, string],
			[]entry{{1, "a1"}, {4, "b4"}, {5, "a5"}, {9, "b9"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, collect(tt.view(a, b, intCmp)))
		})
	}
}

func TestViewsEmptyInputs(t *testing.T) {
	empty := seqOf()
	a := seqOf(entry{1, "a1"}, entry{2, "a2"})

	assert.Equal(t, collect(a), collect(Merge(a, empty, intCmp)))
	assert.Equal(t, collect(a), collect(Merge(empty, a, intCmp)))
	assert.Empty(t, collect(Overlap(a, empty, intCmp)))
	assert.Empty(t, collect(Overlap(empty, a, intCmp)))
	assert.Equal(t, collect(a), collect(Subtract(a, empty, intCmp)))
	assert.Empty(t, collect(Subtract(empty, a, intCmp)))
	assert.Equal(t, collect(a), collect(Exclusive(a, empty, intCmp)))
	assert.Empty(t, collect(Exclusive(empty, empty, intCmp)))
}

func TestViewsAreReentrant(t *testing.T) {
	a := seqOf(entry{1, "x"}, entry{2, "y"})
	b := seqOf(entry{2, "z"})
	v := Overlap(a, b, intCmp)
	first := collect(v)
	second := collect(v)
	assert.Equal(t, first, second)
}

func TestViewsStopEarly(t *testing.T) {
	a := seqOf(entry{1, "a"}, entry{2, "b"}, entry{3, "c"})
	b := seqOf(entry{1, "d"}, entry{2, "e"}, entry{3, "f"})
	n := 0
	for range Merge(a, b, intCmp) {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}

// randomKeySet returns a sorted, deduplicated key set as a sequence.
func randomKeySet(rng *rand.Rand, n int) iter.Seq2[int, string] {
	keys := map[int]bool{}
	for len(keys) < n {
		keys[rng.IntN(100)] = true
	}
	sorted := make([]int, 0, n)
	for k := range keys {
		sorted = append(sorted, k)
	}
	slices.Sort(sorted)
	entries := make([]entry, n)
	for i, k := range sorted {
		entries[i] = entry{k, "v"}
	}
	return seqOf(entries...)
}

func TestSetAlgebraLaws(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 11))
	for trial := 0; trial < 50; trial++ {
		a := randomKeySet(rng, 20)
		b := randomKeySet(rng, 25)

		keysOf := func(s iter.Seq2[int, string]) []int {
			var out []int
			for k := range s {
				out = append(out, k)
			}
			return out
		}

		overlap := keysOf(Overlap(a, b, intCmp))
		exclusive := keysOf(Exclusive(a, b, intCmp))
		merged := keysOf(Merge(a, b, intCmp))
		subtracted := keysOf(Subtract(a, b, intCmp))

		// |overlap| + |exclusive| == |merge|
		require.Equal(t, len(merged), len(overlap)+len(exclusive))

		// overlap is symmetric as a key set
		require.Equal(t, overlap, keysOf(Overlap(b, a, intCmp)))

		// subtract and overlap partition a exactly
		partition := slices.Concat(subtracted, overlap)
		slices.Sort(partition)
		require.Equal(t, keysOf(a), partition)

		// merge is idempotent
		require.Equal(t, keysOf(a), keysOf(Merge(a, a, intCmp)))

		// every output is ascending
		for _, ks := range [][]int{overlap, exclusive, merged, subtracted} {
			require.True(t, slices.IsSorted(ks))
		}
	}
}
