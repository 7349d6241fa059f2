package bimap

import (
	"iter"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// collectPairs drains a pair sequence into a slice, preserving order.
func collectPairs[L, R any](seq iter.Seq2[L, R]) []Pair[L, R] {
	var pairs []Pair[L, R]
	for left, right := range seq {
		pairs = append(pairs, Pair[L, R]{left, right})
	}
	return pairs
}

// permutations returns every ordering of the given items.
func permutations[T any](items []T) [][]T {
	if len(items) <= 1 {
		return [][]T{slices.Clone(items)}
	}
	var result [][]T
	for i := range items {
		rest := make([]T, 0, len(items)-1)
		rest = append(rest, items[:i]...)
		rest = append(rest, items[i+1:]...)
		for _, perm := range permutations(rest) {
			result = append(result, append([]T{items[i]}, perm...))
		}
	}
	return result
}

func TestBiTreeMapOperations(t *testing.T) {
	m := NewBiTreeMap[string, int]()
	require.Equal(t, 0, m.Len())
	require.True(t, m.IsEmpty())

	// Add some pairs.
	require.Equal(t, OverwriteNone, m.Insert("B", 2).Kind())
	require.Equal(t, OverwriteNone, m.Insert("A", 1).Kind())

	require.Equal(t, 2, m.Len())
	require.False(t, m.IsEmpty())

	require.True(t, m.ContainsLeft("A"))
	require.True(t, m.ContainsRight(2))
	require.False(t, m.ContainsLeft("Z"))
	require.False(t, m.ContainsRight(99))

	right, ok := m.GetByLeft("A")
	require.True(t, ok)
	require.Equal(t, 1, right)

	left, ok := m.GetByRight(2)
	require.True(t, ok)
	require.Equal(t, "B", left)

	_, ok = m.GetByLeft("Z")
	require.False(t, ok)
	_, ok = m.GetByRight(99)
	require.False(t, ok)

	// Remove an unknown value, then real ones.
	_, ok = m.RemoveByLeft("unknown")
	require.False(t, ok)
	require.Equal(t, 2, m.Len())

	removed, ok := m.RemoveByLeft("A")
	require.True(t, ok)
	require.Equal(t, Pair[string, int]{"A", 1}, removed)
	require.False(t, m.ContainsRight(1))

	removed, ok = m.RemoveByRight(2)
	require.True(t, ok)
	require.Equal(t, Pair[string, int]{"B", 2}, removed)

	require.True(t, m.IsEmpty())
}

func TestBiTreeMapInsertOverwrites(t *testing.T) {
	tcs := []struct {
		name        string
		existing    []Pair[string, int]
		insert      Pair[string, int]
		wantKind    OverwriteKind
		wantEvicted []Pair[string, int]
		wantFinal   []Pair[string, int]
	}{
		{
			name:      "fresh insert",
			insert:    Pair[string, int]{"A", 1},
			wantKind:  OverwriteNone,
			wantFinal: []Pair[string, int]{{"A", 1}},
		},
		{
			name:        "rebind left",
			existing:    []Pair[string, int]{{"A", 1}},
			insert:      Pair[string, int]{"A", 2},
			wantKind:    OverwriteLeft,
			wantEvicted: []Pair[string, int]{{"A", 1}},
			wantFinal:   []Pair[string, int]{{"A", 2}},
		},
		{
			name:        "rebind right",
			existing:    []Pair[string, int]{{"A", 1}},
			insert:      Pair[string, int]{"B", 1},
			wantKind:    OverwriteRight,
			wantEvicted: []Pair[string, int]{{"A", 1}},
			wantFinal:   []Pair[string, int]{{"B", 1}},
		},
		{
			name:        "rewrite exact pair",
			existing:    []Pair[string, int]{{"A", 1}, {"B", 2}},
			insert:      Pair[string, int]{"A", 1},
			wantKind:    OverwritePair,
			wantEvicted: []Pair[string, int]{{"A", 1}},
			wantFinal:   []Pair[string, int]{{"A", 1}, {"B", 2}},
		},
		{
			name:        "collapse two pairs",
			existing:    []Pair[string, int]{{"A", 1}, {"B", 2}},
			insert:      Pair[string, int]{"A", 2},
			wantKind:    OverwriteBoth,
			wantEvicted: []Pair[string, int]{{"A", 1}, {"B", 2}},
			wantFinal:   []Pair[string, int]{{"A", 2}},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			m := NewBiTreeMap[string, int]()
			for _, pair := range tc.existing {
				m.Insert(pair.Left, pair.Right)
			}

			overwritten := m.Insert(tc.insert.Left, tc.insert.Right)
			require.Equal(t, tc.wantKind, overwritten.Kind())
			require.Empty(t, cmp.Diff(tc.wantEvicted, overwritten.Evicted()))

			require.Equal(t, tc.wantFinal, collectPairs(m.All()))
			for _, pair := range tc.wantFinal {
				gotLeft, ok := m.GetByRight(pair.Right)
				require.True(t, ok)
				require.Equal(t, pair.Left, gotLeft)
			}
		})
	}
}

func TestBiTreeMapTryInsert(t *testing.T) {
	m := NewBiTreeMap[string, int]()
	require.NoError(t, m.TryInsert("A", 1))
	require.NoError(t, m.TryInsert("B", 2))

	err := m.TryInsert("A", 2)
	require.ErrorIs(t, err, ErrConflict)

	var conflict *ConflictError[string, int]
	require.ErrorAs(t, err, &conflict)
	require.Equal(t, Pair[string, int]{"A", 1}, *conflict.ExistingLeft)
	require.Equal(t, Pair[string, int]{"B", 2}, *conflict.ExistingRight)

	// The failed insert changed nothing.
	require.Equal(t, []Pair[string, int]{{"A", 1}, {"B", 2}}, collectPairs(m.All()))
}

func TestBiTreeMapOrderedIteration(t *testing.T) {
	// Right values deliberately order differently than left values.
	pairs := []Pair[int, string]{{1, "w"}, {2, "z"}, {3, "y"}, {4, "x"}}

	// Every insertion order yields the same ascending traversals.
	for _, perm := range permutations(pairs) {
		m := NewBiTreeMap[int, string]()
		for _, pair := range perm {
			m.Insert(pair.Left, pair.Right)
		}

		require.Equal(t, pairs, collectPairs(m.All()))
		require.Equal(t, []int{1, 2, 3, 4}, slices.Collect(m.LeftValues()))
		require.Equal(t, []string{"w", "x", "y", "z"}, slices.Collect(m.RightValues()))
	}
}

func TestBiTreeMapIterationRestarts(t *testing.T) {
	m := NewBiTreeMap[int, string]()
	m.Insert(1, "a")
	m.Insert(2, "b")
	m.Insert(3, "c")

	// Breaking early leaves the map intact, and the sequence restarts
	// from the first pair on the next range.
	for left := range m.LeftValues() {
		require.Equal(t, 1, left)
		break
	}
	require.Equal(t, []int{1, 2, 3}, slices.Collect(m.LeftValues()))

	// Every yielded pair is mirror-consistent.
	for left, right := range m.All() {
		gotLeft, ok := m.GetByRight(right)
		require.True(t, ok)
		require.Equal(t, left, gotLeft)
	}
}

func TestBiTreeMapRanges(t *testing.T) {
	m := NewBiTreeMap[int, string]()
	m.Insert(1, "a")
	m.Insert(3, "c")
	m.Insert(5, "e")
	m.Insert(7, "g")

	tcs := []struct {
		name string
		lo   int
		hi   int
		want []Pair[int, string]
	}{
		{
			name: "interior bounds on keys",
			lo:   3,
			hi:   5,
			want: []Pair[int, string]{{3, "c"}, {5, "e"}},
		},
		{
			name: "bounds between keys",
			lo:   2,
			hi:   6,
			want: []Pair[int, string]{{3, "c"}, {5, "e"}},
		},
		{
			name: "single key",
			lo:   7,
			hi:   7,
			want: []Pair[int, string]{{7, "g"}},
		},
		{
			name: "covers everything",
			lo:   0,
			hi:   100,
			want: []Pair[int, string]{{1, "a"}, {3, "c"}, {5, "e"}, {7, "g"}},
		},
		{
			name: "empty window",
			lo:   4,
			hi:   4,
			want: nil,
		},
		{
			name: "inverted bounds",
			lo:   6,
			hi:   2,
			want: nil,
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, collectPairs(m.LeftRange(tc.lo, tc.hi)))
		})
	}

	// RightRange scans the inverse index, keyed by right value.
	require.Equal(t,
		[]Pair[string, int]{{"c", 3}, {"e", 5}},
		collectPairs(m.RightRange("b", "f")))
	require.Empty(t, collectPairs(m.RightRange("x", "z")))

	// Early break stops the scan cleanly.
	for range m.LeftRange(0, 100) {
		break
	}
}

func TestBiTreeMapEqual(t *testing.T) {
	defer goleak.VerifyNone(t)

	a := NewBiTreeMap[string, int]()
	b := NewBiTreeMap[string, int]()
	require.True(t, a.Equal(b))

	// Insertion order does not matter.
	a.Insert("A", 1)
	a.Insert("B", 2)
	b.Insert("B", 2)
	b.Insert("A", 1)
	require.True(t, a.Equal(b))
	require.True(t, b.Equal(a))

	// Differing lengths short-circuit.
	b.Insert("Z", 26)
	require.Equal(t, a.Len()+1, b.Len())
	require.False(t, a.Equal(b))

	// A differing first pair returns early without draining the
	// lockstep iterator.
	c := NewBiTreeMap[string, int]()
	c.Insert("A", 9)
	c.Insert("B", 2)
	require.Equal(t, a.Len(), c.Len())
	require.False(t, a.Equal(c))
}

func TestBiTreeMapRetain(t *testing.T) {
	m := NewBiTreeMap[int, string]()
	m.Insert(1, "a")
	m.Insert(2, "b")
	m.Insert(3, "c")
	m.Insert(4, "d")

	m.Retain(func(left int, _ string) bool {
		return left%2 == 0
	})

	require.Equal(t, []Pair[int, string]{{2, "b"}, {4, "d"}}, collectPairs(m.All()))
	require.False(t, m.ContainsRight("a"))
	require.False(t, m.ContainsRight("c"))

	left, ok := m.GetByRight("d")
	require.True(t, ok)
	require.Equal(t, 4, left)
}

func TestBiTreeMapClearAndClone(t *testing.T) {
	original := NewBiTreeMap[int, string]()
	original.Insert(2, "b")
	original.Insert(1, "a")

	clone := original.Clone()
	require.True(t, original.Equal(clone))

	original.Insert(3, "c")
	require.Equal(t, []Pair[int, string]{{1, "a"}, {2, "b"}}, collectPairs(clone.All()))

	clone.Clear()
	require.True(t, clone.IsEmpty())
	require.Equal(t, 3, original.Len())

	// The cleared map remains usable.
	clone.Insert(9, "z")
	require.Equal(t, 1, clone.Len())
}

func TestBiTreeMapViews(t *testing.T) {
	m := NewBiTreeMap[int, string]()
	left := m.LeftMap()
	right := m.RightMap()
	require.True(t, left.IsEmpty())
	require.True(t, right.IsEmpty())

	// Views are live and iterate in their direction's ascending order.
	m.Insert(2, "x")
	m.Insert(1, "y")

	require.Equal(t, 2, left.Len())
	require.Equal(t, []Pair[int, string]{{1, "y"}, {2, "x"}}, collectPairs(left.All()))
	require.Equal(t, []Pair[string, int]{{"x", 2}, {"y", 1}}, collectPairs(right.All()))

	gotRight, ok := left.Get(1)
	require.True(t, ok)
	require.Equal(t, "y", gotRight)

	gotLeft, ok := right.Get("x")
	require.True(t, ok)
	require.Equal(t, 2, gotLeft)

	require.True(t, left.Contains(2))
	require.False(t, left.Contains(3))
	require.True(t, right.Contains("y"))
	require.False(t, right.Contains("z"))

	m.RemoveByRight("x")
	require.False(t, left.Contains(2))
	require.Equal(t, 1, right.Len())
}

func TestBiTreeMapString(t *testing.T) {
	m := NewBiTreeMap[int, string]()
	require.Equal(t, "bimap[]", m.String())

	m.Insert(2, "b")
	m.Insert(1, "a")
	require.Equal(t, "bimap[1:a 2:b]", m.String())
}
