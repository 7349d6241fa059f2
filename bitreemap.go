package bimap

import (
	"cmp"
	"iter"

	"github.com/emirpasic/gods/v2/maps/treemap"
)

// BiTreeMap is a bidirectional map backed by a pair of red-black trees.
// It behaves like BiHashMap with both value types constrained to
// cmp.Ordered, trading constant-time lookups for ordered traversal: All
// and LeftValues walk pairs in ascending left order and RightValues walks
// in ascending right order. LeftRange and RightRange scan bounded windows
// of either index.
//
// The zero value is not usable except as an unmarshalling target;
// construct instances with NewBiTreeMap or CollectBiTreeMap. BiTreeMap is
// not safe for concurrent use.
type BiTreeMap[L, R cmp.Ordered] struct {
	leftToRight *treemap.Map[L, R]
	rightToLeft *treemap.Map[R, L]
}

// NewBiTreeMap creates a new empty BiTreeMap.
func NewBiTreeMap[L, R cmp.Ordered]() *BiTreeMap[L, R] {
	return &BiTreeMap[L, R]{
		leftToRight: treemap.New[L, R](),
		rightToLeft: treemap.New[R, L](),
	}
}

// CollectBiTreeMap creates a BiTreeMap holding the pairs yielded by the
// given sequence, inserted in the order they arrive. Later pairs displace
// earlier ones under the usual Insert rules.
func CollectBiTreeMap[L, R cmp.Ordered](seq iter.Seq2[L, R]) *BiTreeMap[L, R] {
	m := NewBiTreeMap[L, R]()
	m.InsertSeq(seq)
	return m
}

// Insert adds the pair (left, right), displacing any pairs that currently
// hold either value. Both indexes are purged of stale mirrors before the
// new pair is written, so the map is consistent at every return. The
// result reports exactly what was displaced; callers that must not
// displace anything should use TryInsert instead.
func (m *BiTreeMap[L, R]) Insert(left L, right R) Overwritten[L, R] {
	oldRight, hadLeft := m.leftToRight.Get(left)
	oldLeft, hadRight := m.rightToLeft.Get(right)

	var overwritten Overwritten[L, R]
	switch {
	case hadLeft && hadRight && oldRight == right:
		// The exact pair is already present; rewriting it displaces
		// nothing else.
		overwritten = Overwritten[L, R]{
			kind:    OverwritePair,
			byLeft:  Pair[L, R]{Left: left, Right: right},
			byRight: Pair[L, R]{Left: left, Right: right},
		}
	case hadLeft && hadRight:
		m.rightToLeft.Remove(oldRight)
		m.leftToRight.Remove(oldLeft)
		overwritten = Overwritten[L, R]{
			kind:    OverwriteBoth,
			byLeft:  Pair[L, R]{Left: left, Right: oldRight},
			byRight: Pair[L, R]{Left: oldLeft, Right: right},
		}
	case hadLeft:
		m.rightToLeft.Remove(oldRight)
		overwritten = Overwritten[L, R]{
			kind:   OverwriteLeft,
			byLeft: Pair[L, R]{Left: left, Right: oldRight},
		}
	case hadRight:
		m.leftToRight.Remove(oldLeft)
		overwritten = Overwritten[L, R]{
			kind:    OverwriteRight,
			byRight: Pair[L, R]{Left: oldLeft, Right: right},
		}
	}

	m.leftToRight.Put(left, right)
	m.rightToLeft.Put(right, left)
	return overwritten
}

// TryInsert adds the pair (left, right) only if neither value is already
// present. Otherwise the map is left unchanged and a *ConflictError
// describing the existing pairs is returned. Re-inserting a pair that is
// already present is also a conflict.
func (m *BiTreeMap[L, R]) TryInsert(left L, right R) error {
	oldRight, hadLeft := m.leftToRight.Get(left)
	oldLeft, hadRight := m.rightToLeft.Get(right)
	if !hadLeft && !hadRight {
		m.leftToRight.Put(left, right)
		m.rightToLeft.Put(right, left)
		return nil
	}

	conflict := &ConflictError[L, R]{
		Rejected: Pair[L, R]{Left: left, Right: right},
	}
	if hadLeft {
		conflict.ExistingLeft = &Pair[L, R]{Left: left, Right: oldRight}
	}
	if hadRight {
		conflict.ExistingRight = &Pair[L, R]{Left: oldLeft, Right: right}
	}
	return conflict
}

// InsertSeq inserts every pair yielded by the sequence, in order, under
// the usual Insert rules.
func (m *BiTreeMap[L, R]) InsertSeq(seq iter.Seq2[L, R]) {
	for left, right := range seq {
		m.Insert(left, right)
	}
}

// GetByLeft returns the right value bound to the given left value.
func (m *BiTreeMap[L, R]) GetByLeft(left L) (R, bool) {
	return m.leftToRight.Get(left)
}

// GetByRight returns the left value bound to the given right value.
func (m *BiTreeMap[L, R]) GetByRight(right R) (L, bool) {
	return m.rightToLeft.Get(right)
}

// ContainsLeft returns true if the given left value is found in the map.
func (m *BiTreeMap[L, R]) ContainsLeft(left L) bool {
	_, ok := m.leftToRight.Get(left)
	return ok
}

// ContainsRight returns true if the given right value is found in the map.
func (m *BiTreeMap[L, R]) ContainsRight(right R) bool {
	_, ok := m.rightToLeft.Get(right)
	return ok
}

// Len returns the number of pairs in the map.
func (m *BiTreeMap[L, R]) Len() int {
	return m.leftToRight.Size()
}

// IsEmpty returns true if the map holds no pairs.
func (m *BiTreeMap[L, R]) IsEmpty() bool {
	return m.leftToRight.Empty()
}

// RemoveByLeft removes the pair holding the given left value and returns
// it. An absent value removes nothing.
func (m *BiTreeMap[L, R]) RemoveByLeft(left L) (Pair[L, R], bool) {
	right, ok := m.leftToRight.Get(left)
	if !ok {
		return Pair[L, R]{}, false
	}
	m.leftToRight.Remove(left)
	m.rightToLeft.Remove(right)
	return Pair[L, R]{Left: left, Right: right}, true
}

// RemoveByRight removes the pair holding the given right value and
// returns it. An absent value removes nothing.
func (m *BiTreeMap[L, R]) RemoveByRight(right R) (Pair[L, R], bool) {
	left, ok := m.rightToLeft.Get(right)
	if !ok {
		return Pair[L, R]{}, false
	}
	m.leftToRight.Remove(left)
	m.rightToLeft.Remove(right)
	return Pair[L, R]{Left: left, Right: right}, true
}

// Clear removes all pairs from the map.
func (m *BiTreeMap[L, R]) Clear() {
	m.leftToRight.Clear()
	m.rightToLeft.Clear()
}

// Retain removes every pair for which keep returns false. Removal under
// an open tree iterator is not safe, so evictions are collected first.
func (m *BiTreeMap[L, R]) Retain(keep func(left L, right R) bool) {
	var evicted []Pair[L, R]
	for left, right := range m.All() {
		if !keep(left, right) {
			evicted = append(evicted, Pair[L, R]{Left: left, Right: right})
		}
	}
	for _, pair := range evicted {
		m.leftToRight.Remove(pair.Left)
		m.rightToLeft.Remove(pair.Right)
	}
}

// Clone returns a copy of the map that shares no storage with the
// original.
func (m *BiTreeMap[L, R]) Clone() *BiTreeMap[L, R] {
	clone := NewBiTreeMap[L, R]()
	for left, right := range m.All() {
		clone.leftToRight.Put(left, right)
		clone.rightToLeft.Put(right, left)
	}
	return clone
}

// Equal returns true if both maps hold exactly the same pairs. Both
// iterate in ascending left order, so the pair sets are compared in
// lockstep.
func (m *BiTreeMap[L, R]) Equal(other *BiTreeMap[L, R]) bool {
	if m.Len() != other.Len() {
		return false
	}
	next, stop := iter.Pull2(other.All())
	defer stop()
	for left, right := range m.All() {
		otherLeft, otherRight, ok := next()
		if !ok || otherLeft != left || otherRight != right {
			return false
		}
	}
	return true
}

// All returns an iterator over all pairs, in ascending left order. The
// sequence is restartable: ranging over it a second time walks the live
// map again.
func (m *BiTreeMap[L, R]) All() iter.Seq2[L, R] {
	return func(yield func(L, R) bool) {
		it := m.leftToRight.Iterator()
		for it.Next() {
			if !yield(it.Key(), it.Value()) {
				return
			}
		}
	}
}

// LeftValues returns an iterator over the left value of every pair, in
// ascending order.
func (m *BiTreeMap[L, R]) LeftValues() iter.Seq[L] {
	return func(yield func(L) bool) {
		it := m.leftToRight.Iterator()
		for it.Next() {
			if !yield(it.Key()) {
				return
			}
		}
	}
}

// RightValues returns an iterator over the right value of every pair, in
// ascending order.
func (m *BiTreeMap[L, R]) RightValues() iter.Seq[R] {
	return func(yield func(R) bool) {
		it := m.rightToLeft.Iterator()
		for it.Next() {
			if !yield(it.Key()) {
				return
			}
		}
	}
}

// LeftRange returns an iterator over the pairs whose left value lies in
// [lo, hi], both bounds inclusive, in ascending left order.
func (m *BiTreeMap[L, R]) LeftRange(lo, hi L) iter.Seq2[L, R] {
	return func(yield func(L, R) bool) {
		it := m.leftToRight.Iterator()
		for it.Next() {
			left := it.Key()
			if left < lo {
				continue
			}
			if hi < left {
				return
			}
			if !yield(left, it.Value()) {
				return
			}
		}
	}
}

// RightRange returns an iterator over the pairs whose right value lies in
// [lo, hi], both bounds inclusive, keyed by right value in ascending
// right order.
func (m *BiTreeMap[L, R]) RightRange(lo, hi R) iter.Seq2[R, L] {
	return func(yield func(R, L) bool) {
		it := m.rightToLeft.Iterator()
		for it.Next() {
			right := it.Key()
			if right < lo {
				continue
			}
			if hi < right {
				return
			}
			if !yield(right, it.Value()) {
				return
			}
		}
	}
}

// LeftMap returns a read-only view of the left-to-right direction,
// iterating in ascending left order. The view copies nothing and observes
// later mutations of the map.
func (m *BiTreeMap[L, R]) LeftMap() MapView[L, R] {
	return treeView[L, R]{entries: m.leftToRight}
}

// RightMap returns a read-only view of the right-to-left direction,
// iterating in ascending right order. The view copies nothing and
// observes later mutations of the map.
func (m *BiTreeMap[L, R]) RightMap() MapView[R, L] {
	return treeView[R, L]{entries: m.rightToLeft}
}

// String implements fmt.Stringer, rendering pairs in ascending left
// order.
func (m *BiTreeMap[L, R]) String() string {
	return renderPairs(m.All())
}
