package bimap

import (
	"iter"
	"maps"
)

// BiHashMap is a bidirectional map backed by a pair of hash maps. Every
// left value is bound to exactly one right value and every right value to
// exactly one left value, and lookups run in average constant time in
// either direction.
//
// The zero value is not usable except as an unmarshalling target;
// construct instances with NewBiHashMap, NewBiHashMapWithCap or
// CollectBiHashMap. BiHashMap is not safe for concurrent use.
type BiHashMap[L, R comparable] struct {
	leftToRight map[L]R
	rightToLeft map[R]L
}

// NewBiHashMap creates a new empty BiHashMap.
func NewBiHashMap[L, R comparable]() *BiHashMap[L, R] {
	return &BiHashMap[L, R]{
		leftToRight: make(map[L]R),
		rightToLeft: make(map[R]L),
	}
}

// NewBiHashMapWithCap creates a new empty BiHashMap, with the given
// capacity pre-allocated in both directions.
func NewBiHashMapWithCap[L, R comparable](capacity uint32) *BiHashMap[L, R] {
	return &BiHashMap[L, R]{
		leftToRight: make(map[L]R, capacity),
		rightToLeft: make(map[R]L, capacity),
	}
}

// newBiHashMapSized is the internal sizing constructor used where a count
// hint arrives as an int, such as decoding.
func newBiHashMapSized[L, R comparable](size int) *BiHashMap[L, R] {
	return &BiHashMap[L, R]{
		leftToRight: make(map[L]R, size),
		rightToLeft: make(map[R]L, size),
	}
}

// CollectBiHashMap creates a BiHashMap holding the pairs yielded by the
// given sequence, inserted in the order they arrive. Later pairs displace
// earlier ones under the usual Insert rules.
func CollectBiHashMap[L, R comparable](seq iter.Seq2[L, R]) *BiHashMap[L, R] {
	m := NewBiHashMap[L, R]()
	m.InsertSeq(seq)
	return m
}

// Insert adds the pair (left, right), displacing any pairs that currently
// hold either value. Both indexes are purged of stale mirrors before the
// new pair is written, so the map is consistent at every return. The
// result reports exactly what was displaced; callers that must not
// displace anything should use TryInsert instead.
func (m *BiHashMap[L, R]) Insert(left L, right R) Overwritten[L, R] {
	oldRight, hadLeft := m.leftToRight[left]
	oldLeft, hadRight := m.rightToLeft[right]

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
		delete(m.rightToLeft, oldRight)
		delete(m.leftToRight, oldLeft)
		overwritten = Overwritten[L, R]{
			kind:    OverwriteBoth,
			byLeft:  Pair[L, R]{Left: left, Right: oldRight},
			byRight: Pair[L, R]{Left: oldLeft, Right: right},
		}
	case hadLeft:
		delete(m.rightToLeft, oldRight)
		overwritten = Overwritten[L, R]{
			kind:   OverwriteLeft,
			byLeft: Pair[L, R]{Left: left, Right: oldRight},
		}
	case hadRight:
		delete(m.leftToRight, oldLeft)
		overwritten = Overwritten[L, R]{
			kind:    OverwriteRight,
			byRight: Pair[L, R]{Left: oldLeft, Right: right},
		}
	}

	m.leftToRight[left] = right
	m.rightToLeft[right] = left
	return overwritten
}

// TryInsert adds the pair (left, right) only if neither value is already
// present. Otherwise the map is left unchanged and a *ConflictError
// describing the existing pairs is returned. Re-inserting a pair that is
// already present is also a conflict.
func (m *BiHashMap[L, R]) TryInsert(left L, right R) error {
	oldRight, hadLeft := m.leftToRight[left]
	oldLeft, hadRight := m.rightToLeft[right]
	if !hadLeft && !hadRight {
		m.leftToRight[left] = right
		m.rightToLeft[right] = left
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
func (m *BiHashMap[L, R]) InsertSeq(seq iter.Seq2[L, R]) {
	for left, right := range seq {
		m.Insert(left, right)
	}
}

// GetByLeft returns the right value bound to the given left value.
func (m *BiHashMap[L, R]) GetByLeft(left L) (R, bool) {
	right, ok := m.leftToRight[left]
	return right, ok
}

// GetByRight returns the left value bound to the given right value.
func (m *BiHashMap[L, R]) GetByRight(right R) (L, bool) {
	left, ok := m.rightToLeft[right]
	return left, ok
}

// ContainsLeft returns true if the given left value is found in the map.
func (m *BiHashMap[L, R]) ContainsLeft(left L) bool {
	_, ok := m.leftToRight[left]
	return ok
}

// ContainsRight returns true if the given right value is found in the map.
func (m *BiHashMap[L, R]) ContainsRight(right R) bool {
	_, ok := m.rightToLeft[right]
	return ok
}

// Len returns the number of pairs in the map.
func (m *BiHashMap[L, R]) Len() int {
	return len(m.leftToRight)
}

// IsEmpty returns true if the map holds no pairs.
func (m *BiHashMap[L, R]) IsEmpty() bool {
	return len(m.leftToRight) == 0
}

// RemoveByLeft removes the pair holding the given left value and returns
// it. An absent value removes nothing.
func (m *BiHashMap[L, R]) RemoveByLeft(left L) (Pair[L, R], bool) {
	right, ok := m.leftToRight[left]
	if !ok {
		return Pair[L, R]{}, false
	}
	delete(m.leftToRight, left)
	delete(m.rightToLeft, right)
	return Pair[L, R]{Left: left, Right: right}, true
}

// RemoveByRight removes the pair holding the given right value and
// returns it. An absent value removes nothing.
func (m *BiHashMap[L, R]) RemoveByRight(right R) (Pair[L, R], bool) {
	left, ok := m.rightToLeft[right]
	if !ok {
		return Pair[L, R]{}, false
	}
	delete(m.leftToRight, left)
	delete(m.rightToLeft, right)
	return Pair[L, R]{Left: left, Right: right}, true
}

// Clear removes all pairs from the map.
func (m *BiHashMap[L, R]) Clear() {
	clear(m.leftToRight)
	clear(m.rightToLeft)
}

// Retain removes every pair for which keep returns false.
func (m *BiHashMap[L, R]) Retain(keep func(left L, right R) bool) {
	for left, right := range m.leftToRight {
		if !keep(left, right) {
			delete(m.leftToRight, left)
			delete(m.rightToLeft, right)
		}
	}
}

// Clone returns a copy of the map that shares no storage with the
// original.
func (m *BiHashMap[L, R]) Clone() *BiHashMap[L, R] {
	return &BiHashMap[L, R]{
		leftToRight: maps.Clone(m.leftToRight),
		rightToLeft: maps.Clone(m.rightToLeft),
	}
}

// Equal returns true if both maps hold exactly the same pairs. Mirror
// consistency makes comparing the forward index sufficient.
func (m *BiHashMap[L, R]) Equal(other *BiHashMap[L, R]) bool {
	return maps.Equal(m.leftToRight, other.leftToRight)
}

// All returns an iterator over all pairs, in an unspecified order. The
// sequence is restartable: ranging over it a second time walks the live
// map again.
func (m *BiHashMap[L, R]) All() iter.Seq2[L, R] {
	return maps.All(m.leftToRight)
}

// LeftValues returns an iterator over the left value of every pair, in an
// unspecified order.
func (m *BiHashMap[L, R]) LeftValues() iter.Seq[L] {
	return maps.Keys(m.leftToRight)
}

// RightValues returns an iterator over the right value of every pair, in
// an unspecified order.
func (m *BiHashMap[L, R]) RightValues() iter.Seq[R] {
	return maps.Keys(m.rightToLeft)
}

// LeftMap returns a read-only view of the left-to-right direction. The
// view copies nothing and observes later mutations of the map.
func (m *BiHashMap[L, R]) LeftMap() MapView[L, R] {
	return mapView[L, R]{entries: m.leftToRight}
}

// RightMap returns a read-only view of the right-to-left direction. The
// view copies nothing and observes later mutations of the map.
func (m *BiHashMap[L, R]) RightMap() MapView[R, L] {
	return mapView[R, L]{entries: m.rightToLeft}
}

// String implements fmt.Stringer, rendering pairs in iteration order.
func (m *BiHashMap[L, R]) String() string {
	return renderPairs(m.All())
}
