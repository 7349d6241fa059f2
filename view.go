package bimap

import (
	"cmp"
	"iter"
	"maps"

	"github.com/emirpasic/gods/v2/maps/treemap"
)

// MapView is a read-only, single-direction view of one index of a
// bidirectional map, obtained from LeftMap or RightMap. A view is a cheap
// handle over the live structure: it copies nothing and observes later
// mutations made through the owning map.
type MapView[K, V any] interface {
	// Get returns the value bound to the given key.
	Get(key K) (V, bool)

	// Contains returns true if the key is found in this direction.
	Contains(key K) bool

	// Len returns the number of entries.
	Len() int

	// IsEmpty returns true if there are no entries.
	IsEmpty() bool

	// All returns an iterator over the entries of this direction, in the
	// same order the owning map iterates them.
	All() iter.Seq2[K, V]
}

// mapView adapts one direction of a BiHashMap. The same type serves both
// directions since each is a plain map.
type mapView[K comparable, V any] struct {
	entries map[K]V
}

var _ MapView[string, int] = mapView[string, int]{}

func (v mapView[K, V]) Get(key K) (V, bool) {
	value, ok := v.entries[key]
	return value, ok
}

func (v mapView[K, V]) Contains(key K) bool {
	_, ok := v.entries[key]
	return ok
}

func (v mapView[K, V]) Len() int {
	return len(v.entries)
}

func (v mapView[K, V]) IsEmpty() bool {
	return len(v.entries) == 0
}

func (v mapView[K, V]) All() iter.Seq2[K, V] {
	return maps.All(v.entries)
}

// treeView adapts one direction of a BiTreeMap, iterating in ascending
// key order.
type treeView[K cmp.Ordered, V any] struct {
	entries *treemap.Map[K, V]
}

var _ MapView[string, int] = treeView[string, int]{}

func (v treeView[K, V]) Get(key K) (V, bool) {
	return v.entries.Get(key)
}

func (v treeView[K, V]) Contains(key K) bool {
	_, ok := v.entries.Get(key)
	return ok
}

func (v treeView[K, V]) Len() int {
	return v.entries.Size()
}

func (v treeView[K, V]) IsEmpty() bool {
	return v.entries.Empty()
}

func (v treeView[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		it := v.entries.Iterator()
		for it.Next() {
			if !yield(it.Key(), it.Value()) {
				return
			}
		}
	}
}
