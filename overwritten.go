package bimap

import (
	"fmt"
	"strings"
)

// OverwriteKind describes which previously present pairs an Insert call
// displaced.
type OverwriteKind uint8

const (
	// OverwriteNone means neither inserted value was previously present.
	OverwriteNone OverwriteKind = iota

	// OverwriteLeft means the inserted left value was bound to a
	// different right value, and that pair was evicted.
	OverwriteLeft

	// OverwriteRight means the inserted right value was bound to a
	// different left value, and that pair was evicted.
	OverwriteRight

	// OverwritePair means the exact inserted pair was already present
	// and was rewritten in place. This is reported distinctly and never
	// as OverwriteBoth, which is reserved for two distinct prior pairs.
	OverwritePair

	// OverwriteBoth means the inserted values were held by two distinct
	// prior pairs, and both were evicted. The map shrinks by one.
	OverwriteBoth
)

// String implements fmt.Stringer.
func (k OverwriteKind) String() string {
	switch k {
	case OverwriteNone:
		return "none"
	case OverwriteLeft:
		return "left"
	case OverwriteRight:
		return "right"
	case OverwritePair:
		return "pair"
	case OverwriteBoth:
		return "both"
	default:
		return fmt.Sprintf("OverwriteKind(%d)", uint8(k))
	}
}

// Overwritten reports what a call to Insert displaced. The zero value
// means the insertion was fresh on both sides.
type Overwritten[L, R any] struct {
	kind    OverwriteKind
	byLeft  Pair[L, R]
	byRight Pair[L, R]
}

// Kind returns which combination of prior pairs the insertion displaced.
func (o Overwritten[L, R]) Kind() OverwriteKind {
	return o.kind
}

// DidOverwrite returns true if the insertion displaced at least one pair.
func (o Overwritten[L, R]) DidOverwrite() bool {
	return o.kind != OverwriteNone
}

// EvictedByLeft returns the pair that previously held the inserted left
// value, if any. For an exact-pair rewrite this is the pair itself.
func (o Overwritten[L, R]) EvictedByLeft() (Pair[L, R], bool) {
	switch o.kind {
	case OverwriteLeft, OverwritePair, OverwriteBoth:
		return o.byLeft, true
	default:
		return Pair[L, R]{}, false
	}
}

// EvictedByRight returns the pair that previously held the inserted right
// value, if any. For an exact-pair rewrite this is the pair itself.
func (o Overwritten[L, R]) EvictedByRight() (Pair[L, R], bool) {
	switch o.kind {
	case OverwriteRight, OverwritePair, OverwriteBoth:
		return o.byRight, true
	default:
		return Pair[L, R]{}, false
	}
}

// Evicted returns the displaced pairs, the pair evicted for holding the
// left value first. An exact-pair rewrite reports its single pair once.
func (o Overwritten[L, R]) Evicted() []Pair[L, R] {
	switch o.kind {
	case OverwriteLeft, OverwritePair:
		return []Pair[L, R]{o.byLeft}
	case OverwriteRight:
		return []Pair[L, R]{o.byRight}
	case OverwriteBoth:
		return []Pair[L, R]{o.byLeft, o.byRight}
	default:
		return nil
	}
}

// String implements fmt.Stringer.
func (o Overwritten[L, R]) String() string {
	evicted := o.Evicted()
	if len(evicted) == 0 {
		return "overwrote nothing"
	}
	rendered := make([]string, 0, len(evicted))
	for _, pair := range evicted {
		rendered = append(rendered, pair.String())
	}
	return "overwrote " + strings.Join(rendered, " and ")
}
