package bimap

import (
	"fmt"
	"iter"
	"strings"
)

// Pair is a single left-right association held by a bidirectional map.
// Pairs are plain values: iteration produces them and removal returns
// them, but the maps never share memory with a Pair a caller holds.
type Pair[L, R any] struct {
	Left  L
	Right R
}

// String implements fmt.Stringer.
func (p Pair[L, R]) String() string {
	return fmt.Sprintf("(%v, %v)", p.Left, p.Right)
}

// renderPairs produces the debug form shared by both map variants, with
// pairs in the order the sequence yields them.
func renderPairs[L, R any](pairs iter.Seq2[L, R]) string {
	var sb strings.Builder
	sb.WriteString("bimap[")
	first := true
	for left, right := range pairs {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		fmt.Fprintf(&sb, "%v:%v", left, right)
	}
	sb.WriteByte(']')
	return sb.String()
}
