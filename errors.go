package bimap

import (
	"errors"
	"fmt"
)

// ErrConflict is wrapped by every error returned from TryInsert, so that
// callers can detect conflicts with errors.Is without knowing the map's
// type parameters.
var ErrConflict = errors.New("bimap: pair conflicts with an existing pair")

// ConflictError is returned by TryInsert when either side of the pair is
// already present. It carries the rejected pair and whichever existing
// pairs hold its values.
type ConflictError[L, R any] struct {
	// Rejected is the pair TryInsert refused to insert.
	Rejected Pair[L, R]

	// ExistingLeft is the pair already holding Rejected.Left, or nil.
	ExistingLeft *Pair[L, R]

	// ExistingRight is the pair already holding Rejected.Right, or nil.
	ExistingRight *Pair[L, R]
}

// Error implements error.
func (e *ConflictError[L, R]) Error() string {
	switch {
	case e.ExistingLeft != nil && e.ExistingRight != nil:
		return fmt.Sprintf("bimap: cannot insert %s: left value held by %s, right value held by %s",
			e.Rejected, e.ExistingLeft, e.ExistingRight)
	case e.ExistingLeft != nil:
		return fmt.Sprintf("bimap: cannot insert %s: left value held by %s", e.Rejected, e.ExistingLeft)
	case e.ExistingRight != nil:
		return fmt.Sprintf("bimap: cannot insert %s: right value held by %s", e.Rejected, e.ExistingRight)
	default:
		return fmt.Sprintf("bimap: cannot insert %s", e.Rejected)
	}
}

// Unwrap returns ErrConflict so that errors.Is matches all conflicts.
func (e *ConflictError[L, R]) Unwrap() error {
	return ErrConflict
}
