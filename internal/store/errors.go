package store

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a record addressed by id does not exist
	// among the caller's own records.
	ErrNotFound = errors.New("record not found")

	// ErrForbidden is returned by the batch reorder operations when at least
	// one referenced id is not owned by the caller.
	ErrForbidden = errors.New("forbidden")
)

// ValidationError reports malformed input, or a column reference that does
// not resolve to one of the caller's columns. The two cases are deliberately
// indistinguishable so the API never confirms whether another user's column
// exists.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// LimitExceededError reports that the per-user column cap was reached.
type LimitExceededError struct {
	Limit int
}

func (e *LimitExceededError) Error() string {
	return fmt.Sprintf("column limit of %d reached", e.Limit)
}
