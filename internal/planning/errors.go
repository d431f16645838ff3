package planning

import "errors"

var (
	ErrNotFound = errors.New("planning entry not found")
	ErrInvalid  = errors.New("invalid planning entry")

	// ErrInconsistent marks a planning/transaction pair found in an
	// impossible combination, such as a paid entry with no linked
	// transaction. Surfaced, never silently repaired on read.
	ErrInconsistent = errors.New("planning entry in inconsistent state")
)
