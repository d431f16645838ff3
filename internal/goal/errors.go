package goal

import "errors"

var (
	ErrNotFound = errors.New("goal not found")
	ErrInvalid  = errors.New("invalid goal")
)
