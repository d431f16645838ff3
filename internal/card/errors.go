package card

import "errors"

var (
	ErrNotFound = errors.New("card not found")
	ErrInvalid  = errors.New("invalid card")
)
