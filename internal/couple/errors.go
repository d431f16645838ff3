package couple

import "errors"

var (
	ErrNotFound        = errors.New("couple not found")
	ErrProfileNotFound = errors.New("profile not found")
	ErrInviteNotFound  = errors.New("invite not found")
	ErrInvalid         = errors.New("invalid couple operation")
	ErrAlreadyInvited  = errors.New("a pending invite already exists for this email")
	ErrAlreadyGrouped  = errors.New("user already belongs to a couple")
)
