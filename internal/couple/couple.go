package couple

import (
	"time"

	"github.com/google/uuid"
)

// Couple is a shared-visibility grouping of user profiles. Membership
// is recorded on the profile; a profile belongs to at most one couple
// at a time.
type Couple struct {
	ID        uuid.UUID
	Name      string
	CreatedBy uuid.UUID
	CreatedAt time.Time
}

// Profile is the membership-directory view of a user.
type Profile struct {
	ID        uuid.UUID // same as the user ID
	Name      string
	Email     string
	CoupleID  *uuid.UUID
	CreatedAt time.Time
}

type InviteStatus string

const (
	InvitePending  InviteStatus = "pending"
	InviteAccepted InviteStatus = "accepted"
	InviteRejected InviteStatus = "rejected"
)

// Invite asks another user, by email, to join a couple.
type Invite struct {
	ID           uuid.UUID
	CoupleID     uuid.UUID
	InvitedEmail string
	InvitedBy    uuid.UUID
	Status       InviteStatus
	CreatedAt    time.Time
}
