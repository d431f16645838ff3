package session

import (
	"context"

	"github.com/google/uuid"
)

// Session carries the acting user and the set of user IDs whose records
// are visible to them. For a user in a couple the visible set holds
// every member of the couple; otherwise it holds only the user.
// Every service operation receives a Session explicitly instead of
// reading ambient auth state.
type Session struct {
	UserID         uuid.UUID
	VisibleUserIDs []uuid.UUID
}

// New builds a Session, guaranteeing the user's own ID is part of the
// visible set.
func New(userID uuid.UUID, visible []uuid.UUID) Session {
	for _, id := range visible {
		if id == userID {
			return Session{UserID: userID, VisibleUserIDs: visible}
		}
	}

	return Session{UserID: userID, VisibleUserIDs: append([]uuid.UUID{userID}, visible...)}
}

// CanSee reports whether records owned by userID are inside this
// session's visibility scope.
func (s Session) CanSee(userID uuid.UUID) bool {
	for _, id := range s.VisibleUserIDs {
		if id == userID {
			return true
		}
	}

	return false
}

type ctxKey struct{}

// NewContext returns a copy of ctx carrying the session.
func NewContext(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext extracts the session stored by the auth middleware.
func FromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(ctxKey{}).(Session)
	return s, ok
}
