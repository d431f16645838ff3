package session_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpcaldeira/tandem/internal/session"
)

func TestNew_AlwaysIncludesSelf(t *testing.T) {
	userID := uuid.New()
	partnerID := uuid.New()

	t.Run("NilVisibleSet", func(t *testing.T) {
		s := session.New(userID, nil)
		assert.Equal(t, []uuid.UUID{userID}, s.VisibleUserIDs)
	})

	t.Run("SelfAlreadyPresent", func(t *testing.T) {
		s := session.New(userID, []uuid.UUID{partnerID, userID})
		assert.Equal(t, []uuid.UUID{partnerID, userID}, s.VisibleUserIDs)
	})

	t.Run("SelfMissing", func(t *testing.T) {
		s := session.New(userID, []uuid.UUID{partnerID})
		assert.ElementsMatch(t, []uuid.UUID{userID, partnerID}, s.VisibleUserIDs)
	})
}

func TestSession_CanSee(t *testing.T) {
	userID := uuid.New()
	partnerID := uuid.New()
	stranger := uuid.New()

	s := session.New(userID, []uuid.UUID{userID, partnerID})

	assert.True(t, s.CanSee(userID))
	assert.True(t, s.CanSee(partnerID))
	assert.False(t, s.CanSee(stranger))
}

func TestContextRoundTrip(t *testing.T) {
	s := session.New(uuid.New(), nil)

	ctx := session.NewContext(context.Background(), s)

	got, ok := session.FromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, s, got)

	_, ok = session.FromContext(context.Background())
	assert.False(t, ok)
}
