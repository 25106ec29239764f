package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zerotabs/backend/internal/apperr"
	"github.com/zerotabs/backend/internal/models"
)

func TestSessionCreate(t *testing.T) {
	store := newTestStore(t)
	svc := NewSessionService(store)

	session, err := svc.Create(context.Background(), "vendor_001", "Friday dinner", "user::alice")
	require.NoError(t, err)

	assert.Equal(t, models.SessionOpen, session.Status)
	assert.Equal(t, "user::alice", session.CreatedBy)
	assert.Equal(t, []string{"user::alice"}, session.Participants)
	assert.Contains(t, session.SessionID, "session::")
}

func TestSessionJoin(t *testing.T) {
	store := newTestStore(t)
	svc := NewSessionService(store)
	ctx := context.Background()

	session, err := svc.Create(ctx, "vendor_001", "", "user::alice")
	require.NoError(t, err)

	t.Run("new participant is added", func(t *testing.T) {
		joined, err := svc.Join(ctx, session.SessionID, "user::bob")
		require.NoError(t, err)
		assert.Equal(t, []string{"user::alice", "user::bob"}, joined.Participants)
	})

	t.Run("joining twice is idempotent", func(t *testing.T) {
		joined, err := svc.Join(ctx, session.SessionID, "user::bob")
		require.NoError(t, err)
		assert.Equal(t, []string{"user::alice", "user::bob"}, joined.Participants)
	})

	t.Run("unknown session", func(t *testing.T) {
		_, err := svc.Join(ctx, "session::missing", "user::bob")
		assert.True(t, apperr.Is(err, apperr.NotFound), "got %v", err)
	})

	t.Run("closed session rejects joins", func(t *testing.T) {
		_, err := svc.Close(ctx, session.SessionID, "user::alice")
		require.NoError(t, err)

		_, err = svc.Join(ctx, session.SessionID, "user::carol")
		assert.True(t, apperr.Is(err, apperr.InvalidState), "got %v", err)
	})
}

func TestSessionClose(t *testing.T) {
	store := newTestStore(t)
	svc := NewSessionService(store)
	ctx := context.Background()

	session, err := svc.Create(ctx, "vendor_001", "", "user::alice")
	require.NoError(t, err)

	t.Run("only the creator may close", func(t *testing.T) {
		_, err := svc.Close(ctx, session.SessionID, "user::bob")
		assert.True(t, apperr.Is(err, apperr.Forbidden), "got %v", err)
	})

	t.Run("creator closes", func(t *testing.T) {
		closed, err := svc.Close(ctx, session.SessionID, "user::alice")
		require.NoError(t, err)
		assert.Equal(t, models.SessionClosed, closed.Status)
	})

	t.Run("closing twice is a no-op", func(t *testing.T) {
		closed, err := svc.Close(ctx, session.SessionID, "user::alice")
		require.NoError(t, err)
		assert.Equal(t, models.SessionClosed, closed.Status)
	})
}

func TestSessionList(t *testing.T) {
	store := newTestStore(t)
	svc := NewSessionService(store)
	ctx := context.Background()

	_, err := svc.Create(ctx, "vendor_001", "a", "user::alice")
	require.NoError(t, err)
	_, err = svc.Create(ctx, "vendor_001", "b", "user::bob")
	require.NoError(t, err)

	sessions, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, sessions, 2)
}
