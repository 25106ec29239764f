package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zerotabs/backend/internal/apperr"
	"github.com/zerotabs/backend/internal/config"
	"github.com/zerotabs/backend/internal/models"
	"github.com/zerotabs/backend/internal/storage"
	"github.com/zerotabs/backend/internal/storage/sqlite"
)

func newTestStore(t *testing.T) storage.Store {
	t.Helper()
	store, err := sqlite.New(":memory:")
	require.NoError(t, err, "failed to create test store")
	t.Cleanup(func() { store.Close() })
	return store
}

func seedSession(t *testing.T, store storage.Store, id string, participants ...string) *models.Session {
	t.Helper()
	session := &models.Session{
		SessionID:    id,
		Status:       models.SessionOpen,
		CreatedBy:    participants[0],
		Participants: participants,
	}
	require.NoError(t, store.UpsertSession(context.Background(), session))
	return session
}

func TestAutoGenerateEqualShares(t *testing.T) {
	store := newTestStore(t)
	svc := NewSplitService(store, config.SplitSection{OnSessionLookupFailure: config.LookupFail})
	ctx := context.Background()

	seedSession(t, store, "session::s1", "user::a", "user::b", "user::c")

	splits, err := svc.AutoGenerate(ctx, "bill-1", 45.00, "session::s1")
	require.NoError(t, err)
	require.Len(t, splits, 3)

	sum := 0.0
	for i, split := range splits {
		assert.Equal(t, 15.00, split.Amount)
		assert.Equal(t, models.SplitPending, split.ApprovalStatus)
		assert.True(t, split.AutoGenerated)
		assert.Nil(t, split.ApprovedAt)
		assert.Equal(t, []string{"user::a", "user::b", "user::c"}[i], split.UserID)
		sum += split.Amount
	}
	assert.Equal(t, 45.00, sum)

	// Generated splits are persisted and retrievable by bill.
	stored, err := svc.ListByBill(ctx, "bill-1")
	require.NoError(t, err)
	assert.Len(t, stored, 3)
}

func TestAutoGenerateRoundsEachShare(t *testing.T) {
	store := newTestStore(t)
	svc := NewSplitService(store, config.SplitSection{OnSessionLookupFailure: config.LookupFail})

	seedSession(t, store, "session::s1", "user::a", "user::b", "user::c")

	splits, err := svc.AutoGenerate(context.Background(), "bill-1", 100.00, "session::s1")
	require.NoError(t, err)
	require.Len(t, splits, 3)

	sum := 0.0
	for _, split := range splits {
		assert.Equal(t, 33.33, split.Amount)
		sum += split.Amount
	}
	// Rounding remainder is not redistributed: shares sum to 99.99.
	assert.InDelta(t, 99.99, sum, 1e-9)
}

func TestAutoGenerateSessionLookupPolicy(t *testing.T) {
	ctx := context.Background()

	t.Run("fail policy rejects missing session", func(t *testing.T) {
		store := newTestStore(t)
		svc := NewSplitService(store, config.SplitSection{OnSessionLookupFailure: config.LookupFail})

		_, err := svc.AutoGenerate(ctx, "bill-1", 30.00, "session::missing")
		assert.True(t, apperr.Is(err, apperr.NotFound), "got %v", err)
	})

	t.Run("fail policy rejects empty session id", func(t *testing.T) {
		store := newTestStore(t)
		svc := NewSplitService(store, config.SplitSection{OnSessionLookupFailure: config.LookupFail})

		_, err := svc.AutoGenerate(ctx, "bill-1", 30.00, "")
		assert.True(t, apperr.Is(err, apperr.InvalidInput), "got %v", err)
	})

	t.Run("fallback policy substitutes default participants", func(t *testing.T) {
		store := newTestStore(t)
		svc := NewSplitService(store, config.SplitSection{
			OnSessionLookupFailure: config.LookupDefaultParticipants,
			DefaultParticipants:    []string{"user::x", "user::y"},
		})

		splits, err := svc.AutoGenerate(ctx, "bill-1", 30.00, "session::missing")
		require.NoError(t, err)
		require.Len(t, splits, 2)
		assert.Equal(t, "user::x", splits[0].UserID)
		assert.Equal(t, 15.00, splits[0].Amount)
	})
}

func TestManualCreateVerbatim(t *testing.T) {
	store := newTestStore(t)
	svc := NewSplitService(store, config.SplitSection{OnSessionLookupFailure: config.LookupFail})

	entries := []ManualSplitEntry{
		{UserID: "user::a", Amount: 30.00, Items: []string{"Steak"}},
		{UserID: "user::b", Amount: 10.00},
	}
	splits, err := svc.ManualCreate(context.Background(), "bill-1", entries)
	require.NoError(t, err)
	require.Len(t, splits, 2)

	// Amounts are stored exactly as supplied, no total check by default.
	assert.Equal(t, 30.00, splits[0].Amount)
	assert.Equal(t, []string{"Steak"}, splits[0].Items)
	assert.Equal(t, 10.00, splits[1].Amount)
	assert.Equal(t, []string{}, splits[1].Items)
	for _, split := range splits {
		assert.False(t, split.AutoGenerated)
		assert.Equal(t, models.SplitPending, split.ApprovalStatus)
	}
}

func TestManualCreateValidateTotals(t *testing.T) {
	store := newTestStore(t)
	svc := NewSplitService(store, config.SplitSection{
		OnSessionLookupFailure: config.LookupFail,
		ValidateTotals:         true,
	})
	ctx := context.Background()

	require.NoError(t, store.UpsertBill(ctx, &models.Bill{
		BillID:      "bill-1",
		TotalAmount: 40.00,
	}))

	_, err := svc.ManualCreate(ctx, "bill-1", []ManualSplitEntry{
		{UserID: "user::a", Amount: 10.00},
		{UserID: "user::b", Amount: 10.00},
	})
	assert.True(t, apperr.Is(err, apperr.InvalidInput), "got %v", err)

	splits, err := svc.ManualCreate(ctx, "bill-1", []ManualSplitEntry{
		{UserID: "user::a", Amount: 20.00},
		{UserID: "user::b", Amount: 20.00},
	})
	require.NoError(t, err)
	assert.Len(t, splits, 2)
}

func TestApprove(t *testing.T) {
	store := newTestStore(t)
	svc := NewSplitService(store, config.SplitSection{OnSessionLookupFailure: config.LookupFail})
	ctx := context.Background()

	splits, err := svc.ManualCreate(ctx, "bill-1", []ManualSplitEntry{
		{UserID: "user::owner", Amount: 12.34},
	})
	require.NoError(t, err)
	splitID := splits[0].SplitID

	t.Run("non-owner is rejected", func(t *testing.T) {
		_, err := svc.Approve(ctx, splitID, "user::other")
		assert.True(t, apperr.Is(err, apperr.Forbidden), "got %v", err)
	})

	t.Run("owner approves", func(t *testing.T) {
		approved, err := svc.Approve(ctx, splitID, "user::owner")
		require.NoError(t, err)
		assert.Equal(t, models.SplitApproved, approved.ApprovalStatus)
		require.NotNil(t, approved.ApprovedAt)
	})

	t.Run("re-approval is a no-op", func(t *testing.T) {
		first, err := store.GetSplit(ctx, splitID)
		require.NoError(t, err)

		again, err := svc.Approve(ctx, splitID, "user::owner")
		require.NoError(t, err)
		assert.Equal(t, models.SplitApproved, again.ApprovalStatus)
		require.NotNil(t, again.ApprovedAt)
		assert.True(t, again.ApprovedAt.Equal(*first.ApprovedAt), "approval timestamp must not change")
	})

	t.Run("unknown split", func(t *testing.T) {
		_, err := svc.Approve(ctx, "missing", "user::owner")
		assert.True(t, apperr.Is(err, apperr.NotFound), "got %v", err)
	})
}
