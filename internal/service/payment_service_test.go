package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zerotabs/backend/internal/apperr"
	"github.com/zerotabs/backend/internal/models"
)

func TestPaymentLifecycle(t *testing.T) {
	store := newTestStore(t)
	svc := NewPaymentService(store)
	ctx := context.Background()

	payment, err := svc.Create(ctx, CreatePaymentRequest{
		SessionID:   "session::s1",
		VendorID:    "vendor_001",
		TotalAmount: 45.50,
		Currency:    "USD",
		Participants: []models.PaymentParticipant{
			{UserID: "user::a", Amount: 22.75},
			{UserID: "user::b", Amount: 22.75},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, models.PaymentPending, payment.PaymentStatus)
	assert.Nil(t, payment.ProcessedAt)
	assert.Contains(t, payment.PaymentID, "payment::")

	processed, err := svc.Process(ctx, payment.PaymentID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentProcessed, processed.PaymentStatus)
	require.NotNil(t, processed.ProcessedAt)

	payments, err := svc.ListBySession(ctx, "session::s1")
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, models.PaymentProcessed, payments[0].PaymentStatus)
}

func TestPaymentProcessUnknown(t *testing.T) {
	store := newTestStore(t)
	svc := NewPaymentService(store)

	_, err := svc.Process(context.Background(), "payment::missing")
	assert.True(t, apperr.Is(err, apperr.NotFound), "got %v", err)
}
