package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/zerotabs/backend/internal/apperr"
	"github.com/zerotabs/backend/internal/models"
	"github.com/zerotabs/backend/internal/storage"
)

// PaymentService records payment intents per session and simulates their
// processing. There is no external settlement call and no failure path.
type PaymentService struct {
	store storage.Store
}

// NewPaymentService creates a payment service with the given storage backend.
func NewPaymentService(store storage.Store) *PaymentService {
	return &PaymentService{store: store}
}

// CreatePaymentRequest carries the caller's payment data.
type CreatePaymentRequest struct {
	SessionID    string                      `json:"session_id"`
	VendorID     string                      `json:"vendor_id"`
	TotalAmount  float64                     `json:"total_amount"`
	Currency     string                      `json:"currency"`
	Participants []models.PaymentParticipant `json:"participants"`
}

// Create persists a pending payment for the session.
func (s *PaymentService) Create(ctx context.Context, req CreatePaymentRequest) (*models.Payment, error) {
	participants := req.Participants
	if participants == nil {
		participants = []models.PaymentParticipant{}
	}

	payment := &models.Payment{
		PaymentID:     fmt.Sprintf("payment::%s", uuid.New().String()),
		SessionID:     req.SessionID,
		VendorID:      req.VendorID,
		TotalAmount:   req.TotalAmount,
		Currency:      req.Currency,
		Participants:  participants,
		PaymentStatus: models.PaymentPending,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.store.UpsertPayment(ctx, payment); err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to persist payment", err)
	}

	slog.Info("Payment created", "payment_id", payment.PaymentID, "session_id", payment.SessionID)
	return payment, nil
}

// Process flips the payment to processed and stamps the time. Settlement is
// simulated, so processing succeeds unconditionally once the payment exists.
func (s *PaymentService) Process(ctx context.Context, paymentID string) (*models.Payment, error) {
	payment, err := s.store.GetPayment(ctx, paymentID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperr.Wrap(apperr.NotFound, "payment not found", err)
		}
		return nil, apperr.Wrap(apperr.Internal, "failed to load payment", err)
	}

	now := time.Now().UTC()
	payment.PaymentStatus = models.PaymentProcessed
	payment.ProcessedAt = &now
	if err := s.store.UpsertPayment(ctx, payment); err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to persist payment", err)
	}

	slog.Info("Payment processed", "payment_id", paymentID)
	return payment, nil
}

// ListBySession returns every payment recorded against the session.
func (s *PaymentService) ListBySession(ctx context.Context, sessionID string) ([]*models.Payment, error) {
	payments, err := s.store.ListPaymentsBySession(ctx, sessionID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to list payments", err)
	}
	return payments, nil
}
