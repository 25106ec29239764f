package sqlite

import (
	"context"

	"github.com/zerotabs/backend/internal/models"
)

// GetPayment retrieves a payment by document key.
func (s *SQLiteStore) GetPayment(ctx context.Context, key string) (*models.Payment, error) {
	payment := &models.Payment{}
	if err := s.get(ctx, "payments", key, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

// UpsertPayment writes the payment document under payment.PaymentID.
func (s *SQLiteStore) UpsertPayment(ctx context.Context, payment *models.Payment) error {
	return s.upsert(ctx, "payments", payment.PaymentID, payment)
}

// ListPaymentsBySession returns every payment recorded against the session.
func (s *SQLiteStore) ListPaymentsBySession(ctx context.Context, sessionID string) ([]*models.Payment, error) {
	return scanInto[models.Payment](s, ctx, "payments", "session_id", sessionID)
}
