package sqlite

import (
	"context"

	"github.com/zerotabs/backend/internal/models"
)

// GetBill retrieves a bill by document key.
func (s *SQLiteStore) GetBill(ctx context.Context, key string) (*models.Bill, error) {
	bill := &models.Bill{}
	if err := s.get(ctx, "bills", key, bill); err != nil {
		return nil, err
	}
	return bill, nil
}

// UpsertBill writes the bill document under bill.BillID.
func (s *SQLiteStore) UpsertBill(ctx context.Context, bill *models.Bill) error {
	return s.upsert(ctx, "bills", bill.BillID, bill)
}

// ListBillsBySession returns every bill recorded against the session.
func (s *SQLiteStore) ListBillsBySession(ctx context.Context, sessionID string) ([]*models.Bill, error) {
	return scanInto[models.Bill](s, ctx, "bills", "session_id", sessionID)
}
