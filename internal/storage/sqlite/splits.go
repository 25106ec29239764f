package sqlite

import (
	"context"

	"github.com/zerotabs/backend/internal/models"
)

// GetSplit retrieves a split by document key.
func (s *SQLiteStore) GetSplit(ctx context.Context, key string) (*models.Split, error) {
	split := &models.Split{}
	if err := s.get(ctx, "splits", key, split); err != nil {
		return nil, err
	}
	return split, nil
}

// UpsertSplit writes the split document under split.SplitID.
func (s *SQLiteStore) UpsertSplit(ctx context.Context, split *models.Split) error {
	return s.upsert(ctx, "splits", split.SplitID, split)
}

// ListSplitsByBill returns every split derived from the bill.
func (s *SQLiteStore) ListSplitsByBill(ctx context.Context, billID string) ([]*models.Split, error) {
	return scanInto[models.Split](s, ctx, "splits", "bill_id", billID)
}
