package sqlite

import (
	"context"

	"github.com/zerotabs/backend/internal/models"
)

// GetVendor retrieves a vendor by document key.
func (s *SQLiteStore) GetVendor(ctx context.Context, key string) (*models.Vendor, error) {
	vendor := &models.Vendor{}
	if err := s.get(ctx, "vendors", key, vendor); err != nil {
		return nil, err
	}
	return vendor, nil
}

// UpsertVendor writes the vendor document under vendor.VendorID.
func (s *SQLiteStore) UpsertVendor(ctx context.Context, vendor *models.Vendor) error {
	return s.upsert(ctx, "vendors", vendor.VendorID, vendor)
}
