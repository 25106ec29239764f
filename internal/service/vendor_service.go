package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/zerotabs/backend/internal/apperr"
	"github.com/zerotabs/backend/internal/models"
	"github.com/zerotabs/backend/internal/storage"
)

// VendorService manages vendor records. Vendors are keyed by their
// caller-supplied vendor_id.
type VendorService struct {
	store storage.Store
}

// NewVendorService creates a vendor service with the given storage backend.
func NewVendorService(store storage.Store) *VendorService {
	return &VendorService{store: store}
}

// Create persists a vendor document.
func (s *VendorService) Create(ctx context.Context, vendor *models.Vendor) (*models.Vendor, error) {
	if vendor.VendorID == "" {
		return nil, apperr.New(apperr.InvalidInput, "vendor_id required")
	}
	if vendor.CreatedAt.IsZero() {
		vendor.CreatedAt = time.Now().UTC()
	}
	if err := s.store.UpsertVendor(ctx, vendor); err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to persist vendor", err)
	}

	slog.Info("Vendor created", "vendor_id", vendor.VendorID)
	return vendor, nil
}

// Get retrieves a vendor by id.
func (s *VendorService) Get(ctx context.Context, vendorID string) (*models.Vendor, error) {
	vendor, err := s.store.GetVendor(ctx, vendorID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperr.Wrap(apperr.NotFound, "vendor not found", err)
		}
		return nil, apperr.Wrap(apperr.Internal, "failed to load vendor", err)
	}
	return vendor, nil
}
