package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/zerotabs/backend/internal/apperr"
	"github.com/zerotabs/backend/internal/models"
	"github.com/zerotabs/backend/internal/storage"
)

// BillService records bills against a session and, unless manual splitting
// is requested, delegates split materialization to the split engine.
type BillService struct {
	store  storage.Store
	splits *SplitService
}

// NewBillService creates a bill service backed by the given store and split
// engine.
func NewBillService(store storage.Store, splits *SplitService) *BillService {
	return &BillService{store: store, splits: splits}
}

// CreateBillRequest carries the caller's bill data.
type CreateBillRequest struct {
	SessionID   string        `json:"session_id"`
	VendorID    string        `json:"vendor_id"`
	TotalAmount float64       `json:"total_amount"`
	Currency    string        `json:"currency"`
	Items       []models.Item `json:"items"`
	ManualSplit bool          `json:"manual_split"`
}

// Create persists the bill unconditionally, then either auto-generates
// splits immediately or leaves them for an explicit manual-split call — a
// strict two-phase protocol. The caller-supplied total is trusted: it is
// never validated against the item sum.
func (s *BillService) Create(ctx context.Context, req CreateBillRequest) (*models.Bill, []*models.Split, error) {
	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}
	items := req.Items
	if items == nil {
		items = []models.Item{}
	}

	bill := &models.Bill{
		BillID:       uuid.New().String(),
		SessionID:    req.SessionID,
		VendorID:     req.VendorID,
		TotalAmount:  req.TotalAmount,
		Currency:     currency,
		Items:        items,
		AIValidation: false,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.store.UpsertBill(ctx, bill); err != nil {
		return nil, nil, apperr.Wrap(apperr.Internal, "failed to persist bill", err)
	}
	slog.Info("Bill created",
		"bill_id", bill.BillID,
		"session_id", bill.SessionID,
		"total", bill.TotalAmount,
		"manual_split", req.ManualSplit,
	)

	if req.ManualSplit {
		return bill, []*models.Split{}, nil
	}

	splits, err := s.splits.AutoGenerate(ctx, bill.BillID, bill.TotalAmount, bill.SessionID)
	if err != nil {
		return nil, nil, err
	}
	return bill, splits, nil
}

// Get retrieves a bill by id.
func (s *BillService) Get(ctx context.Context, billID string) (*models.Bill, error) {
	bill, err := s.store.GetBill(ctx, billID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperr.Wrap(apperr.NotFound, "bill not found", err)
		}
		return nil, apperr.Wrap(apperr.Internal, "failed to load bill", err)
	}
	return bill, nil
}

// ListBySession returns every bill recorded against the session.
func (s *BillService) ListBySession(ctx context.Context, sessionID string) ([]*models.Bill, error) {
	bills, err := s.store.ListBillsBySession(ctx, sessionID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to list bills", err)
	}
	return bills, nil
}
