package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/zerotabs/backend/internal/apperr"
	"github.com/zerotabs/backend/internal/calculator"
	"github.com/zerotabs/backend/internal/config"
	"github.com/zerotabs/backend/internal/models"
	"github.com/zerotabs/backend/internal/storage"
)

// SplitService is the split engine: it materializes per-user splits from a
// bill, either automatically (equal shares) or from caller-supplied amounts,
// and tracks per-split approval.
type SplitService struct {
	store storage.Store
	cfg   config.SplitSection
}

// NewSplitService creates a split engine with the given storage backend and
// policy configuration.
func NewSplitService(store storage.Store, cfg config.SplitSection) *SplitService {
	return &SplitService{store: store, cfg: cfg}
}

// ManualSplitEntry is one caller-supplied split in a manual split request.
type ManualSplitEntry struct {
	UserID string   `json:"user_id"`
	Amount float64  `json:"amount"`
	Items  []string `json:"items,omitempty"`
}

// AutoGenerate divides totalAmount equally among the session's participants
// and persists one pending split per participant, returned in participant
// order. Each share is rounded to the cent independently; the rounding
// remainder is not redistributed.
//
// Participant resolution is policy-driven: when the session cannot be
// loaded (or no session id was supplied), the configured
// on_session_lookup_failure policy either fails the request or substitutes
// the configured default participant list.
func (s *SplitService) AutoGenerate(ctx context.Context, billID string, totalAmount float64, sessionID string) ([]*models.Split, error) {
	participants, err := s.resolveParticipants(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	share, err := calculator.EqualShare(totalAmount, len(participants))
	if err != nil {
		return nil, apperr.Wrap(apperr.InvalidInput, "cannot generate splits", err)
	}

	splits := make([]*models.Split, 0, len(participants))
	for _, userID := range participants {
		split := &models.Split{
			SplitID:        uuid.New().String(),
			BillID:         billID,
			UserID:         userID,
			Amount:         share,
			Items:          []string{},
			ApprovalStatus: models.SplitPending,
			AutoGenerated:  true,
			CreatedAt:      time.Now().UTC(),
		}
		if err := s.store.UpsertSplit(ctx, split); err != nil {
			return nil, apperr.Wrap(apperr.Internal, "failed to persist split", err)
		}
		splits = append(splits, split)
	}

	slog.Info("Splits auto-generated",
		"bill_id", billID,
		"session_id", sessionID,
		"participants", len(participants),
		"share", share,
	)
	return splits, nil
}

// resolveParticipants loads the session's participant list, applying the
// configured fallback policy on lookup failure.
func (s *SplitService) resolveParticipants(ctx context.Context, sessionID string) ([]string, error) {
	var lookupErr error
	if sessionID == "" {
		lookupErr = errors.New("no session id supplied")
	} else {
		session, err := s.store.GetSession(ctx, sessionID)
		if err == nil {
			if len(session.Participants) > 0 {
				return session.Participants, nil
			}
			lookupErr = errors.New("session has no participants")
		} else {
			lookupErr = err
		}
	}

	if s.cfg.OnSessionLookupFailure == config.LookupDefaultParticipants {
		slog.Warn("Session lookup failed, using default participants",
			"session_id", sessionID, "error", lookupErr)
		return s.cfg.DefaultParticipants, nil
	}

	if errors.Is(lookupErr, storage.ErrNotFound) {
		return nil, apperr.Wrap(apperr.NotFound, "session not found", lookupErr)
	}
	return nil, apperr.Wrap(apperr.InvalidInput, "cannot resolve split participants", lookupErr)
}

// ManualCreate persists one pending split per supplied entry, verbatim.
// Amounts are not checked against the bill total unless the validate_totals
// hook is enabled in config.
func (s *SplitService) ManualCreate(ctx context.Context, billID string, entries []ManualSplitEntry) ([]*models.Split, error) {
	if s.cfg.ValidateTotals {
		if err := s.checkTotals(ctx, billID, entries); err != nil {
			return nil, err
		}
	}

	splits := make([]*models.Split, 0, len(entries))
	for _, entry := range entries {
		items := entry.Items
		if items == nil {
			items = []string{}
		}
		split := &models.Split{
			SplitID:        uuid.New().String(),
			BillID:         billID,
			UserID:         entry.UserID,
			Amount:         entry.Amount,
			Items:          items,
			ApprovalStatus: models.SplitPending,
			AutoGenerated:  false,
			CreatedAt:      time.Now().UTC(),
		}
		if err := s.store.UpsertSplit(ctx, split); err != nil {
			return nil, apperr.Wrap(apperr.Internal, "failed to persist split", err)
		}
		splits = append(splits, split)
	}

	slog.Info("Manual splits created", "bill_id", billID, "count", len(splits))
	return splits, nil
}

// checkTotals verifies that manual split amounts sum to the bill total,
// within per-share rounding tolerance.
func (s *SplitService) checkTotals(ctx context.Context, billID string, entries []ManualSplitEntry) error {
	bill, err := s.store.GetBill(ctx, billID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return apperr.Wrap(apperr.NotFound, "bill not found", err)
		}
		return apperr.Wrap(apperr.Internal, "failed to load bill", err)
	}

	sum := 0.0
	for _, entry := range entries {
		sum += entry.Amount
	}
	if !calculator.WithinRoundingTolerance(sum, bill.TotalAmount, len(entries)) {
		return apperr.Newf(apperr.InvalidInput,
			"split amounts sum to %.2f, bill total is %.2f", sum, bill.TotalAmount)
	}
	return nil
}

// Approve marks the split approved on behalf of userID. Only the split's
// owning user may approve it. Approval is terminal: re-approving an approved
// split is a no-op that returns the stored split unchanged.
func (s *SplitService) Approve(ctx context.Context, splitID, userID string) (*models.Split, error) {
	split, err := s.store.GetSplit(ctx, splitID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperr.Wrap(apperr.NotFound, "split not found", err)
		}
		return nil, apperr.Wrap(apperr.Internal, "failed to load split", err)
	}

	if split.UserID != userID {
		return nil, apperr.New(apperr.Forbidden, "user does not own this split")
	}

	if split.ApprovalStatus == models.SplitApproved {
		return split, nil
	}

	now := time.Now().UTC()
	split.ApprovalStatus = models.SplitApproved
	split.ApprovedAt = &now
	if err := s.store.UpsertSplit(ctx, split); err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to persist split", err)
	}

	slog.Info("Split approved", "split_id", splitID, "user_id", userID)
	return split, nil
}

// ListByBill returns every split derived from the bill.
func (s *SplitService) ListByBill(ctx context.Context, billID string) ([]*models.Split, error) {
	splits, err := s.store.ListSplitsByBill(ctx, billID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to list splits", err)
	}
	return splits, nil
}
