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

// SessionService creates sessions, adds participants and enforces the
// open/closed state machine.
type SessionService struct {
	store storage.Store
}

// NewSessionService creates a session service with the given storage backend.
func NewSessionService(store storage.Store) *SessionService {
	return &SessionService{store: store}
}

// Create opens a new session with the creator as sole participant.
func (s *SessionService) Create(ctx context.Context, vendorID, name, createdBy string) (*models.Session, error) {
	session := &models.Session{
		SessionID:    fmt.Sprintf("session::%s", uuid.New().String()),
		SessionName:  name,
		VendorID:     vendorID,
		CreatedBy:    createdBy,
		Status:       models.SessionOpen,
		Participants: []string{createdBy},
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.store.UpsertSession(ctx, session); err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to persist session", err)
	}

	slog.Info("Session created", "session_id", session.SessionID, "created_by", createdBy)
	return session, nil
}

// Join adds userID to the session's participants. Joining is idempotent: a
// user already present is not added again, and the session is persisted only
// when it actually changed. Closed sessions reject joins.
func (s *SessionService) Join(ctx context.Context, sessionID, userID string) (*models.Session, error) {
	session, err := s.get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if session.Status != models.SessionOpen {
		return nil, apperr.New(apperr.InvalidState, "session is closed")
	}

	if !session.HasParticipant(userID) {
		session.Participants = append(session.Participants, userID)
		if err := s.store.UpsertSession(ctx, session); err != nil {
			return nil, apperr.Wrap(apperr.Internal, "failed to persist session", err)
		}
		slog.Info("User joined session", "session_id", sessionID, "user_id", userID)
	}

	return session, nil
}

// Close marks the session closed. Only the creator may close it. Closing an
// already-closed session is a no-op.
func (s *SessionService) Close(ctx context.Context, sessionID, requestedBy string) (*models.Session, error) {
	session, err := s.get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if session.CreatedBy != requestedBy {
		return nil, apperr.New(apperr.Forbidden, "only the session creator can close it")
	}
	if session.Status == models.SessionClosed {
		return session, nil
	}

	session.Status = models.SessionClosed
	if err := s.store.UpsertSession(ctx, session); err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to persist session", err)
	}

	slog.Info("Session closed", "session_id", sessionID)
	return session, nil
}

// Get retrieves a session by id.
func (s *SessionService) Get(ctx context.Context, sessionID string) (*models.Session, error) {
	return s.get(ctx, sessionID)
}

// List returns every session.
func (s *SessionService) List(ctx context.Context) ([]*models.Session, error) {
	sessions, err := s.store.ListSessions(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to list sessions", err)
	}
	return sessions, nil
}

func (s *SessionService) get(ctx context.Context, sessionID string) (*models.Session, error) {
	session, err := s.store.GetSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperr.Wrap(apperr.NotFound, "session not found", err)
		}
		return nil, apperr.Wrap(apperr.Internal, "failed to load session", err)
	}
	return session, nil
}
