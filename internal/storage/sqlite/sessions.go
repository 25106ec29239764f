package sqlite

import (
	"context"

	"github.com/zerotabs/backend/internal/models"
)

// GetSession retrieves a session by document key.
func (s *SQLiteStore) GetSession(ctx context.Context, key string) (*models.Session, error) {
	session := &models.Session{}
	if err := s.get(ctx, "sessions", key, session); err != nil {
		return nil, err
	}
	return session, nil
}

// UpsertSession writes the session document under session.SessionID.
func (s *SQLiteStore) UpsertSession(ctx context.Context, session *models.Session) error {
	return s.upsert(ctx, "sessions", session.SessionID, session)
}

// ListSessions returns every session.
func (s *SQLiteStore) ListSessions(ctx context.Context) ([]*models.Session, error) {
	return scanInto[models.Session](s, ctx, "sessions", "", "")
}
