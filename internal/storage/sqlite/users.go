package sqlite

import (
	"context"

	"github.com/zerotabs/backend/internal/models"
	"github.com/zerotabs/backend/internal/storage"
)

// GetUser retrieves a user by document key.
func (s *SQLiteStore) GetUser(ctx context.Context, key string) (*models.User, error) {
	user := &models.User{}
	if err := s.get(ctx, "users", key, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpsertUser writes the user document under user.UserID.
func (s *SQLiteStore) UpsertUser(ctx context.Context, user *models.User) error {
	return s.upsert(ctx, "users", user.UserID, user)
}

// FindUserByEmail scans the users collection by email.
func (s *SQLiteStore) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	users, err := scanInto[models.User](s, ctx, "users", "email", email)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, storage.ErrNotFound
	}
	return users[0], nil
}
