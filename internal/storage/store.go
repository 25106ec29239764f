// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/zerotabs/backend/internal/models"
)

// ErrNotFound is returned when the addressed document does not exist.
// Every other store error is fatal to the caller; no retries are performed.
var ErrNotFound = errors.New("document not found")

// Store defines the record-store operations the services need. Each entity
// lives in its own collection, addressed by a string key, with get-by-key,
// upsert and field-equality scans. Writes are last-writer-wins per document;
// there are no cross-document transactions.
//
// The abstraction allows swapping storage backends (SQLite, Couchbase, etc.)
// without changing the service layer.
type Store interface {
	// GetUser retrieves a user by document key ("user::<email>").
	GetUser(ctx context.Context, key string) (*models.User, error)
	// UpsertUser writes the user document under user.UserID.
	UpsertUser(ctx context.Context, user *models.User) error
	// FindUserByEmail scans the users collection by the email field.
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)

	GetSession(ctx context.Context, key string) (*models.Session, error)
	UpsertSession(ctx context.Context, session *models.Session) error
	ListSessions(ctx context.Context) ([]*models.Session, error)

	GetBill(ctx context.Context, key string) (*models.Bill, error)
	UpsertBill(ctx context.Context, bill *models.Bill) error
	ListBillsBySession(ctx context.Context, sessionID string) ([]*models.Bill, error)

	GetSplit(ctx context.Context, key string) (*models.Split, error)
	UpsertSplit(ctx context.Context, split *models.Split) error
	ListSplitsByBill(ctx context.Context, billID string) ([]*models.Split, error)

	GetPayment(ctx context.Context, key string) (*models.Payment, error)
	UpsertPayment(ctx context.Context, payment *models.Payment) error
	ListPaymentsBySession(ctx context.Context, sessionID string) ([]*models.Payment, error)

	GetVendor(ctx context.Context, key string) (*models.Vendor, error)
	UpsertVendor(ctx context.Context, vendor *models.Vendor) error

	// Close releases any resources held by the store.
	Close() error
}
