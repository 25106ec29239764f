// Package sqlite provides a SQLite-backed implementation of the
// storage.Store interface.
//
// Entities are stored as JSON documents, one table per collection with an
// id column and a body column. Field-equality scans use the JSON1
// json_extract function, which keeps the store's contract identical to a
// document database: get-by-key, upsert, scan-by-field.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/zerotabs/backend/internal/storage"
)

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

// connectTimeout bounds the startup readiness check.
const connectTimeout = 5 * time.Second

// SQLiteStore implements storage.Store using SQLite document tables.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLiteStore with the given database path. It creates the
// parent directories, runs migrations and verifies the connection is ready.
// Pass ":memory:" for an in-memory database (tests).
func New(dbPath string) (*SQLiteStore, error) {
	if dbPath != ":memory:" {
		dir := filepath.Dir(dbPath)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("database not ready: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// get loads the document stored under key in the collection and unmarshals
// it into out.
func (s *SQLiteStore) get(ctx context.Context, collection, key string, out any) error {
	var body []byte
	err := s.db.QueryRowContext(ctx,
		fmt.Sprintf("SELECT body FROM %s WHERE id = ?", collection),
		key,
	).Scan(&body)
	if err == sql.ErrNoRows {
		return storage.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to get %s/%s: %w", collection, key, err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode %s/%s: %w", collection, key, err)
	}
	return nil
}

// upsert writes doc under key in the collection, replacing any prior value
// (last writer wins).
func (s *SQLiteStore) upsert(ctx context.Context, collection, key string, doc any) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode %s/%s: %w", collection, key, err)
	}
	_, err = s.db.ExecContext(ctx,
		fmt.Sprintf(
			"INSERT INTO %s (id, body) VALUES (?, ?) ON CONFLICT(id) DO UPDATE SET body = excluded.body",
			collection,
		),
		key, body,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert %s/%s: %w", collection, key, err)
	}
	return nil
}

// scanWhere returns the raw bodies of every document in the collection whose
// top-level field equals value. An empty field scans the whole collection.
func (s *SQLiteStore) scanWhere(ctx context.Context, collection, field, value string) ([][]byte, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if field == "" {
		rows, err = s.db.QueryContext(ctx,
			fmt.Sprintf("SELECT body FROM %s ORDER BY id", collection),
		)
	} else {
		rows, err = s.db.QueryContext(ctx,
			fmt.Sprintf("SELECT body FROM %s WHERE json_extract(body, ?) = ? ORDER BY id", collection),
			"$."+field, value,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", collection, err)
	}
	defer rows.Close()

	var bodies [][]byte
	for rows.Next() {
		var body []byte
		if err := rows.Scan(&body); err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", collection, err)
		}
		bodies = append(bodies, body)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate %s: %w", collection, err)
	}
	return bodies, nil
}

// scanInto decodes every matching document into a slice of T.
func scanInto[T any](s *SQLiteStore, ctx context.Context, collection, field, value string) ([]*T, error) {
	bodies, err := s.scanWhere(ctx, collection, field, value)
	if err != nil {
		return nil, err
	}
	out := make([]*T, 0, len(bodies))
	for _, body := range bodies {
		doc := new(T)
		if err := json.Unmarshal(body, doc); err != nil {
			return nil, fmt.Errorf("failed to decode %s document: %w", collection, err)
		}
		out = append(out, doc)
	}
	return out, nil
}
