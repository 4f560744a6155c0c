package persistence

import (
	"context"
	"database/sql"
	"errors"

	"pjeseza-web/domain/repository"
)

type sessionStore struct {
	db *sql.DB
}

// NewSessionStore creates the database-backed key-value store the session
// usecase persists through.
func NewSessionStore(db *sql.DB) repository.ISessionStore {
	return &sessionStore{db: db}
}

func (s *sessionStore) Get(ctx context.Context, key string) (string, error) {
	stmt, err := s.db.PrepareContext(ctx, "SELECT value FROM kv_session WHERE key = ?")
	if err != nil {
		return "", err
	}
	defer stmt.Close()

	var value string
	err = stmt.QueryRowContext(ctx, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", repository.ErrKeyNotFound
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

func (s *sessionStore) Set(ctx context.Context, key, value string) error {
	stmt, err := s.db.PrepareContext(ctx, `
INSERT INTO kv_session (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(ctx, key, value)
	return err
}

func (s *sessionStore) Clear(ctx context.Context, key string) error {
	stmt, err := s.db.PrepareContext(ctx, "DELETE FROM kv_session WHERE key = ?")
	if err != nil {
		return err
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(ctx, key)
	return err
}
