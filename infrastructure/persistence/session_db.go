package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"pjeseza-web/infrastructure/logger"

	_ "modernc.org/sqlite"
)

// NewSessionDB opens (creating if needed) the local session database.
// WAL keeps concurrent reads cheap; busy_timeout avoids spurious lock errors
// when the browser fires parallel requests.
func NewSessionDB(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open session db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA busy_timeout=5000;",
		"PRAGMA foreign_keys=ON;",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", p, err)
		}
	}

	if err := EnsureSessionSchema(context.Background(), db); err != nil {
		_ = db.Close()
		return nil, err
	}

	logger.GetLogger().WithField("path", path).Info("Session database ready")
	return db, nil
}

// EnsureSessionSchema creates the key-value session table when missing.
func EnsureSessionSchema(ctx context.Context, db *sql.DB) error {
	const schema = `
CREATE TABLE IF NOT EXISTS kv_session (
    key        TEXT PRIMARY KEY,
    value      TEXT NOT NULL,
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("ensure session schema: %w", err)
	}
	return nil
}
