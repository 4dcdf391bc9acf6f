// Package history records successful port resolutions in a local SQLite
// database for the `history` command.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Source records how a port was found.
type Source string

const (
	SourceCache  Source = "cache"
	SourceLog    Source = "log"
	SourceManual Source = "manual"
)

// Resolution is one recorded resolution.
type Resolution struct {
	Port       string
	Source     Source
	ResolvedAt time.Time
}

// DB wraps the resolution history database.
type DB struct {
	db *sql.DB
}

// DefaultPath returns the default history database location, next to the
// port state file.
func DefaultPath() string {
	if stateHome := os.Getenv("XDG_STATE_HOME"); stateHome != "" {
		return filepath.Join(stateHome, "defold-buddy", "history.db")
	}

	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".local", "state", "defold-buddy", "history.db")
	}

	return filepath.Join(os.TempDir(), "defold-buddy-history.db")
}

// Open opens or creates the history database at path. An empty path selects
// the default location.
func Open(ctx context.Context, path string) (*DB, error) {
	if path == "" {
		path = DefaultPath()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("create state directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}

	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS resolutions (
			port TEXT NOT NULL,
			source TEXT NOT NULL,
			resolved_at INTEGER NOT NULL
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create resolutions table: %w", err)
	}

	return &DB{db: db}, nil
}

// Close closes the database.
func (h *DB) Close() error {
	return h.db.Close()
}

// Record inserts one resolution row.
func (h *DB) Record(ctx context.Context, port string, source Source) error {
	_, err := h.db.ExecContext(ctx,
		`INSERT INTO resolutions (port, source, resolved_at) VALUES (?, ?, ?)`,
		port, string(source), time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("record resolution: %w", err)
	}
	return nil
}

// Recent returns up to limit resolutions, newest first.
func (h *DB) Recent(ctx context.Context, limit int) ([]Resolution, error) {
	rows, err := h.db.QueryContext(ctx,
		`SELECT port, source, resolved_at FROM resolutions ORDER BY resolved_at DESC, rowid DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query resolutions: %w", err)
	}
	defer rows.Close()

	var out []Resolution
	for rows.Next() {
		var (
			r  Resolution
			ts int64
		)
		if err := rows.Scan(&r.Port, (*string)(&r.Source), &ts); err != nil {
			return nil, fmt.Errorf("scan resolution: %w", err)
		}
		r.ResolvedAt = time.Unix(ts, 0)
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read resolutions: %w", err)
	}

	return out, nil
}
