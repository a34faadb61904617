// Package sqlite provides a file backed implementation of
// storage.LocalStorage for running evaluations without a PostgreSQL server.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"seoeval"
	"seoeval/pkg/storage"
	"seoeval/pkg/storage/sqlstore"
	"strings"
	"time"

	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3"
	_ "modernc.org/sqlite"
)

const dialect = "sqlite3"

// Options configures Open.
type Options struct {
	// Path is the database file. Its directory is created when missing.
	Path string
	// BusyTimeout is how long a statement waits for a lock before failing.
	BusyTimeout time.Duration
}

// SQLite implements storage.LocalStorage on a single SQLite file.
type SQLite struct {
	sqlstore.Store

	db *sql.DB
}

var _ storage.LocalStorage = (*SQLite)(nil)

// Open opens (creating if needed) the database at opts.Path and applies the
// embedded migrations.
func Open(ctx context.Context, opts Options) (*SQLite, error) {
	path := strings.TrimSpace(opts.Path)
	if path == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}
	path = filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("could not create database directory: %w", err)
	}

	busy := opts.BusyTimeout
	if busy <= 0 {
		busy = 5 * time.Second
	}
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(%d)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)",
		path, busy.Milliseconds())

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("could not open sqlite db: %w", err)
	}
	// one writer at a time; concurrent issue submissions queue on the pool
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()

		return nil, fmt.Errorf("could not ping sqlite db: %w", err)
	}

	if err := seoeval.MigrateUp(ctx, db, dialect); err != nil {
		_ = db.Close()

		return nil, err //nolint: wrapcheck
	}

	return &SQLite{
		Store: sqlstore.New(dialect, db),
		db:    db,
	}, nil
}

// Close closes the database handle.
func (s *SQLite) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("could not close sqlite db: %w", err)
	}

	return nil
}
