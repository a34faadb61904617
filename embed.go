// Package seoeval holds assets shared by the binaries of the module.
package seoeval

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"seoeval/pkg/logger"
	"sync"

	"github.com/pressly/goose/v3"
)

// Migrations contains the goose migrations for every supported storage driver,
// under migrations/<driver>.
//
//go:embed migrations
var Migrations embed.FS

// goose keeps its base FS and dialect in package globals.
var gooseMu sync.Mutex //nolint: gochecknoglobals

// migrationDirs maps goose dialects to their directory in Migrations.
var migrationDirs = map[string]string{ //nolint: gochecknoglobals
	"postgres": "migrations/postgres",
	"sqlite3":  "migrations/sqlite",
}

// MigrateUp applies every pending embedded migration of dialect ("postgres"
// or "sqlite3") to db, logging progress through ctx's logger.
func MigrateUp(ctx context.Context, db *sql.DB, dialect string) error {
	dir, ok := migrationDirs[dialect]
	if !ok {
		return fmt.Errorf("no migrations for dialect %q", dialect)
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(Migrations)
	goose.SetLogger(logger.Goose(ctx))
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("could not set goose dialect to %s: %w", dialect, err)
	}
	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("could not apply %s migrations: %w", dialect, err)
	}

	return nil
}
