package main

import (
	"context"
	"seoeval/internal/config"
	"seoeval/pkg/logger"
	"seoeval/pkg/storage"
	"seoeval/pkg/storage/postgres"
	"seoeval/pkg/storage/sqlite"

	"go.uber.org/zap"
)

// getPostgres creates a PostgreSQL client using configuration values and returns it
// along with a cleanup function to close the connection pool.
func getPostgres(ctx context.Context, cfg *config.Config) (*postgres.PgSQL, func()) {
	pgsql, err := postgres.New(ctx, postgres.Options{
		Username:           cfg.Database.Username,
		Password:           cfg.Database.Password,
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		Database:           cfg.Database.DatabaseName,
		ConnMaxLifetime:    cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime:    cfg.Database.ConnMaxIdleTime,
		MaxOpenConnections: cfg.Database.MaxOpenConnections,
		MaxIdleConnections: cfg.Database.MaxIdleConnections,
		SslMode:            cfg.Database.SslMode,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create postgres storage", zap.Error(err))
	}

	return pgsql, func() {
		logger.Info(ctx, "closing postgres client...")
		if err = pgsql.Close(); err != nil {
			logger.Warn(ctx, "could not close postgres connection", zap.Error(err))
		}
	}
}

// getSQLite opens the local SQLite database. Migrations are applied on open.
func getSQLite(ctx context.Context, cfg *config.Config) (*sqlite.SQLite, func()) {
	path := cfg.SQLitePath()
	db, err := sqlite.Open(ctx, sqlite.Options{
		Path:        path,
		BusyTimeout: cfg.Storage.SQLiteBusyTimeout,
	})
	if err != nil {
		logger.Fatal(ctx, "could not open sqlite storage", zap.String("path", path), zap.Error(err))
	}

	return db, func() {
		if err := db.Close(); err != nil {
			logger.Warn(ctx, "could not close sqlite database", zap.Error(err))
		}
	}
}

// getEvaluationStorage opens the storage selected by the configured driver.
func getEvaluationStorage(ctx context.Context, cfg *config.Config) (storage.EvaluationStorage, func()) {
	if cfg.Storage.Driver == config.DriverSQLite {
		return getSQLite(ctx, cfg)
	}

	return getPostgres(ctx, cfg)
}
