package main

import (
	"context"
	"seoeval/internal/config"
	"seoeval/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateCommand constructs the 'migrate' subcommand that brings the configured
// database to the latest version. PostgreSQL also gets the River tables.
func migrateCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrates database to the latest version",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			if cfg.Storage.Driver == config.DriverSQLite {
				// sqlite.Open migrates
				_, closeStrg := getSQLite(ctx, cfg)
				closeStrg()
				logger.Info(ctx, "sqlite database is up to date", zap.String("path", cfg.SQLitePath()))

				return
			}

			pgsql, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			if err := pgsql.Migrate(ctx); err != nil {
				logger.Fatal(ctx, "could not migrate pgsql", zap.Error(err))
			}
			logger.Info(ctx, "postgres database is up to date")
		},
	}

	return cmd
}
