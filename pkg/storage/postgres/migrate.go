package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"seoeval"
	"seoeval/pkg/logger"

	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
	"go.uber.org/zap"
)

// Migrate brings the evaluation tables and the River job tables up to date.
func (p *PgSQL) Migrate(ctx context.Context) error {
	db, ok := p.DB.(*sql.DB)
	if !ok {
		return fmt.Errorf("could not migrate inside a transaction")
	}

	if err := seoeval.MigrateUp(ctx, db, dialect); err != nil {
		return err //nolint: wrapcheck
	}

	migrator, err := rivermigrate.New(riverdatabasesql.New(db), &rivermigrate.Config{
		Logger: logger.Slog(ctx),
	})
	if err != nil {
		return fmt.Errorf("could not create river migrator: %w", err)
	}

	res, err := migrator.Migrate(ctx, rivermigrate.DirectionUp, nil)
	if err != nil {
		return fmt.Errorf("could not migrate river tables: %w", err)
	}
	for _, v := range res.Versions {
		logger.Info(ctx, "river migration applied", zap.Int("version", v.Version), zap.Duration("took", v.Duration))
	}

	return nil
}
