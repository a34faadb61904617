package postgres_test

import (
	"context"
	"database/sql"
	"seoeval/internal/evaluator"
	"seoeval/pkg/storage/postgres"
	"testing"

	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivertest"
	"github.com/stretchr/testify/require"
)

func migrateRiver(t *testing.T, pg *postgres.PgSQL) {
	t.Helper()
	require.NoError(t, pg.Migrate(t.Context()))
}

func TestPgSQL_AddJob_WithinTransaction_UsesTxPath(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	migrateRiver(t, pg)

	ctx := context.Background()

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	defer func() { _ = txStorage.Rollback() }()

	args := evaluator.JobArgs{Domain: "example.com", DateOfScan: "2024-05-01"}
	added, err := txStorage.AddJob(ctx, args, nil)
	require.NoError(t, err)
	require.True(t, added)
	rivertest.RequireInsertedTx[*riverdatabasesql.Driver](
		ctx,
		t,
		txStorage.(*postgres.PgSQL).DB.(*sql.Tx),
		&evaluator.JobArgs{},
		nil,
	)
}

func TestPgSQL_AddJob_OutsideTransaction_SkipsDuplicates(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	migrateRiver(t, pg)

	ctx := context.Background()
	args := evaluator.JobArgs{Domain: "example.com", DateOfScan: "2024-05-01"}

	added, err := pg.AddJob(ctx, args, nil)
	require.NoError(t, err)
	require.True(t, added)
	rivertest.RequireInserted[*riverdatabasesql.Driver](
		ctx,
		t,
		riverdatabasesql.New(pg.DB.(*sql.DB)),
		&evaluator.JobArgs{},
		nil,
	)

	added, err = pg.AddJob(ctx, args, nil)
	require.NoError(t, err)
	require.False(t, added)

	added, err = pg.AddJob(ctx, evaluator.JobArgs{Domain: "example.com", DateOfScan: "2024-05-02"}, nil)
	require.NoError(t, err)
	require.True(t, added)
}
