// Package sqlstore implements the evaluation storage on top of database/sql
// and goqu. The PostgreSQL and SQLite backends embed Store and differ only in
// the goqu dialect and in how the connection is opened.
package sqlstore

import (
	"context"
	"database/sql"

	"github.com/doug-martin/goqu/v9"
)

const (
	scanResultsTable = "scan_results"
	issuesTable      = "issues"
)

// DB defines the subset of database/sql methods used by the backends. Both
// *sql.DB and *sql.Tx satisfy this interface, allowing the same code paths to be
// used within and outside transactions.
type DB interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// Builder abstracts the minimal subset of goqu methods used to construct
// queries. Both a goqu database handle and a transaction handle implement it.
type Builder interface {
	From(table ...interface{}) *goqu.SelectDataset
	Insert(table interface{}) *goqu.InsertDataset
	Update(table interface{}) *goqu.UpdateDataset
}

// Store implements storage.EvaluationStorage.
type Store struct {
	// DB is the underlying executor. It is either a *sql.DB (when not in a
	// transaction) or a *sql.Tx (when inside a transaction).
	DB DB
	// Builder is the goqu handle used to construct SQL queries bound to DB.
	Builder Builder
}

// New returns a Store issuing queries in the given goqu dialect.
func New(dialect string, db *sql.DB) Store {
	return Store{
		DB:      db,
		Builder: goqu.Dialect(dialect).DB(db),
	}
}

// NewTx returns a Store bound to tx.
func NewTx(dialect string, tx *sql.Tx) Store {
	return Store{
		DB:      tx,
		Builder: goqu.NewTx(dialect, tx),
	}
}
