// Package storage defines the core storage interfaces that the application relies on.
// It abstracts persistence operations and transaction management so that different
// backends (PostgreSQL for the service, SQLite for local runs) can provide
// concrete implementations.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import "context"

// EvaluationStorage is everything an evaluation run reads and writes: the scan
// data source and the issue sink.
type EvaluationStorage interface {
	ScanResultStorage
	IssueStorage
}

// AllStorage is a composite interface that includes all domain-specific storage
// capabilities required by the service.
type AllStorage interface {
	EvaluationStorage
	JobStorage
}

// TxStorage describes a storage handle that operates within a database
// transaction. It exposes the same domain-specific capabilities as AllStorage,
// and additionally allows committing or rolling back the ongoing transaction.
// Implementations should become unusable after Commit or Rollback is called.
type TxStorage interface {
	AllStorage

	// Commit finalizes the transaction, persisting all changes.
	Commit() error
	// Rollback aborts the transaction, discarding all uncommitted changes.
	Rollback() error
}

// Storage describes a non-transactional storage handle with the ability to
// start transactions. It exposes domain-specific capabilities and lifecycle
// management such as Close.
type Storage interface {
	AllStorage

	// Close releases any resources held by the storage implementation (e.g. the
	// underlying connection pool). After Close, the instance should not be used.
	Close() error

	// Begin starts a new transaction and returns a TxStorage that can be used to
	// perform further operations within that transaction.
	Begin(ctx context.Context) (TxStorage, error)

	Transactor
}

// LocalStorage is a storage handle without a job queue, used by the command
// line tools when running against a local database file.
type LocalStorage interface {
	EvaluationStorage

	// Close releases the underlying database handle.
	Close() error
}
