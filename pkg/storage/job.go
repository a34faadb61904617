package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage enqueues River jobs in the same database as the scan data, so an
// import and the evaluation it triggers can commit together.
type JobStorage interface {
	// AddJob inserts a job. It reports false when River skipped the insert
	// because an equivalent unique job is already queued or running.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}

// Transactor runs a callback inside a transaction, committing when it returns
// nil and rolling back otherwise.
type Transactor interface {
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
