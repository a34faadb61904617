// Package worker runs background evaluations queued in River.
package worker

import (
	"context"
	"fmt"
	"seoeval/internal/evaluator"
	"seoeval/pkg/logger"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
)

// Options configure the River client started by Start.
type Options struct {
	// MaxWorkers is the number of jobs processed concurrently.
	MaxWorkers int
	// JobTimeout bounds one evaluation attempt.
	JobTimeout time.Duration
}

// Start registers the evaluation worker and starts a River client on dbPool.
// The caller stops it with Client.Stop.
func Start(ctx context.Context,
	dbPool *pgxpool.Pool,
	ev evaluator.Evaluator,
	options Options) (*river.Client[pgx.Tx], error) {
	workers := river.NewWorkers()
	if err := river.AddWorkerSafely(workers, NewEvaluationWorker(ev, options.JobTimeout)); err != nil {
		return nil, fmt.Errorf("could not register evaluation worker: %w", err)
	}

	maxWorkers := options.MaxWorkers
	if maxWorkers <= 0 {
		maxWorkers = 1
	}

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: maxWorkers},
		},
		Workers: workers,
		Logger:  logger.Slog(ctx),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
