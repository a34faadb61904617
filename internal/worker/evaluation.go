package worker

import (
	"context"
	"errors"
	"fmt"
	"seoeval/internal/evaluator"
	"seoeval/pkg/logger"
	"seoeval/pkg/serrors"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// EvaluationWorker is a River worker running one evaluation per job.
//
// Issue bundles are upserted, so a retried job re-evaluates the whole scan
// and overwrites what the previous attempt stored. Jobs with invalid
// arguments are canceled; any other failure, including a partial one, is
// returned so River retries it with backoff.
type EvaluationWorker struct {
	river.WorkerDefaults[evaluator.JobArgs]

	evaluator evaluator.Evaluator
	// timeout bounds a single attempt. Zero keeps River's default.
	timeout time.Duration
}

// NewEvaluationWorker constructs an EvaluationWorker running jobs through ev.
func NewEvaluationWorker(ev evaluator.Evaluator, timeout time.Duration) *EvaluationWorker {
	return &EvaluationWorker{
		evaluator: ev,
		timeout:   timeout,
	}
}

// Timeout implements river.Worker.
func (w *EvaluationWorker) Timeout(*river.Job[evaluator.JobArgs]) time.Duration {
	return w.timeout
}

// Work evaluates the scan named by the job arguments.
func (w *EvaluationWorker) Work(ctx context.Context, job *river.Job[evaluator.JobArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.Int("attempt", job.Attempt),
		zap.String("domain", job.Args.Domain),
		zap.String("dateOfScan", job.Args.DateOfScan))

	summary, err := w.evaluator.Run(ctx, job.Args.Domain, job.Args.DateOfScan)
	if err != nil {
		if errors.Is(err, serrors.ErrBadRequest) {
			logger.Warn(ctx, "canceling evaluation with invalid arguments", zap.Error(err))

			return river.JobCancel(err) //nolint: wrapcheck
		}

		logger.Error(ctx, "evaluation failed", zap.Error(err))

		return fmt.Errorf("could not evaluate scan: %w", err)
	}

	logger.Info(ctx, "evaluation job done",
		zap.Int("urls", len(summary.Outcomes)),
		zap.Int("issues", summary.IssueCount()))

	return nil
}
