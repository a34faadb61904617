package evaluator

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"seoeval/internal/config"
	"seoeval/pkg/domain"
	"seoeval/pkg/logger"
	"seoeval/pkg/metrics"
	"seoeval/pkg/serrors"
	"seoeval/pkg/storage"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const tracerName = "seoeval/internal/evaluator"

// Options configure evaluation runs and the background jobs that trigger them.
type Options struct {
	// Concurrency bounds how many URLs of a run are evaluated at once. Zero
	// means one goroutine per URL.
	Concurrency int
	// MaxAttempts is the maximum number of attempts of a background job.
	MaxAttempts int
	// Metrics receives per run counters. Nil disables them.
	Metrics *metrics.Evaluation
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Concurrency: cfg.Evaluator.Concurrency,
		MaxAttempts: cfg.Evaluator.JobMaxAttempts,
	}
}

// evaluator is the concrete implementation of the Evaluator interface.
type evaluator struct {
	options Options
	// storage is both the scan data source and the issue sink.
	storage storage.EvaluationStorage
	checker Checker
}

// New creates an Evaluator reading from and writing to strg. Enqueue is only
// available when strg also implements storage.JobStorage.
func New(strg storage.EvaluationStorage, checker Checker, options Options) Evaluator {
	if options.Metrics == nil {
		options.Metrics = metrics.NewNoopEvaluation()
	}

	return &evaluator{
		options: options,
		storage: strg,
		checker: checker,
	}
}

// Run implements Evaluator.
func (e *evaluator) Run(ctx context.Context, domainName, dateOfScan string) (*Summary, error) {
	started := time.Now()
	attrs := []attribute.KeyValue{
		attribute.String("seoeval.domain", domainName),
		attribute.String("seoeval.date_of_scan", dateOfScan),
	}
	ctx, span := otel.Tracer(tracerName).Start(ctx, "evaluator.Run", trace.WithAttributes(attrs...))
	defer span.End()

	ctx = logger.WithFields(ctx,
		zap.String("runId", uuid.NewString()),
		zap.String("domain", domainName),
		zap.String("dateOfScan", dateOfScan))

	cfg := domain.ResolveConfig(domainName, dateOfScan)

	results, err := e.storage.ScanResults(ctx, cfg.Domain, cfg.DateOfScan)
	if err != nil {
		return nil, e.fetchFailed(ctx, span, serrors.Wrap(ErrFetch, err,
			"could not fetch scan results of %s on %s", cfg.Domain, cfg.DateOfScan))
	}
	dup, err := e.storage.DuplicateContext(ctx, cfg.Domain, cfg.DateOfScan)
	if err != nil {
		return nil, e.fetchFailed(ctx, span, serrors.Wrap(ErrFetch, err,
			"could not fetch duplicate context of %s on %s", cfg.Domain, cfg.DateOfScan))
	}

	ids := results.URLIDs()
	summary := &Summary{
		Config:   cfg,
		Outcomes: make([]URLOutcome, len(ids)),
	}
	logger.Info(ctx, "evaluating scan", zap.Int("urls", len(ids)), zap.Int("indexedPages", dup.Len()))

	// tasks record their outcome in their own slot and never return an error,
	// so one failing URL does not stop the others.
	var g errgroup.Group
	if e.options.Concurrency > 0 {
		g.SetLimit(e.options.Concurrency)
	}
	for i, id := range ids {
		urlCfg := cfg.ForURL(id)
		data := results[id]
		g.Go(func() error {
			summary.Outcomes[i] = e.evaluateURL(ctx, urlCfg, data, dup)

			return nil
		})
	}
	g.Wait() //nolint: errcheck

	failed := len(summary.Failed())
	metricAttrs := metric.WithAttributes(attribute.String("seoeval.domain", cfg.Domain))
	e.options.Metrics.URLsEvaluated.Add(ctx, int64(len(ids)-failed), metricAttrs)
	e.options.Metrics.URLsFailed.Add(ctx, int64(failed), metricAttrs)
	e.options.Metrics.RunDuration.Record(ctx, time.Since(started).Seconds(), metricAttrs)
	span.SetAttributes(attribute.Int("seoeval.urls", len(ids)), attribute.Int("seoeval.urls_failed", failed))

	if err := summary.Err(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "partial failure")
		logger.Warn(ctx, "evaluation finished with failures",
			zap.Int("failed", failed),
			zap.Int("urls", len(ids)),
			zap.Duration("took", time.Since(started)))

		return summary, err
	}

	logger.Info(ctx, "evaluation finished",
		zap.Int("urls", len(ids)),
		zap.Int("issues", summary.IssueCount()),
		zap.Duration("took", time.Since(started)))

	return summary, nil
}

func (e *evaluator) fetchFailed(ctx context.Context, span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, "fetch failed")
	logger.Error(ctx, "could not load scan", zap.Error(err))

	return err
}

// evaluateURL runs the four checks of one URL and stores the bundle when all
// of them succeeded. cfg is the URL's own copy of the run configuration. A
// panicking checker fails the URL with ErrCheck.
func (e *evaluator) evaluateURL(ctx context.Context,
	cfg domain.ScanConfig,
	data domain.URLScanData,
	dup *domain.DuplicateContext) (out URLOutcome) {
	out = URLOutcome{URLID: cfg.URLID}
	ctx = logger.WithFields(ctx, zap.String("urlId", cfg.URLID))

	defer func() {
		rec := recover()
		if rec == nil {
			return
		}

		logger.Error(ctx, "panic while evaluating url",
			zap.String("panic", fmt.Sprint(rec)),
			zap.ByteString("stack", debug.Stack()))
		out = URLOutcome{
			URLID: cfg.URLID,
			Err:   serrors.With(ErrCheck, "checks of %s panicked: %v", cfg.URLID, rec),
		}
	}()

	bundle, err := e.check(ctx, cfg, data, dup)
	if err != nil {
		logger.Warn(ctx, "url checks failed", zap.Error(err))
		out.Err = err

		return out
	}

	if err := e.storage.StoreIssues(ctx, cfg, *bundle); err != nil {
		out.Err = serrors.Wrap(ErrSink, err,
			"could not store issues of %s on %s for %s", cfg.Domain, cfg.DateOfScan, cfg.URLID)
		logger.Warn(ctx, "could not store issues", zap.Error(out.Err))

		return out
	}
	logger.Debug(ctx, "url evaluated", zap.Int("issues", bundle.Count()))

	out.Bundle = bundle

	return out
}

// check awaits the four category checks in order. Every failing category is
// reported; the bundle is only returned when none failed.
func (e *evaluator) check(ctx context.Context,
	cfg domain.ScanConfig,
	data domain.URLScanData,
	dup *domain.DuplicateContext) (*domain.IssueBundle, error) {
	bundle := &domain.IssueBundle{}
	var errs []error
	record := func(category domain.Category, dst *domain.IssueResult, res domain.IssueResult, err error) {
		if err != nil {
			errs = append(errs, serrors.Wrap(ErrCheck, err, "%s check failed for %s", category, cfg.URLID))

			return
		}
		res.Category = category
		*dst = res
	}

	res, err := e.checker.CheckMeta(ctx, cfg.URLID, data.Meta, dup)
	record(domain.CategoryMeta, &bundle.Meta, res, err)
	res, err = e.checker.CheckBody(ctx, data.Body)
	record(domain.CategoryBody, &bundle.Body, res, err)
	res, err = e.checker.CheckSocial(ctx, data.Social)
	record(domain.CategorySocial, &bundle.Social, res, err)
	res, err = e.checker.CheckSchema(ctx, data.Schema)
	record(domain.CategorySchema, &bundle.Schema, res, err)

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return bundle, nil
}

// Enqueue implements Evaluator.
func (e *evaluator) Enqueue(ctx context.Context, domainName, dateOfScan string) (bool, error) {
	if domainName == "" || dateOfScan == "" {
		return false, serrors.With(serrors.ErrBadRequest, "domain and date of scan are required")
	}

	jobs, ok := e.storage.(storage.JobStorage)
	if !ok {
		return false, serrors.With(serrors.ErrUnavailable, "storage has no job queue")
	}

	added, err := jobs.AddJob(ctx, NewJobArgs(domainName, dateOfScan, e.options.MaxAttempts), nil)
	if err != nil {
		return false, fmt.Errorf("could not add evaluation job: %w", err)
	}

	logger.Info(ctx, "evaluation enqueued",
		zap.String("domain", domainName),
		zap.String("dateOfScan", dateOfScan),
		zap.Bool("added", added))

	return added, nil
}

// Issues implements Evaluator.
func (e *evaluator) Issues(ctx context.Context, domainName, dateOfScan string) ([]domain.URLIssues, error) {
	issues, err := e.storage.Issues(ctx, domainName, dateOfScan)
	if err != nil {
		return nil, fmt.Errorf("could not get issues: %w", err)
	}

	return issues, nil
}
