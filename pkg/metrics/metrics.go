// Package metrics declares the instruments recorded by the evaluation pipeline.
package metrics

import (
	"fmt"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60} //nolint: gochecknoglobals

// Evaluation groups the instruments recorded by evaluation runs.
type Evaluation struct {
	// URLsEvaluated counts URLs whose issue bundle was stored.
	URLsEvaluated metric.Int64Counter
	// URLsFailed counts URLs whose checks or storage failed.
	URLsFailed metric.Int64Counter
	// RunDuration records the wall time of whole runs in seconds.
	RunDuration metric.Float64Histogram
}

// NewEvaluation creates the evaluation instruments on meter.
func NewEvaluation(meter metric.Meter) (*Evaluation, error) {
	evaluated, err := meter.Int64Counter("seoeval.urls.evaluated",
		metric.WithDescription("URLs whose issue bundle was stored"))
	if err != nil {
		return nil, fmt.Errorf("could not create evaluated counter: %w", err)
	}

	failed, err := meter.Int64Counter("seoeval.urls.failed",
		metric.WithDescription("URLs whose checks or storage failed"))
	if err != nil {
		return nil, fmt.Errorf("could not create failed counter: %w", err)
	}

	duration, err := meter.Float64Histogram("seoeval.run.duration",
		metric.WithDescription("Duration of evaluation runs"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create duration histogram: %w", err)
	}

	return &Evaluation{
		URLsEvaluated: evaluated,
		URLsFailed:    failed,
		RunDuration:   duration,
	}, nil
}

// NewNoopEvaluation returns instruments that record nothing.
func NewNoopEvaluation() *Evaluation {
	m, _ := NewEvaluation(noop.NewMeterProvider().Meter("noop"))

	return m
}
