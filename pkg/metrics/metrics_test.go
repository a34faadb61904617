package metrics_test

import (
	"context"
	"seoeval/pkg/metrics"
	"testing"

	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestNewEvaluation_RecordsIntoReader(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	m, err := metrics.NewEvaluation(mp.Meter("test"))
	require.NoError(t, err)

	ctx := context.Background()
	m.URLsEvaluated.Add(ctx, 3)
	m.URLsFailed.Add(ctx, 1)
	m.RunDuration.Record(ctx, 0.2)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))
	require.Len(t, rm.ScopeMetrics, 1)

	names := map[string]bool{}
	for _, m := range rm.ScopeMetrics[0].Metrics {
		names[m.Name] = true
	}
	require.True(t, names["seoeval.urls.evaluated"])
	require.True(t, names["seoeval.urls.failed"])
	require.True(t, names["seoeval.run.duration"])
}

func TestNewNoopEvaluation(t *testing.T) {
	m := metrics.NewNoopEvaluation()
	require.NotNil(t, m)
	require.NotPanics(t, func() {
		m.URLsEvaluated.Add(context.Background(), 1)
	})
}
