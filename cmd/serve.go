package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"seoeval/internal/api"
	"seoeval/internal/api/handler/v1handler"
	"seoeval/internal/auth"
	"seoeval/internal/checks"
	"seoeval/internal/config"
	"seoeval/internal/evaluator"
	"seoeval/internal/worker"
	"seoeval/pkg/identity/identitytoolkit"
	"seoeval/pkg/logger"
	"seoeval/pkg/metrics"
	"seoeval/pkg/storage/postgres"
	"seoeval/pkg/telemetry"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// getEvaluationMetrics registers the evaluation instruments with the
// Prometheus registry served on the metrics path.
func getEvaluationMetrics(ctx context.Context) (*metrics.Evaluation, func(context.Context)) {
	provider, err := telemetry.NewMeterProvider(nil)
	if err != nil {
		logger.Fatal(ctx, "could not create meter provider", zap.Error(err))
	}
	m, err := metrics.NewEvaluation(provider.Meter("seoeval"))
	if err != nil {
		logger.Fatal(ctx, "could not create evaluation metrics", zap.Error(err))
	}

	return m, func(ctx context.Context) {
		if err := provider.Shutdown(ctx); err != nil {
			logger.Warn(ctx, "could not stop meter provider", zap.Error(err))
		}
	}
}

func setupServer(ctx context.Context, cfg *config.Config, ev evaluator.Evaluator) func(ctx context.Context) {
	identityClient := identitytoolkit.New(
		&http.Client{Timeout: cfg.Identity.Timeout},
		cfg.Identity.BaseURL,
		cfg.Identity.APIKey,
	)
	tokens, err := auth.NewTokenIssuer(cfg.JWT.PrivateKey, cfg.JWT.TTL)
	if err != nil {
		logger.Fatal(ctx, "could not create token issuer", zap.Error(err))
	}

	server, err := api.NewServer(api.Deps{
		Deps: v1handler.Deps{
			Auth:      auth.New(identityClient),
			Tokens:    tokens,
			Evaluator: ev,
		},
	}, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func setupWorker(ctx context.Context,
	cfg *config.Config,
	pgsql *postgres.PgSQL,
	ev evaluator.Evaluator) func(ctx context.Context) {
	riverClient, err := worker.Start(ctx, pgsql.Pool, ev, worker.Options{
		MaxWorkers: cfg.Worker.MaxWorkers,
		JobTimeout: cfg.Evaluator.JobTimeout,
	})
	if err != nil {
		logger.Fatal(ctx, "could not start workers", zap.Error(err))
	}

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping workers...")
		if err := riverClient.Stop(ctx); err != nil {
			logger.Error(ctx, "could not stop workers", zap.Error(err))
		}
	}
}

// serveCommand starts the HTTP API and the background evaluation workers on
// PostgreSQL.
func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			pgsql, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			evaluationMetrics, stopMetrics := getEvaluationMetrics(ctx)

			options := evaluator.NewOptions(cfg)
			options.Metrics = evaluationMetrics
			ev := evaluator.New(pgsql, checks.New(), options)

			stopWorkers := setupWorker(ctx, cfg, pgsql, ev)
			stopWebserver := setupServer(ctx, cfg, ev)

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
			stopWorkers(shutdownCtx)
			stopMetrics(shutdownCtx)
		},
	}

	return cmd
}
