package main

import (
	"context"
	"os"
	"seoeval/internal/config"
	"seoeval/internal/importer"
	"seoeval/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// importCommand loads a crawler export (YAML or JSON) into the configured
// storage. With --enqueue the evaluation job is inserted in the same
// transaction (postgres only).
func importCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Imports a crawler scan export",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			enqueue, _ := cmd.Flags().GetBool("enqueue")

			f, err := os.Open(args[0])
			if err != nil {
				logger.Fatal(ctx, "could not open scan export", zap.String("file", args[0]), zap.Error(err))
			}
			defer f.Close()

			if !enqueue {
				strg, closeStrg := getEvaluationStorage(ctx, cfg)
				defer closeStrg()

				if _, err := importer.New(strg).Import(ctx, f); err != nil {
					logger.Fatal(ctx, "could not import scan export", zap.String("file", args[0]), zap.Error(err))
				}

				return
			}

			if cfg.Storage.Driver != config.DriverPostgres {
				logger.Fatal(ctx, "--enqueue requires the postgres storage driver")
			}
			pgsql, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			_, _, err = importer.New(pgsql).ImportAndEnqueue(ctx, f, pgsql, cfg.Evaluator.JobMaxAttempts)
			if err != nil {
				logger.Fatal(ctx, "could not import scan export", zap.String("file", args[0]), zap.Error(err))
			}
		},
	}

	cmd.Flags().Bool("enqueue", false, "Enqueue an evaluation of the imported scan")

	return cmd
}
