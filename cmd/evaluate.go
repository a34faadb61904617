package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"seoeval/internal/checks"
	"seoeval/internal/config"
	"seoeval/internal/evaluator"
	"seoeval/internal/report"
	"seoeval/pkg/domain"
	"seoeval/pkg/logger"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	formatMarkdown = "markdown"
	formatLog      = "log"
)

// scanFlags reads and normalizes the --domain and --date flags.
func scanFlags(cmd *cobra.Command) (string, string, error) {
	rawDomain, _ := cmd.Flags().GetString("domain")
	dateOfScan, _ := cmd.Flags().GetString("date")

	domainName, err := evaluator.NormalizeDomain(rawDomain)
	if err != nil {
		return "", "", err
	}

	return domainName, dateOfScan, nil
}

func addScanFlags(cmd *cobra.Command) {
	cmd.Flags().String("domain", "", "Crawled domain, e.g. example.com")
	cmd.Flags().String("date", "", "Date of the scan, e.g. 2024-05-01")
	cmd.Flags().String("format", formatMarkdown, "Output format: markdown or log")
	_ = cmd.MarkFlagRequired("domain")
	_ = cmd.MarkFlagRequired("date")
}

// evaluateCommand runs an evaluation in the foreground and prints the report.
// With --enqueue it schedules a background job instead (postgres only).
func evaluateCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "evaluate",
		Short:        "Evaluates a scan and prints the report",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			domainName, dateOfScan, err := scanFlags(cmd)
			if err != nil {
				return err
			}
			format, _ := cmd.Flags().GetString("format")
			if format != formatMarkdown && format != formatLog {
				return fmt.Errorf("unknown format %q", format)
			}
			enqueue, _ := cmd.Flags().GetBool("enqueue")
			if enqueue && cfg.Storage.Driver != config.DriverPostgres {
				return errors.New("--enqueue requires the postgres storage driver")
			}

			strg, closeStrg := getEvaluationStorage(ctx, cfg)
			defer closeStrg()

			ev := evaluator.New(strg, checks.New(), evaluator.NewOptions(cfg))

			if enqueue {
				inserted, err := ev.Enqueue(ctx, domainName, dateOfScan)
				if err != nil {
					return err
				}
				logger.Info(ctx, "evaluation enqueued",
					zap.String("domain", domainName),
					zap.String("dateOfScan", dateOfScan),
					zap.Bool("inserted", inserted))

				return nil
			}

			summary, runErr := ev.Run(ctx, domainName, dateOfScan)
			if summary == nil {
				return runErr
			}

			if err := printSummary(ctx, format, summary); err != nil {
				return err
			}

			return runErr
		},
	}

	addScanFlags(cmd)
	cmd.Flags().Bool("enqueue", false, "Schedule a background evaluation instead of running it")

	return cmd
}

func printSummary(ctx context.Context, format string, summary *evaluator.Summary) error {
	if format == formatMarkdown {
		return report.WriteMarkdown(os.Stdout, report.FromSummary(summary))
	}

	for _, o := range summary.Outcomes {
		if o.Err != nil {
			logger.Error(ctx, "url failed", zap.String("urlId", o.URLID), zap.Error(o.Err))

			continue
		}
		logger.Info(ctx, "url evaluated",
			zap.String("urlId", o.URLID),
			zap.Int("issues", o.Bundle.Count()))
	}

	return nil
}

// issuesCommand prints the stored issues of a scan without re-evaluating it.
func issuesCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "issues",
		Short:        "Prints the stored issues of a scan",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			domainName, dateOfScan, err := scanFlags(cmd)
			if err != nil {
				return err
			}
			format, _ := cmd.Flags().GetString("format")

			strg, closeStrg := getEvaluationStorage(ctx, cfg)
			defer closeStrg()

			ev := evaluator.New(strg, checks.New(), evaluator.NewOptions(cfg))
			issues, err := ev.Issues(ctx, domainName, dateOfScan)
			if err != nil {
				return err
			}

			r := report.FromIssues(domain.ResolveConfig(domainName, dateOfScan), issues)
			switch format {
			case formatMarkdown:
				return report.WriteMarkdown(os.Stdout, r)
			case formatLog:
				for _, p := range r.Pages {
					logger.Info(ctx, "url issues", zap.String("urlId", p.URLID), zap.Int("issues", p.Bundle.Count()))
				}

				return nil
			default:
				return fmt.Errorf("unknown format %q", format)
			}
		},
	}

	addScanFlags(cmd)

	return cmd
}
