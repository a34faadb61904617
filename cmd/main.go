// Package main provides the CLI entrypoint of the SEO evaluation service.
// It wires subcommands (serve, migrate, import, evaluate, issues, jwt), loads
// configuration, and initializes logging and tracing.
package main

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"log"
	"os"
	"seoeval/internal/config"
	"seoeval/pkg/logger"
	"seoeval/pkg/telemetry"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// loadConfig reads configPath, falling back to environment variables and
// defaults when the file does not exist.
func loadConfig(configPath string) (*config.Config, error) {
	if _, err := os.Stat(configPath); errors.Is(err, fs.ErrNotExist) {
		log.Printf("config file %s not found, using environment", configPath)

		return config.LoadEnv()
	}

	return config.Load(configPath)
}

// main sets up the root Cobra command, loads configuration and logging, and
// registers subcommands before executing the CLI.
func main() {
	rootCmd := &cobra.Command{
		Use:   "seoeval",
		Short: "Evaluates crawled domains against SEO rules",
	}

	// there is no way to access flags before command execution in cobra.
	// configPath here is parsed using the standard flags package.
	// following line is just added to prevent errors when Cobra is parsing the flags.
	rootCmd.PersistentFlags().StringP("config", "c", "config.yml", "Config File Path")

	flags := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flags.SetOutput(nopWriter{})
	configPath := flags.String("c", "config.yml", "The config file path")
	_ = flags.Parse(configArgs(os.Args[1:]))

	log.Println("loading config ...")
	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatal("could not load config file: ", err)
	}

	if err := logger.Setup(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatal("could not set up logger: ", err)
	}

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			logger.Sync(ctx)

			panic(p)
		}
	}()

	shutdownTracing, err := telemetry.SetupTracing(ctx, telemetry.TracingOptions{
		Endpoint:    cfg.Tracing.Endpoint,
		ServiceName: "seoeval",
		SampleRatio: cfg.Tracing.SampleRatio,
	})
	if err != nil {
		logger.Fatal(ctx, "could not set up tracing", zap.Error(err))
	}

	rootCmd.AddCommand(
		migrateCommand(cfg),
		serveCommand(cfg),
		importCommand(cfg),
		evaluateCommand(cfg),
		issuesCommand(cfg),
		JWTCommand(cfg),
	)

	err = rootCmd.Execute()

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.GracefulShutdownTimeout)
	if serr := shutdownTracing(shutdownCtx); serr != nil {
		logger.Warn(ctx, "could not flush traces", zap.Error(serr))
	}
	cancel()
	logger.Sync(ctx)
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}

// configArgs extracts the -c/--config flag from args so the standard flag
// package does not choke on subcommands and their flags.
func configArgs(args []string) []string {
	for i, a := range args {
		switch a {
		case "-c", "--config":
			if i+1 < len(args) {
				return []string{"-c", args[i+1]}
			}
		}
		for _, prefix := range []string{"-c=", "--config="} {
			if len(a) > len(prefix) && a[:len(prefix)] == prefix {
				return []string{"-c", a[len(prefix):]}
			}
		}
	}

	return nil
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }
