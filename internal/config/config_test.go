package config_test

import (
	"os"
	"path/filepath"
	"seoeval/internal/config"
	"testing"
	"time"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, "environment: test\n"))
	require.NoError(t, err)

	require.Equal(t, "test", cfg.Environment)
	require.Equal(t, ":8080", cfg.HTTP.Addr)
	require.Equal(t, config.DriverPostgres, cfg.Storage.Driver)
	require.Equal(t, 16, cfg.Evaluator.Concurrency)
	require.Equal(t, 24*time.Hour, cfg.JWT.TTL)
	require.Equal(t, filepath.Join(xdg.DataHome, "seoeval", "seoeval.db"), cfg.SQLitePath())
}

func TestLoad_YAMLOverrides(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, `
storage:
  driver: sqlite
  sqlitePath: /tmp/custom.db
evaluator:
  concurrency: 3
identity:
  apiKey: abc
`))
	require.NoError(t, err)

	require.Equal(t, config.DriverSQLite, cfg.Storage.Driver)
	require.Equal(t, "/tmp/custom.db", cfg.SQLitePath())
	require.Equal(t, 3, cfg.Evaluator.Concurrency)
	require.Equal(t, "abc", cfg.Identity.APIKey)
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	_, err := config.Load(writeConfig(t, "storage:\n  driver: mongo\n"))
	require.Error(t, err)
}

func TestLoad_EnvWins(t *testing.T) {
	t.Setenv("EVALUATOR_CONCURRENCY", "7")

	cfg, err := config.Load(writeConfig(t, "evaluator:\n  concurrency: 3\n"))
	require.NoError(t, err)
	require.Equal(t, 7, cfg.Evaluator.Concurrency)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "sqlite")

	cfg, err := config.LoadEnv()
	require.NoError(t, err)
	require.Equal(t, config.DriverSQLite, cfg.Storage.Driver)
}
