package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigArgs(t *testing.T) {
	tests := map[string]struct {
		args []string
		want []string
	}{
		"short flag":      {args: []string{"-c", "prod.yml", "serve"}, want: []string{"-c", "prod.yml"}},
		"long flag":       {args: []string{"evaluate", "--config", "a.yml", "--domain", "x"}, want: []string{"-c", "a.yml"}},
		"equals form":     {args: []string{"--config=b.yml", "migrate"}, want: []string{"-c", "b.yml"}},
		"short equals":    {args: []string{"-c=c.yml"}, want: []string{"-c", "c.yml"}},
		"absent":          {args: []string{"evaluate", "--domain", "example.com"}, want: nil},
		"dangling option": {args: []string{"serve", "-c"}, want: nil},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, tt.want, configArgs(tt.args))
		})
	}
}

func TestLoadConfig_MissingFileFallsBackToEnv(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "sqlite")

	cfg, err := loadConfig(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)
	require.Equal(t, "sqlite", cfg.Storage.Driver)
}

func TestLoadConfig_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("environment: production\nlogLevel: warn\n"), 0o600))

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, "warn", cfg.LogLevel)
}
