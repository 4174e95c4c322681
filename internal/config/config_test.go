package config_test

import (
	"fanvote/internal/config"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, "environment: production\n"))
	require.NoError(t, err)

	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, ":8080", cfg.HTTP.Addr)
	require.Equal(t, "/metrics", cfg.HTTP.MetricsPath)
	require.Equal(t, "fanvote", cfg.Database.DatabaseName)
	require.Equal(t, "redis://localhost:6379/0", cfg.Redis.URL)
	require.Equal(t, uint64(5), cfg.Voting.MaxConflictRetries)
	require.Equal(t, 10*time.Millisecond, cfg.Voting.RetryBaseDelay)
	require.Equal(t, 12, cfg.Codes.Length)
	require.Equal(t, 30*24*time.Hour, cfg.Codes.DefaultTTL)
	require.Equal(t, 20, cfg.Worker.MaxWorkers)
	require.Equal(t, 10*time.Second, cfg.GracefulShutdownTimeout)
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := writeConfig(t, `
environment: development
redis:
  url: redis://cache:6379/1
  keyPrefix: fv
voting:
  maxConflictRetries: 2
  initialBudget: 3
codes:
  length: 8
worker:
  maxWorkers: 4
`)
	t.Setenv("VOTING_RETRY_BASE_DELAY", "25ms")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	require.Equal(t, "redis://cache:6379/1", cfg.Redis.URL)
	require.Equal(t, "fv", cfg.Redis.KeyPrefix)
	require.Equal(t, uint64(2), cfg.Voting.MaxConflictRetries)
	require.Equal(t, int64(3), cfg.Voting.InitialBudget)
	require.Equal(t, 25*time.Millisecond, cfg.Voting.RetryBaseDelay)
	require.Equal(t, 8, cfg.Codes.Length)
	require.Equal(t, 4, cfg.Worker.MaxWorkers)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
}
