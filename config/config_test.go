package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/presses/batch"
	"github.com/katalvlaran/presses/config"
	"github.com/katalvlaran/presses/presses"
)

func TestDefault_IsValid(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, presses.DefaultOptions(), cfg.SearchOptions())

	v, err := cfg.DefaultVariant()
	require.NoError(t, err)
	assert.Equal(t, presses.Joltage, v)
}

func TestParse(t *testing.T) {
	t.Parallel()

	cfg, err := config.Parse([]byte(`
variant: lights
workers: 4
policy: fail
search:
  prune: false
  time_limit: 250ms
  max_nodes: 100000
log:
  level: debug
  format: json
server:
  addr: "0.0.0.0:9090"
`))
	require.NoError(t, err)
	assert.Equal(t, "lights", cfg.Variant)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, presses.Options{Prune: false, TimeLimit: 250 * time.Millisecond, MaxNodes: 100000}, cfg.SearchOptions())
	assert.Equal(t, "0.0.0.0:9090", cfg.Server.Addr)
	// Unset keys keep their defaults.
	assert.Equal(t, config.Default().Server.MaxBodyBytes, cfg.Server.MaxBodyBytes)

	bc, err := cfg.Batch(presses.Lights)
	require.NoError(t, err)
	assert.Equal(t, batch.FailOnInfeasible, bc.Policy)
	assert.Equal(t, 4, bc.Workers)
	assert.Equal(t, presses.Lights, bc.Variant)
}

func TestParse_Invalid(t *testing.T) {
	t.Parallel()

	for name, doc := range map[string]string{
		"variant":    "variant: voltage",
		"workers":    "workers: -1",
		"policy":     "policy: ignore",
		"time limit": "search:\n  time_limit: -1s",
		"max nodes":  "search:\n  max_nodes: -5",
		"log level":  "log:\n  level: trace",
		"log format": "log:\n  format: xml",
		"addr":       "server:\n  addr: nowhere",
	} {
		_, err := config.Parse([]byte(doc))
		assert.ErrorIs(t, err, config.ErrInvalidConfig, name)
	}

	_, err := config.Parse([]byte("workers: [1"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	cfg, err := config.Load(filepath.Join(dir, "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default().Policy, cfg.Policy)

	path := filepath.Join(dir, "presses.yaml")
	require.NoError(t, os.WriteFile(path, []byte("workers: 3\nlog:\n  level: warn\n"), 0o600))
	t.Setenv("PRESSES_LOG_LEVEL", "error")

	cfg, err = config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, "error", cfg.Log.Level, "environment wins over the file")

	require.NoError(t, os.WriteFile(path, []byte("policy: maybe\n"), 0o600))
	_, err = config.Load(path)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestApplyEnv(t *testing.T) {
	t.Parallel()

	env := map[string]string{
		"PRESSES_WORKERS":     " 8 ",
		"PRESSES_VARIANT":     "lights",
		"PRESSES_SERVER_ADDR": "localhost:7000",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := config.Default()
	require.NoError(t, cfg.ApplyEnv(lookup))
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, "lights", cfg.Variant)
	assert.Equal(t, "localhost:7000", cfg.Server.Addr)

	env["PRESSES_WORKERS"] = "many"
	assert.ErrorIs(t, cfg.ApplyEnv(lookup), config.ErrInvalidConfig)
}

func TestNewLogger(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Log.Format = "json"
	cfg.Log.Level = "warn"

	var buf bytes.Buffer
	logger := cfg.NewLogger(&buf)
	logger.Info("hidden")
	logger.Warn("shown", "k", 1)

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
	assert.Contains(t, buf.String(), `"k":1`)
}
