package config_test

import (
	"os"
	"testing"

	"github.com/hmiyata/shindan/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() config.Config {
	return config.Config{
		Addr:               ":8080",
		DBPath:             "test.db",
		LogLevel:           "INFO",
		RegisterURL:        "",
		ForwardWorkerCount: 2,
		ForwardQueueSize:   32,
		AttemptTTLMinutes:  120,
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	err := validConfig().Validate()
	assert.NoError(t, err)
}

func TestValidate_EmptyAddr(t *testing.T) {
	cfg := validConfig()
	cfg.Addr = ""

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ADDR cannot be empty")
}

func TestValidate_EmptyDBPath(t *testing.T) {
	cfg := validConfig()
	cfg.DBPath = ""

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PATH cannot be empty")
}

func TestValidate_BadLogLevel(t *testing.T) {
	cfg := validConfig()
	cfg.LogLevel = "VERBOSE"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LOG_LEVEL")
}

func TestValidate_NonPositiveWorkerSettings(t *testing.T) {
	cfg := validConfig()
	cfg.ForwardWorkerCount = 0
	cfg.ForwardQueueSize = -1
	cfg.AttemptTTLMinutes = 0

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FORWARD_WORKER_COUNT must be positive")
	assert.Contains(t, err.Error(), "FORWARD_QUEUE_SIZE must be positive")
	assert.Contains(t, err.Error(), "ATTEMPT_TTL_MINUTES must be positive")
}

func TestValidate_ReportsAllProblemsAtOnce(t *testing.T) {
	cfg := config.Config{}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ADDR cannot be empty")
	assert.Contains(t, err.Error(), "DB_PATH cannot be empty")
	assert.Contains(t, err.Error(), "LOG_LEVEL")
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"ADDR", "DB_PATH", "LOG_LEVEL", "MA_REGISTER_URL",
		"FORWARD_WORKER_COUNT", "FORWARD_QUEUE_SIZE", "ATTEMPT_TTL_MINUTES",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg := config.Load()

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "file:shindan.db", cfg.DBPath)
	assert.Equal(t, "INFO", cfg.LogLevel)
	assert.Empty(t, cfg.RegisterURL)
	assert.Equal(t, 2, cfg.ForwardWorkerCount)
	assert.Equal(t, 32, cfg.ForwardQueueSize)
	assert.Equal(t, 120, cfg.AttemptTTLMinutes)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ADDR", ":9999")
	t.Setenv("FORWARD_WORKER_COUNT", "8")
	t.Setenv("ATTEMPT_TTL_MINUTES", "not-a-number")

	cfg := config.Load()

	assert.Equal(t, ":9999", cfg.Addr)
	assert.Equal(t, 8, cfg.ForwardWorkerCount)
	// Unparseable values fall back to the default.
	assert.Equal(t, 120, cfg.AttemptTTLMinutes)
}
