package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr               string
	DBPath             string
	LogLevel           string
	RegisterURL        string
	ForwardWorkerCount int
	ForwardQueueSize   int
	AttemptTTLMinutes  int
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying sensible defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	return Config{
		Addr:               envOr("ADDR", ":8080"),
		DBPath:             envOr("DB_PATH", "file:shindan.db"),
		LogLevel:           envOr("LOG_LEVEL", "INFO"),
		RegisterURL:        envOr("MA_REGISTER_URL", ""),
		ForwardWorkerCount: envIntOr("FORWARD_WORKER_COUNT", 2),
		ForwardQueueSize:   envIntOr("FORWARD_QUEUE_SIZE", 32),
		AttemptTTLMinutes:  envIntOr("ATTEMPT_TTL_MINUTES", 120),
	}
}

// Validate checks the configuration and reports every problem at once.
func (c Config) Validate() error {
	var problems []string

	if c.Addr == "" {
		problems = append(problems, "ADDR cannot be empty")
	}
	if c.DBPath == "" {
		problems = append(problems, "DB_PATH cannot be empty")
	}
	switch strings.ToUpper(c.LogLevel) {
	case "DEBUG", "INFO", "WARN", "ERROR":
	default:
		problems = append(problems, fmt.Sprintf("LOG_LEVEL must be one of DEBUG/INFO/WARN/ERROR, got %q", c.LogLevel))
	}
	if c.ForwardWorkerCount <= 0 {
		problems = append(problems, "FORWARD_WORKER_COUNT must be positive")
	}
	if c.ForwardQueueSize <= 0 {
		problems = append(problems, "FORWARD_QUEUE_SIZE must be positive")
	}
	if c.AttemptTTLMinutes <= 0 {
		problems = append(problems, "ATTEMPT_TTL_MINUTES must be positive")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration:\n  %s", strings.Join(problems, "\n  "))
	}
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}
