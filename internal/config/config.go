package config

import (
	"log/slog"
	"os"
	"time"
)

// Config holds runtime configuration for the narration API.
type Config struct {
	Port        string
	Environment string
	LogLevel    slog.Level
	RedisURL    string

	// StateTTL bounds how long per-session presentation state is kept.
	StateTTL time.Duration
}

const (
	defaultPort     = "8080"
	defaultEnv      = "development"
	defaultRedisURL = "redis://localhost:6379"
	defaultStateTTL = 24 * time.Hour
)

// Load reads configuration from the environment, applying defaults
// for anything unset.
func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", defaultPort),
		Environment: getEnv("ENVIRONMENT", defaultEnv),
		LogLevel:    parseLogLevel(getEnv("LOG_LEVEL", "info")),
		RedisURL:    getEnv("REDIS_URL", defaultRedisURL),
		StateTTL:    parseDuration(getEnv("STATE_TTL", ""), defaultStateTTL),
	}
}

// IsProduction returns true when running in the production environment.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
