package ratelimit

import (
	"os"
	"strconv"
	"time"
)

// Config holds rate limiting configuration. Optimization runs are the
// only expensive operation, so a single limit applies to all clients.
type Config struct {
	Enabled         bool
	Limit           int           // Requests per window
	Window          time.Duration // Refill window
	Burst           int           // Bucket capacity
	CleanupInterval time.Duration // Idle bucket eviction period
}

// DefaultConfig returns the built-in rate limiting defaults.
func DefaultConfig() *Config {
	return &Config{
		Enabled:         true,
		Limit:           30,
		Window:          time.Minute,
		Burst:           10,
		CleanupInterval: 5 * time.Minute,
	}
}

// LoadConfig reads rate limiting configuration from environment
// variables, falling back to defaults.
func LoadConfig() *Config {
	cfg := DefaultConfig()
	cfg.Enabled = getEnvBool("RATE_LIMIT_ENABLED", cfg.Enabled)
	if !cfg.Enabled {
		return cfg
	}
	cfg.Limit = getEnvInt("RATE_LIMIT_LIMIT", cfg.Limit)
	cfg.Window = getEnvDuration("RATE_LIMIT_WINDOW", cfg.Window)
	cfg.Burst = getEnvInt("RATE_LIMIT_BURST", cfg.Burst)
	cfg.CleanupInterval = getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", cfg.CleanupInterval)
	if cfg.Burst <= 0 {
		cfg.Burst = cfg.Limit
	}
	return cfg
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
