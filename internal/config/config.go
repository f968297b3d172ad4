// Package config provides environment-driven configuration for the
// optimizer service.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Rewrite strategy names accepted by REWRITE_STRATEGY.
const (
	StrategyRules = "rules"
	StrategyLLM   = "llm"
)

// Config holds the runtime configuration for the server and CLI.
type Config struct {
	Port            int           // HTTP listen port
	APIKey          string        // Gemini API key (required for the llm strategy)
	RewriteStrategy string        // "rules" or "llm"
	MaxUploadBytes  int64         // Upload size cap, enforced before parsing
	LLMTimeout      time.Duration // Deadline for the external rewrite call
}

// Load reads configuration from the environment, applying defaults for
// unset values. Call Validate before using the result.
func Load() *Config {
	return &Config{
		Port:            getEnvInt("PORT", 8080),
		APIKey:          os.Getenv("GEMINI_API_KEY"),
		RewriteStrategy: getEnvString("REWRITE_STRATEGY", StrategyRules),
		MaxUploadBytes:  int64(getEnvInt("MAX_UPLOAD_BYTES", 5<<20)),
		LLMTimeout:      getEnvDuration("LLM_TIMEOUT", 60*time.Second),
	}
}

// Validate checks that the configuration is internally consistent.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config error: invalid port %d", c.Port)
	}
	switch c.RewriteStrategy {
	case StrategyRules:
	case StrategyLLM:
		if c.APIKey == "" {
			return fmt.Errorf("config error: GEMINI_API_KEY is required when REWRITE_STRATEGY=llm")
		}
	default:
		return fmt.Errorf("config error: unknown rewrite strategy %q", c.RewriteStrategy)
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("config error: MAX_UPLOAD_BYTES must be positive")
	}
	if c.LLMTimeout <= 0 {
		return fmt.Errorf("config error: LLM_TIMEOUT must be positive")
	}
	return nil
}

func getEnvString(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
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
