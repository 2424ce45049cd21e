// Package config handles application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/code-mentor/analysis/internal/domain"
)

// Config holds all application configuration.
type Config struct {
	// Server configuration
	Server ServerConfig

	// Analysis pipeline configuration
	Analysis AnalysisConfig
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	// Port is the HTTP port to listen on.
	Port string

	// ReadTimeout is the maximum duration for reading the entire request.
	ReadTimeout time.Duration

	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
}

// AnalysisConfig contains analysis pipeline settings.
type AnalysisConfig struct {
	// MaxCodeSize is the submission size in bytes beyond which the source
	// is truncated before analysis.
	MaxCodeSize int

	// DefaultLanguage is the language tag assumed when a request omits one.
	DefaultLanguage string
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnvOrDefault("PORT", "8080"),
			ReadTimeout:  getDurationOrDefault("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout: getDurationOrDefault("SERVER_WRITE_TIMEOUT", 30*time.Second),
		},
		Analysis: AnalysisConfig{
			MaxCodeSize:     getIntOrDefault("MAX_CODE_SIZE", 100000), // ~100KB
			DefaultLanguage: getEnvOrDefault("DEFAULT_LANGUAGE", "javascript"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Analysis.MaxCodeSize < 1000 {
		return fmt.Errorf("%w: MAX_CODE_SIZE must be at least 1000 bytes", domain.ErrInvalidConfig)
	}

	if c.Analysis.DefaultLanguage == "" {
		return fmt.Errorf("%w: DEFAULT_LANGUAGE must not be empty", domain.ErrInvalidConfig)
	}

	if c.Server.ReadTimeout < time.Second || c.Server.WriteTimeout < time.Second {
		return fmt.Errorf("%w: server timeouts must be at least 1 second", domain.ErrInvalidConfig)
	}

	return nil
}

// Helper functions for reading environment variables

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getIntOrDefault(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

func getDurationOrDefault(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		// Plain integers are treated as seconds (e.g. "15")
		if secs, err := strconv.Atoi(val); err == nil {
			return time.Duration(secs) * time.Second
		}
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}
