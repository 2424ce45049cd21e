// Package cli implements the codereview command-line interface.
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Config is the CLI configuration, loaded from an optional YAML file.
type Config struct {
	// DefaultFormat is the report format used when --format is not given.
	DefaultFormat string `yaml:"default_format"`

	// DefaultLanguage is the tag used when neither --language nor the
	// file extension resolves one.
	DefaultLanguage string `yaml:"default_language"`

	// MaxCodeSize is the per-file size cap in bytes before truncation.
	MaxCodeSize int `yaml:"max_code_size"`

	// Extensions maps file extensions to language tags, overriding the
	// built-in table.
	Extensions map[string]string `yaml:"extensions"`

	// LogLevel sets the zap level (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns the built-in CLI defaults.
func DefaultConfig() *Config {
	return &Config{
		DefaultFormat:   "text",
		DefaultLanguage: "generic",
		MaxCodeSize:     100000,
		LogLevel:        "warn",
	}
}

// LoadConfig loads the CLI configuration from a YAML file with environment
// variable substitution. References use ${VAR} or ${VAR:-default}. When no
// config file exists the defaults are returned.
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	filePath := resolveConfigPath(configPath)
	if filePath == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal([]byte(expandEnvVars(string(data))), cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return cfg, nil
}

func resolveConfigPath(configPath string) string {
	if configPath != "" {
		return configPath
	}

	defaults := []string{
		".codereview.yaml",
		filepath.Join(os.Getenv("HOME"), ".codereview", "config.yaml"),
	}

	for _, path := range defaults {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

var envVarPattern = regexp.MustCompile(`\$\{([a-zA-Z_][a-zA-Z0-9_]*)(?::-([^}]*))?\}`)

// expandEnvVars expands ${VAR} and ${VAR:-default} references.
func expandEnvVars(input string) string {
	return envVarPattern.ReplaceAllStringFunc(input, func(match string) string {
		submatches := envVarPattern.FindStringSubmatch(match)
		if len(submatches) < 2 {
			return match
		}

		varName := submatches[1]
		defaultVal := ""
		if len(submatches) >= 3 {
			defaultVal = submatches[2]
		}

		if val, ok := os.LookupEnv(varName); ok && val != "" {
			return val
		}
		return defaultVal
	})
}
