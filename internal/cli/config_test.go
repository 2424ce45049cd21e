package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "text", cfg.DefaultFormat)
	assert.Equal(t, "generic", cfg.DefaultLanguage)
	assert.Equal(t, 100000, cfg.MaxCodeSize)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadConfig_File(t *testing.T) {
	path := writeConfig(t, `
default_format: markdown
default_language: python
max_code_size: 5000
extensions:
  ".pyw": python
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "markdown", cfg.DefaultFormat)
	assert.Equal(t, "python", cfg.DefaultLanguage)
	assert.Equal(t, 5000, cfg.MaxCodeSize)
	assert.Equal(t, "python", cfg.Extensions[".pyw"])
	// Unset keys keep their defaults
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadConfig_EnvExpansion(t *testing.T) {
	t.Setenv("CODEREVIEW_FORMAT", "json")
	path := writeConfig(t, `
default_format: ${CODEREVIEW_FORMAT}
default_language: ${CODEREVIEW_LANG:-java}
log_level: ${CODEREVIEW_UNSET}
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.DefaultFormat)
	assert.Equal(t, "java", cfg.DefaultLanguage)
	assert.Empty(t, cfg.LogLevel)
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "default_format: [unclosed")
	_, err := LoadConfig(path)
	require.Error(t, err)
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("CR_SET", "value")

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "set var", input: "${CR_SET}", want: "value"},
		{name: "set var with default", input: "${CR_SET:-fallback}", want: "value"},
		{name: "unset var", input: "${CR_MISSING}", want: ""},
		{name: "unset var with default", input: "${CR_MISSING:-fallback}", want: "fallback"},
		{name: "no reference", input: "plain text", want: "plain text"},
		{name: "embedded", input: "a ${CR_SET} b", want: "a value b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, expandEnvVars(tt.input))
		})
	}
}
