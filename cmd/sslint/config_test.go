package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/knadh/koanf/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/sslint/internal/csslint"
)

// resetKoanf creates a fresh koanf instance for each test.
func resetKoanf() {
	k = koanf.New(".")
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".sslint.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestConfigFileLoading(t *testing.T) {
	resetKoanf()

	configPath := writeConfig(t, `
format: compact
verbose: true
jobs: 4

lint:
  errors: [ids, important]
  ignore:
    - floats
  imports:
    - "styles/_*.scss"
  print-lines: false

less:
  binary: /opt/less/bin/lessc
  include-paths: [vendor/less]
`)
	require.NoError(t, loadConfigFromPath(configPath))

	assert.Equal(t, "compact", k.String("format"))
	assert.True(t, k.Bool("verbose"))

	config := buildConfig()
	assert.Equal(t, 4, config.Jobs)
	assert.Equal(t, csslint.Error, config.Ruleset["ids"])
	assert.Equal(t, csslint.Error, config.Ruleset["important"])
	assert.Equal(t, csslint.Ignore, config.Ruleset["floats"])
	assert.Equal(t, csslint.Warning, config.Ruleset["zero-units"])
	assert.Equal(t, []string{"styles/_*.scss"}, config.Imports)
	assert.False(t, config.PrintIssuedLines)
	assert.Equal(t, "/opt/less/bin/lessc", config.Less.Binary)
	assert.Equal(t, []string{"vendor/less"}, config.Less.IncludePaths)
	assert.Empty(t, config.Sass.Binary)
}

func TestConfigFileNotFound_UsesDefaults(t *testing.T) {
	resetKoanf()

	require.NoError(t, loadConfigFromPath("/nonexistent/.sslint.yaml"))

	config := buildConfig()
	assert.Equal(t, csslint.DefaultRuleset(), config.Ruleset)
	assert.Equal(t, 0, config.Jobs)
	assert.True(t, config.PrintIssuedLines)
	assert.True(t, config.PrintRuleID)
	assert.False(t, config.Quiet)
	assert.Empty(t, config.Imports)
}

func TestDefaultConfigMatchesDefaults(t *testing.T) {
	resetKoanf()

	require.NoError(t, loadConfigFromPath(writeConfig(t, defaultConfig)))

	config := buildConfig()
	assert.Equal(t, csslint.DefaultRuleset(), config.Ruleset)
	assert.Empty(t, config.Imports)
	assert.Equal(t, "lessc", config.Less.Binary)
	assert.Equal(t, "sass", config.Sass.Binary)
	assert.True(t, config.PrintIssuedLines)
	assert.Empty(t, buildDiscoverOptions().Exclude)
}

func TestEnvVarOverridesConfigFile(t *testing.T) {
	resetKoanf()

	configPath := writeConfig(t, `
format: json
lint:
  print-lines: true
`)

	t.Setenv("SSLINT_FORMAT", "checkstyle")
	t.Setenv("SSLINT_LINT_PRINT_LINES", "false")
	t.Setenv("SSLINT_LINT_WARNINGS", "ids, zero-units")
	t.Setenv("SSLINT_SASS_INCLUDE_PATHS", "node_modules,vendor/scss")

	require.NoError(t, loadConfigFromPath(configPath))

	assert.Equal(t, "checkstyle", k.String("format"))
	config := buildConfig()
	assert.False(t, config.PrintIssuedLines)
	assert.Equal(t, csslint.Ruleset{"ids": csslint.Warning, "zero-units": csslint.Warning}, config.Ruleset)
	assert.Equal(t, []string{"node_modules", "vendor/scss"}, config.Sass.IncludePaths)
}

func TestEnvKey(t *testing.T) {
	tests := map[string]string{
		"SSLINT_FORMAT":             "format",
		"SSLINT_JOBS":               "jobs",
		"SSLINT_LINT_ERRORS":        "lint.errors",
		"SSLINT_LINT_PRINT_LINES":   "lint.print-lines",
		"SSLINT_LESS_INCLUDE_PATHS": "less.include-paths",
	}

	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, envKey(in))
		})
	}
}

func TestFlagKey(t *testing.T) {
	assert.Equal(t, "lint.errors", flagKey("errors"))
	assert.Equal(t, "sass.include-paths", flagKey("sass-include-path"))
	assert.Equal(t, "format", flagKey("format"))
}

func TestInvalidPatterns(t *testing.T) {
	tests := []struct {
		name     string
		patterns []string
		want     []string
	}{
		{name: "none", patterns: nil, want: nil},
		{name: "valid", patterns: []string{"styles/_*.scss", "vendor/**/*.less", "{a,b}.less"}, want: nil},
		{name: "unclosed class", patterns: []string{"styles/*.less", "vendor/["}, want: []string{"vendor/["}},
		{name: "unclosed alternation", patterns: []string{"{a,b.less"}, want: []string{"{a,b.less"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, invalidPatterns(tt.patterns))
		})
	}
}
