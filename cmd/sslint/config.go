package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yacobolo/sslint"
	"github.com/yacobolo/sslint/internal/csslint"
	"github.com/yacobolo/sslint/internal/discover"
	"github.com/yacobolo/sslint/internal/preprocess"
)

var k = koanf.New(".")

// flagKeys maps flag names to their config file keys. Flags not listed use
// their own name.
var flagKeys = map[string]string{
	"errors":            "lint.errors",
	"warnings":          "lint.warnings",
	"ignore":            "lint.ignore",
	"exclude":           "lint.exclude",
	"imports":           "lint.imports",
	"no-gitignore":      "lint.no-gitignore",
	"print-lines":       "lint.print-lines",
	"print-rule-id":     "lint.print-rule-id",
	"less-binary":       "less.binary",
	"less-include-path": "less.include-paths",
	"sass-binary":       "sass.binary",
	"sass-include-path": "sass.include-paths",
}

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = defaultConfigFile
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// Only flags that were explicitly set, under their config key.
	fs := cmd.Flags()
	if err := k.Load(posflag.ProviderWithFlag(fs, ".", k, func(f *pflag.Flag) (string, interface{}) {
		if !f.Changed || f.Name == "config" {
			return "", nil
		}
		return flagKey(f.Name), posflag.FlagVal(fs, f)
	}), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("SSLINT_", ".", envKey), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// envKey maps an environment variable to a config key:
//
//	SSLINT_FORMAT           -> format
//	SSLINT_LINT_ERRORS      -> lint.errors
//	SSLINT_LINT_PRINT_LINES -> lint.print-lines
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, "SSLINT_"))
	key = strings.Replace(key, "_", ".", 1)
	return strings.ReplaceAll(key, "_", "-")
}

func flagKey(name string) string {
	if key, ok := flagKeys[name]; ok {
		return key
	}
	return name
}

// buildConfig constructs the library's Config from koanf state.
func buildConfig() sslint.Config {
	return sslint.Config{
		Ruleset: csslint.GatherRules(
			getStrings("lint.errors"),
			getStrings("lint.warnings"),
			getStrings("lint.ignore"),
		),
		Imports: getStrings("lint.imports"),
		Jobs:    getInt("jobs", 0),
		Less: preprocess.Options{
			Binary:       getString("less.binary", ""),
			IncludePaths: getStrings("less.include-paths"),
		},
		Sass: preprocess.Options{
			Binary:       getString("sass.binary", ""),
			IncludePaths: getStrings("sass.include-paths"),
		},
		PrintIssuedLines: getBool("lint.print-lines", true),
		PrintRuleID:      getBool("lint.print-rule-id", true),
		UseColors:        getBool("color", false),
		Quiet:            getBool("quiet", false),
	}
}

func buildDiscoverOptions() discover.Options {
	return discover.Options{
		Exclude:     getStrings("lint.exclude"),
		NoGitignore: getBool("lint.no-gitignore", false),
	}
}

// invalidPatterns returns the doublestar patterns that can never match.
func invalidPatterns(patterns []string) []string {
	var invalid []string
	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			invalid = append(invalid, p)
		}
	}
	return invalid
}

func getString(key, defaultVal string) string {
	if v := k.String(key); v != "" {
		return v
	}
	return defaultVal
}

// getStrings accepts both lists and comma-separated strings, the form list
// values take in environment variables.
func getStrings(key string) []string {
	raw, ok := k.Get(key).(string)
	if !ok {
		if v := k.Strings(key); len(v) > 0 {
			return v
		}
		return nil
	}

	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getBool(key string, defaultVal bool) bool {
	if k.Exists(key) {
		return k.Bool(key)
	}
	return defaultVal
}

func getInt(key string, defaultVal int) int {
	if k.Exists(key) {
		return k.Int(key)
	}
	return defaultVal
}
