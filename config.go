package sslint

import (
	"os"
	"runtime"

	"github.com/yacobolo/sslint/internal/csslint"
	"github.com/yacobolo/sslint/internal/preprocess"
	"github.com/yacobolo/sslint/internal/reconcile"
)

// Config holds linting configuration. It is treated as immutable once a
// Linter is built.
type Config struct {
	Ruleset csslint.Ruleset // nil = every rule as a warning
	Imports []string        // imported files (glob patterns) whose findings are kept
	WorkDir string          // base for relative paths (default: working directory)
	Jobs    int             // files linted in parallel (default: NumCPU)

	Less preprocess.Options
	Sass preprocess.Options

	// Compilers overrides the compiler used per preprocessor kind.
	Compilers map[reconcile.Kind]preprocess.Compiler

	// Output
	PrintIssuedLines bool // Show source lines with issues (default: true in CLI)
	PrintRuleID      bool // Show (rule-id) suffix
	UseColors        bool // Force color output
	Quiet            bool // Only print when errors are present
}

// withDefaults fills unset fields without touching c.
func (c Config) withDefaults() Config {
	if c.WorkDir == "" {
		if wd, err := os.Getwd(); err == nil {
			c.WorkDir = wd
		}
	}
	if c.Jobs <= 0 {
		c.Jobs = runtime.NumCPU()
	}
	if c.Ruleset == nil {
		c.Ruleset = csslint.DefaultRuleset()
	}
	return c
}
