package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yacobolo/sslint"
	"github.com/yacobolo/sslint/internal/csslint"
	"github.com/yacobolo/sslint/internal/discover"
)

var lintCmd = &cobra.Command{
	Use:   "lint [file|dir|glob]...",
	Short: "Lint stylesheets (default command)",
	Long: `Lint .css, .less and .scss files. Directories are walked recursively and
.gitignore is honored; glob patterns such as "web/**/*.less" are expanded.`,
	RunE: runLint,
}

func init() {
	addLintFlags(lintCmd.Flags())
}

// addLintFlags registers the lint flags on fs. They are shared by the root
// command and `sslint lint`.
func addLintFlags(f *pflag.FlagSet) {
	f.StringP("format", "f", "", "Output format: issues|compact|json|checkstyle")
	f.IntP("jobs", "j", 0, "Files linted in parallel (0 = number of CPUs)")
	f.StringSlice("errors", nil, "Rule ids to report as errors")
	f.StringSlice("warnings", nil, "Rule ids to report as warnings")
	f.StringSlice("ignore", nil, "Rule ids to ignore")
	f.StringSlice("exclude", nil, "Files, directories or patterns to skip")
	f.StringSlice("imports", nil, "Imported files (glob patterns) whose findings are reported")
	f.Bool("no-gitignore", false, "Do not honor .gitignore when walking directories")
	f.Bool("print-lines", true, "Show source lines with issues")
	f.Bool("print-rule-id", true, "Show (rule-id) suffix on issues")
	f.String("less-binary", "", "lessc executable (default: lessc)")
	f.StringSlice("less-include-path", nil, "Extra lessc include paths")
	f.String("sass-binary", "", "sass executable (default: sass)")
	f.StringSlice("sass-include-path", nil, "Extra sass load paths")
}

func runLint(cmd *cobra.Command, args []string) error {
	format, ok := sslint.DetermineOutputFormat(getString("format", ""))
	if !ok {
		return &ExitError{
			Code: sslint.ExitReadFailure,
			Err:  fmt.Errorf("unknown format %q, expected one of %v", getString("format", ""), sslint.OutputFormats),
		}
	}

	files, stats, err := discover.Files(args, buildDiscoverOptions())
	if err != nil {
		return &ExitError{Code: sslint.ExitReadFailure, Err: fmt.Errorf("finding files: %w", err)}
	}
	slog.Debug("discovered files", "files", stats.Discovered, "skipped", stats.Skipped)

	if len(files) == 0 {
		return &ExitError{Code: sslint.ExitReadFailure, Err: errors.New("no files specified")}
	}

	config := buildConfig()
	if unknown := csslint.UnknownRules(config.Ruleset); len(unknown) > 0 {
		slog.Warn("unknown rule ids", "rules", unknown)
	}
	if invalid := invalidPatterns(config.Imports); len(invalid) > 0 {
		slog.Warn("invalid import patterns never match", "patterns", invalid)
	}

	result := sslint.Run(cmd.Context(), config, files)
	sslint.WriteOutput(cmd.OutOrStdout(), result, format, config)

	if code := result.ExitCode(); code != sslint.ExitOK {
		return &ExitError{Code: code}
	}
	return nil
}
