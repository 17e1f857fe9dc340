package sslint

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// OutputFormat selects how results are written.
type OutputFormat string

// Output formats
const (
	OutputIssues     OutputFormat = "issues"     // golangci-lint style with source lines
	OutputCompact    OutputFormat = "compact"    // one line per issue
	OutputJSON       OutputFormat = "json"       // structured export
	OutputCheckstyle OutputFormat = "checkstyle" // XML for CI annotations
)

// OutputFormats lists every supported format.
var OutputFormats = []OutputFormat{OutputIssues, OutputCompact, OutputJSON, OutputCheckstyle}

// DetermineOutputFormat maps a --format value to an OutputFormat. Unknown
// values fall back to the default with ok false.
func DetermineOutputFormat(formatFlag string) (OutputFormat, bool) {
	switch strings.ToLower(strings.TrimSpace(formatFlag)) {
	case "", "issues", "text":
		return OutputIssues, true
	case "compact":
		return OutputCompact, true
	case "json":
		return OutputJSON, true
	case "checkstyle", "checkstyle-xml":
		return OutputCheckstyle, true
	default:
		return OutputIssues, false
	}
}

// WriteOutput writes the lint result in the specified format. With
// config.Quiet nothing is written unless the run has errors.
func WriteOutput(w io.Writer, result *Result, format OutputFormat, config Config) {
	if config.Quiet && !result.HasErrors() {
		return
	}

	switch format {
	case OutputCompact:
		WriteCompact(w, result)

	case OutputJSON:
		if err := WriteJSON(w, result); err != nil {
			slog.Error("writing JSON", "error", err)
		}

	case OutputCheckstyle:
		if err := WriteCheckstyle(w, result); err != nil {
			slog.Error("writing checkstyle", "error", err)
		}

	default:
		reporter := NewReporter(w, config)
		reporter.PrintResult(result)
		reporter.PrintSummary(result)
	}
}

// WriteCompact prints one line per issue:
//
//	file: line 3, col 5, Warning - message (rule)
func WriteCompact(w io.Writer, result *Result) {
	for _, fr := range result.Files {
		if fr.Err != nil {
			fmt.Fprintf(w, "sslint: %s\n", fr.Err.Error())
			continue
		}
		if len(fr.Issues) == 0 {
			fmt.Fprintf(w, "%s: Lint Free!\n", fr.Path)
			continue
		}
		for _, issue := range fr.Issues {
			severity := capitalize(issue.Severity)
			if issue.Pos.Line <= 0 {
				fmt.Fprintf(w, "%s: %s - %s (%s)\n", issue.Pos.Filename, severity, issue.Text, issue.FromLinter)
				continue
			}
			fmt.Fprintf(w, "%s: line %d, col %d, %s - %s (%s)\n",
				issue.Pos.Filename, issue.Pos.Line, issue.Pos.Column, severity, issue.Text, issue.FromLinter)
		}
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
