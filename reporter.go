package sslint

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// Reporter prints results in golangci-lint style.
type Reporter struct {
	w           io.Writer
	useColors   bool
	printLines  bool
	printRuleID bool
}

// NewReporter creates a new reporter with the given configuration
func NewReporter(w io.Writer, config Config) *Reporter {
	return &Reporter{
		w:           w,
		useColors:   shouldUseColors(config),
		printLines:  config.PrintIssuedLines,
		printRuleID: config.PrintRuleID,
	}
}

// shouldUseColors determines if colors should be enabled
func shouldUseColors(config Config) bool {
	if config.UseColors {
		return true
	}

	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}

	if fileInfo, err := os.Stdout.Stat(); err == nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		return true
	}

	return false
}

// PrintResult prints every file in input order: its failure, or its issues
// in reconciled order.
func (r *Reporter) PrintResult(result *Result) {
	for _, fr := range result.Files {
		if fr.Err != nil {
			r.printFailure(fr.Err)
			continue
		}
		for _, issue := range fr.Issues {
			r.printIssue(issue)
		}
	}
}

func (r *Reporter) printFailure(err *FileError) {
	fmt.Fprintf(r.w, "%s %s\n",
		RenderStyle(StyleRed, "sslint:", r.useColors),
		err.Error())
}

// printIssue formats a single issue in golangci-lint style
func (r *Reporter) printIssue(issue Issue) {
	// Format: file:line:col: message (rule)
	location := fmt.Sprintf("%s:%d:%d:", issue.Pos.Filename, issue.Pos.Line, issue.Pos.Column)
	if issue.Pos.Line <= 0 {
		location = issue.Pos.Filename + ":"
	}

	ruleSuffix := ""
	if r.printRuleID && issue.FromLinter != "" {
		ruleSuffix = fmt.Sprintf(" (%s)", issue.FromLinter)
	}

	fmt.Fprintf(r.w, "%s %s%s\n",
		RenderStyle(StyleCyan, location, r.useColors),
		issue.Text,
		RenderStyle(StyleGray, ruleSuffix, r.useColors))

	if r.printLines && len(issue.SourceLines) > 0 {
		for _, line := range issue.SourceLines {
			fmt.Fprintf(r.w, "\t%s\n", line)
		}

		caret := r.buildCaretIndicator(issue.SourceLines[0], issue.Pos.Column)
		fmt.Fprintf(r.w, "\t%s\n", RenderStyle(StyleYellow, caret, r.useColors))
	}
}

// buildCaretIndicator creates the "^" indicator aligned with the column.
// Tabs in the prefix are kept so the caret lines up under the source.
func (r *Reporter) buildCaretIndicator(sourceLine string, column int) string {
	if column <= 0 {
		return "^"
	}

	prefixLen := column - 1
	if prefixLen > len(sourceLine) {
		prefixLen = len(sourceLine)
	}

	var padding strings.Builder
	for _, ch := range sourceLine[:prefixLen] {
		if ch == '\t' {
			padding.WriteRune('\t')
		} else {
			padding.WriteRune(' ')
		}
	}

	return padding.String() + "^"
}

// PrintSummary outputs the issue and failure counts
func (r *Reporter) PrintSummary(result *Result) {
	issues := result.Issues()
	failures := result.Failures()
	errors, warnings := countSeverities(issues)

	fmt.Fprintln(r.w, "")

	if len(issues) == 0 && len(failures) == 0 {
		fmt.Fprintln(r.w, RenderStyle(StyleGreen,
			fmt.Sprintf("0 issues in %s.", pluralizeCount(len(result.Files), "file", "files")), r.useColors))
		return
	}

	header := pluralizeCount(len(issues), "issue", "issues")
	if errors > 0 && warnings > 0 {
		header = fmt.Sprintf("%s (%s, %s)", header,
			pluralizeCount(errors, "error", "errors"),
			pluralizeCount(warnings, "warning", "warnings"))
	}
	fmt.Fprintf(r.w, "%s:\n", header)

	ruleCounts := make(map[string]int)
	for _, issue := range issues {
		ruleCounts[issue.FromLinter]++
	}
	ruleIDs := make([]string, 0, len(ruleCounts))
	for id := range ruleCounts {
		ruleIDs = append(ruleIDs, id)
	}
	sort.Strings(ruleIDs)

	for _, id := range ruleIDs {
		fmt.Fprintf(r.w, "* %s: %d\n", id, ruleCounts[id])
	}

	if len(failures) > 0 {
		fmt.Fprintln(r.w, RenderStyle(StyleRed,
			fmt.Sprintf("%s could not be linted.", pluralizeCount(len(failures), "file", "files")), r.useColors))
	}
}

// pluralizeCount returns a formatted string with count and singular/plural form
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

// UseColors returns whether colors are enabled
func (r *Reporter) UseColors() bool {
	return r.useColors
}
