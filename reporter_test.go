package sslint

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCaretIndicator(t *testing.T) {
	reporter := &Reporter{}

	tests := []struct {
		name       string
		sourceLine string
		column     int
		want       string
	}{
		{
			name:       "spaces only",
			sourceLine: "  margin: 0px;",
			column:     11,
			want:       "          ^",
		},
		{
			name:       "tabs and spaces",
			sourceLine: "\t\tcolor: red !important;",
			column:     3,
			want:       "\t\t^",
		},
		{
			name:       "column 0 fallback",
			sourceLine: "a {}",
			column:     0,
			want:       "^",
		},
		{
			name:       "column beyond line length",
			sourceLine: "a {}",
			column:     100,
			want:       "    ^",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, reporter.buildCaretIndicator(tt.sourceLine, tt.column))
		})
	}
}

func sampleResult() *Result {
	return &Result{Files: []FileResult{
		{
			Path: "/proj/a.less",
			Issues: []Issue{
				{
					FromLinter:  "zero-units",
					Text:        "Values of 0 shouldn't have units specified.",
					Severity:    SeverityWarning,
					SourceLines: []string{"\tmargin: 0px;"},
					Pos:         IssuePos{Filename: "a.less", Line: 3, Column: 10},
				},
				{
					FromLinter: "important",
					Text:       "Too many !important declarations (10), try to use less than 10 to avoid specificity issues.",
					Severity:   SeverityError,
					Rollup:     true,
					Pos:        IssuePos{Filename: "a.less", Line: 1, Column: 1},
				},
			},
		},
		{
			Path: "/proj/b.scss",
			Err:  &FileError{Kind: FailureCompile, Path: "/proj/b.scss", Err: errEmptyFile},
		},
	}}
}

func TestReporter_PrintResult(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(&buf, Config{PrintIssuedLines: true, PrintRuleID: true})
	reporter.useColors = false

	reporter.PrintResult(sampleResult())

	want := "a.less:3:10: Values of 0 shouldn't have units specified. (zero-units)\n" +
		"\t\tmargin: 0px;\n" +
		"\t\t        ^\n" +
		"a.less:1:1: Too many !important declarations (10), try to use less than 10 to avoid specificity issues. (important)\n" +
		"sslint: /proj/b.scss: could not read file data. Is the file empty?\n"
	assert.Equal(t, want, buf.String())
}

func TestReporter_PrintIssueWithoutLine(t *testing.T) {
	var buf bytes.Buffer
	reporter := &Reporter{w: &buf}

	reporter.printIssue(Issue{Text: "Too many floats (10).", Pos: IssuePos{Filename: "site.css"}})

	assert.Equal(t, "site.css: Too many floats (10).\n", buf.String())
}

func TestReporter_PrintSummary(t *testing.T) {
	t.Run("issues and failures", func(t *testing.T) {
		var buf bytes.Buffer
		reporter := &Reporter{w: &buf}

		reporter.PrintSummary(sampleResult())

		want := "\n2 issues (1 error, 1 warning):\n" +
			"* important: 1\n" +
			"* zero-units: 1\n" +
			"1 file could not be linted.\n"
		assert.Equal(t, want, buf.String())
	})

	t.Run("clean", func(t *testing.T) {
		var buf bytes.Buffer
		reporter := &Reporter{w: &buf}

		reporter.PrintSummary(&Result{Files: []FileResult{{Path: "a.css"}, {Path: "b.css"}}})

		assert.Equal(t, "\n0 issues in 2 files.\n", buf.String())
	})
}

func TestShouldUseColors(t *testing.T) {
	t.Setenv("FORCE_COLOR", "")
	t.Setenv("GITHUB_ACTIONS", "")
	t.Setenv("NO_COLOR", "")

	assert.True(t, shouldUseColors(Config{UseColors: true}))

	t.Setenv("FORCE_COLOR", "1")
	assert.True(t, shouldUseColors(Config{}))

	t.Setenv("NO_COLOR", "1")
	assert.False(t, shouldUseColors(Config{}))
}
