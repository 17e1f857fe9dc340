package sslint

import "github.com/yacobolo/sslint/internal/reconcile"

// Issue represents a single linting violation in golangci-lint format
type Issue struct {
	FromLinter  string   `json:"FromLinter"`  // rule id, e.g. "zero-units"
	Text        string   `json:"Text"`        // "Values of 0 shouldn't have units specified."
	Severity    string   `json:"Severity"`    // "info", "warning", "error"
	SourceLines []string `json:"SourceLines"` // Authored line with the issue
	Evidence    string   `json:"Evidence,omitempty"`
	Rollup      bool     `json:"Rollup,omitempty"` // whole-file finding
	Pos         IssuePos `json:"Pos"`
}

// IssuePos specifies the exact location of an issue
type IssuePos struct {
	Filename string `json:"Filename"` // "web/styles/buttons.less"
	Line     int    `json:"Line"`     // 35
	Column   int    `json:"Column"`   // 15 (1-based)
}

// IssueSeverity constants
const (
	SeverityError   = string(reconcile.SeverityError)
	SeverityWarning = string(reconcile.SeverityWarning)
	SeverityInfo    = string(reconcile.SeverityInfo)
)

func newIssue(d reconcile.Diagnostic, filename string) Issue {
	return Issue{
		FromLinter: d.RuleID,
		Text:       d.Text,
		Severity:   string(d.Severity),
		Evidence:   d.Evidence,
		Rollup:     d.Rollup,
		Pos: IssuePos{
			Filename: filename,
			Line:     d.Line,
			Column:   d.Column,
		},
	}
}

// countSeverities tallies errors and warnings.
func countSeverities(issues []Issue) (errors, warnings int) {
	for _, issue := range issues {
		switch issue.Severity {
		case SeverityError:
			errors++
		case SeverityWarning:
			warnings++
		}
	}
	return errors, warnings
}
