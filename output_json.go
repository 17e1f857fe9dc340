package sslint

import (
	"encoding/json"
	"io"
	"time"

	"github.com/yacobolo/sslint/internal/csslint"
)

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version     string        `json:"version"`
	RuleVersion string        `json:"rule_version"`
	Timestamp   string        `json:"timestamp"`
	Summary     JSONSummary   `json:"summary"`
	Issues      []JSONIssue   `json:"issues"`
	Failures    []JSONFailure `json:"failures"`
}

// JSONSummary contains high-level counts
type JSONSummary struct {
	TotalIssues int `json:"total_issues"`
	Errors      int `json:"errors"`
	Warnings    int `json:"warnings"`
	FilesLinted int `json:"files_linted"`
	Failures    int `json:"failures"`
	ExitCode    int `json:"exit_code"`
}

// JSONIssue represents a single linting issue
type JSONIssue struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Rule     string `json:"rule"`
	Rollup   bool   `json:"rollup,omitempty"`
	Evidence string `json:"evidence,omitempty"`
}

// JSONFailure is a file that could not be linted.
type JSONFailure struct {
	File    string `json:"file"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// WriteJSON writes the lint result as JSON
func WriteJSON(w io.Writer, result *Result) error {
	output := buildJSONOutput(result, time.Now())
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

func buildJSONOutput(result *Result, now time.Time) JSONOutput {
	issues := result.Issues()
	errors, warnings := countSeverities(issues)

	jsonIssues := make([]JSONIssue, len(issues))
	for i, issue := range issues {
		jsonIssues[i] = JSONIssue{
			File:     issue.Pos.Filename,
			Line:     issue.Pos.Line,
			Column:   issue.Pos.Column,
			Severity: issue.Severity,
			Message:  issue.Text,
			Rule:     issue.FromLinter,
			Rollup:   issue.Rollup,
			Evidence: issue.Evidence,
		}
	}

	failures := result.Failures()
	jsonFailures := make([]JSONFailure, len(failures))
	for i, f := range failures {
		jsonFailures[i] = JSONFailure{
			File:    f.Path,
			Kind:    f.Kind.String(),
			Message: f.Message(),
		}
	}

	return JSONOutput{
		Version:     "1.0",
		RuleVersion: csslint.Version,
		Timestamp:   now.Format(time.RFC3339),
		Summary: JSONSummary{
			TotalIssues: len(issues),
			Errors:      errors,
			Warnings:    warnings,
			FilesLinted: len(result.Files),
			Failures:    len(failures),
			ExitCode:    result.ExitCode(),
		},
		Issues:   jsonIssues,
		Failures: jsonFailures,
	}
}
