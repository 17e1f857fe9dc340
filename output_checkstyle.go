package sslint

import (
	"encoding/xml"
	"io"
	"strings"

	"github.com/yacobolo/sslint/internal/csslint"
)

type checkstyleReport struct {
	XMLName xml.Name         `xml:"checkstyle"`
	Version string           `xml:"version,attr"`
	Files   []checkstyleFile `xml:"file"`
}

type checkstyleFile struct {
	Name   string            `xml:"name,attr"`
	Errors []checkstyleError `xml:"error"`
}

type checkstyleError struct {
	Line     int    `xml:"line,attr"`
	Column   int    `xml:"column,attr"`
	Severity string `xml:"severity,attr"`
	Message  string `xml:"message,attr"`
	Source   string `xml:"source,attr"`
}

// WriteCheckstyle writes the result as checkstyle XML. Issues are grouped by
// authored file; a failed file gets a single error entry.
func WriteCheckstyle(w io.Writer, result *Result) error {
	report := checkstyleReport{Version: "4.3"}
	index := make(map[string]int)

	add := func(name string, e checkstyleError) {
		i, ok := index[name]
		if !ok {
			i = len(report.Files)
			index[name] = i
			report.Files = append(report.Files, checkstyleFile{Name: name})
		}
		report.Files[i].Errors = append(report.Files[i].Errors, e)
	}

	for _, fr := range result.Files {
		if fr.Err != nil {
			add(fr.Path, checkstyleError{
				Severity: SeverityError,
				Message:  fr.Err.Message(),
				Source:   "sslint." + fr.Err.Kind.String(),
			})
			continue
		}
		for _, issue := range fr.Issues {
			add(issue.Pos.Filename, checkstyleError{
				Line:     issue.Pos.Line,
				Column:   issue.Pos.Column,
				Severity: issue.Severity,
				Message:  issue.Text,
				Source:   checkstyleSource(issue.FromLinter),
			})
		}
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	encoder := xml.NewEncoder(w)
	encoder.Indent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// checkstyleSource names the rule the way CSSLint's checkstyle output does.
func checkstyleSource(ruleID string) string {
	for _, rule := range csslint.Rules() {
		if rule.ID == ruleID {
			return "net.csslint." + strings.ReplaceAll(rule.Name, " ", "")
		}
	}
	return "net.csslint." + ruleID
}
