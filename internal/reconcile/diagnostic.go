package reconcile

import "strings"

// Severity is assigned by the rule engine and passed through unchanged.
type Severity string

// Severity levels
const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Kind identifies which compiler produced the CSS that was linted
type Kind int

const (
	// KindPlain is authored CSS, linted verbatim.
	KindPlain Kind = iota
	// KindLess is CSS compiled by lessc.
	KindLess
	// KindSass is CSS compiled by sass (SCSS syntax).
	KindSass
)

func (k Kind) String() string {
	switch k {
	case KindLess:
		return "less"
	case KindSass:
		return "sass"
	default:
		return "plain"
	}
}

// ParseKind maps a config value ("css", "plain", "less", "scss", "sass") to a Kind
func ParseKind(s string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "css", "plain":
		return KindPlain, true
	case "less":
		return KindLess, true
	case "sass", "scss":
		return KindSass, true
	}
	return KindPlain, false
}

// Position is an original-source location returned by a Projector.
type Position struct {
	Line   int
	Column int
	Source string
}

// Diagnostic is one lint finding.
//
// Line and Column are in generated-CSS space when they come out of the rule
// engine and in original-source space once reconciled.
type Diagnostic struct {
	Line     int
	Column   int
	Severity Severity
	RuleID   string
	Text     string
	Evidence string // generated line the finding was reported on, if any

	// Rollup marks file-level findings not tied to a generated line.
	Rollup bool

	// OriginFile is the absolute path of the authored file. Empty means the
	// entry file.
	OriginFile string

	// Intermediate is the projected position before the LESS offset transform.
	Intermediate *Position
}

// IsFileLevel reports whether the diagnostic has no usable generated position.
func (d Diagnostic) IsFileLevel() bool {
	return d.Rollup || d.Line == 0
}

// clone copies the diagnostic, including the Intermediate pointer target.
func (d Diagnostic) clone() Diagnostic {
	if d.Intermediate != nil {
		p := *d.Intermediate
		d.Intermediate = &p
	}
	return d
}

func cloneAll(diags []Diagnostic) []Diagnostic {
	out := make([]Diagnostic, len(diags))
	for i, d := range diags {
		out[i] = d.clone()
	}
	return out
}
