// Package csslint checks generated CSS against a small set of CSSLint rules.
//
// Rule ids, messages and rollup thresholds follow CSSLint so existing
// rulesets and editor integrations keep working.
package csslint

import (
	"sort"
	"strings"
)

// Version of the rule set, printed by `sslint version`.
const Version = "1.0.0"

// Severity codes used in a Ruleset
const (
	Ignore  = 0
	Warning = 1
	Error   = 2
)

// Rule describes one check.
type Rule struct {
	ID   string
	Name string
	Desc string
}

// Ruleset maps rule ids to a severity code.
type Ruleset map[string]int

var rules = []Rule{
	{ID: "duplicate-properties", Name: "Disallow duplicate properties", Desc: "Duplicate properties must appear one after the other."},
	{ID: "empty-rules", Name: "Disallow empty rules", Desc: "Rules without any properties specified should be removed."},
	{ID: "floats", Name: "Disallow too many floats", Desc: "This rule tests if the float property is used too many times"},
	{ID: "font-sizes", Name: "Disallow too many font sizes", Desc: "Checks the number of font-size declarations."},
	{ID: "ids", Name: "Disallow IDs in selectors", Desc: "Selectors should not contain IDs."},
	{ID: "import", Name: "Disallow @import", Desc: "Don't use @import, use <link> instead."},
	{ID: "important", Name: "Disallow !important", Desc: "Be careful when using !important declaration"},
	{ID: "universal-selector", Name: "Disallow universal selector", Desc: "The universal selector (*) is known to be slow."},
	{ID: "zero-units", Name: "Disallow units for 0 values", Desc: "You don't need to specify units when a value is 0."},
}

// Rules returns every known rule sorted by id.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// DefaultRuleset enables every rule as a warning.
func DefaultRuleset() Ruleset {
	rs := make(Ruleset, len(rules))
	for _, r := range rules {
		rs[r.ID] = Warning
	}
	return rs
}

// GatherRules builds a ruleset from --errors, --warnings and --ignore lists.
// Ignoring starts from the default ruleset; warnings and errors then override
// it in that order. With no lists at all the default ruleset is returned.
func GatherRules(errs, warnings, ignore []string) Ruleset {
	var rs Ruleset

	if ids := cleanIDs(ignore); len(ids) > 0 {
		rs = DefaultRuleset()
		for _, id := range ids {
			rs[id] = Ignore
		}
	}

	if ids := cleanIDs(warnings); len(ids) > 0 {
		if rs == nil {
			rs = Ruleset{}
		}
		for _, id := range ids {
			rs[id] = Warning
		}
	}

	if ids := cleanIDs(errs); len(ids) > 0 {
		if rs == nil {
			rs = Ruleset{}
		}
		for _, id := range ids {
			rs[id] = Error
		}
	}

	if rs == nil {
		return DefaultRuleset()
	}
	return rs
}

// cleanIDs splits comma-joined entries and drops blanks.
func cleanIDs(list []string) []string {
	var out []string
	for _, entry := range list {
		for _, id := range strings.Split(entry, ",") {
			if id = strings.TrimSpace(id); id != "" {
				out = append(out, id)
			}
		}
	}
	return out
}

// UnknownRules returns ids in rs that no rule defines.
func UnknownRules(rs Ruleset) []string {
	known := make(map[string]bool, len(rules))
	for _, r := range rules {
		known[r.ID] = true
	}

	var unknown []string
	for id := range rs {
		if !known[id] {
			unknown = append(unknown, id)
		}
	}
	sort.Strings(unknown)
	return unknown
}
