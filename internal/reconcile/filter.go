package reconcile

import (
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// Allowlist holds glob patterns for imported files whose diagnostics should
// be reported alongside the entry file's. Patterns are matched against the
// absolute source path and against the path relative to Root.
type Allowlist struct {
	Patterns []string
	Root     string
}

// Allows reports whether absPath matches one of the patterns.
func (a Allowlist) Allows(absPath string) bool {
	if len(a.Patterns) == 0 {
		return false
	}

	candidates := []string{filepath.ToSlash(absPath)}
	if a.Root != "" {
		if rel, err := filepath.Rel(a.Root, absPath); err == nil {
			candidates = append(candidates, filepath.ToSlash(rel))
		}
	}

	for _, pattern := range a.Patterns {
		for _, c := range candidates {
			if ok, _ := doublestar.Match(filepath.ToSlash(pattern), c); ok {
				return true
			}
		}
	}
	return false
}

// FilterImports keeps the diagnostics that belong to entryPath.
//
// File-level diagnostics are always kept. Positions the map cannot resolve
// are dropped silently. Everything else is kept only when its projected
// source resolves to entryPath, or to a file allowed by imports.
func FilterImports(diags []Diagnostic, entryPath string, proj Projector, resolve Resolver, imports Allowlist) []Diagnostic {
	kept := make([]Diagnostic, 0, len(diags))
	for _, d := range diags {
		if d.IsFileLevel() {
			kept = append(kept, d)
			continue
		}

		pos, ok := proj.Project(d.Line, d.Column)
		if !ok {
			continue
		}

		source := resolve(pos.Source)
		if source == entryPath || imports.Allows(source) {
			kept = append(kept, d)
		}
	}
	return kept
}
