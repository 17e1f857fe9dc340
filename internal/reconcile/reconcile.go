// Package reconcile maps lint diagnostics reported against generated CSS back
// to the authored LESS/SCSS files.
//
// A run for one entry file goes through four stages:
//
//  1. FilterImports drops diagnostics that belong to imported files.
//  2. AdjustLess or AdjustSass projects each position through the source map.
//  3. Dedupe collapses findings repeated by loops and mixins.
//  4. Group partitions the result by origin file into a Bundle.
//
// Plain CSS skips every stage but grouping.
package reconcile

import (
	"os"
	"path/filepath"
)

// Options is the finalized configuration for one Reconcile call.
type Options struct {
	// WorkDir resolves relative lessc sources and a relative entry path.
	// Defaults to the process working directory.
	WorkDir string

	// Imports lists imported files whose diagnostics are kept.
	Imports []string
}

func (o Options) withDefaults() Options {
	if o.WorkDir == "" {
		if wd, err := os.Getwd(); err == nil {
			o.WorkDir = wd
		}
	}
	return o
}

// Reconcile translates diags for entryPath through mapData and groups them
// by authored file. diags is not modified.
//
// Plain CSS and an empty map skip projection entirely. A map that cannot be
// parsed returns a *SourceMapError and no bundle.
func Reconcile(diags []Diagnostic, entryPath string, kind Kind, mapData []byte, opts Options) (*Bundle, error) {
	opts = opts.withDefaults()
	entryPath = absolutePath(opts.WorkDir, entryPath)

	if kind == KindPlain || len(mapData) == 0 {
		return Group(cloneAll(diags), entryPath), nil
	}

	sm, err := ParseSourceMap(mapData)
	if err != nil {
		return nil, err
	}

	return ReconcileWith(diags, entryPath, kind, sm, opts), nil
}

// ReconcileWith runs the source-mapped pipeline against an existing
// Projector. entryPath must be absolute.
func ReconcileWith(diags []Diagnostic, entryPath string, kind Kind, proj Projector, opts Options) *Bundle {
	opts = opts.withDefaults()
	entryPath = filepath.Clean(entryPath)

	adjust := AdjusterFor(kind)
	if adjust == nil {
		return Group(cloneAll(diags), entryPath)
	}

	resolve := resolverFor(kind, entryPath, opts.WorkDir)
	imports := Allowlist{Patterns: opts.Imports, Root: opts.WorkDir}

	kept := FilterImports(cloneAll(diags), entryPath, proj, resolve, imports)

	adjusted := make([]Diagnostic, 0, len(kept))
	for _, d := range kept {
		adjusted = append(adjusted, adjust(d, entryPath, proj, resolve))
	}

	return Group(Dedupe(adjusted), entryPath)
}
