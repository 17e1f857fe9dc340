package sslint

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/yacobolo/sslint/internal/csslint"
	"github.com/yacobolo/sslint/internal/preprocess"
	"github.com/yacobolo/sslint/internal/reconcile"
)

// FileResult is the outcome of linting one file: either a bundle of
// reconciled diagnostics or a failure.
type FileResult struct {
	Path   string
	Kind   reconcile.Kind
	Bundle *reconcile.Bundle
	Issues []Issue
	Err    *FileError
}

// ExitCode is the exit code this file alone would produce.
func (fr FileResult) ExitCode() int {
	if fr.Err != nil {
		return fr.Err.Kind.ExitCode()
	}
	for _, issue := range fr.Issues {
		if issue.Severity == SeverityError {
			return ExitLintErrors
		}
	}
	return ExitOK
}

// Result contains all linting results, one entry per input file in input
// order.
type Result struct {
	Files []FileResult
}

// Issues returns every issue across all files.
func (r *Result) Issues() []Issue {
	var issues []Issue
	for _, fr := range r.Files {
		issues = append(issues, fr.Issues...)
	}
	return issues
}

// Failures returns the files that could not be linted.
func (r *Result) Failures() []*FileError {
	var failures []*FileError
	for _, fr := range r.Files {
		if fr.Err != nil {
			failures = append(failures, fr.Err)
		}
	}
	return failures
}

// HasErrors reports whether any file failed or produced an error-severity
// issue.
func (r *Result) HasErrors() bool {
	return r.ExitCode() != ExitOK
}

// ExitCode returns the code of the first file, in input order, that did not
// lint cleanly. No files at all is a read failure.
func (r *Result) ExitCode() int {
	if len(r.Files) == 0 {
		return ExitReadFailure
	}
	for _, fr := range r.Files {
		if code := fr.ExitCode(); code != ExitOK {
			return code
		}
	}
	return ExitOK
}

// Linter runs the read, compile, verify and reconcile steps for each file.
type Linter struct {
	config    Config
	compilers map[reconcile.Kind]preprocess.Compiler
}

// NewLinter builds a Linter. Compilers not overridden in config use lessc
// and sass with config's options.
func NewLinter(config Config) *Linter {
	config = config.withDefaults()

	compilers := map[reconcile.Kind]preprocess.Compiler{
		reconcile.KindLess: preprocess.NewLessCompiler(config.Less),
		reconcile.KindSass: preprocess.NewSassCompiler(config.Sass),
	}
	for kind, c := range config.Compilers {
		compilers[kind] = c
	}

	return &Linter{config: config, compilers: compilers}
}

// Run lints files with config. See Linter.Run.
func Run(ctx context.Context, config Config, files []string) *Result {
	return NewLinter(config).Run(ctx, files)
}

// Run lints files in parallel, up to config.Jobs at a time. A failure in one
// file never stops the others.
func (l *Linter) Run(ctx context.Context, files []string) *Result {
	results := make([]FileResult, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(l.config.Jobs)

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			results[i] = l.LintFile(ctx, path)
			return nil
		})
	}
	_ = g.Wait()

	return &Result{Files: results}
}

// LintFile lints a single file.
func (l *Linter) LintFile(ctx context.Context, path string) FileResult {
	kind := preprocess.KindForPath(path)
	fr := FileResult{Path: path, Kind: kind}

	slog.Debug("linting file", "path", path, "kind", kind)

	bundle, ferr := l.lint(ctx, path, kind)
	if ferr != nil {
		slog.Warn("file failed", "path", path, "kind", ferr.Kind, "error", ferr.Err)
		fr.Err = ferr
		return fr
	}

	fr.Bundle = bundle
	fr.Issues = l.issues(bundle)
	slog.Debug("file linted", "path", path, "issues", len(fr.Issues))
	return fr
}

func (l *Linter) lint(ctx context.Context, path string, kind reconcile.Kind) (*reconcile.Bundle, *FileError) {
	fail := func(k FailureKind, err error) *FileError {
		return &FileError{Kind: k, Path: path, Err: err}
	}

	// Read, compile and reconcile all see the same absolute entry path.
	abs := l.absPath(path)

	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, fail(FailureRead, fmt.Errorf("%w: %w", errEmptyFile, err))
	}
	if len(data) == 0 {
		return nil, fail(FailureRead, errEmptyFile)
	}

	css := string(data)
	var mapData []byte
	if compiler, ok := l.compilers[kind]; ok && kind != reconcile.KindPlain {
		out, err := compiler.Compile(ctx, abs)
		if err != nil {
			return nil, fail(FailureCompile, err)
		}
		css, mapData = out.CSS, out.Map
	}

	verified, err := csslint.Verify(css, l.config.Ruleset)
	if err != nil {
		return nil, fail(FailureLint, err)
	}

	bundle, err := reconcile.Reconcile(verified.Messages, abs, kind, mapData, reconcile.Options{
		WorkDir: l.config.WorkDir,
		Imports: l.config.Imports,
	})
	if err != nil {
		return nil, fail(FailureReconcile, err)
	}

	return bundle, nil
}

// absPath resolves path against config.WorkDir.
func (l *Linter) absPath(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(l.config.WorkDir, path)
}

// issues flattens a bundle in origin order, attaching the authored source
// line when requested.
func (l *Linter) issues(bundle *reconcile.Bundle) []Issue {
	var issues []Issue
	for _, origin := range bundle.Files() {
		var lines []string
		if l.config.PrintIssuedLines {
			lines = readLines(origin)
		}

		display := relativePath(l.config.WorkDir, origin)
		for _, d := range bundle.Diagnostics(origin) {
			issue := newIssue(d, display)
			if d.Line > 0 && d.Line <= len(lines) && !d.Rollup {
				issue.SourceLines = []string{lines[d.Line-1]}
			}
			issues = append(issues, issue)
		}
	}
	return issues
}

// readLines returns the file's lines, or nil when it cannot be read.
func readLines(path string) []string {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines
}

// relativePath shortens path against base for display.
func relativePath(base, path string) string {
	if base == "" || !filepath.IsAbs(path) {
		return path
	}
	rel, err := filepath.Rel(base, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return rel
}
