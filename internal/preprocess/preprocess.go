// Package preprocess compiles LESS and SCSS sources to CSS with a source map
// by running the lessc and sass command line compilers.
package preprocess

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/yacobolo/sslint/internal/reconcile"
)

// Output is the result of compiling one entry file.
type Output struct {
	CSS string
	Map []byte
}

// Compiler turns one entry file into CSS plus a v3 source map.
type Compiler interface {
	Compile(ctx context.Context, path string) (*Output, error)
}

// CompileError reports a compiler failure for Path.
type CompileError struct {
	Path    string
	Message string
	Err     error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("Error parsing %s: %s", e.Path, e.Message)
}

func (e *CompileError) Unwrap() error {
	return e.Err
}

// Options configures a compiler. Zero fields take the compiler's defaults.
type Options struct {
	Binary       string   // executable name or path
	IncludePaths []string // searched for imports after the entry file's directory
	Args         []string // extra arguments passed before the input file
}

// merge returns o with empty fields filled from defaults. Neither value is
// modified.
func (o Options) merge(defaults Options) Options {
	out := Options{
		Binary:       o.Binary,
		IncludePaths: append([]string(nil), o.IncludePaths...),
		Args:         append([]string(nil), o.Args...),
	}
	if out.Binary == "" {
		out.Binary = defaults.Binary
	}
	if len(out.IncludePaths) == 0 {
		out.IncludePaths = append(out.IncludePaths, defaults.IncludePaths...)
	}
	if len(out.Args) == 0 {
		out.Args = append(out.Args, defaults.Args...)
	}
	return out
}

// includePaths puts the entry file's directory first.
func (o Options) includePaths(absPath string) []string {
	paths := []string{filepath.Dir(absPath)}
	for _, p := range o.IncludePaths {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}

// KindForPath picks the preprocessor from a file extension.
func KindForPath(path string) reconcile.Kind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".less":
		return reconcile.KindLess
	case ".scss":
		return reconcile.KindSass
	default:
		return reconcile.KindPlain
	}
}

// run executes bin in a scratch directory and reads back the CSS and map it
// wrote. args receives the output paths.
func run(ctx context.Context, bin, path string, args func(outCSS, outMap string) []string) (*Output, error) {
	tmp, err := os.MkdirTemp("", "sslint-*")
	if err != nil {
		return nil, fmt.Errorf("creating scratch dir: %w", err)
	}
	defer os.RemoveAll(tmp)

	outCSS := filepath.Join(tmp, "out.css")
	outMap := outCSS + ".map"

	var stderr bytes.Buffer
	// #nosec G204 - binary and arguments come from trusted configuration
	cmd := exec.CommandContext(ctx, bin, args(outCSS, outMap)...)
	cmd.Stderr = &stderr
	cmd.Stdout = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if errors.Is(err, exec.ErrNotFound) {
			msg = fmt.Sprintf("%s not found in PATH", bin)
		} else if msg == "" {
			msg = err.Error()
		}
		return nil, &CompileError{Path: path, Message: msg, Err: err}
	}

	css, err := os.ReadFile(outCSS)
	if err != nil {
		return nil, &CompileError{Path: path, Message: "compiler produced no CSS", Err: err}
	}

	// A missing map is not fatal here: reconciliation falls back to
	// reporting against the entry file.
	sourceMap, err := os.ReadFile(outMap)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("reading source map: %w", err)
	}

	return &Output{CSS: string(css), Map: sourceMap}, nil
}
