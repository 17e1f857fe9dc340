package preprocess

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var defaultLessOptions = Options{Binary: "lessc"}

// LessCompiler runs lessc.
type LessCompiler struct {
	opts Options
}

// NewLessCompiler merges opts over the lessc defaults.
func NewLessCompiler(opts Options) *LessCompiler {
	return &LessCompiler{opts: opts.merge(defaultLessOptions)}
}

// Compile implements Compiler.
func (c *LessCompiler) Compile(ctx context.Context, path string) (*Output, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}
	return run(ctx, c.opts.Binary, path, func(outCSS, outMap string) []string {
		return c.args(abs, outCSS, outMap)
	})
}

// args makes lessc write absolute source paths into the map by rooting
// every source at the entry file's directory.
func (c *LessCompiler) args(abs, outCSS, outMap string) []string {
	dir := filepath.Dir(abs)
	args := []string{
		"--no-color",
		"--source-map=" + outMap,
		"--source-map-basepath=" + dir,
		"--source-map-rootpath=" + strings.TrimSuffix(filepath.ToSlash(dir), "/") + "/",
		"--include-path=" + strings.Join(c.opts.includePaths(abs), string(os.PathListSeparator)),
	}
	args = append(args, c.opts.Args...)
	return append(args, abs, outCSS)
}
