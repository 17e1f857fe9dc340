package preprocess

import (
	"context"
	"fmt"
	"path/filepath"
)

var defaultSassOptions = Options{Binary: "sass"}

// SassCompiler runs the dart-sass command line compiler on SCSS files.
type SassCompiler struct {
	opts Options
}

// NewSassCompiler merges opts over the sass defaults.
func NewSassCompiler(opts Options) *SassCompiler {
	return &SassCompiler{opts: opts.merge(defaultSassOptions)}
}

// Compile implements Compiler.
func (c *SassCompiler) Compile(ctx context.Context, path string) (*Output, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}
	return run(ctx, c.opts.Binary, path, func(outCSS, _ string) []string {
		return c.args(abs, outCSS)
	})
}

// args asks sass for a separate map next to outCSS. sass always names it
// outCSS + ".map".
func (c *SassCompiler) args(abs, outCSS string) []string {
	args := []string{
		"--no-color",
		"--no-error-css",
		"--source-map",
		"--source-map-urls=absolute",
	}
	for _, p := range c.opts.includePaths(abs) {
		args = append(args, "--load-path="+p)
	}
	args = append(args, c.opts.Args...)
	return append(args, abs, outCSS)
}
