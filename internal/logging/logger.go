// Package logging configures the process-wide slog logger.
package logging

import (
	"bytes"
	"io"
	"log/slog"

	"github.com/fatih/color"
)

var levelColors = []struct {
	plain string
	attr  color.Attribute
}{
	{"level=ERROR", color.FgRed},
	{"level=WARN", color.FgYellow},
	{"level=INFO", color.FgGreen},
	{"level=DEBUG", color.FgCyan},
}

// Configure installs a text slog handler on w as the default logger. Debug
// records are only emitted when verbose is set. Level names are colorized
// unless color output is disabled (NO_COLOR, non-terminal stdout).
func Configure(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	if !color.NoColor {
		w = colorizingWriter{out: w}
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}

type colorizingWriter struct {
	out io.Writer
}

func (w colorizingWriter) Write(p []byte) (int, error) {
	colored := p
	for _, lc := range levelColors {
		name := lc.plain[len("level="):]
		colored = bytes.ReplaceAll(colored, []byte(lc.plain), []byte("level="+color.New(lc.attr).Sprint(name)))
	}

	if _, err := w.out.Write(colored); err != nil {
		return 0, err
	}
	return len(p), nil
}
