package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestConfigure_Levels(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	var buf bytes.Buffer
	logger := Configure(&buf, false)
	logger.Debug("hidden")
	logger.Warn("shown", "path", "a.less")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "level=WARN msg=shown path=a.less")

	buf.Reset()
	logger = Configure(&buf, true)
	logger.Debug("visible")
	assert.Contains(t, buf.String(), "level=DEBUG msg=visible")
	assert.Same(t, logger, slog.Default())
}

func TestColorizingWriter(t *testing.T) {
	prev := color.NoColor
	color.NoColor = false
	t.Cleanup(func() { color.NoColor = prev })

	var buf bytes.Buffer
	w := colorizingWriter{out: &buf}
	n, err := w.Write([]byte("level=ERROR msg=boom\n"))

	assert.NoError(t, err)
	assert.Equal(t, len("level=ERROR msg=boom\n"), n)
	assert.Contains(t, buf.String(), "\x1b[31mERROR\x1b[0m")
}
