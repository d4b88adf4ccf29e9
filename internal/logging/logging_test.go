package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel(""))
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("INFO"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
}

func TestNewWithWriter(t *testing.T) {
	t.Run("json format", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewWithWriter(&buf, "json", "info")
		logger.Debug("hidden")
		logger.Info("page rendered", "path", "/technologies")

		out := buf.String()
		assert.NotContains(t, out, "hidden")
		assert.Contains(t, out, `"msg":"page rendered"`)
		assert.Contains(t, out, `"path":"/technologies"`)
	})

	t.Run("text format adds source", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewWithWriter(&buf, "text", "debug")
		logger.Debug("starting")

		out := buf.String()
		assert.Contains(t, out, "msg=starting")
		assert.Contains(t, out, "source=")
	})
}
