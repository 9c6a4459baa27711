package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLoggerWithWriter_Formats(t *testing.T) {
	var text bytes.Buffer
	NewLoggerWithWriter(slog.LevelInfo, "text", &text).Info("dispatch", "pid", 4)
	assert.Contains(t, text.String(), "msg=dispatch")
	assert.Contains(t, text.String(), "pid=4")

	var js bytes.Buffer
	NewLoggerWithWriter(slog.LevelInfo, "JSON", &js).Info("dispatch", "pid", 4)
	assert.Contains(t, js.String(), `"msg":"dispatch"`)
	assert.Contains(t, js.String(), `"pid":4`)
}

func TestNewLoggerWithWriter_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(slog.LevelWarn, "text", &buf)

	logger.Debug("pid dispatched")
	logger.Warn("ready queue full")

	assert.NotContains(t, buf.String(), "pid dispatched")
	assert.Contains(t, buf.String(), "ready queue full")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{" info ", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"verbose", slog.LevelInfo},
		{"", slog.LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.input), "ParseLevel(%q)", tt.input)
	}
}
