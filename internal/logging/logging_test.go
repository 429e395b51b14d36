package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJSONHandlerOutsideDevelopment(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "info", "production")

	logger.Debug("hidden")
	logger.Info("transfer stored", "transfer_code", "abc")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "transfer stored", line["msg"])
	assert.Equal(t, "abc", line["transfer_code"])
}

func TestNewTextHandlerInDevelopment(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, "debug", "development").Debug("visible", "kind", "DATE")

	assert.Contains(t, buf.String(), "msg=visible")
	assert.Contains(t, buf.String(), "kind=DATE")
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"WARN":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, parseLevel(in), in)
	}
}

func TestContextLogger(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "info", "production")

	ctx := WithLogger(context.Background(), l)
	assert.Same(t, l, FromContext(ctx))
	assert.Same(t, slog.Default(), FromContext(context.Background()))
}
