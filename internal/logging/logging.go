package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

type ctxKey struct{}

// Init builds the process logger on stdout and installs it as the default.
func Init(service, level, appEnv string) *slog.Logger {
	return InitWriter(os.Stdout, service, level, appEnv)
}

// InitWriter is Init with an explicit destination; the CLI logs to stderr so
// stdout carries only command output.
func InitWriter(w io.Writer, service, level, appEnv string) *slog.Logger {
	logger := New(w, level, appEnv).With("service", service)
	slog.SetDefault(logger)
	return logger
}

func New(w io.Writer, level, appEnv string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}

	var handler slog.Handler
	if appEnv == "development" {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}
	return slog.New(handler)
}

// FromContext returns the request-scoped logger, or the default one outside
// a request.
func FromContext(ctx context.Context) *slog.Logger {
	l, ok := ctx.Value(ctxKey{}).(*slog.Logger)
	if !ok || l == nil {
		return slog.Default()
	}
	return l
}

func WithLogger(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// parseLevel accepts slog's level names, case-insensitively, plus "warning".
// Anything else is info.
func parseLevel(s string) slog.Level {
	if strings.EqualFold(s, "warning") {
		return slog.LevelWarn
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
