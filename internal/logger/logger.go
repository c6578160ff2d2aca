// Package logger provides wrappers around slog.
package logger

import (
	"context"
	"io"
	"strings"

	"golang.org/x/exp/slog"
)

type logKeyType struct{}

var logKey logKeyType

// For returns the logger attached to ctx, or the default one.
func For(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(logKey).(*slog.Logger); ok {
		return l
	}
	return slog.Default()
}

// SetContext attaches l to ctx.
func SetContext(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, logKey, l)
}

// New builds a text logger writing to w at the named level ("debug", "info", "warn", "error").
// Unknown names fall back to info.
func New(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)}))
}

// ParseLevel maps a level name to slog.Level.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
