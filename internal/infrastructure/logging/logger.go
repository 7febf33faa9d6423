package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// NewLogger returns a JSON logger for production and a text logger otherwise.
func NewLogger(env string) *slog.Logger {
	return newLogger(os.Stdout, env, os.Getenv("LOG_LEVEL"))
}

func newLogger(w io.Writer, env, level string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}
	if env == "prod" || env == "production" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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
