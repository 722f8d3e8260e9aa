// Package logging provides the structured logger used across the
// assistant. Output is JSON by default; set LOG_FORMAT=text for
// human-readable local development logs.
package logging

import (
	"log/slog"
	"os"
	"strings"
)

// Logger wraps slog.Logger so packages depend on one local type.
type Logger struct {
	*slog.Logger
}

// New creates a logger at the given level. Unknown levels fall back
// to info rather than erroring: logging must never block startup.
func New(level string) *Logger {
	opts := &slog.HandlerOptions{
		Level: parseLevel(level),
	}

	var handler slog.Handler
	if strings.EqualFold(os.Getenv("LOG_FORMAT"), "text") {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	return &Logger{Logger: slog.New(handler)}
}

// Default returns an info-level logger.
func Default() *Logger {
	return New("info")
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
