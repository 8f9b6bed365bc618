// Package logger configures the process-wide slog logger.
//
// Development builds get a human readable text handler at debug level,
// production gets JSON at info level for log aggregation.
package logger

import (
	"io"
	"log/slog"
	"os"
)

// New builds a logger for the given environment name writing to w.
func New(env string, w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stdout
	}

	var handler slog.Handler
	switch env {
	case "production", "prod":
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
	default:
		handler = slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	return slog.New(handler)
}

// Setup installs the logger for env as the slog default and returns it.
func Setup(env string) *slog.Logger {
	l := New(env, os.Stdout)
	slog.SetDefault(l)
	return l
}
