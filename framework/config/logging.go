package config

import (
	"io"
	"log/slog"
)

// NewLogger builds the application logger: human-readable text in the local
// environment, JSON everywhere else, at the configured level.
func NewLogger(app AppConfig, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: app.LogLevel}
	if app.Env == "local" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}
