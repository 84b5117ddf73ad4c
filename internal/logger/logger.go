// ABOUTME: Structured logging configuration using log/slog.
// ABOUTME: Logs to a file in the state dir so the TUI's terminal stays clean.

package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Init configures the default slog logger.
// When debug is off, everything is discarded. When on, records go to
// debug.log inside the state dir, away from the alternate screen.
// LOG_LEVEL: debug, info, warn, error (default: debug when enabled)
// LOG_FORMAT: text, json (default: text)
func Init(stateDir string, debug bool) (func(), error) {
	if !debug || stateDir == "" {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		return func() {}, nil
	}

	if err := os.MkdirAll(stateDir, 0700); err != nil {
		return func() {}, err
	}

	logPath := filepath.Join(stateDir, "debug.log")
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return func() {}, err
	}

	opts := &slog.HandlerOptions{Level: parseLevel(os.Getenv("LOG_LEVEL"))}

	var handler slog.Handler
	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		handler = slog.NewJSONHandler(f, opts)
	} else {
		handler = slog.NewTextHandler(f, opts)
	}

	slog.SetDefault(slog.New(handler))
	return func() { f.Close() }, nil
}

// parseLevel converts a string log level to slog.Level.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelDebug
	}
}
