// Package logging provides file-based logging for gh-activity.
// Logs go to an optional log file so they never mix with the display
// lines on stdout.
package logging

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// New returns a logger writing to the given file path and a close function
// releasing it. An empty path disables logging.
func New(path string, level slog.Level) (*slog.Logger, func() error, error) {
	noop := func() error { return nil }
	if path == "" {
		return slog.New(slog.DiscardHandler), noop, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}
	// G302: Log files are append-only and need read access by the user
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o640) //nolint:gosec // Log file readable by owner and group
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	return logger, f.Close, nil
}

// ParseLevel parses a log level string into slog.Level.
func ParseLevel(levelStr string) slog.Level {
	switch levelStr {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
