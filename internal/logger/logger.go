// Package logger configures structured logging for the spellsheet binaries.
package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"spellsheet/internal/config"
)

// ParseLevel maps a config level name to a slog level.
// The second result is false for unknown names, which map to info.
func ParseLevel(name string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// Setup builds a logger writing to w with the configured level and format,
// and installs it as the slog default.
func Setup(cfg config.LogConfig, w io.Writer) *slog.Logger {
	level, ok := ParseLevel(cfg.Level)

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler)
	if !ok {
		logger.Warn("invalid log level configured, using default level",
			"configured_level", cfg.Level,
			"default_level", "info")
	}

	slog.SetDefault(logger)
	return logger
}

// SetupFile logs to a file under dir, for the TUI whose terminal is taken by
// the alt screen. The returned closer closes the file.
func SetupFile(cfg config.LogConfig, dir string) (*slog.Logger, io.Closer, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(filepath.Join(dir, "spellsheet.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, err
	}
	return Setup(cfg, f), f, nil
}
