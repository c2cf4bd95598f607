// internal/util/logger.go
package util

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

var logger *slog.Logger

// InitLogger initializes the global structured logger for server use.
// It sets up a JSON handler for production-like logs.
func InitLogger() {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		AddSource: true, // Add file and line number to logs
		Level:     LevelFromEnv(),
	})
	logger = slog.New(handler)
	slog.SetDefault(logger)
}

// InitConsoleLogger initializes the global logger with a colored text handler,
// suitable for the interactive console program. Log lines go to stderr so they
// do not interleave with menu output on stdout.
func InitConsoleLogger() {
	logger = slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      LevelFromEnv(),
		TimeFormat: time.Kitchen,
	}))
	slog.SetDefault(logger)
}

// GetLogger returns the initialized global logger.
func GetLogger() *slog.Logger {
	if logger == nil {
		InitLogger() // Initialize if not already initialized (should be called explicitly at app start)
	}
	return logger
}

// LevelFromEnv reads the log level from the LOG_LEVEL env var (default: INFO).
func LevelFromEnv() slog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
