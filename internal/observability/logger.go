package observability

import (
	"log/slog"
	"os"
	"strings"

	"github.com/kitsunebi/disaster-info-api/internal/config"
)

// NewLogger creates a *slog.Logger from the service configuration and
// installs it as the process default via slog.SetDefault.
//
// LOG_FORMAT "json" produces structured JSON output (production).
// Any other format produces human-readable text output with source info.
// LOG_LEVEL is one of: debug, info, warn, error (case-insensitive).
// Output is always os.Stderr.
func NewLogger(cfg *config.Config) *slog.Logger {
	level := parseLevel(cfg.LogLevel)

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: !strings.EqualFold(cfg.LogFormat, "json"),
	}

	var handler slog.Handler
	if strings.EqualFold(cfg.LogFormat, "json") {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	return logger
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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
