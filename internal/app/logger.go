package app

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// logLevels maps every accepted log level name to its slog level.
var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// ParseLogLevel resolves a level name, case-insensitively.
func ParseLogLevel(name string) (slog.Level, error) {
	level, ok := logLevels[strings.ToLower(name)]
	if !ok {
		return slog.LevelInfo, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", name)
	}
	return level, nil
}

// ParseLogFormat normalises a log format name to "text" or "json".
func ParseLogFormat(name string) (string, error) {
	format := strings.ToLower(name)
	if format != "text" && format != "json" {
		return "", fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", name)
	}
	return format, nil
}

// newLogger builds the run's logger. It does not set the global logger, so
// every App gets an isolated instance.
func newLogger(level slog.Level, format string, outW io.Writer) *slog.Logger {
	handlerOpts := &slog.HandlerOptions{Level: level}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(outW, handlerOpts))
	}
	return slog.New(slog.NewTextHandler(outW, handlerOpts))
}
