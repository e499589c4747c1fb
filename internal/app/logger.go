package app

import (
	"io"
	"log/slog"
)

// newLogger creates a slog.Logger for one App instance. It never touches
// the global default, so concurrent Apps (as in tests) stay isolated.
func newLogger(levelStr, formatStr string, outW io.Writer) *slog.Logger {
	level := slog.LevelInfo
	// CLI validation already rejected unknown levels; fall back to info
	// for programmatic callers that pass an empty string.
	_ = level.UnmarshalText([]byte(levelStr))

	opts := &slog.HandlerOptions{Level: level}
	if formatStr == "json" {
		return slog.New(slog.NewJSONHandler(outW, opts))
	}
	return slog.New(slog.NewTextHandler(outW, opts))
}
