package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// ParseLevel maps a level name to a slog level. Unknown names mean info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger returns a tint-backed logger writing to w.
func NewLogger(w io.Writer, level string) *slog.Logger {
	handler := tint.NewHandler(w, &tint.Options{
		Level:      ParseLevel(level),
		TimeFormat: time.Kitchen,
		AddSource:  ParseLevel(level) == slog.LevelDebug,
	})
	return slog.New(handler)
}

// InitLogger installs a tint logger writing to w as the default logger.
// A nil w means stderr, so command output on stdout stays valid JSON.
func InitLogger(w io.Writer, level string) {
	if w == nil {
		w = os.Stderr
	}
	slog.SetDefault(NewLogger(w, level))
}
