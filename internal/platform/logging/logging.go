package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// ParseLevel maps a level name (debug, info, warn, error) to a slog.Level.
// "warning" is accepted as an alias of warn.
func ParseLevel(name string) (slog.Level, error) {
	text := strings.TrimSpace(name)
	if strings.EqualFold(text, "warning") {
		text = "warn"
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(text)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", name, err)
	}
	return level, nil
}

// New builds the pipeline logger. Lines are appended to logFile and mirrored
// to console. The returned closer releases the log file.
func New(logFile string, level slog.Level, console io.Writer) (*slog.Logger, io.Closer, error) {
	if logFile == "" {
		return slog.New(NewLineHandler(console, level)), nopCloser{}, nil
	}
	if dir := filepath.Dir(logFile); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("create log directory: %w", err)
		}
	}
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	w := io.MultiWriter(f, console)
	return slog.New(NewLineHandler(w, level)), f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
