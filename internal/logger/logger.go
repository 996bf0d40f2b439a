package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

var (
	mu       sync.Mutex
	levelVar = new(slog.LevelVar)
	logFile  *os.File
	base     *slog.Logger
	logPath  string
)

// DefaultLogPath returns the log file used when none is configured.
func DefaultLogPath() string {
	return filepath.Join(os.TempDir(), "drawer-debug.log")
}

// Init opens path for appending and routes all loggers there. Calling it again
// with a different path reopens the log.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()

	if path == "" {
		path = DefaultLogPath()
	}
	if logFile != nil && path == logPath {
		return nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	if logFile != nil {
		logFile.Close()
	}
	logFile = f
	logPath = path
	base = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: levelVar}))
	base.Info("Logger initialized", "path", path)
	return nil
}

// SetDebug toggles debug records on or off.
func SetDebug(enabled bool) {
	if enabled {
		levelVar.Set(slog.LevelDebug)
	} else {
		levelVar.Set(slog.LevelInfo)
	}
}

// Get returns the process logger. Before Init it discards everything, so a
// TUI never writes log lines over its own screen.
func Get() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()

	if base == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return base
}

// Component returns a logger with the component attribute pre-attached.
func Component(name string) *slog.Logger {
	return Get().With(slog.String("component", name))
}

// Path returns the active log file, or "" before Init.
func Path() string {
	mu.Lock()
	defer mu.Unlock()
	return logPath
}

// Close closes the log file. Later records are discarded.
func Close() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	base = nil
	logPath = ""
}
