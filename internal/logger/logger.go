// Package logger provides structured logging with console and optional file output.
package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// Logger wraps zerolog for structured logging.
type Logger struct {
	zerolog.Logger
}

// New creates a logger at the given level writing to the console and, when
// logFile is set, appending to that file as JSON lines.
func New(level string, logFile string) (*Logger, error) {
	writers := []io.Writer{
		zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"},
	}

	if logFile != "" {
		if err := os.MkdirAll(filepath.Dir(logFile), 0755); err != nil {
			return nil, err
		}

		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return nil, err
		}
		writers = append(writers, file)
	}

	return NewWithWriter(zerolog.MultiLevelWriter(writers...), level), nil
}

// NewWithWriter creates a logger writing JSON lines to w.
// Unknown levels fall back to info.
func NewWithWriter(w io.Writer, level string) *Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	l := zerolog.New(w).
		Level(lvl).
		With().
		Timestamp().
		Str("service", "chartpage").
		Logger()

	return &Logger{l}
}

// Global is the global logger instance for convenience.
var Global *Logger

// Init initializes the global logger.
func Init(level string, logFile string) error {
	l, err := New(level, logFile)
	if err != nil {
		return err
	}
	Global = l
	return nil
}

// Get returns the global logger.
// Returns a no-op logger if not initialized.
func Get() *Logger {
	if Global == nil {
		return &Logger{zerolog.Nop()}
	}
	return Global
}
