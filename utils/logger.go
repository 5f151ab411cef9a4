package utils

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger provides leveled logging throughout the application.
// Messages are printf-style; output goes through a zerolog console writer.
type Logger struct {
	zl zerolog.Logger
}

// NewLogger creates a new Logger writing to stderr at info level.
func NewLogger() *Logger {
	return NewLoggerTo(os.Stderr)
}

// NewLoggerTo creates a Logger writing human-readable lines to w.
func NewLoggerTo(w io.Writer) *Logger {
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: "2006-01-02 15:04:05"}
	return &Logger{
		zl: zerolog.New(out).With().Timestamp().Logger().Level(zerolog.InfoLevel),
	}
}

// SetLevel changes the minimum level (debug, info, warn, error).
// Unknown level names are ignored.
func (l *Logger) SetLevel(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		return
	}
	l.zl = l.zl.Level(lvl)
}

func (l *Logger) Info(format string, args ...any) {
	l.zl.Info().Msgf(format, args...)
}

func (l *Logger) Warn(format string, args ...any) {
	l.zl.Warn().Msgf(format, args...)
}

func (l *Logger) Error(format string, args ...any) {
	l.zl.Error().Msgf(format, args...)
}

func (l *Logger) Debug(format string, args ...any) {
	l.zl.Debug().Msgf(format, args...)
}
