// Package logging wraps log/slog with the level handling and helpers used
// across gravtoy. The level comes from the --log-level flag or the
// GRAVTOY_LOG_LEVEL environment variable and defaults to INFO.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

const EnvLevel = "GRAVTOY_LOG_LEVEL"

type Logger struct {
	*slog.Logger
}

// New writes text records at or above level to w.
func New(w io.Writer, level slog.Level) *Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return &Logger{slog.New(handler)}
}

// FromEnv logs to stderr at the level named by GRAVTOY_LOG_LEVEL.
func FromEnv() *Logger {
	return New(os.Stderr, ParseLevel(os.Getenv(EnvLevel)))
}

// Discard drops every record. Tests and library callers use it.
func Discard() *Logger {
	return New(io.Discard, slog.LevelError+1)
}

// ParseLevel maps DEBUG, INFO, WARN(ING) and ERROR, in any case, to a level.
// Anything else is INFO.
func ParseLevel(s string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (l *Logger) Info(msg string, args ...any) {
	l.Logger.Info(msg, args...)
}

func (l *Logger) Warn(msg string, args ...any) {
	l.Logger.Warn(msg, args...)
}

// Error logs msg with err attached under the "error" key.
func (l *Logger) Error(msg string, err error, args ...any) {
	if err != nil {
		args = append(args, "error", err.Error())
	}
	l.Logger.Error(msg, args...)
}

func (l *Logger) Debug(msg string, args ...any) {
	l.Logger.Debug(msg, args...)
}

// With returns a logger that adds args to every record.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{l.Logger.With(args...)}
}
