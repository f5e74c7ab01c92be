// Package log wraps [log/slog] with a process-wide logger whose level can be
// changed at runtime.
package log

import (
	"io"
	"log/slog"
	"os"
)

type Handler = slog.Handler

var DiscardHandler = slog.DiscardHandler

var (
	level         = new(slog.LevelVar)
	defaultLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
)

func init() {
	level.Set(slog.Level(LevelWarn))
}

// SetLogLevel sets the minimum level of events that are logged by the
// handlers created by [SetTextHandler] and [SetJSONHandler].
func SetLogLevel(l Level) {
	level.Set(slog.Level(l))
}

// LogLevel returns the current minimum level.
func LogLevel() Level {
	return Level(level.Level())
}

// SetHandler sets the handler of the default logger.
func SetHandler(h Handler) {
	defaultLogger = slog.New(h)
}

// SetTextHandler logs events as text to w.
func SetTextHandler(w io.Writer) {
	SetHandler(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// SetJSONHandler logs events as JSON to w.
func SetJSONHandler(w io.Writer) {
	SetHandler(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

func Debug(msg string, args ...any) {
	defaultLogger.Debug(msg, args...)
}

func Info(msg string, args ...any) {
	defaultLogger.Info(msg, args...)
}

func Warn(msg string, args ...any) {
	defaultLogger.Warn(msg, args...)
}

// Error logs msg at [LevelError], with err as the "cause" attribute when
// it is not nil.
func Error(msg string, err error, args ...any) {
	if err != nil {
		args = append([]any{"cause", err}, args...)
	}
	defaultLogger.Error(msg, args...)
}
