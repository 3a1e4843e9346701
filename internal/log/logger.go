// Package log provides the structured JSON logger used by studentquery.
package log

import (
	"io"
	"log/slog"
)

// Logger is a custom structured logger on top of slog.Logger
// that logs in JSON format.
type Logger struct {
	slogger *slog.Logger
}

// NewLogger creates a new Logger that writes to the given writer.
//
// Diagnostics go to os.Stderr so they never mix with the query output
// written to os.Stdout. Debug entries are only written when debug is true.
func NewLogger(writer io.Writer, debug bool) Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	slogger := slog.New(slog.NewJSONHandler(writer, &slog.HandlerOptions{
		Level: level,
	}))
	return Logger{
		slogger: slogger,
	}
}

// Info logs structured info message.
//
// Accepts a message and a list of key-value pairs to be logged.
func (l *Logger) Info(msg string, keyVals ...KV) {
	l.slogger.Info(msg, kvToArgs(keyVals...)...)
}

// InfoNs logs structured info message with a namespace.
//
// The namespace is included as the first key-value pair in the log.
func (l *Logger) InfoNs(namespace string, msg string, keyVals ...KV) {
	l.slogger.Info(msg, kvToArgsNs(namespace, keyVals...)...)
}

// Debug logs structured debug message.
func (l *Logger) Debug(msg string, keyVals ...KV) {
	l.slogger.Debug(msg, kvToArgs(keyVals...)...)
}

// DebugNs logs structured debug message with a namespace.
func (l *Logger) DebugNs(namespace string, msg string, keyVals ...KV) {
	l.slogger.Debug(msg, kvToArgsNs(namespace, keyVals...)...)
}

// Error logs structured error message.
func (l *Logger) Error(msg string, keyVals ...KV) {
	l.slogger.Error(msg, kvToArgs(keyVals...)...)
}

// ErrorNs logs structured error message with a namespace.
func (l *Logger) ErrorNs(namespace string, msg string, keyVals ...KV) {
	l.slogger.Error(msg, kvToArgsNs(namespace, keyVals...)...)
}
