// Package log provides structured logging for gocatboost model scoring.
//
// It defines a minimal, slog-compatible logging interface backed by zerolog,
// so library consumers can observe model loading and scoring without the
// binding dictating their logging setup. The interface supports contextual
// field chaining through With, and the standard attribute keys in this
// package keep field names consistent across the codebase.
//
// Example usage:
//
//	logger := log.GetLoggerWithName("catboost").With(
//	    log.ModelPathKey, "/models/ranker.cbm",
//	)
//	logger.Info("model loaded",
//	    log.TreesKey, 1000,
//	    log.DimensionsKey, 1,
//	)
package log

import (
	"context"
)

// Logger defines a structured logging interface compatible with Go's log/slog.
//
// Fields are alternating key-value pairs. Error values are logged under
// their key and, when they carry a cockroachdb/errors stack, a stacktrace
// attribute is attached automatically.
type Logger interface {
	// Debug logs a debug-level message with optional structured fields.
	Debug(msg string, fields ...any)

	// Info logs an info-level message with optional structured fields.
	Info(msg string, fields ...any)

	// Warn logs a warning-level message with optional structured fields.
	Warn(msg string, fields ...any)

	// Error logs an error-level message with optional structured fields.
	Error(msg string, fields ...any)

	// With returns a new Logger with the given fields pre-populated.
	With(fields ...any) Logger

	// Enabled reports whether the logger emits records at the given level.
	// Use it to avoid building expensive fields for records that would be
	// discarded.
	Enabled(ctx context.Context, level Level) bool
}

// Level represents a logging level, value-compatible with slog.Level.
type Level int

// Standard logging levels.
const (
	LevelDebug Level = -4
	LevelInfo  Level = 0
	LevelWarn  Level = 4
	LevelError Level = 8
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}
