// Package logger decouples visaio from any particular logging framework.
//
// The Logger interface carries structured key/value logging at the usual
// severity levels; the default implementation sits on log/slog with a
// console handler for development and JSON output otherwise.
package logger

// Level indicates the logging severity level.
type Level = int8

const (
	// DebugLevel logs are typically voluminous, and are usually disabled in production.
	DebugLevel Level = iota - 1
	// InfoLevel is the default logging priority.
	InfoLevel
	// WarnLevel logs are more important than Info, but don't need individual human review.
	WarnLevel
	// ErrorLevel logs are high-priority.
	ErrorLevel
)

// Logger is the common logging interface used throughout visaio.
type Logger interface {
	// Debug logs a message at DebugLevel with the given key/value fields.
	Debug(msg string, keysAndValues ...any)
	// Info logs a message at InfoLevel with the given key/value fields.
	Info(msg string, keysAndValues ...any)
	// Warn logs a message at WarnLevel with the given key/value fields.
	Warn(msg string, keysAndValues ...any)
	// Error logs a message at ErrorLevel with the given key/value fields.
	Error(msg string, keysAndValues ...any)
	// With creates a child logger carrying additional structured context.
	With(keysAndValues ...any) Logger
	// Level returns the minimum enabled level for this logger.
	Level() Level
	// SetLevel sets the minimum enabled level for this logger.
	SetLevel(level Level)
}
