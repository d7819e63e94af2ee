package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Field represents a single structured logging field as a key/value pair.
// Fields are passed to Logger methods to attach typed context to a message.
type Field struct {
	// Key is the field name as it appears in the log output.
	Key string
	// Value is the field value; applyFields switches on its dynamic type.
	Value any
}

// String creates a Field holding a string value.
func String(key, value string) Field { return Field{Key: key, Value: value} }

// Int creates a Field holding an int value.
func Int(key string, value int) Field { return Field{Key: key, Value: value} }

// Int64 creates a Field holding an int64 value.
func Int64(key string, value int64) Field { return Field{Key: key, Value: value} }

// Uint64 creates a Field holding a uint64 value.
func Uint64(key string, value uint64) Field { return Field{Key: key, Value: value} }

// Float64 creates a Field holding a float64 value.
func Float64(key string, value float64) Field { return Field{Key: key, Value: value} }

// Dur creates a Field holding a time.Duration value.
func Dur(key string, value time.Duration) Field { return Field{Key: key, Value: value} }

// Err creates a Field holding an error under the conventional "error" key.
func Err(err error) Field { return Field{Key: "error", Value: err} }

// Logger is the minimal structured logging contract used across the
// application. It decouples components from the zerolog backend so that tests
// can substitute buffers or the standard library logger.
type Logger interface {
	// Debug logs a message at debug level with optional fields.
	Debug(msg string, fields ...Field)
	// Info logs a message at info level with optional fields.
	Info(msg string, fields ...Field)
	// Warn logs a message at warn level with optional fields.
	Warn(msg string, fields ...Field)
	// Error logs a message at error level with the given error and optional fields.
	Error(msg string, err error, fields ...Field)
	// Printf logs a formatted message at info level (log.Printf compatibility).
	Printf(format string, v ...any)
	// Println logs its arguments at info level (log.Println compatibility).
	Println(v ...any)
}

// ZerologAdapter implements Logger on top of a zerolog.Logger.
type ZerologAdapter struct {
	logger zerolog.Logger
}

// Verify interface compliance.
var _ Logger = (*ZerologAdapter)(nil)

// NewZerologAdapter wraps an existing zerolog.Logger in the Logger interface.
func NewZerologAdapter(logger zerolog.Logger) *ZerologAdapter {
	return &ZerologAdapter{logger: logger}
}

// NewDefaultLogger creates a Logger writing human-readable output to stderr.
// This is the logger the application uses unless a component injects its own.
func NewDefaultLogger() *ZerologAdapter {
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return &ZerologAdapter{logger: zerolog.New(writer).With().Timestamp().Logger()}
}

// NewLogger creates a Logger writing JSON output to w, tagged with a component
// field. Used by subsystems that want their log lines attributable.
func NewLogger(w io.Writer, component string) *ZerologAdapter {
	return &ZerologAdapter{
		logger: zerolog.New(w).With().Timestamp().Str("component", component).Logger(),
	}
}

// Debug logs a message at debug level with optional fields.
func (a *ZerologAdapter) Debug(msg string, fields ...Field) {
	a.applyFields(a.logger.Debug(), fields).Msg(msg)
}

// Info logs a message at info level with optional fields.
func (a *ZerologAdapter) Info(msg string, fields ...Field) {
	a.applyFields(a.logger.Info(), fields).Msg(msg)
}

// Warn logs a message at warn level with optional fields.
func (a *ZerologAdapter) Warn(msg string, fields ...Field) {
	a.applyFields(a.logger.Warn(), fields).Msg(msg)
}

// Error logs a message at error level with the given error and optional fields.
func (a *ZerologAdapter) Error(msg string, err error, fields ...Field) {
	a.applyFields(a.logger.Error().Err(err), fields).Msg(msg)
}

// Printf logs a formatted message at info level (log.Printf compatibility).
func (a *ZerologAdapter) Printf(format string, v ...any) {
	a.logger.Info().Msg(fmt.Sprintf(format, v...))
}

// Println logs its arguments at info level (log.Println compatibility).
func (a *ZerologAdapter) Println(v ...any) {
	a.logger.Info().Msg(fmt.Sprint(v...))
}

// applyFields attaches the given fields to a zerolog event, dispatching on the
// dynamic type of each value to preserve typed JSON output.
func (a *ZerologAdapter) applyFields(event *zerolog.Event, fields []Field) *zerolog.Event {
	for _, f := range fields {
		switch v := f.Value.(type) {
		case string:
			event = event.Str(f.Key, v)
		case int:
			event = event.Int(f.Key, v)
		case int64:
			event = event.Int64(f.Key, v)
		case uint64:
			event = event.Uint64(f.Key, v)
		case float64:
			event = event.Float64(f.Key, v)
		case time.Duration:
			event = event.Dur(f.Key, v)
		case bool:
			event = event.Bool(f.Key, v)
		case error:
			event = event.AnErr(f.Key, v)
		default:
			event = event.Interface(f.Key, v)
		}
	}
	return event
}

// StdLoggerAdapter implements Logger on top of the standard library log.Logger.
// It exists so that code depending on Logger can be wired to a plain *log.Logger
// in tests or in contexts where zerolog is unavailable.
type StdLoggerAdapter struct {
	logger *log.Logger
}

// Verify interface compliance.
var _ Logger = (*StdLoggerAdapter)(nil)

// NewStdLoggerAdapter wraps a standard library logger in the Logger interface.
func NewStdLoggerAdapter(logger *log.Logger) *StdLoggerAdapter {
	return &StdLoggerAdapter{logger: logger}
}

// Debug logs a message at debug level with optional fields.
func (a *StdLoggerAdapter) Debug(msg string, fields ...Field) { a.print("DEBUG", msg, nil, fields) }

// Info logs a message at info level with optional fields.
func (a *StdLoggerAdapter) Info(msg string, fields ...Field) { a.print("INFO", msg, nil, fields) }

// Warn logs a message at warn level with optional fields.
func (a *StdLoggerAdapter) Warn(msg string, fields ...Field) { a.print("WARN", msg, nil, fields) }

// Error logs a message at error level with the given error and optional fields.
func (a *StdLoggerAdapter) Error(msg string, err error, fields ...Field) {
	a.print("ERROR", msg, err, fields)
}

// Printf logs a formatted message at info level.
func (a *StdLoggerAdapter) Printf(format string, v ...any) { a.logger.Printf(format, v...) }

// Println logs its arguments at info level.
func (a *StdLoggerAdapter) Println(v ...any) { a.logger.Println(v...) }

func (a *StdLoggerAdapter) print(level, msg string, err error, fields []Field) {
	line := level + " " + msg
	if err != nil {
		line += fmt.Sprintf(" error=%v", err)
	}
	for _, f := range fields {
		line += fmt.Sprintf(" %s=%v", f.Key, f.Value)
	}
	a.logger.Println(line)
}

// ParseLevel maps a configuration string to a zerolog level. Unknown values
// fall back to info so that a typo never silences logging entirely.
func ParseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}
