// ============================================================================
// textkit - Pattern Matching and String Transforms
// ============================================================================
//
// Package:     logging
// Description: Key-value logging facade over the foundation logger
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package logging

import (
	"context"

	tklog "github.com/msto63/textkit/foundation/core/log"
)

// Level represents log severity (for compatibility)
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

func (l Level) foundation() tklog.Level {
	switch l {
	case LevelDebug:
		return tklog.LevelDebug
	case LevelWarn:
		return tklog.LevelWarn
	case LevelError:
		return tklog.LevelError
	default:
		return tklog.LevelInfo
	}
}

// Logger wraps the foundation logger with key-value methods
type Logger struct {
	*tklog.Logger
	name string
}

// New creates a text logger on stderr named after the component
func New(name string) *Logger {
	return Wrap(NewSimpleLogger(name), name)
}

// Wrap adapts an existing foundation logger
func Wrap(l *tklog.Logger, name string) *Logger {
	return &Logger{Logger: l, name: name}
}

// Name returns the component name
func (l *Logger) Name() string {
	return l.name
}

// WithLevel returns a new logger with the specified level
func (l *Logger) WithLevel(level Level) *Logger {
	return &Logger{Logger: l.Logger.WithLevel(level.foundation()), name: l.name}
}

// WithContext returns a logger carrying the request and correlation IDs
// stored in ctx
func (l *Logger) WithContext(ctx context.Context) *Logger {
	return &Logger{Logger: l.Logger.WithContext(ctx), name: l.name}
}

// Debug logs a debug message with key-value pairs
func (l *Logger) Debug(msg string, keysAndValues ...interface{}) {
	l.Logger.Debug(msg, toFields(keysAndValues...))
}

// Info logs an info message with key-value pairs
func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	l.Logger.Info(msg, toFields(keysAndValues...))
}

// Warn logs a warning message with key-value pairs
func (l *Logger) Warn(msg string, keysAndValues ...interface{}) {
	l.Logger.Warn(msg, toFields(keysAndValues...))
}

// Error logs an error message with key-value pairs
func (l *Logger) Error(msg string, keysAndValues ...interface{}) {
	l.Logger.Error(msg, toFields(keysAndValues...))
}

// toFields converts key-value pairs to log fields. Non-string keys and a
// trailing key without value are skipped.
func toFields(keysAndValues ...interface{}) tklog.Fields {
	if len(keysAndValues) == 0 {
		return nil
	}

	fields := make(tklog.Fields)
	for i := 0; i < len(keysAndValues)-1; i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		fields[key] = keysAndValues[i+1]
	}
	return fields
}
