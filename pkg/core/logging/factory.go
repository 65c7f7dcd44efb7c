// ============================================================================
// textkit - Pattern Matching and String Transforms
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating configured loggers
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/msto63/textkit/foundation/core/config"
	tklog "github.com/msto63/textkit/foundation/core/log"
)

// Configuration keys read by FromConfig
const (
	KeyLevel  = "log.level"
	KeyFormat = "log.format"
	KeyFile   = "log.file"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Service name
	ServiceName string

	// Log level (trace, debug, info, warn, error, off)
	Level string

	// Output format (json, text, console, logfmt)
	Format string

	// Output defaults to stderr
	Output io.Writer

	// Additional outputs besides Output
	AdditionalOutputs []io.Writer
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(serviceName string) LoggerConfig {
	return LoggerConfig{
		ServiceName: serviceName,
		Level:       "info",
		Format:      "text",
	}
}

// FromConfig reads log.level and log.format from cfg on top of the defaults
func FromConfig(cfg *config.Config, serviceName string) LoggerConfig {
	lc := DefaultLoggerConfig(serviceName)
	if cfg == nil {
		return lc
	}
	lc.Level = cfg.GetString(KeyLevel, lc.Level)
	lc.Format = cfg.GetString(KeyFormat, lc.Format)
	return lc
}

// OpenLogFile opens the file named by log.file for appending. It returns
// nil when the key is unset.
func OpenLogFile(cfg *config.Config) (*os.File, error) {
	if cfg == nil {
		return nil, nil
	}
	path := cfg.GetString(KeyFile)
	if path == "" {
		return nil, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", path, err)
	}
	return f, nil
}

// NewLogger creates a foundation logger from cfg. Unknown levels fall
// back to info and unknown formats to text.
func NewLogger(cfg LoggerConfig) *tklog.Logger {
	level, err := tklog.ParseLevel(cfg.Level)
	if err != nil {
		level = tklog.LevelInfo
	}
	format, err := tklog.ParseFormat(cfg.Format)
	if err != nil {
		format = tklog.FormatText
	}

	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}
	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	return tklog.NewWithConfig(tklog.Config{
		Level:  level,
		Format: format,
		Output: output,
		Name:   cfg.ServiceName,
	})
}

// NewSimpleLogger creates a text logger on stderr
func NewSimpleLogger(serviceName string) *tklog.Logger {
	return NewLogger(DefaultLoggerConfig(serviceName))
}
