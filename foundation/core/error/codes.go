// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used by textkit. Codes classify
//              failures for logging, CLI exit messages and gRPC status
//              mapping.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2025-03-02 v0.2.0: Pattern, range and timeout codes; dropped platform codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeCanceled     Code = "CANCELED"

	// Pattern matching
	CodePatternCompile Code = "PATTERN_COMPILE"
	CodeMatchTimeout   Code = "MATCH_TIMEOUT"
	CodeInvalidRange   Code = "INVALID_RANGE"
	CodeUnknownPattern Code = "UNKNOWN_PATTERN"

	// Service
	CodeServiceInitialization Code = "SERVICE_INITIALIZATION"
	CodeServiceUnavailable    Code = "SERVICE_UNAVAILABLE"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput, CodeCanceled,
		CodePatternCompile, CodeMatchTimeout, CodeInvalidRange, CodeUnknownPattern,
		CodeServiceInitialization, CodeServiceUnavailable,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodePatternCompile, CodeMatchTimeout, CodeInvalidRange, CodeUnknownPattern:
		return "pattern"
	case CodeServiceInitialization, CodeServiceUnavailable:
		return "service"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	default:
		return "generic"
	}
}
