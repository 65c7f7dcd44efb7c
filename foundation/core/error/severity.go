// File: severity.go
// Title: Error Severity Levels
// Description: Severity levels decide the log level an error is reported
//              with.
// Author: msto63
// Version: v0.2.1
// Created: 2025-01-24
// Modified: 2025-03-09
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2025-03-02 v0.2.0: Severity mapping for pattern codes
// - 2025-03-09 v0.2.1: ShouldAlert drives the operation timer failure level

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow covers bad caller input: malformed patterns, invalid ranges
	SeverityLow Severity = iota

	// SeverityMedium covers failures with a workaround, such as match timeouts
	SeverityMedium

	// SeverityHigh covers failures that stop a command or service from working
	SeverityHigh

	// SeverityCritical makes the process unusable
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ShouldAlert reports whether failures of this severity are logged at
// error level
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines the severity level for an error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeServiceUnavailable:
		return SeverityCritical
	case CodeServiceInitialization, CodeConfigError, CodeMissingConfig, CodeInvalidConfig, CodeInternal:
		return SeverityHigh
	case CodeMatchTimeout, CodeCanceled:
		return SeverityMedium
	case CodeInvalidInput, CodeNotFound, CodePatternCompile, CodeInvalidRange, CodeUnknownPattern:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
