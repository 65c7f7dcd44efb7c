// Package error provides the structured error type used across textkit.
//
// Package: error
// Title: textkit Error Handling
// Description: Structured errors carrying a code, a severity, the failing
//              operation and free-form details. The pattern matcher uses it
//              for its strict mode, the service and CLI layers use it to
//              report configuration and request problems.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2025-03-02 v0.2.0: Pattern and range codes for the matcher strict mode
//
// Usage:
//
//	err := error.New("pattern does not compile").
//		WithCode(error.CodePatternCompile).
//		WithOperation("patternx.Validate").
//		WithDetail("pattern", src)
//
//	if error.HasCode(err, error.CodePatternCompile) {
//		// report it to the caller
//	}
package error
