// File: logger.go
// Title: Package Logger
// Description: Debug logging of compile failures and timeouts.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation

package patternx

import (
	"sync/atomic"

	"github.com/msto63/textkit/foundation/core/log"
)

var pkgLogger atomic.Pointer[log.Logger]

// SetLogger sets the logger used for fail-soft diagnostics. Passing nil
// restores the default logger.
func SetLogger(l *log.Logger) {
	pkgLogger.Store(l)
}

func logger() *log.Logger {
	if l := pkgLogger.Load(); l != nil {
		return l
	}
	return log.GetDefault().WithName("patternx")
}
