// File: timer.go
// Title: Operation Timer
// Description: Measures one operation and logs its duration when it ends.
//              Failures are logged at a level derived from the error
//              severity.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2025-03-09
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with performance timing
// - 2025-03-02 v0.2.0: Duration carried on the entry, removed checkpoints
// - 2025-03-09 v0.3.0: Severity based failure level, single completion entry

package log

import (
	"time"

	tkerror "github.com/msto63/textkit/foundation/core/error"
)

// Timer measures a single operation. Only the first Stop or StopWithError
// call writes an entry.
type Timer struct {
	logger    *Logger
	operation string
	start     time.Time
	fields    Fields
	done      bool
}

// NewTimer starts timing operation
func NewTimer(logger *Logger, operation string) *Timer {
	return &Timer{
		logger:    logger,
		operation: operation,
		start:     time.Now(),
		fields:    Fields{"operation": operation},
	}
}

// WithField adds a field to the completion entry
func (t *Timer) WithField(key string, value interface{}) *Timer {
	t.fields[key] = value
	return t
}

// Stop logs "<operation> completed" at debug level and returns the
// elapsed time, or 0 when the timer already ended.
func (t *Timer) Stop() time.Duration {
	return t.finish(LevelDebug, "completed", nil)
}

// StopWithError logs "<operation> failed" with err. Errors whose severity
// should alert are logged at error level, all others at warn level.
func (t *Timer) StopWithError(err error) time.Duration {
	level := LevelWarn
	if tkerror.GetSeverity(err).ShouldAlert() {
		level = LevelError
	}
	return t.finish(level, "failed", err)
}

func (t *Timer) finish(level Level, outcome string, err error) time.Duration {
	if t.done {
		return 0
	}
	t.done = true
	elapsed := time.Since(t.start)
	if t.logger != nil {
		t.logger.log(level, t.operation+" "+outcome, err, elapsed, t.fields)
	}
	return elapsed
}
