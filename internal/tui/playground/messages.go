// ============================================================================
// textkit - Pattern Matching and String Transforms
// ============================================================================
//
// Package:     playground
// Description: Message types for async evaluation in the playground
// Author:      Mike Stoffels
// Created:     2025-12-07
// License:     MIT
// ============================================================================

package playground

import (
	"github.com/msto63/textkit/internal/textkit/service"
)

// evaluatedMsg carries the outcome of one evaluation. seq identifies the
// input state it was computed for; stale results are dropped.
type evaluatedMsg struct {
	seq         int
	match       *service.MatchResult
	replacement string
	err         error
}
