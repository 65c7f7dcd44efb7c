// Package patternx provides an immutable regular-expression pattern value
// with match, range and substitution operations over external engines.
//
// Package: patternx
// Title: Pattern Matching Utilities
// Description: A Pattern pairs a source string with compile options, an
//              engine and a match timeout. Compilation is lazy and cached.
//              By default every operation is fail-soft: an invalid pattern
//              behaves as one that matches nothing and substitution returns
//              the subject unchanged. Validate, Evaluate and
//              ReplaceMatchesStrict surface the underlying errors instead.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation with regexp2 and coregex engines
//
// Engines:
//
//   - EngineBacktracking (default) uses github.com/dlclark/regexp2. It
//     supports lookaround, Unicode \w \d \b and $1 / ${name} templates.
//   - EngineLinear uses github.com/coregx/coregex, an RE2 engine with linear
//     matching time.
//   - EngineAuto tries coregex first and falls back to regexp2 when coregex
//     rejects the pattern.
//
// Ranges:
//
// Engines report offsets in their own units (runes for regexp2, bytes for
// coregex). Every reported span is translated into a MatchRange of byte
// offsets that lie on grapheme cluster boundaries. Spans that cannot be
// translated are dropped from the result.
//
// Usage:
//
//	p := patternx.New(`[a-z]{3}`)
//	p.Matches("AAAbbbCCCdddEEEfff", 0) // ["bbb" "ddd" "fff"]
//
//	email := patternx.MustLookup(patternx.Email)
//	email.IsMatch("admin@meniny.cn", 0) // true
//
//	p = patternx.New(`(\w+)@(\w+)`)
//	p.ReplaceMatches("joe@home", 0, nil, "$2 at $1") // "home at joe"
//
//	if err := patternx.New(`(`).Validate(); err != nil {
//		// PATTERN_COMPILE
//	}
package patternx
