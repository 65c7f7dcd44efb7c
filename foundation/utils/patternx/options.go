// File: options.go
// Title: Pattern Options
// Description: Compile options, match options and engine selection.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation

package patternx

import (
	"strings"
)

// CompileOptions is a bit set of options applied when compiling a pattern
type CompileOptions uint

const (
	// CaseInsensitive matches letters without regard to case
	CaseInsensitive CompileOptions = 1 << iota
	// AllowCommentsAndWhitespace ignores unescaped whitespace and # comments
	AllowCommentsAndWhitespace
	// IgnoreMetacharacters treats the whole source as a literal
	IgnoreMetacharacters
	// DotMatchesLineSeparators lets . match \n
	DotMatchesLineSeparators
	// AnchorsMatchLines lets ^ and $ match at line boundaries
	AnchorsMatchLines
	// ExplicitCapture makes unnamed groups non-capturing
	ExplicitCapture
)

var compileOptionNames = []struct {
	opt  CompileOptions
	name string
}{
	{CaseInsensitive, "case-insensitive"},
	{AllowCommentsAndWhitespace, "comments"},
	{IgnoreMetacharacters, "literal"},
	{DotMatchesLineSeparators, "dot-all"},
	{AnchorsMatchLines, "multiline"},
	{ExplicitCapture, "explicit-capture"},
}

// Has reports whether all bits of o are set
func (c CompileOptions) Has(o CompileOptions) bool {
	return c&o == o
}

// String lists the set options separated by "|"
func (c CompileOptions) String() string {
	var names []string
	for _, n := range compileOptionNames {
		if c.Has(n.opt) {
			names = append(names, n.name)
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "|")
}

// ParseCompileOptions parses names as produced by String. Unknown names are
// reported in the second return value.
func ParseCompileOptions(names ...string) (CompileOptions, []string) {
	var opts CompileOptions
	var unknown []string
	for _, raw := range names {
		name := strings.ToLower(strings.TrimSpace(raw))
		if name == "" || name == "none" {
			continue
		}
		found := false
		for _, n := range compileOptionNames {
			if n.name == name {
				opts |= n.opt
				found = true
				break
			}
		}
		if !found {
			unknown = append(unknown, raw)
		}
	}
	return opts, unknown
}

// MatchOptions is a bit set of options evaluated at match time
type MatchOptions uint

const (
	// Anchored requires the first match to start where the search starts
	// and every further match to start where the previous one ended.
	Anchored MatchOptions = 1 << iota
	// WithTransparentBounds lets lookaround and word boundaries see the
	// text outside a bounding range.
	WithTransparentBounds
)

// Has reports whether all bits of o are set
func (m MatchOptions) Has(o MatchOptions) bool {
	return m&o == o
}

// String lists the set options separated by "|"
func (m MatchOptions) String() string {
	var names []string
	if m.Has(Anchored) {
		names = append(names, "anchored")
	}
	if m.Has(WithTransparentBounds) {
		names = append(names, "transparent-bounds")
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "|")
}

// Engine selects the regular-expression engine
type Engine int

const (
	// EngineBacktracking uses github.com/dlclark/regexp2
	EngineBacktracking Engine = iota
	// EngineLinear uses github.com/coregx/coregex
	EngineLinear
	// EngineAuto uses coregex when it accepts the pattern, regexp2 otherwise
	EngineAuto
)

// String returns the engine name
func (e Engine) String() string {
	switch e {
	case EngineBacktracking:
		return "backtracking"
	case EngineLinear:
		return "linear"
	case EngineAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// ParseEngine parses an engine name. It accepts the library names as aliases.
func ParseEngine(name string) (Engine, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "backtracking", "regexp2":
		return EngineBacktracking, true
	case "linear", "coregex", "re2":
		return EngineLinear, true
	case "auto":
		return EngineAuto, true
	default:
		return EngineBacktracking, false
	}
}
