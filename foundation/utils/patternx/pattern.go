// File: pattern.go
// Title: Pattern Value and Operations
// Description: The immutable Pattern value with its fail-soft match and
//              substitution operations.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation

package patternx

import (
	"fmt"
	"strings"
	"time"

	tkerror "github.com/msto63/textkit/foundation/core/error"
	"github.com/msto63/textkit/foundation/core/log"
)

// Pattern is an immutable regular expression source with its compile
// options, engine and match timeout. The zero value never matches
// anything useful but is safe to use.
type Pattern struct {
	source  string
	options CompileOptions
	engine  Engine
	timeout time.Duration
	cache   *Cache
}

// New creates a pattern with no options on the default engine.
// Construction never fails; see Validate.
func New(source string) Pattern {
	return Pattern{source: source, timeout: DefaultTimeout}
}

// NewWithOptions creates a pattern with compile options
func NewWithOptions(source string, options CompileOptions) Pattern {
	p := New(source)
	p.options = options
	return p
}

// Source returns the pattern source
func (p Pattern) Source() string { return p.source }

// Options returns the compile options
func (p Pattern) Options() CompileOptions { return p.options }

// Engine returns the selected engine
func (p Pattern) Engine() Engine { return p.engine }

// Timeout returns the backtracking match timeout
func (p Pattern) Timeout() time.Duration { return p.timeout }

// WithEngine returns a copy using engine
func (p Pattern) WithEngine(engine Engine) Pattern {
	p.engine = engine
	return p
}

// WithOptions returns a copy with options replaced
func (p Pattern) WithOptions(options CompileOptions) Pattern {
	p.options = options
	return p
}

// WithTimeout returns a copy with the match timeout set. Values <= 0
// select DefaultTimeout.
func (p Pattern) WithTimeout(timeout time.Duration) Pattern {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	p.timeout = timeout
	return p
}

// WithCache returns a copy compiling through c instead of DefaultCache
func (p Pattern) WithCache(c *Cache) Pattern {
	p.cache = c
	return p
}

// String returns a readable description of the pattern
func (p Pattern) String() string {
	return fmt.Sprintf("/%s/ options=%s engine=%s", p.source, p.options, p.engine)
}

func (p Pattern) compiled() (matcher, error) {
	cache := p.cache
	if cache == nil {
		cache = DefaultCache()
	}
	m, err := cache.compile(cacheKey{source: p.source, options: p.options, engine: p.engine, timeout: p.timeout})
	if err != nil {
		wrapped := tkerror.Wrap(err, "pattern does not compile").
			WithCode(tkerror.CodePatternCompile).
			WithOperation("patternx.compile").
			WithDetail("pattern", p.source).
			WithDetail("engine", p.engine.String())
		logger().DebugWithErr("pattern compile failed", wrapped, log.Fields{"pattern": p.source, "engine": p.engine.String()})
		return nil, wrapped
	}
	return m, nil
}

// MatchedRanges returns the ranges of all non-overlapping matches in
// ascending order. It returns nil when the pattern does not compile or
// nothing matches.
func (p Pattern) MatchedRanges(subject string, opts MatchOptions) []MatchRange {
	return p.Evaluate(subject, opts).Ranges
}

// Matches returns the matched substrings in order
func (p Pattern) Matches(subject string, opts MatchOptions) []string {
	return p.Evaluate(subject, opts).Strings(subject)
}

// FirstMatch returns the first matched substring
func (p Pattern) FirstMatch(subject string, opts MatchOptions) (string, bool) {
	ranges := p.MatchedRanges(subject, opts)
	if len(ranges) == 0 {
		return "", false
	}
	return ranges[0].Slice(subject), true
}

// IsMatch reports whether the pattern matches anywhere in subject
func (p Pattern) IsMatch(subject string, opts MatchOptions) bool {
	return len(p.MatchedRanges(subject, opts)) > 0
}

// ReplaceMatches replaces every match inside bounds with the expanded
// template. A nil bounds covers the whole subject. The subject is returned
// unchanged when the pattern does not compile, the bounds are invalid or
// matching times out.
func (p Pattern) ReplaceMatches(subject string, opts MatchOptions, bounds *MatchRange, template string) string {
	out, err := p.ReplaceMatchesStrict(subject, opts, bounds, template)
	if err != nil {
		return subject
	}
	return out
}

// ReplaceOccurrences replaces each whole match with one literal copy of
// token, using default match options.
func (p Pattern) ReplaceOccurrences(subject, token string) string {
	ranges := p.MatchedRanges(subject, 0)
	if len(ranges) == 0 {
		return subject
	}

	var b strings.Builder
	b.Grow(len(subject))
	last := 0
	for _, r := range ranges {
		b.WriteString(subject[last:r.Start])
		b.WriteString(token)
		last = r.End
	}
	b.WriteString(subject[last:])
	return b.String()
}

// anchorChain applies the Anchored option: the first match must start at
// start and each following one where the previous ended.
func anchorChain(found []match, start int, opts MatchOptions) []match {
	if !opts.Has(Anchored) {
		return found
	}
	expected := start
	for i, m := range found {
		if m.start != expected {
			return found[:i]
		}
		expected = m.end
	}
	return found
}
