// File: strict.go
// Title: Strict Evaluation
// Description: Result type distinguishing no-match from invalid pattern
//              and timeout, plus the strict variants of the operations.
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

	tkerror "github.com/msto63/textkit/foundation/core/error"
	"github.com/msto63/textkit/foundation/core/log"
)

// Status classifies the outcome of an evaluation
type Status int

const (
	// StatusMatched means at least one range was found
	StatusMatched Status = iota
	// StatusNoMatch means the pattern compiled and nothing matched
	StatusNoMatch
	// StatusInvalidPattern means the pattern did not compile
	StatusInvalidPattern
	// StatusTimeout means the engine gave up on the subject
	StatusTimeout
)

// String returns the status name
func (s Status) String() string {
	switch s {
	case StatusMatched:
		return "matched"
	case StatusNoMatch:
		return "no-match"
	case StatusInvalidPattern:
		return "invalid-pattern"
	case StatusTimeout:
		return "timeout"
	default:
		return "unknown"
	}
}

// Result is the outcome of Evaluate. Err is set for StatusInvalidPattern
// and StatusTimeout.
type Result struct {
	Status Status
	Ranges []MatchRange
	Err    error
}

// Matched reports whether any range was found
func (r Result) Matched() bool {
	return r.Status == StatusMatched
}

// Strings returns the substrings of subject covered by the ranges
func (r Result) Strings(subject string) []string {
	if len(r.Ranges) == 0 {
		return nil
	}
	out := make([]string, len(r.Ranges))
	for i, rg := range r.Ranges {
		out[i] = rg.Slice(subject)
	}
	return out
}

// Validate compiles the pattern and returns a PATTERN_COMPILE error when
// the engine rejects it.
func (p Pattern) Validate() error {
	_, err := p.compiled()
	return err
}

// Evaluate runs a global match and reports how it ended
func (p Pattern) Evaluate(subject string, opts MatchOptions) Result {
	m, err := p.compiled()
	if err != nil {
		return Result{Status: StatusInvalidPattern, Err: err}
	}

	found, err := m.find(subject, 0)
	if err != nil {
		return Result{Status: StatusTimeout, Err: p.timeoutError(err)}
	}
	found = anchorChain(found, 0, opts)

	idx := newTextIndex(subject)
	ranges := make([]MatchRange, 0, len(found))
	for _, f := range found {
		if r, ok := idx.translate(f.start, f.end-f.start, m.unit()); ok {
			ranges = append(ranges, r)
		}
	}
	if len(ranges) == 0 {
		return Result{Status: StatusNoMatch}
	}
	return Result{Status: StatusMatched, Ranges: ranges}
}

// ReplaceMatchesStrict is ReplaceMatches reporting PATTERN_COMPILE,
// INVALID_RANGE and MATCH_TIMEOUT errors. On error the subject is
// returned unchanged alongside the error.
func (p Pattern) ReplaceMatchesStrict(subject string, opts MatchOptions, bounds *MatchRange, template string) (string, error) {
	m, err := p.compiled()
	if err != nil {
		return subject, err
	}

	idx := newTextIndex(subject)
	region := MatchRange{Start: 0, End: len(subject)}
	if bounds != nil {
		if !idx.validBounds(*bounds) {
			return subject, tkerror.New("bounding range is outside the subject or splits a character").
				WithCode(tkerror.CodeInvalidRange).
				WithOperation("patternx.ReplaceMatches").
				WithDetail("start", bounds.Start).
				WithDetail("end", bounds.End).
				WithDetail("length", len(subject))
		}
		region = *bounds
	}

	// Without transparent bounds the region is matched as a subject of its own.
	isolated := bounds != nil && !opts.Has(WithTransparentBounds)
	work, workIdx, startAt, limit := subject, idx, 0, region.End
	if isolated {
		work = region.Slice(subject)
		workIdx = newTextIndex(work)
		limit = len(work)
	} else {
		startAt = idx.fromByte(region.Start, m.unit())
	}

	found, err := m.find(work, startAt)
	if err != nil {
		return subject, p.timeoutError(err)
	}
	found = anchorChain(found, startAt, opts)

	var b strings.Builder
	b.Grow(len(work))
	last := 0
	for _, f := range found {
		from, okFrom := workIdx.toByte(f.start, m.unit())
		to, okTo := workIdx.toByte(f.end, m.unit())
		if !okFrom || !okTo || to > limit {
			break
		}
		b.WriteString(work[last:from])
		expandTemplate(&b, template, f.group)
		last = to
	}
	b.WriteString(work[last:])

	if isolated {
		return subject[:region.Start] + b.String() + subject[region.End:], nil
	}
	return b.String(), nil
}

func (p Pattern) timeoutError(err error) error {
	wrapped := tkerror.Wrap(err, "pattern match timed out").
		WithCode(tkerror.CodeMatchTimeout).
		WithOperation("patternx.match").
		WithDetail("pattern", p.source).
		WithDetail("timeout", p.timeout.String())
	logger().DebugWithErr("pattern match timed out", wrapped, log.Fields{"pattern": p.source})
	return wrapped
}
