// File: backtracking.go
// Title: regexp2 Engine Adapter
// Description: Adapts github.com/dlclark/regexp2 to the matcher interface.
//              Offsets are runes.
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
	"strconv"
	"time"

	"github.com/dlclark/regexp2"
)

type backtracking struct {
	re *regexp2.Regexp
}

func compileBacktracking(source string, options CompileOptions, timeout time.Duration) (*backtracking, error) {
	var flags regexp2.RegexOptions
	if options.Has(CaseInsensitive) {
		flags |= regexp2.IgnoreCase
	}
	if options.Has(AllowCommentsAndWhitespace) {
		flags |= regexp2.IgnorePatternWhitespace
	}
	if options.Has(DotMatchesLineSeparators) {
		flags |= regexp2.Singleline
	}
	if options.Has(AnchorsMatchLines) {
		flags |= regexp2.Multiline
	}
	if options.Has(ExplicitCapture) {
		flags |= regexp2.ExplicitCapture
	}
	if options.Has(IgnoreMetacharacters) {
		source = regexp2.Escape(source)
	}

	re, err := regexp2.Compile(source, flags)
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	re.MatchTimeout = timeout
	return &backtracking{re: re}, nil
}

func (b *backtracking) unit() Unit { return UnitRune }

func (b *backtracking) engine() Engine { return EngineBacktracking }

func (b *backtracking) find(subject string, startAt int) ([]match, error) {
	runes := []rune(subject)
	if startAt > len(runes) {
		return nil, nil
	}

	var found []match
	m, err := b.re.FindRunesMatchStartingAt(runes, startAt)
	for err == nil && m != nil {
		found = append(found, match{
			span:  span{start: m.Index, end: m.Index + m.Length},
			group: groupsOf(m),
		})
		m, err = b.re.FindNextMatch(m)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errMatchTimeout, err)
	}
	return found, nil
}

func groupsOf(m *regexp2.Match) func(string) (string, bool) {
	return func(name string) (string, bool) {
		var g *regexp2.Group
		if n, err := strconv.Atoi(name); err == nil {
			g = m.GroupByNumber(n)
		} else {
			g = m.GroupByName(name)
		}
		if g == nil {
			return "", false
		}
		if len(g.Captures) == 0 {
			return "", true
		}
		return g.String(), true
	}
}
