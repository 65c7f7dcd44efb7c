// File: linear.go
// Title: coregex Engine Adapter
// Description: Adapts github.com/coregx/coregex to the matcher interface.
//              Offsets are bytes. Compile options become inline flags.
// Author: msto63
// Version: v0.1.1
// Created: 2025-03-02
// Modified: 2025-03-09
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation
// - 2025-03-09 v0.1.1: Serialize searches on a shared Regex

package patternx

import (
	"strconv"
	"sync"

	"github.com/coregx/coregex"
)

// linear is shared through the compiled-pattern cache. coregex keeps
// per-search state on the Regex, so searches are serialized.
type linear struct {
	mu    sync.Mutex
	re    *coregex.Regex
	names []string
}

func compileLinear(source string, options CompileOptions) (*linear, error) {
	if options.Has(AllowCommentsAndWhitespace) || options.Has(ExplicitCapture) {
		return nil, errUnsupportedOption
	}
	if options.Has(IgnoreMetacharacters) {
		source = coregex.QuoteMeta(source)
	}

	flags := ""
	if options.Has(CaseInsensitive) {
		flags += "i"
	}
	if options.Has(AnchorsMatchLines) {
		flags += "m"
	}
	if options.Has(DotMatchesLineSeparators) {
		flags += "s"
	}
	if flags != "" {
		source = "(?" + flags + ")" + source
	}

	re, err := coregex.Compile(source)
	if err != nil {
		return nil, err
	}
	return &linear{re: re, names: re.SubexpNames()}, nil
}

func (l *linear) unit() Unit { return UnitByte }

func (l *linear) engine() Engine { return EngineLinear }

func (l *linear) find(subject string, startAt int) ([]match, error) {
	if startAt < 0 || startAt > len(subject) {
		return nil, nil
	}
	rest := subject[startAt:]
	l.mu.Lock()
	all := l.re.FindAllStringSubmatchIndex(rest, -1)
	l.mu.Unlock()
	found := make([]match, 0, len(all))
	for _, loc := range all {
		found = append(found, match{
			span:  span{start: startAt + loc[0], end: startAt + loc[1]},
			group: l.groupsOf(rest, loc),
		})
	}
	return found, nil
}

func (l *linear) groupsOf(s string, loc []int) func(string) (string, bool) {
	return func(name string) (string, bool) {
		n, err := strconv.Atoi(name)
		if err != nil {
			n = -1
			for i, candidate := range l.names {
				if candidate != "" && candidate == name {
					n = i
					break
				}
			}
		}
		if n < 0 || 2*n+1 >= len(loc) {
			return "", false
		}
		if loc[2*n] < 0 {
			return "", true
		}
		return s[loc[2*n]:loc[2*n+1]], true
	}
}
