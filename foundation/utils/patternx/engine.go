// File: engine.go
// Title: Engine Abstraction
// Description: The matcher interface implemented by the engine adapters,
//              the compile entry point that selects one, and the shared
//              replacement template expansion.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation

package patternx

import (
	"errors"
	"strings"
	"time"
)

// DefaultTimeout bounds a single backtracking match
const DefaultTimeout = 2 * time.Second

var (
	errUnsupportedOption = errors.New("option not supported by the linear engine")
	errMatchTimeout      = errors.New("match timeout")
)

// span is a match in engine units, half-open
type span struct {
	start int
	end   int
}

// match is a span plus access to its capture groups. group accepts a group
// number in decimal or a group name.
type match struct {
	span
	group func(name string) (string, bool)
}

// matcher is a compiled pattern. Offsets are in unit() coordinates.
type matcher interface {
	unit() Unit
	engine() Engine
	// find returns all non-overlapping matches starting at or after startAt
	find(subject string, startAt int) ([]match, error)
}

func compileMatcher(source string, options CompileOptions, engine Engine, timeout time.Duration) (matcher, error) {
	switch engine {
	case EngineLinear:
		return compileLinear(source, options)
	case EngineAuto:
		if m, err := compileLinear(source, options); err == nil {
			return m, nil
		}
		return compileBacktracking(source, options, timeout)
	default:
		return compileBacktracking(source, options, timeout)
	}
}

// expandTemplate appends template to dst with group references replaced:
// $n and ${n} by group n, ${name} by a named group, $$ by a dollar sign.
// For $n the longest digit prefix naming an existing group is used. A
// reference to a group that does not exist is copied literally; a group
// that did not participate expands to nothing.
func expandTemplate(dst *strings.Builder, template string, group func(string) (string, bool)) {
	for {
		i := strings.IndexByte(template, '$')
		if i < 0 || i == len(template)-1 {
			dst.WriteString(template)
			return
		}
		dst.WriteString(template[:i])
		template = template[i:]

		switch c := template[1]; {
		case c == '$':
			dst.WriteByte('$')
			template = template[2:]

		case c == '{':
			end := strings.IndexByte(template, '}')
			if end < 0 {
				dst.WriteString(template)
				return
			}
			if text, ok := group(template[2:end]); ok && end > 2 {
				dst.WriteString(text)
			} else {
				dst.WriteString(template[:end+1])
			}
			template = template[end+1:]

		case c >= '0' && c <= '9':
			n := 1
			for n < len(template) && template[n] >= '0' && template[n] <= '9' {
				n++
			}
			expanded := false
			for k := n; k > 1; k-- {
				if text, ok := group(template[1:k]); ok {
					dst.WriteString(text)
					template = template[k:]
					expanded = true
					break
				}
			}
			if !expanded {
				dst.WriteString(template[:n])
				template = template[n:]
			}

		default:
			dst.WriteByte('$')
			template = template[1:]
		}
	}
}
