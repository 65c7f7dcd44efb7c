// File: engine_test.go
// Title: Engine Adapter Tests
// Description: Tests for engine selection and replacement template expansion.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial test implementation

package patternx

import (
	"errors"
	"strings"
	"testing"
)

func TestCompileMatcher_EngineSelection(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		options CompileOptions
		engine  Engine
		want    Engine
		unit    Unit
	}{
		{"backtracking", `\d+`, 0, EngineBacktracking, EngineBacktracking, UnitRune},
		{"linear", `\d+`, 0, EngineLinear, EngineLinear, UnitByte},
		{"auto picks linear", `\d+`, 0, EngineAuto, EngineLinear, UnitByte},
		{"auto falls back on lookbehind", `(?<=_)\w`, 0, EngineAuto, EngineBacktracking, UnitRune},
		{"auto falls back on comments", `a b`, AllowCommentsAndWhitespace, EngineAuto, EngineBacktracking, UnitRune},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := compileMatcher(tt.source, tt.options, tt.engine, DefaultTimeout)
			if err != nil {
				t.Fatalf("compileMatcher() error = %v", err)
			}
			if m.engine() != tt.want || m.unit() != tt.unit {
				t.Errorf("got engine %v unit %v, want %v %v", m.engine(), m.unit(), tt.want, tt.unit)
			}
		})
	}
}

func TestCompileLinear_RejectsOptions(t *testing.T) {
	for _, opt := range []CompileOptions{AllowCommentsAndWhitespace, ExplicitCapture} {
		if _, err := compileLinear(`a`, opt); !errors.Is(err, errUnsupportedOption) {
			t.Errorf("compileLinear(%v) error = %v", opt, err)
		}
	}
	if _, err := compileLinear(`(?<=a)b`, 0); err == nil {
		t.Error("linear engine accepted a lookbehind")
	}
}

func TestFind_StartAt(t *testing.T) {
	subject := "ab ab ab"
	for _, engine := range []Engine{EngineBacktracking, EngineLinear} {
		m, err := compileMatcher(`ab`, 0, engine, DefaultTimeout)
		if err != nil {
			t.Fatal(err)
		}
		found, err := m.find(subject, 3)
		if err != nil {
			t.Fatal(err)
		}
		if len(found) != 2 || found[0].start != 3 || found[1].start != 6 {
			t.Errorf("%v: find from 3 = %+v", engine, found)
		}
		if found, _ := m.find(subject, 99); len(found) != 0 {
			t.Errorf("%v: find past the end = %+v", engine, found)
		}
	}
}

func TestExpandTemplate(t *testing.T) {
	groups := map[string]string{"0": "whole", "1": "one", "name": "named", "2": ""}
	lookup := func(name string) (string, bool) {
		v, ok := groups[name]
		return v, ok
	}

	tests := []struct {
		template string
		want     string
	}{
		{"plain", "plain"},
		{"$1", "one"},
		{"<$0>", "<whole>"},
		{"${name}!", "named!"},
		{"${1}x", "onex"},
		{"$$1", "$1"},
		{"$12", "one2"},
		{"$9", "$9"},
		{"${missing}", "${missing}"},
		{"${}", "${}"},
		{"${unterminated", "${unterminated"},
		{"[$2]", "[]"},
		{"end$", "end$"},
		{"$x", "$x"},
	}

	for _, tt := range tests {
		var b strings.Builder
		expandTemplate(&b, tt.template, lookup)
		if got := b.String(); got != tt.want {
			t.Errorf("expandTemplate(%q) = %q, want %q", tt.template, got, tt.want)
		}
	}
}
