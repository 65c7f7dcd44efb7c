// File: error_test.go
// Title: Error Module Tests
// Description: Tests for error creation, wrapping, codes, severity and
//              JSON output.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive test coverage
// - 2025-03-02 v0.2.0: Coverage for pattern codes and errors.Is matching

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New("test error message")

	if err.Error() != "test error message" {
		t.Errorf("Error() = %q, want %q", err.Error(), "test error message")
	}
	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}
	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}
	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantNil  bool
		wantMsg  string
		wantCode Code
	}{
		{"wrap nil error", nil, true, "", ""},
		{"wrap standard error", errors.New("original error"), false, "wrapper: original error", CodeUnknown},
		{"wrap structured error", New("bad pattern").WithCode(CodePatternCompile), false, "wrapper: bad pattern", CodePatternCompile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := Wrap(tt.err, "wrapper")
			if tt.wantNil {
				if wrapped != nil {
					t.Errorf("Wrap(nil) = %v, want nil", wrapped)
				}
				return
			}
			if wrapped.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", wrapped.Error(), tt.wantMsg)
			}
			if wrapped.Code() != tt.wantCode {
				t.Errorf("Code() = %v, want %v", wrapped.Code(), tt.wantCode)
			}
			if !errors.Is(wrapped, tt.err) {
				t.Error("wrapped error should match its cause with errors.Is")
			}
		})
	}
}

func TestWrap_CarriesDetails(t *testing.T) {
	inner := New("timeout").WithCode(CodeMatchTimeout).WithDetail("pattern", "(a+)+$")
	wrapped := Wrap(inner, "replace failed")

	if got := wrapped.Details()["pattern"]; got != "(a+)+$" {
		t.Errorf("detail pattern = %v, want (a+)+$", got)
	}
	if wrapped.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", wrapped.Severity(), SeverityMedium)
	}
}

func TestWrap_TruncatesDeepChains(t *testing.T) {
	var err error = New("root").WithCode(CodeInvalidRange)
	for i := 0; i < MaxErrorChainDepth+2; i++ {
		err = Wrap(err, fmt.Sprintf("level %d", i))
	}

	e, ok := As(err)
	if !ok {
		t.Fatal("As() should find a structured error")
	}
	if e.Details()["truncated"] != true {
		t.Error("deep chain should be flattened")
	}
	if e.Code() != CodeInvalidRange {
		t.Errorf("Code() = %v, want %v", e.Code(), CodeInvalidRange)
	}
}

func TestWithCode_DerivesSeverity(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodePatternCompile, SeverityLow},
		{CodeInvalidRange, SeverityLow},
		{CodeMatchTimeout, SeverityMedium},
		{CodeConfigError, SeverityHigh},
		{CodeServiceUnavailable, SeverityCritical},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			err := New("x").WithCode(tt.code)
			if err.Severity() != tt.want {
				t.Errorf("Severity() = %v, want %v", err.Severity(), tt.want)
			}
		})
	}

	explicit := New("x").WithSeverity(SeverityHigh).WithCode(CodePatternCompile)
	if explicit.Severity() != SeverityHigh {
		t.Errorf("explicit severity overwritten: %v", explicit.Severity())
	}
}

func TestHasCodeAndIs(t *testing.T) {
	base := New("invalid").WithCode(CodePatternCompile)
	err := fmt.Errorf("command failed: %w", Wrap(base, "validate"))

	if !HasCode(err, CodePatternCompile) {
		t.Error("HasCode() should find the code through fmt wrapping")
	}
	if HasCode(err, CodeMatchTimeout) {
		t.Error("HasCode() reported a code that is not in the chain")
	}
	if GetCode(err) != CodePatternCompile {
		t.Errorf("GetCode() = %v, want %v", GetCode(err), CodePatternCompile)
	}
	if !errors.Is(err, New("").WithCode(CodePatternCompile)) {
		t.Error("errors.Is should match on code")
	}
	if errors.Is(err, New("")) {
		t.Error("errors.Is must not match an error without code")
	}
	if GetCode(errors.New("plain")) != CodeUnknown {
		t.Error("plain errors have CodeUnknown")
	}
}

func TestCode_Category(t *testing.T) {
	tests := map[Code]string{
		CodePatternCompile:        "pattern",
		CodeInvalidRange:          "pattern",
		CodeServiceInitialization: "service",
		CodeInvalidConfig:         "configuration",
		CodeInvalidInput:          "generic",
	}
	for code, want := range tests {
		if got := code.Category(); got != want {
			t.Errorf("%s.Category() = %q, want %q", code, got, want)
		}
		if !code.IsValid() {
			t.Errorf("%s.IsValid() = false", code)
		}
	}
	if Code("NOPE").IsValid() {
		t.Error("unknown code reported as valid")
	}
}

func TestMarshalJSON(t *testing.T) {
	err := Wrap(errors.New("boom"), "compile").
		WithCode(CodePatternCompile).
		WithOperation("patternx.Validate").
		WithDetail("pattern", "(")

	data, mErr := json.Marshal(err)
	if mErr != nil {
		t.Fatalf("Marshal() error = %v", mErr)
	}

	var decoded map[string]interface{}
	if uErr := json.Unmarshal(data, &decoded); uErr != nil {
		t.Fatalf("Unmarshal() error = %v", uErr)
	}
	if decoded["code"] != "PATTERN_COMPILE" {
		t.Errorf("code = %v", decoded["code"])
	}
	if decoded["operation"] != "patternx.Validate" {
		t.Errorf("operation = %v", decoded["operation"])
	}
	if decoded["cause"] != "boom" {
		t.Errorf("cause = %v", decoded["cause"])
	}
}

func TestString(t *testing.T) {
	err := New("bad range").WithCode(CodeInvalidRange).WithDetail("start", 4).WithDetail("end", 2)
	s := err.String()
	for _, want := range []string{"Code: INVALID_RANGE", "Severity: low", "Details: {end=2, start=4}"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q:\n%s", want, s)
		}
	}
}
