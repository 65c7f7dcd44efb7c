// File: stringx_test.go
// Title: Unit Tests for Core String Utilities
// Description: Unit tests for cluster-aware core operations, sanitization
//              and word splitting.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-04
//
// Change History:
// - 2025-01-24 v0.1.0: Initial test implementation
// - 2025-03-04 v0.2.0: Cluster, accent, sanitize and split tests

package stringx

import (
	"reflect"
	"testing"
)

func TestIsEmpty(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"empty string", "", true},
		{"single space", " ", false},
		{"normal string", "hello", false},
		{"unicode string", "こんにちは", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := IsEmpty(tt.input); result != tt.expected {
				t.Errorf("IsEmpty(%q) = %v; want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestIsBlank(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"empty string", "", true},
		{"multiple spaces", "   ", true},
		{"mixed whitespace", " \t\n\r ", true},
		{"string with content", "hello", false},
		{"string with spaces around", " hello ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := IsBlank(tt.input); result != tt.expected {
				t.Errorf("IsBlank(%q) = %v; want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestLengthAndCharacters(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		length int
		first  string
		last   string
	}{
		{"empty", "", 0, "", ""},
		{"ascii", "Hello World", 11, "H", "d"},
		{"decomposed accent", "e\u0301te\u0301", 3, "e\u0301", "e\u0301"},
		{"emoji with modifier", "\U0001F44D\U0001F3FD ok", 4, "\U0001F44D\U0001F3FD", "k"},
		{"flag", "\U0001F1E9\U0001F1EA", 1, "\U0001F1E9\U0001F1EA", "\U0001F1E9\U0001F1EA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Length(tt.input); got != tt.length {
				t.Errorf("Length() = %d; want %d", got, tt.length)
			}
			if got := FirstCharacter(tt.input); got != tt.first {
				t.Errorf("FirstCharacter() = %q; want %q", got, tt.first)
			}
			if got := LastCharacter(tt.input); got != tt.last {
				t.Errorf("LastCharacter() = %q; want %q", got, tt.last)
			}
		})
	}
}

func TestReverse(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"Hello World", "dlroW olleH"},
		{"aéb", "béa"},
		{"a\U0001F44D\U0001F3FDb", "b\U0001F44D\U0001F3FDa"},
	}
	for _, tt := range tests {
		if got := Reverse(tt.input); got != tt.expected {
			t.Errorf("Reverse(%q) = %q; want %q", tt.input, got, tt.expected)
		}
	}
}

func TestWithoutAccentsAndLatinize(t *testing.T) {
	tests := []struct {
		input    string
		accents  string
		latinize string
	}{
		{"Crème brûlée", "Creme brulee", "Creme brulee"},
		{"été", "ete", "ete"},
		{"Straße", "Straße", "Strasse"},
		{"Łódź", "Łodz", "Lodz"},
		{"Ærøskøbing", "Ærøskøbing", "AEroskobing"},
		{"plain", "plain", "plain"},
	}
	for _, tt := range tests {
		if got := WithoutAccents(tt.input); got != tt.accents {
			t.Errorf("WithoutAccents(%q) = %q; want %q", tt.input, got, tt.accents)
		}
		if got := Latinize(tt.input); got != tt.latinize {
			t.Errorf("Latinize(%q) = %q; want %q", tt.input, got, tt.latinize)
		}
	}
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"clean", "Hello World", "Hello World"},
		{"punctuation", "hello, world!", "hello  world"},
		{"underscores", "my_variable-name", "my variable name"},
		{"surrounding", "  --abc--  ", "abc"},
		{"only symbols", "!@#$", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sanitize(tt.input)
			if got != tt.expected {
				t.Errorf("Sanitize(%q) = %q; want %q", tt.input, got, tt.expected)
			}
			if again := Sanitize(got); again != got {
				t.Errorf("Sanitize is not idempotent: %q -> %q", got, again)
			}
		})
	}
}

func TestSanitizeKeepingWhitespace(t *testing.T) {
	if got := SanitizeKeepingWhitespace("a\tb, c!"); got != "a\tb  c" {
		t.Errorf("SanitizeKeepingWhitespace() = %q", got)
	}
}

func TestSplitWordsByCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"HelloWorld", "Hello World"},
		{"helloWorld", "hello World"},
		{"HELLO WORLD", "HELLO WORLD"},
		{"HTTPServer", "HTTP Server"},
		{"parseHTTPResponse", "parse HTTP Response"},
		{"my_variable__name", "my variable name"},
		{"  spaced   out  ", "spaced out"},
		{"version2Beta", "version2 Beta"},
	}
	for _, tt := range tests {
		if got := SplitWordsByCase(tt.input); got != tt.expected {
			t.Errorf("SplitWordsByCase(%q) = %q; want %q", tt.input, got, tt.expected)
		}
	}
}

func TestWordCharacters(t *testing.T) {
	if got := FirstCharacterOfEachWord("hello world_foo"); !reflect.DeepEqual(got, []string{"h", "w", "f"}) {
		t.Errorf("FirstCharacterOfEachWord() = %q", got)
	}
	if got := LastCharacterOfEachWord("hello world_foo"); !reflect.DeepEqual(got, []string{"o", "d", "o"}) {
		t.Errorf("LastCharacterOfEachWord() = %q", got)
	}
	if got := FirstCharacterOfEachWord(""); len(got) != 0 {
		t.Errorf("FirstCharacterOfEachWord(\"\") = %q", got)
	}
}

func TestFormatChecks(t *testing.T) {
	tests := []struct {
		input      string
		email      bool
		scientific bool
	}{
		{"admin@meniny.cn", true, false},
		{"not-an-email", false, false},
		{"1.5E10", false, true},
		{"+3.14E-2", false, true},
		{"15E10", false, false},
		{"", false, false},
	}
	for _, tt := range tests {
		if got := IsEmail(tt.input); got != tt.email {
			t.Errorf("IsEmail(%q) = %v", tt.input, got)
		}
		if got := IsScientificNotation(tt.input); got != tt.scientific {
			t.Errorf("IsScientificNotation(%q) = %v", tt.input, got)
		}
	}
}
