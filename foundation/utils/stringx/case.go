// File: case.go
// Title: String Case Conversion Utilities
// Description: Implements case conversion functions for various naming
//              conventions. Supports snake_case, camelCase, PascalCase,
//              kebab-case, title case and swap case.
// Author: msto63
// Version: v0.2.1
// Created: 2025-01-24
// Modified: 2025-03-09
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with case conversion utilities
// - 2025-03-04 v0.2.0: Word splitting via patternx, per-word capitalization
// - 2025-03-09 v0.2.1: Documented acronym handling in ToPascalCase

package stringx

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// cases.Caser values carry state, so each call builds its own.
func upper(s string) string { return cases.Upper(language.Und).String(s) }

func lower(s string) string { return cases.Lower(language.Und).String(s) }

// Capitalize uppercases the first character of every word, leaving the
// rest of each word untouched. Words separated by underscores are treated
// independently.
// Example: "hello world_foo" -> "Hello World_Foo"
func Capitalize(s string) string {
	return mapFirstCharacters(s, upper)
}

// Decapitalize lowercases the first character of every word.
// Example: "Hello World" -> "hello world"
func Decapitalize(s string) string {
	return mapFirstCharacters(s, lower)
}

func mapFirstCharacters(s string, fn func(string) string) string {
	ranges := firstCharacter.MatchedRanges(s, 0)
	if len(ranges) == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	last := 0
	for _, r := range ranges {
		b.WriteString(s[last:r.Start])
		b.WriteString(fn(r.Slice(s)))
		last = r.End
	}
	b.WriteString(s[last:])
	return b.String()
}

// ToPascalCase converts a string to PascalCase. Every word is lowered
// before it is capitalized, so acronyms lose their upper case.
// Example: "HELLO WORLD" -> "HelloWorld", "my_variable_name" -> "MyVariableName"
// Example: "XMLHttpRequest" -> "XmlHttpRequest"
func ToPascalCase(s string) string {
	var b strings.Builder
	for _, w := range words(s) {
		b.WriteString(Capitalize(lower(w)))
	}
	return b.String()
}

// ToCamelCase converts a string to camelCase.
// Example: "Hello World" -> "helloWorld"
func ToCamelCase(s string) string {
	return Decapitalize(ToPascalCase(s))
}

// ToKebabCase converts a string to kebab-case.
// Example: "MyVariableName" -> "my-variable-name"
func ToKebabCase(s string) string {
	return lower(strings.Join(words(s), "-"))
}

// ToSnakeCase converts a string to snake_case.
// Example: "MyVariableName" -> "my_variable_name"
func ToSnakeCase(s string) string {
	return lower(strings.Join(words(s), "_"))
}

// ToTitleCase converts a string to Title Case.
// Example: "hello WORLD" -> "Hello World"
func ToTitleCase(s string) string {
	return Capitalize(lower(s))
}

// SwapCase uppercases lowercase characters and lowercases everything else.
// Example: "Hello World" -> "hELLO wORLD"
func SwapCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, c := range clusters(s) {
		if c == lower(c) {
			b.WriteString(upper(c))
		} else {
			b.WriteString(lower(c))
		}
	}
	return b.String()
}
