// File: sanitize.go
// Title: Sanitization and Word Splitting
// Description: Reduces strings to alphanumeric words and splits words at
//              case transitions using the built-in patterns.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-04
// Modified: 2025-03-04
//
// Change History:
// - 2025-03-04 v0.1.0: Initial implementation

package stringx

import (
	"strings"

	"github.com/msto63/textkit/foundation/utils/patternx"
)

var (
	nonAlphanumeric      = patternx.MustLookup(patternx.NonAlphanumeric)
	nonAlphanumericSpace = patternx.MustLookup(patternx.NonAlphanumericSpace)
	firstCharacter       = patternx.MustLookup(patternx.FirstCharacter)
	lastCharacter        = patternx.MustLookup(patternx.LastCharacter)
	email                = patternx.MustLookup(patternx.Email)
	scientificNotation   = patternx.MustLookup(patternx.ScientificNotation)

	// caseTransition matches the empty position before an uppercase letter
	// that follows a non-uppercase character, and before the last capital
	// of an uppercase run that is followed by a lowercase letter.
	caseTransition = patternx.New(`(?<=[^\p{Lu}\s])(?=\p{Lu})|(?<=\p{Lu})(?=\p{Lu}\p{Ll})`)
	whitespaceRun  = patternx.New(`\s+`)
)

// Sanitize replaces every character outside [A-Za-z0-9] with a space and
// trims the result. Sanitize is idempotent.
func Sanitize(s string) string {
	return strings.TrimSpace(nonAlphanumeric.ReplaceOccurrences(s, " "))
}

// SanitizeKeepingWhitespace is Sanitize that leaves whitespace in place
func SanitizeKeepingWhitespace(s string) string {
	return strings.TrimSpace(nonAlphanumericSpace.ReplaceOccurrences(s, " "))
}

// SplitWordsByCase sanitizes s and separates words at case transitions
// with single spaces: "helloWorld" becomes "hello World" and "HTTPServer"
// becomes "HTTP Server".
func SplitWordsByCase(s string) string {
	spaced := caseTransition.ReplaceMatches(Sanitize(s), 0, nil, " ")
	return strings.TrimSpace(whitespaceRun.ReplaceOccurrences(spaced, " "))
}

// words returns the case-split words of s
func words(s string) []string {
	return strings.Fields(SplitWordsByCase(s))
}

// FirstCharacterOfEachWord returns the first character of every word,
// treating underscores as word separators.
func FirstCharacterOfEachWord(s string) []string {
	return firstCharacter.Matches(s, 0)
}

// LastCharacterOfEachWord returns the last character of every word,
// treating underscores as word separators.
func LastCharacterOfEachWord(s string) []string {
	return lastCharacter.Matches(s, 0)
}

// IsEmail reports whether s contains an email address
func IsEmail(s string) bool {
	return email.IsMatch(s, 0)
}

// IsScientificNotation reports whether s is a number such as "1.5E10" or
// "-2.25E-3".
func IsScientificNotation(s string) bool {
	return scientificNotation.IsMatch(s, 0)
}
