// File: stringx.go
// Title: Core String Utility Functions
// Description: Cluster-aware length, character access, reversal and
//              diacritic removal.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-04
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core utilities
// - 2025-03-04 v0.2.0: Grapheme cluster segmentation, accents and latinization

package stringx

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Ellipsis is appended by Truncate
const Ellipsis = "..."

// IsEmpty returns true if the string is empty (length 0).
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsBlank returns true if the string is empty or contains only whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Length returns the number of grapheme clusters in s
func Length(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// clusters splits s into grapheme clusters
func clusters(s string) []string {
	out := make([]string, 0, len(s))
	state := -1
	for len(s) > 0 {
		var c string
		c, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		out = append(out, c)
	}
	return out
}

// FirstCharacter returns the first grapheme cluster, or "" for an empty string
func FirstCharacter(s string) string {
	if s == "" {
		return ""
	}
	c, _, _, _ := uniseg.FirstGraphemeClusterInString(s, -1)
	return c
}

// LastCharacter returns the last grapheme cluster, or "" for an empty string
func LastCharacter(s string) string {
	cs := clusters(s)
	if len(cs) == 0 {
		return ""
	}
	return cs[len(cs)-1]
}

// Reverse reverses s by grapheme cluster so combining marks and emoji
// sequences stay attached to their base.
func Reverse(s string) string {
	return uniseg.ReverseString(s)
}

// WithoutAccents removes combining marks after canonical decomposition.
// "Crème brûlée" becomes "Creme brulee".
func WithoutAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// latinLetters maps Latin letters that have no decomposition to their
// closest ASCII spelling.
var latinLetters = strings.NewReplacer(
	"ß", "ss", "ẞ", "SS",
	"æ", "ae", "Æ", "AE",
	"œ", "oe", "Œ", "OE",
	"ø", "o", "Ø", "O",
	"ł", "l", "Ł", "L",
	"đ", "d", "Đ", "D",
	"ð", "d", "Ð", "D",
	"þ", "th", "Þ", "TH",
	"ı", "i",
)

// Latinize removes diacritics and spells the remaining non-ASCII Latin
// letters in ASCII. Characters of other scripts are kept.
func Latinize(s string) string {
	return latinLetters.Replace(WithoutAccents(s))
}
