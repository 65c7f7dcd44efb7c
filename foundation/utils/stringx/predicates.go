// File: predicates.go
// Title: Character Category Predicates
// Description: Checks whether every character of a string belongs to a
//              category, and case predicates consistent with Capitalize
//              and Decapitalize.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-04
// Modified: 2025-03-04
//
// Change History:
// - 2025-03-04 v0.1.0: Initial implementation

package stringx

import (
	"unicode"
)

// every reports whether each rune of s is in one of the tables. The empty
// string satisfies every category.
func every(s string, tables ...*unicode.RangeTable) bool {
	for _, r := range s {
		if !unicode.IsOneOf(tables, r) {
			return false
		}
	}
	return true
}

// IsAlpha reports whether s consists of letters and combining marks
func IsAlpha(s string) bool {
	return every(s, unicode.L, unicode.M)
}

// IsNumeric reports whether s consists of decimal digits
func IsNumeric(s string) bool {
	return every(s, unicode.Nd)
}

// IsAlphanumeric reports whether s consists of letters, marks and numbers
func IsAlphanumeric(s string) bool {
	return every(s, unicode.L, unicode.M, unicode.N)
}

// IsUppercased reports whether s equals its uppercase form
func IsUppercased(s string) bool {
	return s == upper(s)
}

// IsLowercased reports whether s equals its lowercase form
func IsLowercased(s string) bool {
	return s == lower(s)
}

// IsCapitalized reports whether Capitalize leaves s unchanged
func IsCapitalized(s string) bool {
	return s == Capitalize(s)
}

// IsDecapitalized reports whether Decapitalize leaves s unchanged
func IsDecapitalized(s string) bool {
	return s == Decapitalize(s)
}
