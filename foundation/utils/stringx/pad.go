// File: pad.go
// Title: Padding, Trimming and Truncation
// Description: Length-based operations counting grapheme clusters. Invalid
//              arguments return the input unchanged.
// Author: msto63
// Version: v0.2.1
// Created: 2025-01-24
// Modified: 2025-03-09
//
// Change History:
// - 2025-01-24 v0.1.0: PadLeft, PadRight and Center on runes
// - 2025-03-04 v0.2.0: Cluster counting, keep/remove trimming, fixed ellipsis
// - 2025-03-09 v0.2.1: Optional token, an explicit empty token pads nothing

package stringx

import (
	"strings"
)

// DefaultPadToken is used when no token is passed
const DefaultPadToken = " "

// paddingToken resolves the optional token. An explicit token must be a
// single character, so an empty one leaves s unchanged.
func paddingToken(s string, length int, token []string) (string, int, bool) {
	t := DefaultPadToken
	if len(token) > 0 {
		t = token[0]
	}
	n := Length(s)
	if Length(t) != 1 || length <= n {
		return "", 0, false
	}
	return t, length - n, true
}

// PadLeft pads s on the left to length characters with token, a space
// when omitted.
// Example: PadLeft("Hello World", 13) -> "  Hello World"
func PadLeft(s string, length int, token ...string) string {
	t, missing, ok := paddingToken(s, length, token)
	if !ok {
		return s
	}
	return strings.Repeat(t, missing) + s
}

// PadRight pads s on the right to length characters with token, a space
// when omitted.
// Example: PadRight("Hello World", 13, "*") -> "Hello World**"
func PadRight(s string, length int, token ...string) string {
	t, missing, ok := paddingToken(s, length, token)
	if !ok {
		return s
	}
	return s + strings.Repeat(t, missing)
}

// Pad centers s in length characters. When the padding is odd the extra
// token goes to the right.
// Example: Pad("Hello World", 13, "*") -> "*Hello World*"
func Pad(s string, length int, token ...string) string {
	t, missing, ok := paddingToken(s, length, token)
	if !ok {
		return s
	}
	right := (missing + 1) / 2
	return strings.Repeat(t, missing-right) + s + strings.Repeat(t, right)
}

// TrimLeftKeeping returns the first length characters of s
// Example: TrimLeftKeeping("Hello World", 7) -> "Hello W"
func TrimLeftKeeping(s string, length int) string {
	if length <= 0 {
		return ""
	}
	cs := clusters(s)
	if length >= len(cs) {
		return s
	}
	return strings.Join(cs[:length], "")
}

// TrimRightKeeping returns the last length characters of s
// Example: TrimRightKeeping("Hello World", 7) -> "o World"
func TrimRightKeeping(s string, length int) string {
	if length <= 0 {
		return ""
	}
	cs := clusters(s)
	if length >= len(cs) {
		return s
	}
	return strings.Join(cs[len(cs)-length:], "")
}

// TrimLeftRemoving removes length characters from the start of s. Removing
// the whole string or more returns s unchanged.
// Example: TrimLeftRemoving("Hello World", 7) -> "orld"
func TrimLeftRemoving(s string, length int) string {
	keep := Length(s) - length
	if keep <= 0 {
		return s
	}
	return TrimRightKeeping(s, keep)
}

// TrimRightRemoving removes length characters from the end of s. Removing
// the whole string or more returns s unchanged.
// Example: TrimRightRemoving("Hello World", 7) -> "Hell"
func TrimRightRemoving(s string, length int) string {
	keep := Length(s) - length
	if keep <= 0 {
		return s
	}
	return TrimLeftKeeping(s, keep)
}

// Truncate shortens s to length characters including Ellipsis. s is
// returned unchanged when it already fits or length leaves no room for a
// character before the ellipsis.
// Example: Truncate("Hello World", 8) -> "Hello..."
func Truncate(s string, length int) string {
	if Length(s) <= length {
		return s
	}
	keep := length - Length(Ellipsis)
	if keep <= 0 {
		return s
	}
	return TrimLeftKeeping(s, keep) + Ellipsis
}
