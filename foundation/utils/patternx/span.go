// File: span.go
// Title: Match Ranges and Offset Translation
// Description: MatchRange and the translation of engine offsets into byte
//              offsets on grapheme cluster boundaries.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation

package patternx

import (
	"fmt"
	"sort"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Unit is the coordinate space an engine reports offsets in
type Unit int

const (
	// UnitByte counts UTF-8 bytes
	UnitByte Unit = iota
	// UnitRune counts Unicode scalar values
	UnitRune
	// UnitUTF16 counts UTF-16 code units
	UnitUTF16
)

// String returns the unit name
func (u Unit) String() string {
	switch u {
	case UnitByte:
		return "byte"
	case UnitRune:
		return "rune"
	case UnitUTF16:
		return "utf16"
	default:
		return "unknown"
	}
}

// MatchRange is a half-open span [Start, End) of byte offsets into the
// subject. Both ends lie on grapheme cluster boundaries.
type MatchRange struct {
	Start int
	End   int
}

// Len returns the length in bytes
func (r MatchRange) Len() int {
	return r.End - r.Start
}

// IsEmpty reports whether the range covers no text
func (r MatchRange) IsEmpty() bool {
	return r.End <= r.Start
}

// Slice returns the covered part of subject
func (r MatchRange) Slice(subject string) string {
	return subject[r.Start:r.End]
}

// String formats the range as [start,end)
func (r MatchRange) String() string {
	return fmt.Sprintf("[%d,%d)", r.Start, r.End)
}

// Translate converts a span reported in unit coordinates into a MatchRange.
// It fails when the span is negative, exceeds the subject, or either end
// does not fall on a grapheme cluster boundary.
func Translate(subject string, start, length int, unit Unit) (MatchRange, bool) {
	return newTextIndex(subject).translate(start, length, unit)
}

// textIndex caches the offset tables of one subject so that all spans of an
// operation translate without rescanning.
type textIndex struct {
	subject    string
	boundaries []int // byte offsets of cluster starts plus len(subject)
	runeBytes  []int // byte offset of each rune plus len(subject)
	utf16Bytes map[int]int
}

func newTextIndex(subject string) *textIndex {
	idx := &textIndex{subject: subject}

	state := -1
	rest := subject
	offset := 0
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		idx.boundaries = append(idx.boundaries, offset)
		offset += len(cluster)
	}
	idx.boundaries = append(idx.boundaries, len(subject))
	return idx
}

func (idx *textIndex) isBoundary(b int) bool {
	i := sort.SearchInts(idx.boundaries, b)
	return i < len(idx.boundaries) && idx.boundaries[i] == b
}

func (idx *textIndex) runeTable() []int {
	if idx.runeBytes == nil {
		table := make([]int, 0, utf8.RuneCountInString(idx.subject)+1)
		for i := range idx.subject {
			table = append(table, i)
		}
		idx.runeBytes = append(table, len(idx.subject))
	}
	return idx.runeBytes
}

func (idx *textIndex) utf16Table() map[int]int {
	if idx.utf16Bytes == nil {
		table := make(map[int]int, len(idx.subject)+1)
		units := 0
		for i, r := range idx.subject {
			table[units] = i
			n := utf16.RuneLen(r)
			if n < 1 {
				n = 1
			}
			units += n
		}
		table[units] = len(idx.subject)
		idx.utf16Bytes = table
	}
	return idx.utf16Bytes
}

// toByte converts one offset to a byte offset, reporting false when the
// offset is outside the subject or inside an encoded character.
func (idx *textIndex) toByte(offset int, unit Unit) (int, bool) {
	if offset < 0 {
		return 0, false
	}
	switch unit {
	case UnitByte:
		if offset > len(idx.subject) {
			return 0, false
		}
		return offset, true
	case UnitRune:
		table := idx.runeTable()
		if offset >= len(table) {
			return 0, false
		}
		return table[offset], true
	case UnitUTF16:
		b, ok := idx.utf16Table()[offset]
		return b, ok
	default:
		return 0, false
	}
}

// fromByte converts a byte offset on a rune boundary into unit coordinates
func (idx *textIndex) fromByte(b int, unit Unit) int {
	switch unit {
	case UnitRune:
		return utf8.RuneCountInString(idx.subject[:b])
	case UnitUTF16:
		n := 0
		for _, r := range idx.subject[:b] {
			n += utf16.RuneLen(r)
		}
		return n
	default:
		return b
	}
}

func (idx *textIndex) translate(start, length int, unit Unit) (MatchRange, bool) {
	if start < 0 || length < 0 {
		return MatchRange{}, false
	}
	from, ok := idx.toByte(start, unit)
	if !ok {
		return MatchRange{}, false
	}
	to, ok := idx.toByte(start+length, unit)
	if !ok {
		return MatchRange{}, false
	}
	if !idx.isBoundary(from) || !idx.isBoundary(to) {
		return MatchRange{}, false
	}
	return MatchRange{Start: from, End: to}, true
}

// validBounds reports whether r lies inside the subject on cluster boundaries
func (idx *textIndex) validBounds(r MatchRange) bool {
	return r.Start >= 0 && r.Start <= r.End && r.End <= len(idx.subject) &&
		idx.isBoundary(r.Start) && idx.isBoundary(r.End)
}
