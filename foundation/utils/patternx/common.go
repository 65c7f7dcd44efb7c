// File: common.go
// Title: Built-in Pattern Registry
// Description: Read-only table of well-known patterns shared by the string
//              transforms.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation

package patternx

import (
	"sort"
)

// Names of the built-in patterns
const (
	Email                = "email"
	FirstCharacter       = "firstCharacter"
	LastCharacter        = "lastCharacter"
	NonAlphanumeric      = "nonAlphanumeric"
	NonAlphanumericSpace = "nonAlphanumericSpace"
	ScientificNotation   = "scientificNotation"
)

// registry is never written after initialization
var registry = map[string]string{
	Email:                `[A-Z0-9a-z._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,6}`,
	FirstCharacter:       `(\b\w|(?<=_)[^_])`,
	LastCharacter:        `(\w\b|[^_](?=_))`,
	NonAlphanumeric:      `[^a-zA-Z\d]`,
	NonAlphanumericSpace: `[^a-zA-Z\d\s]`,
	ScientificNotation:   `^([+-]?)((?<!0)\d\.\d{1,})E([-]?)(\d+)$`,
}

// Lookup returns the built-in pattern with the given name
func Lookup(name string) (Pattern, bool) {
	source, ok := registry[name]
	if !ok {
		return Pattern{}, false
	}
	return New(source), true
}

// MustLookup is Lookup for names known at compile time. It panics on an
// unknown name.
func MustLookup(name string) Pattern {
	p, ok := Lookup(name)
	if !ok {
		panic("patternx: unknown built-in pattern " + name)
	}
	return p
}

// Names returns the built-in pattern names in sorted order
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
