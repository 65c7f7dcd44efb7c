// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides pure string transforms built on the
//              patternx matcher and grapheme cluster segmentation.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2025-03-04
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core string utilities
// - 2025-01-26 v0.2.0: Enhanced documentation with comprehensive structure and examples
// - 2025-03-04 v0.3.0: Rebuilt on patternx; cluster-aware padding and trimming

// Package stringx provides pure, Unicode-aware string transforms.
//
// Overview
//
// Every function takes a string and returns a new value without touching
// shared state. Lengths, padding and trimming count user-perceived
// characters (grapheme clusters as segmented by github.com/rivo/uniseg), so
// "é" and "👍🏽" each count as one character.
//
// Word-level transforms are expressed with the built-in patterns of
// package patternx:
//
//   - Sanitize replaces each nonAlphanumeric match with a space and trims.
//   - SplitWordsByCase inserts spaces at case transitions.
//   - Capitalize and Decapitalize rewrite each firstCharacter match.
//   - ToPascalCase, ToCamelCase, ToKebabCase and ToSnakeCase compose them.
//
// Architecture
//
//   - Core Operations: length, reversal, accents (stringx.go)
//   - Sanitization and word splitting (sanitize.go)
//   - Case Conversion: naming conventions and swap case (case.go)
//   - Predicates: character category checks (predicates.go)
//   - Padding, trimming and truncation (pad.go)
//
// Fail-soft behavior
//
// Preconditions are never reported as errors. Padding with a token that is
// not exactly one character, padding to a length that is not larger than
// the string, or removing more characters than the string has all return
// the input unchanged.
//
// Usage
//
//	stringx.ToCamelCase("Hello World")     // "helloWorld"
//	stringx.ToPascalCase("HELLO WORLD")    // "HelloWorld"
//	stringx.PadLeft("Hello World", 13)     // "  Hello World"
//	stringx.Truncate("Hello World", 8)     // "Hello..."
//
// Thread safety
//
// All functions are safe for concurrent use.
package stringx
