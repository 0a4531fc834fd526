// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package prefix implements comparison of a pattern against the beginning
// of an input, with and without case folding.
package prefix

import (
	"unicode"
	"unicode/utf8"

	"go4.org/mem"
)

// A Result describes how a pattern relates to the beginning of an input.
type Result int

const (
	Mismatch Result = iota // the input does not begin with the pattern
	Short                  // the input ended while still matching the pattern
	Match                  // the input begins with the pattern
)

// Compare reports how pat relates to the beginning of input, byte for byte.
// An empty pattern matches any input.
func Compare(input, pat mem.RO) Result {
	if input.Len() >= pat.Len() {
		if mem.HasPrefix(input, pat) {
			return Match
		}
		return Mismatch
	}
	if mem.HasPrefix(pat, input) {
		return Short
	}
	return Mismatch
}

// CompareFold reports how pat relates to the beginning of input under
// Unicode simple case folding, the folding applied by strings.EqualFold.
func CompareFold(input, pat mem.RO) Result {
	for pat.Len() > 0 {
		if input.Len() == 0 {
			return Short
		}
		pr, pn := mem.DecodeRune(pat)
		ir, in := mem.DecodeRune(input)
		if !foldEq(pr, ir) {
			return Mismatch
		}
		pat = pat.SliceFrom(pn)
		input = input.SliceFrom(in)
	}
	return Match
}

// foldEq reports whether a and b are equal under simple case folding.
func foldEq(a, b rune) bool {
	if a == b {
		return true
	}
	if a < utf8.RuneSelf && b < utf8.RuneSelf {
		// ASCII fast path.
		if 'A' <= a && a <= 'Z' {
			a += 'a' - 'A'
		}
		if 'A' <= b && b <= 'Z' {
			b += 'a' - 'A'
		}
		return a == b
	}
	for r := unicode.SimpleFold(a); r != a; r = unicode.SimpleFold(r) {
		if r == b {
			return true
		}
	}
	return false
}
