// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package textspan

import (
	"bytes"
	"strings"

	"github.com/creachadair/textspan/internal/prefix"
	"go4.org/mem"
)

// A CompareResult reports how a pattern relates to the beginning of the
// remaining input of a span.
type CompareResult int

const (
	CompareMismatch   CompareResult = iota // the input does not begin with the pattern
	CompareIncomplete                      // the input ended while still matching the pattern
	CompareOK                              // the input begins with the pattern
)

var compareStr = [...]string{
	CompareMismatch:   "mismatch",
	CompareIncomplete: "incomplete",
	CompareOK:         "ok",
}

func (c CompareResult) String() string {
	if c < 0 || int(c) >= len(compareStr) {
		return "invalid"
	}
	return compareStr[c]
}

// Compare reports how pattern relates to the beginning of the remaining
// input: CompareOK if the input begins with pattern, CompareIncomplete if
// the input ended while still matching, and CompareMismatch otherwise. An
// empty pattern compares as CompareOK against any input.
func (s Span[T]) Compare(pattern string) CompareResult {
	return compareResult(prefix.Compare(ro(s.data), mem.S(pattern)))
}

// CompareFold is Compare under Unicode simple case folding, the folding
// applied by strings.EqualFold.
func (s Span[T]) CompareFold(pattern string) CompareResult {
	return compareResult(prefix.CompareFold(ro(s.data), mem.S(pattern)))
}

func compareResult(r prefix.Result) CompareResult {
	switch r {
	case prefix.Match:
		return CompareOK
	case prefix.Short:
		return CompareIncomplete
	default:
		return CompareMismatch
	}
}

// Index returns the byte index of the first occurrence of substr in the
// remaining input, or -1 if substr does not occur.
func (s Span[T]) Index(substr string) int {
	switch t := any(s.data).(type) {
	case string:
		return strings.Index(t, substr)
	case []byte:
		return bytes.Index(t, []byte(substr))
	}
	return strings.Index(string(s.data), substr)
}

// ContainsRune reports whether r occurs in the remaining input.
func (s Span[T]) ContainsRune(r rune) bool {
	switch t := any(s.data).(type) {
	case string:
		return strings.ContainsRune(t, r)
	case []byte:
		return bytes.ContainsRune(t, r)
	}
	return strings.ContainsRune(string(s.data), r)
}

// Equal reports whether the remaining inputs of s and other are equal byte
// for byte. Positions do not take part in the comparison.
func (s Span[T]) Equal(other Span[T]) bool { return ro(s.data).Equal(ro(other.data)) }

// EqualString reports whether the remaining input is equal to str.
func (s Span[T]) EqualString(str string) bool { return ro(s.data).EqualString(str) }

// OffsetTo returns the distance in bytes from the start of the remaining
// input of s to the start of the remaining input of other. Both spans must
// view the same original input; the result is negative if other begins
// before s.
func (s Span[T]) OffsetTo(other Span[T]) int { return other.off - s.off }
