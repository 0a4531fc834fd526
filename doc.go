// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package textspan implements a position-tracking view of text consumed
// incrementally, as by the scanner of a parser.
//
// # Spans
//
// The Span type wraps a string or byte slice together with the line,
// column, and absolute byte offset of the first byte of that view within
// the original input. Construct a span with New, or with NewUTF8 to count
// columns in UTF-8 code points rather than bytes:
//
//	sp := textspan.New("cherry\nplum\n")
//	log.Printf("At %v", sp.Position()) // At 1:1
//
// Spans are immutable values. Operations that narrow the view return new
// spans and leave the receiver unchanged, so a parser may keep spans into
// the same input at several positions, for example while backtracking, and
// retain any of them as a location for later diagnostics.
//
// # Narrowing
//
// The Take, Advance, Split, and Slice methods derive spans over sub-ranges
// of the remaining input. A span derived by consuming input finds its
// position by scanning only the newly consumed bytes for line breaks:
//
//	rest := sp.Advance(7)                // consume "cherry\n"
//	log.Printf("At %v", rest.Position()) // At 2:1
//
// Consuming an entire input through any number of intermediate spans thus
// scans each byte once, and the total cost stays linear in the input size.
//
// # Splitting
//
// The SplitFunc family divides the remaining input before the first rune
// satisfying a predicate:
//
//	word, rest, err := sp.SplitFunc(unicode.IsSpace)
//
// SplitFunc and SplitFunc1 serve scanners fed incrementally: when the
// predicate matches nowhere they report an IncompleteError, meaning the
// answer may change once more input arrives. SplitFuncComplete and
// SplitFunc1Complete serve scanners holding the whole input: the end of
// input is a valid split point, and SplitFunc1Complete reports a
// RequirementError when the input it requires is definitely absent.
//
// # Inspection
//
// The remaining input can be examined without narrowing. Compare and
// CompareFold match a pattern against its beginning, distinguishing a
// mismatch from input that ended mid-pattern. Index, ContainsRune,
// IndexFunc, DecodeRune, and RuneIndex search and iterate the remaining
// bytes, and Int64, Uint64, and Float64 parse them as numbers. All
// inspection applies to the remaining input only; bytes already consumed
// are out of view.
package textspan
