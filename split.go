// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package textspan

import (
	"fmt"

	"go4.org/mem"
)

// DecodeRune decodes the first rune of the remaining input and returns it
// with its width in bytes. If the input is empty it returns (utf8.RuneError,
// 0), following the conventions of the unicode/utf8 package.
func (s Span[T]) DecodeRune() (rune, int) { return mem.DecodeRune(ro(s.data)) }

// IndexFunc returns the byte index of the first rune of the remaining input
// satisfying f, or -1 if no rune does.
func (s Span[T]) IndexFunc(f func(rune) bool) int {
	m := ro(s.data)
	for i := 0; i < m.Len(); {
		r, n := mem.DecodeRune(m.SliceFrom(i))
		if f(r) {
			return i
		}
		i += n
	}
	return -1
}

// RuneIndex returns the length in bytes of the first n runes of the
// remaining input, the index at which to split so that the prefix covers
// exactly n runes. If fewer than n runes remain, RuneIndex reports an
// *IncompleteError. It panics if n is negative.
func (s Span[T]) RuneIndex(n int) (int, error) {
	if n < 0 {
		panic("rune count is negative")
	}
	m := ro(s.data)
	var i int
	for ; n > 0; n-- {
		if i >= m.Len() {
			return 0, &IncompleteError{Needed: 1}
		}
		_, w := mem.DecodeRune(m.SliceFrom(i))
		i += w
	}
	return i, nil
}

// SplitFunc divides the remaining input before the first rune satisfying f,
// returning the input before that rune and the rest beginning with it. The
// prefix may be empty, if the first rune of the input already satisfies f.
//
// If no rune satisfies f, SplitFunc reports an *IncompleteError: as far as
// the data on hand can tell, the split might still succeed once more input
// arrives. Use SplitFuncComplete when no more input can arrive.
func (s Span[T]) SplitFunc(f func(rune) bool) (prefix, rest Span[T], err error) {
	n := s.IndexFunc(f)
	if n < 0 {
		return prefix, rest, &IncompleteError{Needed: 1}
	}
	prefix, rest = s.Split(n)
	return prefix, rest, nil
}

// SplitFunc1 is SplitFunc for callers that require a nonempty prefix. The
// what label names the required input for error reporting, as in
// SplitFunc1Complete. An empty prefix is nevertheless returned without
// error: so long as more input may arrive, a match at the first rune does
// not yet prove the required input absent.
func (s Span[T]) SplitFunc1(f func(rune) bool, what string) (prefix, rest Span[T], err error) {
	return s.SplitFunc(f)
}

// SplitFuncComplete divides the remaining input before the first rune
// satisfying f, treating the end of input as a valid split point: when no
// rune satisfies f the whole remaining input becomes the prefix, and the
// rest is an empty span positioned at the end of input.
func (s Span[T]) SplitFuncComplete(f func(rune) bool) (prefix, rest Span[T]) {
	n := s.IndexFunc(f)
	if n < 0 {
		n = len(s.data)
	}
	return s.Split(n)
}

// SplitFunc1Complete is SplitFuncComplete for callers that require a
// nonempty prefix. If the remaining input is empty or its first rune
// already satisfies f, it reports a *RequirementError carrying s and the
// what label.
func (s Span[T]) SplitFunc1Complete(f func(rune) bool, what string) (prefix, rest Span[T], err error) {
	n := s.IndexFunc(f)
	if n < 0 {
		if len(s.data) == 0 {
			return prefix, rest, &RequirementError[T]{Span: s, What: what}
		}
		n = len(s.data)
	} else if n == 0 {
		return prefix, rest, &RequirementError[T]{Span: s, What: what}
	}
	prefix, rest = s.Split(n)
	return prefix, rest, nil
}

// An IncompleteError reports that an operation ran out of input before it
// could complete, and might succeed given more. Needed is the minimum
// number of additional bytes known to be required; operations that cannot
// compute a bound report 1.
type IncompleteError struct {
	Needed int
}

func (e *IncompleteError) Error() string {
	return fmt.Sprintf("incomplete input (need %d more)", e.Needed)
}

// A RequirementError reports that input required at the current position is
// definitely not there, no matter what further input might arrive. It
// carries the span at the point of failure, whose position locates the
// error in the original input.
type RequirementError[T Text] struct {
	Span Span[T] // the remaining input at the point of failure
	What string  // a label for the required input, e.g. "digits"
}

func (e *RequirementError[T]) Error() string {
	return fmt.Sprintf("at %s: want %s", e.Span.Position(), e.What)
}
