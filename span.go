// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package textspan

import "go4.org/mem"

// Text is the set of types a span can wrap: any type whose underlying type
// is string or []byte. A span treats its data as immutable and never
// modifies the contents it wraps.
type Text interface{ ~string | ~[]byte }

// A Span is a read-only view of the remaining input of a scan or parse,
// carrying the line, column, and absolute byte offset of the first byte of
// that view within the original input.
//
// A zero Span is ready to use as an empty input. Spans are values:
// operations that narrow the view return new spans and leave the receiver
// unchanged, so a parser may hold multiple spans into the same input, for
// example while backtracking, without any coordination between them.
//
// Lines are delimited by '\n' bytes alone. Columns are counted in bytes
// unless the span was constructed by NewUTF8, in which case they are
// counted in UTF-8 code points.
type Span[T Text] struct {
	data T
	off  int // absolute byte offset of data[0] in the original input

	// Apparent line and column of data[0] (0-based; the accessors are 1-based).
	line, col int

	utf8 bool // count columns in code points rather than bytes
}

// New constructs a span over data positioned at line 1, column 1, offset 0,
// whose columns are counted in bytes.
func New[T Text](data T) Span[T] { return Span[T]{data: data} }

// NewUTF8 constructs a span over data positioned at line 1, column 1,
// offset 0, whose columns are counted in UTF-8 code points. The input must
// be valid UTF-8; the span does not check or repair the encoding.
func NewUTF8[T Text](data T) Span[T] { return Span[T]{data: data, utf8: true} }

// Data returns the remaining input viewed by s.
func (s Span[T]) Data() T { return s.data }

// Len reports the length in bytes of the remaining input.
func (s Span[T]) Len() int { return len(s.data) }

// IsEmpty reports whether the remaining input is empty.
func (s Span[T]) IsEmpty() bool { return len(s.data) == 0 }

// Line returns the 1-based line number of the first byte of the remaining
// input within the original input.
func (s Span[T]) Line() int { return s.line + 1 }

// Col returns the 1-based column of the first byte of the remaining input
// within its line, counted in bytes, or in code points for a span made by
// NewUTF8.
func (s Span[T]) Col() int { return s.col + 1 }

// ByteOffset returns the 0-based byte offset of the first byte of the
// remaining input within the original input.
func (s Span[T]) ByteOffset() int { return s.off }

// Position returns the position of the first byte of the remaining input.
func (s Span[T]) Position() Position {
	return Position{Line: s.Line(), Col: s.Col(), Offset: s.off}
}

// Slice returns a span over data[i:j] of the remaining input. The result's
// position is found by scanning the i skipped bytes for line breaks; when
// i == 0 the position is unchanged. The cost is proportional to i, not to
// the distance from the start of the original input.
//
// Slice panics if the range is out of bounds for the remaining input,
// exactly as slicing the data itself would.
func (s Span[T]) Slice(i, j int) Span[T] {
	next := s.data[i:j]
	if i == 0 {
		s.data = next
		return s
	}
	out := Span[T]{data: next, off: s.off + i, utf8: s.utf8}

	nl, tail := countLines(ro(s.data[:i]))
	width := tail.Len()
	if s.utf8 {
		width = runeCount(tail)
	}
	out.line = s.line + nl
	if nl == 0 {
		out.col = s.col + width
	} else {
		out.col = width // a fresh line restarts the column count
	}
	return out
}

// Take returns a span over the first n bytes of the remaining input. The
// result begins where s begins, so its position is that of s.
func (s Span[T]) Take(n int) Span[T] { return s.Slice(0, n) }

// Advance returns a span over the remaining input with its first n bytes
// consumed, and position updated accordingly.
func (s Span[T]) Advance(n int) Span[T] { return s.Slice(n, len(s.data)) }

// Split divides the remaining input at byte offset n, returning the first n
// bytes and the rest as spans. The prefix begins where s begins; the rest
// carries the position update for the n consumed bytes.
func (s Span[T]) Split(n int) (prefix, rest Span[T]) {
	return s.Take(n), s.Advance(n)
}

// ro returns a read-only view of v without copying for the builtin string
// and []byte types. Named types in the Text set go through a string
// conversion, which is free for string kinds.
func ro[T Text](v T) mem.RO {
	switch t := any(v).(type) {
	case string:
		return mem.S(t)
	case []byte:
		return mem.B(t)
	}
	return mem.S(string(v))
}

// countLines counts the '\n' bytes in consumed, and returns the tail of
// consumed following the last of them (all of consumed if there are none).
func countLines(consumed mem.RO) (n int, tail mem.RO) {
	tail = consumed
	for {
		i := mem.IndexByte(tail, '\n')
		if i < 0 {
			return n, tail
		}
		n++
		tail = tail.SliceFrom(i + 1)
	}
}

// runeCount reports the number of UTF-8 code points in m by counting the
// bytes that do not continue a preceding rune. The input is assumed valid.
func runeCount(m mem.RO) int {
	var n int
	for i := 0; i < m.Len(); i++ {
		if m.At(i)&0xc0 != 0x80 {
			n++
		}
	}
	return n
}
