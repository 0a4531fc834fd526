// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package textspan

import "go4.org/mem"

// String returns the remaining input as a string. For spans over byte
// slices the contents are copied. String also serves as fmt.Stringer, so a
// span prints as its remaining input.
func (s Span[T]) String() string { return string(s.data) }

// Bytes returns the remaining input as a byte slice. For spans over byte
// slices the result aliases the span's data and must not be modified; for
// spans over strings the contents are copied.
func (s Span[T]) Bytes() []byte { return []byte(s.data) }

// AppendTo appends the remaining input to dst and returns the extended
// slice, in the manner of the strconv Append functions.
func (s Span[T]) AppendTo(dst []byte) []byte { return mem.Append(dst, ro(s.data)) }

// Int64 parses the remaining input as a signed base-10 integer.
func (s Span[T]) Int64() (int64, error) { return mem.ParseInt(ro(s.data), 10, 64) }

// Uint64 parses the remaining input as an unsigned base-10 integer.
func (s Span[T]) Uint64() (uint64, error) { return mem.ParseUint(ro(s.data), 10, 64) }

// Float64 parses the remaining input as a decimal floating-point number in
// the syntax accepted by strconv.ParseFloat.
func (s Span[T]) Float64() (float64, error) { return mem.ParseFloat(ro(s.data), 64) }
