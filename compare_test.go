// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package textspan_test

import (
	"testing"

	"github.com/creachadair/textspan"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		input, pattern string
		want           textspan.CompareResult
	}{
		{"abcdef", "abc", textspan.CompareOK},
		{"abc", "abc", textspan.CompareOK},
		{"abc", "", textspan.CompareOK},
		{"", "", textspan.CompareOK},

		{"ab", "abc", textspan.CompareIncomplete},
		{"", "abc", textspan.CompareIncomplete},

		{"abx", "abc", textspan.CompareMismatch},
		{"xbc", "abc", textspan.CompareMismatch},
		{"ABC", "abc", textspan.CompareMismatch}, // case matters here
	}
	for _, test := range tests {
		if got := textspan.New(test.input).Compare(test.pattern); got != test.want {
			t.Errorf("Compare(%#q, %#q): got %v, want %v", test.input, test.pattern, got, test.want)
		}
		if got := textspan.New([]byte(test.input)).Compare(test.pattern); got != test.want {
			t.Errorf("Compare(%#q bytes, %#q): got %v, want %v", test.input, test.pattern, got, test.want)
		}
	}
}

func TestCompareFold(t *testing.T) {
	tests := []struct {
		input, pattern string
		want           textspan.CompareResult
	}{
		{"ABCdef", "abc", textspan.CompareOK},
		{"Grün", "GRÜN", textspan.CompareOK},
		{"anything", "", textspan.CompareOK},
		{"Kelvin scale", "kelvin", textspan.CompareOK}, // Kelvin sign folds with k

		{"aB", "abc", textspan.CompareIncomplete},
		{"", "x", textspan.CompareIncomplete},

		{"aBd", "abc", textspan.CompareMismatch},
		{"über", "uber", textspan.CompareMismatch}, // folding does not strip accents
	}
	for _, test := range tests {
		if got := textspan.New(test.input).CompareFold(test.pattern); got != test.want {
			t.Errorf("CompareFold(%#q, %#q): got %v, want %v", test.input, test.pattern, got, test.want)
		}
	}
}

func TestCompareResultString(t *testing.T) {
	tests := []struct {
		input textspan.CompareResult
		want  string
	}{
		{textspan.CompareMismatch, "mismatch"},
		{textspan.CompareIncomplete, "incomplete"},
		{textspan.CompareOK, "ok"},
		{textspan.CompareResult(99), "invalid"},
		{textspan.CompareResult(-1), "invalid"},
	}
	for _, test := range tests {
		if got := test.input.String(); got != test.want {
			t.Errorf("String(%d): got %q, want %q", int(test.input), got, test.want)
		}
	}
}

func TestIndex(t *testing.T) {
	tests := []struct {
		input, substr string
		want          int
	}{
		{"hello world", "world", 6},
		{"hello", "xyz", -1},
		{"hello", "", 0},
		{"", "x", -1},
		{"αβγ", "βγ", 2},
	}
	for _, test := range tests {
		if got := textspan.New(test.input).Index(test.substr); got != test.want {
			t.Errorf("Index(%#q, %#q): got %d, want %d", test.input, test.substr, got, test.want)
		}
		if got := textspan.New([]byte(test.input)).Index(test.substr); got != test.want {
			t.Errorf("Index(%#q bytes, %#q): got %d, want %d", test.input, test.substr, got, test.want)
		}
	}

	// The search covers only the remaining input, and reports indexes
	// relative to it.
	sp := textspan.New("say hello hello").Advance(5)
	if got := sp.Index("hello"); got != 5 {
		t.Errorf("Index after Advance: got %d, want 5", got)
	}
}

func TestContainsRune(t *testing.T) {
	tests := []struct {
		input string
		r     rune
		want  bool
	}{
		{"cat", 'a', true},
		{"cat", 'z', false},
		{"🙌ok", '🙌', true},
		{"", 'a', false},
	}
	for _, test := range tests {
		if got := textspan.New(test.input).ContainsRune(test.r); got != test.want {
			t.Errorf("ContainsRune(%#q, %q): got %v, want %v", test.input, test.r, got, test.want)
		}
		if got := textspan.New([]byte(test.input)).ContainsRune(test.r); got != test.want {
			t.Errorf("ContainsRune(%#q bytes, %q): got %v, want %v", test.input, test.r, got, test.want)
		}
	}
}

func TestEqual(t *testing.T) {
	a := textspan.New("same text here").Advance(5)
	b := textspan.New("more text here").Advance(5)
	c := textspan.New("x text here").Advance(2)

	// Content alone decides equality; position does not.
	if !a.Equal(b) {
		t.Errorf("Equal(%#q, %#q): got false, want true", a.Data(), b.Data())
	}
	if !a.Equal(c) {
		t.Errorf("Equal(%#q, %#q): got false, want true", a.Data(), c.Data())
	}
	if d := textspan.New("other"); a.Equal(d) {
		t.Errorf("Equal(%#q, %#q): got true, want false", a.Data(), d.Data())
	}

	if !a.EqualString("text here") {
		t.Errorf("EqualString(%#q): got false, want true", a.Data())
	}
	if a.EqualString("text") {
		t.Errorf("EqualString(%#q, %#q): got true, want false", a.Data(), "text")
	}
}

func TestOffsetTo(t *testing.T) {
	sp := textspan.New("pelican brief")
	mid := sp.Advance(8)

	if got := sp.OffsetTo(mid); got != 8 {
		t.Errorf("OffsetTo(mid): got %d, want 8", got)
	}
	if got := mid.OffsetTo(sp); got != -8 {
		t.Errorf("OffsetTo(start): got %d, want -8", got)
	}
	if got := sp.OffsetTo(sp); got != 0 {
		t.Errorf("OffsetTo(self): got %d, want 0", got)
	}
	if got := sp.OffsetTo(sp.Take(7)); got != 0 {
		t.Errorf("OffsetTo(prefix): got %d, want 0", got)
	}
}
