package textspan

import "fmt"

// A Position describes the location of a byte in source text, including its
// line, column, and absolute byte offset.
type Position struct {
	Line   int // line number, 1-based
	Col    int // column number in the line, 1-based
	Offset int // byte offset from the start of the input, 0-based
}

// String renders p in the form "line:col" for diagnostics.
func (p Position) String() string { return fmt.Sprintf("%d:%d", p.Line, p.Col) }
