package shiftreduce

import "fmt"

// --- A general purpose interface for tokens --------------------------------

// TokType is a category type for a Token. We do not define any constants here, as
// it is up to scanners to define them.
type TokType int

// Tokens represent input tokens. They are usually produced by a scanner and
// reflect terminals in a language. For this module, the lexeme of a token
// is the name of the terminal symbol it stands for:
//
//	TokType = Word        // identifier for this kind of tokens (scanner specific)
//	Lexeme  = "vtype"     // lexeme how it appeared in the input stream
//	Span    = 67…72       // occured from position 67 in the input stream
type Token interface {
	TokType() TokType
	Lexeme() string
	Span() Span
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a length of input token run. For every
// terminal and non-terminal, a parse tree will track which input positions
// this symbol covers. A span denotes a start position and the position just
// behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

// IsNull is true for spans not covering any input, e.g. for epsilon-productions.
func (s Span) IsNull() bool {
	return s[0] == s[1]
}

// Extend returns the smallest span covering both s and other.
// A null span does not contribute to the result.
func (s Span) Extend(other Span) Span {
	if other.IsNull() {
		return s
	}
	if s.IsNull() {
		return other
	}
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
