/*
Package scanner defines an interface for scanners to be used with the parsers of
package lr/slr, together with a default scanner.

The default scanner splits input text at white space. Every word is one token,
and its lexeme is taken as the name of a terminal symbol. The scanner is an
adapter for lexmachine.

    sc, _ := scanner.Words("vtype id semi")
    for tok := sc.NextToken(); tok.TokType() != scanner.EOF; tok = sc.NextToken() {
        …
    }

Scanners never produce the end-of-input marker as a token; parsers append it.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"github.com/npillmayer/schuko/tracing"

	"github.com/npillmayer/shiftreduce"
)

// tracer traces with key 'shiftreduce.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("shiftreduce.scanner")
}

// Token types produced by the default scanner.
const (
	EOF  shiftreduce.TokType = -1 // identical to text/scanner.EOF
	Word shiftreduce.TokType = 1  // a run of non-white-space characters
)

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() shiftreduce.Token
	SetErrorHandler(func(error))
}

// Default error reporting function for scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// Lexemes reads all tokens from a tokenizer up to end of input and returns
// their lexemes, in input order.
func Lexemes(t Tokenizer) []string {
	var lexemes []string
	for tok := t.NextToken(); tok.TokType() != EOF; tok = t.NextToken() {
		lexemes = append(lexemes, tok.Lexeme())
	}
	return lexemes
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used as default for the
// word scanner.
type DefaultToken struct {
	kind   shiftreduce.TokType
	lexeme string
	span   shiftreduce.Span
}

var _ shiftreduce.Token = DefaultToken{}

// MakeDefaultToken creates a token.
func MakeDefaultToken(typ shiftreduce.TokType, lexeme string, span shiftreduce.Span) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
	}
}

func (t DefaultToken) TokType() shiftreduce.TokType {
	return t.kind
}

func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

// Span returns the byte positions of a token in the input.
func (t DefaultToken) Span() shiftreduce.Span {
	return t.span
}
