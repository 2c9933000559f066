package scanner

import (
	"sync"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"

	"github.com/npillmayer/shiftreduce"
)

// lexmachine adapter

// White space is what unicode.IsSpace reports as space. lexmachine matches
// bytes, therefore multi-byte spaces are spelled out as UTF-8 sequences:
// U+0085, U+00A0, U+1680, U+2000…U+200A, U+2028, U+2029, U+202F, U+205F, U+3000.
const whitespace = "( |\t|\n|\v|\f|\r|\xc2\x85|\xc2\xa0|\xe1\x9a\x80|" +
	"\xe2\x80[\x80-\x8a\xa8\xa9\xaf]|\xe2\x81\x9f|\xe3\x80\x80)+"

// A word is a run of bytes which do not start a white space sequence. Lead
// bytes shared with multi-byte spaces are followed by the continuation bytes
// which do not complete a space.
const word = "([^ \t\n\v\f\r\xc2\xe1\xe2\xe3]|" +
	"\xc2[\x80-\x84\x86-\x9f\xa1-\xbf]|" +
	"\xe1[\x80-\x99\x9b-\xbf]|\xe1\x9a[\x81-\xbf]|" +
	"\xe2[\x82-\xbf]|\xe2\x80[\x8b-\xa7\xaa-\xae\xb0-\xbf]|\xe2\x81[\x80-\x9e\xa0-\xbf]|" +
	"\xe3[\x81-\xbf]|\xe3\x80[\x81-\xbf])+"

// The DFA for splitting words is compiled once and shared by all word scanners.
var (
	wordLexer  *lexmachine.Lexer
	compileErr error
	initOnce   sync.Once
)

func wordDFA() (*lexmachine.Lexer, error) {
	initOnce.Do(func() {
		lexer := lexmachine.NewLexer()
		lexer.Add([]byte(whitespace), Skip)
		lexer.Add([]byte(word), MakeToken("WORD", int(Word)))
		if compileErr = lexer.Compile(); compileErr != nil {
			tracer().Errorf("Error compiling DFA: %v", compileErr)
			return
		}
		wordLexer = lexer
	})
	return wordLexer, compileErr
}

// WordScanner is a scanner type for white-space separated words, implementing
// the Tokenizer interface.
type WordScanner struct {
	scanner *lexmachine.Scanner
	Error   func(error)
}

var _ Tokenizer = (*WordScanner)(nil)

// Words creates a scanner for white-space separated words of input.
func Words(input string) (*WordScanner, error) {
	lexer, err := wordDFA()
	if err != nil {
		return nil, err
	}
	s, err := lexer.Scanner([]byte(input))
	if err != nil {
		return nil, err
	}
	return &WordScanner{scanner: s, Error: logError}, nil
}

// SetErrorHandler sets an error handler for the scanner.
func (ws *WordScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		ws.Error = logError
		return
	}
	ws.Error = h
}

// NextToken is part of the Tokenizer interface. At the end of input it returns
// tokens of type EOF.
func (ws *WordScanner) NextToken() shiftreduce.Token {
	tok, err, eof := ws.scanner.Next()
	for err != nil {
		ws.Error(err)
		if ui, is := err.(*machines.UnconsumedInput); is {
			ws.scanner.TC = ui.FailTC
		}
		tok, err, eof = ws.scanner.Next()
	}
	if eof {
		pos := uint64(ws.scanner.TC)
		return MakeDefaultToken(EOF, "", shiftreduce.Span{pos, pos})
	}
	token := tok.(*lexmachine.Token)
	tracer().Debugf("word %q at %d", token.Lexeme, token.TC)
	return MakeDefaultToken(
		shiftreduce.TokType(token.Type),
		string(token.Lexeme),
		shiftreduce.Span{uint64(token.TC), uint64(token.TC + len(token.Lexeme))},
	)
}

// Fields splits input at white space, like strings.Fields, but uses the
// word scanner to do so. Words are not checked for valid UTF-8.
func Fields(input string) ([]string, error) {
	ws, err := Words(input)
	if err != nil {
		return nil, err
	}
	return Lexemes(ws), nil
}

// ---------------------------------------------------------------------------

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a pre-defined action which wraps a scanned match into a token.
func MakeToken(name string, id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}
