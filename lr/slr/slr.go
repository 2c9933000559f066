/*
Package slr provides a table-driven shift-reduce parser. Clients hand in a
grammar and a parse table, as produced by an external table generator (e.g.,
an SLR(1) or LALR(1) generator). The parser utilizes these tables to create a
right derivation for a given input and builds a parse tree from it.

The parser does not resolve conflicts and does not recover from errors: parse
tables are deterministic by construction, and the first undefined table entry
ends a parse with a ParseError.

Usage

Clients construct a grammar, usually by using a grammar builder, and load a
table for it:

	b := lr.NewGrammarBuilder("Signed Variables Grammar")
	b.LHS("S'").N("Var").End()                 // S'   --> Var
	b.LHS("Var").N("Sign").T("id").End()       // Var  --> Sign id
	b.LHS("Sign").T("+").End()                 // Sign --> +
	b.LHS("Sign").T("-").End()                 // Sign --> -
	b.LHS("Sign").Epsilon()                    // Sign -->
	g, err := b.Grammar()
	…
	table, err := tb.Table()                   // tb is an lr.TableBuilder

Grammar and table are checked against each other once, when creating a parser.
A parser is immutable and may be used concurrently; every parse runs on an
Engine of its own.

	p, err := slr.NewParser(g, table)
	tree, err := p.Parse([]lr.Symbol{"-", "id"})

Parse returns the root node of a parse tree, or an error of type *ParseError,
telling the state and the symbol where the input has been rejected.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package slr

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"

	"github.com/npillmayer/shiftreduce/lr"
	"github.com/npillmayer/shiftreduce/lr/ptree"
	"github.com/npillmayer/shiftreduce/lr/scanner"
)

// tracer traces with key 'shiftreduce.lr'.
func tracer() tracing.Trace {
	return tracing.Select("shiftreduce.lr")
}

// Parser is a shift-reduce parser type. Create and initialize one with slr.NewParser(...)
type Parser struct {
	g     *lr.Grammar
	table *lr.Table
}

// NewParser creates a parser for a grammar and a parse table. It returns an
// error if the table does not fit the grammar.
func NewParser(g *lr.Grammar, table *lr.Table) (*Parser, error) {
	if g == nil || table == nil {
		return nil, fmt.Errorf("parser needs a grammar and a parse table")
	}
	if err := lr.ValidateTable(g, table); err != nil {
		return nil, err
	}
	return &Parser{g: g, table: table}, nil
}

// Grammar returns the grammar of a parser.
func (p *Parser) Grammar() *lr.Grammar {
	return p.g
}

// Table returns the parse table of a parser.
func (p *Parser) Table() *lr.Table {
	return p.table
}

// Engine creates a new parse engine for an input, ready to run.
func (p *Parser) Engine(input []lr.Symbol) *Engine {
	return newEngine(p.g, p.table, input)
}

// Parse parses an input sequence of terminals. It returns the root node of the
// parse tree if the input has been accepted, or a *ParseError otherwise.
// The end-of-input marker is appended by the parser; input should not contain it.
func (p *Parser) Parse(input []lr.Symbol) (*ptree.Node, error) {
	tracer().Debugf("~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~")
	return p.Engine(input).Run()
}

// ParseTokens reads all tokens from a scanner and parses them. The lexeme of a
// token is its terminal symbol.
func (p *Parser) ParseTokens(scan scanner.Tokenizer) (*ptree.Node, error) {
	lexemes := scanner.Lexemes(scan)
	input := make([]lr.Symbol, len(lexemes))
	for i, l := range lexemes {
		input[i] = lr.Symbol(l)
	}
	return p.Parse(input)
}

// --- Helpers ----------------------------------------------------------

// valstring is a short helper to stringify an action table entry.
func valstring(a lr.Action) string {
	switch a.Kind() {
	case lr.ShiftAction:
		return fmt.Sprintf("<shift %d>", a.Target())
	case lr.ReduceAction:
		return fmt.Sprintf("<reduce %d>", a.Rule())
	case lr.AcceptAction:
		return "<accept>"
	}
	return "<none>"
}
