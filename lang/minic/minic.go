/*
Package minic provides grammar and parse table for a small C-like language of
variable declarations, function definitions and statements.

Input to the parser are terminal symbols, i.e. tokens as delivered by a lexical
analyzer:

    vtype id assign num addsub id semi
    vtype id lparen vtype id rparen lbrace return id semi rbrace

The grammar is

    S'         ➞ CODE
    CODE       ➞ VDECL CODE  |  FDECL CODE  |  ε
    VDECL      ➞ vtype id semi  |  vtype ASSIGN semi
    ASSIGN     ➞ id assign RHS
    RHS        ➞ EXPR  |  literal  |  character  |  boolstr
    EXPR       ➞ EXPR addsub ExprTerm  |  ExprTerm
    ExprTerm   ➞ ExprTerm multdiv ExprFactor  |  ExprFactor
    ExprFactor ➞ lparen EXPR rparen  |  id  |  num
    FDECL      ➞ vtype id lparen ARG rparen lbrace BLOCK RETURN rbrace
    ARG        ➞ vtype id MOREARGS  |  ε
    MOREARGS   ➞ comma vtype id MOREARGS  |  ε
    BLOCK      ➞ STMT BLOCK  |  ε
    STMT       ➞ VDECL  |  ASSIGN semi
               |  if lparen COND rparen lbrace BLOCK rbrace ELSE
               |  while lparen COND rparen lbrace BLOCK rbrace
    COND       ➞ COND comp CondTerm  |  CondTerm
    CondTerm   ➞ boolstr
    ELSE       ➞ else lbrace BLOCK rbrace  |  ε
    RETURN     ➞ return RHS semi

The SLR(1) table has been generated externally and is kept as data.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package minic

import (
	"sync"

	"github.com/npillmayer/shiftreduce/lr"
	"github.com/npillmayer/shiftreduce/lr/slr"
)

var (
	grammar  *lr.Grammar
	table    *lr.Table
	parser   *slr.Parser
	setupErr error
	initOnce sync.Once
)

func setup() {
	initOnce.Do(func() {
		if grammar, setupErr = makeGrammar(); setupErr != nil {
			return
		}
		if table, setupErr = makeTable(); setupErr != nil {
			return
		}
		parser, setupErr = slr.NewParser(grammar, table)
	})
}

// Grammar returns the grammar for the language. Rule numbers correspond to the
// reduce actions of the parse table.
func Grammar() (*lr.Grammar, error) {
	setup()
	return grammar, setupErr
}

// Table returns the parse table for the language.
func Table() (*lr.Table, error) {
	setup()
	return table, setupErr
}

// Parser returns a parser for the language. The parser may be shared between
// goroutines.
func Parser() (*slr.Parser, error) {
	setup()
	return parser, setupErr
}

func makeGrammar() (*lr.Grammar, error) {
	nonterms := make(map[lr.Symbol]bool)
	for _, r := range rules {
		nonterms[r.lhs] = true
	}
	b := lr.NewGrammarBuilder("MiniC")
	for _, r := range rules {
		rb := b.LHS(r.lhs)
		if len(r.rhs) == 0 {
			rb.Epsilon()
			continue
		}
		for _, A := range r.rhs {
			if nonterms[A] {
				rb.N(A)
			} else {
				rb.T(A)
			}
		}
		rb.End()
	}
	return b.Grammar()
}

func makeTable() (*lr.Table, error) {
	tb := lr.NewTableBuilder()
	for state, entries := range states {
		tb.Row(lr.State(state), entries)
	}
	return tb.Table()
}

// --- Data ------------------------------------------------------------------

var rules = []struct {
	lhs lr.Symbol
	rhs []lr.Symbol
}{
	{"S'", []lr.Symbol{"CODE"}},                                                                             // 0
	{"CODE", []lr.Symbol{"VDECL", "CODE"}},                                                                  // 1
	{"CODE", []lr.Symbol{"FDECL", "CODE"}},                                                                  // 2
	{"CODE", nil},                                                                                           // 3
	{"VDECL", []lr.Symbol{"vtype", "id", "semi"}},                                                           // 4
	{"VDECL", []lr.Symbol{"vtype", "ASSIGN", "semi"}},                                                       // 5
	{"ASSIGN", []lr.Symbol{"id", "assign", "RHS"}},                                                          // 6
	{"RHS", []lr.Symbol{"EXPR"}},                                                                            // 7
	{"RHS", []lr.Symbol{"literal"}},                                                                         // 8
	{"RHS", []lr.Symbol{"character"}},                                                                       // 9
	{"RHS", []lr.Symbol{"boolstr"}},                                                                         // 10
	{"EXPR", []lr.Symbol{"EXPR", "addsub", "ExprTerm"}},                                                     // 11
	{"EXPR", []lr.Symbol{"ExprTerm"}},                                                                       // 12
	{"ExprTerm", []lr.Symbol{"ExprTerm", "multdiv", "ExprFactor"}},                                          // 13
	{"ExprTerm", []lr.Symbol{"ExprFactor"}},                                                                 // 14
	{"ExprFactor", []lr.Symbol{"lparen", "EXPR", "rparen"}},                                                 // 15
	{"ExprFactor", []lr.Symbol{"id"}},                                                                       // 16
	{"ExprFactor", []lr.Symbol{"num"}},                                                                      // 17
	{"FDECL", []lr.Symbol{"vtype", "id", "lparen", "ARG", "rparen", "lbrace", "BLOCK", "RETURN", "rbrace"}}, // 18
	{"ARG", []lr.Symbol{"vtype", "id", "MOREARGS"}},                                                         // 19
	{"ARG", nil},                                                                                            // 20
	{"MOREARGS", []lr.Symbol{"comma", "vtype", "id", "MOREARGS"}},                                           // 21
	{"MOREARGS", nil},                                                                                       // 22
	{"BLOCK", []lr.Symbol{"STMT", "BLOCK"}},                                                                 // 23
	{"BLOCK", nil},                                                                                          // 24
	{"STMT", []lr.Symbol{"VDECL"}},                                                                          // 25
	{"STMT", []lr.Symbol{"ASSIGN", "semi"}},                                                                 // 26
	{"STMT", []lr.Symbol{"if", "lparen", "COND", "rparen", "lbrace", "BLOCK", "rbrace", "ELSE"}},            // 27
	{"STMT", []lr.Symbol{"while", "lparen", "COND", "rparen", "lbrace", "BLOCK", "rbrace"}},                 // 28
	{"COND", []lr.Symbol{"COND", "comp", "CondTerm"}},                                                       // 29
	{"COND", []lr.Symbol{"CondTerm"}},                                                                       // 30
	{"CondTerm", []lr.Symbol{"boolstr"}},                                                                    // 31
	{"ELSE", []lr.Symbol{"else", "lbrace", "BLOCK", "rbrace"}},                                              // 32
	{"ELSE", nil},                                                                                           // 33
	{"RETURN", []lr.Symbol{"return", "RHS", "semi"}},                                                        // 34
}

var states = []map[lr.Symbol]lr.Action{
	0: {"vtype": lr.Shift(4), lr.EOF: lr.Reduce(3), "CODE": lr.Goto(1), "VDECL": lr.Goto(2), "FDECL": lr.Goto(3)},
	1: {lr.EOF: lr.Accept()},
	2: {"vtype": lr.Shift(4), lr.EOF: lr.Reduce(3), "CODE": lr.Goto(5), "VDECL": lr.Goto(2), "FDECL": lr.Goto(3)},
	3: {"vtype": lr.Shift(4), lr.EOF: lr.Reduce(3), "CODE": lr.Goto(6), "VDECL": lr.Goto(2), "FDECL": lr.Goto(3)},
	4: {"id": lr.Shift(7), "ASSIGN": lr.Goto(8)},
	5: {lr.EOF: lr.Reduce(1)},
	6: {lr.EOF: lr.Reduce(2)},
	7: {"semi": lr.Shift(9), "assign": lr.Shift(11), "lparen": lr.Shift(10)},
	8: {"semi": lr.Shift(12)},
	9: {"vtype": lr.Reduce(4), "id": lr.Reduce(4), "rbrace": lr.Reduce(4), "if": lr.Reduce(4), "while": lr.Reduce(4), "return": lr.Reduce(4), lr.EOF: lr.Reduce(4)},
	10: {"vtype": lr.Shift(14), "rparen": lr.Reduce(20), "ARG": lr.Goto(13)},
	11: {"id": lr.Shift(23), "literal": lr.Shift(17), "character": lr.Shift(18), "boolstr": lr.Shift(19), "lparen": lr.Shift(22), "num": lr.Shift(24), "RHS": lr.Goto(15), "EXPR": lr.Goto(16), "ExprTerm": lr.Goto(20), "ExprFactor": lr.Goto(21)},
	12: {"vtype": lr.Reduce(5), "id": lr.Reduce(5), "rbrace": lr.Reduce(5), "if": lr.Reduce(5), "while": lr.Reduce(5), "return": lr.Reduce(5), lr.EOF: lr.Reduce(5)},
	13: {"rparen": lr.Shift(25)},
	14: {"id": lr.Shift(26)},
	15: {"semi": lr.Reduce(6)},
	16: {"semi": lr.Reduce(7), "addsub": lr.Shift(27)},
	17: {"semi": lr.Reduce(8)},
	18: {"semi": lr.Reduce(9)},
	19: {"semi": lr.Reduce(10)},
	20: {"semi": lr.Reduce(12), "addsub": lr.Reduce(12), "multdiv": lr.Shift(28), "rparen": lr.Reduce(12)},
	21: {"semi": lr.Reduce(14), "addsub": lr.Reduce(14), "multdiv": lr.Reduce(14), "rparen": lr.Reduce(14)},
	22: {"id": lr.Shift(23), "lparen": lr.Shift(22), "num": lr.Shift(24), "EXPR": lr.Goto(29), "ExprTerm": lr.Goto(20), "ExprFactor": lr.Goto(21)},
	23: {"semi": lr.Reduce(16), "addsub": lr.Reduce(16), "multdiv": lr.Reduce(16), "rparen": lr.Reduce(16)},
	24: {"semi": lr.Reduce(17), "addsub": lr.Reduce(17), "multdiv": lr.Reduce(17), "rparen": lr.Reduce(17)},
	25: {"lbrace": lr.Shift(30)},
	26: {"rparen": lr.Reduce(22), "comma": lr.Shift(32), "MOREARGS": lr.Goto(31)},
	27: {"id": lr.Shift(23), "lparen": lr.Shift(22), "num": lr.Shift(24), "ExprTerm": lr.Goto(33), "ExprFactor": lr.Goto(21)},
	28: {"id": lr.Shift(23), "lparen": lr.Shift(22), "num": lr.Shift(24), "ExprFactor": lr.Goto(34)},
	29: {"addsub": lr.Shift(27), "rparen": lr.Shift(35)},
	30: {"vtype": lr.Shift(42), "id": lr.Shift(43), "rbrace": lr.Reduce(24), "if": lr.Shift(40), "while": lr.Shift(41), "return": lr.Reduce(24), "VDECL": lr.Goto(38), "ASSIGN": lr.Goto(39), "BLOCK": lr.Goto(36), "STMT": lr.Goto(37)},
	31: {"rparen": lr.Reduce(19)},
	32: {"vtype": lr.Shift(44)},
	33: {"semi": lr.Reduce(11), "addsub": lr.Reduce(11), "multdiv": lr.Shift(28), "rparen": lr.Reduce(11)},
	34: {"semi": lr.Reduce(13), "addsub": lr.Reduce(13), "multdiv": lr.Reduce(13), "rparen": lr.Reduce(13)},
	35: {"semi": lr.Reduce(15), "addsub": lr.Reduce(15), "multdiv": lr.Reduce(15), "rparen": lr.Reduce(15)},
	36: {"return": lr.Shift(46), "RETURN": lr.Goto(45)},
	37: {"vtype": lr.Shift(42), "id": lr.Shift(43), "rbrace": lr.Reduce(24), "if": lr.Shift(40), "while": lr.Shift(41), "return": lr.Reduce(24), "VDECL": lr.Goto(38), "ASSIGN": lr.Goto(39), "BLOCK": lr.Goto(47), "STMT": lr.Goto(37)},
	38: {"vtype": lr.Reduce(25), "id": lr.Reduce(25), "rbrace": lr.Reduce(25), "if": lr.Reduce(25), "while": lr.Reduce(25), "return": lr.Reduce(25)},
	39: {"semi": lr.Shift(48)},
	40: {"lparen": lr.Shift(49)},
	41: {"lparen": lr.Shift(50)},
	42: {"id": lr.Shift(51), "ASSIGN": lr.Goto(8)},
	43: {"assign": lr.Shift(11)},
	44: {"id": lr.Shift(52)},
	45: {"rbrace": lr.Shift(53)},
	46: {"id": lr.Shift(23), "literal": lr.Shift(17), "character": lr.Shift(18), "boolstr": lr.Shift(19), "lparen": lr.Shift(22), "num": lr.Shift(24), "RHS": lr.Goto(54), "EXPR": lr.Goto(16), "ExprTerm": lr.Goto(20), "ExprFactor": lr.Goto(21)},
	47: {"rbrace": lr.Reduce(23), "return": lr.Reduce(23)},
	48: {"vtype": lr.Reduce(26), "id": lr.Reduce(26), "rbrace": lr.Reduce(26), "if": lr.Reduce(26), "while": lr.Reduce(26), "return": lr.Reduce(26)},
	49: {"boolstr": lr.Shift(57), "COND": lr.Goto(55), "CondTerm": lr.Goto(56)},
	50: {"boolstr": lr.Shift(57), "COND": lr.Goto(58), "CondTerm": lr.Goto(56)},
	51: {"semi": lr.Shift(9), "assign": lr.Shift(11)},
	52: {"rparen": lr.Reduce(22), "comma": lr.Shift(32), "MOREARGS": lr.Goto(59)},
	53: {"vtype": lr.Reduce(18), lr.EOF: lr.Reduce(18)},
	54: {"semi": lr.Shift(60)},
	55: {"rparen": lr.Shift(61), "comp": lr.Shift(62), "COND": lr.Goto(62), "CondTerm": lr.Goto(57)},
	56: {"rparen": lr.Reduce(30), "comp": lr.Reduce(30)},
	57: {"rparen": lr.Reduce(31), "comp": lr.Reduce(31)},
	58: {"rparen": lr.Shift(63), "comp": lr.Shift(62), "COND": lr.Goto(62), "CondTerm": lr.Goto(57)},
	59: {"rparen": lr.Reduce(21)},
	60: {"rbrace": lr.Reduce(34)},
	61: {"lbrace": lr.Shift(64)},
	62: {"boolstr": lr.Shift(57), "CondTerm": lr.Goto(65)},
	63: {"lbrace": lr.Shift(66)},
	64: {"vtype": lr.Shift(42), "id": lr.Shift(43), "rbrace": lr.Reduce(24), "if": lr.Shift(40), "while": lr.Shift(41), "return": lr.Reduce(24), "VDECL": lr.Goto(38), "ASSIGN": lr.Goto(39), "BLOCK": lr.Goto(67), "STMT": lr.Goto(37)},
	65: {"rparen": lr.Reduce(29), "return": lr.Reduce(29)},
	66: {"vtype": lr.Shift(42), "id": lr.Shift(43), "rbrace": lr.Reduce(24), "if": lr.Shift(40), "while": lr.Shift(41), "return": lr.Reduce(24), "VDECL": lr.Goto(38), "ASSIGN": lr.Goto(39), "BLOCK": lr.Goto(68), "STMT": lr.Goto(37)},
	67: {"rbrace": lr.Shift(69)},
	68: {"rbrace": lr.Shift(70)},
	69: {"vtype": lr.Reduce(33), "id": lr.Reduce(33), "rbrace": lr.Reduce(33), "if": lr.Reduce(33), "while": lr.Reduce(33), "else": lr.Shift(72), "return": lr.Reduce(33), "ELSE": lr.Goto(71)},
	70: {"vtype": lr.Reduce(28), "id": lr.Reduce(28), "rbrace": lr.Reduce(28), "if": lr.Reduce(28), "while": lr.Reduce(28), "return": lr.Reduce(28)},
	71: {"vtype": lr.Reduce(27), "id": lr.Reduce(27), "rbrace": lr.Reduce(27), "if": lr.Reduce(27), "while": lr.Reduce(27), "return": lr.Reduce(27)},
	72: {"lbrace": lr.Shift(73)},
	73: {"vtype": lr.Shift(42), "id": lr.Shift(43), "rbrace": lr.Reduce(24), "if": lr.Shift(40), "while": lr.Shift(41), "return": lr.Reduce(24), "VDECL": lr.Goto(38), "ASSIGN": lr.Goto(39), "BLOCK": lr.Goto(74), "STMT": lr.Goto(37)},
	74: {"rbrace": lr.Shift(75)},
	75: {"vtype": lr.Reduce(32), "id": lr.Reduce(32), "rbrace": lr.Reduce(32), "if": lr.Reduce(32), "while": lr.Reduce(32), "return": lr.Reduce(32)},
}

