/*
Package lr implements prerequisites for table-driven LR parsing:
grammars, parser actions and parse tables.

Building a Grammar

Grammars are specified using a grammar builder object. Clients add
rules, consisting of non-terminal symbols and terminals. Rule 0 has to be
the augmenting rule, with the start symbol as its sole right-hand side
symbol. Grammars may contain epsilon-productions.

Example:

    b := lr.NewGrammarBuilder("G")
    b.LHS("S'").N("S").End()              // S' ->  S
    b.LHS("S").N("A").T("a").End()        // S  ->  A a
    b.LHS("A").T("b").N("A").End()        // A  ->  b A
    b.LHS("A").Epsilon()                  // A  ->
    g, err := b.Grammar()

This results in the following trivial grammar:

   g.Dump()

   0: [S'] ::= [S]
   1: [S] ::= [A a]
   2: [A] ::= [b A]
   3: [A] ::= []

The builder validates the grammar once: every non-terminal referenced on a
right-hand side must have at least one rule, and terminals may never appear
on a left-hand side.

Parse Tables

Parse tables are not derived from the grammar by this package. They are
handed in fully formed, usually as data produced by an external table
generator, and are assembled with a table builder:

    tb := lr.NewTableBuilder()
    tb.Row(0, map[lr.Symbol]lr.Action{"b": lr.Shift(3), "a": lr.Reduce(3), "S": lr.Goto(1), "A": lr.Goto(2)})
    tb.Row(1, map[lr.Symbol]lr.Action{lr.EOF: lr.Accept()})
    …
    table, err := tb.Table()

A table holds one mapping per state, keyed by symbol. Shift, reduce and accept
entries are keyed by terminals (or the end marker EOF), goto entries by
non-terminals. The builder refuses conflicting entries, and a finished table is
never mutated. Function ValidateTable checks a table against a grammar.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lr

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'shiftreduce.lr'.
func tracer() tracing.Trace {
	return tracing.Select("shiftreduce.lr")
}
