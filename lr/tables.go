package lr

import (
	"errors"
	"fmt"
	"io"

	"github.com/npillmayer/shiftreduce/lr/sparse"
)

// Table is a parse table. It maps pairs of (state, symbol) to actions.
// Shift, reduce and accept actions are keyed by terminals (or EOF), goto entries
// by non-terminals. As the two lookup regimes never overlap, all entries share one
// mapping per state.
//
// Tables are created by a TableBuilder and are never mutated afterwards. They may
// be shared between any number of concurrently running parsers.
type Table struct {
	matrix  *sparse.IntMatrix // rows are states, columns are symbols
	columns map[Symbol]int    // symbol → column
	symbols []Symbol          // column → symbol
	start   State             // initial state of the parser
}

// Action returns the action for a state and an input symbol. If the table does
// not define an entry, the error action is returned. Goto entries are not
// visible through Action.
func (t *Table) Action(state State, a Symbol) Action {
	act := t.entry(state, a)
	if act.kind == GotoAction {
		return Action{}
	}
	return act
}

// Goto returns the goto entry for a state and a non-terminal, if any.
func (t *Table) Goto(state State, A Symbol) (State, bool) {
	act := t.entry(state, A)
	if act.kind != GotoAction {
		return -1, false
	}
	return act.Target(), true
}

// Entry returns the raw table entry for (state, symbol), regardless of its kind.
func (t *Table) Entry(state State, A Symbol) Action {
	return t.entry(state, A)
}

func (t *Table) entry(state State, A Symbol) Action {
	col, ok := t.columns[A]
	if !ok || state < 0 {
		return Action{}
	}
	v := t.matrix.Value(int(state), col)
	if v == t.matrix.NullValue() {
		return Action{}
	}
	return decodeAction(v)
}

// StartState returns the initial state for parsers using this table.
func (t *Table) StartState() State {
	return t.start
}

// StateCount returns the number of rows of the table.
func (t *Table) StateCount() int {
	return t.matrix.M()
}

// EntryCount returns the number of defined entries of the table.
func (t *Table) EntryCount() int {
	return t.matrix.ValueCount()
}

// Symbols returns all symbols used as keys in the table. The order corresponds
// to the column layout of the table and carries no meaning otherwise.
func (t *Table) Symbols() []Symbol {
	return append([]Symbol(nil), t.symbols...)
}

// Each calls f for every defined entry of the table, ordered by state.
func (t *Table) Each(f func(state State, A Symbol, act Action)) {
	t.matrix.Each(func(i, j int, v, _ int32) {
		f(State(i), t.symbols[j], decodeAction(v))
	})
}

// --- Table Builder ---------------------------------------------------------

// TableBuilder assembles a parse table from entries. Tables usually are produced
// by an external table generator, and the builder is used to load them.
// At most one action may be set for a pair (state, symbol); setting a different
// second action is a conflict, which will be reported by Table().
type TableBuilder struct {
	table     *Table
	conflicts []error
	errs      []error
}

// NewTableBuilder creates a builder for an empty table with start state 0.
func NewTableBuilder() *TableBuilder {
	return &TableBuilder{
		table: &Table{
			matrix:  sparse.NewIntMatrix(0, 0, sparse.DefaultNullValue),
			columns: make(map[Symbol]int),
		},
	}
}

// StartState sets the initial parser state.
func (tb *TableBuilder) StartState(s State) *TableBuilder {
	if tb.table == nil {
		tb.errs = append(tb.errs, errTableDone)
		return tb
	}
	tb.table.start = s
	return tb
}

// Shift sets a shift entry.
func (tb *TableBuilder) Shift(state State, a Symbol, target State) *TableBuilder {
	return tb.Set(state, a, Shift(target))
}

// Reduce sets a reduce entry.
func (tb *TableBuilder) Reduce(state State, a Symbol, rule int) *TableBuilder {
	return tb.Set(state, a, Reduce(rule))
}

// Accept sets an accept entry.
func (tb *TableBuilder) Accept(state State, a Symbol) *TableBuilder {
	return tb.Set(state, a, Accept())
}

// Goto sets a goto entry.
func (tb *TableBuilder) Goto(state State, A Symbol, target State) *TableBuilder {
	return tb.Set(state, A, Goto(target))
}

// Row sets all entries for a state.
func (tb *TableBuilder) Row(state State, entries map[Symbol]Action) *TableBuilder {
	for A, act := range entries {
		tb.Set(state, A, act)
	}
	return tb
}

// Set sets an entry of the table. Setting the error action is a no-op.
func (tb *TableBuilder) Set(state State, A Symbol, act Action) *TableBuilder {
	if tb.table == nil {
		tb.errs = append(tb.errs, errTableDone)
		return tb
	}
	if act.kind == ErrorAction {
		return tb
	}
	if state < 0 || act.arg < 0 || act.arg > maxActionArg {
		tb.errs = append(tb.errs, fmt.Errorf("invalid table entry (%d,%s) = %s", state, A, act))
		return tb
	}
	t := tb.table
	col, ok := t.columns[A]
	if !ok {
		col = len(t.symbols)
		t.columns[A] = col
		t.symbols = append(t.symbols, A)
	}
	v := act.encode()
	switch old := t.matrix.Value(int(state), col); old {
	case t.matrix.NullValue():
		t.matrix.Set(int(state), col, v)
	case v:
		tracer().Debugf("relax, double entry %s at (%d,%s)", act, state, A)
	default:
		t.matrix.Add(int(state), col, v)
		tb.conflicts = append(tb.conflicts, fmt.Errorf("conflict at (%d,%s): %s/%s",
			state, A, decodeAction(old), act))
	}
	return tb
}

var errTableDone = errors.New("table has already been built")

// Table returns the finished table. Afterwards the builder may not be used
// any more. If entries have been conflicting or invalid, an error is returned.
func (tb *TableBuilder) Table() (*Table, error) {
	if tb.table == nil {
		return nil, errTableDone
	}
	t := tb.table
	tb.table = nil
	if len(tb.errs) > 0 || len(tb.conflicts) > 0 {
		err := errors.Join(append(tb.errs, tb.conflicts...)...)
		tracer().Errorf("parse table has %d conflicts", len(tb.conflicts))
		return nil, err
	}
	if t.matrix.M() <= int(t.start) {
		return nil, fmt.Errorf("start state %d has no table entries", t.start)
	}
	tracer().Infof("parse table of size %d x %d with %d entries",
		t.matrix.M(), t.matrix.N(), t.matrix.ValueCount())
	return t, nil
}

// --- Validation ------------------------------------------------------------

// ValidateTable checks a parse table against a grammar. It reports
//
//   - reduce entries with rule numbers not present in the grammar
//
//   - shift, reduce and accept entries keyed by a non-terminal
//
//   - goto entries keyed by anything but a non-terminal
//
//   - shift entries for the end marker EOF
//
//   - entries keyed by symbols unknown to the grammar.
//
// Tables and grammars which have been validated together will not lead to
// inconsistencies during parsing.
func ValidateTable(g *Grammar, t *Table) error {
	var errs []error
	t.Each(func(state State, A Symbol, act Action) {
		switch {
		case !g.IsTerminal(A) && !g.IsNonTerminal(A):
			errs = append(errs, fmt.Errorf("state %d: unknown symbol %s", state, A))
		case act.kind == GotoAction && !g.IsNonTerminal(A):
			errs = append(errs, fmt.Errorf("state %d: goto entry for terminal %s", state, A))
		case act.kind != GotoAction && g.IsNonTerminal(A):
			errs = append(errs, fmt.Errorf("state %d: %s entry for non-terminal %s", state, act.kind, A))
		case act.kind == ShiftAction && A == EOF:
			errs = append(errs, fmt.Errorf("state %d: shift of end marker %s", state, EOF))
		case act.kind == ReduceAction && g.Rule(act.arg) == nil:
			errs = append(errs, fmt.Errorf("state %d: reduce by unknown rule %d", state, act.arg))
		}
	})
	if len(errs) > 0 {
		return fmt.Errorf("table does not match grammar %s: %w", g.Name, errors.Join(errs...))
	}
	return nil
}

// --- Export ----------------------------------------------------------------

// TableAsHTML exports a parse table in HTML-format. Columns are ordered as
// terminals, end marker, non-terminals of grammar g.
func TableAsHTML(g *Grammar, t *Table, w io.Writer) {
	var symvec []Symbol
	eof := false
	g.EachSymbol(func(A Symbol) interface{} {
		if !eof && g.IsNonTerminal(A) { // end marker goes between terminals and non-terminals
			symvec, eof = append(symvec, EOF), true
		}
		symvec = append(symvec, A)
		return nil
	})
	io.WriteString(w, "<html><body>\n")
	io.WriteString(w, fmt.Sprintf("%s table with %d entries<p>", g.Name, t.EntryCount()))
	io.WriteString(w, "<table border=1 cellspacing=0 cellpadding=5>\n")
	io.WriteString(w, "<tr bgcolor=#cccccc><td></td>\n")
	for _, A := range symvec {
		io.WriteString(w, fmt.Sprintf("<td>%s</td>", A))
	}
	io.WriteString(w, "</tr>\n")
	var td string // table cell
	for state := 0; state < t.StateCount(); state++ {
		io.WriteString(w, fmt.Sprintf("<tr><td>state %d</td>\n", state))
		for _, A := range symvec {
			if act := t.Entry(State(state), A); act.IsError() {
				td = "&nbsp;"
			} else {
				td = act.String()
			}
			io.WriteString(w, "<td>")
			io.WriteString(w, td)
			io.WriteString(w, "</td>\n")
		}
		io.WriteString(w, "</tr>\n")
	}
	io.WriteString(w, "</table></body></html>\n")
}

// TableToGraphViz exports the state diagram of a parse table to the Graphviz Dot
// format. Edges are shift and goto transitions, states with an accept entry are
// highlighted.
func TableToGraphViz(t *Table, w io.Writer) {
	io.WriteString(w, `digraph {
graph [splines=true, fontname=Helvetica, fontsize=10];
node [shape=Mrecord, style=filled, fontname=Helvetica, fontsize=10];
edge [fontname=Helvetica, fontsize=10];

`)
	accepting := make(map[State]bool)
	t.Each(func(state State, A Symbol, act Action) {
		if act.kind == AcceptAction {
			accepting[state] = true
		}
	})
	for state := 0; state < t.StateCount(); state++ {
		io.WriteString(w, fmt.Sprintf("s%03d [fillcolor=%s label=\"%03d\"]\n",
			state, nodecolor(accepting[State(state)]), state))
	}
	t.Each(func(state State, A Symbol, act Action) {
		if act.kind == ShiftAction || act.kind == GotoAction {
			io.WriteString(w, fmt.Sprintf("s%03d -> s%03d [label=\"%s\"]\n", state, act.arg, A))
		}
	})
	io.WriteString(w, "}\n")
}

func nodecolor(accept bool) string {
	if accept {
		return "lightgray"
	}
	return "white"
}
