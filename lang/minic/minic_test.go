package minic

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/npillmayer/shiftreduce/lr"
	"github.com/npillmayer/shiftreduce/lr/ptree"
	"github.com/npillmayer/shiftreduce/lr/scanner"
	"github.com/npillmayer/shiftreduce/lr/slr"
)

func symbols(input string) []lr.Symbol {
	var syms []lr.Symbol
	for _, f := range strings.Fields(input) {
		syms = append(syms, lr.Symbol(f))
	}
	return syms
}

func mustParser(t *testing.T) *slr.Parser {
	p, err := Parser()
	if err != nil {
		t.Fatal(err)
	}
	return p
}

// checkShape asserts that every inner node of a tree has children matching the
// right hand side of the rule it has been reduced by.
func checkShape(t *testing.T, g *lr.Grammar, root *ptree.Node) {
	t.Helper()
	for node := range root.All() {
		if node.IsTerminal() {
			if len(node.Children) != 0 {
				t.Errorf("terminal %s has children", node.Symbol)
			}
			continue
		}
		rule := g.Rule(node.Rule)
		if rule == nil || rule.LHS() != node.Symbol {
			t.Errorf("node %s carries rule %d", node.Symbol, node.Rule)
			continue
		}
		rhs := rule.RHS()
		if len(rhs) != len(node.Children) {
			t.Errorf("node %s: rule %v, but %d children", node.Symbol, rule, len(node.Children))
			continue
		}
		for i, ch := range node.Children {
			if ch.Symbol != rhs[i] {
				t.Errorf("node %s: child #%d is %s, rule says %s", node.Symbol, i, ch.Symbol, rhs[i])
			}
		}
	}
}

func TestGrammarAndTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shiftreduce.lr")
	defer teardown()
	//
	g, err := Grammar()
	if err != nil {
		t.Fatal(err)
	}
	if g.Size() != 35 {
		t.Errorf("expected grammar to have 35 rules, has %d", g.Size())
	}
	if g.StartSymbol() != "CODE" {
		t.Errorf("expected start symbol CODE, is %s", g.StartSymbol())
	}
	if !g.IsTerminal("vtype") || !g.IsNonTerminal("VDECL") || g.IsTerminal("BLOCK") {
		t.Errorf("terminals and non-terminals mixed up")
	}
	if r := g.Rule(1); r.String() != "CODE ➞ VDECL CODE" {
		t.Errorf("unexpected rule #1: %v", r)
	}
	table, err := Table()
	if err != nil {
		t.Fatal(err)
	}
	if table.StateCount() != 76 {
		t.Errorf("expected table to have 76 states, has %d", table.StateCount())
	}
	if a := table.Action(1, lr.EOF); a.Kind() != lr.AcceptAction {
		t.Errorf("expected state 1 to accept on end marker, is %v", a)
	}
	if err := lr.ValidateTable(g, table); err != nil {
		t.Error(err)
	}
}

func TestVariableDeclaration(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shiftreduce.lr")
	defer teardown()
	//
	p := mustParser(t)
	e := p.Engine(symbols("vtype id semi"))
	root, err := e.Run()
	if err != nil {
		t.Fatal(err)
	}
	if e.State() != slr.Accepted || e.Steps() != 7 {
		t.Errorf("expected engine to accept after 7 steps, is %s after %d", e.State(), e.Steps())
	}
	if s := root.String(); s != "(CODE (VDECL vtype id semi) (CODE))" {
		t.Errorf("unexpected tree %s", s)
	}
	var order []string
	for node := range root.All() {
		order = append(order, string(node.Symbol))
	}
	if s := strings.Join(order, " "); s != "CODE VDECL vtype id semi CODE" {
		t.Errorf("unexpected pre-order %s", s)
	}
	checkShape(t, p.Grammar(), root)
}

func TestVtypeVtype(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shiftreduce.lr")
	defer teardown()
	//
	p := mustParser(t)
	e := p.Engine(symbols("vtype vtype"))
	root, err := e.Run()
	if root != nil || e.State() != slr.Rejected {
		t.Fatalf("expected input to be rejected, engine is %s", e.State())
	}
	var perr *slr.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected a *ParseError, got %v", err)
	}
	if perr.State != 4 || perr.Symbol != "vtype" || perr.Pos != 1 || perr.Phase != slr.PhaseAction {
		t.Errorf("unexpected diagnostic %v", perr)
	}
	if !errors.Is(err, slr.ErrUndefinedAction) {
		t.Errorf("expected error to wrap ErrUndefinedAction")
	}
	if e.Steps() != 2 {
		t.Errorf("expected rejection in step 2, was %d", e.Steps())
	}
}

func TestEmptyInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shiftreduce.lr")
	defer teardown()
	//
	p := mustParser(t)
	root, err := p.Parse(nil)
	if err != nil {
		t.Fatal(err)
	}
	if root.Symbol != "CODE" || len(root.Children) != 0 || root.Rule != 3 {
		t.Errorf("expected empty program to reduce CODE ➞ ε, got %v", root)
	}
	if !root.Span.IsNull() {
		t.Errorf("expected root of empty program to span nothing, spans %v", root.Span)
	}
}

func TestPrograms(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shiftreduce.lr")
	defer teardown()
	//
	p := mustParser(t)
	inputs := []struct {
		input string
		tree  string
	}{
		{"vtype id assign num addsub id semi",
			"(CODE (VDECL vtype (ASSIGN id assign (RHS (EXPR (EXPR (ExprTerm (ExprFactor num))) addsub (ExprTerm (ExprFactor id))))) semi) (CODE))"},
		{"vtype id lparen vtype id rparen lbrace return id semi rbrace",
			"(CODE (FDECL vtype id lparen (ARG vtype id (MOREARGS)) rparen lbrace (BLOCK) (RETURN return (RHS (EXPR (ExprTerm (ExprFactor id)))) semi) rbrace) (CODE))"},
		{"vtype id lparen rparen lbrace if lparen boolstr comp boolstr rparen lbrace id assign num semi rbrace else lbrace rbrace return num semi rbrace", ""},
		{"vtype id lparen vtype id comma vtype id rparen lbrace while lparen boolstr rparen lbrace vtype id semi rbrace return id semi rbrace", ""},
		{"vtype id assign lparen id addsub num rparen multdiv id semi", ""},
		{"vtype id semi vtype id assign literal semi", ""},
	}
	for i, in := range inputs {
		syms := symbols(in.input)
		root, err := p.Parse(syms)
		if err != nil {
			t.Errorf("program #%d: %v", i, err)
			continue
		}
		if in.tree != "" && root.String() != in.tree {
			t.Errorf("program #%d: unexpected tree %s", i, root)
		}
		leaves := root.Leaves()
		if len(leaves) != len(syms) {
			t.Errorf("program #%d: %d tokens, but %d leaves", i, len(syms), len(leaves))
		}
		for j, l := range leaves {
			if l.Symbol != syms[j] || l.Span.From() != uint64(j) {
				t.Errorf("program #%d: leaf #%d is %s at %v", i, j, l.Symbol, l.Span)
			}
		}
		if root.Span.Len() != uint64(len(syms)) {
			t.Errorf("program #%d: root spans %v", i, root.Span)
		}
		checkShape(t, p.Grammar(), root)
	}
}

func TestSyntaxErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shiftreduce.lr")
	defer teardown()
	//
	p := mustParser(t)
	inputs := []struct {
		input  string
		state  lr.State
		symbol lr.Symbol
		pos    uint64
	}{
		{"vtype id semi semi", 9, "semi", 3},
		{"vtype id assign", 11, lr.EOF, 3},
		{"vtype id assign literal semi vtype x semi", 4, "x", 6},
		{"id", 0, "id", 0},
	}
	for i, in := range inputs {
		_, err := p.Parse(symbols(in.input))
		var perr *slr.ParseError
		if !errors.As(err, &perr) {
			t.Errorf("input #%d: expected a *ParseError, got %v", i, err)
			continue
		}
		if perr.State != in.state || perr.Symbol != in.symbol || perr.Pos != in.pos {
			t.Errorf("input #%d: expected error at (%d,%s,%d), got %v", i, in.state, in.symbol, in.pos, perr)
		}
	}
}

func TestScannedInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shiftreduce.lr")
	defer teardown()
	//
	p := mustParser(t)
	ws, err := scanner.Words("vtype id\n\tassign num semi")
	if err != nil {
		t.Fatal(err)
	}
	root, err := p.ParseTokens(ws)
	if err != nil {
		t.Fatal(err)
	}
	if len(root.Leaves()) != 5 {
		t.Errorf("expected 5 leaves, got %d", len(root.Leaves()))
	}
}

func TestConcurrentParses(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shiftreduce.lr")
	defer teardown()
	//
	p := mustParser(t)
	inputs := []string{
		"vtype id semi",
		"vtype vtype",
		"vtype id lparen vtype id rparen lbrace return id semi rbrace",
		"",
	}
	want := make([]string, len(inputs))
	for i, in := range inputs {
		root, err := p.Parse(symbols(in))
		want[i] = outcome(root, err)
	}
	var wg sync.WaitGroup
	results := make([][]string, 8)
	for w := range results {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for _, in := range inputs {
				root, err := p.Parse(symbols(in))
				results[w] = append(results[w], outcome(root, err))
			}
		}(w)
	}
	wg.Wait()
	for w, res := range results {
		for i := range inputs {
			if res[i] != want[i] {
				t.Errorf("worker %d, input #%d: %s != %s", w, i, res[i], want[i])
			}
		}
	}
}

func outcome(root *ptree.Node, err error) string {
	if err != nil {
		return err.Error()
	}
	return root.String()
}
