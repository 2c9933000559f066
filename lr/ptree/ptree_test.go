package ptree

import (
	"fmt"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/npillmayer/shiftreduce"
	"github.com/npillmayer/shiftreduce/lr"
)

// S' ➞ S
// S  ➞ A b
// A  ➞ a
// A  ➞ ε
func makeRules(t *testing.T) *lr.Grammar {
	b := lr.NewGrammarBuilder("G")
	b.LHS("S'").N("S").End()
	b.LHS("S").N("A").T("b").End()
	b.LHS("A").T("a").End()
	b.LHS("A").Epsilon()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	return g
}

// (S (A a) b) for input "a b"
func makeTree(g *lr.Grammar) *Node {
	a := Terminal("a", 0)
	A := NonTerminal(g.Rule(2), []*Node{a}, shiftreduce.Span{0, 0})
	b := Terminal("b", 1)
	return NonTerminal(g.Rule(1), []*Node{A, b}, shiftreduce.Span{0, 0})
}

func TestPreOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shiftreduce.lr")
	defer teardown()
	//
	root := makeTree(makeRules(t))
	var visited []string
	for node, depth := range root.All() {
		visited = append(visited, fmt.Sprintf("%d:%s", depth, node.Symbol))
	}
	if s := strings.Join(visited, " "); s != "0:S 1:A 2:a 1:b" {
		t.Errorf("expected pre-order 0:S 1:A 2:a 1:b, got %s", s)
	}
	// the sequence is restartable
	seq := root.All()
	for i := 0; i < 2; i++ {
		cnt := 0
		for range seq {
			cnt++
		}
		if cnt != 4 {
			t.Errorf("traversal #%d: expected 4 nodes, got %d", i, cnt)
		}
	}
	// early break
	for node := range root.All() {
		if node.Symbol == "A" {
			break
		}
	}
}

func TestNodeSpansAndLeaves(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shiftreduce.lr")
	defer teardown()
	//
	g := makeRules(t)
	root := makeTree(g)
	if root.Span != (shiftreduce.Span{0, 2}) {
		t.Errorf("expected root to span (0…2), spans %v", root.Span)
	}
	if root.Rule != 1 || root.IsTerminal() {
		t.Errorf("expected root to be a reduction of rule 1, is %d", root.Rule)
	}
	leaves := root.Leaves()
	if len(leaves) != 2 || leaves[0].Symbol != "a" || leaves[1].Symbol != "b" {
		t.Errorf("expected leaves [a b], got %v", leaves)
	}
	eps := NonTerminal(g.Rule(3), nil, shiftreduce.Span{5, 6})
	if !eps.Span.IsNull() || eps.Span.From() != 5 || len(eps.Children) != 0 {
		t.Errorf("expected epsilon node with null span at 5, is %v", eps.Span)
	}
	if s := root.String(); s != "(S (A a) b)" {
		t.Errorf("expected s-expr (S (A a) b), got %s", s)
	}
	if root.Count() != 4 {
		t.Errorf("expected tree to have 4 nodes, has %d", root.Count())
	}
}

// countListener collects terminals and returns the number of leaves of a subtree.
type countListener struct {
	order []string
}

func (l *countListener) EnterRule(n *Node, ctxt RuleCtxt) bool {
	return true
}

func (l *countListener) ExitRule(n *Node, values []interface{}, ctxt RuleCtxt) interface{} {
	sum := 0
	for _, v := range values {
		sum += v.(int)
	}
	return sum
}

func (l *countListener) Terminal(n *Node, ctxt RuleCtxt) interface{} {
	l.order = append(l.order, string(n.Symbol))
	return 1
}

func TestTopDown(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shiftreduce.lr")
	defer teardown()
	//
	root := makeTree(makeRules(t))
	l := &countListener{}
	if v := root.TopDown(l, LtoR); v.(int) != 2 {
		t.Errorf("expected listener to count 2 leaves, got %v", v)
	}
	if strings.Join(l.order, "") != "ab" {
		t.Errorf("expected left-to-right order ab, got %v", l.order)
	}
	l = &countListener{}
	root.TopDown(l, RtoL)
	if strings.Join(l.order, "") != "ba" {
		t.Errorf("expected right-to-left order ba, got %v", l.order)
	}
	var dir Direction // zero value traverses left to right
	l = &countListener{}
	if v := root.TopDown(l, dir); v.(int) != 2 || strings.Join(l.order, "") != "ab" {
		t.Errorf("expected zero direction to visit ab, got %v", l.order)
	}
}
