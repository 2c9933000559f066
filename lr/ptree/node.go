package ptree

import (
	"bytes"
	"iter"

	"github.com/npillmayer/shiftreduce"
	"github.com/npillmayer/shiftreduce/lr"
)

// Node is a node of a parse tree. A node exclusively owns its children.
type Node struct {
	Symbol   lr.Symbol        // terminal or LHS of a reduced rule
	Children []*Node          // left to right; empty for terminals and epsilon-rules
	Rule     int              // serial number of the rule reduced; -1 for terminals
	Span     shiftreduce.Span // input positions covered by this node
}

// Terminal creates a node for an input token at position pos.
func Terminal(a lr.Symbol, pos uint64) *Node {
	return &Node{
		Symbol: a,
		Rule:   -1,
		Span:   shiftreduce.Span{pos, pos + 1},
	}
}

// NonTerminal creates a node for the reduction of a rule, with children
// matching the rule's right hand side. span is used only if children do not
// cover any input, i.e. for epsilon-rules.
func NonTerminal(rule *lr.Rule, children []*Node, span shiftreduce.Span) *Node {
	n := &Node{
		Symbol:   rule.LHS(),
		Children: children,
		Rule:     rule.Serial(),
		Span:     shiftreduce.Span{span.From(), span.From()},
	}
	for _, ch := range children {
		n.Span = n.Span.Extend(ch.Span)
	}
	return n
}

// IsTerminal is true for nodes representing input tokens.
func (n *Node) IsTerminal() bool {
	return n.Rule < 0
}

// All returns a lazy pre-order sequence of all nodes of the tree rooted at n,
// together with their depth relative to n. Every call to the sequence starts over
// at n; no traversal state survives between calls.
func (n *Node) All() iter.Seq2[*Node, int] {
	return func(yield func(*Node, int) bool) {
		if n == nil {
			return
		}
		type frame struct {
			node  *Node
			depth int
		}
		stack := []frame{{n, 0}}
		for len(stack) > 0 {
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(top.node, top.depth) {
				return
			}
			for i := len(top.node.Children) - 1; i >= 0; i-- { // push right to left
				stack = append(stack, frame{top.node.Children[i], top.depth + 1})
			}
		}
	}
}

// Leaves returns the terminal nodes of a tree, left to right.
func (n *Node) Leaves() []*Node {
	var leaves []*Node
	for node := range n.All() {
		if node.IsTerminal() {
			leaves = append(leaves, node)
		}
	}
	return leaves
}

// Count returns the number of nodes of a tree.
func (n *Node) Count() int {
	cnt := 0
	for range n.All() {
		cnt++
	}
	return cnt
}

// String returns a tree as an s-expression, e.g.
//
//	(CODE (VDECL vtype id semi) (CODE))
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	var b bytes.Buffer
	n.sexpr(&b)
	return b.String()
}

func (n *Node) sexpr(b *bytes.Buffer) {
	if n.IsTerminal() {
		b.WriteString(string(n.Symbol))
		return
	}
	b.WriteString("(")
	b.WriteString(string(n.Symbol))
	for _, ch := range n.Children {
		b.WriteString(" ")
		ch.sexpr(b)
	}
	b.WriteString(")")
}
