package ptree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/

import "github.com/npillmayer/shiftreduce"

// TopDown traverses a tree top-down, applying Listener-methods for all nodes
// encountered. It returns a user-defined value, calculated by the listener.
func (n *Node) TopDown(listener Listener, dir Direction) interface{} {
	tracer().Debugf("TopDown starting at node %v", n.Symbol)
	return n.traverseTopDown(listener, dir, 0)
}

func (n *Node) traverseTopDown(listener Listener, dir Direction, level int) interface{} {
	ctxt := makeCtxt(n.Span, level, n.Rule)
	if n.IsTerminal() {
		return listener.Terminal(n, ctxt)
	}
	values := make([]interface{}, len(n.Children))
	if listener.EnterRule(n, ctxt) { // listener signalled us to traverse children nodes
		i, end, step := 0, len(n.Children), 1
		if dir == RtoL {
			i, end, step = len(n.Children)-1, -1, -1
		}
		for ; i != end; i += step {
			values[i] = n.Children[i].traverseTopDown(listener, dir, level+1)
			tracer().Debugf("child value[%d] = %v", i, values[i])
		}
	}
	return listener.ExitRule(n, values, ctxt)
}

// Direction lets clients decide wether children nodes should be traversed left-to-right
// (default) or right-to-left. Any value other than RtoL traverses left-to-right.
type Direction int

// Children nodes may be traversed left-to-right (default) or right-to-left.
const (
	LtoR Direction = 1
	RtoL Direction = -1
)

// --- Listener --------------------------------------------------------------

// Listener is a type for walking a parse tree.
//
// EnterRule returns a boolean value indicating if the traversal should continue to
// the children of this node. ExitRule receives the values returned for the
// children (nil for children not visited), indexed left to right. ExitRule and
// Terminal may return user-defined values to be propagated upwards of the tree.
type Listener interface {
	EnterRule(*Node, RuleCtxt) bool
	ExitRule(*Node, []interface{}, RuleCtxt) interface{}
	Terminal(*Node, RuleCtxt) interface{}
}

// RuleCtxt is a context structure for Listeners.
type RuleCtxt struct {
	Span      shiftreduce.Span // span of input symbols covered by this rule
	Level     int              // nesting level
	RuleIndex int              // -1 for terminals
}

func makeCtxt(span shiftreduce.Span, level int, rule int) RuleCtxt {
	return RuleCtxt{
		Span:      span,
		Level:     level,
		RuleIndex: rule,
	}
}
