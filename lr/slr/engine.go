package slr

import (
	"bytes"
	"fmt"

	"github.com/npillmayer/schuko/tracing"

	"github.com/npillmayer/shiftreduce"
	"github.com/npillmayer/shiftreduce/lr"
	"github.com/npillmayer/shiftreduce/lr/ptree"
)

// EngineState is the state of a parse engine (not to be confused with the
// states of a parse table).
type EngineState int

// An engine starts Ready, is Running while stepping through the input and ends
// either Accepted or Rejected. Accepted and Rejected are final.
const (
	Ready EngineState = iota
	Running
	Accepted
	Rejected
)

func (s EngineState) String() string {
	switch s {
	case Ready:
		return "ready"
	case Running:
		return "running"
	case Accepted:
		return "accepted"
	case Rejected:
		return "rejected"
	}
	return fmt.Sprintf("EngineState(%d)", int(s))
}

// Engine is the automaton for a single parse. It owns the parse stack and the
// remaining input. Engines are created by Parser.Engine(…) and are not
// re-usable; a new parse needs a new engine.
type Engine struct {
	g     *lr.Grammar
	table *lr.Table
	state EngineState
	stack []stackitem // parser stack
	input []lr.Symbol // remaining input, terminated by EOF
	pos   uint64      // input position of input[0]
	steps int         // number of iterations so far
	root  *ptree.Node // parse tree, after accept
	err   *ParseError // diagnostic, after reject
}

// We store pairs of state-IDs and tree nodes on the parse stack.
// The bottom item holds the start state only.
type stackitem struct {
	stateID lr.State    // ID of a parser state
	node    *ptree.Node // node for the symbol under stateID
}

func newEngine(g *lr.Grammar, table *lr.Table, input []lr.Symbol) *Engine {
	in := make([]lr.Symbol, len(input), len(input)+1)
	copy(in, input)
	in = append(in, lr.EOF) // end marker
	stack := make([]stackitem, 1, 64)
	stack[0] = stackitem{stateID: table.StartState()}
	return &Engine{
		g:     g,
		table: table,
		state: Ready,
		stack: stack,
		input: in,
	}
}

// State returns the current state of the engine.
func (e *Engine) State() EngineState {
	return e.state
}

// Steps returns the number of shift, reduce, accept or error decisions taken so far.
func (e *Engine) Steps() int {
	return e.steps
}

// Root returns the root of the parse tree after the input has been accepted,
// and nil otherwise.
func (e *Engine) Root() *ptree.Node {
	return e.root
}

// Err returns the diagnostic after the input has been rejected, and nil otherwise.
func (e *Engine) Err() error {
	if e.err == nil {
		return nil
	}
	return e.err
}

// Run steps through the input until it is either accepted or rejected.
// Calling Run on a finished engine returns the recorded outcome.
func (e *Engine) Run() (*ptree.Node, error) {
	for e.Step() {
	}
	tracer().Debugf("parse %s after %d steps", e.state, e.steps)
	return e.Root(), e.Err()
}

// Step performs a single decision of the automaton: shift, reduce, accept or
// reject. It returns true as long as the engine is running.
func (e *Engine) Step() bool {
	switch e.state {
	case Accepted, Rejected:
		return false
	case Ready:
		e.state = Running
	}
	e.steps++
	tos := e.stack[len(e.stack)-1] // TOS
	if len(e.input) == 0 {         // may only happen if a table shifts EOF
		e.reject(&ParseError{State: tos.stateID, Symbol: lr.EOF, Phase: PhaseAction, Pos: e.pos})
		return false
	}
	a := e.input[0]
	action := e.table.Action(tos.stateID, a)
	tracer().Debugf("action(%d,%s)=%s", tos.stateID, a, valstring(action))
	switch action.Kind() {
	case lr.ShiftAction:
		e.shift(a, action.Target())
	case lr.ReduceAction:
		if err := e.reduce(tos.stateID, a, action.Rule()); err != nil {
			e.reject(err)
		}
	case lr.AcceptAction:
		e.accept(tos.stateID, a)
	default: // no action found
		e.reject(&ParseError{State: tos.stateID, Symbol: a, Phase: PhaseAction, Pos: e.pos})
	}
	return e.state == Running
}

// shift consumes one input symbol and pushes a terminal node plus the target state.
func (e *Engine) shift(a lr.Symbol, target lr.State) {
	tracer().Debugf("shifting %s, next state = %d", a, target)
	node := ptree.Terminal(a, e.pos)
	e.input = e.input[1:]
	e.pos++
	e.stack = append(e.stack, stackitem{target, node}) // push a terminal state onto stack
}

// reduce performs a reduce action for a rule
//
//	LHS --> X1 ... Xn   (with X being terminals or non-terminals)
//
// Symbols X1 to Xn should be represented on the stack as items
//
//	[TOS]  Sn(Xn) ... S1(X1)  S0 ...
//
// The nodes for X1…Xn become the children of a new node for LHS, in this order.
// Then the goto entry for (S0, LHS) is pushed. An epsilon-rule pops nothing.
// The current input symbol a is not consumed. If the stack does not hold X1…Xn,
// the table is inconsistent and the input is rejected in the current state.
func (e *Engine) reduce(stateID lr.State, a lr.Symbol, ruleno int) *ParseError {
	rule := e.g.Rule(ruleno)
	if rule == nil || rule.Len() >= len(e.stack) {
		tracer().Errorf("cannot reduce by rule %d with stack depth %d", ruleno, len(e.stack)-1)
		return &ParseError{State: stateID, Symbol: a, Phase: PhaseAction, Pos: e.pos}
	}
	tracer().Infof("reduce %v", rule)
	n := len(e.stack) - rule.Len()
	var children []*ptree.Node
	if !rule.IsEpsilon() {
		rhs := rule.RHS()
		children = make([]*ptree.Node, len(rhs))
		for i, item := range e.stack[n:] { // handle, left to right
			if item.node.Symbol != rhs[i] {
				tracer().Errorf("expected %v on stack, got %s", rhs[i], item.node.Symbol)
				return &ParseError{State: stateID, Symbol: a, Phase: PhaseAction, Pos: e.pos}
			}
			children[i] = item.node
		}
	}
	e.stack = e.stack[:n] // pop handle
	exposed := e.stack[n-1].stateID
	node := ptree.NonTerminal(rule, children, shiftreduce.Span{e.pos, e.pos})
	next, ok := e.table.Goto(exposed, rule.LHS())
	if !ok {
		return &ParseError{State: exposed, Symbol: rule.LHS(), Phase: PhaseGoto, Pos: e.pos}
	}
	tracer().Debugf("reduced to next state = %d", next)
	e.stack = append(e.stack, stackitem{next, node}) // push a non-terminal state onto stack
	return nil
}

func (e *Engine) accept(stateID lr.State, a lr.Symbol) {
	if len(e.stack) != 2 { // [S0, root, Sn]
		e.reject(&ParseError{State: stateID, Symbol: a, Phase: PhaseAccept, Pos: e.pos})
		return
	}
	tracer().Infof("accept")
	e.root = e.stack[1].node
	e.state = Accepted
	e.stack, e.input = nil, nil
}

func (e *Engine) reject(err *ParseError) {
	tracer().Infof("reject: %v", err)
	if tracer().GetTraceLevel() == tracing.LevelDebug {
		tracer().Debugf("stack = %s", e.dumpStack())
	}
	e.err = err
	e.state = Rejected
	e.stack, e.input = nil, nil
}

// dumpStack is a debugging helper, printing the stack bottom to top, as
// alternating states and symbols.
func (e *Engine) dumpStack() string {
	var b bytes.Buffer
	b.WriteString("[")
	for i, item := range e.stack {
		if i > 0 {
			b.WriteString(" ")
			b.WriteString(string(item.node.Symbol))
			b.WriteString(" ")
		}
		b.WriteString(fmt.Sprintf("%d", item.stateID))
	}
	b.WriteString("]")
	return b.String()
}
