package slr

import (
	"errors"
	"fmt"

	"github.com/npillmayer/shiftreduce/lr"
)

// Phase tells at which point of the automaton's loop a parse has been rejected.
type Phase int

// A parse may be rejected when looking up an action for the current input
// symbol, when looking up a goto entry after a reduce, or when accepting with
// more than one symbol left on the stack.
const (
	PhaseAction Phase = iota
	PhaseGoto
	PhaseAccept
)

func (p Phase) String() string {
	switch p {
	case PhaseAction:
		return "action"
	case PhaseGoto:
		return "goto"
	case PhaseAccept:
		return "accept"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// Errors a *ParseError wraps, one per phase.
var (
	ErrUndefinedAction  = errors.New("no action defined")
	ErrUndefinedGoto    = errors.New("no goto defined")
	ErrUnexpectedAccept = errors.New("accept with incomplete parse stack")
)

// ParseError is the diagnostic for a rejected input. It identifies the table state
// and the symbol for which no table entry has been found:
//
//   - PhaseAction: the state on top of the stack and the current input symbol
//
//   - PhaseGoto: the state exposed by a reduce and the LHS of the rule reduced
//
// Pos is the position of the current input symbol, counting from 0.
type ParseError struct {
	State  lr.State
	Symbol lr.Symbol
	Phase  Phase
	Pos    uint64
}

func (e *ParseError) Error() string {
	switch e.Phase {
	case PhaseGoto:
		return fmt.Sprintf("Syntax Error: no goto for %s in state %d (input position %d)",
			e.Symbol, e.State, e.Pos)
	case PhaseAccept:
		return fmt.Sprintf("Syntax Error: accept in state %d with incomplete parse stack", e.State)
	}
	return fmt.Sprintf("Syntax Error: no action for symbol '%s' in state %d (input position %d)",
		e.Symbol, e.State, e.Pos)
}

// Unwrap returns ErrUndefinedAction, ErrUndefinedGoto or ErrUnexpectedAccept.
func (e *ParseError) Unwrap() error {
	switch e.Phase {
	case PhaseGoto:
		return ErrUndefinedGoto
	case PhaseAccept:
		return ErrUnexpectedAccept
	}
	return ErrUndefinedAction
}
