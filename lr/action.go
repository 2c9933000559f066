package lr

import "fmt"

// State is a parser state, as assigned by a table generator. States are opaque
// to the parser, apart from being used as row keys for the parse table.
type State int

// ActionKind tags the variants of an Action.
type ActionKind uint8

// Kinds of table entries. The zero value is the error (i.e., undefined) action.
const (
	ErrorAction  ActionKind = iota // no entry
	ShiftAction                    // consume input and go to a target state
	ReduceAction                   // reduce by a grammar rule
	AcceptAction                   // input has been recognized
	GotoAction                     // state transition after a reduce, keyed by a non-terminal
)

func (k ActionKind) String() string {
	switch k {
	case ErrorAction:
		return "error"
	case ShiftAction:
		return "shift"
	case ReduceAction:
		return "reduce"
	case AcceptAction:
		return "accept"
	case GotoAction:
		return "goto"
	}
	return fmt.Sprintf("ActionKind(%d)", uint8(k))
}

// Action is an entry of a parse table. Create actions with Shift, Reduce,
// Accept or Goto. The zero value of Action is the error action.
type Action struct {
	kind ActionKind
	arg  int // target state or rule number
}

// Shift creates a shift action with a target state.
func Shift(target State) Action {
	return Action{kind: ShiftAction, arg: int(target)}
}

// Reduce creates a reduce action for rule number rule.
func Reduce(rule int) Action {
	return Action{kind: ReduceAction, arg: rule}
}

// Accept creates an accept action.
func Accept() Action {
	return Action{kind: AcceptAction}
}

// Goto creates a goto entry with a target state.
func Goto(target State) Action {
	return Action{kind: GotoAction, arg: int(target)}
}

// Kind returns the variant tag of an action.
func (a Action) Kind() ActionKind {
	return a.kind
}

// IsError is true for undefined table entries.
func (a Action) IsError() bool {
	return a.kind == ErrorAction
}

// Target returns the target state of a shift or goto action, or -1.
func (a Action) Target() State {
	if a.kind == ShiftAction || a.kind == GotoAction {
		return State(a.arg)
	}
	return -1
}

// Rule returns the rule number of a reduce action, or -1.
func (a Action) Rule() int {
	if a.kind == ReduceAction {
		return a.arg
	}
	return -1
}

// String returns the conventional table notation: s4, r3, acc, or a bare
// state number for goto entries.
func (a Action) String() string {
	switch a.kind {
	case ShiftAction:
		return fmt.Sprintf("s%d", a.arg)
	case ReduceAction:
		return fmt.Sprintf("r%d", a.arg)
	case AcceptAction:
		return "acc"
	case GotoAction:
		return fmt.Sprintf("%d", a.arg)
	}
	return "<none>"
}

// --- Encoding for sparse matrices -----------------------------------------

// Actions are stored in a sparse int32 matrix: the lower 3 bits carry the kind,
// the remaining bits the argument.
const kindBits = 3

func (a Action) encode() int32 {
	return int32(a.arg)<<kindBits | int32(a.kind)
}

func decodeAction(v int32) Action {
	return Action{
		kind: ActionKind(v & (1<<kindBits - 1)),
		arg:  int(v >> kindBits),
	}
}

// maxActionArg is the largest state or rule number an action may carry.
const maxActionArg = 1<<(31-kindBits) - 1
