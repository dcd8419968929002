// Package validate defines the closed error/warning code enumeration, the
// Error and Warning values, the Result type, and the package sentinels.
package validate

import (
	"errors"
	"fmt"
)

// ErrAutomatonNil is returned when a nil *fsa.Automaton is passed to
// Validate or ValidateStrict.
var ErrAutomatonNil = errors.New("validate: automaton is nil")

// Code identifies one well-formedness finding. The set is closed: downstream
// consumers match on Code, never on message text.
type Code uint8

const (
	// CodeUndefinedState — a referenced state is not in the declared set.
	CodeUndefinedState Code = iota

	// CodeDisjointStates — the undirected graph has more than one component.
	CodeDisjointStates

	// CodeUndefinedSymbol — a transition symbol is not in the alphabet.
	CodeUndefinedSymbol

	// CodeNoInitialState — no initial state was declared.
	CodeNoInitialState

	// CodeNoAcceptingState — no accepting state was declared.
	CodeNoAcceptingState

	// CodeUnreachableState — some state cannot be reached from the initial
	// state along directed edges.
	CodeUnreachableState

	// CodeNondeterministic — some state has two outgoing edges sharing a symbol.
	CodeNondeterministic
)

// codeNames are the stable identifiers of the enumeration.
var codeNames = [...]string{
	CodeUndefinedState:   "undefined state",
	CodeDisjointStates:   "disjoint states",
	CodeUndefinedSymbol:  "undefined symbol",
	CodeNoInitialState:   "no initial state",
	CodeNoAcceptingState: "no accepting state",
	CodeUnreachableState: "unreachable state",
	CodeNondeterministic: "nondeterministic",
}

// String returns the stable identifier of c.
func (c Code) String() string {
	if int(c) < len(codeNames) {
		return codeNames[c]
	}

	return fmt.Sprintf("code(%d)", uint8(c))
}

// message renders the human-readable part of a finding; ident names the
// offending state or symbol where applicable.
func message(c Code, ident string) string {
	switch c {
	case CodeUndefinedState:
		return fmt.Sprintf("a state '%s' is not in the set of states", ident)
	case CodeDisjointStates:
		return "some states are disjoint"
	case CodeUndefinedSymbol:
		return fmt.Sprintf("a transition '%s' is not represented in the alphabet", ident)
	case CodeNoInitialState:
		return "initial state is not defined"
	case CodeNoAcceptingState:
		return "accepting state is not defined"
	case CodeUnreachableState:
		return "some states are not reachable from the initial state"
	case CodeNondeterministic:
		return "FSA is nondeterministic"
	default:
		return "unknown finding"
	}
}

// Error is one hard validation finding. It implements error; the rendered
// form is "<code>: <human-readable message>".
type Error struct {
	// Code tags the finding kind.
	Code Code

	// Ident names the offending state or symbol, when applicable.
	Ident string
}

// Error renders the finding as a single stable line.
func (e *Error) Error() string {
	return e.Code.String() + ": " + message(e.Code, e.Ident)
}

// Warning is one advisory finding. Several warnings may co-occur; they are
// reported only when no hard error exists.
type Warning struct {
	// Code tags the finding kind.
	Code Code
}

// String renders the warning as a single stable line.
func (w Warning) String() string {
	return w.Code.String() + ": " + message(w.Code, "")
}

// Result is the outcome of the advisory catalog: either a single hard Error,
// or zero or more Warnings plus the completeness classification.
type Result struct {
	// Err is the first failing hard check, or nil when all passed.
	Err *Error

	// Warnings lists advisory findings in fixed output order:
	// no accepting state, unreachable state, nondeterministic.
	Warnings []Warning

	// Complete reports whether every state carries an outgoing edge for
	// every alphabet symbol. Meaningful only when Err is nil.
	Complete bool
}

// OK reports whether no hard error was found.
func (r *Result) OK() bool { return r.Err == nil }
