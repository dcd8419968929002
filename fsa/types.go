// Package fsa defines the Def input record, the Transition triple, build
// Options, and the sentinel errors shared by the model builder.
package fsa

import "errors"

// TransitionDelimiter separates the three fields of a transition token,
// as in "q0>a>q1".
const TransitionDelimiter = ">"

// Sentinel errors for automaton construction. All of them signal that the
// input record itself is broken (the malformed-input class); semantic
// inconsistencies between well-formed sets are left to the validate package.
var (
	// ErrEmptyStates indicates the states set is empty.
	ErrEmptyStates = errors.New("fsa: states set is empty")

	// ErrEmptyAlphabet indicates the alphabet set is empty.
	ErrEmptyAlphabet = errors.New("fsa: alphabet set is empty")

	// ErrBadStateToken indicates a state token containing a character
	// outside [A-Za-z0-9].
	ErrBadStateToken = errors.New("fsa: state token is not alphanumeric")

	// ErrBadSymbolToken indicates an alphabet token containing a character
	// outside [A-Za-z0-9_].
	ErrBadSymbolToken = errors.New("fsa: symbol token is not alphanumeric")

	// ErrDuplicateState indicates the same state identifier was declared twice.
	ErrDuplicateState = errors.New("fsa: duplicate state identifier")

	// ErrMalformedTransition indicates a transition token that does not split
	// into exactly three fields on TransitionDelimiter.
	ErrMalformedTransition = errors.New("fsa: malformed transition triple")

	// ErrMultipleInitial indicates more than one initial state was declared
	// while WithSingleInitial is in effect.
	ErrMultipleInitial = errors.New("fsa: several initial states are not allowed")
)

// Def carries the five raw token sets handed over by the ingestion layer.
// Order and duplicates are preserved exactly as received; New decides what
// is acceptable.
type Def struct {
	// States lists the declared state identifiers.
	States []string

	// Alphabet lists the declared input symbols.
	Alphabet []string

	// Initial lists the declared initial state(s).
	Initial []string

	// Accepting lists the declared accepting state(s).
	Accepting []string

	// Transitions lists raw "SRC>SYMBOL>DST" triples.
	Transitions []string
}

// Transition is one parsed (source, symbol, destination) triple.
type Transition struct {
	// From is the source state identifier.
	From string

	// Symbol is the label consumed on this transition.
	Symbol string

	// To is the destination state identifier.
	To string
}

// Option configures optional behavior of New.
type Option func(*Options)

// Options holds configurable parameters for automaton construction.
type Options struct {
	// StrictEndpoints, if true, keeps transitions whose endpoints are not
	// declared states visible to the strict validator (which reports them as
	// an undefined-state error). When false (the default, lenient policy),
	// such transitions still never reach the graphs and the advisory
	// validator ignores their endpoints entirely.
	StrictEndpoints bool

	// SingleInitial, if true, rejects a Def declaring more than one initial
	// state with ErrMultipleInitial at build time.
	SingleInitial bool
}

// DefaultOptions returns the lenient build policy: undeclared transition
// endpoints are tolerated and any number of initial states is accepted.
func DefaultOptions() Options {
	return Options{
		StrictEndpoints: false,
		SingleInitial:   false,
	}
}

// WithStrictEndpoints returns an Option that marks the automaton for strict
// endpoint checking: the validators will scan every transition endpoint for
// undeclared states instead of silently skipping them.
func WithStrictEndpoints() Option {
	return func(o *Options) {
		o.StrictEndpoints = true
	}
}

// WithSingleInitial returns an Option that forbids multiple initial states
// outright, failing construction with ErrMultipleInitial.
func WithSingleInitial() Option {
	return func(o *Options) {
		o.SingleInitial = true
	}
}
