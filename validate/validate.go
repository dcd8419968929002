// Package validate runs the ordered well-formedness rule catalogs over an
// fsa.Automaton: an advisory catalog producing warnings and a completeness
// classification, and a strict catalog gating regular-expression synthesis.
package validate

import (
	"github.com/katalvlaran/automata/fsa"
)

// guard is one short-circuiting check: it returns the hard Error it found,
// or nil to let the next guard run. The catalogs below are ordered slices of
// guards — the first failing guard wins and nothing after it executes.
type guard func(a *fsa.Automaton) *Error

// advisoryCatalog is the validator-mode priority order.
var advisoryCatalog = []guard{
	checkDeclaredStates,
	checkConnected,
	checkDeclaredSymbols,
	checkInitialPresent,
}

// strictCatalog is the deterministic-precondition priority order used before
// Kleene synthesis.
var strictCatalog = []guard{
	checkInitialPresent,
	checkAcceptingPresent,
	checkDeclaredStatesStrict,
	checkDeclaredSymbols,
	checkConnectedFromInitial,
	checkDeterministic,
}

// Validate runs the advisory catalog over a.
//
// The first failing hard check short-circuits: no later checks run and no
// warnings are computed. When every hard check passes, the Result carries
// the warnings (fixed output order) and the completeness classification.
// Validate never mutates a; repeated calls yield identical results.
// Complexity: O(n² + t) for n states and t transitions.
func Validate(a *fsa.Automaton) (*Result, error) {
	// 1. Guard against nil input
	if a == nil {
		return nil, ErrAutomatonNil
	}

	// 2. Hard checks, in priority order, first failure wins
	for _, check := range advisoryCatalog {
		if e := check(a); e != nil {
			return &Result{Err: e}, nil
		}
	}

	// 3. Advisory findings, fixed output order
	res := &Result{Complete: isComplete(a)}
	if len(a.Accepting()) == 0 {
		res.Warnings = append(res.Warnings, Warning{Code: CodeNoAcceptingState})
	}
	if hasUnreachable(a) {
		res.Warnings = append(res.Warnings, Warning{Code: CodeUnreachableState})
	}
	if isNondeterministic(a) {
		res.Warnings = append(res.Warnings, Warning{Code: CodeNondeterministic})
	}

	return res, nil
}

// ValidateStrict runs the deterministic-precondition catalog over a and
// returns the first failing check as an error, or nil when a is a connected,
// fully-declared DFA with exactly one initial and at least one accepting
// state. Unlike the advisory catalog, transition endpoints are always
// scanned for undeclared states here.
func ValidateStrict(a *fsa.Automaton) error {
	if a == nil {
		return ErrAutomatonNil
	}
	for _, check := range strictCatalog {
		if e := check(a); e != nil {
			return e
		}
	}

	return nil
}

// checkDeclaredStates verifies that every declared initial and accepting
// state is a member of the state set. Under the strict endpoint build policy
// it also scans every transition endpoint.
func checkDeclaredStates(a *fsa.Automaton) *Error {
	for _, s := range a.Initial() {
		if !a.HasState(s) {
			return &Error{Code: CodeUndefinedState, Ident: s}
		}
	}
	for _, s := range a.Accepting() {
		if !a.HasState(s) {
			return &Error{Code: CodeUndefinedState, Ident: s}
		}
	}
	if a.StrictEndpoints() {
		return checkEndpoints(a)
	}

	return nil
}

// checkDeclaredStatesStrict is the strict-catalog variant: endpoints are
// scanned regardless of the build policy.
func checkDeclaredStatesStrict(a *fsa.Automaton) *Error {
	if e := checkDeclaredStates(a); e != nil {
		return e
	}

	return checkEndpoints(a)
}

// checkEndpoints scans transition sources and destinations for undeclared
// states, in declaration order.
func checkEndpoints(a *fsa.Automaton) *Error {
	for _, t := range a.Transitions() {
		if !a.HasState(t.From) {
			return &Error{Code: CodeUndefinedState, Ident: t.From}
		}
		if !a.HasState(t.To) {
			return &Error{Code: CodeUndefinedState, Ident: t.To}
		}
	}

	return nil
}

// checkConnected verifies the undirected graph forms a single component,
// walking from an arbitrary state (index 0).
func checkConnected(a *fsa.Automaton) *Error {
	if reachableCount(a, 0, true) != a.NumStates() {
		return &Error{Code: CodeDisjointStates}
	}

	return nil
}

// checkConnectedFromInitial is the strict-catalog variant: the walk starts
// at the (already verified) initial state.
func checkConnectedFromInitial(a *fsa.Automaton) *Error {
	start, _ := a.StateIndex(a.Initial()[0])
	if reachableCount(a, start, true) != a.NumStates() {
		return &Error{Code: CodeDisjointStates}
	}

	return nil
}

// checkDeclaredSymbols verifies every transition symbol is in the alphabet.
func checkDeclaredSymbols(a *fsa.Automaton) *Error {
	for _, t := range a.Transitions() {
		if !a.HasSymbol(t.Symbol) {
			return &Error{Code: CodeUndefinedSymbol, Ident: t.Symbol}
		}
	}

	return nil
}

// checkInitialPresent verifies at least one initial state was declared.
func checkInitialPresent(a *fsa.Automaton) *Error {
	if len(a.Initial()) == 0 {
		return &Error{Code: CodeNoInitialState}
	}

	return nil
}

// checkAcceptingPresent verifies at least one accepting state was declared.
func checkAcceptingPresent(a *fsa.Automaton) *Error {
	if len(a.Accepting()) == 0 {
		return &Error{Code: CodeNoAcceptingState}
	}

	return nil
}

// checkDeterministic reports nondeterminism as a hard error (strict catalog).
func checkDeterministic(a *fsa.Automaton) *Error {
	if isNondeterministic(a) {
		return &Error{Code: CodeNondeterministic}
	}

	return nil
}

// hasUnreachable reports whether some state is not reachable from the
// initial state along directed edges. Callers guarantee a declared initial
// state exists.
func hasUnreachable(a *fsa.Automaton) bool {
	start, _ := a.StateIndex(a.Initial()[0])

	return reachableCount(a, start, false) != a.NumStates()
}

// isNondeterministic reports whether any state has two outgoing edges
// sharing the same symbol.
func isNondeterministic(a *fsa.Automaton) bool {
	for i := 0; i < a.NumStates(); i++ {
		seen := make(map[string]struct{})
		for _, sym := range a.OutSymbols(i) {
			if _, dup := seen[sym]; dup {
				return true
			}
			seen[sym] = struct{}{}
		}
	}

	return false
}

// isComplete reports whether every state carries an outgoing edge for every
// distinct alphabet symbol.
func isComplete(a *fsa.Automaton) bool {
	for i := 0; i < a.NumStates(); i++ {
		distinct := make(map[string]struct{})
		for _, sym := range a.OutSymbols(i) {
			distinct[sym] = struct{}{}
		}
		if len(distinct) < a.AlphabetSize() {
			return false
		}
	}

	return true
}
