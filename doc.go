// Package automata is a small in-memory toolkit for finite-state automata:
// building an immutable automaton from token sets, checking it against a
// fixed well-formedness rule catalog, and converting a deterministic
// automaton into an equivalent regular expression.
//
// What you get:
//   - fsa/      — the model: five token sets in, an immutable Automaton out,
//     with dense directed and undirected symbol-labeled adjacency
//   - validate/ — two ordered rule catalogs: an advisory pass (hard errors,
//     warnings, completeness) and a strict deterministic precondition pass
//   - kleene/   — Kleene's state-elimination construction, automaton → regexp
//   - fsaio/    — the thin ingestion collaborator: a five-field text record
//     parsed into token sets, plus result/report line rendering
//
// Why choose automata?
//
//   - Minimal API, clear naming, functional options throughout
//   - Results are values — errors and warnings form a closed, stable
//     enumeration that callers match on with errors.Is / Code
//   - Pure Go, no cgo; the only dependency is testify for the test suite
//
// Everything downstream of fsa.New operates on a read-only Automaton, so a
// built automaton may be validated and synthesized from concurrently.
//
//	go get github.com/katalvlaran/automata
package automata
