// Package validate checks an fsa.Automaton against two ordered
// well-formedness rule catalogs.
//
// What
//
//   - Validate(a) runs the advisory catalog: hard checks in fixed priority
//     order (undefined state → disjoint states → undefined symbol → no
//     initial state); the first failure short-circuits. On a clean pass the
//     Result carries warnings (no accepting state, unreachable state,
//     nondeterministic — fixed output order) and the complete/incomplete
//     classification.
//   - ValidateStrict(a) runs the deterministic-precondition catalog used
//     before Kleene synthesis: no initial state → no accepting state →
//     undefined state (including every transition endpoint) → undefined
//     symbol → disjoint states → nondeterministic. nil means a is a
//     connected, fully-declared DFA ready for synthesis.
//
// Why
//
//	Each catalog is a deliberate short-circuiting sequence of guards — an
//	ordered slice of predicate-plus-error-constructor pairs — so the
//	priority order is data, not control flow, and mutually exclusive by
//	construction.
//
// Determinism & idempotence
//
//	The automaton is read-only; both entry points are pure functions of it
//	and yield identical results on repeated calls. Reachability walks use an
//	explicit stack, so results never depend on recursion-stack limits, and
//	the visited set is independent of traversal order.
//
// Complexity (n = |states|, t = |transitions|)
//
//   - Time:   O(n² + t) per catalog (dense adjacency scans)
//   - Memory: O(n)
//
// Errors
//
//   - ErrAutomatonNil      if a nil automaton is passed.
//   - *Error               one hard finding, tagged by Code and rendered as
//     "<code>: <human-readable message>"; the Code set is closed, so
//     consumers match on kind rather than text.
package validate
