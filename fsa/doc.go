// Package fsa builds the immutable finite-state automaton model used by the
// validate and kleene packages.
//
// What
//
//   - New(def, opts...) turns five token sets (states, alphabet, initial,
//     accepting, raw transition triples) into an *Automaton.
//   - States receive dense integer indices in declaration order; both the
//     directed and the mirrored undirected adjacency are stored as
//     index-keyed [][][]string and frozen at build time.
//   - Transition tokens have the literal shape "SRC>SYMBOL>DST"; anything
//     that does not split into exactly three fields is ErrMalformedTransition,
//     a parse failure distinct from every validation error.
//
// Policies
//
//	Two endpoint policies are deliberately kept apart, not merged:
//	  - lenient (default): transitions touching undeclared states are
//	    silently dropped from the graphs and their endpoints are never
//	    reported;
//	  - WithStrictEndpoints: the same transitions still form no edges, but
//	    the validators scan them and report an undefined-state error.
//	WithSingleInitial additionally rejects multi-initial records outright.
//
// Determinism
//
//	Declaration order is authoritative: indices, accessor slices, and
//	Successors/Neighbors enumeration are all reproducible across runs.
//
// Complexity (n = |states|, t = |transitions|)
//
//   - Time:   O(n² + t) for construction
//   - Memory: O(n²) for the two dense adjacency structures
//
// Errors
//
//   - ErrEmptyStates, ErrEmptyAlphabet    — empty core sets
//   - ErrBadStateToken, ErrBadSymbolToken — token shape violations
//   - ErrDuplicateState                   — repeated state identifier
//   - ErrMalformedTransition              — triple does not split in three
//   - ErrMultipleInitial                  — >1 initial under WithSingleInitial
//
// The Automaton is read-only after New; concurrent readers need no locking.
package fsa
