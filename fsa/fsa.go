// Package fsa implements the model builder: it turns five token sets into
// an immutable Automaton with a dense state index and two derived,
// symbol-labeled adjacency structures (directed and undirected).
package fsa

import (
	"fmt"
	"strings"
)

// Automaton is the read-only finite-state automaton model.
//
// States are mapped once, at build time, to dense integer indices in
// declaration order; both adjacency structures are keyed by those indices
// and are never mutated after New returns. The zero value is not usable;
// construct via New.
type Automaton struct {
	states    []string     // declared states, declaration order
	alphabet  []string     // declared symbols, declaration order
	initial   []string     // declared initial state(s)
	accepting []string     // declared accepting state(s)
	trans     []Transition // every parsed triple, including dropped-edge ones

	index   map[string]int      // state identifier → dense index
	symbols map[string]struct{} // alphabet membership

	directed   [][][]string // directed[i][j] = symbols labeling edge i→j
	undirected [][][]string // mirrored copy of directed

	strictEndpoints bool // endpoint policy recorded for the validators
}

// New constructs an Automaton from def.
//
// Construction enforces only the shape of the record itself: non-empty
// states and alphabet, alphanumeric tokens (symbols may also contain '_'),
// unique state identifiers, and three-field transition triples. Semantic
// inconsistency between individually well-formed sets is the validate
// package's job and never fails here.
//
// Transitions whose endpoints are not declared states never become graph
// edges; under the default lenient policy they are otherwise ignored, while
// WithStrictEndpoints leaves them for the validators to report.
// Complexity: O(|states|² + |trans|) for the dense adjacency allocation.
func New(def Def, opts ...Option) (*Automaton, error) {
	// 1. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 2. Reject empty core sets
	if len(def.States) == 0 {
		return nil, ErrEmptyStates
	}
	if len(def.Alphabet) == 0 {
		return nil, ErrEmptyAlphabet
	}

	// 3. Token shape: states strictly alphanumeric, symbols also allow '_'
	for _, s := range def.States {
		if !isAlnum(s) {
			return nil, fmt.Errorf("%w: %q", ErrBadStateToken, s)
		}
	}
	for _, a := range def.Alphabet {
		if !isAlnum(strings.ReplaceAll(a, "_", "")) {
			return nil, fmt.Errorf("%w: %q", ErrBadSymbolToken, a)
		}
	}

	// 4. Initial-state cardinality policy
	if o.SingleInitial && len(def.Initial) > 1 {
		return nil, ErrMultipleInitial
	}

	// 5. Dense state index, rejecting duplicates
	n := len(def.States)
	index := make(map[string]int, n)
	for i, s := range def.States {
		if _, dup := index[s]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateState, s)
		}
		index[s] = i
	}

	// 6. Alphabet membership set (duplicates collapse harmlessly)
	symbols := make(map[string]struct{}, len(def.Alphabet))
	for _, a := range def.Alphabet {
		symbols[a] = struct{}{}
	}

	// 7. Parse every transition triple; a bad split is a hard parse failure
	trans := make([]Transition, 0, len(def.Transitions))
	for _, raw := range def.Transitions {
		fields := strings.Split(raw, TransitionDelimiter)
		if len(fields) != 3 {
			return nil, fmt.Errorf("%w: %q", ErrMalformedTransition, raw)
		}
		trans = append(trans, Transition{From: fields[0], Symbol: fields[1], To: fields[2]})
	}

	a := &Automaton{
		states:          append([]string(nil), def.States...),
		alphabet:        append([]string(nil), def.Alphabet...),
		initial:         append([]string(nil), def.Initial...),
		accepting:       append([]string(nil), def.Accepting...),
		trans:           trans,
		index:           index,
		symbols:         symbols,
		strictEndpoints: o.StrictEndpoints,
	}

	// 8. Derive both graphs once; they are frozen afterwards
	a.buildGraphs()

	return a, nil
}

// buildGraphs fills the dense directed and undirected adjacency structures.
// Transitions with undeclared endpoints are skipped — they have no dense
// index to live at — regardless of the endpoint policy.
func (a *Automaton) buildGraphs() {
	n := len(a.states)
	a.directed = make([][][]string, n)
	a.undirected = make([][][]string, n)
	for i := 0; i < n; i++ {
		a.directed[i] = make([][]string, n)
		a.undirected[i] = make([][]string, n)
	}

	for _, t := range a.trans {
		src, okSrc := a.index[t.From]
		dst, okDst := a.index[t.To]
		if !okSrc || !okDst {
			continue
		}
		a.directed[src][dst] = append(a.directed[src][dst], t.Symbol)
		a.undirected[src][dst] = append(a.undirected[src][dst], t.Symbol)
		a.undirected[dst][src] = append(a.undirected[dst][src], t.Symbol)
	}
}

// isAlnum reports whether s is non-empty and contains only latin letters
// and digits.
func isAlnum(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		default:
			return false
		}
	}

	return true
}
