// Package kleene converts a validated deterministic automaton into an
// equivalent regular expression via Kleene's state-elimination construction.
package kleene

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/automata/fsa"
	"github.com/katalvlaran/automata/validate"
)

// Synthesize computes the regular expression recognized by a.
//
// The strict validation catalog runs first; on any failure Synthesize
// returns ("", that error) — never a partial expression. The construction
// itself builds an n×n table over n+1 rounds: round 0 holds direct-edge
// alternations (symbol-sorted for determinism), and round k+1 is derived
// entirely from a snapshot of round k via
//
//	(R[i][k])(R[k][k])*(R[k][j])|(R[i][j])
//
// with structural parenthesization, so no operator-precedence parsing is
// needed downstream. The answer is the alternation of the initial→accepting
// entries, each parenthesized. Synthesize follows the first declared initial
// state; build with fsa.WithSingleInitial to forbid several outright.
//
// Expression length can grow exponentially with n; that is inherent to the
// construction and no simplification is attempted.
// Complexity: O(n³) string constructions; the table is discarded on return.
func Synthesize(a *fsa.Automaton, opts ...Option) (string, error) {
	// 1. Guard against nil input
	if a == nil {
		return "", ErrAutomatonNil
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Deterministic preconditions: one initial, ≥1 accepting, connected,
	//    fully declared, deterministic
	if err := validate.ValidateStrict(a); err != nil {
		return "", err
	}

	// 4. Round 0: direct transitions
	n := a.NumStates()
	prev := initialTable(a, o)

	// 5. Rounds 1..n: allow one more intermediate state per round,
	//    always reading from the previous round's snapshot
	var next [][]string
	for k := 0; k < n; k++ {
		next = newTable(n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				next[i][j] = fmt.Sprintf("(%s)(%s)*(%s)%s(%s)",
					prev[i][k], prev[k][k], prev[k][j], Alternation, prev[i][j])
			}
		}
		prev = next
	}

	// 6. Union over accepting states, in declared order
	init, _ := a.StateIndex(a.Initial()[0])
	terms := make([]string, 0, len(a.Accepting()))
	for _, f := range a.Accepting() {
		fi, _ := a.StateIndex(f)
		terms = append(terms, "("+prev[init][fi]+")")
	}

	return strings.Join(terms, Alternation), nil
}

// initialTable fills round 0: entry (i,j) is the symbol-sorted alternation
// of direct i→j edge labels; diagonals always carry the empty-string
// alternative, absent off-diagonal edges the empty-language constant.
func initialTable(a *fsa.Automaton, o Options) [][]string {
	n := a.NumStates()
	table := newTable(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			labels := a.Edge(i, j)
			switch {
			case len(labels) > 0:
				sort.Strings(labels)
				table[i][j] = strings.Join(labels, Alternation)
				if i == j {
					table[i][j] += Alternation + o.Epsilon
				}
			case i == j:
				table[i][j] = o.Epsilon
			default:
				table[i][j] = o.EmptySet
			}
		}
	}

	return table
}

// newTable allocates an n×n string matrix.
func newTable(n int) [][]string {
	table := make([][]string, n)
	for i := range table {
		table[i] = make([]string, n)
	}

	return table
}
