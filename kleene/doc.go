// Package kleene implements Kleene's construction (state elimination):
// given a deterministic, well-formed fsa.Automaton, it computes a regular
// expression recognizing exactly the automaton's language.
//
// What
//
//   - Synthesize(a, opts...) re-runs validate.ValidateStrict and, on a clean
//     pass, builds the classic R⁰..Rⁿ table: Rᵏ[i][j] is the expression for
//     every i→j path routed through intermediate states with index < k.
//   - Round 0 entries are symbol-sorted direct-edge alternations; diagonal
//     entries always include the empty-string alternative ("eps" by
//     default), absent edges the empty-language constant ("{}" by default).
//   - The final expression is the alternation of Rⁿ[initial][f] over the
//     accepting states f, each term parenthesized; a single accepting state
//     yields one parenthesized term with no dangling operator.
//
// Determinism
//
//	Symbol sorting in round 0, declared accepting-state order in the final
//	union, and snapshot-based rounds make the output byte-for-byte
//	reproducible. Each round reads only the previous round's table, so a
//	parallel row computation could never observe a partially updated cell.
//
// Grammar
//
//	Parenthesization is structural: every concatenation operand and every
//	union branch of the closed form is wrapped, so alternation, concatenation
//	and star bind unambiguously without an operator-precedence parser.
//
// Complexity (n = |states|)
//
//   - Time:   O(n³) string constructions; expression length may grow
//     exponentially with n — inherent to the construction, not a defect.
//   - Memory: two n×n tables, discarded on return.
//
// Errors
//
//   - ErrAutomatonNil              if a is nil.
//   - *validate.Error              the first failing strict-catalog check;
//     the returned expression is then empty, never partial.
package kleene
