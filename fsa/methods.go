package fsa

// NumStates returns the number of declared states.
func (a *Automaton) NumStates() int { return len(a.states) }

// States returns a copy of the declared states in declaration order.
func (a *Automaton) States() []string { return append([]string(nil), a.states...) }

// Alphabet returns a copy of the declared symbols in declaration order.
func (a *Automaton) Alphabet() []string { return append([]string(nil), a.alphabet...) }

// Initial returns a copy of the declared initial state(s).
func (a *Automaton) Initial() []string { return append([]string(nil), a.initial...) }

// Accepting returns a copy of the declared accepting state(s).
func (a *Automaton) Accepting() []string { return append([]string(nil), a.accepting...) }

// Transitions returns a copy of every parsed transition triple, including
// triples whose endpoints never became graph edges.
func (a *Automaton) Transitions() []Transition {
	return append([]Transition(nil), a.trans...)
}

// AlphabetSize returns the number of distinct declared symbols.
func (a *Automaton) AlphabetSize() int { return len(a.symbols) }

// HasState reports whether id is a declared state.
func (a *Automaton) HasState(id string) bool {
	_, ok := a.index[id]
	return ok
}

// HasSymbol reports whether sym is a declared alphabet symbol.
func (a *Automaton) HasSymbol(sym string) bool {
	_, ok := a.symbols[sym]
	return ok
}

// StateIndex returns the dense index assigned to id at build time,
// and whether id is declared.
func (a *Automaton) StateIndex(id string) (int, bool) {
	i, ok := a.index[id]
	return i, ok
}

// StateAt returns the state identifier assigned to dense index i.
// It panics if i is out of range, mirroring slice indexing.
func (a *Automaton) StateAt(i int) string { return a.states[i] }

// StrictEndpoints reports whether the automaton was built under the strict
// endpoint policy (WithStrictEndpoints).
func (a *Automaton) StrictEndpoints() bool { return a.strictEndpoints }

// Edge returns a copy of the symbols labeling the directed edge i→j,
// or nil when no such edge exists or an index is out of range.
func (a *Automaton) Edge(i, j int) []string {
	if i < 0 || j < 0 || i >= len(a.states) || j >= len(a.states) {
		return nil
	}
	if len(a.directed[i][j]) == 0 {
		return nil
	}

	return append([]string(nil), a.directed[i][j]...)
}

// Successors returns the dense indices reachable from i by one directed edge,
// in index order.
func (a *Automaton) Successors(i int) []int {
	return a.adjacent(a.directed, i)
}

// Neighbors returns the dense indices adjacent to i in the undirected view,
// in index order.
func (a *Automaton) Neighbors(i int) []int {
	return a.adjacent(a.undirected, i)
}

// OutSymbols returns every symbol labeling an outgoing edge of i, with
// multiplicity, in destination-index order. Useful for determinism and
// completeness checks.
func (a *Automaton) OutSymbols(i int) []string {
	if i < 0 || i >= len(a.states) {
		return nil
	}
	var out []string
	for j := range a.directed[i] {
		out = append(out, a.directed[i][j]...)
	}

	return out
}

// adjacent collects the non-empty row entries of graph at row i.
func (a *Automaton) adjacent(graph [][][]string, i int) []int {
	if i < 0 || i >= len(a.states) {
		return nil
	}
	out := make([]int, 0, len(a.states))
	for j := range graph[i] {
		if len(graph[i][j]) > 0 {
			out = append(out, j)
		}
	}

	return out
}
