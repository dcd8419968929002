package fsa_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/automata/fsa"
)

// defTwoState is a minimal well-formed record: q0 --a--> q1, q1 --b--> q1.
func defTwoState() fsa.Def {
	return fsa.Def{
		States:      []string{"q0", "q1"},
		Alphabet:    []string{"a", "b"},
		Initial:     []string{"q0"},
		Accepting:   []string{"q1"},
		Transitions: []string{"q0>a>q1", "q1>b>q1"},
	}
}

func TestNew_EmptyStates(t *testing.T) {
	def := defTwoState()
	def.States = nil
	a, err := fsa.New(def)
	assert.Nil(t, a)
	assert.ErrorIs(t, err, fsa.ErrEmptyStates)
}

func TestNew_EmptyAlphabet(t *testing.T) {
	def := defTwoState()
	def.Alphabet = nil
	a, err := fsa.New(def)
	assert.Nil(t, a)
	assert.ErrorIs(t, err, fsa.ErrEmptyAlphabet)
}

func TestNew_BadStateToken(t *testing.T) {
	def := defTwoState()
	def.States = []string{"q0", "q-1"}
	_, err := fsa.New(def)
	assert.ErrorIs(t, err, fsa.ErrBadStateToken)
	assert.Contains(t, err.Error(), "q-1")
}

func TestNew_SymbolTokenAllowsUnderscore(t *testing.T) {
	def := defTwoState()
	def.Alphabet = []string{"push_left", "b"}
	_, err := fsa.New(def)
	assert.NoError(t, err)

	def.Alphabet = []string{"push left"}
	_, err = fsa.New(def)
	assert.ErrorIs(t, err, fsa.ErrBadSymbolToken)
}

func TestNew_DuplicateState(t *testing.T) {
	def := defTwoState()
	def.States = []string{"q0", "q1", "q0"}
	_, err := fsa.New(def)
	assert.ErrorIs(t, err, fsa.ErrDuplicateState)
}

func TestNew_MalformedTransition(t *testing.T) {
	def := defTwoState()
	def.Transitions = []string{"q0>a"} // only one delimiter
	_, err := fsa.New(def)
	assert.ErrorIs(t, err, fsa.ErrMalformedTransition)

	def.Transitions = []string{"q0>a>q1>q0"} // one too many
	_, err = fsa.New(def)
	assert.ErrorIs(t, err, fsa.ErrMalformedTransition)
}

func TestNew_EmptyTripleFieldIsNotMalformed(t *testing.T) {
	// "q0>>q1" still splits into three fields; the empty symbol is a
	// validation concern (undefined symbol), never a parse failure.
	def := defTwoState()
	def.Transitions = []string{"q0>>q1"}
	a, err := fsa.New(def)
	require.NoError(t, err)
	assert.Equal(t, []fsa.Transition{{From: "q0", Symbol: "", To: "q1"}}, a.Transitions())
}

func TestNew_SingleInitialPolicy(t *testing.T) {
	def := defTwoState()
	def.Initial = []string{"q0", "q1"}

	// Default policy tolerates several initial states.
	a, err := fsa.New(def)
	require.NoError(t, err)
	assert.Equal(t, []string{"q0", "q1"}, a.Initial())

	// Strict policy rejects them at build time.
	_, err = fsa.New(def, fsa.WithSingleInitial())
	assert.ErrorIs(t, err, fsa.ErrMultipleInitial)
}

func TestNew_IndexFollowsDeclarationOrder(t *testing.T) {
	a, err := fsa.New(defTwoState())
	require.NoError(t, err)

	i, ok := a.StateIndex("q0")
	assert.True(t, ok)
	assert.Equal(t, 0, i)
	j, ok := a.StateIndex("q1")
	assert.True(t, ok)
	assert.Equal(t, 1, j)
	assert.Equal(t, "q1", a.StateAt(1))
	_, ok = a.StateIndex("q9")
	assert.False(t, ok)
}

func TestGraphs_DirectedAndMirrored(t *testing.T) {
	a, err := fsa.New(defTwoState())
	require.NoError(t, err)

	assert.Equal(t, []string{"a"}, a.Edge(0, 1))
	assert.Nil(t, a.Edge(1, 0), "directed edge must not be mirrored")
	assert.Equal(t, []string{"b"}, a.Edge(1, 1))

	assert.Equal(t, []int{1}, a.Successors(0))
	assert.Equal(t, []int{1}, a.Successors(1))
	assert.Equal(t, []int{1}, a.Neighbors(0))
	assert.Equal(t, []int{0, 1}, a.Neighbors(1), "undirected view mirrors q0→q1")
}

func TestGraphs_UndeclaredEndpointNeverBecomesEdge(t *testing.T) {
	def := defTwoState()
	def.Transitions = append(def.Transitions, "q0>a>ghost")

	for _, opts := range [][]fsa.Option{nil, {fsa.WithStrictEndpoints()}} {
		a, err := fsa.New(def, opts...)
		require.NoError(t, err)
		assert.Equal(t, []int{1}, a.Successors(0))
		// The raw triple stays visible either way.
		assert.Len(t, a.Transitions(), 3)
	}
}

func TestStrictEndpoints_FlagRecorded(t *testing.T) {
	a, err := fsa.New(defTwoState())
	require.NoError(t, err)
	assert.False(t, a.StrictEndpoints())

	a, err = fsa.New(defTwoState(), fsa.WithStrictEndpoints())
	require.NoError(t, err)
	assert.True(t, a.StrictEndpoints())
}

func TestAccessors_ReturnCopies(t *testing.T) {
	a, err := fsa.New(defTwoState())
	require.NoError(t, err)

	states := a.States()
	states[0] = "mutated"
	assert.Equal(t, []string{"q0", "q1"}, a.States())

	edge := a.Edge(0, 1)
	edge[0] = "mutated"
	assert.Equal(t, []string{"a"}, a.Edge(0, 1))
}

func TestOutSymbols_WithMultiplicity(t *testing.T) {
	def := defTwoState()
	def.Transitions = []string{"q0>a>q0", "q0>a>q1", "q0>b>q1"}
	a, err := fsa.New(def)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "a", "b"}, a.OutSymbols(0))
	assert.Empty(t, a.OutSymbols(1))
}
