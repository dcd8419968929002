package fsaio_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/automata/fsa"
	"github.com/katalvlaran/automata/fsaio"
	"github.com/katalvlaran/automata/validate"
)

// record is a well-formed five-field input.
func record() []string {
	return []string{
		"states=[q0,q1]",
		"alpha=[a,b]",
		"initial=[q0]",
		"accepting=[q1]",
		"trans=[q0>a>q1,q1>b>q1]",
	}
}

func TestParseRecord_WellFormed(t *testing.T) {
	def, err := fsaio.ParseRecord(record())
	require.NoError(t, err)
	assert.Equal(t, fsa.Def{
		States:      []string{"q0", "q1"},
		Alphabet:    []string{"a", "b"},
		Initial:     []string{"q0"},
		Accepting:   []string{"q1"},
		Transitions: []string{"q0>a>q1", "q1>b>q1"},
	}, def)
}

func TestParseRecord_BlankLinesIgnored(t *testing.T) {
	lines := []string{"", "  "}
	for _, l := range record() {
		lines = append(lines, l, "")
	}
	def, err := fsaio.ParseRecord(lines)
	require.NoError(t, err)
	assert.Equal(t, []string{"q0", "q1"}, def.States)
}

func TestParseRecord_EmptyBodiesYieldEmptySets(t *testing.T) {
	lines := record()
	lines[2] = "initial=[]"
	lines[3] = "accepting=[]"
	lines[4] = "trans=[]"
	def, err := fsaio.ParseRecord(lines)
	require.NoError(t, err)
	assert.Empty(t, def.Initial)
	assert.Empty(t, def.Accepting)
	assert.Empty(t, def.Transitions)
}

func TestParseRecord_MissingField(t *testing.T) {
	_, err := fsaio.ParseRecord(record()[:4])
	assert.ErrorIs(t, err, fsaio.ErrMalformedInput)
}

func TestParseRecord_WrongOrder(t *testing.T) {
	lines := record()
	lines[0], lines[1] = lines[1], lines[0]
	_, err := fsaio.ParseRecord(lines)
	assert.ErrorIs(t, err, fsaio.ErrMalformedInput)
}

func TestParseRecord_MissingClosingBracket(t *testing.T) {
	lines := record()
	lines[4] = "trans=[q0>a>q1"
	_, err := fsaio.ParseRecord(lines)
	assert.ErrorIs(t, err, fsaio.ErrMalformedInput)
}

func TestParseRecord_UnknownFieldName(t *testing.T) {
	lines := record()
	lines[2] = "start=[q0]"
	_, err := fsaio.ParseRecord(lines)
	assert.ErrorIs(t, err, fsaio.ErrMalformedInput)
}

func TestMalformedTriple_IsParseFailureNotValidation(t *testing.T) {
	// A one-separator transition survives record parsing (it is a list item)
	// but fails automaton construction — still the malformed class, never a
	// validation error.
	lines := record()
	lines[4] = "trans=[q0>a]"
	def, err := fsaio.ParseRecord(lines)
	require.NoError(t, err)

	_, err = fsa.New(def)
	assert.ErrorIs(t, err, fsa.ErrMalformedTransition)
}

func TestFormatReport_CompleteWithWarnings(t *testing.T) {
	res := &validate.Result{
		Complete: false,
		Warnings: []validate.Warning{
			{Code: validate.CodeNoAcceptingState},
			{Code: validate.CodeNondeterministic},
		},
	}
	assert.Equal(t, []string{
		"FSA is incomplete",
		"Warning:",
		"no accepting state: accepting state is not defined",
		"nondeterministic: FSA is nondeterministic",
	}, fsaio.FormatReport(res))
}

func TestFormatReport_CleanComplete(t *testing.T) {
	assert.Equal(t, []string{"FSA is complete"}, fsaio.FormatReport(&validate.Result{Complete: true}))
	assert.Nil(t, fsaio.FormatReport(nil))
}

func TestFormatReport_HardError(t *testing.T) {
	res := &validate.Result{Err: &validate.Error{Code: validate.CodeDisjointStates}}
	assert.Equal(t, []string{
		"Error:",
		"disjoint states: some states are disjoint",
	}, fsaio.FormatReport(res))
}

func TestFormatError(t *testing.T) {
	_, err := fsaio.ParseRecord(nil)
	lines := fsaio.FormatError(err)
	require.Len(t, lines, 2)
	assert.Equal(t, "Error:", lines[0])
	assert.Contains(t, lines[1], "input record is malformed")

	assert.Nil(t, fsaio.FormatError(nil))
}
