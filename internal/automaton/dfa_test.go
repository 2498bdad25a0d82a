package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"statemachine/internal/alphabet"
)

func TestDFAAccept(t *testing.T) {
	a := mustAlphabet(t, "abcd01")
	b := NewDFABuilder(a)
	initial := b.AddState(false, "")
	require.NoError(t, b.SetInitialState(initial))
	readA := b.AddState(true, "")
	readB := b.AddState(true, "")
	require.NoError(t, b.SetEdge(initial, 'a', readA))
	require.NoError(t, b.SetEdge(readA, 'b', readB))
	d, err := b.Build()
	require.NoError(t, err)

	assert.True(t, accepts(t, d, "ab"))
	assert.True(t, accepts(t, d, "a"))
	assert.True(t, accepts(t, d, "aaa"), "readA loops on a")
	assert.False(t, accepts(t, d, "c"))
	assert.False(t, accepts(t, d, ""))
}

func TestDFAEmptyWordFollowsInitialState(t *testing.T) {
	a := mustAlphabet(t, "ab")
	for _, accepting := range []bool{true, false} {
		b := NewDFABuilder(a)
		require.NoError(t, b.SetInitialState(b.AddState(accepting, "")))
		d, err := b.Build()
		require.NoError(t, err)
		assert.Equal(t, accepting, accepts(t, d, ""))
	}
}

func TestDFAAcceptUnknownSymbol(t *testing.T) {
	d := identifierDFA(t, idAlphabet(t))
	_, err := AcceptString(d, "aB")
	require.ErrorIs(t, err, alphabet.ErrUnknownSymbol)
}

func TestDFABuilderErrors(t *testing.T) {
	a := mustAlphabet(t, "ab")
	b := NewDFABuilder(a)

	_, err := b.Build()
	require.ErrorIs(t, err, ErrNoInitialState)

	s := b.AddState(false, "")
	require.ErrorIs(t, b.SetEdge(s, 'a', 7), ErrUnknownState)
	require.ErrorIs(t, b.SetEdge(-1, 'a', s), ErrUnknownState)
	require.ErrorIs(t, b.SetEdge(s, 'z', s), alphabet.ErrUnknownSymbol)
	_, err = b.AddStateWithDefault(true, 3, "")
	require.ErrorIs(t, err, ErrUnknownState)
	require.ErrorIs(t, b.SetInitialState(5), ErrUnknownState)

	require.NoError(t, b.SetInitialState(s))
	require.ErrorIs(t, b.SetInitialState(s), ErrInitialStateSet)
}

func TestDFABuildCopiesStates(t *testing.T) {
	a := mustAlphabet(t, "ab")
	b := NewDFABuilder(a)
	s0 := b.AddState(false, "")
	s1 := b.AddState(true, "")
	require.NoError(t, b.SetInitialState(s0))
	d, err := b.Build()
	require.NoError(t, err)

	require.NoError(t, b.SetEdge(s0, 'a', s1))
	assert.False(t, accepts(t, d, "a"), "built DFA must not see later builder edits")
	assert.Equal(t, 2, d.StateCount())
}

func TestDFANext(t *testing.T) {
	d := identifierDFA(t, idAlphabet(t))
	next, err := d.Next(d.Initial(), '7')
	require.NoError(t, err)
	assert.Equal(t, "2", d.State(next).Label)

	_, err = d.Next(42, 'a')
	require.ErrorIs(t, err, ErrUnknownState)
}

func TestDFAEdgesCoalesced(t *testing.T) {
	a := mustAlphabet(t, "ab01")
	b := NewDFABuilder(a)
	drain := b.AddState(false, "drain")
	ok := b.AddState(true, "ok")
	start, err := b.AddStateWithDefault(false, ok, "start")
	require.NoError(t, err)
	require.NoError(t, b.SetEdges(start, []rune("01"), drain))
	require.NoError(t, b.SetInitialState(start))
	d, err := b.Build()
	require.NoError(t, err)

	assert.Equal(t, "dfa", d.Kind())
	assert.Equal(t, 4, d.AlphabetSize())
	assert.Equal(t, StateInfo{ID: start, Label: "start"}, d.State(start))
	assert.Equal(t, []Edge{
		{To: ok, Symbols: []string{"a", "b"}},
		{To: drain, Symbols: []string{"0", "1"}},
	}, d.Edges(start))
	assert.Equal(t, []Edge{{To: drain, Symbols: []string{"a", "b", "0", "1"}}}, d.Edges(drain))
}

func TestIdentifierScenario(t *testing.T) {
	d := identifierDFA(t, idAlphabet(t))

	for _, w := range []string{"a", "a1", "ab", "_ab", "c_z", "__13", "e2e3", "id_3", letters} {
		assert.True(t, accepts(t, d, w), "should accept %q", w)
	}
	for _, w := range []string{"", "1", "12", "1_z", "8qz", "0", "9"} {
		assert.False(t, accepts(t, d, w), "should reject %q", w)
	}
}
