package automaton

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvert(t *testing.T) {
	a := mustAlphabet(t, "ab")
	r := rand.New(rand.NewSource(11))
	words := allWords("ab", 6)

	for i := 0; i < 20; i++ {
		d := randomDFA(t, r, a, 1+r.Intn(6))
		inv := d.Invert()
		twice := inv.Invert()
		require.Equal(t, d.StateCount(), inv.StateCount())
		for _, w := range words {
			require.Equal(t, !accepts(t, d, w), accepts(t, inv, w), "dfa #%d word %q", i, w)
			require.Equal(t, accepts(t, d, w), accepts(t, twice, w), "dfa #%d word %q", i, w)
		}
	}
}

func TestInvertKeepsInputIntact(t *testing.T) {
	d := identifierDFA(t, idAlphabet(t))
	inv := d.Invert()
	assert.True(t, accepts(t, d, "a"))
	assert.False(t, accepts(t, inv, "a"))
	assert.Equal(t, d.State(0).Label, inv.State(0).Label)
}

func TestProductLaws(t *testing.T) {
	a := mustAlphabet(t, "abc")
	r := rand.New(rand.NewSource(5))
	words := allWords("abc", 4)

	for i := 0; i < 20; i++ {
		x := randomDFA(t, r, a, 1+r.Intn(5))
		y := randomDFA(t, r, a, 1+r.Intn(5))
		inter, err := x.Intersect(y)
		require.NoError(t, err)
		union, err := x.Union(y)
		require.NoError(t, err)
		require.LessOrEqual(t, inter.StateCount(), x.StateCount()*y.StateCount())

		for _, w := range words {
			ax, ay := accepts(t, x, w), accepts(t, y, w)
			require.Equal(t, ax && ay, accepts(t, inter, w), "pair #%d word %q", i, w)
			require.Equal(t, ax || ay, accepts(t, union, w), "pair #%d word %q", i, w)
		}
	}
}

func TestIntersectAlphabetMismatch(t *testing.T) {
	x := identifierDFA(t, idAlphabet(t))
	y := identifierDFA(t, mustAlphabet(t, "_"+letters+digits))

	_, err := x.Intersect(y)
	require.ErrorIs(t, err, ErrAlphabetMismatch)
	_, err = x.Union(y)
	require.ErrorIs(t, err, ErrAlphabetMismatch)
}

func TestProductNilOperand(t *testing.T) {
	x := identifierDFA(t, idAlphabet(t))

	_, err := x.Intersect(nil)
	require.ErrorIs(t, err, ErrAlphabetMismatch)
	_, err = x.Union(nil)
	require.ErrorIs(t, err, ErrAlphabetMismatch)
}

func TestIntersectEqualAlphabetInstances(t *testing.T) {
	x := identifierDFA(t, idAlphabet(t))
	y := identifierDFA(t, idAlphabet(t))

	both, err := x.Intersect(y)
	require.NoError(t, err)
	assert.True(t, accepts(t, both, "x1"))
	assert.Equal(t, "(0,0)", both.State(both.Initial()).Label)
}

func TestComplementOfKeywordsScenario(t *testing.T) {
	a := idAlphabet(t)
	notKw := keywordNFA(t, a, keywords...).Determinize().Invert()

	for _, w := range keywords {
		assert.False(t, accepts(t, notKw, w), "should reject keyword %q", w)
	}
	for _, w := range []string{"a", "xyz", "iff", "", "1", "12"} {
		assert.True(t, accepts(t, notKw, w), "should accept %q", w)
	}

	correct, err := notKw.Intersect(identifierDFA(t, a))
	require.NoError(t, err)
	for _, w := range []string{"a", "id_3", "e2e3", "__13"} {
		assert.True(t, accepts(t, correct, w), "should accept %q", w)
	}
	for _, w := range append([]string{"", "1", "12", "1_z", "8qz", "0"}, keywords...) {
		assert.False(t, accepts(t, correct, w), "should reject %q", w)
	}
}
