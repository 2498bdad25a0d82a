package automaton

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinimizePreservesLanguage(t *testing.T) {
	a := mustAlphabet(t, "abc")
	r := rand.New(rand.NewSource(42))
	words := allWords("abc", 5)

	for i := 0; i < 30; i++ {
		d := randomDFA(t, r, a, 1+r.Intn(8))
		m := d.Minimize()
		require.LessOrEqual(t, m.StateCount(), d.StateCount())
		for _, w := range words {
			require.Equal(t, accepts(t, d, w), accepts(t, m, w), "dfa #%d word %q", i, w)
		}
	}
}

func TestMinimizeIsMinimalAndIdempotent(t *testing.T) {
	a := mustAlphabet(t, "ab")
	r := rand.New(rand.NewSource(3))

	for i := 0; i < 30; i++ {
		m := randomDFA(t, r, a, 2+r.Intn(7)).Minimize()

		// Two states of an n-state DFA that differ on some word differ on
		// a word of length < n.
		words := allWords("ab", m.StateCount())
		for p := 0; p < m.StateCount(); p++ {
			for q := p + 1; q < m.StateCount(); q++ {
				distinct := false
				for _, w := range words {
					if acceptsFrom(m, StateID(p), w) != acceptsFrom(m, StateID(q), w) {
						distinct = true
						break
					}
				}
				require.True(t, distinct, "dfa #%d: states %d and %d are equivalent", i, p, q)
			}
		}

		again := m.Minimize()
		assert.Equal(t, m.StateCount(), again.StateCount(), "dfa #%d", i)
	}
}

func TestMinimizeSingleClass(t *testing.T) {
	a := mustAlphabet(t, "xy")
	for _, accepting := range []bool{true, false} {
		b := NewDFABuilder(a)
		s0 := b.AddState(accepting, "")
		s1 := b.AddState(accepting, "")
		s2 := b.AddState(accepting, "")
		require.NoError(t, b.SetEdge(s0, 'x', s1))
		require.NoError(t, b.SetEdge(s1, 'y', s2))
		require.NoError(t, b.SetEdge(s2, 'x', s0))
		require.NoError(t, b.SetInitialState(s1))
		d, err := b.Build()
		require.NoError(t, err)

		m := d.Minimize()
		require.Equal(t, 1, m.StateCount())
		assert.Equal(t, StateID(0), m.Initial())
		assert.Equal(t, accepting, m.State(0).Accepting)
		assert.Equal(t, []Edge{{To: 0, Symbols: []string{"x", "y"}}}, m.Edges(0))
	}
}

func TestMinimizeKeepsUnreachableStates(t *testing.T) {
	a := mustAlphabet(t, "a")
	b := NewDFABuilder(a)
	start := b.AddState(false, "")
	b.AddState(true, "") // unreachable, loops on itself
	require.NoError(t, b.SetInitialState(start))
	d, err := b.Build()
	require.NoError(t, err)

	m := d.Minimize()
	assert.Equal(t, 2, m.StateCount())
	assert.False(t, accepts(t, m, "aaa"))
}

func TestMinimizeCorrectIdentifiers(t *testing.T) {
	a := idAlphabet(t)
	kw := keywordNFA(t, a, keywords...).Determinize()
	correct, err := kw.Invert().Intersect(identifierDFA(t, a))
	require.NoError(t, err)

	m := correct.Minimize()
	assert.Less(t, m.StateCount(), correct.StateCount())
	assert.Less(t, m.StateCount(), kw.StateCount()+2)

	for _, w := range []string{"a", "id_3", "iff", "els", "elsee", "true_", letters} {
		assert.True(t, accepts(t, m, w), "should accept %q", w)
	}
	for _, w := range append([]string{"", "1", "12", "1_z", "8qz"}, keywords...) {
		assert.False(t, accepts(t, m, w), "should reject %q", w)
	}
}

func BenchmarkMinimize(b *testing.B) {
	a := mustAlphabet(b, letters+digits+"_")
	kw := keywordNFA(b, a, keywords...).Determinize()
	correct, err := kw.Invert().Intersect(identifierDFA(b, a))
	require.NoError(b, err)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = correct.Minimize()
	}
}

func BenchmarkDeterminize(b *testing.B) {
	a := mustAlphabet(b, letters+digits+"_")
	n := keywordNFA(b, a, keywords...)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = n.Determinize()
	}
}
