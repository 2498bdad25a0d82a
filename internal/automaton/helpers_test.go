package automaton

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"statemachine/internal/alphabet"
)

const (
	letters = "abcdefghijklmnopqrstuvwxyz"
	digits  = "0123456789"
)

var keywords = []string{"if", "then", "else", "let", "in", "true", "false"}

func mustAlphabet(t testing.TB, s string) *alphabet.Alphabet[rune] {
	t.Helper()
	a, err := alphabet.FromString(s)
	require.NoError(t, err)
	return a
}

func idAlphabet(t testing.TB) *alphabet.Alphabet[rune] {
	return mustAlphabet(t, letters+digits+"_")
}

func accepts(t testing.TB, a Acceptor[rune], word string) bool {
	t.Helper()
	ok, err := AcceptString(a, word)
	require.NoError(t, err)
	return ok
}

// identifierDFA accepts words that start with a letter or '_'.
func identifierDFA(t testing.TB, a *alphabet.Alphabet[rune]) *DFA[rune] {
	t.Helper()
	b := NewDFABuilder(a)
	drain := b.AddState(false, "2")
	accepted := b.AddState(true, "1")
	initial, err := b.AddStateWithDefault(false, accepted, "0")
	require.NoError(t, err)
	require.NoError(t, b.SetEdges(initial, []rune(digits), drain))
	require.NoError(t, b.SetInitialState(initial))
	d, err := b.Build()
	require.NoError(t, err)
	return d
}

func keywordNFA(t testing.TB, a *alphabet.Alphabet[rune], words ...string) *NFA[rune] {
	t.Helper()
	b := NewNFABuilder(a)
	require.NoError(t, b.SetInitialState(b.AddState(false, "S")))
	for _, w := range words {
		require.NoError(t, b.AddWord([]rune(w)))
	}
	n, err := b.Build()
	require.NoError(t, err)
	return n
}

// allWords enumerates every word over syms of length at most maxLen.
func allWords(syms string, maxLen int) []string {
	out := []string{""}
	level := []string{""}
	for l := 0; l < maxLen; l++ {
		var next []string
		for _, w := range level {
			for _, r := range syms {
				next = append(next, w+string(r))
			}
		}
		out = append(out, next...)
		level = next
	}
	return out
}

func randomDFA(t testing.TB, r *rand.Rand, a *alphabet.Alphabet[rune], n int) *DFA[rune] {
	t.Helper()
	b := NewDFABuilder(a)
	for i := 0; i < n; i++ {
		b.AddState(r.Intn(3) == 0, "")
	}
	for i := 0; i < n; i++ {
		for _, s := range a.Symbols() {
			require.NoError(t, b.SetEdge(StateID(i), s, StateID(r.Intn(n))))
		}
	}
	require.NoError(t, b.SetInitialState(StateID(r.Intn(n))))
	d, err := b.Build()
	require.NoError(t, err)
	return d
}

func randomNFA(t testing.TB, r *rand.Rand, a *alphabet.Alphabet[rune], n, edges int) *NFA[rune] {
	t.Helper()
	b := NewNFABuilder(a)
	for i := 0; i < n; i++ {
		b.AddState(r.Intn(4) == 0, "")
	}
	syms := a.Symbols()
	for i := 0; i < edges; i++ {
		from, to := StateID(r.Intn(n)), StateID(r.Intn(n))
		require.NoError(t, b.AddEdge(from, syms[r.Intn(len(syms))], to))
	}
	require.NoError(t, b.SetInitialState(0))
	nfa, err := b.Build()
	require.NoError(t, err)
	return nfa
}

// acceptsFrom runs word from an arbitrary state of d.
func acceptsFrom(d *DFA[rune], from StateID, word string) bool {
	cur := from
	for _, r := range word {
		i, _ := d.alpha.Index(r)
		cur = d.states[cur].next[i]
	}
	return d.states[cur].accept
}
