package automaton

import (
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Determinize converts n into an equivalent DFA by subset construction.
// Each DFA state stands for a distinct set of NFA states reachable on some
// word; the empty set becomes a non-accepting drain state.
func (n *NFA[S]) Determinize() *DFA[S] {
	d := newDFA(n.alpha)

	start := bitset.New(uint(len(n.states)))
	start.Set(uint(n.initial))

	seen := map[string]StateID{}
	queue := []*bitset.BitSet{start}
	seen[setKey(start)] = d.addState(n.containsAccepting(start), n.subsetLabel(start))
	d.initial = 0

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		from := seen[setKey(cur)]
		for sym := 0; sym < n.alpha.Size(); sym++ {
			img := n.step(cur, sym)
			k := setKey(img)
			to, ok := seen[k]
			if !ok {
				to = d.addState(n.containsAccepting(img), n.subsetLabel(img))
				seen[k] = to
				queue = append(queue, img)
			}
			d.states[from].next[sym] = to
		}
	}
	return d
}

func (n *NFA[S]) subsetLabel(set *bitset.BitSet) string {
	if set.None() {
		return "∅"
	}
	labels := make([]string, 0, set.Count())
	for _, id := range members(set) {
		labels = append(labels, n.states[id].label)
	}
	return "{" + strings.Join(labels, ",") + "}"
}
