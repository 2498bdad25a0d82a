package automaton

import (
	"fmt"
)

// Invert returns the complement of d over the same alphabet: the same
// graph with every accepting flag negated. It relies on the transition
// function being total, which every DFA guarantees.
func (d *DFA[S]) Invert() *DFA[S] {
	out := &DFA[S]{
		alpha:   d.alpha,
		states:  make([]dfaState, len(d.states)),
		initial: d.initial,
	}
	for i, s := range d.states {
		c := s.clone()
		c.accept = !s.accept
		out.states[i] = c
	}
	return out
}

// Intersect returns a DFA accepting exactly the words accepted by both d
// and other.
func (d *DFA[S]) Intersect(other *DFA[S]) (*DFA[S], error) {
	return d.product(other, func(x, y bool) bool { return x && y })
}

// Union returns a DFA accepting the words accepted by d or other.
func (d *DFA[S]) Union(other *DFA[S]) (*DFA[S], error) {
	return d.product(other, func(x, y bool) bool { return x || y })
}

// product explores pairs of states breadth-first from the pair of initial
// states; only reachable pairs are materialised. A nil operand has no
// alphabet and is rejected as a mismatch.
func (d *DFA[S]) product(other *DFA[S], op func(bool, bool) bool) (*DFA[S], error) {
	if other == nil || !d.alpha.Identical(other.alpha) {
		return nil, ErrAlphabetMismatch
	}
	out := newDFA(d.alpha)
	seen := map[pairKey]StateID{}
	pairState := func(p pairKey) StateID {
		a, b := d.states[p.a], other.states[p.b]
		return out.addState(op(a.accept, b.accept), fmt.Sprintf("(%s,%s)", a.label, b.label))
	}

	start := pairKey{d.initial, other.initial}
	seen[start] = pairState(start)
	out.initial = seen[start]
	queue := []pairKey{start}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		cur := seen[p]
		for s := 0; s < d.alpha.Size(); s++ {
			np := pairKey{d.states[p.a].next[s], other.states[p.b].next[s]}
			ns, ok := seen[np]
			if !ok {
				ns = pairState(np)
				seen[np] = ns
				queue = append(queue, np)
			}
			out.states[cur].next[s] = ns
		}
	}
	return out, nil
}
