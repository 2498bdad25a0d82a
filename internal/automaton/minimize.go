package automaton

// Minimize merges states that no word can tell apart and returns the
// smallest DFA accepting the same language.
//
// Pairs are marked distinguishable starting from accepting/non-accepting
// pairs and propagated backwards along reverse edges. Unreachable states
// are kept and take part in the computation like any other state.
func (d *DFA[S]) Minimize() *DFA[S] {
	n := len(d.states)
	k := d.alpha.Size()

	// --- 1. reverse edges: back[t][s] = states whose s-edge leads to t
	back := make([][][]StateID, n)
	for t := range back {
		back[t] = make([][]StateID, k)
	}
	for from, st := range d.states {
		for s, to := range st.next {
			back[to][s] = append(back[to][s], StateID(from))
		}
	}

	// --- 2. seed with accepting vs non-accepting
	diff := make([][]bool, n)
	for i := range diff {
		diff[i] = make([]bool, n)
	}
	var queue []pairKey
	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			if d.states[i].accept != d.states[j].accept {
				diff[i][j], diff[j][i] = true, true
				queue = append(queue, pairKey{StateID(i), StateID(j)})
			}
		}
	}

	// --- 3. propagate
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for s := 0; s < k; s++ {
			for _, a := range back[p.a][s] {
				for _, b := range back[p.b][s] {
					if !diff[a][b] {
						diff[a][b], diff[b][a] = true, true
						queue = append(queue, pairKey{a, b})
					}
				}
			}
		}
	}

	// --- 4. classes, greedy in index order
	class := make([]StateID, n)
	for i := range class {
		class[i] = -1
	}
	m := newDFA(d.alpha)
	var reps []int
	for i := 0; i < n; i++ {
		if class[i] >= 0 {
			continue
		}
		c := m.addState(d.states[i].accept, "")
		reps = append(reps, i)
		for j := i; j < n; j++ {
			if class[j] < 0 && !diff[i][j] {
				class[j] = c
			}
		}
	}

	// --- 5. edges through the class table
	for c, rep := range reps {
		for s, to := range d.states[rep].next {
			m.states[c].next[s] = class[to]
		}
	}
	m.initial = class[d.initial]
	return m
}
