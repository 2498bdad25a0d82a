package automaton

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"statemachine/internal/alphabet"
)

type nfaState struct {
	label  string
	accept bool
	next   []*bitset.BitSet // successor set per alphabet index
}

func (s nfaState) clone() nfaState {
	next := make([]*bitset.BitSet, len(s.next))
	for i, set := range s.next {
		next[i] = set.Clone()
	}
	s.next = next
	return s
}

// NFA is a nondeterministic automaton without epsilon transitions.
// A missing edge is an empty successor set.
type NFA[S comparable] struct {
	alpha   *alphabet.Alphabet[S]
	states  []nfaState
	initial StateID
}

type NFABuilder[S comparable] struct {
	alpha   *alphabet.Alphabet[S]
	states  []nfaState
	initial StateID
}

func NewNFABuilder[S comparable](a *alphabet.Alphabet[S]) *NFABuilder[S] {
	return &NFABuilder[S]{alpha: a, initial: -1}
}

// AddState appends a state with no outgoing edges.
func (b *NFABuilder[S]) AddState(accepting bool, label string) StateID {
	id := len(b.states)
	st := nfaState{
		label:  defaultLabel(id, label),
		accept: accepting,
		next:   make([]*bitset.BitSet, b.alpha.Size()),
	}
	for i := range st.next {
		st.next[i] = bitset.New(0)
	}
	b.states = append(b.states, st)
	return StateID(id)
}

// AddEdge adds to to the successors of from under sym. Adding the same
// edge twice has no effect.
func (b *NFABuilder[S]) AddEdge(from StateID, sym S, to StateID) error {
	if err := b.check(from); err != nil {
		return err
	}
	if err := b.check(to); err != nil {
		return err
	}
	i, err := b.alpha.Index(sym)
	if err != nil {
		return err
	}
	b.states[from].next[i].Set(uint(to))
	return nil
}

func (b *NFABuilder[S]) SetInitialState(id StateID) error {
	if err := b.check(id); err != nil {
		return err
	}
	if b.initial >= 0 {
		return ErrInitialStateSet
	}
	b.initial = id
	return nil
}

// InitialState returns the initial state if it has been set.
func (b *NFABuilder[S]) InitialState() (StateID, bool) {
	return b.initial, b.initial >= 0
}

// AddWord adds a fresh path spelling word from the initial state. The
// last state of the path is accepting. The empty word has no path; mark
// the initial state accepting instead.
func (b *NFABuilder[S]) AddWord(word []S) error {
	if b.initial < 0 {
		return ErrNoInitialState
	}
	if len(word) == 0 {
		return ErrEmptyWord
	}
	if _, err := b.alpha.Indices(word); err != nil {
		return err
	}
	cur := b.initial
	for i, sym := range word {
		next := b.AddState(i == len(word)-1, "")
		if err := b.AddEdge(cur, sym, next); err != nil {
			return err
		}
		cur = next
	}
	return nil
}

func (b *NFABuilder[S]) Build() (*NFA[S], error) {
	if b.initial < 0 {
		return nil, ErrNoInitialState
	}
	states := make([]nfaState, len(b.states))
	for i, s := range b.states {
		states[i] = s.clone()
	}
	return &NFA[S]{alpha: b.alpha, states: states, initial: b.initial}, nil
}

func (b *NFABuilder[S]) check(id StateID) error {
	if id < 0 || int(id) >= len(b.states) {
		return fmt.Errorf("%w: %d", ErrUnknownState, id)
	}
	return nil
}

func (n *NFA[S]) Alphabet() *alphabet.Alphabet[S] { return n.alpha }

// Accept tracks the set of reachable states while consuming word and
// accepts if any of them is accepting at the end.
func (n *NFA[S]) Accept(word []S) (bool, error) {
	idx, err := n.alpha.Indices(word)
	if err != nil {
		return false, err
	}
	cur := bitset.New(uint(len(n.states)))
	cur.Set(uint(n.initial))
	for _, sym := range idx {
		cur = n.step(cur, sym)
		if cur.None() {
			return false, nil
		}
	}
	return n.containsAccepting(cur), nil
}

// step returns the union of the successor sets of every state in set.
func (n *NFA[S]) step(set *bitset.BitSet, sym int) *bitset.BitSet {
	out := bitset.New(uint(len(n.states)))
	for i, ok := set.NextSet(0); ok; i, ok = set.NextSet(i + 1) {
		out.InPlaceUnion(n.states[i].next[sym])
	}
	return out
}

func (n *NFA[S]) containsAccepting(set *bitset.BitSet) bool {
	for i, ok := set.NextSet(0); ok; i, ok = set.NextSet(i + 1) {
		if n.states[i].accept {
			return true
		}
	}
	return false
}

func (n *NFA[S]) Kind() string      { return "nfa" }
func (n *NFA[S]) StateCount() int   { return len(n.states) }
func (n *NFA[S]) Initial() StateID  { return n.initial }
func (n *NFA[S]) AlphabetSize() int { return n.alpha.Size() }

func (n *NFA[S]) State(id StateID) StateInfo {
	s := n.states[id]
	return StateInfo{ID: id, Label: s.label, Accepting: s.accept}
}

func (n *NFA[S]) Edges(id StateID) []Edge {
	c := newEdgeCollector()
	for sym, set := range n.states[id].next {
		for _, to := range members(set) {
			c.add(to, n.alpha.String(sym))
		}
	}
	return c.edges
}
