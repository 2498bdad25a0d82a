package automaton

import (
	"fmt"

	"statemachine/internal/alphabet"
)

type dfaState struct {
	label  string
	accept bool
	next   []StateID // one successor per alphabet index
}

func (s dfaState) clone() dfaState {
	s.next = append([]StateID(nil), s.next...)
	return s
}

// DFA is a deterministic automaton with a total transition function.
type DFA[S comparable] struct {
	alpha   *alphabet.Alphabet[S]
	states  []dfaState
	initial StateID
}

// DFABuilder assembles a DFA. New states loop on every symbol until
// edges are set, so the transition function is total at all times.
type DFABuilder[S comparable] struct {
	alpha   *alphabet.Alphabet[S]
	states  []dfaState
	initial StateID
}

func NewDFABuilder[S comparable](a *alphabet.Alphabet[S]) *DFABuilder[S] {
	return &DFABuilder[S]{alpha: a, initial: -1}
}

// AddState appends a state whose edges all lead back to itself.
// An empty label defaults to the state's index.
func (b *DFABuilder[S]) AddState(accepting bool, label string) StateID {
	id := StateID(len(b.states))
	return b.add(accepting, label, id)
}

// AddStateWithDefault appends a state whose edges all lead to def.
func (b *DFABuilder[S]) AddStateWithDefault(accepting bool, def StateID, label string) (StateID, error) {
	if err := b.check(def); err != nil {
		return -1, err
	}
	return b.add(accepting, label, def), nil
}

func (b *DFABuilder[S]) add(accepting bool, label string, target StateID) StateID {
	id := len(b.states)
	st := dfaState{
		label:  defaultLabel(id, label),
		accept: accepting,
		next:   make([]StateID, b.alpha.Size()),
	}
	for i := range st.next {
		st.next[i] = target
	}
	b.states = append(b.states, st)
	return StateID(id)
}

// SetEdge points the transition of from under sym at to, replacing the
// previous destination.
func (b *DFABuilder[S]) SetEdge(from StateID, sym S, to StateID) error {
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
	b.states[from].next[i] = to
	return nil
}

// SetEdges is SetEdge for every symbol in syms.
func (b *DFABuilder[S]) SetEdges(from StateID, syms []S, to StateID) error {
	for _, s := range syms {
		if err := b.SetEdge(from, s, to); err != nil {
			return err
		}
	}
	return nil
}

func (b *DFABuilder[S]) SetInitialState(id StateID) error {
	if err := b.check(id); err != nil {
		return err
	}
	if b.initial >= 0 {
		return ErrInitialStateSet
	}
	b.initial = id
	return nil
}

// Build returns an immutable DFA holding a copy of the builder's states.
func (b *DFABuilder[S]) Build() (*DFA[S], error) {
	if b.initial < 0 {
		return nil, ErrNoInitialState
	}
	states := make([]dfaState, len(b.states))
	for i, s := range b.states {
		states[i] = s.clone()
	}
	return &DFA[S]{alpha: b.alpha, states: states, initial: b.initial}, nil
}

func (b *DFABuilder[S]) check(id StateID) error {
	if id < 0 || int(id) >= len(b.states) {
		return fmt.Errorf("%w: %d", ErrUnknownState, id)
	}
	return nil
}

// newDFA is used by transformations that wire states directly.
func newDFA[S comparable](a *alphabet.Alphabet[S]) *DFA[S] {
	return &DFA[S]{alpha: a}
}

func (d *DFA[S]) addState(accepting bool, label string) StateID {
	id := len(d.states)
	d.states = append(d.states, dfaState{
		label:  defaultLabel(id, label),
		accept: accepting,
		next:   make([]StateID, d.alpha.Size()),
	})
	return StateID(id)
}

func (d *DFA[S]) Alphabet() *alphabet.Alphabet[S] { return d.alpha }

// Accept replays word from the initial state and reports whether it ends
// in an accepting state.
func (d *DFA[S]) Accept(word []S) (bool, error) {
	idx, err := d.alpha.Indices(word)
	if err != nil {
		return false, err
	}
	return d.AcceptIndices(idx), nil
}

// AcceptIndices is Accept for a word already resolved to alphabet indices.
func (d *DFA[S]) AcceptIndices(word []int) bool {
	cur := d.initial
	for _, s := range word {
		cur = d.states[cur].next[s]
	}
	return d.states[cur].accept
}

// Next returns the successor of id under sym.
func (d *DFA[S]) Next(id StateID, sym S) (StateID, error) {
	if id < 0 || int(id) >= len(d.states) {
		return -1, fmt.Errorf("%w: %d", ErrUnknownState, id)
	}
	i, err := d.alpha.Index(sym)
	if err != nil {
		return -1, err
	}
	return d.states[id].next[i], nil
}

func (d *DFA[S]) Kind() string      { return "dfa" }
func (d *DFA[S]) StateCount() int   { return len(d.states) }
func (d *DFA[S]) Initial() StateID  { return d.initial }
func (d *DFA[S]) AlphabetSize() int { return d.alpha.Size() }

func (d *DFA[S]) State(id StateID) StateInfo {
	s := d.states[id]
	return StateInfo{ID: id, Label: s.label, Accepting: s.accept}
}

func (d *DFA[S]) Edges(id StateID) []Edge {
	c := newEdgeCollector()
	for sym, to := range d.states[id].next {
		c.add(to, d.alpha.String(sym))
	}
	return c.edges
}
