// Package automaton implements deterministic and nondeterministic finite
// automata over an alphabet.Alphabet together with the classic
// transformations between them: subset construction, minimization,
// product construction and complement.
//
// Automata are assembled with a DFABuilder or NFABuilder and are immutable
// once built. Every transformation returns a fresh automaton and never
// touches its inputs, so built automata may be shared between goroutines.
package automaton

import (
	"errors"
	"strconv"
)

var (
	ErrAlphabetMismatch = errors.New("automata are built over different alphabets")
	ErrNoInitialState   = errors.New("initial state is not set")
	ErrInitialStateSet  = errors.New("initial state is already set")
	ErrUnknownState     = errors.New("state does not belong to this automaton")
	ErrEmptyWord        = errors.New("cannot add a path for the empty word")
)

// StateID is the index of a state inside its automaton.
type StateID int

func (id StateID) String() string { return strconv.Itoa(int(id)) }

// Acceptor is the acceptance contract shared by DFA and NFA.
// The empty word is valid input.
type Acceptor[S comparable] interface {
	Accept(word []S) (bool, error)
}

// AcceptString runs a rune automaton over the characters of s.
func AcceptString(a Acceptor[rune], s string) (bool, error) {
	return a.Accept([]rune(s))
}

// StateInfo describes one state for exporters.
type StateInfo struct {
	ID        StateID
	Label     string
	Accepting bool
}

// Edge is a coalesced transition: every symbol in Symbols leads to To.
type Edge struct {
	To      StateID
	Symbols []string
}

// Graph is the read-only enumeration consumed by visualization exporters.
type Graph interface {
	Kind() string
	StateCount() int
	State(id StateID) StateInfo
	// Edges returns outgoing edges ordered by the first symbol that
	// reaches each destination.
	Edges(id StateID) []Edge
	Initial() StateID
	AlphabetSize() int
}

// edgeCollector groups symbols by destination preserving first-seen order.
type edgeCollector struct {
	edges []Edge
	pos   map[StateID]int
}

func newEdgeCollector() *edgeCollector {
	return &edgeCollector{pos: make(map[StateID]int)}
}

func (c *edgeCollector) add(to StateID, symbol string) {
	i, ok := c.pos[to]
	if !ok {
		i = len(c.edges)
		c.pos[to] = i
		c.edges = append(c.edges, Edge{To: to})
	}
	c.edges[i].Symbols = append(c.edges[i].Symbols, symbol)
}

func defaultLabel(id int, label string) string {
	if label == "" {
		return strconv.Itoa(id)
	}
	return label
}
