package script

import (
	"fmt"
	"sort"

	"statemachine/internal/alphabet"
	"statemachine/internal/automaton"
)

// Machine is anything a script can name: a DFA or an NFA over runes.
type Machine interface {
	automaton.Graph
	automaton.Acceptor[rune]
}

// Environment holds the alphabets and automata declared so far.
type Environment struct {
	alphabets map[string]*alphabet.Alphabet[rune]
	machines  map[string]Machine
}

func NewEnvironment() *Environment {
	return &Environment{
		alphabets: make(map[string]*alphabet.Alphabet[rune]),
		machines:  make(map[string]Machine),
	}
}

func (e *Environment) Alphabet(name string) (*alphabet.Alphabet[rune], error) {
	a, ok := e.alphabets[name]
	if !ok {
		return nil, fmt.Errorf("%w alphabet %s", ErrUndefined, name)
	}
	return a, nil
}

func (e *Environment) SetAlphabet(name string, a *alphabet.Alphabet[rune]) error {
	if _, ok := e.alphabets[name]; ok {
		return fmt.Errorf("%w: alphabet %s", ErrRedefined, name)
	}
	e.alphabets[name] = a
	return nil
}

func (e *Environment) Machine(name string) (Machine, error) {
	m, ok := e.machines[name]
	if !ok {
		return nil, fmt.Errorf("%w automaton %s", ErrUndefined, name)
	}
	return m, nil
}

func (e *Environment) SetMachine(name string, m Machine) error {
	if _, ok := e.machines[name]; ok {
		return fmt.Errorf("%w: automaton %s", ErrRedefined, name)
	}
	e.machines[name] = m
	return nil
}

func (e *Environment) DFA(name string) (*automaton.DFA[rune], error) {
	m, err := e.Machine(name)
	if err != nil {
		return nil, err
	}
	d, ok := m.(*automaton.DFA[rune])
	if !ok {
		return nil, fmt.Errorf("%w: %s is an %s, want a dfa", ErrKind, name, m.Kind())
	}
	return d, nil
}

func (e *Environment) NFA(name string) (*automaton.NFA[rune], error) {
	m, err := e.Machine(name)
	if err != nil {
		return nil, err
	}
	n, ok := m.(*automaton.NFA[rune])
	if !ok {
		return nil, fmt.Errorf("%w: %s is a %s, want an nfa", ErrKind, name, m.Kind())
	}
	return n, nil
}

// Names lists the declared automata in sorted order.
func (e *Environment) Names() []string {
	names := make([]string, 0, len(e.machines))
	for n := range e.machines {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
