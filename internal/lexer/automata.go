package lexer

import (
	"fmt"

	"statemachine/internal/alphabet"
	"statemachine/internal/automaton"
)

const (
	Letters = "abcdefghijklmnopqrstuvwxyz"
	Digits  = "0123456789"
)

// Keywords of the toy language recognised by the example lexer.
var Keywords = []string{"if", "then", "else", "let", "in", "true", "false"}

// DefaultAlphabet is lowercase letters, digits and '_'.
func DefaultAlphabet() *alphabet.Alphabet[rune] {
	a, err := alphabet.FromString(Letters + Digits + "_")
	if err != nil {
		panic(err)
	}
	return a
}

// KeywordNFA accepts exactly the given words. Every word gets its own
// path from the shared initial state "S".
func KeywordNFA(a *alphabet.Alphabet[rune], words ...string) (*automaton.NFA[rune], error) {
	b := automaton.NewNFABuilder(a)
	if err := b.SetInitialState(b.AddState(false, "S")); err != nil {
		return nil, err
	}
	for _, w := range words {
		if err := b.AddWord([]rune(w)); err != nil {
			return nil, fmt.Errorf("keyword %q: %w", w, err)
		}
	}
	return b.Build()
}

// IdentifierDFA accepts non-empty words that do not start with a digit.
// It needs every digit of Digits in a.
func IdentifierDFA(a *alphabet.Alphabet[rune]) (*automaton.DFA[rune], error) {
	b := automaton.NewDFABuilder(a)
	drain := b.AddState(false, "2")
	accepted := b.AddState(true, "1")
	initial, err := b.AddStateWithDefault(false, accepted, "0")
	if err != nil {
		return nil, err
	}
	if err := b.SetEdges(initial, []rune(Digits), drain); err != nil {
		return nil, err
	}
	if err := b.SetInitialState(initial); err != nil {
		return nil, err
	}
	return b.Build()
}

// Pipeline holds every automaton of the keyword/identifier example in
// the order they are derived.
type Pipeline struct {
	Identifiers        *automaton.DFA[rune]
	KeywordsNFA        *automaton.NFA[rune]
	KeywordsDFA        *automaton.DFA[rune]
	NotKeywords        *automaton.DFA[rune]
	CorrectIdentifiers *automaton.DFA[rune]
	MinimalIdentifiers *automaton.DFA[rune]
}

// BuildPipeline derives the identifier recogniser that excludes keywords:
// determinize the keyword NFA, complement it, intersect with all
// identifiers and minimize.
func BuildPipeline(a *alphabet.Alphabet[rune], keywords ...string) (*Pipeline, error) {
	p := &Pipeline{}
	var err error
	if p.Identifiers, err = IdentifierDFA(a); err != nil {
		return nil, fmt.Errorf("identifiers: %w", err)
	}
	if p.KeywordsNFA, err = KeywordNFA(a, keywords...); err != nil {
		return nil, err
	}
	p.KeywordsDFA = p.KeywordsNFA.Determinize()
	p.NotKeywords = p.KeywordsDFA.Invert()
	if p.CorrectIdentifiers, err = p.NotKeywords.Intersect(p.Identifiers); err != nil {
		return nil, fmt.Errorf("correct identifiers: %w", err)
	}
	p.MinimalIdentifiers = p.CorrectIdentifiers.Minimize()
	return p, nil
}

// Stage is one named step of the pipeline.
type Stage struct {
	Name    string
	Title   string
	Machine interface {
		automaton.Graph
		automaton.Acceptor[rune]
	}
}

// Stages lists the pipeline automata in derivation order.
func (p *Pipeline) Stages() []Stage {
	return []Stage{
		{"identifiers", "Machine, which accepts all identifiers", p.Identifiers},
		{"keywords_nfa", "Non deterministic machine, which accepts all key words", p.KeywordsNFA},
		{"keywords_dfa", "Deterministic machine, which accepts all key words", p.KeywordsDFA},
		{"not_keywords", "Deterministic machine, which accepts all words except key words", p.NotKeywords},
		{"correct_identifiers", "Deterministic machine, which accepts all correct identifiers", p.CorrectIdentifiers},
		{"minimal_identifiers", "Optimal deterministic machine, which accepts all correct identifiers", p.MinimalIdentifiers},
	}
}
