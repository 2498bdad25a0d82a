package lexer

import (
	"statemachine/internal/alphabet"
	"statemachine/internal/automaton"
)

// Kind is the class of a scanned word.
type Kind int

const (
	Invalid Kind = iota
	Keyword
	Identifier
	Punct
)

func (k Kind) String() string {
	switch k {
	case Keyword:
		return "keyword"
	case Identifier:
		return "identifier"
	case Punct:
		return "punct"
	default:
		return "invalid"
	}
}

// Classifier sorts words into keywords, identifiers and everything else
// using the minimized automata of a Pipeline.
type Classifier struct {
	keywords    *automaton.DFA[rune]
	identifiers *automaton.DFA[rune]
}

func NewClassifier(a *alphabet.Alphabet[rune], keywords ...string) (*Classifier, error) {
	p, err := BuildPipeline(a, keywords...)
	if err != nil {
		return nil, err
	}
	return &Classifier{
		keywords:    p.KeywordsDFA.Minimize(),
		identifiers: p.MinimalIdentifiers,
	}, nil
}

// Classify reports the kind of word. Words containing symbols outside the
// alphabet are Invalid.
func (c *Classifier) Classify(word string) Kind {
	k, err := c.classify(word)
	if err != nil {
		return Invalid
	}
	return k
}

func (c *Classifier) classify(word string) (Kind, error) {
	idx, err := c.keywords.Alphabet().Indices([]rune(word))
	if err != nil {
		return Invalid, err
	}
	switch {
	case c.keywords.AcceptIndices(idx):
		return Keyword, nil
	case c.identifiers.AcceptIndices(idx):
		return Identifier, nil
	}
	return Invalid, nil
}
