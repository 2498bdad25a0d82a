// Package alphabet maps a finite set of symbols onto dense indices 0..Size()-1.
package alphabet

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateSymbol = errors.New("duplicate symbol in alphabet")
	ErrUnknownSymbol   = errors.New("symbol not in alphabet")
)

// Alphabet is an immutable, index-ordered set of distinct symbols.
// Automata share it by pointer and index their transition tables with it.
type Alphabet[S comparable] struct {
	symbols []S
	index   map[S]int
}

// New builds an alphabet from symbols in the given order.
func New[S comparable](symbols ...S) (*Alphabet[S], error) {
	a := &Alphabet[S]{
		symbols: make([]S, len(symbols)),
		index:   make(map[S]int, len(symbols)),
	}
	for i, s := range symbols {
		if j, ok := a.index[s]; ok {
			return nil, fmt.Errorf("%w: %s at %d and %d", ErrDuplicateSymbol, quote(s), j, i)
		}
		a.index[s] = i
		a.symbols[i] = s
	}
	return a, nil
}

// FromString builds a rune alphabet from the characters of s.
func FromString(s string) (*Alphabet[rune], error) {
	return New([]rune(s)...)
}

// Size returns the number of symbols.
func (a *Alphabet[S]) Size() int { return len(a.symbols) }

// Symbol returns the symbol at index i. It panics if i is out of range.
func (a *Alphabet[S]) Symbol(i int) S { return a.symbols[i] }

// Index returns the position of s.
func (a *Alphabet[S]) Index(s S) (int, error) {
	i, ok := a.index[s]
	if !ok {
		return -1, fmt.Errorf("%w: %s", ErrUnknownSymbol, quote(s))
	}
	return i, nil
}

// Contains reports whether s belongs to the alphabet.
func (a *Alphabet[S]) Contains(s S) bool {
	_, ok := a.index[s]
	return ok
}

// Indices resolves a whole word, failing on the first unknown symbol.
func (a *Alphabet[S]) Indices(word []S) ([]int, error) {
	out := make([]int, len(word))
	for pos, s := range word {
		i, err := a.Index(s)
		if err != nil {
			return nil, fmt.Errorf("position %d: %w", pos, err)
		}
		out[pos] = i
	}
	return out, nil
}

// Symbols returns a copy of the symbols in index order.
func (a *Alphabet[S]) Symbols() []S {
	return append([]S(nil), a.symbols...)
}

// Identical reports whether b has the same symbols in the same index order.
func (a *Alphabet[S]) Identical(b *Alphabet[S]) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil || len(a.symbols) != len(b.symbols) {
		return false
	}
	for i := range a.symbols {
		if a.symbols[i] != b.symbols[i] {
			return false
		}
	}
	return true
}

// String renders symbol i for labels and exporters.
func (a *Alphabet[S]) String(i int) string {
	switch v := any(a.symbols[i]).(type) {
	case rune:
		return string(v)
	case byte:
		return string(rune(v))
	default:
		return fmt.Sprint(v)
	}
}

// quote formats a symbol for error messages; characters are quoted rather
// than printed as code points.
func quote[S comparable](s S) string {
	switch v := any(s).(type) {
	case rune:
		return fmt.Sprintf("%q", v)
	case byte:
		return fmt.Sprintf("%q", rune(v))
	default:
		return fmt.Sprintf("%v", v)
	}
}
