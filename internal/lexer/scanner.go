// Package lexer is the keyword/identifier example built on the automaton
// package: it derives the recognisers and uses them to classify the words
// of a source text.
package lexer

import (
	"unicode/utf8"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

type Token struct {
	Kind   Kind
	Text   string
	Line   int
	Column int
	// Err explains an Invalid word when a symbol is outside the alphabet.
	Err error
}

// Scanner splits input into words and punctuation and classifies words.
type Scanner struct {
	lexmachine *lexmachine.Lexer
	classifier *Classifier
}

type rawKind int

const (
	rawWord rawKind = iota
	rawPunct
)

type raw struct {
	kind rawKind
	text string
	tc   int
}

func NewScanner(c *Classifier) (*Scanner, error) {
	lm := lexmachine.NewLexer()
	lm.Add([]byte(`[ \t\n\r]+`), skip)
	lm.Add([]byte(`//[^\n]*`), skip)
	lm.Add([]byte(`[A-Za-z0-9_]+`), rawAction(rawWord))
	lm.Add([]byte(`[^A-Za-z0-9_ \t\n\r]`), rawAction(rawPunct))
	if err := lm.Compile(); err != nil {
		return nil, err
	}
	return &Scanner{lexmachine: lm, classifier: c}, nil
}

// Tokenize scans the whole input. Bytes the scanner cannot match are
// reported as Invalid tokens and skipped. A run of non-ASCII text is kept
// whole, together with any word characters touching it, and classified as
// one word. Columns count runes.
func (s *Scanner) Tokenize(input []byte) ([]Token, error) {
	scanner, err := s.lexmachine.Scanner(input)
	if err != nil {
		return nil, err
	}
	pos := &position{input: input, line: 1}
	var out []Token
	wordEnd := -1 // offset just past the last word token
	for tok, err, eof := scanner.Next(); !eof; tok, err, eof = scanner.Next() {
		if ui, is := err.(*machines.UnconsumedInput); is {
			end := ui.FailTC
			if end <= ui.StartTC {
				end = ui.StartTC + 1
			}
			line, col := pos.at(ui.StartTC)
			out = append(out, Token{
				Kind:   Invalid,
				Text:   string(input[ui.StartTC:end]),
				Line:   line,
				Column: col,
				Err:    err,
			})
			scanner.TC = end
			wordEnd = -1
			continue
		} else if err != nil {
			return nil, err
		}
		r := tok.(raw)

		if r.kind == rawPunct && input[r.tc] >= utf8.RuneSelf {
			start, end := r.tc, foreignEnd(input, r.tc)
			t := Token{}
			if wordEnd == start {
				prev := out[len(out)-1]
				out = out[:len(out)-1]
				start -= len(prev.Text)
				t.Line, t.Column = prev.Line, prev.Column
			} else {
				t.Line, t.Column = pos.at(start)
			}
			t.Text = string(input[start:end])
			t.Kind, t.Err = s.classifier.classify(t.Text)
			out = append(out, t)
			scanner.TC = end
			wordEnd = -1
			continue
		}

		line, col := pos.at(r.tc)
		t := Token{Kind: Punct, Text: r.text, Line: line, Column: col}
		wordEnd = -1
		if r.kind == rawWord {
			t.Kind, t.Err = s.classifier.classify(r.text)
			wordEnd = r.tc + len(r.text)
		}
		out = append(out, t)
	}
	return out, nil
}

// foreignEnd returns the end of the non-ASCII run starting at i, extended
// over adjacent word characters.
func foreignEnd(input []byte, i int) int {
	for i < len(input) && (input[i] >= utf8.RuneSelf || isWordByte(input[i])) {
		i++
	}
	return i
}

func isWordByte(b byte) bool {
	return b == '_' || 'a' <= b && b <= 'z' || 'A' <= b && b <= 'Z' || '0' <= b && b <= '9'
}

// position maps byte offsets to 1-based lines and rune columns. Offsets
// must be asked for in non-decreasing order.
type position struct {
	input     []byte
	off       int
	line      int
	lineStart int
}

func (p *position) at(tc int) (line, col int) {
	for ; p.off < tc; p.off++ {
		if p.input[p.off] == '\n' {
			p.line++
			p.lineStart = p.off + 1
		}
	}
	return p.line, utf8.RuneCount(p.input[p.lineStart:tc]) + 1
}

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func rawAction(k rawKind) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return raw{
			kind: k,
			text: string(m.Bytes),
			tc:   m.TC,
		}, nil
	}
}
