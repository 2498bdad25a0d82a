// Package script runs scenario files that declare alphabets and automata,
// derive new automata from them and check which words they accept.
package script

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

type Script struct {
	Statements []*Statement `parser:"@@*"`
}

type Statement struct {
	Pos lexer.Position

	Alphabet *AlphabetDecl `parser:"  @@ ';'"`
	Machine  *MachineDecl  `parser:"| @@"`
	Let      *Let          `parser:"| @@ ';'"`
	Expect   *Expect       `parser:"| @@ ';'"`
	Export   *Export       `parser:"| @@ ';'"`
}

type AlphabetDecl struct {
	Name    string `parser:"'alphabet' @Ident '='"`
	Symbols string `parser:"@String"`
}

type MachineDecl struct {
	Kind     string         `parser:"@('dfa' | 'nfa')"`
	Name     string         `parser:"@Ident"`
	Alphabet string         `parser:"'over' @Ident '{'"`
	Body     []*MachineStmt `parser:"@@* '}'"`
}

type MachineStmt struct {
	Pos lexer.Position

	State *StateDecl `parser:"  @@ ';'"`
	Edge  *EdgeDecl  `parser:"| @@ ';'"`
	Words *WordsDecl `parser:"| @@ ';'"`
}

type StateDecl struct {
	Name    string   `parser:"'state' @Ident"`
	Flags   []string `parser:"@('accepting' | 'initial')*"`
	Default string   `parser:"('default' @Ident)?"`
}

func (s *StateDecl) has(flag string) bool {
	for _, f := range s.Flags {
		if f == flag {
			return true
		}
	}
	return false
}

type EdgeDecl struct {
	From    string `parser:"'edge' @Ident"`
	Symbols string `parser:"@String"`
	To      string `parser:"'to' @Ident"`
}

type WordsDecl struct {
	Words []string `parser:"'words' @String+"`
}

type Let struct {
	Name string   `parser:"'let' @Ident '='"`
	Op   string   `parser:"@('determinize' | 'minimize' | 'invert' | 'intersect' | 'union')"`
	Args []string `parser:"@Ident+"`
}

type Expect struct {
	Machine string   `parser:"'expect' @Ident"`
	Verdict string   `parser:"@('accepts' | 'rejects')"`
	Words   []string `parser:"@String+"`
}

type Export struct {
	Machine string `parser:"'export' @Ident"`
	Format  string `parser:"('as' @('dot' | 'table'))?"`
}

var parser = participle.MustBuild[Script](
	participle.Unquote("String"),
)

// Parse reads a scenario; filename is only used in error positions.
func Parse(filename, data string) (*Script, error) {
	return parser.ParseString(filename, data)
}
