// Package render turns an automaton.Graph into text for humans and tools.
package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"statemachine/internal/automaton"
)

// Wildcard replaces an edge label that lists more symbols than the
// alphabet has. A consistent automaton never produces one.
const Wildcard = "?"

type dotConfig struct {
	name    string
	rankdir string
}

// DOTOption customises WriteDOT.
type DOTOption func(*dotConfig)

// WithName sets the digraph name.
func WithName(name string) DOTOption {
	return func(c *dotConfig) { c.name = name }
}

// WithRankDir sets the Graphviz rankdir attribute ("LR", "TB", ...).
func WithRankDir(dir string) DOTOption {
	return func(c *dotConfig) { c.rankdir = dir }
}

// WriteDOT prints a Graphviz description of g to w.
func WriteDOT(w io.Writer, g automaton.Graph, opts ...DOTOption) error {
	cfg := dotConfig{name: g.Kind(), rankdir: "LR"}
	for _, o := range opts {
		o(&cfg)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "digraph %s {\n", quoteID(cfg.name))
	fmt.Fprintf(bw, "    rankdir=%s;\n", cfg.rankdir)

	for i := 0; i < g.StateCount(); i++ {
		s := g.State(automaton.StateID(i))
		shape := "circle"
		if s.Accepting {
			shape = "doublecircle"
		}
		fmt.Fprintf(bw, "    S%d [label=%s, shape=%s];\n", s.ID, quote(s.Label), shape)
	}
	for i := 0; i < g.StateCount(); i++ {
		for _, e := range g.Edges(automaton.StateID(i)) {
			fmt.Fprintf(bw, "    S%d -> S%d [label=%s];\n", i, e.To, quote(EdgeLabel(e, g.AlphabetSize())))
		}
	}
	fmt.Fprintf(bw, "    _start [shape=point]; _start -> S%d;\n", g.Initial())
	fmt.Fprintln(bw, "}")
	return bw.Flush()
}

// EdgeLabel joins the symbols of e with commas.
func EdgeLabel(e automaton.Edge, alphabetSize int) string {
	if len(e.Symbols) > alphabetSize {
		return Wildcard
	}
	return strings.Join(e.Symbols, ",")
}

func quote(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)
	return `"` + r.Replace(s) + `"`
}

// quoteID leaves plain identifiers alone so the common case stays readable.
func quoteID(s string) string {
	if s == "" {
		return quote(s)
	}
	for i, r := range s {
		plain := r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (i > 0 && r >= '0' && r <= '9')
		if !plain {
			return quote(s)
		}
	}
	return s
}
