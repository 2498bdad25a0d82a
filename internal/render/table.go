package render

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"statemachine/internal/automaton"
)

// WriteTable prints the transition table of g, one row per coalesced edge.
// The initial state is marked with "->" and accepting states with "*".
func WriteTable(w io.Writer, g automaton.Graph) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"State", "Label", "Symbols", "Target"})

	for i := 0; i < g.StateCount(); i++ {
		id := automaton.StateID(i)
		s := g.State(id)
		name := stateName(g, s)
		edges := g.Edges(id)
		if len(edges) == 0 {
			if err := table.Append([]string{name, s.Label, "", ""}); err != nil {
				return err
			}
			continue
		}
		for _, e := range edges {
			row := []string{name, s.Label, EdgeLabel(e, g.AlphabetSize()), fmt.Sprintf("S%d", e.To)}
			if err := table.Append(row); err != nil {
				return err
			}
		}
	}
	return table.Render()
}

func stateName(g automaton.Graph, s automaton.StateInfo) string {
	name := fmt.Sprintf("S%d", s.ID)
	if s.Accepting {
		name += "*"
	}
	if s.ID == g.Initial() {
		name = "->" + name
	}
	return name
}
