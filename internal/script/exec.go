package script

import (
	"errors"
	"fmt"
	"io"

	"statemachine/internal/alphabet"
	"statemachine/internal/automaton"
	"statemachine/internal/render"
)

var (
	ErrUndefined   = errors.New("undefined")
	ErrRedefined   = errors.New("already defined")
	ErrKind        = errors.New("wrong automaton kind")
	ErrArguments   = errors.New("wrong number of arguments")
	ErrExpectation = errors.New("expectation failed")
)

// Exec runs the statements in order and stops at the first error.
func (s *Script) Exec(ctx *Context) error {
	if ctx.Env == nil {
		ctx.Env = NewEnvironment()
	}
	for _, stmt := range s.Statements {
		if err := stmt.Exec(ctx); err != nil {
			return fmt.Errorf("%s: %w", stmt.Pos, err)
		}
	}
	return nil
}

func (s *Statement) Exec(ctx *Context) error {
	switch {
	case s.Alphabet != nil:
		a, err := alphabet.FromString(s.Alphabet.Symbols)
		if err != nil {
			return err
		}
		ctx.logger().Debug("alphabet", "name", s.Alphabet.Name, "size", a.Size())
		return ctx.Env.SetAlphabet(s.Alphabet.Name, a)
	case s.Machine != nil:
		m, err := s.Machine.build(ctx.Env)
		if err != nil {
			return fmt.Errorf("%s %s: %w", s.Machine.Kind, s.Machine.Name, err)
		}
		ctx.logger().Debug("declare", "name", s.Machine.Name, "kind", m.Kind(), "states", m.StateCount())
		return ctx.Env.SetMachine(s.Machine.Name, m)
	case s.Let != nil:
		m, err := s.Let.eval(ctx.Env)
		if err != nil {
			return fmt.Errorf("let %s: %w", s.Let.Name, err)
		}
		ctx.logger().Debug("let", "name", s.Let.Name, "op", s.Let.Op, "states", m.StateCount())
		return ctx.Env.SetMachine(s.Let.Name, m)
	case s.Expect != nil:
		return s.Expect.check(ctx)
	case s.Export != nil:
		return s.Export.write(ctx)
	}
	return nil
}

func (d *MachineDecl) build(env *Environment) (Machine, error) {
	a, err := env.Alphabet(d.Alphabet)
	if err != nil {
		return nil, err
	}
	if d.Kind == "dfa" {
		return d.buildDFA(a)
	}
	return d.buildNFA(a)
}

// buildDFA declares every state first so edges and defaults may refer to
// states declared further down. Defaults fill a state's whole row before any
// edge is applied, so an edge always overrides its state's default whatever
// the statement order.
func (d *MachineDecl) buildDFA(a *alphabet.Alphabet[rune]) (Machine, error) {
	b := automaton.NewDFABuilder(a)
	ids := map[string]automaton.StateID{}
	lookup := stateLookup(ids)
	for _, st := range d.Body {
		if st.Words != nil {
			return nil, fmt.Errorf("%s: %w: words need an nfa", st.Pos, ErrKind)
		}
		if st.State != nil {
			if _, dup := ids[st.State.Name]; dup {
				return nil, fmt.Errorf("%s: %w: state %s", st.Pos, ErrRedefined, st.State.Name)
			}
			ids[st.State.Name] = b.AddState(st.State.has("accepting"), st.State.Name)
		}
	}
	for _, st := range d.Body {
		if st.State == nil || st.State.Default == "" {
			continue
		}
		to, err := lookup(st.State.Default)
		if err == nil {
			err = b.SetEdges(ids[st.State.Name], a.Symbols(), to)
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", st.Pos, err)
		}
	}
	for _, st := range d.Body {
		if st.Edge == nil {
			continue
		}
		from, err := lookup(st.Edge.From)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", st.Pos, err)
		}
		to, err := lookup(st.Edge.To)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", st.Pos, err)
		}
		if err := b.SetEdges(from, []rune(st.Edge.Symbols), to); err != nil {
			return nil, fmt.Errorf("%s: %w", st.Pos, err)
		}
	}
	if err := setInitial(d.Body, ids, b.SetInitialState); err != nil {
		return nil, err
	}
	dfa, err := b.Build()
	if err != nil {
		return nil, err
	}
	return dfa, nil
}

func (d *MachineDecl) buildNFA(a *alphabet.Alphabet[rune]) (Machine, error) {
	b := automaton.NewNFABuilder(a)
	ids := map[string]automaton.StateID{}
	lookup := stateLookup(ids)
	for _, st := range d.Body {
		if st.State == nil {
			continue
		}
		if st.State.Default != "" {
			return nil, fmt.Errorf("%s: %w: default edges need a dfa", st.Pos, ErrKind)
		}
		if _, dup := ids[st.State.Name]; dup {
			return nil, fmt.Errorf("%s: %w: state %s", st.Pos, ErrRedefined, st.State.Name)
		}
		ids[st.State.Name] = b.AddState(st.State.has("accepting"), st.State.Name)
	}
	if err := setInitial(d.Body, ids, b.SetInitialState); err != nil {
		return nil, err
	}
	for _, st := range d.Body {
		var err error
		switch {
		case st.Edge != nil:
			var from, to automaton.StateID
			if from, err = lookup(st.Edge.From); err != nil {
				break
			}
			if to, err = lookup(st.Edge.To); err != nil {
				break
			}
			for _, r := range st.Edge.Symbols {
				if err = b.AddEdge(from, r, to); err != nil {
					break
				}
			}
		case st.Words != nil:
			for _, w := range st.Words.Words {
				if err = b.AddWord([]rune(w)); err != nil {
					err = fmt.Errorf("word %q: %w", w, err)
					break
				}
			}
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", st.Pos, err)
		}
	}
	nfa, err := b.Build()
	if err != nil {
		return nil, err
	}
	return nfa, nil
}

func stateLookup(ids map[string]automaton.StateID) func(string) (automaton.StateID, error) {
	return func(name string) (automaton.StateID, error) {
		id, ok := ids[name]
		if !ok {
			return -1, fmt.Errorf("%w state %s", ErrUndefined, name)
		}
		return id, nil
	}
}

func setInitial(body []*MachineStmt, ids map[string]automaton.StateID, set func(automaton.StateID) error) error {
	for _, st := range body {
		if st.State != nil && st.State.has("initial") {
			if err := set(ids[st.State.Name]); err != nil {
				return fmt.Errorf("%s: %w", st.Pos, err)
			}
		}
	}
	return nil
}

func (l *Let) eval(env *Environment) (Machine, error) {
	want := 1
	if l.Op == "intersect" || l.Op == "union" {
		want = 2
	}
	if len(l.Args) != want {
		return nil, fmt.Errorf("%w: %s takes %d, got %d", ErrArguments, l.Op, want, len(l.Args))
	}

	if l.Op == "determinize" {
		n, err := env.NFA(l.Args[0])
		if err != nil {
			return nil, err
		}
		return n.Determinize(), nil
	}

	d, err := env.DFA(l.Args[0])
	if err != nil {
		return nil, err
	}
	switch l.Op {
	case "minimize":
		return d.Minimize(), nil
	case "invert":
		return d.Invert(), nil
	}
	other, err := env.DFA(l.Args[1])
	if err != nil {
		return nil, err
	}
	var out *automaton.DFA[rune]
	if l.Op == "union" {
		out, err = d.Union(other)
	} else {
		out, err = d.Intersect(other)
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (e *Expect) check(ctx *Context) error {
	m, err := ctx.Env.Machine(e.Machine)
	if err != nil {
		return err
	}
	want := e.Verdict == "accepts"
	for _, w := range e.Words {
		got, err := automaton.AcceptString(m, w)
		if err != nil {
			return fmt.Errorf("%s on %q: %w", e.Machine, w, err)
		}
		if got != want {
			return fmt.Errorf("%w: %s %s %q", ErrExpectation, e.Machine, e.Verdict, w)
		}
	}
	ctx.logger().Debug("expect", "name", e.Machine, "verdict", e.Verdict, "words", len(e.Words))
	return nil
}

func (e *Export) write(ctx *Context) error {
	m, err := ctx.Env.Machine(e.Machine)
	if err != nil {
		return err
	}
	format := e.Format
	if format == "" {
		format = "dot"
	}

	ctx.logger().Info("export", "name", e.Machine, "format", format, "states", m.StateCount())
	if ctx.OpenExport == nil {
		w := ctx.Out
		if w == nil {
			w = io.Discard
		}
		return writeMachine(w, e.Machine, format, m)
	}
	wc, err := ctx.OpenExport(e.Machine, format)
	if err != nil {
		return err
	}
	if err := writeMachine(wc, e.Machine, format, m); err != nil {
		wc.Close()
		return err
	}
	return wc.Close()
}

func writeMachine(w io.Writer, name, format string, m Machine) error {
	if format == "table" {
		return render.WriteTable(w, m)
	}
	return render.WriteDOT(w, m, render.WithName(name))
}
