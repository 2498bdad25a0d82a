package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"

	"statemachine/internal/automaton"
	"statemachine/internal/lexer"
	"statemachine/internal/render"
)

var (
	identifierWords    = []string{"a", "ab", "_ab", "c_z", "__13", "e2e3", "id_3", lexer.Letters}
	nonIdentifierWords = []string{"", "1", "12", "1_z", "8qz", "0", "2", "3", "4", "5", "6", "7", "8", "9"}
)

// demoChecks mirrors which word sets each pipeline stage must accept.
var demoChecks = map[string]struct {
	keywords    bool
	identifiers bool
}{
	"identifiers":         {keywords: true, identifiers: true},
	"keywords_nfa":        {keywords: true},
	"keywords_dfa":        {keywords: true},
	"not_keywords":        {},
	"correct_identifiers": {identifiers: true},
	"minimal_identifiers": {identifiers: true},
}

func runDemo(args []string, stdout io.Writer, logger *slog.Logger) error {
	fs := flag.NewFlagSet("demo", flag.ContinueOnError)
	outDir := fs.String("o", "-", "output directory, - for stdout")
	format := fs.String("format", "dot", "export format: dot or table")
	png := fs.Bool("png", false, "render PNG files via dot -Tpng (needs -o)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *format != "dot" && *format != "table" {
		return fmt.Errorf("unknown format %q", *format)
	}
	if *png && *outDir == "-" {
		return errors.New("-png needs an output directory")
	}

	p, err := lexer.BuildPipeline(lexer.DefaultAlphabet(), lexer.Keywords...)
	if err != nil {
		return err
	}

	for _, st := range p.Stages() {
		logger.Info("stage", "name", st.Name, "kind", st.Machine.Kind(), "states", st.Machine.StateCount())
		if err := checkStage(st); err != nil {
			return err
		}

		var buf bytes.Buffer
		if *format == "table" {
			err = render.WriteTable(&buf, st.Machine)
		} else {
			err = render.WriteDOT(&buf, st.Machine, render.WithName(st.Name))
		}
		if err != nil {
			return err
		}

		if *outDir == "-" {
			fmt.Fprintf(stdout, "// %s\n", st.Title)
			if _, err := io.Copy(stdout, &buf); err != nil {
				return err
			}
			fmt.Fprintln(stdout, "--------------------------------------")
			continue
		}
		if err := writeStage(logger, *outDir, st.Name, *format, *png, buf.Bytes()); err != nil {
			return err
		}
	}
	return nil
}

func checkStage(st lexer.Stage) error {
	want := demoChecks[st.Name]
	for _, w := range lexer.Keywords {
		if err := expectWord(st, w, want.keywords); err != nil {
			return err
		}
	}
	if !want.identifiers {
		return nil
	}
	for _, w := range identifierWords {
		if err := expectWord(st, w, true); err != nil {
			return err
		}
	}
	for _, w := range nonIdentifierWords {
		if err := expectWord(st, w, false); err != nil {
			return err
		}
	}
	return nil
}

func expectWord(st lexer.Stage, word string, want bool) error {
	got, err := automaton.AcceptString(st.Machine, word)
	if err != nil {
		return fmt.Errorf("%s: %q: %w", st.Name, word, err)
	}
	if got != want {
		return fmt.Errorf("%s: accept(%q) = %v, want %v", st.Name, word, got, want)
	}
	return nil
}

func writeStage(logger *slog.Logger, dir, name, format string, png bool, data []byte) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	if png {
		path := filepath.Join(dir, name+".png")
		cmd := exec.Command("dot", "-Tpng", "-o", path)
		cmd.Stdin = bytes.NewReader(data)
		cmd.Stderr = os.Stderr
		if err := cmd.Run(); err != nil {
			return fmt.Errorf("dot failed: %w", err)
		}
		logger.Info("PNG written", "path", path)
		return nil
	}
	ext := ".dot"
	if format == "table" {
		ext = ".txt"
	}
	path := filepath.Join(dir, name+ext)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	logger.Info("export written", "path", path)
	return nil
}
