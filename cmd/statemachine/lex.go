package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/olekukonko/tablewriter"

	"statemachine/internal/lexer"
)

func runLex(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("lex", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("lex needs exactly one file, - for stdin")
	}

	var (
		data []byte
		err  error
	)
	if fs.Arg(0) == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(fs.Arg(0))
	}
	if err != nil {
		return err
	}

	c, err := lexer.NewClassifier(lexer.DefaultAlphabet(), lexer.Keywords...)
	if err != nil {
		return err
	}
	s, err := lexer.NewScanner(c)
	if err != nil {
		return err
	}
	toks, err := s.Tokenize(data)
	if err != nil {
		return err
	}
	return writeTokens(stdout, toks)
}

func writeTokens(w io.Writer, toks []lexer.Token) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Pos", "Kind", "Text"})
	for _, t := range toks {
		text := t.Text
		if t.Err != nil {
			text += " (" + t.Err.Error() + ")"
		}
		if err := table.Append([]string{fmt.Sprintf("%d:%d", t.Line, t.Column), t.Kind.String(), text}); err != nil {
			return err
		}
	}
	return table.Render()
}
