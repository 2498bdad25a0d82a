package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"

	"statemachine/internal/automaton"
	"statemachine/internal/lexer"
)

type verdict struct {
	stage    string
	accepted bool
	err      error
}

// evaluate runs word through every pipeline stage.
func evaluate(stages []lexer.Stage, word string) []verdict {
	out := make([]verdict, 0, len(stages))
	for _, st := range stages {
		ok, err := automaton.AcceptString(st.Machine, word)
		out = append(out, verdict{stage: st.Name, accepted: ok, err: err})
	}
	return out
}

func runREPL() error {
	a := lexer.DefaultAlphabet()
	p, err := lexer.BuildPipeline(a, lexer.Keywords...)
	if err != nil {
		return err
	}
	c, err := lexer.NewClassifier(a, lexer.Keywords...)
	if err != nil {
		return err
	}
	stages := p.Stages()

	for {
		prompt := promptui.Prompt{
			Label: "Word to classify (exit to quit)",
		}
		input, err := prompt.Run()
		if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if input == "exit" {
			return nil
		}

		fmt.Println(promptui.Styler(promptui.FGCyan)("kind: " + c.Classify(input).String()))
		for _, v := range evaluate(stages, input) {
			switch {
			case v.err != nil:
				fmt.Println(promptui.Styler(promptui.FGYellow)(v.stage + ": " + v.err.Error()))
			case v.accepted:
				fmt.Println(promptui.Styler(promptui.FGGreen)(v.stage + ": accepted"))
			default:
				fmt.Println(promptui.Styler(promptui.FGRed)(v.stage + ": rejected"))
			}
		}
		fmt.Println(promptui.Styler(promptui.FGMagenta)(strings.Repeat("-", 30)))
	}
}
