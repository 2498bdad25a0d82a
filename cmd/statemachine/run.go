package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"statemachine/internal/script"
)

func runScript(args []string, stdout io.Writer, logger *slog.Logger) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	outDir := fs.String("o", "", "write exports into this directory instead of stdout")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("run needs exactly one script file")
	}
	path := fs.Arg(0)

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	prog, err := script.Parse(filepath.Base(path), string(data))
	if err != nil {
		return err
	}

	ctx := &script.Context{
		Env:    script.NewEnvironment(),
		Out:    stdout,
		Logger: logger,
	}
	if *outDir != "" {
		if err := os.MkdirAll(*outDir, 0o755); err != nil {
			return err
		}
		ctx.OpenExport = exportFile(*outDir)
	}
	if err := prog.Exec(ctx); err != nil {
		return err
	}
	logger.Info("script finished", "file", path, "automata", len(ctx.Env.Names()))
	return nil
}

func exportFile(dir string) func(name, format string) (io.WriteCloser, error) {
	return func(name, format string) (io.WriteCloser, error) {
		ext := ".dot"
		if format == "table" {
			ext = ".txt"
		}
		f, err := os.Create(filepath.Join(dir, name+ext))
		if err != nil {
			return nil, fmt.Errorf("export %s: %w", name, err)
		}
		return f, nil
	}
}
