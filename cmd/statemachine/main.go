package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Version is set at build time via -ldflags.
var Version = "dev"

const usage = `usage: statemachine [-log-level level] [-log-format text|json] <command> [args]

commands:
  demo   build the keyword/identifier automata, check them and export them
  run    execute a scenario script
  lex    classify the words of a source file
  repl   classify words typed interactively
`

func main() {
	os.Exit(realMain(os.Args[1:], os.Stdout, os.Stderr))
}

func realMain(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("statemachine", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprint(stderr, usage) }
	logLevel := fs.String("log-level", getEnv("STATEMACHINE_LOG_LEVEL", "info"), "debug, info, warn or error")
	logFormat := fs.String("log-format", getEnv("STATEMACHINE_LOG_FORMAT", "text"), "text or json")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	logger := newLogger(stderr, *logLevel, *logFormat)
	slog.SetDefault(logger)

	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}
	cmd, rest := fs.Arg(0), fs.Args()[1:]

	var err error
	switch cmd {
	case "demo":
		err = runDemo(rest, stdout, logger)
	case "run":
		err = runScript(rest, stdout, logger)
	case "lex":
		err = runLex(rest, stdout)
	case "repl":
		err = runREPL()
	case "version":
		fmt.Fprintln(stdout, Version)
	default:
		fmt.Fprintf(stderr, "unknown command %q\n", cmd)
		fs.Usage()
		return 2
	}
	if err != nil {
		logger.Error(cmd+" failed", "error", err)
		return 1
	}
	return 0
}

func newLogger(w io.Writer, level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLogLevel(level)}
	if strings.EqualFold(format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
