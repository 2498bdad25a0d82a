package script

import (
	"io"
	"log/slog"
)

// Context carries everything a running script touches.
type Context struct {
	Env    *Environment
	Out    io.Writer
	Logger *slog.Logger
	// OpenExport, when set, receives each export instead of Out.
	OpenExport func(name, format string) (io.WriteCloser, error)
}

func (ctx *Context) logger() *slog.Logger {
	if ctx.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return ctx.Logger
}
