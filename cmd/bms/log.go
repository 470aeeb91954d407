package main

import (
	"io"
	"log/slog"

	"github.com/scott-cotton/cli"
)

// cmdLog returns a logger on the command's error stream, leaving cc.Out to
// the documents a command prints. Time and the INFO level are omitted.
func cmdLog(cc *cli.Context) *slog.Logger {
	return newLog(cc.Err)
}

func newLog(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			switch {
			case a.Key == slog.TimeKey:
				return slog.Attr{}
			case a.Key == slog.LevelKey && a.Value.String() == slog.LevelInfo.String():
				return slog.Attr{}
			}
			return a
		},
	}))
}
