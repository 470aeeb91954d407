package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/bmsexpr/bms/encode"
	"github.com/bmsexpr/bms/libdiff"
	"github.com/bmsexpr/bms/parse"

	"github.com/scott-cotton/cli"
)

func format(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		cfg.Fmt.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Write && len(args) == 0 {
		return fmt.Errorf("%w: cannot use -w with standard input", cli.ErrUsage)
	}
	for _, file := range inputs(args) {
		if err := formatFile(cfg, cc, file); err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
	}
	return nil
}

func formatFile(cfg *FmtConfig, cc *cli.Context, file string) error {
	in, err := readArg(cc, file)
	if err != nil {
		return err
	}
	doc, err := parse.Parse(in)
	if err != nil {
		return err
	}
	out, err := encode.ToBytes(doc)
	if err != nil {
		return err
	}
	changed := !bytes.Equal(in, out)
	if !cfg.List && !cfg.Diff && !cfg.Write {
		return encode.Encode(doc, cc.Out, cfg.encOpts(cc.Out)...)
	}
	if !changed {
		return nil
	}
	if cfg.List {
		fmt.Fprintln(cc.Out, file)
	}
	if cfg.Diff {
		d, _ := libdiff.Lines(string(in), string(out))
		fmt.Fprintf(cc.Out, "--- %s\n+++ %s (canonical)\n%s", file, file, d)
	}
	if cfg.Write {
		info, err := os.Stat(file)
		if err != nil {
			return err
		}
		if err := os.WriteFile(file, out, info.Mode().Perm()); err != nil {
			return err
		}
		cmdLog(cc).Info("rewrote", "file", file, "bytes", len(out))
	}
	return nil
}
