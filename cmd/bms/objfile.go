package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bmsexpr/bms/ir"
	"github.com/bmsexpr/bms/parse"

	"github.com/scott-cotton/cli"
)

// readArg reads all of path, or of the command input when path is "-".
func readArg(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

func getDocFile(cc *cli.Context, path string, opts ...parse.ParseOption) (*ir.Node, error) {
	d, err := readArg(cc, path)
	if err != nil {
		return nil, err
	}
	return parse.Parse(d, opts...)
}

// inputs returns args, or "-" for the command input when args is empty.
func inputs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}
