package main

import (
	"fmt"

	"github.com/bmsexpr/bms/encode"
	"github.com/bmsexpr/bms/ir"
	"github.com/bmsexpr/bms/parse"
	"github.com/bmsexpr/bms/token"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a path", cli.ErrUsage)
	}
	path := args[0]
	for _, file := range inputs(args[1:]) {
		if err := getFile(cfg, cc, file, path); err != nil {
			return fmt.Errorf("error querying %s with %s: %w", file, path, err)
		}
	}
	return nil
}

func getFile(cfg *GetConfig, cc *cli.Context, file, path string) error {
	positions := map[*ir.Node]token.Pos{}
	doc, err := getDocFile(cc, file, parse.ParsePositions(positions))
	if err != nil {
		return err
	}
	res, err := doc.Lookup(path)
	if err != nil {
		return err
	}
	if cfg.Pos {
		pos := positions[res]
		fmt.Fprintf(cc.Out, "%s:%d:%d: ", file, pos.Line+1, pos.Col+1)
	}
	return encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...)
}
