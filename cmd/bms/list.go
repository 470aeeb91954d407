package main

import (
	"fmt"

	"github.com/bmsexpr/bms/encode"

	"github.com/scott-cotton/cli"
)

func list(cfg *ListConfig, cc *cli.Context, args []string) error {
	args, err := cfg.List.Parse(cc, args)
	if err != nil {
		cfg.List.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: list requires one argument, a list name", cli.ErrUsage)
	}
	name := args[0]
	for _, file := range inputs(args[1:]) {
		doc, err := getDocFile(cc, file)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		if !doc.IsList() {
			return fmt.Errorf("error listing %s: document root is a %s", file, doc.Type())
		}
		for _, child := range doc.ChildrenNamed(name) {
			if err := encode.Encode(child, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
				return fmt.Errorf("error encoding result: %w", err)
			}
		}
	}
	return nil
}
