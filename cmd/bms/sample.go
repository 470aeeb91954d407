package main

import (
	"fmt"
	"os"

	"github.com/bmsexpr/bms/encode"
	"github.com/bmsexpr/bms/parse"
	"github.com/bmsexpr/bms/sample"

	"github.com/scott-cotton/cli"
)

// sampleMain dispatches to save or load, returning the subcommand's error
// to the caller rather than exiting.
func sampleMain(cfg *SampleConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Sample.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: sample requires a subcommand, save or load", cli.ErrUsage)
	}
	sub := cfg.Sample.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	return sub.Run(cc, args[1:])
}

func sampleSave(cfg *SampleSaveConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Save.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: save requires one argument, a file", cli.ErrUsage)
	}
	d, err := encode.ToBytes(sample.Default().Node())
	if err != nil {
		return err
	}
	if err := os.WriteFile(args[0], d, 0644); err != nil {
		return fmt.Errorf("error saving %s: %w", args[0], err)
	}
	cmdLog(cc).Info("saved", "file", args[0], "bytes", len(d))
	return nil
}

func sampleLoad(cfg *SampleLoadConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Load.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: load requires one argument, a file", cli.ErrUsage)
	}
	in, err := readArg(cc, args[0])
	if err != nil {
		return err
	}
	root, err := parse.Parse(in)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	doc, err := sample.Load(root)
	if err != nil {
		return fmt.Errorf("error loading %s: %w", args[0], err)
	}
	log := cmdLog(cc)
	for _, name := range doc.Names {
		log.Info("name", "value", name)
	}
	return encode.Encode(root, cc.Out, cfg.encOpts(cc.Out)...)
}
