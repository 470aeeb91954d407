package main

import (
	"time"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "bms").
		WithSynopsis("bms [opts] command [opts]").
		WithDescription("bms is a tool for working with bms s-expression documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return bmsMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			FmtCommand(cfg),
			GetCommand(cfg),
			ListCommand(cfg),
			DiffCommand(cfg),
			PatchCommand(cfg),
			SampleCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.View, "view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("view documents in canonical form, in color on a terminal").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
}

func FmtCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FmtConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Fmt, "fmt").
		WithAliases("f").
		WithSynopsis("fmt [-w] [-l] [-d] [files]").
		WithDescription(fmtDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return format(cfg, cc, args)
		})
}

const fmtDescription = `fmt rewrites documents in canonical form.

Without flags, the canonical form of each file is written to the output.
With -l, the names of files which are not canonical are listed.
With -d, a line diff from each file to its canonical form is shown.
With -w, files which are not canonical are rewritten in place.`

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Get, "get").
		WithAliases("g", "ge").
		WithSynopsis("get [-pos] <path> [files]").
		WithDescription(getDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
}

const getDescription = `get prints the node at a path in each file.

A path is a '/' separated list of segments. A segment is either the name of
a child list, selecting the first such list, or '@N', selecting the N'th
child which is not a line break.`

func ListCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ListConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.List, "list").
		WithAliases("l").
		WithSynopsis("list <name> [files]").
		WithDescription("list the child lists of a document root with a given name").
		WithRun(func(cc *cli.Context, args []string) error {
			return list(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg, LoopEvery: time.Second, LoopLim: -1}
	loopEveryOpt := &cli.Opt{
		Name:        "loopEvery",
		Description: "interval between loop runs",
		Type:        cli.NamedFuncOpt(cli.FuncOpt(cfg.mkLoopEvery()), "(duration)"),
	}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, loopEveryOpt)

	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d", "di").
		WithOpts(opts...).
		WithSynopsis("diff [-tree] a b or diff -loop <cmd>").
		WithDescription("diff documents, exiting with status 1 when they differ").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Patch, "patch").
		WithAliases("p", "pa").
		WithSynopsis("patch <diff> <file>").
		WithDescription("apply a structural diff, as printed by diff -tree, to a document").
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
}

func SampleCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SampleConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Sample, "sample").
		WithSynopsis("sample <subcommand>").
		WithDescription("save and load the sample document").
		WithRun(func(cc *cli.Context, args []string) error {
			return sampleMain(cfg, cc, args)
		}).
		WithSubs(
			SampleSaveCommand(cfg.MainConfig),
			SampleLoadCommand(cfg.MainConfig))
}

func SampleSaveCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SampleSaveConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Save, "save").
		WithSynopsis("save <file>").
		WithDescription("write the sample document to a file").
		WithRun(func(cc *cli.Context, args []string) error {
			return sampleSave(cfg, cc, args)
		})
}

func SampleLoadCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SampleLoadConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Load, "load").
		WithSynopsis("load <file>").
		WithDescription("read a sample document, logging its names").
		WithRun(func(cc *cli.Context, args []string) error {
			return sampleLoad(cfg, cc, args)
		})
}
