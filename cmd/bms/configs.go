package main

import (
	"io"
	"os"
	"time"

	"github.com/bmsexpr/bms/encode"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='encode with color'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

// encOpts enables colors when asked to with -color, or when -color was not
// given and w is a terminal.
func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	var res []encode.EncodeOption
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type FmtConfig struct {
	*MainConfig

	Write bool `cli:"name=w desc='write result to (source) file instead of stdout'"`
	List  bool `cli:"name=l desc='list files whose formatting differs'"`
	Diff  bool `cli:"name=d desc='display diffs instead of rewriting files'"`

	Fmt *cli.Command
}

type GetConfig struct {
	*MainConfig

	Pos bool `cli:"name=pos desc='print the source position of each result'"`

	Get *cli.Command
}

type ListConfig struct {
	*MainConfig

	List *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Tree      bool   `cli:"name=tree desc='print a structural diff document instead of a line diff'"`
	Loop      string `cli:"name=loop desc='command to produce documents to diff in a loop'"`
	LoopEvery time.Duration
	LoopLim   int `cli:"name=loopLim desc='max number of times to loop'"`

	Diff *cli.Command
}

func (cfg *DiffConfig) mkLoopEvery() func(cc *cli.Context, a string) (any, error) {
	return func(_ *cli.Context, a string) (any, error) {
		d, err := time.ParseDuration(a)
		if err != nil {
			return nil, err
		}
		cfg.LoopEvery = d
		return d, nil
	}
}

type PatchConfig struct {
	*MainConfig

	Patch *cli.Command
}

type SampleConfig struct {
	*MainConfig

	Sample *cli.Command
}

type SampleSaveConfig struct {
	*MainConfig

	Save *cli.Command
}

type SampleLoadConfig struct {
	*MainConfig

	Load *cli.Command
}
