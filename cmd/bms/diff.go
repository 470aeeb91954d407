package main

import (
	"fmt"
	"io"
	"os/exec"
	"time"

	"github.com/bmsexpr/bms/encode"
	"github.com/bmsexpr/bms/ir"
	"github.com/bmsexpr/bms/libdiff"
	"github.com/bmsexpr/bms/parse"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Loop != "" {
		return diffLoop(cfg, cc)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff (without -loop) requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := getDocFile(cc, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	b, err := getDocFile(cc, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	differs, err := diffInputs(cfg, cc, a, b, false)
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// diffLoop runs cfg.Loop repeatedly and prints the difference between
// consecutive outputs.
func diffLoop(cfg *DiffConfig, cc *cli.Context) error {
	var last *ir.Node
	ticker := time.NewTicker(cfg.LoopEvery)
	defer ticker.Stop()
	diffCount := 0
	for i := 0; i != cfg.LoopLim; i++ {
		cmd := exec.Command("sh", "-c", cfg.Loop)
		r, err := cmd.StdoutPipe()
		if err != nil {
			return fmt.Errorf("unable to create pipe for command %q: %w", cfg.Loop, err)
		}
		cmd.WaitDelay = cfg.LoopEvery
		if err := cmd.Start(); err != nil {
			return fmt.Errorf("unable to start %q: %w", cfg.Loop, err)
		}
		d, err := io.ReadAll(r)
		if err != nil {
			return err
		}
		if err := cmd.Wait(); err != nil {
			return fmt.Errorf("command %q exited with an error: %w", cfg.Loop, err)
		}
		next, err := parse.Parse(d)
		if err != nil {
			return fmt.Errorf("error decoding command output: %w", err)
		}
		if last != nil {
			differs, err := diffInputs(cfg, cc, last, next, diffCount > 0)
			if err != nil {
				return err
			}
			if differs {
				diffCount++
			}
		}
		last = next
		<-ticker.C
	}
	return nil
}

func diffInputs(cfg *DiffConfig, cc *cli.Context, a, b *ir.Node, sep bool) (bool, error) {
	w := cc.Out
	var out []byte
	if cfg.Tree {
		d := libdiff.Diff(a, b)
		if d == nil {
			return false, nil
		}
		var err error
		if out, err = encode.ToBytes(d, cfg.encOpts(w)...); err != nil {
			return false, fmt.Errorf("error encoding diff: %w", err)
		}
	} else {
		ab, err := encode.ToBytes(a)
		if err != nil {
			return false, err
		}
		bb, err := encode.ToBytes(b)
		if err != nil {
			return false, err
		}
		lines, differs := libdiff.Lines(string(ab), string(bb))
		if !differs {
			return false, nil
		}
		out = []byte(lines)
	}
	if sep {
		if _, err := w.Write([]byte("\n")); err != nil {
			return false, fmt.Errorf("unable to write separator: %w", err)
		}
	}
	if cfg.Loop != "" {
		when := time.Now().Format(time.RFC3339Nano)
		if _, err := w.Write([]byte("; difference found at " + when + "\n")); err != nil {
			return false, err
		}
	}
	if _, err := w.Write(out); err != nil {
		return false, err
	}
	return true, nil
}
