package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/y-lohse/ink/format"
	"github.com/y-lohse/ink/libdiff"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	if cfg.Reverse {
		args[0], args[1] = args[1], args[0]
	}
	a, err := getTree(cfg.MainConfig, cc, args[0], cfg.inFormat(args[0], format.InkcFormat))
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	b, err := getTree(cfg.MainConfig, cc, args[1], cfg.inFormat(args[1], format.InkcFormat))
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	lines := libdiff.Diff(a, b)
	if !libdiff.Changed(lines) {
		return nil
	}
	fmt.Fprintf(cc.Out, "--- %s\n+++ %s\n", args[0], args[1])
	if err := libdiff.Write(cc.Out, lines, cfg.Context, cfg.colored(cc.Out)); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}
