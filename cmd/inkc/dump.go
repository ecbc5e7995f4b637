package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/y-lohse/ink/docfmt"
	"github.com/y-lohse/ink/format"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	out := cfg.outFormat()
	if out.IsBinary() && isTerminal(cc.Out) {
		return fmt.Errorf("%w: refusing to write %s to a terminal, use -o", cli.ErrUsage, out)
	}
	for _, file := range inputs(args) {
		root, err := getTree(cfg.MainConfig, cc, file, cfg.inFormat(file, format.InkcFormat))
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		d, err := docfmt.Marshal(root, out)
		if err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
		if _, err := cc.Out.Write(d); err != nil {
			return err
		}
	}
	return nil
}
