package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/y-lohse/ink/encode"
	"github.com/y-lohse/ink/format"
)

func load(cfg *LoadConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Load.Parse(cc, args)
	if err != nil {
		return err
	}
	for _, file := range inputs(args) {
		root, err := getTree(cfg.MainConfig, cc, file, cfg.inFormat(file, format.JSONFormat))
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		if err := encode.Encode(root, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
		if isTerminal(cc.Out) {
			if _, err := cc.Out.Write([]byte("\n")); err != nil {
				return err
			}
		}
	}
	return nil
}
