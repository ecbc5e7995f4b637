package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/y-lohse/ink/encode"
	"github.com/y-lohse/ink/format"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	for _, file := range inputs(args) {
		if err := viewFile(cfg, cc, cc.Out, file); err != nil {
			return err
		}
	}
	return nil
}

func viewFile(cfg *ViewConfig, cc *cli.Context, w io.Writer, file string) error {
	root, err := getTree(cfg.MainConfig, cc, file, cfg.inFormat(file, format.InkcFormat))
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", file, err)
	}
	if err := encode.Encode(root, w, cfg.encOpts(w)...); err != nil {
		return fmt.Errorf("error encoding %s: %w", file, err)
	}
	if _, err := w.Write([]byte("\n")); err != nil {
		return err
	}
	return nil
}
