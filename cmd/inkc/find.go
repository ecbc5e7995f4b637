package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/y-lohse/ink/eval"
	"github.com/y-lohse/ink/format"
	"github.com/y-lohse/ink/libdiff"
)

func find(cfg *FindConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Find.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Expr == "" {
		return fmt.Errorf("%w: -e is required", cli.ErrUsage)
	}
	q, err := eval.Compile(cfg.Expr)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	files := inputs(args)
	total := 0
	for _, file := range files {
		root, err := getTree(cfg.MainConfig, cc, file, cfg.inFormat(file, format.InkcFormat))
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		found, err := q.Find(root)
		if err != nil {
			return err
		}
		total += len(found)
		if cfg.Count {
			continue
		}
		for _, n := range found {
			path := n.Path()
			if path == "" {
				path = libdiff.RootPath
			}
			if len(files) > 1 {
				path = file + ":" + path
			}
			fmt.Fprintf(cc.Out, "%s\t%s\n", path, libdiff.Summary(n))
		}
	}
	if cfg.Count {
		fmt.Fprintln(cc.Out, total)
	}
	return nil
}
