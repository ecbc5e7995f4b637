package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/y-lohse/ink/docfmt"
	"github.com/y-lohse/ink/format"
	"github.com/y-lohse/ink/ir"
	"github.com/y-lohse/ink/parse"
)

func readFile(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

// getTree reads a tree from path in format f.
func getTree(cfg *MainConfig, cc *cli.Context, path string, f format.Format) (*ir.Node, error) {
	d, err := readFile(cc, path)
	if err != nil {
		return nil, err
	}
	if f.IsInkc() {
		return parse.Parse(d, cfg.parseOpts()...)
	}
	return docfmt.Unmarshal(d, f)
}

// inputs defaults to stdin.
func inputs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}
