package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/scott-cotton/cli"

	"github.com/y-lohse/ink/encode"
	"github.com/y-lohse/ink/ir"
)

func ops(cfg *OpsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Ops.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: ops takes no args, got %v", cli.ErrUsage, args)
	}
	tw := tabwriter.NewWriter(cc.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tGLYPH\tCOMMAND")
	for _, c := range ir.Commands() {
		glyph, ok := encode.Glyph(c)
		if !ok {
			glyph = "#" + ir.CommandName(c)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", ir.CommandName(c), glyph, c)
	}
	return tw.Flush()
}
