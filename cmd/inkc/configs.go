package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/y-lohse/ink/encode"
	"github.com/y-lohse/ink/format"
	"github.com/y-lohse/ink/manifest"
	"github.com/y-lohse/ink/parse"
)

type MainConfig struct {
	Color   bool   `cli:"name=color desc='encode with color'"`
	Config  string `cli:"name=config desc='manifest file (default: ink.toml found upward)'"`
	Verbose bool   `cli:"name=v aliases=verbose desc='log progress'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error
	Manifest *manifest.Manifest

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	return []parse.ParseOption{
		parse.ParseVersion(cfg.Manifest.Story.Version),
	}
}

// inFormat is the -I format, else the one named by the file suffix,
// else def.
func (cfg *MainConfig) inFormat(file string, def format.Format) format.Format {
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	if f, ok := format.FromSuffix(file); ok {
		return f
	}
	return def
}

func (cfg *MainConfig) outFormat() format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	return cfg.Manifest.Output.Format
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeVersion(cfg.Manifest.Story.Version),
	}
	if cfg.colored(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// colored reports whether output to w should carry terminal colors: -color
// wins, then the manifest, then whether w is a terminal.
func (cfg *MainConfig) colored(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name == "color" && opt.Value != nil {
			return false
		}
	}
	switch cfg.Manifest.Output.Color {
	case manifest.ColorAlways:
		return true
	case manifest.ColorNever:
		return false
	}
	return isTerminal(w)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type ViewConfig struct {
	*MainConfig
	View *cli.Command
}

type CheckConfig struct {
	*MainConfig
	Paths bool `cli:"name=paths desc='warn about targets that do not resolve'"`
	Lint  bool `cli:"name=lint desc='run the manifest lint queries'"`
	Check *cli.Command
}

type DumpConfig struct {
	*MainConfig
	Dump *cli.Command
}

type LoadConfig struct {
	*MainConfig
	Load *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Context int  `cli:"name=U desc='unchanged lines around each change, -1 for all'"`
	Reverse bool `cli:"name=r desc='reverse the diff'"`
	Diff    *cli.Command
}

type FindConfig struct {
	*MainConfig
	Expr  string `cli:"name=e desc='query expression'"`
	Count bool   `cli:"name=c desc='print only the number of matches'"`
	Find  *cli.Command
}

type OpsConfig struct {
	*MainConfig
	Ops *cli.Command
}
