package main

import (
	"bytes"
	"fmt"
	"maps"
	"slices"

	"github.com/scott-cotton/cli"

	"github.com/y-lohse/ink/encode"
	"github.com/y-lohse/ink/eval"
	"github.com/y-lohse/ink/ir"
	"github.com/y-lohse/ink/parse"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	queries, err := cfg.queries()
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	failed := 0
	for _, file := range inputs(args) {
		warnings, err := checkFile(cfg, cc, file, queries)
		if err != nil {
			theLog.Error("check failed", "file", file, "error", err)
			failed++
			continue
		}
		if warnings > 0 {
			failed++
			continue
		}
		if cfg.Verbose {
			theLog.Info("ok", "file", file)
		}
	}
	if failed > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

type namedQuery struct {
	name string
	q    *eval.Query
}

func (cfg *CheckConfig) queries() ([]namedQuery, error) {
	var res []namedQuery
	if cfg.Paths || cfg.Manifest.Check.Paths {
		q, err := eval.Compile(eval.Unresolved)
		if err != nil {
			return nil, err
		}
		res = append(res, namedQuery{name: "unresolved", q: q})
	}
	if !cfg.Lint {
		return res, nil
	}
	for _, name := range slices.Sorted(maps.Keys(cfg.Manifest.Lint)) {
		q, err := eval.Compile(cfg.Manifest.Lint[name])
		if err != nil {
			return nil, fmt.Errorf("lint rule %q: %w", name, err)
		}
		res = append(res, namedQuery{name: name, q: q})
	}
	return res, nil
}

// checkFile verifies file survives a decode and encode unchanged, then
// runs the queries over it. It returns the number of query matches.
func checkFile(cfg *CheckConfig, cc *cli.Context, file string, queries []namedQuery) (int, error) {
	d, err := readFile(cc, file)
	if err != nil {
		return 0, err
	}
	pos := map[*ir.Node]*parse.Pos{}
	root, err := parse.Parse(d, append(cfg.parseOpts(), parse.ParsePositions(pos))...)
	if err != nil {
		return 0, err
	}
	buf := &bytes.Buffer{}
	if err := encode.Encode(root, buf, encode.EncodeVersion(cfg.Manifest.Story.Version)); err != nil {
		return 0, err
	}
	if !bytes.Equal(buf.Bytes(), d) {
		return 0, fmt.Errorf("re-encoded text differs at offset %d", firstDiff(buf.Bytes(), d))
	}
	again, err := parse.Parse(buf.Bytes(), cfg.parseOpts()...)
	if err != nil {
		return 0, err
	}
	if !ir.Equal(root, again) {
		return 0, fmt.Errorf("tree changed after a round trip")
	}
	warnings := 0
	for _, nq := range queries {
		found, err := nq.q.Find(root)
		if err != nil {
			return 0, err
		}
		for _, n := range found {
			attrs := []any{"file", file, "path", n.Path(), "kind", n.Kind, "target", n.Target}
			if p := pos[n]; p != nil {
				line, col := p.LineCol()
				attrs = append(attrs, "line", line+1, "col", col+1)
			}
			theLog.Warn(nq.name, attrs...)
		}
		warnings += len(found)
	}
	return warnings, nil
}

func firstDiff(a, b []byte) int {
	for i := range min(len(a), len(b)) {
		if a[i] != b[i] {
			return i
		}
	}
	return min(len(a), len(b))
}
