// Package libdiff compares instruction trees by their outlines.
package libdiff

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/y-lohse/ink/ir"
)

type Op int

const (
	Equal Op = iota
	Insert
	Delete
)

func (o Op) String() string {
	switch o {
	case Insert:
		return "+"
	case Delete:
		return "-"
	default:
		return " "
	}
}

// Line is one outline line of a diff.
type Line struct {
	Op   Op
	Text string
}

// Diff compares the outlines of from and to line by line. It returns nil
// when the trees are structurally equal.
func Diff(from, to *ir.Node) []Line {
	if ir.Equal(from, to) {
		return nil
	}
	return DiffLines(Outline(from), Outline(to))
}

func DiffLines(from, to []string) []Line {
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(joinLines(from), joinLines(to))
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCharsToLines(diffs, lines)
	var res []Line
	for _, d := range diffs {
		op := Equal
		switch d.Type {
		case diffpatch.DiffInsert:
			op = Insert
		case diffpatch.DiffDelete:
			op = Delete
		}
		for _, l := range strings.SplitAfter(d.Text, "\n") {
			if l == "" {
				continue
			}
			res = append(res, Line{Op: op, Text: strings.TrimSuffix(l, "\n")})
		}
	}
	return res
}

// Changed reports whether any line was inserted or deleted.
func Changed(lines []Line) bool {
	for _, l := range lines {
		if l.Op != Equal {
			return true
		}
	}
	return false
}

// Write prints lines with their op prefix. Unchanged lines more than
// context lines away from a change are elided; a negative context keeps
// every line.
func Write(w io.Writer, lines []Line, context int, colored bool) error {
	keep := make([]bool, len(lines))
	for i, l := range lines {
		if context < 0 {
			keep[i] = true
			continue
		}
		if l.Op == Equal {
			continue
		}
		for j := max(0, i-context); j <= min(len(lines)-1, i+context); j++ {
			keep[j] = true
		}
	}
	paint := map[Op]func(a ...any) string{
		Equal:  fmt.Sprint,
		Insert: fmt.Sprint,
		Delete: fmt.Sprint,
	}
	if colored {
		paint[Insert] = color.New(color.FgGreen).SprintFunc()
		paint[Delete] = color.New(color.FgRed).SprintFunc()
	}
	skipped := false
	for i, l := range lines {
		if !keep[i] {
			skipped = true
			continue
		}
		if skipped {
			if _, err := fmt.Fprintln(w, "@@"); err != nil {
				return err
			}
			skipped = false
		}
		if _, err := fmt.Fprintln(w, paint[l.Op](l.Op.String()+" "+l.Text)); err != nil {
			return err
		}
	}
	return nil
}

func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
