package eval

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/y-lohse/ink/ir"
)

func story(t *testing.T) *ir.Node {
	t.Helper()
	knot := ir.NewContainer("knot1",
		ir.FromString("Hello"),
		ir.FromInt(0),
		ir.FromInt(2),
		ir.DivertTo("knot2"),
		ir.DivertToVariable("v"),
		ir.Choice("knot1.0", ir.ChoiceOnceOnly|ir.ChoiceHasCondition),
		ir.ReadCount("knot1"),
		ir.FromCommand(ir.End),
	).SetCountFlags(ir.CountVisits)
	root := ir.NewContainer("", ir.DivertTo("knot1"))
	if err := root.AddNamedContent(knot); err != nil {
		t.Fatal(err)
	}
	return root
}

func paths(nodes []*ir.Node) []string {
	res := []string{}
	for _, n := range nodes {
		res = append(res, n.Path())
	}
	return res
}

func TestFind(t *testing.T) {
	tests := []struct {
		src  string
		want []string
	}{
		{`kind == "Divert"`, []string{"0", "knot1.3", "knot1.4"}},
		{`kind == "Int" && truthy`, []string{"knot1.2"}},
		{`command == "en"`, []string{"knot1.7"}},
		{`kind == "Choice" && hasFlag(8)`, []string{"knot1.5"}},
		{`kind == "Container" && hasFlag(1)`, []string{"knot1"}},
		{`value`, []string{"knot1.0", "knot1.1", "knot1.2"}},
		{`readCount`, []string{"knot1.6"}},
		{`variable`, []string{"knot1.4"}},
		{`depth == 0`, []string{""}},
		{Unresolved, []string{"knot1.3"}},
		{`text startsWith "Hel"`, []string{"knot1.0"}},
		{`false`, []string{}},
	}
	root := story(t)
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			q, err := Compile(tt.src)
			if err != nil {
				t.Fatal(err)
			}
			got, err := q.Find(root)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, paths(got)); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestMatch(t *testing.T) {
	q, err := Compile(`kind == "Container"`)
	if err != nil {
		t.Fatal(err)
	}
	for _, tt := range []struct {
		n    *ir.Node
		want bool
	}{
		{ir.NewContainer(""), true},
		{ir.FromInt(1), false},
	} {
		got, err := q.Match(tt.n)
		if err != nil {
			t.Fatalf("%s: %v", tt.n.Kind, err)
		}
		if got != tt.want {
			t.Errorf("%s: got %t, want %t", tt.n.Kind, got, tt.want)
		}
	}
}

func TestCompileErrors(t *testing.T) {
	for _, src := range []string{`kind ==`, `nosuchvar == 1`, `1 + 2`} {
		if _, err := Compile(src); !errors.Is(err, ErrQuery) {
			t.Errorf("%q: got %v", src, err)
		}
	}
}
