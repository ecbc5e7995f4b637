package parse

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/y-lohse/ink/encode"
	"github.com/y-lohse/ink/ir"
)

func story(t *testing.T) *ir.Node {
	t.Helper()
	knot1 := ir.NewContainer("knot1",
		ir.FromString("Hello"),
		ir.FromGlue(ir.GlueBidirectional),
		ir.DivertTo("knot2"),
		ir.FromCommand(ir.End),
	)
	knot2 := ir.NewContainer("knot2",
		ir.FromCommand(ir.EvalStart),
		ir.FromInt(3),
		ir.FromFloat(3),
		ir.FromNativeCall("+"),
		ir.Assign("x", false, true),
		ir.FromCommand(ir.EvalEnd),
		ir.FromCommand(ir.BeginString),
		ir.FromString("Hi "),
		ir.FromCommand(ir.EndString),
		ir.NewContainer("stitch",
			ir.VarRef("x"),
			ir.ReadCount("knot1"),
			ir.Choice("knot1", 0),
			ir.Choice("knot2.stitch", ir.ChoiceOnceOnly|ir.ChoiceHasCondition),
			ir.FromBranch(ir.DivertTo("knot1"), ir.DivertToVariable("dest").WithPush(ir.PushTunnel)),
			ir.FromBranch(nil, nil),
			ir.DivertTo("ext").WithExternal(2).WithPush(ir.PushFunction),
			ir.Newline(),
			ir.NewContainer("",
				ir.NewContainer("deep", ir.FromFloat(-0.25), ir.FromInt(-7)).SetCountFlags(ir.CountTurns),
			),
		).SetCountFlags(ir.CountVisits|ir.CountStartOnly),
	)
	root := ir.NewContainer("", ir.DivertTo("knot1"), ir.FromCommand(ir.Done))
	for _, k := range []*ir.Node{knot2, knot1} {
		if err := root.AddNamedContent(k); err != nil {
			t.Fatal(err)
		}
	}
	for _, c := range ir.Commands() {
		root.AddContent(ir.FromCommand(c))
	}
	return root
}

func docOf(t *testing.T, n *ir.Node) *ir.Doc {
	t.Helper()
	d, err := n.ToDoc()
	if err != nil {
		t.Fatal(err)
	}
	return d
}

// fragment decodes frag as the content of an unnamed root container.
func fragment(frag string) (*ir.Node, error) {
	root, err := ParseString("inkc 1\n{" + frag + "}")
	if err != nil {
		return nil, err
	}
	if len(root.Content) != 1 {
		return nil, errors.New("fragment did not decode to one node")
	}
	return root.Content[0], nil
}

func TestRoundTrip(t *testing.T) {
	want := story(t)
	text := encode.MustString(want)
	got, err := ParseString(text)
	if err != nil {
		t.Fatalf("parse %q: %v", text, err)
	}
	if diff := cmp.Diff(docOf(t, want), docOf(t, got)); diff != "" {
		t.Errorf("round trip (-want +got):\n%s", diff)
	}
	if !ir.Equal(want, got) {
		t.Error("trees not equal")
	}
	if again := encode.MustString(got); again != text {
		t.Errorf("re-encoded text differs:\n%q\n%q", text, again)
	}
}

func TestRoundTripParents(t *testing.T) {
	root, err := ParseString(encode.MustString(story(t)))
	if err != nil {
		t.Fatal(err)
	}
	err = root.Visit(func(n *ir.Node, isPost bool) (bool, error) {
		if isPost || n == root {
			return true, nil
		}
		if n.Parent == nil {
			t.Errorf("node at %q has no parent", n.Path())
		}
		return true, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	n, err := root.GetPath("knot2.stitch.8.deep")
	if err != nil {
		t.Fatal(err)
	}
	if n.Flags != ir.CountTurns || len(n.Content) != 2 {
		t.Errorf("got %+v", n)
	}
}

func TestKnotScenario(t *testing.T) {
	text := "inkc 1\n{'knot1'\"Hello\"Gb>knot2 >#en}"
	got, err := ParseString(text)
	if err != nil {
		t.Fatal(err)
	}
	want := ir.NewContainer("knot1",
		ir.FromString("Hello"),
		ir.FromGlue(ir.GlueBidirectional),
		ir.DivertTo("knot2"),
		ir.FromCommand(ir.End),
	)
	if diff := cmp.Diff(docOf(t, want), docOf(t, got)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if encode.MustString(got) != text {
		t.Errorf("re-encoded %q", encode.MustString(got))
	}
}

func TestParseNodes(t *testing.T) {
	tests := []struct {
		in   string
		want *ir.Node
	}{
		{"3 ", ir.FromInt(3)},
		{"-4 ", ir.FromInt(-4)},
		{"3.5 ", ir.FromFloat(3.5)},
		{"3.0 ", ir.FromFloat(3)},
		{"1e+21 ", ir.FromFloat(1e21)},
		{"-0.5 ", ir.FromFloat(-0.5)},
		{`"Hello"`, ir.FromString("Hello")},
		{`""`, ir.FromString("")},
		{"\"a\nb\"", ir.FromString("a\nb")},
		{"\n", ir.Newline()},
		{"Gb", ir.FromGlue(ir.GlueBidirectional)},
		{"G<", ir.FromGlue(ir.GlueLeft)},
		{"G>", ir.FromGlue(ir.GlueRight)},
		{"(", ir.FromCommand(ir.EvalStart)},
		{")", ir.FromCommand(ir.EvalEnd)},
		{"«", ir.FromCommand(ir.BeginString)},
		{"»", ir.FromCommand(ir.EndString)},
		{"#ev", ir.FromCommand(ir.EvalStart)},
		{"#/s", ir.FromCommand(ir.EndString)},
		{"#>>", ir.FromCommand(ir.PopTunnel)},
		{"#en", ir.FromCommand(ir.End)},
		{".== ", ir.FromNativeCall("==")},
		{">knot2 >", ir.DivertTo("knot2")},
		{">?dest >", ir.DivertToVariable("dest")},
		{">fn f>", ir.DivertTo("fn").WithPush(ir.PushFunction)},
		{">?t t>", ir.DivertToVariable("t").WithPush(ir.PushTunnel)},
		{">ext x0 >", ir.DivertTo("ext").WithExternal(0)},
		{">ext x3 f>", ir.DivertTo("ext").WithExternal(3).WithPush(ir.PushFunction)},
		{"= x ", ir.Assign("x", true, true)},
		{"=t x ", ir.Assign("x", false, true)},
		{"=r x ", ir.Assign("x", true, false)},
		{"=tr x ", ir.Assign("x", false, false)},
		{"?x ", ir.VarRef("x")},
		{"?&knot1.0 ", ir.ReadCount("knot1.0")},
		{"* knot1 ", ir.Choice("knot1", 0)},
		{"*5 knot1 ", ir.Choice("knot1", 5)},
		{"Bt>a >f>?b > ", ir.FromBranch(ir.DivertTo("a"), ir.DivertToVariable("b"))},
		{"Bf>b > ", ir.FromBranch(nil, ir.DivertTo("b"))},
		{"B ", ir.FromBranch(nil, nil)},
		{"{'c'f5 }", ir.NewContainer("c").SetCountFlags(5)},
		{"{[{'a'}]}", func() *ir.Node {
			c := ir.NewContainer("")
			_ = c.AddNamedContent(ir.NewContainer("a"))
			return c
		}()},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := fragment(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(docOf(t, tt.want), docOf(t, got)); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestNumericKinds(t *testing.T) {
	decode := func(n *ir.Node) *ir.Node {
		t.Helper()
		s := encode.MustString(ir.NewContainer("", n), encode.EncodeHeader(false))
		got, err := fragment(s[1 : len(s)-1])
		if err != nil {
			t.Fatal(err)
		}
		return got
	}
	if i := decode(ir.FromInt(3)); i.Kind != ir.IntKind || i.Int != 3 {
		t.Errorf("int decoded as %s", i.Kind)
	}
	if f := decode(ir.FromFloat(3)); f.Kind != ir.FloatKind || f.Float != 3 {
		t.Errorf("float decoded as %s", f.Kind)
	}
}

func TestFlagsEncoding(t *testing.T) {
	none := encode.MustString(ir.NewContainer("c"), encode.EncodeHeader(false))
	if strings.Contains(none, "f") {
		t.Errorf("zero flags written: %q", none)
	}
	got, err := fragment("{'c'}")
	if err != nil {
		t.Fatal(err)
	}
	if got.Flags != 0 {
		t.Errorf("flags %d", got.Flags)
	}
	got, err = fragment("*5 k ")
	if err != nil {
		t.Fatal(err)
	}
	if got.Flags != 5 {
		t.Errorf("choice flags %d", got.Flags)
	}
}

func TestVersionGate(t *testing.T) {
	for _, text := range []string{"inkc 2\n{}", "inkc 0\n{}", "inkc -1\n{}"} {
		root, err := ParseString(text)
		if root != nil {
			t.Errorf("%q: returned a tree", text)
		}
		var verr *VersionError
		if !errors.As(err, &verr) {
			t.Fatalf("%q: got %v", text, err)
		}
		if verr.Want != ir.CurrentVersion {
			t.Errorf("want %d", verr.Want)
		}
		if !errors.Is(err, ErrVersion) || !errors.Is(err, ErrParse) {
			t.Errorf("%q: %v does not wrap ErrVersion", text, err)
		}
	}
	if _, err := ParseString("inkc 2\n{}", ParseVersion(2)); err != nil {
		t.Errorf("explicit version: %v", err)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		err  error
	}{
		{"empty", "", ErrHeader},
		{"no header", "{}", ErrHeader},
		{"unterminated header", "inkc 1", ErrHeader},
		{"bad version", "inkc one\n{}", ErrHeader},
		{"signed version", "inkc +1\n{}", ErrHeader},
		{"padded version", "inkc 01\n{}", ErrHeader},
		{"spaced version", "inkc  1\n{}", ErrHeader},
		{"no body", "inkc 1\n", ErrUnexpectedEOF},
		{"body not container", "inkc 1\n3 ", ErrExpected},
		{"missing close", "inkc 1\n{'knot1'\"Hello\"", ErrUnexpectedEOF},
		{"missing nested close", "inkc 1\n{{{}}", ErrUnexpectedEOF},
		{"unterminated name", "inkc 1\n{'knot", ErrUnexpectedEOF},
		{"empty name", "inkc 1\n{''}", ErrUnexpected},
		{"unterminated string", "inkc 1\n{\"abc}", ErrUnexpectedEOF},
		{"trailing", "inkc 1\n{}x", ErrTrailing},
		{"trailing newline", "inkc 1\n{}\n", ErrTrailing},
		{"unknown command", "inkc 1\n{#zz}", ErrUnknownCommand},
		{"short command", "inkc 1\n{#e", ErrUnexpectedEOF},
		{"unknown glue", "inkc 1\n{Gx}", ErrUnknownGlue},
		{"unexpected", "inkc 1\n{~}", ErrUnexpected},
		{"stray space", "inkc 1\n{ }", ErrUnexpected},
		{"bad number", "inkc 1\n{3x }", ErrNumber},
		{"lone minus", "inkc 1\n{- }", ErrNumber},
		{"int overflow", "inkc 1\n{99999999999999999999 }", ErrNumber},
		{"float overflow", "inkc 1\n{1e999 }", ErrNumber},
		{"hex float", "inkc 1\n{0x1p-2 }", ErrNumber},
		{"unterminated number", "inkc 1\n{3}", ErrUnexpectedEOF},
		{"zero flags", "inkc 1\n{f0 }", ErrNumber},
		{"negative flags", "inkc 1\n{f-1 }", ErrNumber},
		{"content after flags", "inkc 1\n{f1 3 }", ErrExpected},
		{"content after named", "inkc 1\n{[{'a'}]3 }", ErrExpected},
		{"named after flags", "inkc 1\n{f1 [{'a'}]}", ErrUnexpected},
		{"repeated flags", "inkc 1\n{f1 f2 }", ErrUnexpected},
		{"empty named", "inkc 1\n{[]}", ErrNamedContent},
		{"named value", "inkc 1\n{[3 ]}", ErrNamedContent},
		{"named anonymous", "inkc 1\n{[{}]}", ErrNamedContent},
		{"named duplicate", "inkc 1\n{[{'a'}{'a'}]}", ErrNamedContent},
		{"named unclosed", "inkc 1\n{[{'a'}", ErrUnexpectedEOF},
		{"empty divert", "inkc 1\n{> >}", ErrInvalid},
		{"bad external count", "inkc 1\n{>a xz >}", ErrNumber},
		{"divert missing close", "inkc 1\n{>a f}", ErrExpected},
		{"bad choice flags", "inkc 1\n{*x k }", ErrNumber},
		{"zero choice flags", "inkc 1\n{*0 k }", ErrNumber},
		{"empty choice target", "inkc 1\n{*  }", ErrInvalid},
		{"assign flag", "inkc 1\n{=x a }", ErrExpected},
		{"branch unterminated", "inkc 1\n{Bt>a >}", ErrExpected},
		{"branch empty arm", "inkc 1\n{Bt> > }", ErrInvalid},
		{"readcount variable", "inkc 1\n{?& }", ErrInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, err := ParseString(tt.in)
			if !errors.Is(err, tt.err) {
				t.Fatalf("got %v, want %v", err, tt.err)
			}
			if !errors.Is(err, ErrParse) {
				t.Errorf("%v does not wrap ErrParse", err)
			}
			if root != nil {
				t.Error("returned a tree on error")
			}
		})
	}
}

func TestUnescapedQuote(t *testing.T) {
	root := ir.NewContainer("", ir.FromString(`say "hi"`))
	if err := encode.Encode(root, &strings.Builder{}); !errors.Is(err, encode.ErrUnencodable) {
		t.Fatalf("encode: %v", err)
	}
	if _, err := ParseString("inkc 1\n{\"say \"hi\"\"}"); !errors.Is(err, ErrParse) {
		t.Fatalf("decode: %v", err)
	}
	got, err := fragment(`"back\slash"`)
	if err != nil {
		t.Fatal(err)
	}
	if got.String != `back\slash` {
		t.Errorf("got %q", got.String)
	}
}

func TestMaxDepth(t *testing.T) {
	nest := func(n int) string {
		return "inkc 1\n" + strings.Repeat("{", n) + strings.Repeat("}", n)
	}
	if _, err := ParseString(nest(3), ParseMaxDepth(3)); err != nil {
		t.Errorf("depth 3: %v", err)
	}
	if _, err := ParseString(nest(4), ParseMaxDepth(3)); !errors.Is(err, ErrTooDeep) {
		t.Errorf("depth 4: %v", err)
	}
	if _, err := ParseString(nest(500)); err != nil {
		t.Errorf("depth 500: %v", err)
	}
}

func TestPositions(t *testing.T) {
	pos := map[*ir.Node]*Pos{}
	text := "inkc 1\n{\"a\"\n{'k'Bt>x > }}"
	root, err := ParseString(text, ParsePositions(pos))
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		n         *ir.Node
		off       int
		line, col int
	}{
		{root, 7, 1, 0},
		{root.Content[0], 8, 1, 1},
		{root.Content[1], 11, 1, 4},
		{root.Content[2], 12, 2, 0},
		{root.Content[2].Content[0], 16, 2, 4},
		{root.Content[2].Content[0].True, 18, 2, 6},
	}
	for _, tt := range tests {
		p := pos[tt.n]
		if p == nil {
			t.Errorf("no position for %s at %q", tt.n.Kind, tt.n.Path())
			continue
		}
		line, col := p.LineCol()
		if p.I != tt.off || line != tt.line || col != tt.col {
			t.Errorf("%s at %q: got %d (%d:%d), want %d (%d:%d)",
				tt.n.Kind, tt.n.Path(), p.I, line, col, tt.off, tt.line, tt.col)
		}
	}
}

func TestErrorPosition(t *testing.T) {
	_, err := ParseString("inkc 1\n{\n#zz}")
	var perr *Error
	if !errors.As(err, &perr) {
		t.Fatalf("got %T %v", err, err)
	}
	if perr.Pos.I != 10 || perr.Pos.Line() != 2 || perr.Pos.Col() != 1 {
		t.Errorf("got offset %d line %d col %d", perr.Pos.I, perr.Pos.Line(), perr.Pos.Col())
	}
	if !strings.Contains(err.Error(), "unknown command") {
		t.Errorf("message %q", err.Error())
	}
}
