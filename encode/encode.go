package encode

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/y-lohse/ink/debug"
	"github.com/y-lohse/ink/ir"
)

// Header is the token opening every inkc document.
const Header = "inkc "

type EncState struct {
	version int
	header  bool

	Color func(ir.Kind, ColorAttr, string) string
}

func newEncState(opts []EncodeOption) *EncState {
	es := &EncState{
		version: ir.CurrentVersion,
		header:  true,
	}
	for _, opt := range opts {
		opt(es)
	}
	return es
}

// Encode writes root, which must be a container, to w. Nothing is written
// if any node fails to encode.
func Encode(root *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts)
	s, err := es.encodeDoc(root)
	if err != nil {
		return err
	}
	return writeString(w, s)
}

func (es *EncState) encodeDoc(root *ir.Node) (string, error) {
	if root == nil || root.Kind != ir.ContainerKind {
		kind := "nil"
		if root != nil {
			kind = root.Kind.String()
		}
		return "", fmt.Errorf("%w: got %s", ErrNotContainer, kind)
	}
	b := &strings.Builder{}
	if es.header {
		es.put(b, ir.ContainerKind, HeaderColor, Header+strconv.Itoa(es.version)+"\n")
	}
	if err := encode(root, b, es); err != nil {
		return "", err
	}
	if debug.Encode() {
		debug.Logf("encoded %d bytes, version %d\n", b.Len(), es.version)
	}
	return b.String(), nil
}

func encode(node *ir.Node, b *strings.Builder, es *EncState) error {
	if node == nil {
		return fmt.Errorf("%w: nil node", ErrEncoding)
	}
	if err := node.Check(); err != nil {
		return err
	}
	switch node.Kind {
	case ir.ContainerKind:
		return encodeContainer(node, b, es)
	case ir.IntKind:
		es.put(b, node.Kind, ValueColor, strconv.FormatInt(node.Int, 10)+" ")
	case ir.FloatKind:
		s, err := formatFloat(node.Float)
		if err != nil {
			return fmt.Errorf("%w at %q", err, node.Path())
		}
		es.put(b, node.Kind, ValueColor, s+" ")
	case ir.StringKind:
		if node.IsNewline() {
			es.put(b, node.Kind, ValueColor, "\n")
			return nil
		}
		if strings.ContainsRune(node.String, '"') {
			return fmt.Errorf("%w: string at %q contains a double quote", ErrUnencodable, node.Path())
		}
		es.put(b, node.Kind, ValueColor, `"`+node.String+`"`)
	case ir.GlueKind:
		es.put(b, node.Kind, SentinelColor, "G"+glueChar(node.Glue))
	case ir.CommandKind:
		if g, ok := Glyph(node.Command); ok {
			es.put(b, node.Kind, SentinelColor, g)
			return nil
		}
		es.put(b, node.Kind, SentinelColor, "#")
		es.put(b, node.Kind, NameColor, ir.CommandName(node.Command))
	case ir.NativeCallKind:
		es.put(b, node.Kind, SentinelColor, ".")
		es.put(b, node.Kind, NameColor, node.Name+" ")
	case ir.DivertKind:
		encodeDivert(node, b, es)
	case ir.AssignKind:
		flags := ""
		if !node.Global {
			flags += "t"
		}
		if !node.NewDecl {
			flags += "r"
		}
		es.put(b, node.Kind, SentinelColor, "="+flags+" ")
		es.put(b, node.Kind, NameColor, node.Name+" ")
	case ir.VarRefKind:
		es.put(b, node.Kind, SentinelColor, "?")
		if node.IsReadCount() {
			es.put(b, node.Kind, SentinelColor, "&")
			es.put(b, node.Kind, NameColor, node.Target+" ")
		} else {
			es.put(b, node.Kind, NameColor, node.Name+" ")
		}
	case ir.ChoiceKind:
		es.put(b, node.Kind, SentinelColor, "*")
		if node.Flags != 0 {
			es.put(b, node.Kind, ValueColor, strconv.Itoa(node.Flags))
		}
		es.put(b, node.Kind, NameColor, " "+node.Target+" ")
	case ir.BranchKind:
		for _, arm := range []*ir.Node{node.True, node.False} {
			if arm == nil {
				continue
			}
			if err := arm.Check(); err != nil {
				return err
			}
		}
		es.put(b, node.Kind, SentinelColor, "B")
		if node.True != nil {
			es.put(b, node.Kind, SentinelColor, "t")
			encodeDivert(node.True, b, es)
		}
		if node.False != nil {
			es.put(b, node.Kind, SentinelColor, "f")
			encodeDivert(node.False, b, es)
		}
		es.put(b, node.Kind, SentinelColor, " ")
	default:
		return fmt.Errorf("%w: %s at %q", ErrUnknownKind, node.Kind, node.Path())
	}
	return nil
}

func encodeContainer(c *ir.Node, b *strings.Builder, es *EncState) error {
	es.put(b, c.Kind, SentinelColor, "{")
	if c.Name != "" {
		es.put(b, c.Kind, NameColor, "'"+c.Name+"'")
	}
	for _, n := range c.Content {
		if err := encode(n, b, es); err != nil {
			return err
		}
	}
	if len(c.Named) > 0 {
		es.put(b, c.Kind, SentinelColor, "[")
		for _, k := range c.NamedKeys() {
			if err := encode(c.Named[k], b, es); err != nil {
				return err
			}
		}
		es.put(b, c.Kind, SentinelColor, "]")
	}
	if c.Flags != 0 {
		es.put(b, c.Kind, SentinelColor, "f")
		es.put(b, c.Kind, ValueColor, strconv.Itoa(c.Flags)+" ")
	}
	es.put(b, c.Kind, SentinelColor, "}")
	return nil
}

// encodeDivert writes a divert already validated by Check.
func encodeDivert(d *ir.Node, b *strings.Builder, es *EncState) {
	es.put(b, d.Kind, SentinelColor, ">")
	if d.HasVariableTarget() {
		es.put(b, d.Kind, SentinelColor, "?")
		es.put(b, d.Kind, NameColor, d.Name+" ")
	} else {
		es.put(b, d.Kind, NameColor, d.Target+" ")
	}
	if d.External {
		es.put(b, d.Kind, SentinelColor, "x")
		es.put(b, d.Kind, ValueColor, strconv.Itoa(d.ExternalArgs)+" ")
	}
	switch d.Push {
	case ir.PushFunction:
		es.put(b, d.Kind, SentinelColor, "f")
	case ir.PushTunnel:
		es.put(b, d.Kind, SentinelColor, "t")
	}
	es.put(b, d.Kind, SentinelColor, ">")
}

var commandGlyphs = map[ir.CommandType]string{
	ir.EvalStart:   "(",
	ir.EvalEnd:     ")",
	ir.BeginString: "«",
	ir.EndString:   "»",
}

// Glyph returns the single character written for c in place of its
// "#"-prefixed name, if c has one.
func Glyph(c ir.CommandType) (string, bool) {
	g, ok := commandGlyphs[c]
	return g, ok
}

func glueChar(g ir.GlueType) string {
	switch g {
	case ir.GlueLeft:
		return "<"
	case ir.GlueRight:
		return ">"
	default:
		return "b"
	}
}

// formatFloat renders f so that it never parses as an integer.
func formatFloat(f float64) (string, error) {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return "", fmt.Errorf("%w: non-finite float %v", ErrUnencodable, f)
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s, nil
}

func (es *EncState) put(b *strings.Builder, kind ir.Kind, attr ColorAttr, s string) {
	if es.Color != nil {
		s = es.Color(kind, attr, s)
	}
	b.WriteString(s)
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
