package encode

import (
	"strings"

	"github.com/y-lohse/ink/ir"

	"github.com/fatih/color"
)

type Colorable struct {
	Kind ir.Kind
	Attr ColorAttr
}

type ColorAttr int

const (
	SentinelColor ColorAttr = iota
	NameColor
	ValueColor
	HeaderColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, k := range ir.Kinds() {
		able := Colorable{Kind: k, Attr: SentinelColor}
		colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()
		able.Attr = NameColor
		colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()
	}
	colors.Map[Colorable{Kind: ir.ContainerKind, Attr: HeaderColor}] = color.RGB(96, 96, 96).SprintfFunc()
	colors.Map[Colorable{Kind: ir.ContainerKind, Attr: SentinelColor}] = color.RGB(196, 128, 128).SprintfFunc()
	colors.Map[Colorable{Kind: ir.ContainerKind, Attr: NameColor}] = color.RGB(196, 96, 16).SprintfFunc()
	colors.Map[Colorable{Kind: ir.ContainerKind, Attr: ValueColor}] = color.RGB(74, 92, 138).SprintfFunc()

	colors.Map[Colorable{Kind: ir.IntKind, Attr: ValueColor}] = color.RGB(128, 216, 236).SprintfFunc()
	colors.Map[Colorable{Kind: ir.FloatKind, Attr: ValueColor}] = color.RGB(128, 216, 236).SprintfFunc()
	colors.Map[Colorable{Kind: ir.StringKind, Attr: ValueColor}] = color.RGB(8, 196, 16).SprintfFunc()
	colors.Map[Colorable{Kind: ir.ChoiceKind, Attr: ValueColor}] = color.RGB(168, 0, 196).SprintfFunc()
	colors.Map[Colorable{Kind: ir.DivertKind, Attr: ValueColor}] = color.RGB(168, 0, 196).SprintfFunc()
	colors.Map[Colorable{Kind: ir.CommandKind, Attr: SentinelColor}] = color.CyanString
	colors.Map[Colorable{Kind: ir.CommandKind, Attr: NameColor}] = color.CyanString
	colors.Map[Colorable{Kind: ir.GlueKind, Attr: SentinelColor}] = color.BlueString
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(k ir.Kind, a ColorAttr, s string) string {
	return c.Get(k, a)(s)
}

func (c *Colors) Get(k ir.Kind, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Kind: k, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
