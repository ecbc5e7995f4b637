package eval

import (
	"github.com/y-lohse/ink/ir"
)

// Env is the set of variables a query sees for one node. expr.Run needs
// a plain map, so Env stays an alias.
type Env = map[string]any

// NodeEnv describes n to a query. Fields that do not apply to n's kind
// hold their zero values.
func NodeEnv(n *ir.Node) Env {
	env := Env{
		"kind":       n.Kind.String(),
		"name":       n.Name,
		"target":     n.Target,
		"flags":      n.Flags,
		"intValue":   n.Int,
		"floatValue": n.Float,
		"text":       n.String,
		"command":    "",
		"glue":       "",
		"push":       "",
		"external":   n.External,
		"args":       n.ExternalArgs,
		"global":     n.Global,
		"newDecl":    n.NewDecl,
		"newline":    n.IsNewline(),
		"readCount":  n.IsReadCount(),
		"variable":   n.HasVariableTarget(),
		"value":      n.Kind.IsValue(),
		"truthy":     ir.Truth(n),
		"path":       n.Path(),
		"depth":      depth(n),
		"content":    len(n.Content),
		"named":      len(n.Named),
		"resolves": func(path string) bool {
			_, err := n.Root().GetPath(path)
			return err == nil
		},
		"hasFlag": func(bit int) bool {
			return n.Flags&bit != 0
		},
	}
	switch n.Kind {
	case ir.CommandKind:
		env["command"] = ir.CommandName(n.Command)
	case ir.GlueKind:
		env["glue"] = n.Glue.String()
	case ir.DivertKind:
		env["push"] = n.Push.String()
	}
	return env
}

func depth(n *ir.Node) int {
	d := 0
	for p := n.Parent; p != nil; p = p.Parent {
		d++
	}
	return d
}

// typeEnv fixes the variable types queries are checked against.
var typeEnv = NodeEnv(ir.NewContainer(""))
