// Package eval runs expressions over the nodes of an instruction tree.
//
// A query is an expr-lang boolean expression evaluated against each node's
// Env, for example
//
//	kind == "Divert" && !variable && !resolves(target)
//
// finds diverts whose fixed target does not resolve from the root.
package eval

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/y-lohse/ink/debug"
	"github.com/y-lohse/ink/ir"
)

type Query struct {
	src string
	prg *vm.Program
}

// Compile checks src against the node variables and compiles it.
func Compile(src string) (*Query, error) {
	prg, err := expr.Compile(src, expr.Env(typeEnv), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQuery, err)
	}
	return &Query{src: src, prg: prg}, nil
}

func (q *Query) String() string {
	return q.src
}

// Match reports whether n satisfies q.
func (q *Query) Match(n *ir.Node) (bool, error) {
	res, err := expr.Run(q.prg, NodeEnv(n))
	if err != nil {
		return false, fmt.Errorf("%w at %q: %w", ErrQuery, n.Path(), err)
	}
	ok, _ := res.(bool)
	if debug.Eval() {
		debug.Logf("query %q on %q: %t\n", q.src, n.Path(), ok)
	}
	return ok, nil
}

// Find returns the nodes under root matching q, in visit order.
func (q *Query) Find(root *ir.Node) ([]*ir.Node, error) {
	var res []*ir.Node
	err := root.Visit(func(n *ir.Node, isPost bool) (bool, error) {
		if isPost {
			return true, nil
		}
		ok, err := q.Match(n)
		if err != nil {
			return false, err
		}
		if ok {
			res = append(res, n)
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Unresolved is the query for diverts, choices and read counts whose
// fixed target does not resolve from the root.
const Unresolved = `target != "" && !resolves(target)`
