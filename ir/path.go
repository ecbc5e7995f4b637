package ir

import (
	"fmt"
	"strconv"
	"strings"
)

// Path returns the dot-separated address of y from the root container.
//
// Named containers are addressed by name, other content by index and
// named-only entries by key. The root has the empty path. Branch arms are
// suffixed with "true" or "false" and are not resolvable by GetPath.
//
// Examples:
//   - root → ""
//   - named-only entry "knot1" of the root → "knot1"
//   - third node of knot1 → "knot1.2"
func (y *Node) Path() string {
	p := y.Parent
	if p == nil {
		return ""
	}
	var comp string
	switch {
	case p.Kind == BranchKind:
		comp = "false"
		if p.True == y {
			comp = "true"
		}
	case y.ParentIndex < 0:
		comp = y.ParentName
	case y.Kind == ContainerKind && y.Name != "":
		comp = y.Name
	default:
		comp = strconv.Itoa(y.ParentIndex)
	}
	prefix := p.Path()
	if prefix == "" {
		return comp
	}
	return prefix + "." + comp
}

// GetPath navigates downward from y along a path as returned by Path.
//
// Example:
//
//	root.GetPath("knot1.stitch.0")
func (y *Node) GetPath(path string) (*Node, error) {
	if path == "" {
		return y, nil
	}
	cur := y
	for comp := range strings.SplitSeq(path, ".") {
		if cur.Kind != ContainerKind {
			return nil, fmt.Errorf("%w: %q: %s at %q is not a container", ErrNoPath, path, cur.Kind, cur.Path())
		}
		if i, err := strconv.Atoi(comp); err == nil {
			if i < 0 || i >= len(cur.Content) {
				return nil, fmt.Errorf("%w: %q: index %d out of range", ErrNoPath, path, i)
			}
			cur = cur.Content[i]
			continue
		}
		next := cur.NamedContent(comp)
		if next == nil {
			return nil, fmt.Errorf("%w: %q: no content named %q", ErrNoPath, path, comp)
		}
		cur = next
	}
	return cur, nil
}

// Visit calls f on y before and after its children. Children are the
// ordered content, then named-only entries in key order, then branch arms.
// Returning false from the pre-order call skips the children.
func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, c := range y.Content {
			if err := c.Visit(f); err != nil {
				return err
			}
		}
		for _, k := range y.NamedKeys() {
			if err := y.Named[k].Visit(f); err != nil {
				return err
			}
		}
		for _, arm := range []*Node{y.True, y.False} {
			if arm == nil {
				continue
			}
			if err := arm.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}

// Targets returns every path referenced by diverts, choices and read
// counts under y, in visit order.
func (y *Node) Targets() []*Node {
	var res []*Node
	_ = y.Visit(func(n *Node, isPost bool) (bool, error) {
		if isPost {
			return false, nil
		}
		switch n.Kind {
		case DivertKind, ChoiceKind, VarRefKind:
			if n.Target != "" {
				res = append(res, n)
			}
		}
		return true, nil
	})
	return res
}
