package libdiff

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/y-lohse/ink/encode"
	"github.com/y-lohse/ink/ir"
)

// RootPath is how the root container appears in an outline.
const RootPath = "."

// Outline renders one line per node under root in visit order. Each line
// holds the node's path, kind and a short rendering of its value, so two
// outlines line up wherever the trees agree.
func Outline(root *ir.Node) []string {
	var res []string
	_ = root.Visit(func(n *ir.Node, isPost bool) (bool, error) {
		if isPost {
			return true, nil
		}
		path := n.Path()
		if path == "" {
			path = RootPath
		}
		res = append(res, path+" "+n.Kind.String()+" "+Summary(n))
		return true, nil
	})
	return res
}

// Summary renders n alone. Containers show their name, flags and sizes;
// other nodes show their inkc encoding.
func Summary(n *ir.Node) string {
	if n.IsContainer() {
		var b strings.Builder
		if n.Name != "" {
			b.WriteString(strconv.Quote(n.Name) + " ")
		}
		if n.Flags != 0 {
			fmt.Fprintf(&b, "f%d ", n.Flags)
		}
		fmt.Fprintf(&b, "(%d content, %d named)", len(n.Content), len(n.Named))
		return b.String()
	}
	frag := n.Clone()
	text, err := encode.NewWriter(ir.NewContainer("", frag), encode.EncodeHeader(false)).Text()
	if err != nil {
		return fmt.Sprintf("<%v>", err)
	}
	return strconv.Quote(text[1 : len(text)-1])
}
