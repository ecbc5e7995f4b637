package ir

import (
	"fmt"
	"maps"
	"slices"
)

// CurrentVersion is the inkc format version written and accepted.
const CurrentVersion = 1

type Node struct {
	Kind        Kind
	Parent      *Node
	ParentIndex int
	ParentName  string

	// Name holds a container's name, a native operator, or the variable
	// of an assignment, reference or variable divert.
	Name string
	// Target holds the fixed path of a divert or choice, or the read-count
	// path of a variable reference.
	Target string
	// Flags holds container count flags or choice flags.
	Flags   int
	Content []*Node
	Named   map[string]*Node

	Int    int64
	Float  float64
	String string

	Glue    GlueType
	Command CommandType

	External     bool
	ExternalArgs int
	Push         PushType

	Global  bool
	NewDecl bool

	True  *Node
	False *Node
}

func NewContainer(name string, content ...*Node) *Node {
	c := &Node{Kind: ContainerKind, Name: name}
	c.AddContent(content...)
	return c
}

func FromInt(v int64) *Node {
	return &Node{Kind: IntKind, Int: v}
}

func FromFloat(f float64) *Node {
	return &Node{Kind: FloatKind, Float: f}
}

func FromString(v string) *Node {
	return &Node{Kind: StringKind, String: v}
}

// Newline returns the string value holding a single line break.
func Newline() *Node {
	return FromString("\n")
}

func FromGlue(g GlueType) *Node {
	return &Node{Kind: GlueKind, Glue: g}
}

func FromCommand(c CommandType) *Node {
	return &Node{Kind: CommandKind, Command: c}
}

func FromNativeCall(op string) *Node {
	return &Node{Kind: NativeCallKind, Name: op}
}

func DivertTo(path string) *Node {
	return &Node{Kind: DivertKind, Target: path}
}

func DivertToVariable(name string) *Node {
	return &Node{Kind: DivertKind, Name: name}
}

// WithPush makes a divert push a function or tunnel frame.
func (y *Node) WithPush(p PushType) *Node {
	y.Push = p
	return y
}

// WithExternal marks a divert as a call to an external function taking
// nargs arguments.
func (y *Node) WithExternal(nargs int) *Node {
	y.External = true
	y.ExternalArgs = nargs
	return y
}

func Assign(name string, global, newDecl bool) *Node {
	return &Node{Kind: AssignKind, Name: name, Global: global, NewDecl: newDecl}
}

func VarRef(name string) *Node {
	return &Node{Kind: VarRefKind, Name: name}
}

// ReadCount returns a reference to the visit count of the content at path.
func ReadCount(path string) *Node {
	return &Node{Kind: VarRefKind, Target: path}
}

func Choice(path string, flags int) *Node {
	return &Node{Kind: ChoiceKind, Target: path, Flags: flags}
}

// FromBranch builds a conditional with optional true and false diverts.
func FromBranch(t, f *Node) *Node {
	b := &Node{Kind: BranchKind, True: t, False: f}
	for _, arm := range []*Node{t, f} {
		if arm != nil {
			arm.Parent = b
			arm.ParentIndex = -1
		}
	}
	return b
}

func (y *Node) IsContainer() bool {
	return y.Kind == ContainerKind
}

// IsNewline reports whether y is the single line break string value.
func (y *Node) IsNewline() bool {
	return y.Kind == StringKind && y.String == "\n"
}

// HasVariableTarget reports whether y is a divert to a variable's value.
func (y *Node) HasVariableTarget() bool {
	return y.Kind == DivertKind && y.Name != ""
}

// IsReadCount reports whether y is a visit count reference.
func (y *Node) IsReadCount() bool {
	return y.Kind == VarRefKind && y.Target != ""
}

func (y *Node) AddContent(nodes ...*Node) {
	for _, n := range nodes {
		n.Parent = y
		n.ParentIndex = len(y.Content)
		n.ParentName = ""
		y.Content = append(y.Content, n)
	}
}

// AddNamedContent adds a named container reachable by name only.
func (y *Node) AddNamedContent(n *Node) error {
	if y.Kind != ContainerKind {
		return fmt.Errorf("%w: named content added to %s", ErrInvalidNode, y.Kind)
	}
	if n.Kind != ContainerKind || n.Name == "" {
		return fmt.Errorf("%w: named content must be a named container, got %s", ErrInvalidNode, n.Kind)
	}
	if _, dup := y.Named[n.Name]; dup {
		return fmt.Errorf("%w: duplicate named content %q", ErrInvalidNode, n.Name)
	}
	if y.Named == nil {
		y.Named = map[string]*Node{}
	}
	n.Parent = y
	n.ParentIndex = -1
	n.ParentName = n.Name
	y.Named[n.Name] = n
	return nil
}

// NamedContent returns the node addressable by name in y: a named-only
// entry or a named container in the ordered content.
func (y *Node) NamedContent(name string) *Node {
	if n, ok := y.Named[name]; ok {
		return n
	}
	for _, c := range y.Content {
		if c.Kind == ContainerKind && c.Name == name {
			return c
		}
	}
	return nil
}

// NamedKeys returns the keys of the named-only content, sorted.
func (y *Node) NamedKeys() []string {
	return slices.Sorted(maps.Keys(y.Named))
}

func (y *Node) SetCountFlags(flags int) *Node {
	y.Flags = flags
	return y
}

func (y *Node) Root() *Node {
	res := y
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	*dst = *y
	dst.Content = nil
	dst.Named = nil
	for _, c := range y.Content {
		dst.AddContent(c.Clone())
	}
	for _, k := range y.NamedKeys() {
		n := y.Named[k].Clone()
		if dst.Named == nil {
			dst.Named = make(map[string]*Node, len(y.Named))
		}
		n.Parent = dst
		n.ParentIndex = -1
		n.ParentName = k
		dst.Named[k] = n
	}
	if y.True != nil || y.False != nil {
		var t, f *Node
		if y.True != nil {
			t = y.True.Clone()
		}
		if y.False != nil {
			f = y.False.Clone()
		}
		b := FromBranch(t, f)
		dst.True, dst.False = b.True, b.False
		for _, arm := range []*Node{dst.True, dst.False} {
			if arm != nil {
				arm.Parent = dst
			}
		}
	}
	return dst
}
