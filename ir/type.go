package ir

import "fmt"

// Kind discriminates the variant held by a Node.
type Kind int

const (
	ContainerKind Kind = iota
	IntKind
	FloatKind
	StringKind
	GlueKind
	CommandKind
	NativeCallKind
	DivertKind
	AssignKind
	VarRefKind
	ChoiceKind
	BranchKind
)

var kindNames = map[Kind]string{
	ContainerKind:  "Container",
	IntKind:        "Int",
	FloatKind:      "Float",
	StringKind:     "String",
	GlueKind:       "Glue",
	CommandKind:    "Command",
	NativeCallKind: "NativeCall",
	DivertKind:     "Divert",
	AssignKind:     "Assign",
	VarRefKind:     "VarRef",
	ChoiceKind:     "Choice",
	BranchKind:     "Branch",
}

func (k Kind) String() string {
	s, ok := kindNames[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	s, ok := kindNames[k]
	if !ok {
		return nil, fmt.Errorf("%w: kind %d", ErrInvalidNode, int(k))
	}
	return []byte(s), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	for kk, s := range kindNames {
		if s == string(d) {
			*k = kk
			return nil
		}
	}
	return fmt.Errorf("unrecognized kind %q", d)
}

// Kinds returns every node kind in declaration order.
func Kinds() []Kind {
	return []Kind{
		ContainerKind,
		IntKind,
		FloatKind,
		StringKind,
		GlueKind,
		CommandKind,
		NativeCallKind,
		DivertKind,
		AssignKind,
		VarRefKind,
		ChoiceKind,
		BranchKind,
	}
}

// IsValue reports whether nodes of kind k push a literal value.
func (k Kind) IsValue() bool {
	switch k {
	case IntKind, FloatKind, StringKind:
		return true
	default:
		return false
	}
}

// GlueType is the joining direction of a glue node.
type GlueType int

const (
	GlueBidirectional GlueType = iota
	GlueLeft
	GlueRight
)

var glueNames = map[GlueType]string{
	GlueBidirectional: "Bidirectional",
	GlueLeft:          "Left",
	GlueRight:         "Right",
}

func (g GlueType) String() string {
	s, ok := glueNames[g]
	if ok {
		return s
	}
	return "<unknown glue>"
}

func (g GlueType) MarshalText() ([]byte, error) {
	s, ok := glueNames[g]
	if !ok {
		return nil, fmt.Errorf("%w: glue %d", ErrInvalidNode, int(g))
	}
	return []byte(s), nil
}

func (g *GlueType) UnmarshalText(d []byte) error {
	for gg, s := range glueNames {
		if s == string(d) {
			*g = gg
			return nil
		}
	}
	return fmt.Errorf("unrecognized glue %q", d)
}

// PushType is the call frame a divert pushes, if any.
type PushType int

const (
	PushNone PushType = iota
	PushFunction
	PushTunnel
)

var pushNames = map[PushType]string{
	PushNone:     "None",
	PushFunction: "Function",
	PushTunnel:   "Tunnel",
}

func (p PushType) String() string {
	s, ok := pushNames[p]
	if ok {
		return s
	}
	return "<unknown push>"
}

func (p PushType) MarshalText() ([]byte, error) {
	s, ok := pushNames[p]
	if !ok {
		return nil, fmt.Errorf("%w: push %d", ErrInvalidNode, int(p))
	}
	return []byte(s), nil
}

func (p *PushType) UnmarshalText(d []byte) error {
	for pp, s := range pushNames {
		if s == string(d) {
			*p = pp
			return nil
		}
	}
	return fmt.Errorf("unrecognized push %q", d)
}

// Count flag bits of a container.
const (
	CountVisits    = 1 << iota // track visit counts
	CountTurns                 // track turn indices of visits
	CountStartOnly             // count only when entered at the start
)

// Flag bits of a choice point.
const (
	ChoiceHasCondition = 1 << iota
	ChoiceHasStartContent
	ChoiceHasChoiceOnlyContent
	ChoiceOnceOnly
	ChoiceInvisibleDefault
)
