package ir

import (
	"encoding/json"
	"fmt"
)

// Doc is the parent-free document form of a Node. Enumerations are held
// as their text names so every document encoder sees plain strings.
type Doc struct {
	Kind string `json:"kind" yaml:"kind" cbor:"kind"`

	Name    string          `json:"name,omitempty" yaml:"name,omitempty" cbor:"name,omitempty"`
	Target  string          `json:"target,omitempty" yaml:"target,omitempty" cbor:"target,omitempty"`
	Flags   int             `json:"flags,omitempty" yaml:"flags,omitempty" cbor:"flags,omitempty"`
	Content []*Doc          `json:"content,omitempty" yaml:"content,omitempty" cbor:"content,omitempty"`
	Named   map[string]*Doc `json:"named,omitempty" yaml:"named,omitempty" cbor:"named,omitempty"`

	Int    *int64   `json:"int,omitempty" yaml:"int,omitempty" cbor:"int,omitempty"`
	Float  *float64 `json:"float,omitempty" yaml:"float,omitempty" cbor:"float,omitempty"`
	String *string  `json:"string,omitempty" yaml:"string,omitempty" cbor:"string,omitempty"`

	Glue    string `json:"glue,omitempty" yaml:"glue,omitempty" cbor:"glue,omitempty"`
	Command string `json:"command,omitempty" yaml:"command,omitempty" cbor:"command,omitempty"`

	External     bool   `json:"external,omitempty" yaml:"external,omitempty" cbor:"external,omitempty"`
	ExternalArgs int    `json:"externalArgs,omitempty" yaml:"externalArgs,omitempty" cbor:"externalArgs,omitempty"`
	Push         string `json:"push,omitempty" yaml:"push,omitempty" cbor:"push,omitempty"`

	Global  bool `json:"global,omitempty" yaml:"global,omitempty" cbor:"global,omitempty"`
	NewDecl bool `json:"newDecl,omitempty" yaml:"newDecl,omitempty" cbor:"newDecl,omitempty"`

	True  *Doc `json:"ifTrue,omitempty" yaml:"ifTrue,omitempty" cbor:"ifTrue,omitempty"`
	False *Doc `json:"ifFalse,omitempty" yaml:"ifFalse,omitempty" cbor:"ifFalse,omitempty"`
}

func (y *Node) ToDoc() (*Doc, error) {
	kind, err := y.Kind.MarshalText()
	if err != nil {
		return nil, err
	}
	d := &Doc{Kind: string(kind)}
	switch y.Kind {
	case ContainerKind:
		d.Name = y.Name
		d.Flags = y.Flags
		for _, c := range y.Content {
			cd, err := c.ToDoc()
			if err != nil {
				return nil, err
			}
			d.Content = append(d.Content, cd)
		}
		for k, n := range y.Named {
			nd, err := n.ToDoc()
			if err != nil {
				return nil, err
			}
			if d.Named == nil {
				d.Named = make(map[string]*Doc, len(y.Named))
			}
			d.Named[k] = nd
		}
	case IntKind:
		v := y.Int
		d.Int = &v
	case FloatKind:
		v := y.Float
		d.Float = &v
	case StringKind:
		v := y.String
		d.String = &v
	case GlueKind:
		d.Glue = y.Glue.String()
	case CommandKind:
		d.Command = y.Command.String()
	case NativeCallKind:
		d.Name = y.Name
	case AssignKind:
		d.Name = y.Name
		d.Global = y.Global
		d.NewDecl = y.NewDecl
	case DivertKind:
		d.Name = y.Name
		d.Target = y.Target
		d.External = y.External
		d.ExternalArgs = y.ExternalArgs
		if y.Push != PushNone {
			d.Push = y.Push.String()
		}
	case VarRefKind:
		d.Name = y.Name
		d.Target = y.Target
	case ChoiceKind:
		d.Target = y.Target
		d.Flags = y.Flags
	case BranchKind:
		if y.True != nil {
			if d.True, err = y.True.ToDoc(); err != nil {
				return nil, err
			}
		}
		if y.False != nil {
			if d.False, err = y.False.ToDoc(); err != nil {
				return nil, err
			}
		}
	}
	return d, nil
}

// FromDoc rebuilds a tree from its document form, restoring parent links.
func FromDoc(d *Doc) (*Node, error) {
	if d == nil {
		return nil, fmt.Errorf("%w: nil document", ErrInvalidNode)
	}
	y := &Node{}
	if err := y.Kind.UnmarshalText([]byte(d.Kind)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidNode, err)
	}
	switch y.Kind {
	case ContainerKind:
		y.Name = d.Name
		y.Flags = d.Flags
		for _, cd := range d.Content {
			c, err := FromDoc(cd)
			if err != nil {
				return nil, err
			}
			y.AddContent(c)
		}
		for k, nd := range d.Named {
			n, err := FromDoc(nd)
			if err != nil {
				return nil, err
			}
			if n.Name != k {
				return nil, fmt.Errorf("%w: named content %q holds %q", ErrInvalidNode, k, n.Name)
			}
			if err := y.AddNamedContent(n); err != nil {
				return nil, err
			}
		}
	case IntKind:
		if d.Int == nil {
			return nil, fmt.Errorf("%w: int document without value", ErrInvalidNode)
		}
		y.Int = *d.Int
	case FloatKind:
		if d.Float == nil {
			return nil, fmt.Errorf("%w: float document without value", ErrInvalidNode)
		}
		y.Float = *d.Float
	case StringKind:
		if d.String != nil {
			y.String = *d.String
		}
	case GlueKind:
		if err := y.Glue.UnmarshalText([]byte(d.Glue)); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidNode, err)
		}
	case CommandKind:
		if err := y.Command.UnmarshalText([]byte(d.Command)); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidNode, err)
		}
	case NativeCallKind:
		y.Name = d.Name
	case AssignKind:
		y.Name = d.Name
		y.Global = d.Global
		y.NewDecl = d.NewDecl
	case DivertKind:
		y.Name = d.Name
		y.Target = d.Target
		y.External = d.External
		y.ExternalArgs = d.ExternalArgs
		if d.Push != "" {
			if err := y.Push.UnmarshalText([]byte(d.Push)); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrInvalidNode, err)
			}
		}
	case VarRefKind:
		y.Name = d.Name
		y.Target = d.Target
	case ChoiceKind:
		y.Target = d.Target
		y.Flags = d.Flags
	case BranchKind:
		var t, f *Node
		var err error
		if d.True != nil {
			if t, err = FromDoc(d.True); err != nil {
				return nil, err
			}
		}
		if d.False != nil {
			if f, err = FromDoc(d.False); err != nil {
				return nil, err
			}
		}
		b := FromBranch(t, f)
		y.True, y.False = b.True, b.False
		for _, arm := range []*Node{y.True, y.False} {
			if arm != nil {
				arm.Parent = y
			}
		}
	}
	return y, nil
}

func (y *Node) MarshalJSON() ([]byte, error) {
	d, err := y.ToDoc()
	if err != nil {
		return nil, err
	}
	return json.Marshal(d)
}

func (y *Node) UnmarshalJSON(data []byte) error {
	d := &Doc{}
	if err := json.Unmarshal(data, d); err != nil {
		return err
	}
	n, err := FromDoc(d)
	if err != nil {
		return err
	}
	n.CloneTo(y)
	y.Parent = nil
	return nil
}
