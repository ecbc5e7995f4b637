package ir

// Equal reports whether a and b are structurally identical. Parent links
// are ignored and named content is compared by key.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case ContainerKind:
		if a.Name != b.Name || a.Flags != b.Flags {
			return false
		}
		if len(a.Content) != len(b.Content) || len(a.Named) != len(b.Named) {
			return false
		}
		for i := range a.Content {
			if !Equal(a.Content[i], b.Content[i]) {
				return false
			}
		}
		for k, an := range a.Named {
			bn, ok := b.Named[k]
			if !ok || !Equal(an, bn) {
				return false
			}
		}
		return true
	case IntKind:
		return a.Int == b.Int
	case FloatKind:
		return a.Float == b.Float
	case StringKind:
		return a.String == b.String
	case GlueKind:
		return a.Glue == b.Glue
	case CommandKind:
		return a.Command == b.Command
	case NativeCallKind:
		return a.Name == b.Name
	case DivertKind:
		return a.Target == b.Target && a.Name == b.Name &&
			a.External == b.External && a.ExternalArgs == b.ExternalArgs &&
			a.Push == b.Push
	case AssignKind:
		return a.Name == b.Name && a.Global == b.Global && a.NewDecl == b.NewDecl
	case VarRefKind:
		return a.Name == b.Name && a.Target == b.Target
	case ChoiceKind:
		return a.Target == b.Target && a.Flags == b.Flags
	case BranchKind:
		return Equal(a.True, b.True) && Equal(a.False, b.False)
	}
	return false
}
