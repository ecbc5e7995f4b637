package ir

import (
	"fmt"
	"strings"
)

// Check validates the invariants of y itself, not of its children.
//
// Names and paths travel as space-terminated tokens, so they may not be
// empty or contain spaces; container names may not contain a quote.
func (y *Node) Check() error {
	switch y.Kind {
	case ContainerKind:
		if strings.ContainsRune(y.Name, '\'') {
			return invalid(y, "container name %q contains a quote", y.Name)
		}
		if y.Flags < 0 {
			return invalid(y, "negative count flags %d", y.Flags)
		}
		for k, n := range y.Named {
			if n == nil || n.Kind != ContainerKind || n.Name != k {
				return invalid(y, "named content %q is not a container named %q", k, k)
			}
		}
	case IntKind, FloatKind, StringKind:
	case GlueKind:
		if _, ok := glueNames[y.Glue]; !ok {
			return invalid(y, "glue type %d", int(y.Glue))
		}
	case CommandKind:
		if !y.Command.Valid() {
			return invalid(y, "command type %d", int(y.Command))
		}
	case NativeCallKind:
		if err := checkToken(y, "operator", y.Name); err != nil {
			return err
		}
	case DivertKind:
		switch {
		case y.Target != "" && y.Name != "":
			return invalid(y, "divert has both target %q and variable %q", y.Target, y.Name)
		case y.Target == "" && y.Name == "":
			return invalid(y, "divert has neither target nor variable")
		case y.Name != "":
			if err := checkToken(y, "variable", y.Name); err != nil {
				return err
			}
		default:
			if err := checkToken(y, "target", y.Target); err != nil {
				return err
			}
			if y.Target[0] == '?' {
				return invalid(y, "target %q starts with '?'", y.Target)
			}
		}
		if y.ExternalArgs < 0 {
			return invalid(y, "negative external argument count %d", y.ExternalArgs)
		}
		if !y.External && y.ExternalArgs != 0 {
			return invalid(y, "argument count %d on a non-external divert", y.ExternalArgs)
		}
		if _, ok := pushNames[y.Push]; !ok {
			return invalid(y, "push type %d", int(y.Push))
		}
	case AssignKind:
		if err := checkToken(y, "variable", y.Name); err != nil {
			return err
		}
	case VarRefKind:
		switch {
		case y.Target != "" && y.Name != "":
			return invalid(y, "reference has both read count %q and variable %q", y.Target, y.Name)
		case y.Target != "":
			return checkToken(y, "read count path", y.Target)
		default:
			if err := checkToken(y, "variable", y.Name); err != nil {
				return err
			}
			if y.Name[0] == '&' {
				return invalid(y, "variable %q starts with '&'", y.Name)
			}
		}
	case ChoiceKind:
		if y.Flags < 0 {
			return invalid(y, "negative choice flags %d", y.Flags)
		}
		return checkToken(y, "target", y.Target)
	case BranchKind:
		for _, arm := range []*Node{y.True, y.False} {
			if arm != nil && arm.Kind != DivertKind {
				return invalid(y, "branch arm is a %s", arm.Kind)
			}
		}
	default:
		return fmt.Errorf("%w: %w %d", ErrInvalidNode, ErrUnknownKind, int(y.Kind))
	}
	return nil
}

func checkToken(y *Node, what, v string) error {
	if v == "" {
		return invalid(y, "empty %s", what)
	}
	if strings.ContainsAny(v, " \n") {
		return invalid(y, "%s %q contains whitespace", what, v)
	}
	return nil
}

func invalid(y *Node, msg string, args ...any) error {
	return fmt.Errorf("%w: %s at %q: %s", ErrInvalidNode, y.Kind, y.Path(), fmt.Sprintf(msg, args...))
}
