// Package ir provides the compiled instruction tree of a story.
//
// # Overview
//
// A compiled story is a tree of nodes rooted at a container. The tree is
// produced once by the code generator, persisted with the inkc codec
// (packages encode and parse) and walked by the execution engine.
//
// The IR works as a recursive tagged union structure: a Node carries a Kind
// and values are placed in fields depending on that kind.
//
// # Node Kinds
//
//   - ContainerKind: optional Name, ordered Content, named-only Named
//     entries and count Flags
//   - IntKind, FloatKind: numeric literal in Int or Float
//   - StringKind: text in String; the single line break is a newline value
//   - GlueKind: whitespace joining direction in Glue
//   - CommandKind: parameterless opcode in Command
//   - NativeCallKind: built-in operator in Name
//   - DivertKind: fixed Target path or variable Name, optional external
//     call (External, ExternalArgs) and frame Push
//   - AssignKind: variable Name, Global scope, NewDecl mode
//   - VarRefKind: variable Name or read-count Target path
//   - ChoiceKind: choice Flags and Target path
//   - BranchKind: optional True and False diverts
//
// # Creating Nodes
//
//	knot := ir.NewContainer("knot1",
//	    ir.FromString("Hello"),
//	    ir.FromGlue(ir.GlueBidirectional),
//	    ir.DivertTo("knot2"),
//	    ir.FromCommand(ir.End),
//	)
//	root := ir.NewContainer("")
//	if err := root.AddNamedContent(knot); err != nil {
//	    return err
//	}
//
// # Structure Constraints
//
// Container content order is execution order. Named-only entries are
// excluded from that order and are looked up by name; only named containers
// may be named-only entries, keyed by their own name.
//
// A divert targets exactly one of a fixed path or a variable. A variable
// reference reads exactly one of a variable or a read count. Flags are bit
// sets where 0 means none. Check reports violations as ErrInvalidNode.
//
// # Navigating Nodes
//
// Nodes keep Parent, ParentIndex and ParentName links which are maintained
// by the constructors, AddContent and AddNamedContent. Path renders a
// node's address and GetPath resolves one:
//
//	n, err := root.GetPath("knot1.2")
//
// Visit walks a tree in pre and post order.
//
// # Control Commands
//
// Every CommandType has a fixed 2-character name used by the codec.
// CommandName and CommandByName consult a table built once on first use;
// a command without a name is a programming error and panics.
//
// # Documents
//
// ToDoc and FromDoc convert a tree to a parent-free Doc suitable for JSON,
// YAML and CBOR encoders. Node implements json.Marshaler through it.
package ir
