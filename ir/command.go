package ir

import (
	"fmt"
	"sync"
)

// CommandType is a parameterless opcode consumed by the evaluation stack.
type CommandType int

const (
	EvalStart CommandType = iota
	EvalOutput
	EvalEnd
	Duplicate
	PopEvaluatedValue
	PopFunction
	PopTunnel
	BeginString
	EndString
	NoOp
	ChoiceCount
	TurnsSince
	VisitIndex
	SequenceShuffleIndex
	StartThread
	Done
	End

	numCommands
)

// CommandNameLength is the fixed width of a command's short name.
const CommandNameLength = 2

// commandShortNames must hold an entry for every command. The first four
// normally travel as single glyphs but keep names so #-form input decodes.
var commandShortNames = map[CommandType]string{
	EvalStart:            "ev",
	EvalEnd:              "/e",
	BeginString:          "st",
	EndString:            "/s",
	EvalOutput:           "ou",
	Duplicate:            "du",
	PopEvaluatedValue:    "po",
	PopFunction:          "rt",
	PopTunnel:            ">>",
	NoOp:                 "no",
	ChoiceCount:          "cc",
	TurnsSince:           "tu",
	VisitIndex:           "vi",
	SequenceShuffleIndex: "se",
	StartThread:          "th",
	Done:                 "dn",
	End:                  "en",
}

var commandLongNames = [numCommands]string{
	EvalStart:            "EvalStart",
	EvalOutput:           "EvalOutput",
	EvalEnd:              "EvalEnd",
	Duplicate:            "Duplicate",
	PopEvaluatedValue:    "PopEvaluatedValue",
	PopFunction:          "PopFunction",
	PopTunnel:            "PopTunnel",
	BeginString:          "BeginString",
	EndString:            "EndString",
	NoOp:                 "NoOp",
	ChoiceCount:          "ChoiceCount",
	TurnsSince:           "TurnsSince",
	VisitIndex:           "VisitIndex",
	SequenceShuffleIndex: "SequenceShuffleIndex",
	StartThread:          "StartThread",
	Done:                 "Done",
	End:                  "End",
}

type commandTable struct {
	names  [numCommands]string
	byName map[string]CommandType
}

var theCommandTable = sync.OnceValue(func() *commandTable {
	tbl, err := buildCommandTable(commandShortNames)
	if err != nil {
		panic(err)
	}
	return tbl
})

func buildCommandTable(names map[CommandType]string) (*commandTable, error) {
	tbl := &commandTable{byName: make(map[string]CommandType, numCommands)}
	for c := range numCommands {
		name, ok := names[c]
		if !ok {
			return nil, fmt.Errorf("%w: command %s has no short name", errInternal, c)
		}
		if len(name) != CommandNameLength {
			return nil, fmt.Errorf("%w: command %s short name %q is not %d bytes",
				errInternal, c, name, CommandNameLength)
		}
		if prev, dup := tbl.byName[name]; dup {
			return nil, fmt.Errorf("%w: commands %s and %s share short name %q",
				errInternal, prev, c, name)
		}
		tbl.names[c] = name
		tbl.byName[name] = c
	}
	if len(names) != int(numCommands) {
		return nil, fmt.Errorf("%w: %d short names for %d commands", errInternal, len(names), numCommands)
	}
	return tbl, nil
}

// CommandName returns the 2-character name of c. It panics if c is out of
// range.
func CommandName(c CommandType) string {
	if !c.Valid() {
		panic(fmt.Sprintf("ir: no such command %d", int(c)))
	}
	return theCommandTable().names[c]
}

// CommandByName looks up a command by its 2-character name.
func CommandByName(name string) (CommandType, bool) {
	c, ok := theCommandTable().byName[name]
	return c, ok
}

// Commands returns every command in opcode order.
func Commands() []CommandType {
	res := make([]CommandType, numCommands)
	for i := range res {
		res[i] = CommandType(i)
	}
	return res
}

func (c CommandType) Valid() bool {
	return c >= 0 && c < numCommands
}

func (c CommandType) String() string {
	if !c.Valid() {
		return "<unknown command>"
	}
	return commandLongNames[c]
}

func (c CommandType) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: command %d", ErrInvalidNode, int(c))
	}
	return []byte(commandLongNames[c]), nil
}

func (c *CommandType) UnmarshalText(d []byte) error {
	for i, s := range commandLongNames {
		if s == string(d) {
			*c = CommandType(i)
			return nil
		}
	}
	return fmt.Errorf("unrecognized command %q", d)
}
