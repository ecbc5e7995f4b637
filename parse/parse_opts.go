package parse

import "github.com/y-lohse/ink/ir"

// DefaultMaxDepth bounds container nesting unless ParseMaxDepth is given.
const DefaultMaxDepth = 10000

type parseOpts struct {
	positions map[*ir.Node]*Pos
	maxDepth  int
	version   int
}

type ParseOption func(*parseOpts)

// ParsePositions records the start position of every decoded node in m.
func ParsePositions(m map[*ir.Node]*Pos) ParseOption {
	return func(o *parseOpts) { o.positions = m }
}

// ParseMaxDepth bounds container nesting. Deeper input fails with
// ErrTooDeep.
func ParseMaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}

// ParseVersion sets the only header version accepted.
func ParseVersion(v int) ParseOption {
	return func(o *parseOpts) { o.version = v }
}
