// Package parse decodes inkc text into instruction trees.
//
// # Usage
//
//	root, err := parse.Parse(data)
//	if err != nil {
//	    return err
//	}
//
//	// With node positions
//	pos := map[*ir.Node]*parse.Pos{}
//	root, err := parse.ParseString(text, parse.ParsePositions(pos))
//
// Decoding is driven by the first character of each node, mirroring the
// rules in package encode. The container body must follow the order the
// encoder writes: ordered content, an optional "[...]" block of named-only
// containers, optional "f<flags> " count flags, then "}".
//
// Every error wraps ErrParse and most carry a position as *Error. A
// document with an unsupported version fails with *VersionError.
//
// # Related Packages
//
//   - github.com/y-lohse/ink/ir - instruction tree
//   - github.com/y-lohse/ink/encode - encode trees to inkc text
package parse
