// Package encode writes compiled instruction trees in the inkc text format.
//
// # Format
//
// The output is the header "inkc <version>\n" followed by the root
// container. Every node starts with a sentinel character that tells the
// reader which rule to apply. Names, paths and numbers are terminated by a
// single space, shown here as _:
//
//	{      container: {'name' content [named] f<flags>_}
//	"      string value (a bare \n is the newline value)
//	G      glue: Gb, G<, G>
//	( ) « »  eval start, eval end, begin string, end string
//	#      other control commands by 2-character name
//	.      native function call: .<op>_
//	0-9 -  int or float literal: 3_ 3.5_
//	>      divert: ><path>_ or >?<var>_ then x<n>_, f or t, then >
//	=      variable assignment: =[t][r]_<name>_
//	?      variable reference: ?<name>_ or ?&<path>_
//	*      choice point: *<flags>_<path>_ (flags blank when 0)
//	B      branch: B[t<divert>][f<divert>]_
//
// String values are not escaped; a value containing a double quote cannot
// be represented and fails with ErrUnencodable.
//
// # Usage
//
//	var buf bytes.Buffer
//	if err := encode.Encode(root, &buf); err != nil {
//	    return err
//	}
//
//	// Encode once, reuse the text
//	w := encode.NewWriter(root)
//	text, err := w.Text()
//
// # Related Packages
//
//   - github.com/y-lohse/ink/ir - instruction tree
//   - github.com/y-lohse/ink/parse - decode inkc text
package encode
