// Package docfmt converts instruction trees to and from document forms.
//
// The inkc form goes through packages encode and parse. The JSON, YAML
// and CBOR forms hold an ir.Doc, which mirrors the tree without parent
// links. CBOR output is canonical so equal trees give equal bytes.
package docfmt

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"github.com/goccy/go-yaml"

	"github.com/y-lohse/ink/encode"
	"github.com/y-lohse/ink/format"
	"github.com/y-lohse/ink/ir"
	"github.com/y-lohse/ink/parse"
)

var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("docfmt: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

// Marshal renders root in format f.
func Marshal(root *ir.Node, f format.Format) ([]byte, error) {
	if f.IsInkc() {
		buf := &bytes.Buffer{}
		if err := encode.Encode(root, buf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
	if root == nil || !root.IsContainer() {
		return nil, fmt.Errorf("%w: root is not a container", ErrDocument)
	}
	d, err := root.ToDoc()
	if err != nil {
		return nil, err
	}
	var out []byte
	switch f {
	case format.JSONFormat:
		out, err = json.MarshalIndent(d, "", "  ")
		out = append(out, '\n')
	case format.YAMLFormat:
		out, err = yaml.MarshalWithOptions(d, yaml.CustomMarshaler[string](yamlString))
	case format.CBORFormat:
		out, err = cborEncMode.Marshal(d)
	default:
		return nil, fmt.Errorf("%w %s", ErrUnsupported, f)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDocument, f, err)
	}
	return out, nil
}

// yamlString double quotes strings that do not read back from a plain or
// block scalar: those holding a line break or starting with '?'.
func yamlString(s string) ([]byte, error) {
	if strings.ContainsAny(s, "\r\n") || strings.HasPrefix(s, "?") {
		return []byte(strconv.Quote(s)), nil
	}
	return yaml.Marshal(s)
}

// Unmarshal decodes a tree in format f. The result is checked node by
// node so it encodes as inkc.
func Unmarshal(data []byte, f format.Format) (*ir.Node, error) {
	if f.IsInkc() {
		return parse.Parse(data)
	}
	d := &ir.Doc{}
	var err error
	switch f {
	case format.JSONFormat:
		err = json.Unmarshal(data, d)
	case format.YAMLFormat:
		err = yaml.Unmarshal(data, d)
	case format.CBORFormat:
		err = cbor.Unmarshal(data, d)
	default:
		return nil, fmt.Errorf("%w %s", ErrUnsupported, f)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDocument, f, err)
	}
	root, err := ir.FromDoc(d)
	if err != nil {
		return nil, err
	}
	if !root.IsContainer() {
		return nil, fmt.Errorf("%w: root is a %s", ErrDocument, root.Kind)
	}
	err = root.Visit(func(n *ir.Node, isPost bool) (bool, error) {
		if isPost {
			return true, nil
		}
		return true, n.Check()
	})
	if err != nil {
		return nil, err
	}
	return root, nil
}

// Convert decodes data in one format and renders it in another.
func Convert(data []byte, from, to format.Format) ([]byte, error) {
	root, err := Unmarshal(data, from)
	if err != nil {
		return nil, err
	}
	return Marshal(root, to)
}
