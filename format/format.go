// Package format names the encodings a compiled story can be stored in.
//
// The inkc text encoding is canonical. The document formats (JSON, YAML and
// CBOR) carry the same tree in a generic shape for inspection and
// interchange with tools that do not speak inkc.
package format

import (
	"errors"
	"fmt"
)

type Format int

const (
	InkcFormat Format = iota
	JSONFormat
	YAMLFormat
	CBORFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"i":    InkcFormat,
		"inkc": InkcFormat,
		"j":    JSONFormat,
		"json": JSONFormat,
		"y":    YAMLFormat,
		"yaml": YAMLFormat,
		"c":    CBORFormat,
		"cbor": CBORFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case InkcFormat:
		return []byte("inkc"), nil
	case JSONFormat:
		return []byte("json"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
	case CBORFormat:
		return []byte("cbor"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsInkc() bool { return f == InkcFormat }

// IsBinary reports whether the format is unsuitable for a terminal.
func (f Format) IsBinary() bool { return f == CBORFormat }

// Suffix returns the file extension for this format (including the dot).
func (f Format) Suffix() string {
	switch f {
	case InkcFormat:
		return ".inkc"
	case JSONFormat:
		return ".json"
	case YAMLFormat:
		return ".yaml"
	case CBORFormat:
		return ".cbor"
	default:
		return ""
	}
}

// FromSuffix guesses a format from a file name extension.
func FromSuffix(name string) (Format, bool) {
	for _, f := range AllFormats() {
		suf := f.Suffix()
		if len(name) > len(suf) && name[len(name)-len(suf):] == suf {
			return f, true
		}
	}
	return 0, false
}

// AllFormats returns all supported formats in preference order.
func AllFormats() []Format {
	return []Format{InkcFormat, JSONFormat, YAMLFormat, CBORFormat}
}
