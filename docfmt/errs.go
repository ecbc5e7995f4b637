package docfmt

import "errors"

var (
	ErrDocument    = errors.New("document error")
	ErrUnsupported = errors.New("unsupported document format")
)
