package encode

import (
	"errors"
	"fmt"

	"github.com/y-lohse/ink/ir"
)

var (
	ErrEncoding     = errors.New("encoding error")
	ErrUnknownKind  = ir.ErrUnknownKind
	ErrUnencodable  = fmt.Errorf("%w: unencodable value", ErrEncoding)
	ErrNotContainer = fmt.Errorf("%w: root is not a container", ErrEncoding)
)
