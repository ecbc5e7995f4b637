package eval

import "errors"

var ErrQuery = errors.New("query error")
