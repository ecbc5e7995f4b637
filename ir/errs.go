package ir

import "errors"

var (
	errInternal = errors.New("internal error")

	ErrInvalidNode = errors.New("invalid node")
	ErrUnknownKind = errors.New("unknown node kind")
	ErrNoPath      = errors.New("no such path")
)
