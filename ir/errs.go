package ir

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidState     = errors.New("invalid state")
	ErrInvalidStructure = errors.New("invalid structure")
	ErrConversion       = errors.New("conversion error")
)

// PathErr locates an error at a node of a value tree.
type PathErr struct {
	Path string
	Err  error
}

func (e *PathErr) Unwrap() error {
	return e.Err
}

func (e *PathErr) Error() string {
	p := e.Path
	if p == "" {
		p = "<root>"
	}
	return fmt.Sprintf("%s at %s", e.Err.Error(), p)
}

func pathErrf(n *Node, base error, msg string, args ...any) error {
	return &PathErr{
		Path: n.Trace(),
		Err:  fmt.Errorf("%w: %s", base, fmt.Sprintf(msg, args...)),
	}
}
