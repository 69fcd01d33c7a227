package token

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedInput   = errors.New("malformed input")
	ErrUnmatchedBrace   = errors.New("unmatched brace")
	ErrUnmatchedBracket = errors.New("unmatched bracket")
	ErrMismatchedClose  = fmt.Errorf("%w: mismatched close", ErrMalformedInput)
	ErrTooDeep          = errors.New("nesting too deep")
)

// ParseErr locates an error in the input. Line and Col count from 1;
// Col counts bytes.
type ParseErr struct {
	Offset  int
	Line    int
	Col     int
	Context string
	Err     error
}

func (e *ParseErr) Unwrap() error {
	return e.Err
}

func (e *ParseErr) Error() string {
	if e.Context == "" {
		return fmt.Sprintf("%s (line %d, col %d)", e.Err, e.Line, e.Col)
	}
	return fmt.Sprintf("%s on line %d, col %d near: %s", e.Err, e.Line, e.Col, e.Context)
}

// NewParseErr returns a ParseErr for offset off in d.
func NewParseErr(d []byte, off int, err error) *ParseErr {
	line, col := LineCol(d, off)
	return &ParseErr{
		Offset:  off,
		Line:    line,
		Col:     col,
		Context: Context(d, off),
		Err:     err,
	}
}

func errAt(d []byte, off int, base error, msg string, args ...any) error {
	return NewParseErr(d, off, fmt.Errorf("%w: %s", base, fmt.Sprintf(msg, args...)))
}
