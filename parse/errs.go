package parse

import "errors"

var ErrRange = errors.New("range out of bounds")
