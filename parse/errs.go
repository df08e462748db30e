package parse

import (
	"errors"
	"fmt"
)

var (
	ErrParse           = errors.New("parse error")
	ErrUnexpectedToken = fmt.Errorf("%w: unexpected token", ErrParse)
	ErrMissingToken    = fmt.Errorf("%w: missing token", ErrParse)
	ErrTrailingData    = fmt.Errorf("%w: trailing data", ErrParse)
	ErrDepth           = fmt.Errorf("%w: nesting too deep", ErrParse)

	ErrIndexOutOfRange = errors.New("cursor index out of range")
)
