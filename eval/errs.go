package eval

import "errors"

var (
	ErrEval   = errors.New("eval error")
	ErrResult = errors.New("unrepresentable result")
)
