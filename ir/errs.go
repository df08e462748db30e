package ir

import (
	"errors"
	"fmt"
)

var (
	ErrMissingKey      = errors.New("missing key")
	ErrTypeMismatch    = errors.New("type mismatch")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrIndexOutOfRange = errors.New("index out of range")
)

func missingKey(key string) error {
	return fmt.Errorf("%w: %q", ErrMissingKey, key)
}

func typeMismatch(key string, v Value, want string) error {
	return fmt.Errorf("%w: %q is %s, not %s", ErrTypeMismatch, key, v.Type(), want)
}

func doesNotFit(key string, v Value, want string) error {
	return fmt.Errorf("%w: %q (%s %s) does not fit in %s", ErrTypeMismatch, key, v.Type(), Text(v), want)
}
