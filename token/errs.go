package token

import (
	"errors"
	"fmt"
)

var (
	ErrLexical = errors.New("lexical error")

	ErrBadUTF8           = fmt.Errorf("%w: bad utf8", ErrLexical)
	ErrUnterminated      = fmt.Errorf("%w: unterminated string", ErrLexical)
	ErrNumber            = fmt.Errorf("%w: bad number", ErrLexical)
	ErrNumberLeadingZero = fmt.Errorf("%w: leading zero", ErrNumber)
	ErrLiteral           = fmt.Errorf("%w: bad literal", ErrLexical)
	ErrBadEscape         = fmt.Errorf("%w: bad escape", ErrLexical)
	ErrBadUnicode        = fmt.Errorf("%w: bad unicode escape", ErrBadEscape)
	ErrUnicodeControl    = fmt.Errorf("%w: unescaped control character", ErrLexical)
	ErrUnexpectedChar    = fmt.Errorf("%w: unexpected character", ErrLexical)
)

// TokenizeErr is returned by [Tokenize]. It records where the error occurred
// and the fragment of input that could not be tokenized.
type TokenizeErr struct {
	Err      error
	Pos      Pos
	Fragment string
}

func (t *TokenizeErr) Unwrap() error {
	return t.Err
}

func NewTokenizeErr(e error, p *Pos, fragment string) *TokenizeErr {
	return &TokenizeErr{Err: e, Pos: *p, Fragment: fragment}
}

func (e *TokenizeErr) Error() string {
	return fmt.Sprintf("%s %q at %s", e.Err.Error(), e.Fragment, e.Pos.String())
}
