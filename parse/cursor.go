package parse

import (
	"fmt"

	"github.com/signadot/jdoc/token"
)

// Cursor reads a token sequence front to back. Its position may be moved
// back with Rewind or SeekTo.
type Cursor struct {
	toks []token.Token
	pos  int
}

func NewCursor(toks []token.Token) *Cursor {
	return &Cursor{toks: toks}
}

func (c *Cursor) HasNext() bool {
	return c.pos < len(c.toks)
}

// Next returns the token at the current position and advances past it.
func (c *Cursor) Next() (*token.Token, error) {
	if !c.HasNext() {
		return nil, fmt.Errorf("%w: next at %d of %d", ErrIndexOutOfRange, c.pos, len(c.toks))
	}
	t := &c.toks[c.pos]
	c.pos++
	return t, nil
}

func (c *Cursor) Rewind(n int) error {
	return c.SeekTo(c.pos - n)
}

func (c *Cursor) SeekTo(pos int) error {
	if pos < 0 || pos > len(c.toks) {
		return fmt.Errorf("%w: seek to %d of %d", ErrIndexOutOfRange, pos, len(c.toks))
	}
	c.pos = pos
	return nil
}

func (c *Cursor) Pos() int {
	return c.pos
}

func (c *Cursor) Len() int {
	return len(c.toks)
}

func (c *Cursor) Remaining() int {
	return len(c.toks) - c.pos
}
