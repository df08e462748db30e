package parse

import (
	"errors"
	"fmt"
	"os"

	"github.com/signadot/jdoc/debug"
	"github.com/signadot/jdoc/ir"
	"github.com/signadot/jdoc/token"
)

// ParseObject parses d, which must hold exactly one JSON object.
func ParseObject(d []byte, opts ...ParseOption) (*ir.Object, error) {
	p, err := newParser(d, opts)
	if err != nil {
		return nil, err
	}
	res, err := p.object()
	if err != nil {
		return nil, p.fail(err)
	}
	if err := p.end(res); err != nil {
		return nil, err
	}
	return res, nil
}

// ParseList parses d, which must hold exactly one JSON list.
func ParseList(d []byte, opts ...ParseOption) (*ir.List, error) {
	p, err := newParser(d, opts)
	if err != nil {
		return nil, err
	}
	res, err := p.list()
	if err != nil {
		return nil, p.fail(err)
	}
	if err := p.end(res); err != nil {
		return nil, err
	}
	return res, nil
}

// Parse parses d as an object or a list, chosen by its first token.
func Parse(d []byte, opts ...ParseOption) (ir.Value, error) {
	p, err := newParser(d, opts)
	if err != nil {
		return nil, err
	}
	var res ir.Value
	t, err := p.next("'{' or '['")
	if err != nil {
		return nil, p.fail(err)
	}
	if err := p.c.Rewind(1); err != nil {
		return nil, err
	}
	switch t.Type {
	case token.TLCurl:
		res, err = p.object()
	case token.TLSquare:
		res, err = p.list()
	default:
		return nil, p.fail(unexpected(t, "'{' or '['"))
	}
	if err != nil {
		return nil, p.fail(err)
	}
	if err := p.end(res); err != nil {
		return nil, err
	}
	return res, nil
}

type parser struct {
	c     *Cursor
	depth int
	opts  *parseOpts

	// lexErr is set when the input only tokenizes up to an error. The
	// tokens before the error are parsed and a complete value followed by
	// the error is reported as trailing data.
	lexErr error
}

func newParser(d []byte, opts []ParseOption) (*parser, error) {
	pOpts := &parseOpts{maxDepth: DefaultMaxDepth}
	for _, f := range opts {
		f(pOpts)
	}
	p := &parser{opts: pOpts}
	toks, err := token.Tokenize(nil, d)
	if err != nil {
		te := &token.TokenizeErr{}
		if !errors.As(err, &te) {
			return nil, err
		}
		toks, _ = token.Tokenize(nil, d[:te.Pos.I])
		if toks == nil {
			return nil, err
		}
		p.lexErr = err
	}
	if debug.Tokens() {
		token.PrintTokens(os.Stderr, toks, "parse")
	}
	p.c = NewCursor(toks)
	return p, nil
}

// fail returns the lexical error in place of err if the input did not
// tokenize.
func (p *parser) fail(err error) error {
	if p.lexErr != nil {
		return p.lexErr
	}
	return err
}

func (p *parser) end(v ir.Value) error {
	if p.lexErr != nil {
		return fmt.Errorf("%w: %w", ErrTrailingData, p.lexErr)
	}
	if p.c.HasNext() {
		t, _ := p.c.Next()
		return fmt.Errorf("%w: %s at %s", ErrTrailingData, t.String(), t.Pos)
	}
	if debug.Parse() {
		debug.Logf("parsed %d tokens:\n%s\n", p.c.Len(), v)
	}
	return nil
}

// next returns the next token, failing with ErrMissingToken naming what
// was expected when there is none.
func (p *parser) next(expected string) (*token.Token, error) {
	if !p.c.HasNext() {
		return nil, fmt.Errorf("%w, expected %s", ErrMissingToken, expected)
	}
	return p.c.Next()
}

func (p *parser) expect(tt token.TokenType, expected string) (*token.Token, error) {
	t, err := p.next(expected)
	if err != nil {
		return nil, err
	}
	if t.Type != tt {
		return nil, unexpected(t, expected)
	}
	return t, nil
}

func unexpected(t *token.Token, expected string) error {
	return fmt.Errorf("%w: invalid token %s, expected %s at %s", ErrUnexpectedToken, t.String(), expected, t.Pos)
}

func (p *parser) enter(t *token.Token) error {
	p.depth++
	if p.depth > p.opts.maxDepth {
		return fmt.Errorf("%w: more than %d levels at %s", ErrDepth, p.opts.maxDepth, t.Pos)
	}
	return nil
}

func (p *parser) leave() {
	p.depth--
}

func (p *parser) object() (*ir.Object, error) {
	open, err := p.expect(token.TLCurl, "'{'")
	if err != nil {
		return nil, err
	}
	if err := p.enter(open); err != nil {
		return nil, err
	}
	defer p.leave()
	res := ir.NewObject()
	for i := 0; ; i++ {
		expected := "string key or '}'"
		if i != 0 {
			expected = "',' or '}'"
		}
		t, err := p.next(expected)
		if err != nil {
			return nil, err
		}
		if t.Type == token.TRCurl {
			return res, nil
		}
		if i != 0 {
			if t.Type != token.TComma {
				return nil, unexpected(t, expected)
			}
			if t, err = p.next("string key"); err != nil {
				return nil, err
			}
		}
		if t.Type != token.TString {
			return nil, unexpected(t, "string key")
		}
		key := t.Str
		if _, err := p.expect(token.TColon, "':'"); err != nil {
			return nil, err
		}
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		// res has no owner until returned, so the store does not walk v.
		if err := res.PutValue(key, v); err != nil {
			return nil, err
		}
	}
}

func (p *parser) list() (*ir.List, error) {
	open, err := p.expect(token.TLSquare, "'['")
	if err != nil {
		return nil, err
	}
	if err := p.enter(open); err != nil {
		return nil, err
	}
	defer p.leave()
	res := ir.NewList()
	for i := 0; ; i++ {
		if i != 0 {
			t, err := p.next("',' or ']'")
			if err != nil {
				return nil, err
			}
			if t.Type == token.TRSquare {
				return res, nil
			}
			if t.Type != token.TComma {
				return nil, unexpected(t, "',' or ']'")
			}
		} else {
			t, err := p.next("value or ']'")
			if err != nil {
				return nil, err
			}
			if t.Type == token.TRSquare {
				return res, nil
			}
			if err := p.c.Rewind(1); err != nil {
				return nil, err
			}
		}
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		if err := res.Add(v); err != nil {
			return nil, err
		}
	}
}

func (p *parser) value() (ir.Value, error) {
	t, err := p.next("value")
	if err != nil {
		return nil, err
	}
	switch t.Type {
	case token.TLCurl:
		if err := p.c.Rewind(1); err != nil {
			return nil, err
		}
		return p.object()
	case token.TLSquare:
		if err := p.c.Rewind(1); err != nil {
			return nil, err
		}
		return p.list()
	case token.TTrue:
		return ir.Bool(true), nil
	case token.TFalse:
		return ir.Bool(false), nil
	case token.TNull:
		return ir.Null{}, nil
	case token.TString:
		return ir.String(t.Str), nil
	case token.TInteger:
		return ir.NewInteger(t.Int), nil
	case token.TDecimal:
		return ir.NewDecimal(t.Dec), nil
	default:
		return nil, unexpected(t, "value")
	}
}
