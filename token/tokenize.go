package token

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

const maxFragment = 24

// Tokenize appends the tokens of src to dst. It fails on the first lexical
// error without returning partial results.
func Tokenize(dst []Token, src []byte) ([]Token, error) {
	posDoc := &PosDoc{d: src}
	i, n := 0, len(src)
	for i < n {
		c := src[i]
		switch c {
		case '\n':
			posDoc.nl(i)
			i++
			continue
		case ' ', '\t', '\r':
			i++
			continue
		case '{', '}', '[', ']', ':', ',':
			dst = append(dst, Token{
				Type:  punctType(c),
				Pos:   posDoc.Pos(i),
				Bytes: src[i : i+1],
			})
			i++
		case '"':
			sz, s, err := quoted(src[i:])
			if err != nil {
				return nil, NewTokenizeErr(err, posDoc.Pos(i+sz), fragment(src, i, i+sz+1))
			}
			dst = append(dst, Token{
				Type:  TString,
				Pos:   posDoc.Pos(i),
				Bytes: src[i : i+sz],
				Str:   s,
			})
			i += sz
		case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			tok, sz, err := numberToken(src[i:], posDoc.Pos(i))
			if err != nil {
				return nil, NewTokenizeErr(err, posDoc.Pos(i), fragment(src, i, i+max(sz, 1)))
			}
			dst = append(dst, *tok)
			i += sz
		default:
			tt, sz, ok := keyword(src[i:])
			if ok {
				dst = append(dst, Token{
					Type:  tt,
					Pos:   posDoc.Pos(i),
					Bytes: src[i : i+sz],
				})
				i += sz
				continue
			}
			if isMidLiteral(firstRune(src[i:])) {
				return nil, NewTokenizeErr(ErrLiteral, posDoc.Pos(i), fragment(src, i, i+literalEnd(src[i:])))
			}
			return nil, NewTokenizeErr(ErrUnexpectedChar, posDoc.Pos(i), fragment(src, i, i+1))
		}
	}
	return dst, nil
}

func punctType(c byte) TokenType {
	switch c {
	case '{':
		return TLCurl
	case '}':
		return TRCurl
	case '[':
		return TLSquare
	case ']':
		return TRSquare
	case ':':
		return TColon
	case ',':
		return TComma
	}
	panic(fmt.Sprintf("not punctuation: %q", c))
}

func numberToken(d []byte, pos *Pos) (*Token, int, error) {
	sz, isDecimal, err := number(d)
	if err != nil {
		return nil, sz, err
	}
	tok := &Token{
		Pos:   pos,
		Bytes: d[:sz],
	}
	if !isDecimal {
		v, ok := new(big.Int).SetString(string(d[:sz]), 10)
		if !ok {
			return nil, sz, ErrNumber
		}
		tok.Type = TInteger
		tok.Int = v
		return tok, sz, nil
	}
	v, err := decimal.NewFromString(string(d[:sz]))
	if err != nil {
		return nil, sz, fmt.Errorf("%w (%w)", ErrNumber, err)
	}
	tok.Type = TDecimal
	tok.Dec = v
	return tok, sz, nil
}

// fragment returns src[i:j] clamped to the input and to maxFragment bytes.
func fragment(src []byte, i, j int) string {
	j = min(j, len(src), i+maxFragment)
	if i >= j {
		return ""
	}
	return string(src[i:j])
}
