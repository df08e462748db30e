package token

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

type TokenType int

const (
	TLCurl TokenType = iota
	TRCurl
	TLSquare
	TRSquare
	TColon
	TComma
	TTrue
	TFalse
	TNull
	TString
	TInteger
	TDecimal
)

func (t TokenType) String() string {
	s, ok := map[TokenType]string{
		TLCurl:   "TLCurl",
		TRCurl:   "TRCurl",
		TLSquare: "TLSquare",
		TRSquare: "TRSquare",
		TColon:   "TColon",
		TComma:   "TComma",
		TTrue:    "TTrue",
		TFalse:   "TFalse",
		TNull:    "TNull",
		TString:  "TString",
		TInteger: "TInteger",
		TDecimal: "TDecimal",
	}[t]
	if ok {
		return s
	}
	return "<unknown token type>"
}

// IsScalar reports whether tokens of type t are complete values by
// themselves.
func (t TokenType) IsScalar() bool {
	switch t {
	case TTrue, TFalse, TNull, TString, TInteger, TDecimal:
		return true
	default:
		return false
	}
}

// Token is a lexical unit. Bytes holds the text the token was read from.
// String tokens carry the decoded value in Str, TInteger tokens in Int and
// TDecimal tokens in Dec.
type Token struct {
	Type  TokenType
	Pos   *Pos
	Bytes []byte

	Str string
	Int *big.Int
	Dec decimal.Decimal
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

// String returns the token as it appeared in the input.
func (t *Token) String() string {
	return string(t.Bytes)
}
