package token

import (
	"unicode"
	"unicode/utf8"
)

var keywords = []struct {
	lit []byte
	tt  TokenType
}{
	{[]byte("true"), TTrue},
	{[]byte("false"), TFalse},
	{[]byte("null"), TNull},
}

// keyword matches one of true, false or null at the start of d.
func keyword(d []byte) (TokenType, int, bool) {
	for _, kw := range keywords {
		if isKeyWordPrefix(d, kw.lit) {
			return kw.tt, len(kw.lit), true
		}
	}
	return 0, 0, false
}

func isKeyWordPrefix(d, pre []byte) bool {
	if len(d) < len(pre) {
		return false
	}
	for i := range pre {
		if d[i] != pre[i] {
			return false
		}
	}
	if len(d) == len(pre) {
		return true
	}
	r, _ := utf8.DecodeRune(d[len(pre):])
	return !isMidLiteral(r)
}

func isMidLiteral(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// literalEnd returns the length of the run of literal characters at the
// start of d, used to report bad literals.
func literalEnd(d []byte) int {
	i := 0
	for i < len(d) {
		r, sz := utf8.DecodeRune(d[i:])
		if !isMidLiteral(r) {
			break
		}
		i += sz
	}
	return max(i, 1)
}

func firstRune(d []byte) rune {
	r, _ := utf8.DecodeRune(d)
	return r
}
