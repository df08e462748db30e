package token

import (
	"encoding/hex"
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"
)

// Quote returns v as a double quoted JSON string.
func Quote(v string) string {
	d := make([]byte, 1, len(v)+2)
	d[0] = '"'
	ucs := []byte{0, 0}
	cps := []byte{0, 0, 0, 0}
	for _, r := range v {
		switch r {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			if unicode.IsControl(r) {
				ucs[0] = byte(r >> 8)
				ucs[1] = byte(r)
				cps = hex.AppendEncode(cps[:0], ucs)
				d = append(d, '\\', 'u', cps[0], cps[1], cps[2], cps[3])
			} else {
				d = utf8.AppendRune(d, r)
			}
		}
	}
	d = append(d, '"')
	return string(d)
}

// Unquote decodes a double quoted JSON string.
func Unquote(v string) (string, error) {
	n, s, err := quoted([]byte(v))
	if err != nil {
		return "", err
	}
	if n != len(v) {
		return "", ErrUnterminated
	}
	return s, nil
}

// quoted scans the double quoted string at the start of d, returning the
// number of bytes consumed and the decoded value. On error the returned
// offset points at the offending byte.
func quoted(d []byte) (int, string, error) {
	if len(d) == 0 || d[0] != '"' {
		return 0, "", ErrUnterminated
	}
	b := &strings.Builder{}
	i := 1
	n := len(d)
	for i < n {
		c := d[i]
		switch {
		case c == '"':
			return i + 1, b.String(), nil
		case c == '\\':
			sz, err := escape(d[i:], b)
			if err != nil {
				return i, "", err
			}
			i += sz
		case c < 0x20:
			return i, "", ErrUnicodeControl
		case c < utf8.RuneSelf:
			b.WriteByte(c)
			i++
		default:
			r, sz := utf8.DecodeRune(d[i:])
			if r == utf8.RuneError && sz == 1 {
				return i, "", ErrBadUTF8
			}
			b.WriteRune(r)
			i += sz
		}
	}
	return n, "", ErrUnterminated
}

// escape decodes the escape sequence at the start of d (which begins with a
// backslash) into b, returning its length.
func escape(d []byte, b *strings.Builder) (int, error) {
	if len(d) < 2 {
		return len(d), ErrUnterminated
	}
	switch d[1] {
	case '"', '\\', '/':
		b.WriteByte(d[1])
	case 'b':
		b.WriteByte('\b')
	case 'f':
		b.WriteByte('\f')
	case 'n':
		b.WriteByte('\n')
	case 'r':
		b.WriteByte('\r')
	case 't':
		b.WriteByte('\t')
	case 'u':
		r, err := hex4(d[2:])
		if err != nil {
			return 2, err
		}
		if !utf16.IsSurrogate(r) {
			b.WriteRune(r)
			return 6, nil
		}
		// a high surrogate must be followed by an escaped low surrogate,
		// otherwise it decodes to the replacement character.
		if len(d) >= 12 && d[6] == '\\' && d[7] == 'u' {
			r2, err := hex4(d[8:])
			if err != nil {
				return 8, err
			}
			if dr := utf16.DecodeRune(r, r2); dr != utf8.RuneError {
				b.WriteRune(dr)
				return 12, nil
			}
		}
		b.WriteRune(utf8.RuneError)
		return 6, nil
	default:
		return 1, ErrBadEscape
	}
	return 2, nil
}

func hex4(d []byte) (rune, error) {
	if len(d) < 4 || !allHex(d[:4]) {
		return 0, ErrBadUnicode
	}
	var r rune
	for _, c := range d[:4] {
		r <<= 4
		switch {
		case c >= '0' && c <= '9':
			r |= rune(c - '0')
		case c >= 'a' && c <= 'f':
			r |= rune(c-'a') + 10
		default:
			r |= rune(c-'A') + 10
		}
	}
	return r, nil
}

func allHex(d []byte) bool {
	for _, c := range d {
		if c >= '0' && c <= '9' {
			continue
		}
		if c >= 'a' && c <= 'f' {
			continue
		}
		if c >= 'A' && c <= 'F' {
			continue
		}
		return false
	}
	return true
}
