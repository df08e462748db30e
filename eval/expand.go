package eval

import (
	"fmt"
	"strings"

	"github.com/signadot/jdoc/encode"
	"github.com/signadot/jdoc/gomap"
	"github.com/signadot/jdoc/ir"
)

// Expand returns a copy of doc with expressions in strings and comments
// evaluated. Paths used by getpath resolve against doc.
func Expand(doc ir.Value, env Env) (ir.Value, error) {
	return expand(doc, doc, env)
}

func expand(v, doc ir.Value, env Env) (ir.Value, error) {
	switch x := v.(type) {
	case *ir.Object:
		res := ir.NewObject()
		for k, y := range x.All() {
			xy, err := expand(y, doc, env)
			if err != nil {
				return nil, fmt.Errorf("%q: %w", k, err)
			}
			if err := res.PutValue(k, xy); err != nil {
				return nil, err
			}
		}
		for _, k := range x.Keys() {
			c, ok := x.Comment(k)
			if !ok {
				continue
			}
			xc, err := ExpandString(c, doc, env)
			if err != nil {
				return nil, fmt.Errorf("comment of %q: %w", k, err)
			}
			res.SetComment(k, xc)
		}
		return res, nil
	case *ir.List:
		res := ir.NewList()
		for i, y := range x.All() {
			xy, err := expand(y, doc, env)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			if err := res.Add(xy); err != nil {
				return nil, err
			}
		}
		return res, nil
	case ir.String:
		s := string(x)
		if code, ok := rawRef(s); ok {
			return Eval(code, doc, env)
		}
		xs, err := ExpandString(s, doc, env)
		if err != nil {
			return nil, err
		}
		return ir.String(xs), nil
	default:
		return v, nil
	}
}

// rawRef reports whether s is exactly ".[code]".
func rawRef(s string) (string, bool) {
	if len(s) < 3 || !strings.HasPrefix(s, ".[") || !strings.HasSuffix(s, "]") {
		return "", false
	}
	code := s[2 : len(s)-1]
	if strings.Contains(code, "]") {
		return "", false
	}
	return strings.TrimSpace(code), true
}

// ExpandString replaces each "$[code]" or ".[code]" in s by the text of
// the value of code. Within code, a backslash escapes the next byte so
// "\]" does not end the expression. An expression without a closing "]"
// is kept literally.
func ExpandString(s string, doc ir.Value, env Env) (string, error) {
	var out strings.Builder
	i := 0
	for i < len(s) {
		c := s[i]
		if (c != '$' && c != '.') || i+1 >= len(s) || s[i+1] != '[' {
			out.WriteByte(c)
			i++
			continue
		}
		code, end, ok := scanExpr(s, i+2)
		if !ok {
			out.WriteString(s[i:])
			break
		}
		x, err := run(strings.TrimSpace(code), doc, env)
		if err != nil {
			return "", err
		}
		text, err := exprText(x)
		if err != nil {
			return "", fmt.Errorf("%w: %q: %w", ErrResult, code, err)
		}
		out.WriteString(text)
		i = end
	}
	return out.String(), nil
}

// scanExpr reads unescaped code from s[i:] up to a closing ']' and returns
// the index past it.
func scanExpr(s string, i int) (string, int, bool) {
	var code []byte
	for i < len(s) {
		c := s[i]
		switch {
		case c == '\\' && i+1 < len(s):
			code = append(code, s[i+1])
			i += 2
		case c == ']':
			return string(code), i + 1, true
		default:
			code = append(code, c)
			i++
		}
	}
	return "", 0, false
}

func exprText(x any) (string, error) {
	if s, ok := x.(string); ok {
		return s, nil
	}
	v, err := gomap.FromAny(x)
	if err != nil {
		return "", err
	}
	return encode.MustString(v, encode.EncodeWire(true)), nil
}
