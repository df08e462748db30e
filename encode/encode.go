package encode

import (
	"fmt"
	"io"
	"strings"

	"github.com/signadot/jdoc/format"
	"github.com/signadot/jdoc/ir"
	"github.com/signadot/jdoc/token"
)

// commentLine keeps a comment on the line it starts on, so stripping
// comments leaves valid JSON.
var commentLine = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\u2028", " ", "\u2029", " ")

type EncState struct {
	indent       string
	compact      bool
	initialNL    int
	newlineEvery int
	comments     bool
	wire         bool

	format format.Format

	Color func(ir.Type, ColorAttr, string) string
}

func newEncState(opts []EncodeOption) *EncState {
	es := &EncState{
		indent:       "\t",
		compact:      true,
		initialNL:    4,
		newlineEvery: 8,
		comments:     true,
	}
	for _, opt := range opts {
		opt(es)
	}
	if es.wire || es.format != format.PrettyFormat {
		es.comments = false
	}
	return es
}

// Encode writes v to w. By default v is rendered in the pretty format:
// tab indentation, short scalar lists compacted onto few lines, and object
// comments appended to their entries as `//` line comments. No trailing
// newline is written.
func Encode(v ir.Value, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts)
	if es.format == format.YAMLFormat {
		return fmt.Errorf("%w: cannot encode %s, use gomap.ToYAML", ErrEncoding, es.format)
	}
	return encode(v, w, 0, es)
}

func encode(v ir.Value, w io.Writer, level int, es *EncState) error {
	switch x := v.(type) {
	case *ir.Object:
		return encodeObject(x, w, level, es)
	case *ir.List:
		return encodeList(x, w, level, es)
	case nil:
		return fmt.Errorf("%w: nil value", ErrEncoding)
	default:
		return writeString(w, scalarString(x, es))
	}
}

func encodeObject(o *ir.Object, w io.Writer, level int, es *EncState) error {
	if err := writeSep(w, ir.ObjectType, "{", es); err != nil {
		return err
	}
	n := o.Len()
	if n == 0 {
		return writeSep(w, ir.ObjectType, "}", es)
	}
	i := 0
	for k, v := range o.All() {
		if err := writeNL(w, level+1, es); err != nil {
			return err
		}
		if err := writeString(w, applyColor(es, ir.ObjectType, FieldColor, token.Quote(k))); err != nil {
			return err
		}
		colon := ": "
		if es.wire {
			colon = ":"
		}
		if err := writeSep(w, ir.ObjectType, colon, es); err != nil {
			return err
		}
		if err := encode(v, w, level+1, es); err != nil {
			return err
		}
		if i != n-1 {
			if err := writeSep(w, ir.ObjectType, ",", es); err != nil {
				return err
			}
		}
		if es.comments {
			if c, ok := o.Comment(k); ok {
				if err := writeString(w, applyColor(es, ir.ObjectType, CommentColor, " //"+commentLine.Replace(c))); err != nil {
					return err
				}
			}
		}
		i++
	}
	if err := writeNL(w, level, es); err != nil {
		return err
	}
	return writeSep(w, ir.ObjectType, "}", es)
}

func encodeList(l *ir.List, w io.Writer, level int, es *EncState) error {
	if err := writeSep(w, ir.ListType, "[", es); err != nil {
		return err
	}
	n := l.Len()
	if n == 0 {
		return writeSep(w, ir.ListType, "]", es)
	}
	if !es.wire && es.compact && compactable(l) {
		return encodeCompactList(l, w, level, es)
	}
	for i, v := range l.All() {
		if i != 0 {
			if err := writeSep(w, ir.ListType, ",", es); err != nil {
				return err
			}
		}
		if err := writeNL(w, level+1, es); err != nil {
			return err
		}
		if err := encode(v, w, level+1, es); err != nil {
			return err
		}
	}
	if err := writeNL(w, level, es); err != nil {
		return err
	}
	return writeSep(w, ir.ListType, "]", es)
}

func encodeCompactList(l *ir.List, w io.Writer, level int, es *EncState) error {
	if l.Len() < es.initialNL {
		for i, v := range l.All() {
			if i != 0 {
				if err := writeSep(w, ir.ListType, ", ", es); err != nil {
					return err
				}
			}
			if err := writeString(w, scalarString(v, es)); err != nil {
				return err
			}
		}
		return writeSep(w, ir.ListType, "]", es)
	}
	if err := writeNL(w, level+1, es); err != nil {
		return err
	}
	for i, v := range l.All() {
		if i != 0 {
			if err := writeSep(w, ir.ListType, ",", es); err != nil {
				return err
			}
			if es.newlineEvery > 0 && i%es.newlineEvery == 0 {
				if err := writeNL(w, level+1, es); err != nil {
					return err
				}
			} else if err := writeString(w, " "); err != nil {
				return err
			}
		}
		if err := writeString(w, scalarString(v, es)); err != nil {
			return err
		}
	}
	if err := writeNL(w, level, es); err != nil {
		return err
	}
	return writeSep(w, ir.ListType, "]", es)
}

// compactable reports whether every element of l is a scalar with a fixed
// width rendering: a bool, an integer fitting in 64 bits, a decimal fitting
// in a float64 or a string.
func compactable(l *ir.List) bool {
	for _, v := range l.All() {
		switch x := v.(type) {
		case ir.Bool, ir.String:
		case ir.Integer:
			if _, ok := x.Int64(); !ok {
				return false
			}
		case ir.Decimal:
			if _, ok := x.Float(64); !ok {
				return false
			}
		default:
			return false
		}
	}
	return true
}

func scalarString(v ir.Value, es *EncState) string {
	var s string
	if str, ok := v.(ir.String); ok {
		s = token.Quote(string(str))
	} else {
		s = ir.Text(v)
	}
	return applyColor(es, v.Type(), ValueColor, s)
}

// Helper functions for writing
func writeNL(w io.Writer, level int, es *EncState) error {
	if es.wire {
		return nil
	}
	return writeString(w, "\n"+strings.Repeat(es.indent, level))
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

func writeSep(w io.Writer, t ir.Type, sep string, es *EncState) error {
	return writeString(w, applyColor(es, t, SepColor, sep))
}

// Color application helpers

func applyColor(es *EncState, t ir.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(t, attr, v)
}
