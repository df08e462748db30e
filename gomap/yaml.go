package gomap

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/signadot/jdoc/ir"
)

type yamlOpts struct {
	indent   int
	comments bool
}

type YAMLOption func(*yamlOpts)

func YAMLIndent(n int) YAMLOption     { return func(o *yamlOpts) { o.indent = n } }
func YAMLComments(v bool) YAMLOption { return func(o *yamlOpts) { o.comments = v } }

// rawNumber is written to YAML as its text.
type rawNumber string

func (n rawNumber) MarshalYAML() ([]byte, error) {
	return []byte(n), nil
}

// ToYAML renders v as YAML, keeping object key order. Comments of entries
// holding scalars are written as line comments.
func ToYAML(v ir.Value, opts ...YAMLOption) ([]byte, error) {
	yo := &yamlOpts{indent: 2, comments: true}
	for _, f := range opts {
		f(yo)
	}
	var cm yaml.CommentMap
	if yo.comments {
		cm = yaml.CommentMap{}
		collectComments(v, "$", cm)
	}
	encOpts := []yaml.EncodeOption{yaml.Indent(yo.indent)}
	if len(cm) != 0 {
		encOpts = append(encOpts, yaml.WithComment(cm))
	}
	return yaml.MarshalWithOptions(toYAMLValue(v), encOpts...)
}

func toYAMLValue(v ir.Value) any {
	switch x := v.(type) {
	case ir.Null, nil:
		return nil
	case ir.Bool:
		return bool(x)
	case ir.String:
		return string(x)
	case ir.Integer:
		return rawNumber(x.Text())
	case ir.Decimal:
		return rawNumber(x.Text())
	case *ir.Object:
		res := make(yaml.MapSlice, 0, x.Len())
		for k, y := range x.All() {
			res = append(res, yaml.MapItem{Key: k, Value: toYAMLValue(y)})
		}
		return res
	case *ir.List:
		res := make([]any, 0, x.Len())
		for _, y := range x.All() {
			res = append(res, toYAMLValue(y))
		}
		return res
	default:
		panic("type")
	}
}

var commentLine = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

var plainKey = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*$`)

// collectComments records the comments of v under their YAML paths. Keys
// which cannot be written as a plain path segment are skipped.
func collectComments(v ir.Value, path string, cm yaml.CommentMap) {
	switch x := v.(type) {
	case *ir.Object:
		for k, y := range x.All() {
			if !plainKey.MatchString(k) {
				continue
			}
			p := path + "." + k
			if c, ok := x.Comment(k); ok && y.Type().IsLeaf() {
				cm[p] = []*yaml.Comment{yaml.LineComment(commentLine.Replace(c))}
			}
			collectComments(y, p, cm)
		}
	case *ir.List:
		for i, y := range x.All() {
			collectComments(y, path+"["+strconv.Itoa(i)+"]", cm)
		}
	}
}
