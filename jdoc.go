package jdoc

import (
	"bytes"
	"io"

	"github.com/signadot/jdoc/encode"
	"github.com/signadot/jdoc/format"
	"github.com/signadot/jdoc/gomap"
	"github.com/signadot/jdoc/ir"
	"github.com/signadot/jdoc/parse"
)

func ParseObject(d []byte, opts ...parse.ParseOption) (*ir.Object, error) {
	return parse.ParseObject(d, opts...)
}

func ParseList(d []byte, opts ...parse.ParseOption) (*ir.List, error) {
	return parse.ParseList(d, opts...)
}

// Parse parses an object or a list depending on the first token of d.
func Parse(d []byte, opts ...parse.ParseOption) (ir.Value, error) {
	return parse.Parse(d, opts...)
}

// String renders v in the default pretty format.
func String(v ir.Value) string {
	return encode.MustString(v)
}

// Write writes v to w followed by a newline. The format is chosen with
// encode.EncodeFormat; YAML output goes through gomap.ToYAML.
func Write(v ir.Value, w io.Writer, opts ...encode.EncodeOption) error {
	if encode.FormatFromOpts(opts...) == format.YAMLFormat {
		d, err := gomap.ToYAML(v, gomap.YAMLComments(true))
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(v, buf, opts...); err != nil {
		return err
	}
	buf.WriteByte('\n')
	_, err := buf.WriteTo(w)
	return err
}
