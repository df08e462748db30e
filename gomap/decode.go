package gomap

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/signadot/jdoc/ir"
	"github.com/signadot/jdoc/parse"
)

type fromOpts struct {
	strict   bool
	maxDepth int
}

type FromOption func(*fromOpts)

// Strict makes decoding fail on object keys with no matching field.
func Strict(v bool) FromOption { return func(o *fromOpts) { o.strict = v } }

// LoadMaxDepth bounds the nesting accepted by Load.
func LoadMaxDepth(n int) FromOption { return func(o *fromOpts) { o.maxDepth = n } }

// Load parses d and decodes the result into p.
func Load(d []byte, p any, opts ...FromOption) error {
	do := &fromOpts{maxDepth: parse.DefaultMaxDepth}
	for _, f := range opts {
		f(do)
	}
	v, err := parse.Parse(d, parse.MaxDepth(do.maxDepth))
	if err != nil {
		return err
	}
	return Decode(v, p, opts...)
}

// Decode stores v in the Go value pointed to by p, following the rules of
// encoding/json.
func Decode(v ir.Value, p any, opts ...FromOption) error {
	do := &fromOpts{}
	for _, f := range opts {
		f(do)
	}
	d, err := json.Marshal(ToAny(v))
	if err != nil {
		return fmt.Errorf("decode %s: %w", v.Type(), err)
	}
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	if do.strict {
		dec.DisallowUnknownFields()
	}
	if err := dec.Decode(p); err != nil {
		return fmt.Errorf("decode %s into %T: %w", v.Type(), p, err)
	}
	return nil
}

// Encode converts a Go value to a document value through its
// encoding/json representation, so struct tags and field order are honored.
func Encode(x any) (ir.Value, error) {
	d, err := json.Marshal(x)
	if err != nil {
		return nil, err
	}
	switch d[0] {
	case '{', '[':
		return parse.Parse(d)
	}
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	var a any
	if err := dec.Decode(&a); err != nil {
		return nil, err
	}
	return ir.ValueOf(a)
}
