package jdoc

import (
	"errors"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/signadot/jdoc/debug"
	"github.com/signadot/jdoc/encode"
	"github.com/signadot/jdoc/ir"
	"github.com/signadot/jdoc/parse"
)

var ErrPatch = errors.New("patch error")

func wire(v ir.Value) []byte {
	return []byte(encode.MustString(v, encode.EncodeWire(true)))
}

// JSONPatch applies an RFC 6902 patch, a list of operations, to doc and
// returns the result. doc is not modified. Keys of objects present in
// both doc and the result keep their order and comments; added keys
// follow them.
func JSONPatch(doc ir.Value, patch *ir.List) (ir.Value, error) {
	if debug.Patch() {
		debug.Logf("json patch %v on %v\n", patch, doc)
	}
	ops, err := jsonpatch.DecodePatch(wire(patch))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	out, err := ops.Apply(wire(doc))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return reparse(doc, out)
}

// MergePatch applies an RFC 7386 merge patch to doc and returns the
// result. doc is not modified.
func MergePatch(doc, patch ir.Value) (ir.Value, error) {
	if debug.Patch() {
		debug.Logf("merge patch %v on %v\n", patch, doc)
	}
	out, err := jsonpatch.MergePatch(wire(doc), wire(patch))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return reparse(doc, out)
}

// CreateMergePatch returns the merge patch turning from into to. Both must
// be objects.
func CreateMergePatch(from, to ir.Value) (ir.Value, error) {
	out, err := jsonpatch.CreateMergePatch(wire(from), wire(to))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return parse.Parse(out)
}

func reparse(orig ir.Value, d []byte) (ir.Value, error) {
	res, err := parse.Parse(d)
	if err != nil {
		return nil, fmt.Errorf("%w: result: %w", ErrPatch, err)
	}
	out, err := restore(orig, res)
	if err != nil {
		return nil, fmt.Errorf("%w: result: %w", ErrPatch, err)
	}
	return out, nil
}

// restore reorders the objects of res after those of orig and carries
// over comments of surviving keys.
func restore(orig, res ir.Value) (ir.Value, error) {
	switch r := res.(type) {
	case *ir.Object:
		o, ok := orig.(*ir.Object)
		if !ok {
			return r, nil
		}
		out := ir.NewObject()
		for k, ov := range o.All() {
			rv, ok := r.Get(k)
			if !ok {
				continue
			}
			v, err := restore(ov, rv)
			if err != nil {
				return nil, fmt.Errorf("%q: %w", k, err)
			}
			if err := out.PutValue(k, v); err != nil {
				return nil, err
			}
			if c, ok := o.Comment(k); ok {
				out.SetComment(k, c)
			}
		}
		for k, rv := range r.All() {
			if out.Has(k) {
				continue
			}
			if err := out.PutValue(k, rv); err != nil {
				return nil, err
			}
		}
		return out, nil
	case *ir.List:
		o, ok := orig.(*ir.List)
		if !ok || o.Len() != r.Len() {
			return r, nil
		}
		out := ir.NewList()
		for i, rv := range r.All() {
			v, err := restore(o.At(i), rv)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			if err := out.Add(v); err != nil {
				return nil, err
			}
		}
		return out, nil
	default:
		return res, nil
	}
}
