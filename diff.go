package jdoc

import (
	"strings"

	"github.com/signadot/jdoc/encode"
	"github.com/signadot/jdoc/ir"
	"github.com/signadot/jdoc/libdiff"
)

// Diff returns the line diff of the renderings of from and to.
func Diff(from, to ir.Value, opts ...encode.EncodeOption) (libdiff.Diff, error) {
	a, err := render(from, opts)
	if err != nil {
		return nil, err
	}
	b, err := render(to, opts)
	if err != nil {
		return nil, err
	}
	return libdiff.Lines(a, b), nil
}

func render(v ir.Value, opts []encode.EncodeOption) (string, error) {
	var buf strings.Builder
	if err := encode.Encode(v, &buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}
