package encode

import "github.com/signadot/jdoc/format"

type EncodeOption func(*EncState)

// EncodeFormat selects the output format. JSON output is indented like the
// pretty format but carries no comments.
func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.format
}

// Indent sets the string written once per nesting level.
func Indent(unit string) EncodeOption {
	return func(es *EncState) { es.indent = unit }
}

// CompactLists packs lists of scalars: lists shorter than
// initialNewlineForAtLeast are written on one line, longer ones on indented
// lines of newlineEvery elements.
func CompactLists(initialNewlineForAtLeast, newlineEvery int) EncodeOption {
	return func(es *EncState) {
		es.compact = true
		es.initialNL = initialNewlineForAtLeast
		es.newlineEvery = newlineEvery
	}
}

// NoCompactLists writes every list element on its own line.
func NoCompactLists() EncodeOption {
	return func(es *EncState) { es.compact = false }
}

func EncodeComments(v bool) EncodeOption {
	return func(es *EncState) { es.comments = v }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.Color = nil
			return
		}
		es.Color = c.Color
	}
}

// EncodeWire writes strict JSON without any whitespace or comments.
func EncodeWire(v bool) EncodeOption {
	return func(es *EncState) { es.wire = v }
}
