package parse

const DefaultMaxDepth = 10000

type parseOpts struct {
	maxDepth int
}

type ParseOption func(*parseOpts)

// MaxDepth bounds the nesting of objects and lists. Deeper input fails with
// ErrDepth.
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}
