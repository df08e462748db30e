package eval

import (
	"fmt"
	"os"

	"github.com/expr-lang/expr"
	"github.com/signadot/jdoc/dotpath"
	"github.com/signadot/jdoc/ir"
)

func exprOpts(doc ir.Value) []expr.Option {
	nav := func() (*dotpath.Nav, error) {
		obj, ok := doc.(*ir.Object)
		if !ok {
			return nil, fmt.Errorf("%w: paths need an object document", ErrEval)
		}
		return dotpath.New(obj), nil
	}
	return []expr.Option{
		expr.Function("getpath", func(params ...any) (any, error) {
			n, err := nav()
			if err != nil {
				return nil, err
			}
			res, err := n.Get(params[0].(string))
			if err != nil {
				return nil, err
			}
			return toExprAny(res), nil
		},
			new(func(string) any)),
		expr.Function("haspath", func(params ...any) (any, error) {
			n, err := nav()
			if err != nil {
				return false, nil
			}
			return n.Has(params[0].(string)), nil
		},
			new(func(string) bool)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}
