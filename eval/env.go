package eval

import (
	"maps"

	"github.com/signadot/jdoc/ir"
)

// Env holds caller supplied expression variables.
type Env map[string]any

func (e Env) vars(doc ir.Value) map[string]any {
	res := map[string]any{}
	if doc != nil {
		res["doc"] = toExprAny(doc)
		if obj, ok := doc.(*ir.Object); ok {
			for k, v := range obj.All() {
				res[k] = toExprAny(v)
			}
		}
	}
	maps.Copy(res, e)
	return res
}

// toExprAny converts v into values expr can compute with.
func toExprAny(v ir.Value) any {
	switch x := v.(type) {
	case ir.Bool:
		return bool(x)
	case ir.String:
		return string(x)
	case ir.Integer:
		if i, ok := x.Int64(); ok {
			return int(i)
		}
		return x.BigInt()
	case ir.Decimal:
		f, _ := x.Float(64)
		return f
	case *ir.Object:
		res := make(map[string]any, x.Len())
		for k, y := range x.All() {
			res[k] = toExprAny(y)
		}
		return res
	case *ir.List:
		res := make([]any, 0, x.Len())
		for _, y := range x.All() {
			res = append(res, toExprAny(y))
		}
		return res
	default:
		return nil
	}
}
