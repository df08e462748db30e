package gomap

import (
	"encoding/json"

	"github.com/signadot/jdoc/ir"
)

// ToAny converts v to plain Go values. Object key order is lost.
func ToAny(v ir.Value) any {
	switch x := v.(type) {
	case ir.Null, nil:
		return nil
	case ir.Bool:
		return bool(x)
	case ir.String:
		return string(x)
	case ir.Integer:
		return json.Number(x.Text())
	case ir.Decimal:
		return json.Number(x.Text())
	case *ir.Object:
		res := make(map[string]any, x.Len())
		for k, y := range x.All() {
			res[k] = ToAny(y)
		}
		return res
	case *ir.List:
		res := make([]any, 0, x.Len())
		for _, y := range x.All() {
			res = append(res, ToAny(y))
		}
		return res
	default:
		panic("type")
	}
}

// FromAny converts a Go value to a document value, see ir.ValueOf.
func FromAny(v any) (ir.Value, error) {
	return ir.ValueOf(v)
}
