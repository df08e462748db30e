package ir

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const maxNormalizeDepth = 10000

// ValueOf normalizes a Go value into a [Value].
//
//   - nil becomes [Null]
//   - signed and unsigned integers, *big.Int and big.Int become [Integer]
//   - float32 and float64 become [Decimal] using the shortest text which
//     reads back as the same float; NaN and infinities are rejected
//   - decimal.Decimal becomes [Decimal]
//   - json.Number becomes [Integer] or [Decimal] by its lexical form
//   - maps with string keys become [*Object] with sorted keys
//   - []KeyVal becomes [*Object] with keys in slice order
//   - slices and arrays become [*List]
//   - a [Value] is returned as is
//
// Anything else fails with [ErrInvalidArgument].
func ValueOf(v any) (Value, error) {
	return valueOf(v, 0)
}

func valueOf(v any, depth int) (Value, error) {
	if depth > maxNormalizeDepth {
		return nil, fmt.Errorf("%w: nesting exceeds %d", ErrInvalidArgument, maxNormalizeDepth)
	}
	switch x := v.(type) {
	case nil:
		return Null{}, nil
	case *Object:
		if x == nil {
			return nil, fmt.Errorf("%w: nil *Object", ErrInvalidArgument)
		}
		return x, nil
	case *List:
		if x == nil {
			return nil, fmt.Errorf("%w: nil *List", ErrInvalidArgument)
		}
		return x, nil
	case Value:
		return x, nil
	case bool:
		return Bool(x), nil
	case string:
		return String(x), nil
	case int:
		return IntegerFromInt64(int64(x)), nil
	case int8:
		return IntegerFromInt64(int64(x)), nil
	case int16:
		return IntegerFromInt64(int64(x)), nil
	case int32:
		return IntegerFromInt64(int64(x)), nil
	case int64:
		return IntegerFromInt64(x), nil
	case uint:
		return fromUint64(uint64(x)), nil
	case uint8:
		return fromUint64(uint64(x)), nil
	case uint16:
		return fromUint64(uint64(x)), nil
	case uint32:
		return fromUint64(uint64(x)), nil
	case uint64:
		return fromUint64(x), nil
	case float32:
		return fromFloat(float64(x), 32)
	case float64:
		return fromFloat(x, 64)
	case *big.Int:
		if x == nil {
			return nil, fmt.Errorf("%w: nil *big.Int", ErrInvalidArgument)
		}
		return NewInteger(x), nil
	case big.Int:
		return NewInteger(&x), nil
	case decimal.Decimal:
		return NewDecimal(x), nil
	case json.Number:
		return fromNumber(string(x))
	case []KeyVal:
		return fromKeyVals(x, depth)
	case map[string]any:
		return fromStringMap(x, depth)
	case []any:
		return fromAnySlice(x, depth)
	}
	return reflectValueOf(reflect.ValueOf(v), depth)
}

func fromUint64(u uint64) Integer {
	return Integer{i: new(big.Int).SetUint64(u)}
}

func fromFloat(f float64, bits int) (Value, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("%w: %v is not a finite number", ErrInvalidArgument, f)
	}
	d, err := decimal.NewFromString(strconv.FormatFloat(f, 'g', -1, bits))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	return NewDecimal(d), nil
}

func fromNumber(s string) (Value, error) {
	if !strings.ContainsAny(s, ".eE") {
		i, ok := new(big.Int).SetString(s, 10)
		if !ok {
			return nil, fmt.Errorf("%w: bad number %q", ErrInvalidArgument, s)
		}
		return Integer{i: i}, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: bad number %q", ErrInvalidArgument, s)
	}
	return NewDecimal(d), nil
}

func fromKeyVals(kvs []KeyVal, depth int) (*Object, error) {
	res := NewObject()
	for i := range kvs {
		v, err := valueOf(kvs[i].Val, depth+1)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", kvs[i].Key, err)
		}
		res.set(kvs[i].Key, v)
	}
	return res, nil
}

func fromStringMap(m map[string]any, depth int) (*Object, error) {
	res := NewObject()
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		v, err := valueOf(m[k], depth+1)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", k, err)
		}
		res.set(k, v)
	}
	return res, nil
}

func fromAnySlice(s []any, depth int) (*List, error) {
	res := &List{values: make([]Value, len(s))}
	for i := range s {
		v, err := valueOf(s[i], depth+1)
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}
		res.values[i] = adopt(v)
	}
	return res, nil
}

func reflectValueOf(rv reflect.Value, depth int) (Value, error) {
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("%w: map key type %s is not a string", ErrInvalidArgument, rv.Type().Key())
		}
		if rv.IsNil() {
			return Null{}, nil
		}
		keys := rv.MapKeys()
		slices.SortFunc(keys, func(a, b reflect.Value) int {
			return strings.Compare(a.String(), b.String())
		})
		res := NewObject()
		for _, k := range keys {
			v, err := valueOf(rv.MapIndex(k).Interface(), depth+1)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", k.String(), err)
			}
			res.set(k.String(), v)
		}
		return res, nil
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return Null{}, nil
		}
		n := rv.Len()
		res := &List{values: make([]Value, n)}
		for i := range n {
			v, err := valueOf(rv.Index(i).Interface(), depth+1)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			res.values[i] = adopt(v)
		}
		return res, nil
	case reflect.Bool:
		return Bool(rv.Bool()), nil
	case reflect.String:
		return String(rv.String()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return IntegerFromInt64(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return fromUint64(rv.Uint()), nil
	case reflect.Float32:
		return fromFloat(rv.Float(), 32)
	case reflect.Float64:
		return fromFloat(rv.Float(), 64)
	}
	if !rv.IsValid() {
		return Null{}, nil
	}
	return nil, fmt.Errorf("%w: cannot store %s", ErrInvalidArgument, rv.Type())
}
