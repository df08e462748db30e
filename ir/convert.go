package ir

import (
	"math"
	"math/big"
	"strconv"

	"github.com/shopspring/decimal"
)

// converters from a stored value to a read view. Each fails with
// ErrTypeMismatch when v is of the wrong variant or does not fit.

func asBool(key string, v Value) (bool, error) {
	b, ok := v.(Bool)
	if !ok {
		return false, typeMismatch(key, v, "Bool")
	}
	return bool(b), nil
}

func asInt32(key string, v Value) (int32, error) {
	n, ok := v.(Integer)
	if !ok {
		return 0, typeMismatch(key, v, "Integer")
	}
	i, ok := n.Int64()
	if !ok || i < math.MinInt32 || i > math.MaxInt32 {
		return 0, doesNotFit(key, v, "int32")
	}
	return int32(i), nil
}

func asInt64(key string, v Value) (int64, error) {
	n, ok := v.(Integer)
	if !ok {
		return 0, typeMismatch(key, v, "Integer")
	}
	i, ok := n.Int64()
	if !ok {
		return 0, doesNotFit(key, v, "int64")
	}
	return i, nil
}

func asFloat(key string, v Value, bitSize int) (float64, error) {
	var (
		f  float64
		ok bool
	)
	switch n := v.(type) {
	case Integer:
		var err error
		f, err = strconv.ParseFloat(n.Text(), bitSize)
		ok = err == nil && !math.IsInf(f, 0)
	case Decimal:
		f, ok = n.Float(bitSize)
	default:
		return 0, typeMismatch(key, v, "number")
	}
	if !ok {
		return 0, doesNotFit(key, v, "float"+strconv.Itoa(bitSize))
	}
	return f, nil
}

func asFloat32(key string, v Value) (float32, error) {
	f, err := asFloat(key, v, 32)
	return float32(f), err
}

func asFloat64(key string, v Value) (float64, error) {
	return asFloat(key, v, 64)
}

func asBigInt(key string, v Value) (*big.Int, error) {
	n, ok := v.(Integer)
	if !ok {
		return nil, typeMismatch(key, v, "Integer")
	}
	return n.BigInt(), nil
}

func asDecimal(key string, v Value) (decimal.Decimal, error) {
	switch n := v.(type) {
	case Decimal:
		return n.d, nil
	case Integer:
		return decimal.NewFromBigInt(n.val(), 0), nil
	default:
		return decimal.Decimal{}, typeMismatch(key, v, "number")
	}
}

func asString(key string, v Value) (string, error) {
	s, ok := v.(String)
	if !ok {
		return "", typeMismatch(key, v, "String")
	}
	return string(s), nil
}

func asObject(key string, v Value) (*Object, error) {
	o, ok := v.(*Object)
	if !ok {
		return nil, typeMismatch(key, v, "Object")
	}
	return o, nil
}

func asList(key string, v Value) (*List, error) {
	l, ok := v.(*List)
	if !ok {
		return nil, typeMismatch(key, v, "List")
	}
	return l, nil
}
