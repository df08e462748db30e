package ir

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// Typed accessors come in three forms:
//
//   - GetK(key) fails with ErrMissingKey when key is absent.
//   - GetKOr(key, def) returns def when key is absent.
//   - OptK(key) reports ok=false when key is absent or holds null.
//
// All forms fail with ErrTypeMismatch when key holds a value of another
// variant, or a number which does not fit the requested type exactly. Null
// is a mismatch for GetK and GetKOr.

func get[T any](o *Object, key string, conv func(string, Value) (T, error)) (T, error) {
	v, ok := o.values[key]
	if !ok {
		var zero T
		return zero, missingKey(key)
	}
	return conv(key, v)
}

func getOr[T any](o *Object, key string, def T, conv func(string, Value) (T, error)) (T, error) {
	v, ok := o.values[key]
	if !ok {
		return def, nil
	}
	return conv(key, v)
}

func opt[T any](o *Object, key string, conv func(string, Value) (T, error)) (T, bool, error) {
	var zero T
	v, ok := o.values[key]
	if !ok || v.Type() == NullType {
		return zero, false, nil
	}
	res, err := conv(key, v)
	if err != nil {
		return zero, false, err
	}
	return res, true, nil
}

func (o *Object) GetBool(key string) (bool, error) {
	return get(o, key, asBool)
}

func (o *Object) GetBoolOr(key string, def bool) (bool, error) {
	return getOr(o, key, def, asBool)
}

func (o *Object) OptBool(key string) (bool, bool, error) {
	return opt(o, key, asBool)
}

func (o *Object) GetInt32(key string) (int32, error) {
	return get(o, key, asInt32)
}

func (o *Object) GetInt32Or(key string, def int32) (int32, error) {
	return getOr(o, key, def, asInt32)
}

func (o *Object) OptInt32(key string) (int32, bool, error) {
	return opt(o, key, asInt32)
}

func (o *Object) GetInt64(key string) (int64, error) {
	return get(o, key, asInt64)
}

func (o *Object) GetInt64Or(key string, def int64) (int64, error) {
	return getOr(o, key, def, asInt64)
}

func (o *Object) OptInt64(key string) (int64, bool, error) {
	return opt(o, key, asInt64)
}

func (o *Object) GetFloat32(key string) (float32, error) {
	return get(o, key, asFloat32)
}

func (o *Object) GetFloat32Or(key string, def float32) (float32, error) {
	return getOr(o, key, def, asFloat32)
}

func (o *Object) OptFloat32(key string) (float32, bool, error) {
	return opt(o, key, asFloat32)
}

func (o *Object) GetFloat64(key string) (float64, error) {
	return get(o, key, asFloat64)
}

func (o *Object) GetFloat64Or(key string, def float64) (float64, error) {
	return getOr(o, key, def, asFloat64)
}

func (o *Object) OptFloat64(key string) (float64, bool, error) {
	return opt(o, key, asFloat64)
}

func (o *Object) GetBigInt(key string) (*big.Int, error) {
	return get(o, key, asBigInt)
}

func (o *Object) GetBigIntOr(key string, def *big.Int) (*big.Int, error) {
	return getOr(o, key, def, asBigInt)
}

func (o *Object) OptBigInt(key string) (*big.Int, bool, error) {
	return opt(o, key, asBigInt)
}

func (o *Object) GetDecimal(key string) (decimal.Decimal, error) {
	return get(o, key, asDecimal)
}

func (o *Object) GetDecimalOr(key string, def decimal.Decimal) (decimal.Decimal, error) {
	return getOr(o, key, def, asDecimal)
}

func (o *Object) OptDecimal(key string) (decimal.Decimal, bool, error) {
	return opt(o, key, asDecimal)
}

func (o *Object) GetString(key string) (string, error) {
	return get(o, key, asString)
}

func (o *Object) GetStringOr(key string, def string) (string, error) {
	return getOr(o, key, def, asString)
}

func (o *Object) OptString(key string) (string, bool, error) {
	return opt(o, key, asString)
}

func (o *Object) GetObject(key string) (*Object, error) {
	return get(o, key, asObject)
}

func (o *Object) GetObjectOr(key string, def *Object) (*Object, error) {
	return getOr(o, key, def, asObject)
}

func (o *Object) OptObject(key string) (*Object, bool, error) {
	return opt(o, key, asObject)
}

func (o *Object) GetList(key string) (*List, error) {
	return get(o, key, asList)
}

func (o *Object) GetListOr(key string, def *List) (*List, error) {
	return getOr(o, key, def, asList)
}

func (o *Object) OptList(key string) (*List, bool, error) {
	return opt(o, key, asList)
}

// GetObjectOrEmpty returns the object under key, or a new empty object which
// is not stored when key is absent.
func (o *Object) GetObjectOrEmpty(key string) (*Object, error) {
	return getOr(o, key, NewObject(), asObject)
}

// GetObjectOrNew returns the object under key, storing a new empty object
// first when key is absent.
func (o *Object) GetObjectOrNew(key string) (*Object, error) {
	v, ok := o.values[key]
	if !ok {
		return o.PutNewObject(key), nil
	}
	return asObject(key, v)
}

// GetListOrEmpty returns the list under key, or a new empty list which is
// not stored when key is absent.
func (o *Object) GetListOrEmpty(key string) (*List, error) {
	return getOr(o, key, NewList(), asList)
}

// GetListOrNew returns the list under key, storing a new empty list first
// when key is absent.
func (o *Object) GetListOrNew(key string) (*List, error) {
	v, ok := o.values[key]
	if !ok {
		return o.PutNewList(key), nil
	}
	return asList(key, v)
}
