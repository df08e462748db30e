package ir

import (
	"fmt"
	"iter"
	"maps"
	"slices"
)

// Object is a string keyed mapping which iterates in the order keys were
// first inserted. The zero value is an empty object ready to use.
//
// An object or list is held by at most one container. Storing one which
// is already held elsewhere stores a deep copy of it.
//
// Objects are not safe for concurrent use.
type Object struct {
	keys     []string
	values   map[string]Value
	comments map[string]string
	owned    bool
}

// KeyVal is a key and a value to be normalized with [ValueOf].
type KeyVal struct {
	Key string
	Val any
}

func NewObject() *Object {
	return &Object{values: map[string]Value{}}
}

// ObjectOf builds an object from alternating keys and values.
func ObjectOf(kvs ...any) (*Object, error) {
	if len(kvs)%2 != 0 {
		return nil, fmt.Errorf("%w: odd number of arguments (%d)", ErrInvalidArgument, len(kvs))
	}
	pairs := make([]KeyVal, 0, len(kvs)/2)
	for i := 0; i < len(kvs); i += 2 {
		k, ok := kvs[i].(string)
		if !ok {
			return nil, fmt.Errorf("%w: argument %d: key must be a string, got %T", ErrInvalidArgument, i, kvs[i])
		}
		pairs = append(pairs, KeyVal{Key: k, Val: kvs[i+1]})
	}
	return FromKeyVals(pairs)
}

// FromMap builds an object from m. Go maps are unordered, so the keys are
// inserted in sorted order.
func FromMap[T any](m map[string]T) (*Object, error) {
	res := NewObject()
	if err := putMap(res, m); err != nil {
		return nil, err
	}
	return res, nil
}

// FromKeyVals builds an object with the keys of kvs in order. A repeated
// key keeps its first position and its last value.
func FromKeyVals(kvs []KeyVal) (*Object, error) {
	res := NewObject()
	if err := res.PutKeyVals(kvs); err != nil {
		return nil, err
	}
	return res, nil
}

func (*Object) Type() Type { return ObjectType }
func (*Object) isValue()   {}

func (o *Object) Equal(v Value) bool {
	other, ok := v.(*Object)
	if !ok {
		return false
	}
	if o == other {
		return true
	}
	if o == nil || other == nil || o.Len() != other.Len() {
		return false
	}
	for k, x := range o.values {
		y, present := other.values[k]
		if !present || !x.Equal(y) {
			return false
		}
	}
	return true
}

func (o *Object) Len() int {
	return len(o.keys)
}

func (o *Object) Has(key string) bool {
	_, ok := o.values[key]
	return ok
}

func (o *Object) Get(key string) (Value, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Keys returns the keys in iteration order.
func (o *Object) Keys() []string {
	return slices.Clone(o.keys)
}

// All iterates over the entries in order. The keys are captured when
// iteration starts: keys deleted while iterating are skipped and keys added
// while iterating are not visited.
func (o *Object) All() iter.Seq2[string, Value] {
	keys := slices.Clone(o.keys)
	return func(yield func(string, Value) bool) {
		for _, k := range keys {
			v, ok := o.values[k]
			if !ok {
				continue
			}
			if !yield(k, v) {
				return
			}
		}
	}
}

// IsNull reports whether key holds null.
func (o *Object) IsNull(key string) (bool, error) {
	v, ok := o.values[key]
	if !ok {
		return false, missingKey(key)
	}
	return v.Type() == NullType, nil
}

// Put normalizes v with [ValueOf] and stores it under key. An existing key
// keeps its position.
func (o *Object) Put(key string, v any) error {
	val, err := ValueOf(v)
	if err != nil {
		return fmt.Errorf("put %q: %w", key, err)
	}
	return o.PutValue(key, val)
}

// PutValue stores an already normalized value. A container which is
// already stored elsewhere is copied.
func (o *Object) PutValue(key string, v Value) error {
	if v == nil {
		v = Null{}
	}
	if err := checkInsert(o, v); err != nil {
		return fmt.Errorf("put %q: %w", key, err)
	}
	o.set(key, v)
	return nil
}

// PutDefault stores v under key if key is absent, reporting whether it did.
func (o *Object) PutDefault(key string, v any) (bool, error) {
	if o.Has(key) {
		return false, nil
	}
	if err := o.Put(key, v); err != nil {
		return false, err
	}
	return true, nil
}

// PutNewObject stores and returns a new empty object under key.
func (o *Object) PutNewObject(key string) *Object {
	res := NewObject()
	o.set(key, res)
	return res
}

// PutNewList stores and returns a new empty list under key.
func (o *Object) PutNewList(key string) *List {
	res := NewList()
	o.set(key, res)
	return res
}

// PutAll stores every entry of m. The values are all normalized before any
// is stored.
func (o *Object) PutAll(m map[string]any) error {
	return putMap(o, m)
}

// PutKeyVals stores every entry of kvs in order. The values are all
// normalized before any is stored.
func (o *Object) PutKeyVals(kvs []KeyVal) error {
	vals := make([]Value, len(kvs))
	for i := range kvs {
		v, err := ValueOf(kvs[i].Val)
		if err != nil {
			return fmt.Errorf("put %q: %w", kvs[i].Key, err)
		}
		if err := checkInsert(o, v); err != nil {
			return fmt.Errorf("put %q: %w", kvs[i].Key, err)
		}
		vals[i] = v
	}
	for i := range kvs {
		o.set(kvs[i].Key, vals[i])
	}
	return nil
}

func putMap[T any](o *Object, m map[string]T) error {
	keys := slices.Sorted(maps.Keys(m))
	kvs := make([]KeyVal, len(keys))
	for i, k := range keys {
		kvs[i] = KeyVal{Key: k, Val: m[k]}
	}
	return o.PutKeyVals(kvs)
}

// Delete removes key, reporting whether it was present. A comment attached
// to key is kept.
func (o *Object) Delete(key string) bool {
	if _, ok := o.values[key]; !ok {
		return false
	}
	release(o.values[key])
	delete(o.values, key)
	o.keys = slices.DeleteFunc(o.keys, func(k string) bool { return k == key })
	return true
}

// Clone returns a deep copy of o, including its comments. The copy has no
// owner.
func (o *Object) Clone() *Object {
	res := &Object{
		keys:   slices.Clone(o.keys),
		values: make(map[string]Value, len(o.values)),
	}
	for k, v := range o.values {
		res.values[k] = adopt(Clone(v))
	}
	if o.comments != nil {
		res.comments = maps.Clone(o.comments)
	}
	return res
}

func (o *Object) set(key string, v Value) {
	if o.values == nil {
		o.values = map[string]Value{}
	}
	old, ok := o.values[key]
	switch {
	case !ok:
		o.keys = append(o.keys, key)
	case sameContainer(old, v):
		return
	default:
		release(old)
	}
	o.values[key] = adopt(v)
}
