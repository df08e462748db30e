package ir

import (
	"fmt"
	"iter"
	"slices"
)

// List is an ordered sequence of values. The zero value is an empty list
// ready to use.
type List struct {
	values []Value
	owned  bool
}

func NewList() *List {
	return &List{}
}

// ListOf builds a list from vs, normalizing each with [ValueOf].
func ListOf(vs ...any) (*List, error) {
	return FromSlice(vs)
}

func FromSlice[T any](s []T) (*List, error) {
	res := &List{values: make([]Value, 0, len(s))}
	for i := range s {
		v, err := ValueOf(s[i])
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}
		res.values = append(res.values, adopt(v))
	}
	return res, nil
}

func (*List) Type() Type { return ListType }
func (*List) isValue()   {}

func (l *List) Equal(v Value) bool {
	other, ok := v.(*List)
	if !ok {
		return false
	}
	if l == other {
		return true
	}
	if l == nil || other == nil {
		return false
	}
	return slices.EqualFunc(l.values, other.values, func(a, b Value) bool {
		return a.Equal(b)
	})
}

func (l *List) Len() int {
	return len(l.values)
}

// At returns the value at index i. It panics if i is out of range.
func (l *List) At(i int) Value {
	return l.values[i]
}

func (l *List) Get(i int) (Value, error) {
	if err := l.checkIndex(i); err != nil {
		return nil, err
	}
	return l.values[i], nil
}

// Values returns a copy of the values.
func (l *List) Values() []Value {
	return slices.Clone(l.values)
}

// All iterates over a snapshot of the values taken when iteration starts.
func (l *List) All() iter.Seq2[int, Value] {
	values := slices.Clone(l.values)
	return slices.All(values)
}

// Add normalizes v with [ValueOf] and appends it. A container which is
// already stored elsewhere is copied.
func (l *List) Add(v any) error {
	val, err := l.normalize(v)
	if err != nil {
		return err
	}
	l.values = append(l.values, adopt(val))
	return nil
}

// AddNewObject appends and returns a new empty object.
func (l *List) AddNewObject() *Object {
	res := NewObject()
	l.values = append(l.values, adopt(res))
	return res
}

// AddNewList appends and returns a new empty list.
func (l *List) AddNewList() *List {
	res := NewList()
	l.values = append(l.values, adopt(res))
	return res
}

func (l *List) Set(i int, v any) error {
	if err := l.checkIndex(i); err != nil {
		return err
	}
	val, err := l.normalize(v)
	if err != nil {
		return err
	}
	if sameContainer(l.values[i], val) {
		return nil
	}
	release(l.values[i])
	l.values[i] = adopt(val)
	return nil
}

func (l *List) Remove(i int) error {
	if err := l.checkIndex(i); err != nil {
		return err
	}
	release(l.values[i])
	l.values = slices.Delete(l.values, i, i+1)
	return nil
}

// Clone returns a deep copy of l. The copy has no owner.
func (l *List) Clone() *List {
	res := &List{values: make([]Value, len(l.values))}
	for i, v := range l.values {
		res.values[i] = adopt(Clone(v))
	}
	return res
}

func (l *List) checkIndex(i int) error {
	if i < 0 || i >= len(l.values) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, len(l.values))
	}
	return nil
}

func (l *List) normalize(v any) (Value, error) {
	val, err := ValueOf(v)
	if err != nil {
		return nil, err
	}
	if err := checkInsert(l, val); err != nil {
		return nil, err
	}
	return val, nil
}
