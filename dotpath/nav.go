package dotpath

import (
	"fmt"
	"strings"

	"github.com/signadot/jdoc/debug"
	"github.com/signadot/jdoc/ir"
)

// Nav resolves dotted paths such as "a.b.c" against an object. Each
// segment but the last names a nested object. Segments cannot contain
// dots.
type Nav struct {
	obj *ir.Object
}

func New(obj *ir.Object) *Nav {
	return &Nav{obj: obj}
}

func (n *Nav) Object() *ir.Object {
	return n.obj
}

// descend splits the first segment off path. ok is false for a single
// segment path.
func descend(path string) (head, rest string, ok bool) {
	head, rest, ok = strings.Cut(path, ".")
	if ok && debug.Path() {
		debug.Logf("dotpath: descend %q, rest %q\n", head, rest)
	}
	return head, rest, ok
}

// get resolves intermediates with GetObject: absent or mistyped
// intermediates are errors.
func get[T any](n *Nav, path string, f func(*ir.Object, string) (T, error)) (T, error) {
	head, rest, ok := descend(path)
	if !ok {
		return f(n.obj, path)
	}
	child, err := n.obj.GetObject(head)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("%s: %w", path, err)
	}
	return get(New(child), rest, f)
}

// getOr returns def when an intermediate is absent.
func getOr[T any](n *Nav, path string, def T, f func(*ir.Object, string, T) (T, error)) (T, error) {
	head, rest, ok := descend(path)
	if !ok {
		return f(n.obj, path, def)
	}
	if !n.obj.Has(head) {
		return def, nil
	}
	child, err := n.obj.GetObject(head)
	if err != nil {
		return def, fmt.Errorf("%s: %w", path, err)
	}
	return getOr(New(child), rest, def, f)
}

// opt reports absence when an intermediate is absent or null.
func opt[T any](n *Nav, path string, f func(*ir.Object, string) (T, bool, error)) (T, bool, error) {
	var zero T
	head, rest, ok := descend(path)
	if !ok {
		return f(n.obj, path)
	}
	child, present, err := n.obj.OptObject(head)
	if err != nil {
		return zero, false, fmt.Errorf("%s: %w", path, err)
	}
	if !present {
		return zero, false, nil
	}
	return opt(New(child), rest, f)
}

// vivify creates absent intermediates as empty objects.
func vivify[T any](n *Nav, path string, f func(*ir.Object, string) (T, error)) (T, error) {
	head, rest, ok := descend(path)
	if !ok {
		return f(n.obj, path)
	}
	child, err := n.obj.GetObjectOrNew(head)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("%s: %w", path, err)
	}
	return vivify(New(child), rest, f)
}

// Get returns the value at path.
func (n *Nav) Get(path string) (ir.Value, error) {
	return get(n, path, func(o *ir.Object, key string) (ir.Value, error) {
		v, ok := o.Get(key)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ir.ErrMissingKey, key)
		}
		return v, nil
	})
}

// Has reports whether path resolves to a value.
func (n *Nav) Has(path string) bool {
	ok, _ := getOr(n, path, false, func(o *ir.Object, key string, _ bool) (bool, error) {
		return o.Has(key), nil
	})
	return ok
}

func (n *Nav) IsNull(path string) (bool, error) {
	return get(n, path, (*ir.Object).IsNull)
}

// GetObjectOrEmpty returns the object at path, or a new empty object which
// is not stored when path does not resolve.
func (n *Nav) GetObjectOrEmpty(path string) (*ir.Object, error) {
	return getOr(n, path, ir.NewObject(), func(o *ir.Object, key string, _ *ir.Object) (*ir.Object, error) {
		return o.GetObjectOrEmpty(key)
	})
}

// GetListOrEmpty returns the list at path, or a new empty list which is
// not stored when path does not resolve.
func (n *Nav) GetListOrEmpty(path string) (*ir.List, error) {
	return getOr(n, path, ir.NewList(), func(o *ir.Object, key string, _ *ir.List) (*ir.List, error) {
		return o.GetListOrEmpty(key)
	})
}

// GetObjectOrNew returns the object at path, creating it and any absent
// intermediate objects.
func (n *Nav) GetObjectOrNew(path string) (*ir.Object, error) {
	return vivify(n, path, (*ir.Object).GetObjectOrNew)
}

// GetListOrNew returns the list at path, creating it and any absent
// intermediate objects.
func (n *Nav) GetListOrNew(path string) (*ir.List, error) {
	return vivify(n, path, (*ir.Object).GetListOrNew)
}

// Put normalizes v and stores it at path, creating absent intermediate
// objects. Nothing is created when v cannot be stored.
func (n *Nav) Put(path string, v any) error {
	val, err := ir.ValueOf(v)
	if err != nil {
		return fmt.Errorf("put %s: %w", path, err)
	}
	if err := n.checkPut(path, val); err != nil {
		return err
	}
	_, err = vivify(n, path, func(o *ir.Object, key string) (struct{}, error) {
		return struct{}{}, o.PutValue(key, val)
	})
	return err
}

// PutDefault stores v at path if path does not resolve, reporting whether
// it did.
func (n *Nav) PutDefault(path string, v any) (bool, error) {
	val, err := ir.ValueOf(v)
	if err != nil {
		return false, fmt.Errorf("put %s: %w", path, err)
	}
	if n.Has(path) {
		return false, nil
	}
	if err := n.checkPut(path, val); err != nil {
		return false, err
	}
	return vivify(n, path, func(o *ir.Object, key string) (bool, error) {
		return o.PutDefault(key, val)
	})
}

// checkPut fails when val holds the deepest existing object along path.
// Objects created below that one are reachable only through it, so this
// rejects every cycle the store at path would make before anything is
// created.
func (n *Nav) checkPut(path string, val ir.Value) error {
	if val.Type().IsLeaf() {
		return nil
	}
	o, rest := n.obj, path
	for {
		head, tail, ok := strings.Cut(rest, ".")
		if !ok {
			break
		}
		v, _ := o.Get(head)
		child, isObj := v.(*ir.Object)
		if !isObj {
			break
		}
		o, rest = child, tail
	}
	if ir.Contains(val, o) {
		return fmt.Errorf("put %s: %w: value contains the receiving object", path, ir.ErrInvalidArgument)
	}
	return nil
}

func (n *Nav) PutNewObject(path string) (*ir.Object, error) {
	return vivify(n, path, func(o *ir.Object, key string) (*ir.Object, error) {
		return o.PutNewObject(key), nil
	})
}

func (n *Nav) PutNewList(path string) (*ir.List, error) {
	return vivify(n, path, func(o *ir.Object, key string) (*ir.List, error) {
		return o.PutNewList(key), nil
	})
}

// Delete removes the value at path, reporting whether it was present.
func (n *Nav) Delete(path string) (bool, error) {
	ok, _, err := opt(n, path, func(o *ir.Object, key string) (bool, bool, error) {
		return o.Delete(key), true, nil
	})
	return ok, err
}

// Comment returns the comment attached to the last segment of path.
func (n *Nav) Comment(path string) (string, bool) {
	c, ok, _ := opt(n, path, func(o *ir.Object, key string) (string, bool, error) {
		c, ok := o.Comment(key)
		return c, ok, nil
	})
	return c, ok
}

// SetComment attaches a comment to the last segment of path, creating
// absent intermediate objects.
func (n *Nav) SetComment(path, text string) error {
	_, err := vivify(n, path, func(o *ir.Object, key string) (struct{}, error) {
		o.SetComment(key, text)
		return struct{}{}, nil
	})
	return err
}

// RemoveComment removes the comment of the last segment of path, if any.
func (n *Nav) RemoveComment(path string) {
	opt(n, path, func(o *ir.Object, key string) (struct{}, bool, error) {
		o.RemoveComment(key)
		return struct{}{}, true, nil
	})
}
