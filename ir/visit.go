package ir

import "errors"

var errFound = errors.New("found")

// Visit calls f on v and, when f returns true, on each contained value,
// depth first. f is called again with isPost set after the contained values
// have been visited.
func Visit(v Value, f func(v Value, isPost bool) (bool, error)) error {
	dive, err := f(v, false)
	if err != nil {
		return err
	}
	if dive {
		switch x := v.(type) {
		case *Object:
			for _, k := range x.keys {
				if err := Visit(x.values[k], f); err != nil {
					return err
				}
			}
		case *List:
			for _, y := range x.values {
				if err := Visit(y, f); err != nil {
					return err
				}
			}
		}
	}
	if _, err := f(v, true); err != nil {
		return err
	}
	return nil
}

// Contains reports whether the container c is v or is reachable from v.
func Contains(v Value, c Value) bool {
	if v == nil || v.Type().IsLeaf() {
		return false
	}
	err := Visit(v, func(y Value, isPost bool) (bool, error) {
		if isPost {
			return false, nil
		}
		if y == c {
			return false, errFound
		}
		return !y.Type().IsLeaf(), nil
	})
	return err == errFound
}
