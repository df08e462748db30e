package ir

import "fmt"

// A container has at most one owner. Storing a container which is already
// held by an object or list stores a deep copy of it instead, and removing
// or replacing a container releases it so it may be stored again as is.

func isOwned(v Value) bool {
	switch x := v.(type) {
	case *Object:
		return x.owned
	case *List:
		return x.owned
	}
	return false
}

// adopt returns the value to store for v: v itself marked as owned, or a
// copy when v already has an owner.
func adopt(v Value) Value {
	switch x := v.(type) {
	case *Object:
		if x.owned {
			x = x.Clone()
		}
		x.owned = true
		return x
	case *List:
		if x.owned {
			x = x.Clone()
		}
		x.owned = true
		return x
	}
	return v
}

func release(v Value) {
	switch x := v.(type) {
	case *Object:
		x.owned = false
	case *List:
		x.owned = false
	}
}

// checkInsert fails when storing v in recv would make recv contain itself.
// A receiver without an owner can only be reached from v when it is v, so
// the walk over v is needed only for owned receivers.
func checkInsert(recv, v Value) error {
	if v == nil || v.Type().IsLeaf() {
		return nil
	}
	if v == recv || (isOwned(recv) && Contains(v, recv)) {
		return fmt.Errorf("%w: value contains the receiving container", ErrInvalidArgument)
	}
	return nil
}

// sameContainer reports whether a and b are the same object or list.
func sameContainer(a, b Value) bool {
	if a == nil || a.Type().IsLeaf() {
		return false
	}
	return a == b
}
