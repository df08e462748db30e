package ir

// Truth reports whether v is truthy: non-empty containers and strings,
// non-zero numbers and true.
func Truth(v Value) bool {
	switch x := v.(type) {
	case *Object:
		return x.Len() != 0
	case *List:
		return x.Len() != 0
	case String:
		return x != ""
	case Integer:
		return x.val().Sign() != 0
	case Decimal:
		return !x.d.IsZero()
	case Bool:
		return bool(x)
	case Null, nil:
		return false
	default:
		panic("type")
	}
}
