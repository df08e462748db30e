package ir

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Value is a node of a document tree. The set of implementations is closed:
// [Null], [Bool], [Integer], [Decimal], [String], [*Object] and [*List].
type Value interface {
	Type() Type
	// Equal reports whether the receiver and v hold the same variant and
	// content. Object key order and comments are not compared.
	Equal(v Value) bool

	isValue()
}

type Null struct{}

func (Null) Type() Type { return NullType }
func (Null) isValue()   {}
func (Null) Equal(v Value) bool {
	_, ok := v.(Null)
	return ok
}

type Bool bool

func (Bool) Type() Type { return BoolType }
func (Bool) isValue()   {}
func (b Bool) Equal(v Value) bool {
	o, ok := v.(Bool)
	return ok && o == b
}

type String string

func (String) Type() Type { return StringType }
func (String) isValue()   {}
func (s String) Equal(v Value) bool {
	o, ok := v.(String)
	return ok && o == s
}

// Integer is an immutable arbitrary precision integer. The zero value is 0.
type Integer struct {
	i *big.Int
}

func NewInteger(i *big.Int) Integer {
	if i == nil {
		return Integer{}
	}
	return Integer{i: new(big.Int).Set(i)}
}

func IntegerFromInt64(i int64) Integer {
	return Integer{i: big.NewInt(i)}
}

func (Integer) Type() Type { return IntegerType }
func (Integer) isValue()   {}
func (n Integer) Equal(v Value) bool {
	o, ok := v.(Integer)
	return ok && n.val().Cmp(o.val()) == 0
}

func (n Integer) val() *big.Int {
	if n.i == nil {
		return new(big.Int)
	}
	return n.i
}

// BigInt returns a copy of the integer.
func (n Integer) BigInt() *big.Int {
	return new(big.Int).Set(n.val())
}

// Int64 returns the integer and whether it is exactly representable.
func (n Integer) Int64() (int64, bool) {
	i := n.val()
	if !i.IsInt64() {
		return 0, false
	}
	return i.Int64(), true
}

func (n Integer) Text() string {
	return n.val().String()
}

// Decimal is an immutable arbitrary precision decimal.
type Decimal struct {
	d decimal.Decimal
}

func NewDecimal(d decimal.Decimal) Decimal {
	return Decimal{d: d}
}

func (Decimal) Type() Type { return DecimalType }
func (Decimal) isValue()   {}
func (n Decimal) Equal(v Value) bool {
	o, ok := v.(Decimal)
	if !ok {
		return false
	}
	a, aNeg, aExp := n.scientific()
	b, bNeg, bExp := o.scientific()
	return a == b && aNeg == bNeg && aExp == bExp
}

func (n Decimal) Decimal() decimal.Decimal {
	return n.d
}

// plainExpLimit bounds the magnitude of the exponent of decimals written
// without exponent notation.
const plainExpLimit = 64

// Text returns the canonical text of the decimal, which always contains a
// '.' or an exponent so that it reads back as a decimal. Decimals far from
// 1 in magnitude are written in exponent notation, as in 1.5e70.
func (n Decimal) Text() string {
	digits, neg, exp := n.scientific()
	if digits == "0" {
		return "0.0"
	}
	if exp < -plainExpLimit || exp > plainExpLimit {
		return sciText(digits, neg, exp)
	}
	s := n.d.String()
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '.', 'e', 'E':
			return s
		}
	}
	return s + ".0"
}

// Float returns the float of the given bit size nearest to n. ok is false
// when n is out of range, in which case f is an infinity.
func (n Decimal) Float(bitSize int) (f float64, ok bool) {
	digits, neg, exp := n.scientific()
	f, err := strconv.ParseFloat(sciText(digits, neg, exp), bitSize)
	return f, err == nil && !math.IsInf(f, 0)
}

// scientific returns the significant digits of n without trailing zeros,
// its sign and the exponent of its first digit. It never scales the
// coefficient, so its cost does not depend on the exponent.
func (n Decimal) scientific() (digits string, neg bool, exp int64) {
	c := n.d.Coefficient()
	if c.Sign() == 0 {
		return "0", false, 0
	}
	neg = c.Sign() < 0
	all := new(big.Int).Abs(c).String()
	digits = strings.TrimRight(all, "0")
	exp = int64(n.d.Exponent()) + int64(len(all)-len(digits)) + int64(len(digits)) - 1
	return digits, neg, exp
}

func sciText(digits string, neg bool, exp int64) string {
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteByte(digits[0])
	if len(digits) > 1 {
		b.WriteByte('.')
		b.WriteString(digits[1:])
	}
	b.WriteByte('e')
	b.WriteString(strconv.FormatInt(exp, 10))
	return b.String()
}

// Text returns the canonical text of a leaf value. Containers are described
// by type and size.
func Text(v Value) string {
	switch x := v.(type) {
	case Null:
		return "null"
	case Bool:
		if x {
			return "true"
		}
		return "false"
	case Integer:
		return x.Text()
	case Decimal:
		return x.Text()
	case String:
		return string(x)
	case *Object:
		return "object of " + strconv.Itoa(x.Len()) + " keys"
	case *List:
		return "list of " + strconv.Itoa(x.Len()) + " values"
	default:
		return "<nil>"
	}
}

// Equal reports whether a and b are equal values.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(b)
}

// Clone returns a deep copy of v. Leaf values are immutable and returned
// as is.
func Clone(v Value) Value {
	switch x := v.(type) {
	case *Object:
		return x.Clone()
	case *List:
		return x.Clone()
	default:
		return v
	}
}
