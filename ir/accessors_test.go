package ir

import (
	"errors"
	"math/big"
	"testing"
)

func testObject(t *testing.T) *Object {
	t.Helper()
	huge, _ := new(big.Int).SetString("123456789012345678901234567890", 10)
	o, err := ObjectOf(
		"bool", true,
		"small", 42,
		"long", int64(5000000000),
		"huge", huge,
		"dec", 2.5,
		"bigdec", mustDecimal(t, "1e400"),
		"str", "s",
		"null", nil,
		"obj", map[string]any{"x": 1},
		"list", []any{1, 2},
	)
	if err != nil {
		t.Fatal(err)
	}
	return o
}

func TestGetNarrowing(t *testing.T) {
	o := testObject(t)
	if _, err := o.GetInt32("long"); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("int32 of 5000000000: %v", err)
	}
	if l, err := o.GetInt64("long"); err != nil || l != 5000000000 {
		t.Errorf("int64: %d %v", l, err)
	}
	if _, err := o.GetInt64("huge"); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("int64 of huge: %v", err)
	}
	if b, err := o.GetBigInt("huge"); err != nil || b.String() != "123456789012345678901234567890" {
		t.Errorf("bigint: %v %v", b, err)
	}
	if i, err := o.GetInt32("small"); err != nil || i != 42 {
		t.Errorf("int32: %d %v", i, err)
	}
	if _, err := o.GetInt32("dec"); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("int32 of decimal: %v", err)
	}
	if f, err := o.GetFloat64("dec"); err != nil || f != 2.5 {
		t.Errorf("float64: %v %v", f, err)
	}
	if f, err := o.GetFloat32("small"); err != nil || f != 42 {
		t.Errorf("float32 of integer: %v %v", f, err)
	}
	if _, err := o.GetFloat64("bigdec"); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("float64 of 1e400: %v", err)
	}
	if d, err := o.GetDecimal("small"); err != nil || d.String() != "42" {
		t.Errorf("decimal of integer: %v %v", d, err)
	}
}

func TestGetErrors(t *testing.T) {
	o := testObject(t)
	if _, err := o.GetString("missing"); !errors.Is(err, ErrMissingKey) {
		t.Errorf("missing: %v", err)
	}
	if _, err := o.GetString("null"); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("null: %v", err)
	}
	if _, err := o.GetBool("str"); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("bool of string: %v", err)
	}
	if _, err := o.GetObject("list"); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("object of list: %v", err)
	}
	if _, err := o.GetList("obj"); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("list of object: %v", err)
	}
}

func TestFloatOfHugeExponent(t *testing.T) {
	o, err := ObjectOf(
		"big", mustDecimal(t, "1e50000000"),
		"tiny", mustDecimal(t, "-1e-50000000"),
		"zero", mustDecimal(t, "0e99999999"),
	)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := o.GetFloat64("big"); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("big: %v", err)
	}
	if f, err := o.GetFloat32("tiny"); err != nil || f != 0 {
		t.Errorf("tiny: %v %v", f, err)
	}
	if f, err := o.GetFloat64("zero"); err != nil || f != 0 {
		t.Errorf("zero: %v %v", f, err)
	}
}

func TestDecimalText(t *testing.T) {
	for _, tc := range []struct {
		in, want string
	}{
		{"1.50", "1.5"},
		{"100", "100.0"},
		{"1e64", "10000000000000000000000000000000000000000000000000000000000000000.0"},
		{"1e65", "1e65"},
		{"12.5e80", "1.25e81"},
		{"-0.000125e-70", "-1.25e-74"},
		{"1e50000000", "1e50000000"},
		{"0e-99999999", "0.0"},
	} {
		d := mustDecimal(t, tc.in)
		if got := d.Text(); got != tc.want {
			t.Errorf("%s: got %s want %s", tc.in, got, tc.want)
		}
		if !Equal(d, mustDecimal(t, tc.want)) {
			t.Errorf("%s: not equal to %s", tc.in, tc.want)
		}
	}
}

func TestGetOr(t *testing.T) {
	o := testObject(t)
	if s, err := o.GetStringOr("missing", "fallback"); err != nil || s != "fallback" {
		t.Errorf("missing: %q %v", s, err)
	}
	if _, err := o.GetStringOr("null", "fallback"); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("null: %v", err)
	}
	if s, err := o.GetStringOr("str", "fallback"); err != nil || s != "s" {
		t.Errorf("str: %q %v", s, err)
	}
	if _, err := o.GetInt32Or("long", 0); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("narrowing: %v", err)
	}
}

func TestOpt(t *testing.T) {
	o := testObject(t)
	if _, ok, err := o.OptString("null"); ok || err != nil {
		t.Errorf("null: %v %v", ok, err)
	}
	if _, ok, err := o.OptString("missing"); ok || err != nil {
		t.Errorf("missing: %v %v", ok, err)
	}
	if s, ok, err := o.OptString("str"); !ok || err != nil || s != "s" {
		t.Errorf("str: %q %v %v", s, ok, err)
	}
	if _, ok, err := o.OptString("small"); ok || !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("mismatch: %v %v", ok, err)
	}
	if b, ok, err := o.OptBool("bool"); !ok || err != nil || !b {
		t.Errorf("bool: %v %v %v", b, ok, err)
	}
}

func TestOrEmptyOrNew(t *testing.T) {
	o := NewObject()
	e, err := o.GetObjectOrEmpty("a")
	if err != nil || e.Len() != 0 {
		t.Fatalf("empty: %v %v", e, err)
	}
	if o.Has("a") {
		t.Error("OrEmpty stored")
	}
	n, err := o.GetObjectOrNew("a")
	if err != nil {
		t.Fatal(err)
	}
	_ = n.Put("x", 1)
	again, _ := o.GetObjectOrNew("a")
	if again != n {
		t.Error("OrNew did not return stored object")
	}
	l, err := o.GetListOrNew("l")
	if err != nil {
		t.Fatal(err)
	}
	_ = l.Add(1)
	if got, _ := o.GetList("l"); got.Len() != 1 {
		t.Error("list not stored")
	}
	if _, err := o.GetListOrEmpty("a"); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("mismatch: %v", err)
	}
	if le, _ := o.GetListOrEmpty("m"); le.Len() != 0 || o.Has("m") {
		t.Error("list or empty")
	}
}
