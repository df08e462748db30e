package parse

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/jdoc/ir"
	"github.com/signadot/jdoc/token"
)

type parseTest struct {
	in string
	e  error
}

func TestParseObjectOK(t *testing.T) {
	pts := []parseTest{
		{in: `{}`},
		{in: ` { } `},
		{in: `{"a":1}`},
		{in: `{"a":1,"b":[1,2,3]}`},
		{in: `{"a":{"b":{"c":null}}, "d": [true, false, "x", 1.5e3, -0.0]}`},
		{in: "{\n\t\"a\": [],\n\t\"b\": {}\n}"},
		{in: `{"a":1,"a":2}`},
	}
	for _, pt := range pts {
		if _, err := ParseObject([]byte(pt.in)); err != nil {
			t.Errorf("%q: %v", pt.in, err)
		}
	}
}

func TestParseErrors(t *testing.T) {
	pts := []parseTest{
		{in: ``, e: ErrMissingToken},
		{in: `{`, e: ErrMissingToken},
		{in: `{"a"`, e: ErrMissingToken},
		{in: `{"a":`, e: ErrMissingToken},
		{in: `{"a":1`, e: ErrMissingToken},
		{in: `{"a":1}x`, e: ErrTrailingData},
		{in: `{"a":1}x`, e: token.ErrLiteral},
		{in: `{"a":1, x}`, e: token.ErrLiteral},
		{in: `{"a":1, "b": 01}`, e: token.ErrNumberLeadingZero},
		{in: `{"a":1}1`, e: ErrTrailingData},
		{in: `{"a":1}{}`, e: ErrTrailingData},
		{in: `{"a":1,}`, e: ErrUnexpectedToken},
		{in: `{,"a":1}`, e: ErrUnexpectedToken},
		{in: `{"a" 1}`, e: ErrUnexpectedToken},
		{in: `{"a":1 "b":2}`, e: ErrUnexpectedToken},
		{in: `{1:2}`, e: ErrUnexpectedToken},
		{in: `{"a":}`, e: ErrUnexpectedToken},
		{in: `{"a":,}`, e: ErrUnexpectedToken},
		{in: `[]`, e: ErrUnexpectedToken},
		{in: `{"a":"\q"}`, e: token.ErrBadEscape},
	}
	for _, pt := range pts {
		_, err := ParseObject([]byte(pt.in))
		if !errors.Is(err, pt.e) {
			t.Errorf("%q: got %v want %v", pt.in, err, pt.e)
		}
	}
}

func TestParseListErrors(t *testing.T) {
	pts := []parseTest{
		{in: `[1 2]`, e: ErrUnexpectedToken},
		{in: `[1,]`, e: ErrUnexpectedToken},
		{in: `[,1]`, e: ErrUnexpectedToken},
		{in: `[1,2`, e: ErrMissingToken},
		{in: `[:]`, e: ErrUnexpectedToken},
		{in: `[]]`, e: ErrTrailingData},
		{in: `{}`, e: ErrUnexpectedToken},
	}
	for _, pt := range pts {
		_, err := ParseList([]byte(pt.in))
		if !errors.Is(err, pt.e) {
			t.Errorf("%q: got %v want %v", pt.in, err, pt.e)
		}
		if !errors.Is(err, ErrParse) {
			t.Errorf("%q: %v does not wrap ErrParse", pt.in, err)
		}
	}
}

func TestParseValues(t *testing.T) {
	o, err := ParseObject([]byte(`{"a":1,"b":[1,2,3],"c":"x\ty","d":2.50,"e":null,"f":true}`))
	if err != nil {
		t.Fatal(err)
	}
	want, err := ir.ObjectOf(
		"a", 1,
		"b", []int{1, 2, 3},
		"c", "x\ty",
		"d", 2.5,
		"e", nil,
		"f", true,
	)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(ir.Value(want), ir.Value(o)); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
	if diff := cmp.Diff([]string{"a", "b", "c", "d", "e", "f"}, o.Keys()); diff != "" {
		t.Errorf("keys (-want +got)\n%s", diff)
	}
	a, _ := o.Get("a")
	if a.Type() != ir.IntegerType {
		t.Errorf("a is %s", a.Type())
	}
	d, _ := o.Get("d")
	if d.Type() != ir.DecimalType {
		t.Errorf("d is %s", d.Type())
	}
}

func TestParseDuplicateKey(t *testing.T) {
	o, err := ParseObject([]byte(`{"a":1,"b":2,"a":3}`))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"a", "b"}, o.Keys()); diff != "" {
		t.Errorf("keys (-want +got)\n%s", diff)
	}
	if a, _ := o.GetInt32("a"); a != 3 {
		t.Errorf("a = %d", a)
	}
}

func TestParseTopLevel(t *testing.T) {
	v, err := Parse([]byte(` [ {"a": []} ] `))
	if err != nil {
		t.Fatal(err)
	}
	if v.Type() != ir.ListType {
		t.Errorf("got %s", v.Type())
	}
	v, err = Parse([]byte(`{}`))
	if err != nil {
		t.Fatal(err)
	}
	if v.Type() != ir.ObjectType {
		t.Errorf("got %s", v.Type())
	}
	if _, err := Parse([]byte(`1`)); !errors.Is(err, ErrUnexpectedToken) {
		t.Errorf("scalar: %v", err)
	}
	if _, err := Parse(nil); !errors.Is(err, ErrMissingToken) {
		t.Errorf("empty: %v", err)
	}
}

func TestParseMaxDepth(t *testing.T) {
	in := []byte(`[[[[1]]]]`)
	if _, err := ParseList(in, MaxDepth(4)); err != nil {
		t.Errorf("depth 4: %v", err)
	}
	if _, err := ParseList(in, MaxDepth(3)); !errors.Is(err, ErrDepth) {
		t.Errorf("depth 3: %v", err)
	}
}

func TestParseDeepNestingIsLinear(t *testing.T) {
	n := DefaultMaxDepth
	lists := strings.Repeat("[", n) + "1" + strings.Repeat("]", n)
	objs := strings.Repeat(`{"a":`, n-1) + "{}" + strings.Repeat("}", n-1)
	start := time.Now()
	for range 5 {
		if _, err := ParseList([]byte(lists)); err != nil {
			t.Fatalf("lists: %v", err)
		}
		if _, err := ParseObject([]byte(objs)); err != nil {
			t.Fatalf("objects: %v", err)
		}
	}
	if d := time.Since(start); d > 5*time.Second {
		t.Errorf("parsing depth %d took %s", n, d)
	}
	if _, err := ParseList([]byte("[" + lists + "]")); !errors.Is(err, ErrDepth) {
		t.Errorf("depth %d: %v", n+1, err)
	}
}

func TestParseErrorMessage(t *testing.T) {
	_, err := ParseList([]byte(`[1 2]`))
	if err == nil {
		t.Fatal("no error")
	}
	want := "parse error: unexpected token: invalid token 2, expected ',' or ']'"
	if got := err.Error(); len(got) < len(want) || got[:len(want)] != want {
		t.Errorf("got %q", got)
	}
	_, err = ParseObject([]byte(`{"a":`))
	if got := err.Error(); got != "parse error: missing token, expected value" {
		t.Errorf("got %q", got)
	}
}

func TestCursor(t *testing.T) {
	toks, err := token.Tokenize(nil, []byte(`[1,2]`))
	if err != nil {
		t.Fatal(err)
	}
	c := NewCursor(toks)
	if c.Len() != 5 || c.Remaining() != 5 {
		t.Fatalf("len %d remaining %d", c.Len(), c.Remaining())
	}
	for c.HasNext() {
		if _, err := c.Next(); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := c.Next(); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("next at end: %v", err)
	}
	if err := c.Rewind(6); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("rewind 6: %v", err)
	}
	if c.Pos() != 5 {
		t.Errorf("pos moved on failed rewind: %d", c.Pos())
	}
	if err := c.Rewind(5); err != nil {
		t.Errorf("rewind 5: %v", err)
	}
	if err := c.SeekTo(6); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("seek 6: %v", err)
	}
	if err := c.SeekTo(5); err != nil || c.Remaining() != 0 {
		t.Errorf("seek 5: %v", err)
	}
	if err := c.SeekTo(1); err != nil {
		t.Fatal(err)
	}
	tok, _ := c.Next()
	if tok.Type != token.TInteger {
		t.Errorf("got %s", tok.Type)
	}
}
