package encode_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/jdoc/encode"
	"github.com/signadot/jdoc/format"
	"github.com/signadot/jdoc/ir"
	"github.com/signadot/jdoc/parse"
)

type encodeTest struct {
	in   string
	opts []encode.EncodeOption
	out  string
}

func TestEncodePretty(t *testing.T) {
	ets := []encodeTest{
		{
			in:  `{}`,
			out: `{}`,
		},
		{
			in:  `[]`,
			out: `[]`,
		},
		{
			in:  `{"a":1,"b":[1,2,3]}`,
			out: "{\n\t\"a\": 1,\n\t\"b\": [1, 2, 3]\n}",
		},
		{
			in:  `[1,2,3,4,5,6,7,8,9,10]`,
			out: "[\n\t1, 2, 3, 4, 5, 6, 7, 8,\n\t9, 10\n]",
		},
		{
			in:  `[1,2,3,4]`,
			out: "[\n\t1, 2, 3, 4\n]",
		},
		{
			in:  `[true, "x", 1.5]`,
			out: `[true, "x", 1.5]`,
		},
		{
			in:  `[1, null]`,
			out: "[\n\t1,\n\tnull\n]",
		},
		{
			in:  `[{"a":1},[]]`,
			out: "[\n\t{\n\t\t\"a\": 1\n\t},\n\t[]\n]",
		},
		{
			in:  `{"a":{"b":[1,2]}}`,
			out: "{\n\t\"a\": {\n\t\t\"b\": [1, 2]\n\t}\n}",
		},
		{
			in:  `[123456789012345678901234567890]`,
			out: "[\n\t123456789012345678901234567890\n]",
		},
		{
			in:  `["a\nb", "\"q\""]`,
			out: `["a\nb", "\"q\""]`,
		},
		{
			in:  `[2.0, 1e2, -0.5]`,
			out: `[2.0, 100.0, -0.5]`,
		},
		{
			in:   `{"a":[1,2]}`,
			opts: []encode.EncodeOption{encode.Indent("  ")},
			out:  "{\n  \"a\": [1, 2]\n}",
		},
		{
			in:   `[1,2]`,
			opts: []encode.EncodeOption{encode.NoCompactLists()},
			out:  "[\n\t1,\n\t2\n]",
		},
		{
			in:   `[1,2,3,4,5]`,
			opts: []encode.EncodeOption{encode.CompactLists(2, 2)},
			out:  "[\n\t1, 2,\n\t3, 4,\n\t5\n]",
		},
		{
			in:   `[1,2,3]`,
			opts: []encode.EncodeOption{encode.CompactLists(2, 0)},
			out:  "[\n\t1, 2, 3\n]",
		},
		{
			in:   `{"a":1,"b":[1,2,{"c":"d"}],"e":"x\"y"}`,
			opts: []encode.EncodeOption{encode.EncodeWire(true)},
			out:  `{"a":1,"b":[1,2,{"c":"d"}],"e":"x\"y"}`,
		},
	}
	for _, et := range ets {
		v, err := parse.Parse([]byte(et.in))
		if err != nil {
			t.Fatalf("%q: %v", et.in, err)
		}
		buf := bytes.NewBuffer(nil)
		if err := encode.Encode(v, buf, et.opts...); err != nil {
			t.Errorf("%q: %v", et.in, err)
			continue
		}
		if diff := cmp.Diff(et.out, buf.String()); diff != "" {
			t.Errorf("%q (-want +got):\n%s", et.in, diff)
		}
	}
}

func testCommented(t *testing.T) *ir.Object {
	t.Helper()
	o, err := ir.ObjectOf("a", 1, "b", 2)
	if err != nil {
		t.Fatal(err)
	}
	o.SetComment("a", " one")
	o.SetComment("b", "two")
	o.SetComment("missing", "not shown")
	return o
}

func TestEncodeComments(t *testing.T) {
	o := testCommented(t)
	want := "{\n\t\"a\": 1, // one\n\t\"b\": 2 //two\n}"
	if diff := cmp.Diff(want, encode.MustString(o)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	want = "{\n\t\"a\": 1,\n\t\"b\": 2\n}"
	for _, opt := range []encode.EncodeOption{
		encode.EncodeComments(false),
		encode.EncodeFormat(format.JSONFormat),
	} {
		if diff := cmp.Diff(want, encode.MustString(o, opt)); diff != "" {
			t.Errorf("(-want +got):\n%s", diff)
		}
	}
	wire := encode.MustString(o, encode.EncodeWire(true))
	if !json.Valid([]byte(wire)) {
		t.Errorf("wire output is not json: %s", wire)
	}
}

func TestEncodeMultilineComment(t *testing.T) {
	o, err := ir.ObjectOf("a", 1, "b", 2)
	if err != nil {
		t.Fatal(err)
	}
	o.SetComment("a", "one\ntwo\r\nthree")
	want := "{\n\t\"a\": 1, //one two three\n\t\"b\": 2\n}"
	if diff := cmp.Diff(want, encode.MustString(o)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	got := encode.MustString(o)
	var lines []string
	for _, line := range strings.Split(got, "\n") {
		if i := strings.Index(line, "//"); i >= 0 {
			line = line[:i]
		}
		lines = append(lines, line)
	}
	if stripped := strings.Join(lines, "\n"); !json.Valid([]byte(stripped)) {
		t.Errorf("without comments: %s", stripped)
	}
}

func TestEncodeHugeExponent(t *testing.T) {
	for _, tc := range []struct {
		in, out string
	}{
		{in: "[1e50000000]", out: "[1e50000000]"},
		{in: "[-2.50e-50000000]", out: "[-2.5e-50000000]"},
		{in: "[1.5E70]", out: "[1.5e70]"},
		{in: "[0e99999999]", out: "[0.0]"},
		{in: "[1e3]", out: "[1000.0]"},
	} {
		l, err := parse.ParseList([]byte(tc.in))
		if err != nil {
			t.Fatalf("%s: %v", tc.in, err)
		}
		got := encode.MustString(l, encode.EncodeWire(true))
		if got != tc.out {
			t.Errorf("%s: got %s want %s", tc.in, got, tc.out)
		}
		back, err := parse.ParseList([]byte(got))
		if err != nil {
			t.Fatalf("reparse %s: %v", got, err)
		}
		if !ir.Equal(l, back) {
			t.Errorf("%s: round trip gives %s", tc.in, encode.MustString(back))
		}
	}
	l, _ := parse.ParseList([]byte("[1e50000000, 1]"))
	if diff := cmp.Diff("[\n\t1e50000000,\n\t1\n]", encode.MustString(l)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	o := testCommented(t)
	inner := o.PutNewObject("inner")
	_ = inner.Put("list", []any{1, 2.5, "s", true, nil, []any{}, map[string]any{"k": "v"}})
	_ = inner.Put("long", []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17})
	_ = o.Put("esc", "tab\there \"quoted\" \\ ∞ \x01")
	_ = o.Put("dec", 3.0)
	for _, opts := range [][]encode.EncodeOption{
		nil,
		{encode.NoCompactLists()},
		{encode.EncodeWire(true)},
		{encode.EncodeFormat(format.JSONFormat), encode.Indent("    ")},
	} {
		text := encode.MustString(o, opts...)
		back, err := parse.ParseObject([]byte(text))
		if err != nil {
			t.Fatalf("reparse %s: %v", text, err)
		}
		if diff := cmp.Diff(ir.Value(o), ir.Value(back)); diff != "" {
			t.Errorf("(-want +got):\n%s", diff)
		}
		if diff := cmp.Diff(o.Keys(), back.Keys()); diff != "" {
			t.Errorf("keys (-want +got):\n%s", diff)
		}
	}
}

func TestEncodeColors(t *testing.T) {
	o := testCommented(t)
	colors := encode.NewColors()
	colors.Map[encode.Colorable{Type: ir.IntegerType, Attr: encode.ValueColor}] = func(s string, _ ...any) string {
		return "<" + s + ">"
	}
	got := encode.MustString(o, encode.EncodeColors(colors), encode.EncodeComments(false))
	want := "{\n\t\"a\": <1>,\n\t\"b\": <2>\n}"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}
