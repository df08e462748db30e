package jdoc

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/jdoc/encode"
	"github.com/signadot/jdoc/format"
	"github.com/signadot/jdoc/ir"
	"github.com/signadot/jdoc/libdiff"
)

func mustParse(t *testing.T, src string) ir.Value {
	t.Helper()
	v, err := Parse([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	return v
}

func TestWrite(t *testing.T) {
	obj, err := ParseObject([]byte(`{"b": [1, 2], "a": "x"}`))
	if err != nil {
		t.Fatal(err)
	}
	obj.SetComment("a", " note")
	tests := []struct {
		name string
		opts []encode.EncodeOption
		want string
	}{
		{
			name: "pretty",
			want: "{\n\t\"b\": [1, 2],\n\t\"a\": \"x\" // note\n}\n",
		},
		{
			name: "json",
			opts: []encode.EncodeOption{encode.EncodeFormat(format.JSONFormat)},
			want: "{\n\t\"b\": [1, 2],\n\t\"a\": \"x\"\n}\n",
		},
		{
			name: "wire",
			opts: []encode.EncodeOption{encode.EncodeWire(true)},
			want: "{\"b\":[1,2],\"a\":\"x\"}\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := bytes.NewBuffer(nil)
			if err := Write(obj, buf, tt.opts...); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, buf.String()); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
	if got := String(obj); got != "{\n\t\"b\": [1, 2],\n\t\"a\": \"x\" // note\n}" {
		t.Errorf("String: got %q", got)
	}
}

func TestWriteYAML(t *testing.T) {
	obj, err := ParseObject([]byte(`{"b": [1, 2], "a": "x"}`))
	if err != nil {
		t.Fatal(err)
	}
	obj.SetComment("a", "note")
	buf := bytes.NewBuffer(nil)
	if err := Write(obj, buf, encode.EncodeFormat(format.YAMLFormat)); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"b:", "- 1", "a: x", "note"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in\n%s", want, out)
		}
	}
	if strings.Index(out, "b:") > strings.Index(out, "a:") {
		t.Errorf("key order lost:\n%s", out)
	}
}

func TestParseList(t *testing.T) {
	l, err := ParseList([]byte(`[1, {"a": []}]`))
	if err != nil {
		t.Fatal(err)
	}
	if l.Len() != 2 {
		t.Errorf("got %d elements", l.Len())
	}
	if _, err := ParseObject([]byte(`[]`)); err == nil {
		t.Error("expected an error parsing a list as an object")
	}
}

func TestJSONPatch(t *testing.T) {
	doc := mustParse(t, `{"b": 1, "a": 2, "l": [1, 2]}`)
	doc.(*ir.Object).SetComment("a", "two")
	patch := mustParse(t, `[
		{"op": "add", "path": "/c", "value": 3},
		{"op": "replace", "path": "/b", "value": 5},
		{"op": "add", "path": "/l/-", "value": 3}
	]`).(*ir.List)

	got, err := JSONPatch(doc, patch)
	if err != nil {
		t.Fatal(err)
	}
	want := "{\n\t\"b\": 5,\n\t\"a\": 2, //two\n\t\"l\": [1, 2, 3],\n\t\"c\": 3\n}"
	if diff := cmp.Diff(want, String(got)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if b, _ := doc.(*ir.Object).GetInt32("b"); b != 1 {
		t.Errorf("input modified: b is %d", b)
	}

	bad := mustParse(t, `[{"op": "remove", "path": "/missing"}]`).(*ir.List)
	if _, err := JSONPatch(doc, bad); !errors.Is(err, ErrPatch) {
		t.Errorf("got %v, want %v", err, ErrPatch)
	}
}

func TestJSONPatchRestoresNested(t *testing.T) {
	doc := mustParse(t, `{"z": {"q": 1, "p": [{"k": 1, "j": 2}]}, "a": 1}`).(*ir.Object)
	z, _ := doc.GetObject("z")
	z.SetComment("q", "kept")
	patch := mustParse(t, `[
		{"op": "replace", "path": "/a", "value": 2},
		{"op": "add", "path": "/z/p/0/i", "value": 3}
	]`).(*ir.List)

	got, err := JSONPatch(doc, patch)
	if err != nil {
		t.Fatal(err)
	}
	out := got.(*ir.Object)
	if diff := cmp.Diff([]string{"z", "a"}, out.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	gz, err := out.GetObject("z")
	if err != nil {
		t.Fatal(err)
	}
	if c, ok := gz.Comment("q"); !ok || c != "kept" {
		t.Errorf("comment %q %v", c, ok)
	}
	p, err := gz.GetList("p")
	if err != nil || p.Len() != 1 {
		t.Fatalf("p: %v", err)
	}
	first, ok := p.At(0).(*ir.Object)
	if !ok {
		t.Fatalf("p[0] is %s", p.At(0).Type())
	}
	if diff := cmp.Diff([]string{"k", "j", "i"}, first.Keys()); diff != "" {
		t.Errorf("nested keys (-want +got):\n%s", diff)
	}
	if err := gz.Put("new", 1); err != nil {
		t.Fatal(err)
	}
	if z.Has("new") {
		t.Error("result shares containers with the input")
	}
}

func TestMergePatch(t *testing.T) {
	doc := mustParse(t, `{"a": {"x": 1, "y": 2}, "b": 1}`)
	patch := mustParse(t, `{"a": {"y": null, "z": 3}, "b": null}`)
	got, err := MergePatch(doc, patch)
	if err != nil {
		t.Fatal(err)
	}
	want := mustParse(t, `{"a": {"x": 1, "z": 3}}`)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	created, err := CreateMergePatch(doc, got)
	if err != nil {
		t.Fatal(err)
	}
	again, err := MergePatch(doc, created)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, again); diff != "" {
		t.Errorf("round trip (-want +got):\n%s", diff)
	}
}

func TestDiff(t *testing.T) {
	a := mustParse(t, `{"a": 1, "b": 2}`)
	b := mustParse(t, `{"a": 1, "b": 3}`)
	d, err := Diff(a, b)
	if err != nil {
		t.Fatal(err)
	}
	want := libdiff.Diff{
		{Op: libdiff.Equal, Text: "{"},
		{Op: libdiff.Equal, Text: "\t\"a\": 1,"},
		{Op: libdiff.Delete, Text: "\t\"b\": 2"},
		{Op: libdiff.Insert, Text: "\t\"b\": 3"},
		{Op: libdiff.Equal, Text: "}"},
	}
	if diff := cmp.Diff(want, d); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	d, err = Diff(a, a)
	if err != nil {
		t.Fatal(err)
	}
	if d.Changed() {
		t.Error("expected no change")
	}
}
