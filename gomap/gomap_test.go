package gomap

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/signadot/jdoc/ir"
	"github.com/signadot/jdoc/parse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const doc = `{"name":"alice","age":30,"score":1.25,"tags":["x","y"],"big":123456789012345678901234567890,"none":null,"nested":{"ok":true}}`

func TestToAny(t *testing.T) {
	v, err := parse.Parse([]byte(doc))
	require.NoError(t, err)
	a := ToAny(v)
	m, ok := a.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "alice", m["name"])
	assert.Equal(t, json.Number("30"), m["age"])
	assert.Equal(t, json.Number("1.25"), m["score"])
	assert.Equal(t, json.Number("123456789012345678901234567890"), m["big"])
	assert.Equal(t, []any{"x", "y"}, m["tags"])
	assert.Nil(t, m["none"])
	assert.Equal(t, map[string]any{"ok": true}, m["nested"])

	back, err := FromAny(a)
	require.NoError(t, err)
	assert.True(t, ir.Equal(v, back))
}

type person struct {
	Name   string   `json:"name"`
	Age    int      `json:"age"`
	Score  float64  `json:"score"`
	Tags   []string `json:"tags"`
	Nested struct {
		OK bool `json:"ok"`
	} `json:"nested"`
}

func TestLoad(t *testing.T) {
	p := &person{}
	require.NoError(t, Load([]byte(doc), p))
	assert.Equal(t, "alice", p.Name)
	assert.Equal(t, 30, p.Age)
	assert.Equal(t, 1.25, p.Score)
	assert.Equal(t, []string{"x", "y"}, p.Tags)
	assert.True(t, p.Nested.OK)

	err := Load([]byte(doc), &person{}, Strict(true))
	assert.Error(t, err)

	err = Load([]byte(`{"name":`), p)
	assert.ErrorIs(t, err, parse.ErrMissingToken)
}

func TestEncodeKeepsFieldOrder(t *testing.T) {
	p := person{Name: "bob", Age: 4, Tags: []string{"z"}}
	v, err := Encode(p)
	require.NoError(t, err)
	o, ok := v.(*ir.Object)
	require.True(t, ok)
	assert.Equal(t, []string{"name", "age", "score", "tags", "nested"}, o.Keys())
	age, err := o.GetInt32("age")
	require.NoError(t, err)
	assert.EqualValues(t, 4, age)

	s, err := Encode("scalar")
	require.NoError(t, err)
	assert.True(t, ir.Equal(ir.String("scalar"), s))
}

func TestToYAML(t *testing.T) {
	v, err := parse.Parse([]byte(`{"b":1,"a":[1,2.5],"c":"x","d":"true","e":{}}`))
	require.NoError(t, err)
	d, err := ToYAML(v)
	require.NoError(t, err)
	out := string(d)
	ib, ia, ic := strings.Index(out, "b:"), strings.Index(out, "a:"), strings.Index(out, "c:")
	assert.True(t, ib >= 0 && ib < ia && ia < ic, "key order lost:\n%s", out)
	assert.Contains(t, out, "b: 1")
	assert.Contains(t, out, "2.5")
	assert.Contains(t, out, `"true"`)
	assert.Contains(t, out, "{}")
}

func TestToYAMLComments(t *testing.T) {
	o, err := ir.ObjectOf("a", 1, "b.c", 2)
	require.NoError(t, err)
	o.SetComment("a", "first")
	o.SetComment("b.c", "skipped")
	d, err := ToYAML(o)
	require.NoError(t, err)
	assert.Contains(t, string(d), "first")
	assert.NotContains(t, string(d), "skipped")

	d, err = ToYAML(o, YAMLComments(false))
	require.NoError(t, err)
	assert.NotContains(t, string(d), "first")

	o.SetComment("a", "one\ntwo")
	d, err = ToYAML(o)
	require.NoError(t, err)
	assert.Contains(t, string(d), "one two")
	back := map[string]any{}
	require.NoError(t, yaml.Unmarshal(d, &back))
	assert.Len(t, back, 2)
}
