// Package gomap converts document values to and from plain Go values and
// renders them as YAML.
//
// [ToAny] produces nil, bool, string, json.Number, map[string]any and
// []any. Numbers are kept as json.Number so that no precision is lost.
//
// [Decode] and [Load] fill a Go value, such as a struct, through
// encoding/json tags.
//
// [ToYAML] keeps object key order and emits object comments as YAML line
// comments.
package gomap
