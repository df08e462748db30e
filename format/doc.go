// Package format names the output formats of a document: the commented
// pretty format, strict JSON and YAML.
package format
