// Package jdoc reads JSON text into mutable, order preserving documents
// and writes them back as readable text with optional per key comments.
//
// The subpackages hold the pieces: token and parse turn text into
// values of package ir, dotpath navigates objects by dotted paths, encode
// renders values, gomap converts to and from Go values and YAML, eval
// evaluates expressions against documents and libdiff compares rendered
// documents. This package ties them together and adds JSON Patch and
// merge patch support.
package jdoc
