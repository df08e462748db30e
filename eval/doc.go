// Package eval evaluates expr-lang expressions against documents.
//
// The environment of an expression holds the document under "doc", the
// top level keys of an object document, and caller supplied values, which
// take precedence. Numbers are exposed as int when they fit and float64
// otherwise. The functions getpath, haspath and getenv are available.
//
// Expand rewrites a document: a string of the form ".[expr]" is replaced
// by the value of expr, and "$[expr]" or ".[expr]" occurring inside longer
// strings and comments is replaced by the text of the value.
package eval
