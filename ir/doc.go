// Package ir provides the in-memory document model.
//
// # Values
//
// A [Value] is one of seven variants:
//
//   - [Null]
//   - [Bool]
//   - [Integer]: arbitrary precision signed integer
//   - [Decimal]: arbitrary precision signed decimal
//   - [String]
//   - [*Object]: string keyed mapping which keeps keys in insertion order
//   - [*List]: ordered sequence
//
// Fixed width numbers are never stored. They are read views applied by the
// typed accessors of [Object], which fail with [ErrTypeMismatch] when the
// stored value cannot be represented exactly.
//
// # Mutation
//
// Values passed to [Object.Put], [List.Add] and friends are normalized with
// [ValueOf]: Go integers become [Integer], floats become [Decimal] via their
// shortest textual representation, and maps and slices are converted
// recursively. Values which cannot be normalized are rejected at put time
// with [ErrInvalidArgument].
//
// Objects carry an optional side table of per key comments which the
// encoder emits after the value as a `//` line comment.
//
// # Related Packages
//
//   - github.com/signadot/jdoc/parse - Parse text to values
//   - github.com/signadot/jdoc/encode - Encode values to text
//   - github.com/signadot/jdoc/dotpath - Dotted path access to nested objects
package ir
