// Package encode encodes document values to text.
//
// # Usage
//
//	obj, _ := ir.ObjectOf("name", "alice", "scores", []int{1, 2, 3})
//	obj.SetComment("name", " the user")
//
//	// Pretty format, the default
//	err := encode.Encode(obj, os.Stdout)
//
//	// Two space indentation, one list element per line
//	err = encode.Encode(obj, os.Stdout, encode.Indent("  "), encode.NoCompactLists())
//
//	// Strict JSON on one line
//	err = encode.Encode(obj, os.Stdout, encode.EncodeWire(true))
//
// The pretty format is JSON plus `//` comments after object entries; it is
// not valid JSON when comments are present. Use [EncodeWire] or
// [format.JSONFormat] for interchange.
//
// # Related Packages
//
//   - github.com/signadot/jdoc/ir - Document model
//   - github.com/signadot/jdoc/parse - Parse text to values
package encode
