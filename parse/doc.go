// Package parse parses JSON text into document values.
//
// # Usage
//
//	// Parse an object
//	obj, err := parse.ParseObject([]byte(`{"name": "alice", "age": 30}`))
//	if err != nil {
//	    return err
//	}
//
//	// Parse a list
//	list, err := parse.ParseList([]byte(`[1, 2, 3]`))
//
//	// Parse either, deciding by the first token
//	v, err := parse.Parse(data, parse.MaxDepth(64))
//
// Errors from the tokenizer are returned as is and wrap token.ErrLexical.
// Grammar errors wrap [ErrParse] and one of [ErrUnexpectedToken],
// [ErrMissingToken], [ErrTrailingData] or [ErrDepth].
//
// # Related Packages
//
//   - github.com/signadot/jdoc/ir - Document model
//   - github.com/signadot/jdoc/encode - Encode values to text
//   - github.com/signadot/jdoc/token - Tokenization
package parse
