// Package token provides tokenization of JSON text.
//
// [Tokenize] turns a complete document into a slice of [Token]s. Whitespace is
// dropped, string tokens carry their escape-resolved value and number tokens
// carry either an arbitrary precision integer or an arbitrary precision
// decimal, chosen by the lexical form of the literal.
//
// The tokenizer does no structural validation: bracket matching, commas and
// key/value pairing are left to package parse.
package token
