// Package token provides the lexical layer of the lenient JSON dialect.
//
// [Tokenizer] is an explicit state machine that scans a document and
// reports values to a [Sink]. It accepts comments, bare names and values,
// optional commas and trailing commas.
//
// [Classify] decides how a bare token reads back, [IsBareName] and
// [IsBareValue] decide whether a string may be written without quotes.
package token
