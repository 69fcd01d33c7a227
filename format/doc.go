// Package format names the output dialects of the ljson writer.
//
// # Dialects
//
//   - MinimalFormat: keys and strings are written bare unless the parser
//     could not read them back identically.
//   - JSONFormat: standard JSON, every key and string double-quoted.
//   - JavaScriptFormat: keys bare when they are identifiers, values quoted.
//
// # Usage
//
//	f, err := format.ParseFormat("json")
//	f = format.FromSuffix("config.hjson")
//
// # Related Packages
//
//   - github.com/signadot/ljson/encode - Encode value trees to text
//   - github.com/signadot/ljson/parse - Parse text to value trees
package format
