// Package encode writes ir nodes as text in one of three dialects.
//
// ToText writes a compact single line, PrettyPrint indents with tabs and
// keeps short containers of values on one line. Writer emits a document
// call by call, without a tree.
//
//	s, err := encode.PrettyPrint(node, format.JSONFormat, 80)
//
//	w := encode.NewWriter(os.Stdout, encode.EncodeFormat(format.JSONFormat))
//	w.Object()
//	w.Set("name", "alice")
//	w.Close()
//
// In the minimal dialect names and strings are written bare unless they
// would read back differently. Numbers keep their source text when the
// parser recorded it.
package encode
