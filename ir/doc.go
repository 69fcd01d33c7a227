// Package ir provides the value tree for ljson documents.
//
// # Overview
//
// Every document, whether parsed from text or built in code, is a tree of
// *Node. A node is a tagged union: its Type says which payload is live.
//
//   - NullType, BoolType: no payload / 0 or 1
//   - LongType: int64, with the source lexeme when parsed
//   - DoubleType: float64, with the source lexeme when parsed
//   - StringType: string
//   - ObjectType: named children, in insertion order
//   - ArrayType: unnamed children
//
// # Links
//
// Children form a doubly linked chain with a cached tail, so appending
// and removing a known child are O(1), while Index and Get scan. Each
// child points back to its parent for navigation and Trace. A node has
// at most one parent: AddChild on an attached node moves it.
//
// Object member names may repeat; Get returns the first match ignoring
// case.
//
// # Coercion
//
// The As* methods convert a value to a Go type following loose rules:
// strings parse as numbers, numbers are truthy when nonzero and doubles
// narrow to integers with saturation. Coercing a container fails with
// ErrInvalidState, a failed parse with ErrConversion.
//
// # Paths
//
// Trace renders the path of a node from its root, e.g. .a."x.y"[2].
// ParsePath, GetPath and ListPath read the same syntax, with "[*]" and
// ".." wildcards for ListPath.
package ir
