package ir

// Truth reports whether a node counts as true in a predicate: non-empty
// containers and strings, nonzero numbers and true.
func Truth(node *Node) bool {
	if node == nil {
		return false
	}
	switch node.typ {
	case ObjectType, ArrayType:
		return node.size != 0
	case StringType:
		return node.str != ""
	case DoubleType:
		return node.f64 != 0
	case LongType, BoolType:
		return node.i64 != 0
	default:
		return false
	}
}
