package ir

import "math"

// Equal reports whether a and b have the same type, name, value and
// children in the same order. Number lexemes are not compared.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.typ != b.typ || a.named != b.named || a.name != b.name || a.size != b.size {
		return false
	}
	switch a.typ {
	case StringType:
		return a.str == b.str
	case LongType, BoolType:
		return a.i64 == b.i64
	case DoubleType:
		if math.IsNaN(a.f64) {
			return math.IsNaN(b.f64)
		}
		return a.f64 == b.f64
	case NullType:
		return true
	}
	ca, cb := a.child, b.child
	for ca != nil && cb != nil {
		if !Equal(ca, cb) {
			return false
		}
		ca, cb = ca.next, cb.next
	}
	return ca == nil && cb == nil
}
