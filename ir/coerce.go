package ir

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// FormatDouble renders f so that it reads back as a double: integral
// values keep a ".0" suffix. Magnitudes outside [1e-3, 1e7) use an
// exponent.
func FormatDouble(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	fmtc := byte('f')
	if a := math.Abs(f); a != 0 && (a < 1e-3 || a >= 1e7) {
		fmtc = 'e'
	}
	s := strconv.FormatFloat(f, fmtc, -1, 64)
	if strings.ContainsAny(s, ".eE") {
		return s
	}
	return s + ".0"
}

func saturateInt64(f float64) int64 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt64:
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	}
	return int64(f)
}

func saturateInt32(f float64) int32 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt32:
		return math.MaxInt32
	case f <= math.MinInt32:
		return math.MinInt32
	}
	return int32(f)
}

func (n *Node) conversionErr(to string, err error) error {
	return &PathErr{Path: n.Trace(), Err: &convErr{to: to, err: err}}
}

type convErr struct {
	to  string
	err error
}

func (e *convErr) Error() string {
	return ErrConversion.Error() + ": to " + e.to + ": " + e.err.Error()
}

func (e *convErr) Unwrap() []error { return []error{ErrConversion, e.err} }

func (n *Node) stateErr(to string) error {
	return pathErrf(n, ErrInvalidState, "%s cannot be converted to %s", n.typ, to)
}

// AsString returns the text of a value. A nil result with a nil error
// means the node is null.
func (n *Node) AsString() (*string, error) {
	var s string
	switch n.typ {
	case StringType:
		s = n.str
	case DoubleType:
		s = n.raw
		if s == "" {
			s = FormatDouble(n.f64)
		}
	case LongType:
		s = n.raw
		if s == "" {
			s = strconv.FormatInt(n.i64, 10)
		}
	case BoolType:
		s = strconv.FormatBool(n.i64 != 0)
	case NullType:
		return nil, nil
	default:
		return nil, n.stateErr("string")
	}
	return &s, nil
}

func (n *Node) AsDouble() (float64, error) {
	switch n.typ {
	case StringType:
		f, err := strconv.ParseFloat(strings.TrimSpace(n.str), 64)
		if err != nil {
			return 0, n.conversionErr("double", err)
		}
		return f, nil
	case DoubleType:
		return n.f64, nil
	case LongType, BoolType:
		return float64(n.i64), nil
	default:
		return 0, n.stateErr("double")
	}
}

func (n *Node) AsFloat() (float32, error) {
	switch n.typ {
	case StringType:
		f, err := strconv.ParseFloat(strings.TrimSpace(n.str), 32)
		if err != nil {
			return 0, n.conversionErr("float", err)
		}
		return float32(f), nil
	case DoubleType:
		return float32(n.f64), nil
	case LongType, BoolType:
		return float32(n.i64), nil
	default:
		return 0, n.stateErr("float")
	}
}

func (n *Node) AsLong() (int64, error) {
	switch n.typ {
	case StringType:
		v, err := strconv.ParseInt(n.str, 10, 64)
		if err != nil {
			return 0, n.conversionErr("long", err)
		}
		return v, nil
	case DoubleType:
		return saturateInt64(n.f64), nil
	case LongType, BoolType:
		return n.i64, nil
	default:
		return 0, n.stateErr("long")
	}
}

func (n *Node) AsInt() (int, error) {
	switch n.typ {
	case StringType:
		v, err := strconv.ParseInt(n.str, 10, 32)
		if err != nil {
			return 0, n.conversionErr("int", err)
		}
		return int(v), nil
	case DoubleType:
		return int(saturateInt32(n.f64)), nil
	case LongType, BoolType:
		return int(int32(n.i64)), nil
	default:
		return 0, n.stateErr("int")
	}
}

// AsShort narrows like a 16-bit signed integer.
func (n *Node) AsShort() (int16, error) {
	switch n.typ {
	case StringType:
		v, err := strconv.ParseInt(n.str, 10, 16)
		if err != nil {
			return 0, n.conversionErr("short", err)
		}
		return int16(v), nil
	case DoubleType:
		return int16(saturateInt32(n.f64)), nil
	case LongType, BoolType:
		return int16(n.i64), nil
	default:
		return 0, n.stateErr("short")
	}
}

// AsByte narrows like an 8-bit signed integer.
func (n *Node) AsByte() (int8, error) {
	switch n.typ {
	case StringType:
		v, err := strconv.ParseInt(n.str, 10, 8)
		if err != nil {
			return 0, n.conversionErr("byte", err)
		}
		return int8(v), nil
	case DoubleType:
		return int8(saturateInt32(n.f64)), nil
	case LongType, BoolType:
		return int8(n.i64), nil
	default:
		return 0, n.stateErr("byte")
	}
}

// AsChar returns the first rune of a string, or a number narrowed to a
// 16-bit code unit. The empty string yields 0.
func (n *Node) AsChar() (rune, error) {
	switch n.typ {
	case StringType:
		if n.str == "" {
			return 0, nil
		}
		r, _ := utf8.DecodeRuneInString(n.str)
		return r, nil
	case DoubleType:
		return rune(uint16(saturateInt32(n.f64))), nil
	case LongType, BoolType:
		return rune(uint16(n.i64)), nil
	default:
		return 0, n.stateErr("char")
	}
}

func (n *Node) AsBool() (bool, error) {
	switch n.typ {
	case StringType:
		return strings.EqualFold(n.str, "true"), nil
	case DoubleType:
		return n.f64 != 0, nil
	case LongType, BoolType:
		return n.i64 != 0, nil
	default:
		return false, n.stateErr("boolean")
	}
}

func asArray[T any](n *Node, what string, f func(*Node) (T, error)) ([]T, error) {
	if n.typ != ArrayType {
		return nil, pathErrf(n, ErrInvalidState, "%s is not an array of %s", n.typ, what)
	}
	res := make([]T, 0, n.size)
	for c := n.child; c != nil; c = c.next {
		v, err := f(c)
		if err != nil {
			return nil, err
		}
		res = append(res, v)
	}
	return res, nil
}

// AsStringArray converts every child; null children become "".
func (n *Node) AsStringArray() ([]string, error) {
	return asArray(n, "string", func(c *Node) (string, error) {
		s, err := c.AsString()
		if err != nil || s == nil {
			return "", err
		}
		return *s, nil
	})
}

func (n *Node) AsDoubleArray() ([]float64, error) {
	return asArray(n, "double", (*Node).AsDouble)
}

func (n *Node) AsFloatArray() ([]float32, error) {
	return asArray(n, "float", (*Node).AsFloat)
}

func (n *Node) AsLongArray() ([]int64, error) {
	return asArray(n, "long", (*Node).AsLong)
}

func (n *Node) AsIntArray() ([]int, error) {
	return asArray(n, "int", (*Node).AsInt)
}

func (n *Node) AsShortArray() ([]int16, error) {
	return asArray(n, "short", (*Node).AsShort)
}

func (n *Node) AsByteArray() ([]int8, error) {
	return asArray(n, "byte", (*Node).AsByte)
}

func (n *Node) AsCharArray() ([]rune, error) {
	return asArray(n, "char", (*Node).AsChar)
}

func (n *Node) AsBoolArray() ([]bool, error) {
	return asArray(n, "boolean", (*Node).AsBool)
}

// child lookup for the named getters: a missing, container or null
// child yields nil.
func (n *Node) valueChild(name string) *Node {
	c := n.Get(name)
	if c == nil || !c.IsValue() || c.IsNull() {
		return nil
	}
	return c
}

func (n *Node) GetString(name, def string) string {
	c := n.valueChild(name)
	if c == nil {
		return def
	}
	s, _ := c.AsString()
	return *s
}

func (n *Node) GetLong(name string, def int64) (int64, error) {
	c := n.valueChild(name)
	if c == nil {
		return def, nil
	}
	return c.AsLong()
}

func (n *Node) GetInt(name string, def int) (int, error) {
	c := n.valueChild(name)
	if c == nil {
		return def, nil
	}
	return c.AsInt()
}

func (n *Node) GetDouble(name string, def float64) (float64, error) {
	c := n.valueChild(name)
	if c == nil {
		return def, nil
	}
	return c.AsDouble()
}

func (n *Node) GetBool(name string, def bool) (bool, error) {
	c := n.valueChild(name)
	if c == nil {
		return def, nil
	}
	return c.AsBool()
}

func (n *Node) requireValue(name string) (*Node, error) {
	c, err := n.Require(name)
	if err != nil {
		return nil, err
	}
	if !c.IsValue() {
		return nil, pathErrf(c, ErrInvalidState, "%s is not a value", c.typ)
	}
	return c, nil
}

// RequireString is like GetString but fails when the child is absent.
// A null child yields "null".
func (n *Node) RequireString(name string) (string, error) {
	c, err := n.requireValue(name)
	if err != nil {
		return "", err
	}
	s, _ := c.AsString()
	if s == nil {
		return "null", nil
	}
	return *s, nil
}

func (n *Node) RequireLong(name string) (int64, error) {
	c, err := n.requireValue(name)
	if err != nil {
		return 0, err
	}
	return c.AsLong()
}

func (n *Node) RequireInt(name string) (int, error) {
	c, err := n.requireValue(name)
	if err != nil {
		return 0, err
	}
	return c.AsInt()
}

func (n *Node) RequireDouble(name string) (float64, error) {
	c, err := n.requireValue(name)
	if err != nil {
		return 0, err
	}
	return c.AsDouble()
}

func (n *Node) RequireBool(name string) (bool, error) {
	c, err := n.requireValue(name)
	if err != nil {
		return false, err
	}
	return c.AsBool()
}
