package encode

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"math/big"
	"reflect"
	"strconv"
	"strings"

	"github.com/signadot/ljson/ir"
	"github.com/signadot/ljson/token"
)

// Writer emits a document piece by piece without building a tree.
//
// Calls must follow the shape of the document: a Name before every
// member of an object, a Pop for every Object or Array. A call out of
// order fails with an error wrapping ir.ErrInvalidState and locating the
// writer by path. The first error is sticky until Reset.
type Writer struct {
	es    EncState
	out   io.Writer
	stack []frame
	name  string
	named bool
	done  bool
	err   error
}

type frame struct {
	object bool
	n      int
	key    string
}

func NewWriter(w io.Writer, opts ...EncodeOption) *Writer {
	res := &Writer{out: w}
	res.es.format = DefaultFormat
	for _, opt := range opts {
		opt(&res.es)
	}
	return res
}

// Reset discards all state and directs further output to out.
func (w *Writer) Reset(out io.Writer) {
	w.out = out
	w.stack = w.stack[:0]
	w.name, w.named = "", false
	w.done = false
	w.err = nil
}

func (w *Writer) Err() error { return w.err }

// Path returns the location of the next value in Trace syntax.
func (w *Writer) Path() string {
	p := w.prefix()
	if len(w.stack) == 0 {
		return p
	}
	top := w.stack[len(w.stack)-1]
	switch {
	case !top.object:
		p += ir.IndexSegment(top.n)
	case w.named:
		p += ir.FieldSegment(w.name)
	}
	return p
}

func (w *Writer) prefix() string {
	var b strings.Builder
	for i := range w.stack {
		b.WriteString(w.stack[i].key)
	}
	return b.String()
}

func (w *Writer) stateErr(msg string, args ...any) error {
	w.err = &ir.PathErr{
		Path: w.Path(),
		Err:  fmt.Errorf("%w: %s", ir.ErrInvalidState, fmt.Sprintf(msg, args...)),
	}
	return w.err
}

func (w *Writer) write(d []byte) error {
	if _, err := w.out.Write(d); err != nil {
		w.err = err
		return err
	}
	return nil
}

// begin checks that a value may be written here and returns the key it
// will have, with any separator it needs.
func (w *Writer) begin() (string, []byte, error) {
	if w.err != nil {
		return "", nil, w.err
	}
	if len(w.stack) == 0 {
		if w.done {
			return "", nil, w.stateErr("document already has a value")
		}
		return "", nil, nil
	}
	top := &w.stack[len(w.stack)-1]
	if top.object {
		if !w.named {
			return "", nil, w.stateErr("object member requires a name")
		}
		key := ir.FieldSegment(w.name)
		w.name, w.named = "", false
		top.n++
		return key, nil, nil
	}
	key := ir.IndexSegment(top.n)
	var d []byte
	if top.n > 0 {
		d = w.es.sep(d, ir.ArrayType, ",")
	}
	top.n++
	return key, d, nil
}

func (w *Writer) end() {
	if len(w.stack) == 0 {
		w.done = true
	}
}

func (w *Writer) Name(key string) error {
	if w.err != nil {
		return w.err
	}
	if len(w.stack) == 0 || !w.stack[len(w.stack)-1].object {
		return w.stateErr("name %q outside an object", key)
	}
	if w.named {
		return w.stateErr("name %q follows name %q", key, w.name)
	}
	top := &w.stack[len(w.stack)-1]
	var d []byte
	if top.n > 0 {
		d = w.es.sep(d, ir.ObjectType, ",")
	}
	d = w.es.field(d, key, ":")
	if err := w.write(d); err != nil {
		return err
	}
	w.name, w.named = key, true
	return nil
}

func (w *Writer) Object() error { return w.open(ir.ObjectType, "{") }
func (w *Writer) Array() error  { return w.open(ir.ArrayType, "[") }

func (w *Writer) open(t ir.Type, open string) error {
	key, d, err := w.begin()
	if err != nil {
		return err
	}
	d = w.es.sep(d, t, open)
	if err := w.write(d); err != nil {
		return err
	}
	w.stack = append(w.stack, frame{object: t == ir.ObjectType, key: key})
	return nil
}

// Pop closes the innermost object or array.
func (w *Writer) Pop() error {
	if w.err != nil {
		return w.err
	}
	if len(w.stack) == 0 {
		return w.stateErr("no open object or array")
	}
	if w.named {
		return w.stateErr("name %q has no value", w.name)
	}
	top := w.stack[len(w.stack)-1]
	t, close := ir.ArrayType, "]"
	if top.object {
		t, close = ir.ObjectType, "}"
	}
	if err := w.write(w.es.sep(nil, t, close)); err != nil {
		return err
	}
	w.stack = w.stack[:len(w.stack)-1]
	w.end()
	return nil
}

// Close pops every open object and array.
func (w *Writer) Close() error {
	for len(w.stack) > 0 {
		if err := w.Pop(); err != nil {
			return err
		}
	}
	return w.err
}

// Value writes v as a single value. See valueText for the accepted types.
func (w *Writer) Value(v any) error {
	key, d, err := w.begin()
	if err != nil {
		return err
	}
	text, t, err := w.valueText(v)
	if err != nil {
		w.err = &ir.PathErr{Path: w.prefix() + key, Err: err}
		return w.err
	}
	if t != ir.ObjectType && t != ir.ArrayType {
		text = w.es.paint(t, ValueColor, text)
	}
	d = append(d, text...)
	if err := w.write(d); err != nil {
		return err
	}
	w.end()
	return nil
}

// JSON writes raw as a value verbatim.
func (w *Writer) JSON(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		if w.err != nil {
			return w.err
		}
		return w.stateErr("empty raw value")
	}
	_, d, err := w.begin()
	if err != nil {
		return err
	}
	d = append(d, raw...)
	if err := w.write(d); err != nil {
		return err
	}
	w.end()
	return nil
}

func (w *Writer) ObjectNamed(name string) error {
	if err := w.Name(name); err != nil {
		return err
	}
	return w.Object()
}

func (w *Writer) ArrayNamed(name string) error {
	if err := w.Name(name); err != nil {
		return err
	}
	return w.Array()
}

// Set writes a member of the current object.
func (w *Writer) Set(name string, v any) error {
	if err := w.Name(name); err != nil {
		return err
	}
	return w.Value(v)
}

func (w *Writer) JSONNamed(name, raw string) error {
	if err := w.Name(name); err != nil {
		return err
	}
	return w.JSON(raw)
}

// valueText renders v. It accepts nil, bool, every integer and float
// kind, string, *big.Int, *big.Float, json.Number, *ir.Node and
// fmt.Stringer.
func (w *Writer) valueText(v any) (string, ir.Type, error) {
	switch x := v.(type) {
	case nil:
		return token.Null, ir.NullType, nil
	case *ir.Node:
		if x == nil {
			return token.Null, ir.NullType, nil
		}
		es := w.es
		es.pretty = false
		d, err := es.encode(nil, x, 0)
		return string(d), x.Type(), err
	case *big.Int:
		return w.bigInt(x), ir.LongType, nil
	case *big.Float:
		if x.IsInf() {
			f, _ := x.Float64()
			return w.float(f)
		}
		if x.IsInt() {
			i, _ := x.Int(nil)
			return w.bigInt(i), ir.LongType, nil
		}
		s := x.Text('g', -1)
		if !strings.ContainsAny(s, ".eE") {
			s += ".0"
		}
		if w.es.quoteLong && x.MantExp(nil) > 53 {
			return token.Quote(s), ir.DoubleType, nil
		}
		return s, ir.DoubleType, nil
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return w.long(i, string(x)), ir.LongType, nil
		}
		f, err := x.Float64()
		if err != nil {
			return "", ir.NullType, fmt.Errorf("%w: invalid number %q", ErrEncoding, string(x))
		}
		return w.float(f)
	case fmt.Stringer:
		return w.es.quoteValue(x.String()), ir.StringType, nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), ir.BoolType, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return w.long(rv.Int(), ""), ir.LongType, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return w.bigInt(new(big.Int).SetUint64(u)), ir.LongType, nil
		}
		return w.long(int64(u), ""), ir.LongType, nil
	case reflect.Float32, reflect.Float64:
		return w.float(rv.Float())
	case reflect.String:
		return w.es.quoteValue(rv.String()), ir.StringType, nil
	}
	return "", ir.NullType, fmt.Errorf("%w: unsupported value type %T", ErrEncoding, v)
}

func (w *Writer) long(v int64, text string) string {
	if text == "" {
		text = strconv.FormatInt(v, 10)
	}
	if w.es.quoteLong && (v > maxExactLong || v < -maxExactLong) {
		return token.Quote(text)
	}
	return text
}

func (w *Writer) bigInt(v *big.Int) string {
	if v.IsInt64() {
		return w.long(v.Int64(), "")
	}
	if w.es.quoteLong {
		return token.Quote(v.String())
	}
	return v.String()
}

// float writes integral values that fit in an int64 as integers.
func (w *Writer) float(f float64) (string, ir.Type, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		if w.es.format.IsJSON() {
			return "", ir.DoubleType, fmt.Errorf("%w: %v is not valid json", ErrEncoding, f)
		}
		return ir.FormatDouble(f), ir.DoubleType, nil
	}
	if f == math.Trunc(f) && f >= math.MinInt64 && f < math.MaxInt64 {
		return w.long(int64(f), ""), ir.LongType, nil
	}
	s := ir.FormatDouble(f)
	if w.es.quoteLong && math.Abs(f) > maxExactLong {
		return token.Quote(s), ir.DoubleType, nil
	}
	return s, ir.DoubleType, nil
}
