package encode

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/signadot/ljson/format"
	"github.com/signadot/ljson/ir"
	"github.com/signadot/ljson/token"
)

// DefaultFormat is the dialect used when no format is given.
const DefaultFormat = format.MinimalFormat

// maxExactLong is the largest magnitude a double holds exactly.
const maxExactLong = 1 << 53

type EncState struct {
	format    format.Format
	quoteLong bool

	pretty            bool
	singleLineColumns int
	wrapNumeric       bool

	Color func(ir.Type, ColorAttr, string) string
}

// PrettyPrintSettings configures PrettyPrint. Containers whose children
// are all values are written on one line while that line stays within
// SingleLineColumns. Arrays of numbers stay on one line regardless
// unless WrapNumericArrays is set.
type PrettyPrintSettings struct {
	Format            format.Format
	SingleLineColumns int
	WrapNumericArrays bool
}

func (s PrettyPrintSettings) PrettyPrint(node *ir.Node) (string, error) {
	es := &EncState{}
	EncodePretty(s)(es)
	d, err := es.encode(nil, node, 0)
	if err != nil {
		return "", err
	}
	return string(d), nil
}

// PrettyPrint writes node with tab indentation, wrapping any container
// whose single line rendering exceeds singleLineColumns.
func PrettyPrint(node *ir.Node, f format.Format, singleLineColumns int) (string, error) {
	return PrettyPrintSettings{
		Format:            f,
		SingleLineColumns: singleLineColumns,
		WrapNumericArrays: true,
	}.PrettyPrint(node)
}

// ToText writes node on a single line without optional spaces.
func ToText(node *ir.Node, f format.Format) (string, error) {
	es := &EncState{format: f}
	d, err := es.encode(nil, node, 0)
	if err != nil {
		return "", err
	}
	return string(d), nil
}

// Encode writes node to w followed by a newline.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{format: DefaultFormat}
	for _, opt := range opts {
		opt(es)
	}
	d, err := es.encode(nil, node, 0)
	if err != nil {
		return err
	}
	d = append(d, '\n')
	_, err = w.Write(d)
	return err
}

func (es *EncState) paint(t ir.Type, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, a, s)
}

func (es *EncState) encode(d []byte, node *ir.Node, depth int) ([]byte, error) {
	if node == nil {
		return d, fmt.Errorf("%w: nil node", ErrEncoding)
	}
	if node.IsValue() {
		s, err := es.scalar(node)
		if err != nil {
			return d, err
		}
		return append(d, es.paint(node.Type(), ValueColor, s)...), nil
	}
	if node.IsEmpty() {
		return es.sep(d, node.Type(), openClose(node)), nil
	}
	if es.pretty {
		return es.prettyContainer(d, node, depth)
	}
	return es.compactContainer(d, node)
}

func openClose(node *ir.Node) string {
	if node.IsObject() {
		return "{}"
	}
	return "[]"
}

func (es *EncState) sep(d []byte, t ir.Type, s string) []byte {
	return append(d, es.paint(t, SepColor, s)...)
}

func (es *EncState) field(d []byte, name string, sep string) []byte {
	d = append(d, es.paint(ir.ObjectType, FieldColor, es.quoteName(name))...)
	return es.sep(d, ir.ObjectType, sep)
}

func (es *EncState) compactContainer(d []byte, node *ir.Node) ([]byte, error) {
	open, close := "[", "]"
	if node.IsObject() {
		open, close = "{", "}"
	}
	t := node.Type()
	d = es.sep(d, t, open)
	var err error
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		if node.IsObject() {
			d = es.field(d, c.Name(), ":")
		}
		if d, err = es.encode(d, c, 0); err != nil {
			return d, err
		}
		if c.NextSibling() != nil {
			d = es.sep(d, t, ",")
		}
	}
	return es.sep(d, t, close), nil
}

func (es *EncState) prettyContainer(d []byte, node *ir.Node, depth int) ([]byte, error) {
	open, close := "[", "]"
	if node.IsObject() {
		open, close = "{", "}"
	}
	t := node.Type()
	newLines, err := es.needsNewLines(node)
	if err != nil {
		return d, err
	}
	d = es.sep(d, t, open)
	if newLines {
		d = append(d, '\n')
	} else {
		d = append(d, ' ')
	}
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		if newLines {
			d = indent(d, depth+1)
		}
		if node.IsObject() {
			d = es.field(d, c.Name(), ":")
			d = append(d, ' ')
		}
		if d, err = es.encode(d, c, depth+1); err != nil {
			return d, err
		}
		if c.NextSibling() != nil && (!newLines || !es.format.IsMinimal()) {
			d = es.sep(d, t, ",")
		}
		if newLines {
			d = append(d, '\n')
		} else {
			d = append(d, ' ')
		}
	}
	if newLines {
		d = indent(d, depth)
	}
	return es.sep(d, t, close), nil
}

func indent(d []byte, n int) []byte {
	for range n {
		d = append(d, '\t')
	}
	return d
}

// needsNewLines decides the layout of a container: one child per line
// unless every child is a value and the single line fits.
func (es *EncState) needsNewLines(node *ir.Node) (bool, error) {
	numeric := true
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		if c.IsContainer() {
			return true, nil
		}
		numeric = numeric && c.IsNumber()
	}
	if node.IsArray() && numeric && !es.wrapNumeric {
		return false, nil
	}
	width := 2 // "{ "
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		if node.IsObject() {
			width += len(es.quoteName(c.Name())) + 2
		}
		s, err := es.scalar(c)
		if err != nil {
			return false, err
		}
		width += len(s) + 1
		if c.NextSibling() != nil {
			width++
		}
		if width > es.singleLineColumns {
			return true, nil
		}
	}
	return false, nil
}

func (es *EncState) quoteName(name string) string {
	switch es.format {
	case format.JSONFormat:
		return token.Quote(name)
	case format.JavaScriptFormat:
		if token.IsIdentifier(name) {
			return name
		}
		return token.Quote(name)
	default:
		if token.IsBareName(name) {
			return name
		}
		return token.Quote(name)
	}
}

func (es *EncState) quoteValue(s string) string {
	if es.format.IsMinimal() && token.IsBareValue(s) {
		return s
	}
	return token.Quote(s)
}

// scalar returns the uncoloured text of a value node.
func (es *EncState) scalar(node *ir.Node) (string, error) {
	switch node.Type() {
	case ir.NullType:
		return token.Null, nil
	case ir.BoolType:
		v, _ := node.AsBool()
		return strconv.FormatBool(v), nil
	case ir.StringType:
		s, _ := node.AsString()
		return es.quoteValue(*s), nil
	case ir.LongType:
		v, _ := node.AsLong()
		s := strconv.FormatInt(v, 10)
		if raw := node.Raw(); raw != "" && es.format.IsMinimal() {
			s = raw
		}
		if es.quoteLong && (v > maxExactLong || v < -maxExactLong) {
			return token.Quote(s), nil
		}
		return s, nil
	case ir.DoubleType:
		return es.double(node)
	}
	return "", fmt.Errorf("%w: %s is not a value", ErrEncoding, node.Type())
}

func (es *EncState) double(node *ir.Node) (string, error) {
	f, _ := node.AsDouble()
	if math.IsNaN(f) || math.IsInf(f, 0) {
		if es.format.IsJSON() {
			return "", &ir.PathErr{Path: node.Trace(), Err: fmt.Errorf("%w: %v is not valid json", ErrEncoding, f)}
		}
		return ir.FormatDouble(f), nil
	}
	s := ir.FormatDouble(f)
	if raw := node.Raw(); raw != "" && es.format.IsMinimal() {
		s = raw
	}
	if es.quoteLong && math.Abs(f) > maxExactLong {
		return token.Quote(s), nil
	}
	return s, nil
}
