package encode_test

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/signadot/ljson/encode"
	"github.com/signadot/ljson/format"
	"github.com/signadot/ljson/ir"
	"github.com/signadot/ljson/parse"
)

func mustParse(t *testing.T, s string) *ir.Node {
	t.Helper()
	node, err := parse.ParseString(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return node
}

const sample = `{a: 1, b: [x, "y z", 2.50], c: null, "d e": true, n: +5}`

func TestToText(t *testing.T) {
	tests := []struct {
		format format.Format
		want   string
	}{
		{format.MinimalFormat, `{a:1,b:[x,y z,2.50],c:null,d e:true,n:+5}`},
		{format.JSONFormat, `{"a":1,"b":["x","y z",2.5],"c":null,"d e":true,"n":5}`},
		{format.JavaScriptFormat, `{a:1,b:["x","y z",2.5],c:null,"d e":true,n:5}`},
	}
	node := mustParse(t, sample)
	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			got, err := encode.ToText(node, tt.format)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("got  %s\nwant %s", got, tt.want)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		sample,
		`[]`,
		`{}`,
		`"just a string"`,
		`[true, "true", 12, "12", 1.5e3, -0.25, "", " pad ", "a,b", "a//b", "x:y"]`,
		`{"a:b": 1, "with \"quote\"": [null, "null"], "": {"{": "}"}}`,
		"{text: \"line1\\nline2\\ttab\"}",
		`[[[[]]], {a: {b: {c: [1, {d: 2}]}}}]`,
		`[99999999999999999999, 1e999, 9223372036854775807]`,
		`{unicode: "héllo ☺", ctrl: "\u0001"}`,
	}
	for _, in := range inputs {
		node := mustParse(t, in)
		for _, f := range format.AllFormats() {
			text, err := encode.ToText(node, f)
			if err != nil {
				t.Fatalf("%s %q: %v", f, in, err)
			}
			back, err := parse.ParseString(text)
			if err != nil {
				t.Fatalf("%s reparse %q: %v", f, text, err)
			}
			if !ir.Equal(node, back) {
				t.Errorf("%s: %q -> %q does not read back equal", f, in, text)
			}
			pretty, err := encode.PrettyPrint(node, f, 20)
			if err != nil {
				t.Fatal(err)
			}
			back, err = parse.ParseString(pretty)
			if err != nil {
				t.Fatalf("%s reparse pretty %q: %v", f, pretty, err)
			}
			if !ir.Equal(node, back) {
				t.Errorf("%s: pretty %q does not read back equal", f, pretty)
			}
		}
	}
}

func TestPrettyPrint(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		format format.Format
		cols   int
		want   string
	}{
		{"numbers wrap", `[1, 2, 3]`, format.MinimalFormat, 5, "[\n\t1\n\t2\n\t3\n]"},
		{"numbers wrap json", `[1, 2, 3]`, format.JSONFormat, 5, "[\n\t1,\n\t2,\n\t3\n]"},
		{"numbers flat", `[1, 2, 3]`, format.MinimalFormat, 80, "[ 1, 2, 3 ]"},
		{"flat object", `{a: 1, b: 2}`, format.MinimalFormat, 80, "{ a: 1, b: 2 }"},
		{"exact fit", `{a: 1, b: 2}`, format.MinimalFormat, 13, "{ a: 1, b: 2 }"},
		{"one short", `{a: 1, b: 2}`, format.MinimalFormat, 12, "{\n\ta: 1\n\tb: 2\n}"},
		{"empty", `{a: {}, b: []}`, format.MinimalFormat, 80, "{\n\ta: {}\n\tb: []\n}"},
		{"scalar", `hello`, format.JSONFormat, 80, `"hello"`},
		{
			"nested", `{a: 1, b: {c: x, d: [1, 2]}}`, format.MinimalFormat, 40,
			"{\n\ta: 1\n\tb: {\n\t\tc: x\n\t\td: [ 1, 2 ]\n\t}\n}",
		},
		{
			"nested json", `{a: 1, b: {c: x, d: [1, 2]}}`, format.JSONFormat, 40,
			"{\n\t\"a\": 1,\n\t\"b\": {\n\t\t\"c\": \"x\",\n\t\t\"d\": [ 1, 2 ]\n\t}\n}",
		},
		{
			"array of objects", `[{a: 1}, {b: 2}]`, format.JavaScriptFormat, 80,
			"[\n\t{ a: 1 },\n\t{ b: 2 }\n]",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := encode.PrettyPrint(mustParse(t, tt.in), tt.format, tt.cols)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("got:\n%s\nwant:\n%s", got, tt.want)
			}
		})
	}
}

func TestPrettyPrintNumericArrays(t *testing.T) {
	node := mustParse(t, `{xs: [1, 2, 3, 4, 5, 6], ys: [a, b, c, d, e, f]}`)
	s := encode.PrettyPrintSettings{Format: format.MinimalFormat, SingleLineColumns: 10}
	got, err := s.PrettyPrint(node)
	if err != nil {
		t.Fatal(err)
	}
	want := "{\n\txs: [ 1, 2, 3, 4, 5, 6 ]\n\tys: [\n\t\ta\n\t\tb\n\t\tc\n\t\td\n\t\te\n\t\tf\n\t]\n}"
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
	s.WrapNumericArrays = true
	got, err = s.PrettyPrint(node)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "xs: [\n\t\t1\n") {
		t.Errorf("numeric array not wrapped:\n%s", got)
	}
}

func TestPrettyPrintIdempotent(t *testing.T) {
	in := `// config
{
	name: demo, tags: [a, b, "c d"], limits: {cpu: 2, mem: 512.0}
	nested: [[1, 2], [3, 4], {deep: {deeper: [true, false, null]}}]
}`
	for _, f := range format.AllFormats() {
		once, err := encode.PrettyPrint(mustParse(t, in), f, 30)
		if err != nil {
			t.Fatal(err)
		}
		twice, err := encode.PrettyPrint(mustParse(t, once), f, 30)
		if err != nil {
			t.Fatal(err)
		}
		if once != twice {
			t.Errorf("%s not idempotent:\n%s\n---\n%s", f, once, twice)
		}
	}
}

func TestMinimalQuoting(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"plain", "plain"},
		{"two words", "two words"},
		{"true", `"true"`},
		{"null", `"null"`},
		{"12", `"12"`},
		{"-1.5", `"-1.5"`},
		{"", `""`},
		{" lead", `" lead"`},
		{"a,b", `"a,b"`},
		{"a]", `"a]"`},
		{"a//b", `"a//b"`},
		{"{x", `"{x"`},
		{"line\nbreak", `"line\nbreak"`},
		{"x:y", "x:y"},
		{"1s", "1s"},
	}
	for _, tt := range tests {
		got, err := encode.ToText(ir.FromString(tt.value), format.MinimalFormat)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("%q: got %s, want %s", tt.value, got, tt.want)
		}
	}
}

func TestNames(t *testing.T) {
	node := ir.FromKeyVals([]ir.KeyVal{
		{Key: "id", Val: ir.FromLong(1)},
		{Key: "$ok_1", Val: ir.FromLong(2)},
		{Key: "two words", Val: ir.FromLong(3)},
		{Key: "a:b", Val: ir.FromLong(4)},
		{Key: "1st", Val: ir.FromLong(5)},
	})
	tests := []struct {
		format format.Format
		want   string
	}{
		{format.MinimalFormat, `{id:1,$ok_1:2,two words:3,"a:b":4,1st:5}`},
		{format.JSONFormat, `{"id":1,"$ok_1":2,"two words":3,"a:b":4,"1st":5}`},
		{format.JavaScriptFormat, `{id:1,$ok_1:2,"two words":3,"a:b":4,"1st":5}`},
	}
	for _, tt := range tests {
		got, err := encode.ToText(node, tt.format)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("%s: got %s, want %s", tt.format, got, tt.want)
		}
	}
}

func TestDoubles(t *testing.T) {
	tests := []struct {
		node *ir.Node
		want string
	}{
		{ir.FromDouble(42), "42.0"},
		{ir.FromDouble(0.5), "0.5"},
		{ir.FromDouble(math.Inf(-1)), "-Infinity"},
		{ir.FromDoubleRaw(1.5, "1.50"), "1.50"},
		{ir.FromLongRaw(7, "+7"), "+7"},
	}
	for _, tt := range tests {
		got, err := encode.ToText(tt.node, format.MinimalFormat)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("got %s, want %s", got, tt.want)
		}
	}
	back := mustParse(t, encode.MustString(ir.FromDouble(42)))
	if !back.IsDouble() {
		t.Errorf("42.0 read back as %s", back.Type())
	}
}

func TestNaNInJSON(t *testing.T) {
	node := ir.FromSlice([]*ir.Node{ir.FromLong(1), ir.FromDouble(math.NaN())})
	_, err := encode.ToText(node, format.JSONFormat)
	if !errors.Is(err, encode.ErrEncoding) {
		t.Fatalf("got %v, want ErrEncoding", err)
	}
	var pe *ir.PathErr
	if !errors.As(err, &pe) || pe.Path != "[1]" {
		t.Errorf("got %v, want an error at [1]", err)
	}
	got, err := encode.ToText(node, format.MinimalFormat)
	if err != nil {
		t.Fatal(err)
	}
	if got != "[1,NaN]" {
		t.Errorf("got %s", got)
	}
}

func TestQuoteLongValues(t *testing.T) {
	node := ir.FromSlice([]*ir.Node{
		ir.FromLong(1 << 53),
		ir.FromLong(1<<53 + 1),
		ir.FromLong(-(1<<53 + 1)),
		ir.FromDouble(1e300),
	})
	var buf bytes.Buffer
	err := encode.Encode(node, &buf, encode.EncodeFormat(format.JSONFormat), encode.QuoteLongValues(true))
	if err != nil {
		t.Fatal(err)
	}
	want := `[9007199254740992,"9007199254740993","-9007199254740993","1e+300"]` + "\n"
	if got := buf.String(); got != want {
		t.Errorf("got %s want %s", got, want)
	}
}

func TestEncodeColors(t *testing.T) {
	mark := func(tag string) func(string, ...any) string {
		return func(s string, _ ...any) string { return "<" + tag + s + ">" }
	}
	colors := &encode.Colors{
		Default: func(s string, _ ...any) string { return s },
		Map: map[encode.Colorable]func(string, ...any) string{
			{Type: ir.ObjectType, Attr: encode.FieldColor}: mark("f:"),
			{Type: ir.LongType, Attr: encode.ValueColor}:   mark("v:"),
		},
	}
	node := mustParse(t, `{a: 1, b: x}`)
	got := encode.MustString(node, encode.EncodeColors(colors))
	if want := "{<f:a>:<v:1>,<f:b>:x}"; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
	if c := encode.NewColors(); c.Get(ir.StringType, encode.ValueColor) == nil {
		t.Errorf("no string colour")
	}
}

func TestFormatFromOpts(t *testing.T) {
	opts := []encode.EncodeOption{
		encode.EncodeFormat(format.JSONFormat),
		encode.EncodePretty(encode.PrettyPrintSettings{Format: format.JavaScriptFormat}),
	}
	if got := encode.FormatFromOpts(opts...); got != format.JavaScriptFormat {
		t.Errorf("got %s", got)
	}
}
