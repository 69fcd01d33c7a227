package query

import (
	"testing"

	"github.com/signadot/ljson/encode"
	"github.com/signadot/ljson/format"
	"github.com/signadot/ljson/parse"
)

type matchTest struct {
	in    string
	match string
	res   bool
}

var matchTests = []matchTest{
	{in: `1`, match: `1`, res: true},
	{in: `0`, match: `1`, res: false},
	{in: `1`, match: `1.0`, res: false},
	{in: `[1]`, match: `[1]`, res: true},
	{in: `[]`, match: `[]`, res: true},
	{in: `[1]`, match: `[2]`, res: false},
	{in: `[1]`, match: `[1, 2]`, res: false},
	{in: `[1]`, match: `hello`, res: false},
	{in: `{a: b, c: d}`, match: `{a: b}`, res: true},
	{in: `{a: b}`, match: `{a: b, c: d}`, res: false},
	{in: `{A: b}`, match: `{a: b}`, res: true},
	{in: `{a: b}`, match: `null`, res: true},
	{in: `{a: [1, {x: true, y: 2}]}`, match: `{a: [null, {x: true}]}`, res: true},
	{in: `{a: [1, {x: true, y: 2}]}`, match: `{a: [null, {x: false}]}`, res: false},
	{in: `{a: "1"}`, match: `{a: 1}`, res: false},
}

func TestMatch(t *testing.T) {
	for i, tt := range matchTests {
		doc, err := parse.ParseString(tt.in)
		if err != nil {
			t.Fatalf("test %d: %v", i, err)
		}
		pattern, err := parse.ParseString(tt.match)
		if err != nil {
			t.Fatalf("test %d: could not parse match: %v", i, err)
		}
		if got := Match(doc, pattern); got != tt.res {
			t.Errorf("test %d: match %s against %s: got %v", i, tt.in, tt.match, got)
		}
	}
}

func TestTrim(t *testing.T) {
	tests := []struct {
		in     string
		match  string
		result string
	}{
		{`{c: d, a: b, e: f}`, `{a: b, c: d}`, `{"c":"d","a":"b"}`},
		{`{a: {x: 1, y: 2}, b: 3, z: 4}`, `{a: {x: 1}, b: 3}`, `{"a":{"x":1},"b":3}`},
		{`[{a: 1, b: 2}, {c: 3, d: 4}]`, `[{a: 1}, {c: 3}]`, `[{"a":1},{"c":3}]`},
		{`{a: b, c: null}`, `{a: null}`, `{"a":"b"}`},
		{`{a: 1, a: 2}`, `{a: null}`, `{"a":1}`},
		{`42`, `42`, `42`},
	}
	for i, tt := range tests {
		doc, err := parse.ParseString(tt.in)
		if err != nil {
			t.Fatal(err)
		}
		pattern, err := parse.ParseString(tt.match)
		if err != nil {
			t.Fatal(err)
		}
		got, err := encode.ToText(Trim(pattern, doc), format.JSONFormat)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.result {
			t.Errorf("test %d: got %s, want %s", i, got, tt.result)
		}
	}
}
