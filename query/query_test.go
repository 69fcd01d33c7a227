package query

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/ljson/encode"
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

func TestEval(t *testing.T) {
	doc := mustParse(t, `{a: 1, b: [x, y], c: {"d.e": true}}`)
	tests := []struct {
		expr string
		want string
	}{
		{`doc.a + n`, "3"},
		{`len(doc.b)`, "2"},
		{`doc.b[0] + "-" + name`, "x-demo"},
		{`get(".b[1]")`, "y"},
		{`get(".c.\"d.e\"")`, "true"},
		{`get(".missing") == nil`, "true"},
		{`trace()`, ""},
		{`list(".b[*]")`, "[x y]"},
		{`"b" in doc`, "true"},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := Eval(doc, tt.expr, Env{"n": 2, "name": "demo"})
			if err != nil {
				t.Fatal(err)
			}
			if s := fmt.Sprint(got); s != tt.want {
				t.Errorf("got %s, want %s", s, tt.want)
			}
		})
	}
}

func TestEvalErrors(t *testing.T) {
	doc := mustParse(t, `{a: 1}`)
	for _, e := range []string{`doc.a +`, `get(".a[")`, `1 / "x"`} {
		if _, err := Eval(doc, e, nil); !errors.Is(err, ErrQuery) && !errors.Is(err, ir.ErrInvalidState) {
			t.Errorf("%s: got %v", e, err)
		}
	}
}

func TestSelect(t *testing.T) {
	doc := mustParse(t, `[{name: a, n: 1}, {name: b, n: 5}, {name: c, n: 10}]`)
	tests := []struct {
		pred string
		want []string
	}{
		{`it.n > 2`, []string{"[1]", "[2]"}},
		{`it.name == "a"`, []string{"[0]"}},
		{`trace() == "[2]"`, []string{"[2]"}},
		{`it.n > len(doc)`, []string{"[1]", "[2]"}},
		{`false`, nil},
	}
	for _, tt := range tests {
		t.Run(tt.pred, func(t *testing.T) {
			got, err := Select(doc, tt.pred)
			if err != nil {
				t.Fatal(err)
			}
			var traces []string
			for _, n := range got {
				traces = append(traces, n.Trace())
			}
			if diff := cmp.Diff(tt.want, traces); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestSelectObject(t *testing.T) {
	doc := mustParse(t, `{x: 1, y: "two", z: 3}`)
	got, err := Select(doc, `trace() != ".y"`)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].Name() != "x" || got[1].Name() != "z" {
		t.Errorf("got %d nodes", len(got))
	}
}

func TestSelectErrors(t *testing.T) {
	_, err := Select(mustParse(t, `[1, 2]`), `it + 1`)
	var pe *ir.PathErr
	if !errors.Is(err, ErrQuery) || !errors.As(err, &pe) || pe.Path != "[0]" {
		t.Errorf("got %v, want a query error at [0]", err)
	}
	if _, err := Select(mustParse(t, `7`), `true`); !errors.Is(err, ErrQuery) {
		t.Errorf("got %v", err)
	}
}

func TestValue(t *testing.T) {
	got, err := Eval(mustParse(t, `{a: [3, 1, 2]}`), `map(doc.a, # * 2)`, nil)
	if err != nil {
		t.Fatal(err)
	}
	node, err := Value(got)
	if err != nil {
		t.Fatal(err)
	}
	if s := encode.MustString(node); s != "[6,2,4]" {
		t.Errorf("got %s", s)
	}
}
