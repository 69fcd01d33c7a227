package convert

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/ljson/encode"
	"github.com/signadot/ljson/ir"
	"github.com/signadot/ljson/parse"
)

func TestToAny(t *testing.T) {
	node, err := parse.ParseString(`{a: 1, b: [x, 2.5, true, null], a: 9, c: {}}`)
	if err != nil {
		t.Fatal(err)
	}
	got, err := ToAny(node)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{
		"a": int64(1),
		"b": []any{"x", 2.5, true, nil},
		"c": map[string]any{},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestFromAny(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, "null"},
		{"map", map[string]any{"z": 1, "a": []any{"x", nil}}, "{a:[x,null],z:1}"},
		{"typed slice", []int{1, 2}, "[1,2]"},
		{"typed map", map[string]bool{"b": true, "a": false}, "{a:false,b:true}"},
		{"float", 0.25, "0.25"},
		{"uint", uint8(7), "7"},
		{"pointer", new(string), `""`},
		{"node", ir.FromString("n"), "n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := FromAny(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			if got := encode.MustString(node); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestFromAnyUnsupported(t *testing.T) {
	for _, v := range []any{make(chan int), struct{}{}, map[int]string{1: "x"}, []any{func() {}}} {
		if _, err := FromAny(v); !errors.Is(err, ErrUnsupported) {
			t.Errorf("%T: got %v, want ErrUnsupported", v, err)
		}
	}
}

func TestAnyRoundTrip(t *testing.T) {
	node, err := parse.ParseString(`{a: [1, 2.5, "s", false, null], b: {c: {d: []}}}`)
	if err != nil {
		t.Fatal(err)
	}
	v, err := ToAny(node)
	if err != nil {
		t.Fatal(err)
	}
	back, err := FromAny(v)
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(node, back) {
		t.Errorf("got %s, want %s", encode.MustString(back), encode.MustString(node))
	}
}

func TestFromYAML(t *testing.T) {
	in := "b: 2\na: 1\nlist: [x, 3, 1.5, true, null]\nnested:\n  k: v\n"
	node, err := FromYAML([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	want := "{b:2,a:1,list:[x,3,1.5,true,null],nested:{k:v}}"
	if got := encode.MustString(node); got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	node, err := parse.ParseString(`{zeta: 1, alpha: [x, 2.5, {k: v}], empty: [], flag: false, none: null}`)
	if err != nil {
		t.Fatal(err)
	}
	d, err := ToYAML(node)
	if err != nil {
		t.Fatal(err)
	}
	back, err := FromYAML(d)
	if err != nil {
		t.Fatalf("%v\n%s", err, d)
	}
	if !ir.Equal(node, back) {
		t.Errorf("yaml\n%s\nread back as %s", d, encode.MustString(back))
	}
}
