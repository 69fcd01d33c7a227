package batch

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/signadot/ljson/format"
	"github.com/signadot/ljson/token"
)

func TestFormat(t *testing.T) {
	inputs := []Input{
		{Name: "a.json", Data: []byte(`{"b":1,"a":[1,2]}`)},
		{Name: "bad.hjson", Data: []byte(`[1, 2`)},
		{Name: "ok.hjson", Data: []byte("{ a: 1 }\n")},
		{Name: "empty.hjson", Data: []byte("// nothing\n")},
		{Name: "c.json5", Data: []byte(`{"k": "v"}`)},
	}
	res, err := Format(context.Background(), inputs, Options{Workers: 2, BySuffix: true, SingleLineColumns: 80})
	if err != nil {
		t.Fatal(err)
	}
	if len(res) != len(inputs) {
		t.Fatalf("got %d results", len(res))
	}
	for i := range res {
		if res[i].Name != inputs[i].Name {
			t.Errorf("result %d is %s, want %s", i, res[i].Name, inputs[i].Name)
		}
	}
	if got, want := string(res[0].Output), "{\n\t\"b\": 1,\n\t\"a\": [ 1, 2 ]\n}\n"; got != want || !res[0].Changed {
		t.Errorf("a.json: %q changed=%v", got, res[0].Changed)
	}
	if !errors.Is(res[1].Err, token.ErrUnmatchedBracket) {
		t.Errorf("bad.hjson: got %v", res[1].Err)
	}
	if res[2].Err != nil || res[2].Changed {
		t.Errorf("ok.hjson: changed=%v err=%v", res[2].Changed, res[2].Err)
	}
	if res[3].Err != nil || res[3].Changed || string(res[3].Output) != "// nothing\n" {
		t.Errorf("empty.hjson: %+v", res[3])
	}
	if got := string(res[4].Output); got != "{ k: \"v\" }\n" {
		t.Errorf("c.json5: %q", got)
	}
}

func TestFormatOrder(t *testing.T) {
	var inputs []Input
	for i := range 200 {
		inputs = append(inputs, Input{Name: fmt.Sprint(i), Data: []byte(fmt.Sprintf("[%d]", i))})
	}
	res, err := Format(context.Background(), inputs, Options{Workers: 8, Format: format.JSONFormat, SingleLineColumns: 80})
	if err != nil {
		t.Fatal(err)
	}
	for i := range res {
		if want := fmt.Sprintf("[ %d ]\n", i); string(res[i].Output) != want {
			t.Fatalf("result %d: %q, want %q", i, res[i].Output, want)
		}
	}
}

func TestFormatCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := Format(ctx, []Input{{Name: "x", Data: []byte("1")}}, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if !errors.Is(res[0].Err, context.Canceled) {
		t.Errorf("got %v, want context.Canceled", res[0].Err)
	}
}
