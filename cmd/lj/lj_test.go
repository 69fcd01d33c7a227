package main

import (
	"errors"
	"testing"

	"github.com/signadot/ljson/format"
	"github.com/signadot/ljson/parse"

	"github.com/google/go-cmp/cmp"
	"github.com/scott-cotton/cli"
)

func TestEnvFunc(t *testing.T) {
	env := map[string]any{}
	for _, a := range []string{"n=true", "a.b=x", "a.c=[p, q]", "s='7'"} {
		if err := envFunc(env, a); err != nil {
			t.Fatalf("%s: %v", a, err)
		}
	}
	want := map[string]any{
		"n": true,
		"a": map[string]any{"b": "x", "c": []any{"p", "q"}},
		"s": "7",
	}
	if diff := cmp.Diff(want, env); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if err := envFunc(env, "n.x=1"); err == nil {
		t.Errorf("set below a scalar")
	}
	if err := envFunc(env, "novalue"); !errors.Is(err, cli.ErrUsage) {
		t.Errorf("got %v, want ErrUsage", err)
	}
}

func TestCheckMessage(t *testing.T) {
	_, err := parse.ParseString("{\n\ta: [1, 2}\n}")
	if got, want := checkMessage("x.json", err), "x.json:2:10: malformed input: mismatched close: '}' closes '['"; got != want {
		t.Errorf("got  %s\nwant %s", got, want)
	}
}

func TestOutFormat(t *testing.T) {
	js := format.JavaScriptFormat
	tests := []struct {
		cfg  MainConfig
		name string
		want format.Format
	}{
		{MainConfig{}, "a.json", format.JSONFormat},
		{MainConfig{}, "a.json5", format.JavaScriptFormat},
		{MainConfig{}, "-", format.MinimalFormat},
		{MainConfig{J: true}, "a.hjson", format.JSONFormat},
		{MainConfig{OutFormat: &js}, "a.json", format.JavaScriptFormat},
	}
	for _, tt := range tests {
		if got := tt.cfg.outFormat(tt.name); got != tt.want {
			t.Errorf("%s: got %s, want %s", tt.name, got, tt.want)
		}
	}
}

func TestIsYAML(t *testing.T) {
	for name, want := range map[string]bool{"a.yaml": true, "b.yml": true, "c.json": false, "": false} {
		if got := isYAML(name); got != want {
			t.Errorf("%q: got %v", name, got)
		}
	}
}
