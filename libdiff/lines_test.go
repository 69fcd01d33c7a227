package libdiff

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func numbered(n int, replace map[int]string) string {
	var b strings.Builder
	for i := 1; i <= n; i++ {
		if s, ok := replace[i]; ok {
			b.WriteString(s + "\n")
			continue
		}
		fmt.Fprintf(&b, "%d\n", i)
	}
	return b.String()
}

func TestEdits(t *testing.T) {
	got := Edits("a\nb\nc\n", "a\nB\nc\n")
	want := []Line{{Equal, "a"}, {Delete, "b"}, {Insert, "B"}, {Equal, "c"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestLines(t *testing.T) {
	if h := Lines("same\n", "same\n"); h != nil {
		t.Errorf("equal texts gave %d hunks", len(h))
	}
	hunks := Lines(numbered(10, nil), numbered(10, map[int]string{1: "one", 10: "ten"}))
	if len(hunks) != 2 {
		t.Fatalf("got %d hunks, want 2", len(hunks))
	}
	type span struct{ From, FromN, To, ToN int }
	var got []span
	for _, h := range hunks {
		got = append(got, span{h.FromLine, h.FromCount, h.ToLine, h.ToCount})
	}
	want := []span{{1, 4, 1, 4}, {7, 4, 7, 4}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	merged := Lines(numbered(10, nil), numbered(10, map[int]string{2: "two", 6: "six"}))
	if len(merged) != 1 {
		t.Errorf("nearby changes gave %d hunks, want 1", len(merged))
	}
}

func TestUnified(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want string
	}{
		{"equal", "x\n", "x\n", ""},
		{
			"replace",
			"a\nb\nc\n", "a\nB\nc\n",
			"--- old\n+++ new\n@@ -1,3 +1,3 @@\n a\n-b\n+B\n c\n",
		},
		{
			"from empty",
			"", "x\n",
			"--- old\n+++ new\n@@ -0,0 +1 @@\n+x\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Unified("old", "new", tt.a, tt.b); got != tt.want {
				t.Errorf("got:\n%s\nwant:\n%s", got, tt.want)
			}
		})
	}
}
