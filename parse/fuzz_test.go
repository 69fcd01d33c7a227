package parse

import (
	"testing"

	"github.com/signadot/ljson/encode"
	"github.com/signadot/ljson/format"
	"github.com/signadot/ljson/ir"
)

func FuzzParse(f *testing.F) {
	seeds := []string{
		// values
		`null`,
		`true`,
		`42`,
		`-1e10`,
		`3.14`,
		`""`,
		`"hello"`,
		`hello`,

		// containers
		`[]`,
		`[1, 2, 3,]`,
		`[a b c]`,
		`{}`,
		`{a: 1, "b": [x, y]}`,
		`{users: [{name: alice}, {name: bob}]}`,

		// strings
		`"with\nnewline"`,
		`"é😀"`,
		`[a\tb]`,

		// comments
		"// line\n[1]",
		`[1 /* block */ 2]`,

		// malformed
		`{a: [1}`,
		`[,]`,
		`/`,
	}
	for _, s := range seeds {
		f.Add([]byte(s))
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		node, err := Parse(data)
		if err != nil || node == nil {
			return
		}
		for _, dialect := range format.AllFormats() {
			text, err := encode.ToText(node, dialect)
			if err != nil {
				t.Fatalf("%s encode of %q: %v", dialect, data, err)
			}
			back, err := ParseString(text)
			if err != nil {
				t.Fatalf("%s output %q of %q does not parse: %v", dialect, text, data, err)
			}
			if !ir.Equal(node, back) {
				t.Fatalf("%s output %q of %q reads back different", dialect, text, data)
			}
		}
	})
}
