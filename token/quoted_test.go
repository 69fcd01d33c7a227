package token

import (
	"errors"
	"testing"
)

func TestQuoted(t *testing.T) {
	for _, s := range []string{
		`"`,
		`\`,
		"\t\n\r\b\f",
		"\x00\x1f\x7f",
		"∞∞",
		`"""''`,
		`f[0]`,
		"",
	} {
		q := Quote(s)
		uq, err := Unescape(q[1 : len(q)-1])
		if err != nil {
			t.Errorf("error unescaping %q (from %q): %v", q, s, err)
			continue
		}
		if uq != s {
			t.Errorf("unescape(quote(%q)) = %q", s, uq)
		}
	}
}

func TestQuote(t *testing.T) {
	tests := []struct{ in, out string }{
		{"abc", `"abc"`},
		{`a"b`, `"a\"b"`},
		{"a\nb", `"a\nb"`},
		{"\x01", `"\u0001"`},
		{"∞", `"∞"`},
		{"a/b", `"a/b"`},
	}
	for _, tt := range tests {
		if got := Quote(tt.in); got != tt.out {
			t.Errorf("Quote(%q) = %s, want %s", tt.in, got, tt.out)
		}
	}
}

func TestUnescape(t *testing.T) {
	tests := []struct {
		in, out string
		err     error
	}{
		{in: `plain`, out: "plain"},
		{in: `\"\\\/\b\f\n\r\t`, out: "\"\\/\b\f\n\r\t"},
		{in: `∞`, out: "∞"},
		{in: `été`, out: "été"},
		{in: `😀`, out: "😀"},
		{in: `\ud83d`, out: "�"},
		{in: `\ude00x`, out: "�x"},
		{in: `\ud83dA`, out: "�A"},
		{in: `\x`, err: errBadEscape},
		{in: `abc\`, err: errBadEscape},
		{in: `\u12`, err: errBadUnicode},
		{in: `\u12g4`, err: errBadUnicode},
	}
	for _, tt := range tests {
		got, err := Unescape(tt.in)
		if tt.err != nil {
			if !errors.Is(err, tt.err) {
				t.Errorf("Unescape(%q): got error %v, want %v", tt.in, err, tt.err)
			}
			continue
		}
		if err != nil {
			t.Errorf("Unescape(%q): %v", tt.in, err)
			continue
		}
		if got != tt.out {
			t.Errorf("Unescape(%q) = %q, want %q", tt.in, got, tt.out)
		}
	}
}

func TestBare(t *testing.T) {
	tests := []struct {
		in          string
		name, value bool
	}{
		{"abc", true, true},
		{"hello world", true, true},
		{"true", true, false},
		{"null", true, false},
		{"123", true, false},
		{"-1.5e3", true, false},
		{"1.2.3", true, true},
		{"1e999", true, true},
		{"99999999999999999999", true, true},
		{"", false, false},
		{" a", false, false},
		{"a ", false, false},
		{"a,b", false, false},
		{"a:b", false, true},
		{"a}b", false, false},
		{"{a", false, false},
		{"/a", false, false},
		{"a/b", true, true},
		{"a//b", false, false},
		{"a/*b", false, false},
		{`a\b`, false, false},
		{"a\nb", false, false},
		{`"a`, false, false},
		{`a"b`, false, true},
		{"é", true, true},
	}
	for _, tt := range tests {
		if got := IsBareName(tt.in); got != tt.name {
			t.Errorf("IsBareName(%q) = %v, want %v", tt.in, got, tt.name)
		}
		if got := IsBareValue(tt.in); got != tt.value {
			t.Errorf("IsBareValue(%q) = %v, want %v", tt.in, got, tt.value)
		}
	}
}

func TestIsIdentifier(t *testing.T) {
	for s, want := range map[string]bool{
		"a": true, "_x": true, "$": true, "a1": true, "A_b$2": true,
		"": false, "1a": false, "a-b": false, "a b": false, "é": false,
	} {
		if got := IsIdentifier(s); got != want {
			t.Errorf("IsIdentifier(%q) = %v, want %v", s, got, want)
		}
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		in   string
		want Literal
	}{
		{"true", Literal{Kind: KindBool, Bool: true}},
		{"false", Literal{Kind: KindBool}},
		{"null", Literal{Kind: KindNull}},
		{"True", Literal{}},
		{"42", Literal{Kind: KindLong, Long: 42}},
		{"-7", Literal{Kind: KindLong, Long: -7}},
		{"+7", Literal{Kind: KindLong, Long: 7}},
		{"42.0", Literal{Kind: KindDouble, Double: 42}},
		{"1e3", Literal{Kind: KindDouble, Double: 1000}},
		{"-2.5E-1", Literal{Kind: KindDouble, Double: -0.25}},
		{".5", Literal{Kind: KindDouble, Double: 0.5}},
		{"9223372036854775807", Literal{Kind: KindLong, Long: 9223372036854775807}},
		{"9223372036854775808", Literal{}},
		{"1e400", Literal{}},
		{"1-2", Literal{}},
		{"-", Literal{}},
		{"e", Literal{}},
		{"12abc", Literal{}},
		{"0x10", Literal{}},
	}
	for _, tt := range tests {
		if got := Classify(tt.in); got != tt.want {
			t.Errorf("Classify(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}
