package token

import (
	"errors"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

var (
	errBadEscape  = errors.New("illegal escaped character")
	errBadUnicode = errors.New("bad \\u escape")
)

// Unescape resolves backslash escapes: \" \\ \/ \b \f \n \r \t and
// \uXXXX. UTF-16 surrogate pairs are combined and lone surrogates become
// U+FFFD.
func Unescape(s string) (string, error) {
	i := strings.IndexByte(s, '\\')
	if i == -1 {
		return s, nil
	}
	b := &strings.Builder{}
	b.Grow(len(s))
	b.WriteString(s[:i])
	for i < len(s) {
		c := s[i]
		if c != '\\' {
			b.WriteByte(c)
			i++
			continue
		}
		i++
		if i == len(s) {
			return "", errBadEscape
		}
		c = s[i]
		i++
		switch c {
		case '"', '\\', '/':
			b.WriteByte(c)
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case 'u':
			r, ok := hex4(s[i:])
			if !ok {
				return "", errBadUnicode
			}
			i += 4
			if utf16.IsSurrogate(r) {
				if len(s) >= i+6 && s[i] == '\\' && s[i+1] == 'u' {
					if r2, ok := hex4(s[i+2:]); ok {
						if dec := utf16.DecodeRune(r, r2); dec != utf8.RuneError {
							b.WriteRune(dec)
							i += 6
							continue
						}
					}
				}
				r = utf8.RuneError
			}
			b.WriteRune(r)
		default:
			return "", errBadEscape
		}
	}
	return b.String(), nil
}

func hex4(s string) (rune, bool) {
	if len(s) < 4 {
		return 0, false
	}
	var r rune
	for i := 0; i < 4; i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			c -= '0'
		case c >= 'a' && c <= 'f':
			c -= 'a' - 10
		case c >= 'A' && c <= 'F':
			c -= 'A' - 10
		default:
			return 0, false
		}
		r = r<<4 | rune(c)
	}
	return r, true
}

const hexDigits = "0123456789abcdef"

// Quote returns v in double quotes with quotes, backslashes and control
// characters escaped.
func Quote(v string) string {
	d := make([]byte, 1, len(v)+2)
	d[0] = '"'
	for i := 0; i < len(v); i++ {
		c := v[i]
		switch c {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			if c < 0x20 || c == 0x7f {
				d = append(d, '\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0xf])
			} else {
				d = append(d, c)
			}
		}
	}
	return string(append(d, '"'))
}

func hasControl(v string) bool {
	for i := 0; i < len(v); i++ {
		if v[i] < 0x20 || v[i] == 0x7f {
			return true
		}
	}
	return false
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

// bareCommon holds the checks shared by bare names and bare values: the
// token must survive trimming and contain nothing that ends a token early
// or starts a comment or an escape.
func bareCommon(v string) bool {
	if v == "" || isSpace(v[0]) || isSpace(v[len(v)-1]) {
		return false
	}
	switch v[0] {
	case '{', '}', '[', ']', ',', ':', '"', '/':
		return false
	}
	if hasControl(v) || strings.ContainsAny(v, "\\\r\n") {
		return false
	}
	return !strings.Contains(v, "//") && !strings.Contains(v, "/*")
}

// IsBareValue reports whether v can be written unquoted as a value and
// read back as the same string.
func IsBareValue(v string) bool {
	if !bareCommon(v) || strings.ContainsAny(v, ",}]") {
		return false
	}
	return Classify(v).Kind == KindString
}

// IsBareName reports whether v can be written unquoted as an object
// member name.
func IsBareName(v string) bool {
	return bareCommon(v) && !strings.ContainsAny(v, ":{}[],\"")
}

// IsIdentifier reports whether v matches [A-Za-z_$][A-Za-z0-9_$]*.
func IsIdentifier(v string) bool {
	if v == "" {
		return false
	}
	for i := 0; i < len(v); i++ {
		c := v[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '_', c == '$':
		case c >= '0' && c <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}
