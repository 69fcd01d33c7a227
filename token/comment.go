package token

import "bytes"

// skipSpace returns the offset of the first byte at or after i that is
// neither whitespace nor inside a comment.
func skipSpace(d []byte, i int) (int, error) {
	for i < len(d) {
		switch d[i] {
		case ' ', '\t', '\r', '\n':
			i++
		case '/':
			if i+1 == len(d) {
				return i, nil
			}
			switch d[i+1] {
			case '/':
				j := bytes.IndexByte(d[i+2:], '\n')
				if j == -1 {
					return len(d), nil
				}
				i += 2 + j + 1
			case '*':
				j := bytes.Index(d[i+2:], []byte("*/"))
				if j == -1 {
					return i, errAt(d, i, ErrMalformedInput, "unterminated comment")
				}
				i += 2 + j + 2
			default:
				return i, nil
			}
		default:
			return i, nil
		}
	}
	return i, nil
}

func isCommentStart(d []byte, i int) bool {
	return d[i] == '/' && i+1 < len(d) && (d[i+1] == '/' || d[i+1] == '*')
}
