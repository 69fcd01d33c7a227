package token

import "bytes"

const (
	contextBefore = 32
	contextAfter  = 64
	contextMark   = "*ERROR*"
)

// LineCol returns the 1-based line and byte column of offset off in d.
func LineCol(d []byte, off int) (int, int) {
	off = min(max(off, 0), len(d))
	line := 1 + bytes.Count(d[:off], []byte{'\n'})
	lineStart := bytes.LastIndexByte(d[:off], '\n') + 1
	return line, off - lineStart + 1
}

// Context returns up to 32 bytes before off and 64 bytes after it, with
// the offset marked by "*ERROR*".
func Context(d []byte, off int) string {
	off = min(max(off, 0), len(d))
	start := max(0, off-contextBefore)
	end := min(len(d), off+contextAfter)
	return string(d[start:off]) + contextMark + string(d[off:end])
}
