package libdiff

import (
	"fmt"
	"strings"
)

// Unified renders the diff from a to b in unified format, or "" when they
// are equal.
func Unified(nameA, nameB, a, b string) string {
	hunks := Lines(a, b)
	if len(hunks) == 0 {
		return ""
	}
	var buf strings.Builder
	fmt.Fprintf(&buf, "--- %s\n+++ %s\n", nameA, nameB)
	for i := range hunks {
		h := &hunks[i]
		fmt.Fprintf(&buf, "@@ -%s +%s @@\n", span(h.FromLine, h.FromCount), span(h.ToLine, h.ToCount))
		for _, l := range h.Lines {
			buf.WriteByte(l.Op.Prefix())
			buf.WriteString(l.Text)
			buf.WriteByte('\n')
		}
	}
	return buf.String()
}

func span(line, count int) string {
	switch count {
	case 0:
		return fmt.Sprintf("%d,0", line-1)
	case 1:
		return fmt.Sprint(line)
	}
	return fmt.Sprintf("%d,%d", line, count)
}
