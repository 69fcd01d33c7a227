// Package libdiff computes line diffs of text.
package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	Equal Op = iota
	Insert
	Delete
)

func (op Op) Prefix() byte {
	switch op {
	case Insert:
		return '+'
	case Delete:
		return '-'
	}
	return ' '
}

// Line is one line of a diff, without its newline.
type Line struct {
	Op   Op
	Text string
}

// Hunk is a run of changes with surrounding context. Line numbers are
// 1-based.
type Hunk struct {
	FromLine, FromCount int
	ToLine, ToCount     int
	Lines               []Line
}

// Context is the number of unchanged lines kept around each change.
const Context = 3

// Edits returns every line of a and b marked as kept, inserted or deleted.
func Edits(a, b string) []Line {
	dmp := diffpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffMain(ca, cb, false)
	diffs = dmp.DiffCharsToLines(diffs, lines)
	var res []Line
	for _, d := range diffs {
		op := Equal
		switch d.Type {
		case diffpatch.DiffInsert:
			op = Insert
		case diffpatch.DiffDelete:
			op = Delete
		}
		for _, l := range splitLines(d.Text) {
			res = append(res, Line{Op: op, Text: l})
		}
	}
	return res
}

func splitLines(text string) []string {
	res := strings.SplitAfter(text, "\n")
	if res[len(res)-1] == "" {
		res = res[:len(res)-1]
	}
	for i := range res {
		res[i] = strings.TrimSuffix(res[i], "\n")
	}
	return res
}

// Lines groups the edits from a to b into hunks. It returns nil when a and
// b are equal.
func Lines(a, b string) []Hunk {
	es := Edits(a, b)
	from := make([]int, len(es)+1)
	to := make([]int, len(es)+1)
	for i, e := range es {
		from[i+1], to[i+1] = from[i], to[i]
		if e.Op != Insert {
			from[i+1]++
		}
		if e.Op != Delete {
			to[i+1]++
		}
	}
	var res []Hunk
	k := 0
	for k < len(es) {
		if es[k].Op == Equal {
			k++
			continue
		}
		start := max(0, k-Context)
		end := k
		for end < len(es) {
			if es[end].Op != Equal {
				end++
				continue
			}
			r := end
			for r < len(es) && es[r].Op == Equal {
				r++
			}
			if r == len(es) || r-end > 2*Context {
				break
			}
			end = r
		}
		stop := min(len(es), end+Context)
		res = append(res, Hunk{
			FromLine:  from[start] + 1,
			FromCount: from[stop] - from[start],
			ToLine:    to[start] + 1,
			ToCount:   to[stop] - to[start],
			Lines:     es[start:stop],
		})
		k = stop
	}
	return res
}
