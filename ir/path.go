package ir

import (
	"fmt"
	"strconv"
	"strings"
)

// Trace returns the path from the root to n: ".field", ."dotted.field"
// and "[i]" segments. The root's trace is "".
func (n *Node) Trace() string {
	if n.parent == nil {
		return ""
	}
	prefix := n.parent.Trace()
	if n.parent.typ == ObjectType {
		return prefix + FieldSegment(n.name)
	}
	i := 0
	for c := n.prev; c != nil; c = c.prev {
		i++
	}
	return prefix + IndexSegment(i)
}

// FieldSegment is the trace segment of an object member.
func FieldSegment(name string) string { return "." + pathField(name) }

// IndexSegment is the trace segment of an array item.
func IndexSegment(i int) string { return "[" + strconv.Itoa(i) + "]" }

func pathField(f string) string {
	if f != "" && strings.IndexAny(f, "\".[]*\\ \t\r\n") == -1 {
		return f
	}
	var b strings.Builder
	b.Grow(len(f) + 2)
	b.WriteByte('"')
	for i := 0; i < len(f); i++ {
		if f[i] == '"' || f[i] == '\\' {
			b.WriteByte('\\')
		}
		b.WriteByte(f[i])
	}
	b.WriteByte('"')
	return b.String()
}

// Path is a parsed trace. Each segment selects a field, an index, every
// index ("[*]") or every descendant ("..").
type Path struct {
	IndexAll bool
	Index    *int
	Field    *string
	Subtree  bool
	Next     *Path
}

func (p *Path) String() string {
	var b strings.Builder
	for x := p; x != nil; x = x.Next {
		switch {
		case x.Subtree:
			b.WriteString("..")
		case x.IndexAll:
			b.WriteString("[*]")
		case x.Field != nil:
			b.WriteString("." + pathField(*x.Field))
		case x.Index != nil:
			fmt.Fprintf(&b, "[%d]", *x.Index)
		}
	}
	return b.String()
}

// ParsePath parses a trace. An optional leading '$' names the root.
func ParsePath(p string) (*Path, error) {
	p = strings.TrimPrefix(p, "$")
	root := &Path{}
	if p == "" {
		return root, nil
	}
	if err := parseFrag(p, root); err != nil {
		return nil, fmt.Errorf("path %q: %w", p, err)
	}
	return root, nil
}

func parseFrag(frag string, cur *Path) error {
	for {
		var rest string
		switch frag[0] {
		case '.':
			if len(frag) > 1 && frag[1] == '.' {
				cur.Subtree = true
				rest = frag[2:]
				if rest != "" && rest[0] != '.' && rest[0] != '[' {
					rest = "." + rest
				}
				break
			}
			field, r, err := parseField(frag[1:])
			if err != nil {
				return err
			}
			cur.Field = &field
			rest = r
		case '[':
			i := strings.IndexByte(frag, ']')
			if i == -1 {
				return fmt.Errorf("expected '[' <index> ']'")
			}
			index, all, err := parseIndex(frag[1:i])
			if err != nil {
				return err
			}
			cur.IndexAll = all
			if !all {
				cur.Index = &index
			}
			rest = frag[i+1:]
		default:
			return fmt.Errorf("expected '.' or '[' at %q", frag)
		}
		if rest == "" {
			return nil
		}
		next := &Path{}
		cur.Next = next
		cur, frag = next, rest
	}
}

func parseIndex(is string) (index int, all bool, err error) {
	if is == "*" {
		return 0, true, nil
	}
	u, err := strconv.ParseUint(is, 10, 31)
	if err != nil {
		return 0, false, err
	}
	return int(u), false, nil
}

func parseField(frag string) (field, rest string, err error) {
	if frag == "" {
		return "", "", fmt.Errorf("expected field at end of string")
	}
	if frag[0] != '"' {
		i := strings.IndexAny(frag, ".[")
		if i == -1 {
			return frag, "", nil
		}
		return frag[:i], frag[i:], nil
	}
	escaped := false
	res := make([]byte, 0, len(frag))
	for i := 1; i < len(frag); i++ {
		c := frag[i]
		switch {
		case escaped:
			escaped = false
			res = append(res, c)
		case c == '\\':
			escaped = true
		case c == '"':
			return string(res), frag[i+1:], nil
		default:
			res = append(res, c)
		}
	}
	return "", "", fmt.Errorf("end of string scanning for '\"'")
}

// GetPath returns the node at path p relative to n, or nil if there is
// none. Fields match case-insensitively, like Get.
func (n *Node) GetPath(p string) (*Node, error) {
	path, err := ParsePath(p)
	if err != nil {
		return nil, err
	}
	res := n
	for x := path; x != nil && res != nil; x = x.Next {
		switch {
		case x.IndexAll, x.Subtree:
			return nil, fmt.Errorf("%w: %s in GetPath, use ListPath", ErrInvalidState, x)
		case x.Index != nil:
			if res.typ != ArrayType {
				return nil, pathErrf(res, ErrInvalidState, "expected array, got %s", res.typ)
			}
			res = res.Index(*x.Index)
		case x.Field != nil:
			if res.typ != ObjectType {
				return nil, pathErrf(res, ErrInvalidState, "expected object, got %s", res.typ)
			}
			res = res.Get(*x.Field)
		}
	}
	return res, nil
}

// ListPath appends to dst every node matched by p, which may contain
// "[*]" and "..".
func (n *Node) ListPath(dst []*Node, p string) ([]*Node, error) {
	path, err := ParsePath(p)
	if err != nil {
		return nil, err
	}
	return n.listPath(dst, path), nil
}

func (n *Node) listPath(dst []*Node, p *Path) []*Node {
	if p == nil || (p.Field == nil && p.Index == nil && !p.IndexAll && !p.Subtree) {
		if p != nil && p.Next != nil {
			return n.listPath(dst, p.Next)
		}
		return append(dst, n)
	}
	if p.Subtree {
		_ = n.Visit(func(c *Node, isPost bool) (bool, error) {
			if isPost {
				return false, nil
			}
			dst = c.listPath(dst, p.Next)
			return true, nil
		})
		return dst
	}
	switch {
	case p.Field != nil:
		if n.typ != ObjectType {
			return dst
		}
		for c := n.child; c != nil; c = c.next {
			if strings.EqualFold(c.name, *p.Field) {
				dst = c.listPath(dst, p.Next)
			}
		}
	case p.Index != nil:
		if n.typ != ArrayType {
			return dst
		}
		if c := n.Index(*p.Index); c != nil {
			dst = c.listPath(dst, p.Next)
		}
	case p.IndexAll:
		if n.typ == ArrayType || n.typ == ObjectType {
			for c := n.child; c != nil; c = c.next {
				dst = c.listPath(dst, p.Next)
			}
		}
	}
	return dst
}
