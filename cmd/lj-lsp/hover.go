package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/signadot/ljson/encode"
	"github.com/signadot/ljson/format"
	"github.com/signadot/ljson/ir"
	"github.com/signadot/ljson/token"

	"go.lsp.dev/protocol"
)

const hoverValueMax = 50

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.node == nil {
		return nil, nil
	}
	off := toOffset(doc.content, params.Position)
	node := nodeAt(doc.node, doc.positions, off)
	if node == nil {
		return nil, nil
	}
	sp := doc.positions[node]
	rng := toRange(doc.content, sp.Start, sp.End)
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: hoverText(node, uriFormat(doc.uri)),
		},
		Range: &rng,
	}, nil
}

// nodeAt returns the innermost node whose range holds off.
func nodeAt(root *ir.Node, positions map[*ir.Node]token.Span, off int) *ir.Node {
	var best *ir.Node
	for n := root; n != nil; {
		sp, ok := positions[n]
		if !ok || off < sp.Start || off >= sp.End {
			break
		}
		best = n
		next := (*ir.Node)(nil)
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			if csp, ok := positions[c]; ok && off >= csp.Start && off < csp.End {
				next = c
				break
			}
		}
		n = next
	}
	return best
}

func hoverText(node *ir.Node, f format.Format) string {
	parts := []string{fmt.Sprintf("**Type:** %s", node.Type())}
	if path := node.Trace(); path != "" {
		parts = append(parts, fmt.Sprintf("**Path:** `%s`", path))
	}
	switch {
	case node.IsObject():
		parts = append(parts, fmt.Sprintf("object with %d members", node.Len()))
	case node.IsArray():
		parts = append(parts, fmt.Sprintf("array with %d elements", node.Len()))
	default:
		v, err := encode.ToText(node, f)
		if err != nil {
			v = node.Raw()
		}
		if len(v) > hoverValueMax {
			v = v[:hoverValueMax] + "..."
		}
		parts = append(parts, fmt.Sprintf("**Value:** `%s`", v))
	}
	return strings.Join(parts, "\n\n")
}
