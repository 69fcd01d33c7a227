package main

import (
	"context"

	"github.com/signadot/ljson/encode"
	"github.com/signadot/ljson/ir"
	"github.com/signadot/ljson/token"

	"go.lsp.dev/protocol"
)

func (s *Server) DocumentSymbol(ctx context.Context, params *protocol.DocumentSymbolParams) ([]interface{}, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.node == nil {
		return nil, nil
	}
	syms := symbols(doc.content, doc.node, doc.positions)
	res := make([]interface{}, len(syms))
	for i := range syms {
		res[i] = syms[i]
	}
	return res, nil
}

// symbols outlines the members of containers below node.
func symbols(content string, node *ir.Node, positions map[*ir.Node]token.Span) []protocol.DocumentSymbol {
	var res []protocol.DocumentSymbol
	i := 0
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		sp := positions[c]
		name := c.Name()
		if !c.HasName() {
			name = ir.IndexSegment(i)
		}
		if name == "" {
			name = `""`
		}
		sym := protocol.DocumentSymbol{
			Name:           name,
			Kind:           symbolKind(c.Type()),
			Range:          toRange(content, sp.Start, sp.End),
			SelectionRange: toRange(content, sp.Start, sp.Start+len(name)),
		}
		if c.IsValue() {
			sym.Detail = encode.MustString(c)
		} else {
			sym.Children = symbols(content, c, positions)
		}
		if !c.HasName() {
			sym.SelectionRange = sym.Range
		}
		res = append(res, sym)
		i++
	}
	return res
}

func symbolKind(t ir.Type) protocol.SymbolKind {
	switch t {
	case ir.ObjectType:
		return protocol.SymbolKindObject
	case ir.ArrayType:
		return protocol.SymbolKindArray
	case ir.StringType:
		return protocol.SymbolKindString
	case ir.LongType, ir.DoubleType:
		return protocol.SymbolKindNumber
	case ir.BoolType:
		return protocol.SymbolKindBoolean
	}
	return protocol.SymbolKindNull
}
