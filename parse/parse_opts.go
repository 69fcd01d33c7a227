package parse

import (
	"github.com/signadot/ljson/ir"
	"github.com/signadot/ljson/token"
)

type parseOpts struct {
	maxDepth  int
	onNode    func(*Parser, *ir.Node)
	positions map[*ir.Node]token.Span
}

type ParseOption func(*parseOpts)

// MaxDepth limits container nesting to n levels. By default nesting is
// unbounded.
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}

// OnNode calls f with every node once it is complete: values as they are
// read, containers when they close. f may call Stop on the parser.
func OnNode(f func(p *Parser, n *ir.Node)) ParseOption {
	return func(o *parseOpts) { o.onNode = f }
}

// Positions records in m the input range of every node. The range of a
// member starts at its name.
func Positions(m map[*ir.Node]token.Span) ParseOption {
	return func(o *parseOpts) { o.positions = m }
}
