package parse

import (
	"fmt"

	"github.com/signadot/ljson/debug"
	"github.com/signadot/ljson/ir"
	"github.com/signadot/ljson/token"
)

func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	return NewParser(opts...).Parse(d)
}

func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	return Parse([]byte(s), opts...)
}

// ParseRange parses buf[offset:offset+length]. Error offsets are relative
// to offset.
func ParseRange(buf []byte, offset, length int, opts ...ParseOption) (*ir.Node, error) {
	if offset < 0 || length < 0 || offset > len(buf) || length > len(buf)-offset {
		return nil, fmt.Errorf("%w: offset %d length %d in %d bytes", ErrRange, offset, length, len(buf))
	}
	return Parse(buf[offset:offset+length], opts...)
}

// Parser builds trees from text. It may be reused but not shared between
// goroutines.
type Parser struct {
	opts parseOpts
	tok  *token.Tokenizer
	b    builder
}

func NewParser(opts ...ParseOption) *Parser {
	p := &Parser{}
	for _, f := range opts {
		f(&p.opts)
	}
	p.b.p = p
	p.tok = token.NewTokenizer(&p.b)
	p.tok.MaxDepth = p.opts.maxDepth
	return p
}

// Parse returns the root of the document in d. It returns nil, nil when d
// holds no value or when Stop was called during the parse.
func (p *Parser) Parse(d []byte) (*ir.Node, error) {
	p.b.reset()
	defer p.b.reset()
	if err := p.tok.Tokenize(d); err != nil {
		return nil, err
	}
	if p.tok.Stopped() {
		return nil, nil
	}
	if p.b.err != nil {
		return nil, p.b.err
	}
	return p.b.root, nil
}

// Stop ends the parse in progress. It is meant to be called from an
// OnNode callback.
func (p *Parser) Stop() { p.tok.Stop() }

func (p *Parser) Stopped() bool { return p.tok.Stopped() }

// Reset clears the state of the last parse, including a stop.
func (p *Parser) Reset() {
	p.tok.Reset()
	p.b.reset()
}

// builder is the token.Sink that assembles nodes. A member name waits in
// name until its value arrives.
type builder struct {
	p     *Parser
	root  *ir.Node
	cur   *ir.Node
	name  string
	named bool
	start int
	err   error
}

func (b *builder) reset() {
	b.root, b.cur = nil, nil
	b.name, b.named = "", false
	b.err = nil
}

func (b *builder) add(n *ir.Node) {
	if pos := b.p.opts.positions; pos != nil {
		sp := b.p.tok.Span()
		if b.named {
			sp.Start = b.start
		}
		pos[n] = sp
	}
	if b.named {
		n.SetName(b.name)
		b.name, b.named = "", false
	}
	if debug.Parse() {
		debug.Logf("parse: %s %q at %q\n", n.Type(), n.Name(), b.trace())
	}
	if b.cur == nil {
		b.root = n
		return
	}
	if err := b.cur.AddChild(n); err != nil && b.err == nil {
		b.err = err
	}
}

func (b *builder) trace() string {
	if b.cur == nil {
		return ""
	}
	return b.cur.Trace()
}

func (b *builder) done(n *ir.Node) {
	if b.p.opts.onNode != nil {
		b.p.opts.onNode(b.p, n)
	}
}

func (b *builder) leaf(n *ir.Node) {
	b.add(n)
	b.done(n)
}

func (b *builder) Name(name string) {
	b.name, b.named = name, true
	b.start = b.p.tok.Span().Start
}

func (b *builder) String(s string)              { b.leaf(ir.FromString(s)) }
func (b *builder) Long(v int64, raw string)     { b.leaf(ir.FromLongRaw(v, raw)) }
func (b *builder) Double(f float64, raw string) { b.leaf(ir.FromDoubleRaw(f, raw)) }
func (b *builder) Bool(v bool)                  { b.leaf(ir.FromBool(v)) }
func (b *builder) Null()                        { b.leaf(ir.Null()) }

func (b *builder) StartObject() { b.open(ir.NewObject()) }
func (b *builder) StartArray()  { b.open(ir.NewArray()) }

func (b *builder) open(n *ir.Node) {
	b.add(n)
	b.cur = n
}

func (b *builder) Pop() {
	n := b.cur
	b.cur = n.Parent()
	if pos := b.p.opts.positions; pos != nil {
		sp := pos[n]
		sp.End = b.p.tok.Span().End
		pos[n] = sp
	}
	b.done(n)
}
