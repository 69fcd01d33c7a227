// Package parse reads lenient JSON text into ir nodes.
//
// # Usage
//
//	node, err := parse.Parse([]byte(`{name: alice, age: 30}`))
//	if err != nil {
//	    return err
//	}
//
//	// Parse from string
//	node, err := parse.ParseString(`[1, 2, 3]`)
//
//	// Reuse a parser
//	p := parse.NewParser(parse.MaxDepth(64))
//	node, err := p.Parse(data)
//
// Input that holds no value, only whitespace or comments, parses to a
// nil node and a nil error. So does a parse ended early by Stop.
//
// Errors are *token.ParseErr values wrapping the sentinels of package
// token.
//
// # Related Packages
//
//   - github.com/signadot/ljson/ir - value tree
//   - github.com/signadot/ljson/encode - writing nodes as text
//   - github.com/signadot/ljson/token - tokenizer
package parse
