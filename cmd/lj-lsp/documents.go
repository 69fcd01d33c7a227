package main

import (
	"sync"

	"github.com/signadot/ljson/ir"
	"github.com/signadot/ljson/parse"
	"github.com/signadot/ljson/token"

	"go.lsp.dev/protocol"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

// document is immutable once stored; edits replace it.
type document struct {
	uri       string
	content   string
	version   int32
	node      *ir.Node
	positions map[*ir.Node]token.Span
	err       error
}

func newDocument(uri, content string, version int32) *document {
	doc := &document{
		uri:       uri,
		content:   content,
		version:   version,
		positions: make(map[*ir.Node]token.Span),
	}
	doc.node, doc.err = parse.ParseString(content, parse.Positions(doc.positions))
	if doc.err != nil {
		theLog.Debug("parse", "uri", uri, "error", doc.err)
		doc.positions = nil
	}
	return doc
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri string, content string, version int32) *document {
	doc := newDocument(uri, content, version)
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.docs[uri] = doc
	return doc
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

// applyChanges applies edits in order. A change without a range replaces
// the whole content.
func applyChanges(content string, changes []protocol.TextDocumentContentChangeEvent) string {
	for _, change := range changes {
		r := change.Range
		if r == (protocol.Range{}) {
			content = change.Text
			continue
		}
		start := toOffset(content, r.Start)
		end := max(start, toOffset(content, r.End))
		content = content[:start] + change.Text + content[end:]
	}
	return content
}
