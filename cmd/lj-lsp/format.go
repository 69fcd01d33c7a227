package main

import (
	"context"
	"net/url"

	"github.com/signadot/ljson/encode"
	"github.com/signadot/ljson/format"

	"go.lsp.dev/protocol"
)

const formatColumns = 80

// uriFormat selects the output dialect from the suffix of the document.
func uriFormat(uri string) format.Format {
	if u, err := url.Parse(uri); err == nil && u.Path != "" {
		return format.FromSuffix(u.Path)
	}
	return format.FromSuffix(uri)
}

// formatted returns the pretty printed document, or false when it cannot
// be formatted.
func formatted(doc *document) (string, bool) {
	if doc.err != nil || doc.node == nil {
		return "", false
	}
	s, err := encode.PrettyPrintSettings{
		Format:            uriFormat(doc.uri),
		SingleLineColumns: formatColumns,
		WrapNumericArrays: false,
	}.PrettyPrint(doc.node)
	if err != nil {
		theLog.Debug("format", "uri", doc.uri, "error", err)
		return "", false
	}
	return s + "\n", true
}

func (s *Server) Formatting(ctx context.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	text, ok := formatted(doc)
	if !ok {
		return nil, nil
	}
	if text == doc.content {
		return []protocol.TextEdit{}, nil
	}
	return []protocol.TextEdit{
		{
			Range:   toRange(doc.content, 0, len(doc.content)),
			NewText: text,
		},
	}, nil
}
