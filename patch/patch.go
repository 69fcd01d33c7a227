// Package patch applies RFC 6902 JSON patches and RFC 7386 merge patches
// to value trees.
//
// Documents pass through standard JSON, so number lexemes and key styling
// are not kept.
package patch

import (
	"fmt"

	"github.com/signadot/ljson/debug"
	"github.com/signadot/ljson/encode"
	"github.com/signadot/ljson/format"
	"github.com/signadot/ljson/ir"
	"github.com/signadot/ljson/parse"

	jsonpatch "github.com/evanphx/json-patch"
)

func marshalJSON(node *ir.Node) ([]byte, error) {
	s, err := encode.ToText(node, format.JSONFormat)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// Apply applies the JSON patch ops, an array of operations, to doc.
func Apply(doc, ops *ir.Node) (*ir.Node, error) {
	if !ops.IsArray() {
		return nil, fmt.Errorf("%w: patch must be an array, got %s", ErrPatch, ops.Type())
	}
	d, err := marshalJSON(ops)
	if err != nil {
		return nil, err
	}
	p, err := jsonpatch.DecodePatch(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	if debug.Patch() {
		debug.Logf("patch: %d ops on %s\n", len(p), doc)
	}
	in, err := marshalJSON(doc)
	if err != nil {
		return nil, err
	}
	out, err := p.Apply(in)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return parse.Parse(out)
}

// MergeApply applies a merge patch to doc.
func MergeApply(doc, mergePatch *ir.Node) (*ir.Node, error) {
	in, err := marshalJSON(doc)
	if err != nil {
		return nil, err
	}
	mp, err := marshalJSON(mergePatch)
	if err != nil {
		return nil, err
	}
	if debug.Patch() {
		debug.Logf("patch: merge %s into %s\n", mergePatch, doc)
	}
	out, err := jsonpatch.MergePatch(in, mp)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return parse.Parse(out)
}

// Diff returns the merge patch that turns a into b.
func Diff(a, b *ir.Node) (*ir.Node, error) {
	da, err := marshalJSON(a)
	if err != nil {
		return nil, err
	}
	db, err := marshalJSON(b)
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.CreateMergePatch(da, db)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return parse.Parse(out)
}
