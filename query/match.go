package query

import (
	"github.com/signadot/ljson/debug"
	"github.com/signadot/ljson/ir"
)

// Match reports whether doc has the shape of pattern. A null pattern
// matches anything. An object pattern matches an object holding a
// matching member for each of its members, looked up as by Get. An
// array pattern matches an array of the same length element by element.
// Other values match equal values of the same type.
func Match(doc, pattern *ir.Node) bool {
	if debug.Query() {
		debug.Logf("match %s at %q against %v\n", pattern.Type(), doc.Trace(), pattern)
	}
	if pattern.IsNull() {
		return true
	}
	if doc.Type() != pattern.Type() {
		return false
	}
	switch pattern.Type() {
	case ir.ObjectType:
		for p := pattern.FirstChild(); p != nil; p = p.NextSibling() {
			d := doc.Get(p.Name())
			if d == nil || !Match(d, p) {
				return false
			}
		}
		return true
	case ir.ArrayType:
		if doc.Len() != pattern.Len() {
			return false
		}
		d := doc.FirstChild()
		for p := pattern.FirstChild(); p != nil; p = p.NextSibling() {
			if !Match(d, p) {
				return false
			}
			d = d.NextSibling()
		}
		return true
	case ir.StringType:
		ds, _ := doc.AsString()
		ps, _ := pattern.AsString()
		return *ds == *ps
	case ir.BoolType:
		db, _ := doc.AsBool()
		pb, _ := pattern.AsBool()
		return db == pb
	case ir.LongType:
		dl, _ := doc.AsLong()
		pl, _ := pattern.AsLong()
		return dl == pl
	case ir.DoubleType:
		df, _ := doc.AsDouble()
		pf, _ := pattern.AsDouble()
		return df == pf
	}
	return false
}

// Trim returns a copy of doc, which should match pattern, holding only
// the members that pattern names. Members keep the order of doc.
func Trim(pattern, doc *ir.Node) *ir.Node {
	switch {
	case pattern.IsObject() && doc.IsObject():
		var kvs []ir.KeyVal
		for d := doc.FirstChild(); d != nil; d = d.NextSibling() {
			p := pattern.Get(d.Name())
			if p == nil || doc.Get(d.Name()) != d {
				continue
			}
			kvs = append(kvs, ir.KeyVal{Key: d.Name(), Val: Trim(p, d)})
		}
		return ir.FromKeyVals(kvs)
	case pattern.IsArray() && doc.IsArray():
		res := make([]*ir.Node, 0, doc.Len())
		d := doc.FirstChild()
		for p := pattern.FirstChild(); p != nil && d != nil; p = p.NextSibling() {
			res = append(res, Trim(p, d))
			d = d.NextSibling()
		}
		return ir.FromSlice(res)
	}
	return doc.Clone()
}
