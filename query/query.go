// Package query evaluates expr-lang expressions against value trees.
//
// Expressions see the document as plain Go values under the name doc,
// plus any caller supplied values. These functions are available:
//
//	trace()     the path of the node being evaluated
//	get(path)   the value at a path, nil if absent
//	list(path)  the values matched by a path with [*] or ..
package query

import (
	"fmt"

	"github.com/signadot/ljson/convert"
	"github.com/signadot/ljson/debug"
	"github.com/signadot/ljson/ir"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Env holds caller values visible to expressions.
type Env map[string]any

type scope struct {
	cur *ir.Node
}

func (s *scope) opts() []expr.Option {
	return []expr.Option{
		expr.Function("trace", func(params ...any) (any, error) {
			return s.cur.Trace(), nil
		},
			new(func() string)),
		expr.Function("get", func(params ...any) (any, error) {
			n, err := s.cur.Root().GetPath(params[0].(string))
			if err != nil || n == nil {
				return nil, err
			}
			return convert.ToAny(n)
		},
			new(func(string) any)),
		expr.Function("list", func(params ...any) (any, error) {
			ns, err := s.cur.Root().ListPath(nil, params[0].(string))
			if err != nil {
				return nil, err
			}
			res := make([]any, 0, len(ns))
			for _, n := range ns {
				v, err := convert.ToAny(n)
				if err != nil {
					return nil, err
				}
				res = append(res, v)
			}
			return res, nil
		},
			new(func(string) []any)),
	}
}

func compile(s *scope, expression string) (*vm.Program, error) {
	prg, err := expr.Compile(expression, s.opts()...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQuery, err)
	}
	return prg, nil
}

func newEnv(node *ir.Node, env Env) (map[string]any, error) {
	doc, err := convert.ToAny(node)
	if err != nil {
		return nil, err
	}
	res := make(map[string]any, len(env)+2)
	for k, v := range env {
		res[k] = v
	}
	res["doc"] = doc
	return res, nil
}

// Eval returns the value of expression.
func Eval(node *ir.Node, expression string, env Env) (any, error) {
	s := &scope{cur: node}
	prg, err := compile(s, expression)
	if err != nil {
		return nil, err
	}
	vars, err := newEnv(node, env)
	if err != nil {
		return nil, err
	}
	if debug.Query() {
		debug.Logf("query: %s on %s\n", expression, node)
	}
	res, err := expr.Run(prg, vars)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQuery, err)
	}
	return res, nil
}

// Select returns the children of node for which predicate holds. The
// child being tested is named it.
func Select(node *ir.Node, predicate string) ([]*ir.Node, error) {
	if !node.IsContainer() {
		return nil, fmt.Errorf("%w: cannot select from a %s", ErrQuery, node.Type())
	}
	s := &scope{}
	prg, err := compile(s, predicate)
	if err != nil {
		return nil, err
	}
	vars, err := newEnv(node, nil)
	if err != nil {
		return nil, err
	}
	var res []*ir.Node
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		s.cur = c
		if vars["it"], err = convert.ToAny(c); err != nil {
			return nil, err
		}
		out, err := expr.Run(prg, vars)
		if err != nil {
			return nil, &ir.PathErr{Path: c.Trace(), Err: fmt.Errorf("%w: %w", ErrQuery, err)}
		}
		ok, isBool := out.(bool)
		if !isBool {
			return nil, &ir.PathErr{Path: c.Trace(), Err: fmt.Errorf("%w: predicate gave %T, not bool", ErrQuery, out)}
		}
		if debug.Query() {
			debug.Logf("query: %s at %q: %v\n", predicate, c.Trace(), ok)
		}
		if ok {
			res = append(res, c)
		}
	}
	return res, nil
}

// Value converts a result of Eval to a tree.
func Value(v any) (*ir.Node, error) {
	return convert.FromAny(v)
}
