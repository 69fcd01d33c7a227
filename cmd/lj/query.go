package main

import (
	"fmt"
	"strings"

	"github.com/signadot/ljson/encode"
	"github.com/signadot/ljson/query"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func queryFiles(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: no expression provided", cli.ErrUsage)
	}
	expression := args[0]
	return eachFile(cc, args[1:], func(file string) error {
		node, err := getObjFile(cc, file, cfg.parseOpts()...)
		if err != nil {
			return err
		}
		opts := cfg.encOpts(cc.Out, file)
		if cfg.Select {
			res, err := query.Select(node, expression)
			if err != nil {
				return err
			}
			for _, n := range res {
				if err := encode.Encode(n, cc.Out, opts...); err != nil {
					return err
				}
			}
			return nil
		}
		v, err := query.Eval(node, expression, query.Env(cfg.Env))
		if err != nil {
			return err
		}
		res, err := query.Value(v)
		if err != nil {
			return err
		}
		return encode.Encode(res, cc.Out, opts...)
	})
}

func envOptTypeFunc(env map[string]any) func(cc *cli.Context, a string) (any, error) {
	return func(cc *cli.Context, a string) (any, error) {
		if err := envFunc(env, a); err != nil {
			return nil, err
		}
		return 0, nil
	}
}

// envFunc sets a dotted key in env to a yaml value.
func envFunc(env map[string]any, a string) error {
	key, val, ok := strings.Cut(a, "=")
	if !ok {
		return fmt.Errorf("%w: argument %q expected key=val", cli.ErrUsage, a)
	}
	var v any
	if err := yaml.Unmarshal([]byte(val), &v); err != nil {
		return err
	}
	parts := strings.Split(key, ".")
	cur := env
	for i, part := range parts[:len(parts)-1] {
		next, ok := cur[part]
		if !ok || next == nil {
			next = map[string]any{}
			cur[part] = next
		}
		m, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("cannot set %s below %s, a %T", key, strings.Join(parts[:i+1], "."), next)
		}
		cur = m
	}
	cur[parts[len(parts)-1]] = v
	return nil
}
