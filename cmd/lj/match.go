package main

import (
	"fmt"

	"github.com/signadot/ljson/encode"
	"github.com/signadot/ljson/ir"
	"github.com/signadot/ljson/parse"
	"github.com/signadot/ljson/query"

	"github.com/scott-cotton/cli"
)

func match(cfg *MatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Match.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: match requires 1 argument, a match object", cli.ErrUsage)
	}
	pattern, err := getMatch(cfg, cc, args[0])
	if err != nil {
		return err
	}
	matched := 0
	err = eachFile(cc, args[1:], func(file string) error {
		doc, err := getObjFile(cc, file, cfg.parseOpts()...)
		if err != nil {
			return err
		}
		if !query.Match(doc, pattern) {
			return nil
		}
		matched++
		if cfg.Quiet {
			return nil
		}
		if cfg.Trim {
			doc = query.Trim(pattern, doc)
		}
		if err := encode.Encode(doc, cc.Out, cfg.encOpts(cc.Out, file)...); err != nil {
			return fmt.Errorf("error encoding output: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	if matched == 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func getMatch(cfg *MatchConfig, cc *cli.Context, arg string) (*ir.Node, error) {
	var (
		res *ir.Node
		err error
	)
	if cfg.File {
		res, err = getObjFile(cc, arg, cfg.parseOpts()...)
	} else {
		res, err = parse.ParseString(arg, cfg.parseOpts()...)
	}
	if err != nil {
		return nil, fmt.Errorf("error decoding match: %w", err)
	}
	if res == nil {
		res = ir.Null()
	}
	return res, nil
}
