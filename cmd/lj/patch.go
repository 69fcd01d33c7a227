package main

import (
	"fmt"

	"github.com/signadot/ljson/encode"
	"github.com/signadot/ljson/ir"
	"github.com/signadot/ljson/parse"
	"github.com/signadot/ljson/patch"

	"github.com/scott-cotton/cli"
)

func patchFiles(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: no patch provided", cli.ErrUsage)
	}
	var p *ir.Node
	if cfg.String {
		p, err = parse.ParseString(args[0], cfg.parseOpts()...)
	} else {
		p, err = getObjFile(cc, args[0], cfg.parseOpts()...)
	}
	if err != nil {
		return fmt.Errorf("error reading patch: %w", err)
	}
	if p == nil {
		return fmt.Errorf("%w: empty patch", cli.ErrUsage)
	}
	return eachFile(cc, args[1:], func(file string) error {
		doc, err := getObjFile(cc, file, cfg.parseOpts()...)
		if err != nil {
			return err
		}
		var res *ir.Node
		if cfg.Merge {
			res, err = patch.MergeApply(doc, p)
		} else {
			res, err = patch.Apply(doc, p)
		}
		if err != nil {
			return fmt.Errorf("error patching %s: %w", file, err)
		}
		return encode.Encode(res, cc.Out, cfg.encOpts(cc.Out, file)...)
	})
}
