package main

import (
	"fmt"

	"github.com/signadot/ljson/encode"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: no path provided", cli.ErrUsage)
	}
	path := args[0]
	return eachFile(cc, args[1:], func(file string) error {
		node, err := getObjFile(cc, file, cfg.parseOpts()...)
		if err != nil {
			return err
		}
		res, err := node.ListPath(nil, path)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, n := range res {
			if err := encode.Encode(n, cc.Out, cfg.encOpts(cc.Out, file)...); err != nil {
				return err
			}
		}
		return nil
	})
}
