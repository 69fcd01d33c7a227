package main

import (
	"fmt"

	"github.com/signadot/ljson/encode"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	return eachFile(cc, args, func(file string) error {
		node, err := getObjFile(cc, file, cfg.parseOpts()...)
		if err != nil {
			return err
		}
		if err := encode.Encode(node, cc.Out, cfg.encOpts(cc.Out, file)...); err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
		return nil
	})
}
