package main

import (
	"fmt"
	"path/filepath"

	"github.com/signadot/ljson/convert"
	"github.com/signadot/ljson/encode"
	"github.com/signadot/ljson/ir"

	"github.com/scott-cotton/cli"
)

func isYAML(name string) bool {
	switch filepath.Ext(name) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

func convertFiles(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}
	toYAML := cfg.ToYAML || isYAML(cfg.Out)
	return eachFile(cc, args, func(file string) error {
		var node *ir.Node
		if cfg.FromYAML || isYAML(file) {
			d, err := readFile(cc, file)
			if err != nil {
				return err
			}
			node, err = convert.FromYAML(d)
			if err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}
		} else {
			node, err = getObjFile(cc, file, cfg.parseOpts()...)
			if err != nil {
				return err
			}
		}
		if !toYAML {
			return encode.Encode(node, cc.Out, cfg.encOpts(cc.Out, cfg.Out)...)
		}
		d, err := convert.ToYAML(node)
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		_, err = cc.Out.Write(d)
		return err
	})
}
