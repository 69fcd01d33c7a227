package main

import (
	"fmt"
	"io"

	"github.com/signadot/ljson/encode"
	"github.com/signadot/ljson/ir"
	"github.com/signadot/ljson/libdiff"
	"github.com/signadot/ljson/patch"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := getObjFile(cc, args[0], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	b, err := getObjFile(cc, args[1], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	if ir.Equal(a, b) {
		return nil
	}
	if cfg.Text {
		err = textDiff(cfg, cc.Out, args, a, b)
	} else {
		err = mergeDiff(cfg, cc.Out, args[1], a, b)
	}
	if err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

func mergeDiff(cfg *DiffConfig, w io.Writer, name string, a, b *ir.Node) error {
	d, err := patch.Diff(a, b)
	if err != nil {
		return err
	}
	return encode.Encode(d, w, cfg.encOpts(w, name)...)
}

func textDiff(cfg *DiffConfig, w io.Writer, names []string, a, b *ir.Node) error {
	pp := cfg.prettySettings(names[1])
	ta, err := pp.PrettyPrint(a)
	if err != nil {
		return err
	}
	tb, err := pp.PrettyPrint(b)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, libdiff.Unified(names[0], names[1], ta+"\n", tb+"\n"))
	return err
}
