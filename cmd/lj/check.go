package main

import (
	"errors"
	"fmt"

	"github.com/signadot/ljson/parse"
	"github.com/signadot/ljson/token"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	bad := 0
	err = eachFile(cc, args, func(file string) error {
		d, err := readFile(cc, file)
		if err != nil {
			return err
		}
		_, err = parse.Parse(d, cfg.parseOpts()...)
		if err == nil {
			return nil
		}
		bad++
		if !cfg.Quiet {
			fmt.Fprintln(cc.Out, checkMessage(file, err))
		}
		return nil
	})
	if err != nil {
		return err
	}
	if bad > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func checkMessage(file string, err error) string {
	var pe *token.ParseErr
	if errors.As(err, &pe) {
		return fmt.Sprintf("%s:%d:%d: %v", file, pe.Line, pe.Col, pe.Err)
	}
	return fmt.Sprintf("%s: %v", file, err)
}
