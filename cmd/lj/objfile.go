package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/ljson/ir"
	"github.com/signadot/ljson/parse"

	"github.com/scott-cotton/cli"
)

func readFile(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

// getObjFile reads and parses path. A document with no value parses to
// null.
func getObjFile(cc *cli.Context, path string, opts ...parse.ParseOption) (*ir.Node, error) {
	d, err := readFile(cc, path)
	if err != nil {
		return nil, err
	}
	node, err := parse.Parse(d, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if node == nil {
		node = ir.Null()
	}
	return node, nil
}

// eachFile calls f with every named file, or with stdin when there are
// none.
func eachFile(cc *cli.Context, files []string, f func(name string) error) error {
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, file := range files {
		if err := f(file); err != nil {
			return err
		}
	}
	return nil
}
