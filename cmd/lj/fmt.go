package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/signadot/ljson/batch"
	"github.com/signadot/ljson/libdiff"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
)

func fmtFiles(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		return err
	}
	if count(cfg.Write, cfg.Diff, cfg.List) > 1 {
		return fmt.Errorf("%w: must specify at most one of -w -d -l", cli.ErrUsage)
	}
	if len(args) == 0 {
		if cfg.Write {
			return fmt.Errorf("%w: -w requires files", cli.ErrUsage)
		}
		args = []string{"-"}
	}
	inputs := make([]batch.Input, 0, len(args))
	for _, file := range args {
		d, err := readFile(cc, file)
		if err != nil {
			return err
		}
		inputs = append(inputs, batch.Input{Name: file, Data: d})
	}
	opts := batch.Options{
		Workers:           cfg.Workers,
		BySuffix:          cfg.OutFormat == nil && !cfg.J,
		SingleLineColumns: cfg.prettySettings("").SingleLineColumns,
		WrapNumericArrays: cfg.Wrap,
		MaxDepth:          cfg.Depth,
	}
	if !opts.BySuffix {
		opts.Format = cfg.outFormat("")
	}
	results, err := batch.Format(context.Background(), inputs, opts)
	if err != nil {
		return err
	}
	failed := 0
	for i := range results {
		r := &results[i]
		if r.Err != nil {
			failed++
			theLog.Error("format", "file", r.Name, "error", r.Err)
			continue
		}
		if err := fmtResult(cfg, cc.Out, &inputs[i], r); err != nil {
			return err
		}
	}
	if failed > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func fmtResult(cfg *FmtConfig, w io.Writer, in *batch.Input, r *batch.Result) error {
	switch {
	case cfg.List:
		if r.Changed {
			_, err := fmt.Fprintln(w, r.Name)
			return err
		}
	case cfg.Diff:
		if r.Changed {
			d := libdiff.Unified(r.Name+".orig", r.Name, string(in.Data), string(r.Output))
			_, err := io.WriteString(w, colorDiff(cfg, w, d))
			return err
		}
	case cfg.Write:
		if r.Changed && r.Name != "-" {
			return writeFile(r.Name, r.Output)
		}
	default:
		_, err := w.Write(r.Output)
		return err
	}
	return nil
}

func colorDiff(cfg *FmtConfig, w io.Writer, d string) string {
	if !cfg.colorize(w) {
		return d
	}
	lines := strings.SplitAfter(d, "\n")
	for i, l := range lines {
		switch {
		case strings.HasPrefix(l, "---"), strings.HasPrefix(l, "+++"):
			lines[i] = color.New(color.Bold).Sprint(l)
		case strings.HasPrefix(l, "@@"):
			lines[i] = color.CyanString("%s", l)
		case strings.HasPrefix(l, "-"):
			lines[i] = color.RedString("%s", l)
		case strings.HasPrefix(l, "+"):
			lines[i] = color.GreenString("%s", l)
		}
	}
	return strings.Join(lines, "")
}

func writeFile(name string, d []byte) error {
	fi, err := os.Stat(name)
	if err != nil {
		return err
	}
	return os.WriteFile(name, d, fi.Mode().Perm())
}
