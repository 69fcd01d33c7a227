package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/ljson/encode"
	"github.com/signadot/ljson/format"
	"github.com/signadot/ljson/parse"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	Compact bool `cli:"name=c aliases=compact desc='output on a single line'"`
	Cols    int  `cli:"name=cols desc='column budget for single line containers'"`
	Wrap    bool `cli:"name=wrap desc='wrap long arrays of numbers'"`
	Depth   int  `cli:"name=depth desc='maximum nesting depth, 0 for no limit'"`

	J bool `cli:"name=j aliases=json desc='output json'"`

	OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	return []parse.ParseOption{parse.MaxDepth(cfg.Depth)}
}

// outFormat is the dialect of output for a document read from name.
func (cfg *MainConfig) outFormat(name string) format.Format {
	switch {
	case cfg.OutFormat != nil:
		return *cfg.OutFormat
	case cfg.J:
		return format.JSONFormat
	case name != "" && name != "-":
		return format.FromSuffix(name)
	}
	return encode.DefaultFormat
}

func (cfg *MainConfig) prettySettings(name string) encode.PrettyPrintSettings {
	cols := cfg.Cols
	if cols <= 0 {
		cols = 80
	}
	return encode.PrettyPrintSettings{
		Format:            cfg.outFormat(name),
		SingleLineColumns: cols,
		WrapNumericArrays: cfg.Wrap,
	}
}

func (cfg *MainConfig) encOpts(w io.Writer, name string) []encode.EncodeOption {
	res := []encode.EncodeOption{encode.EncodeFormat(cfg.outFormat(name))}
	if !cfg.Compact {
		res = append(res, encode.EncodePretty(cfg.prettySettings(name)))
	}
	if cfg.colorize(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

func (cfg *MainConfig) colorize(w io.Writer) bool {
	if cfg.Color {
		color.NoColor = false
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name == "color" && opt.Value != nil {
			return false
		}
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type FmtConfig struct {
	*MainConfig
	Write   bool `cli:"name=w desc='write result to source files'"`
	Diff    bool `cli:"name=d desc='show diffs'"`
	List    bool `cli:"name=l desc='list files whose formatting differs'"`
	Workers int  `cli:"name=p aliases=parallel desc='number of files formatted at once'"`

	Fmt *cli.Command
}

type CheckConfig struct {
	*MainConfig
	Quiet bool `cli:"name=q desc='only set the exit code'"`

	Check *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type QueryConfig struct {
	*MainConfig
	Env    map[string]any
	Select bool `cli:"name=s aliases=select desc='output the children for which the expression holds'"`

	Query *cli.Command
}

type MatchConfig struct {
	*MainConfig
	File  bool `cli:"name=f desc='match arg is a file'"`
	Trim  bool `cli:"name=t aliases=trim desc='output only the matched members'"`
	Quiet bool `cli:"name=q desc='only set the exit code'"`

	Match *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Merge  bool `cli:"name=m aliases=merge desc='apply as a merge patch'"`
	String bool `cli:"name=s desc='patch arg as string'"`

	Patch *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Text bool `cli:"name=u desc='show a unified diff of the formatted documents'"`

	Diff *cli.Command
}

type ConvertConfig struct {
	*MainConfig
	FromYAML bool `cli:"name=from-yaml desc='read yaml'"`
	ToYAML   bool `cli:"name=to-yaml desc='write yaml'"`

	Convert *cli.Command
}
