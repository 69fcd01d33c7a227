// Package batch formats many documents concurrently on a worker pool.
package batch

import (
	"bytes"
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/signadot/ljson/debug"
	"github.com/signadot/ljson/encode"
	"github.com/signadot/ljson/format"
	"github.com/signadot/ljson/parse"

	"github.com/panjf2000/ants/v2"
)

type Input struct {
	Name string
	Data []byte
}

// Result of formatting one input. Output is nil when Err is set.
type Result struct {
	Name    string
	Output  []byte
	Changed bool
	Err     error
}

type Options struct {
	// Workers bounds the pool; 0 means GOMAXPROCS.
	Workers int
	// Format applies to every input unless BySuffix is set, in which
	// case the name of each input selects its dialect.
	Format            format.Format
	BySuffix          bool
	SingleLineColumns int
	WrapNumericArrays bool
	MaxDepth          int
}

// Format parses and pretty prints every input. Results are in input
// order. Once ctx is done no more inputs are started; those left over
// fail with the context's error.
func Format(ctx context.Context, inputs []Input, opts Options) ([]Result, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, err
	}
	defer pool.Release()

	res := make([]Result, len(inputs))
	var wg sync.WaitGroup
	for i := range inputs {
		in := &inputs[i]
		res[i].Name = in.Name
		if err := ctx.Err(); err != nil {
			res[i].Err = err
			continue
		}
		wg.Add(1)
		err := pool.Submit(func() {
			defer wg.Done()
			res[i].Output, res[i].Changed, res[i].Err = formatOne(in, &opts)
		})
		if err != nil {
			wg.Done()
			res[i].Err = err
		}
	}
	wg.Wait()
	return res, nil
}

func formatOne(in *Input, opts *Options) ([]byte, bool, error) {
	f := opts.Format
	if opts.BySuffix {
		f = format.FromSuffix(in.Name)
	}
	if debug.Batch() {
		debug.Logf("batch: %s as %s\n", in.Name, f)
	}
	node, err := parse.Parse(in.Data, parse.MaxDepth(opts.MaxDepth))
	if err != nil {
		return nil, false, fmt.Errorf("%s: %w", in.Name, err)
	}
	if node == nil {
		return in.Data, false, nil
	}
	s, err := encode.PrettyPrintSettings{
		Format:            f,
		SingleLineColumns: opts.SingleLineColumns,
		WrapNumericArrays: opts.WrapNumericArrays,
	}.PrettyPrint(node)
	if err != nil {
		return nil, false, fmt.Errorf("%s: %w", in.Name, err)
	}
	out := []byte(s + "\n")
	return out, !bytes.Equal(out, in.Data), nil
}
