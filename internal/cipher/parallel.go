// Copyright (c) 2026 Keymaster Team
// Quadshift - quadrant shift cipher
// This source code is licensed under the MIT license found in the LICENSE file.

package cipher

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ParallelOptions controls TransformParallel.
type ParallelOptions struct {
	Workers   int // concurrent chunks; <1 means GOMAXPROCS
	ChunkSize int // bytes per chunk; <1 means DefaultChunkSize
	Threshold int // inputs shorter than this are mapped inline
}

const (
	DefaultChunkSize = 64 << 10
	DefaultThreshold = 1 << 20
)

// DefaultParallelOptions returns options sized for the current machine.
func DefaultParallelOptions() ParallelOptions {
	return ParallelOptions{
		Workers:   runtime.GOMAXPROCS(0),
		ChunkSize: DefaultChunkSize,
		Threshold: DefaultThreshold,
	}
}

func (o ParallelOptions) normalized() ParallelOptions {
	if o.Workers < 1 {
		o.Workers = runtime.GOMAXPROCS(0)
	}
	if o.ChunkSize < 1 {
		o.ChunkSize = DefaultChunkSize
	}
	if o.Threshold < 0 {
		o.Threshold = 0
	}
	return o
}

// TransformParallel produces the same output as TransformBytes, splitting
// the work into chunks handled by a bounded set of goroutines. Characters
// are independent of each other so chunk boundaries need no overlap.
// The only possible error is ctx's.
func TransformParallel(ctx context.Context, src []byte, p Params, d Direction, opts ParallelOptions) ([]byte, error) {
	opts = opts.normalized()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	key := NewKey(p, d)
	dst := make([]byte, len(src))
	if len(src) < opts.Threshold || len(src) <= opts.ChunkSize || opts.Workers == 1 {
		key.mapInto(dst, src)
		return dst, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for lo := 0; lo < len(src); lo += opts.ChunkSize {
		lo := lo
		hi := min(lo+opts.ChunkSize, len(src))
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			key.mapInto(dst[lo:hi], src[lo:hi])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return dst, nil
}
