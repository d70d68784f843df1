package smaz

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// CompressAll compresses every string in texts, running at most limit
// compressions at once (limit <= 0 means runtime.GOMAXPROCS(0)). The
// result at index i is Compress(texts[i]).
//
// A single compression cannot be interrupted; ctx is checked between
// items, and CompressAll returns ctx.Err() once it is done.
func CompressAll(ctx context.Context, texts []string, limit int) ([][]byte, error) {
	out := make([][]byte, len(texts))
	err := fanOut(ctx, len(texts), limit, func(i int) error {
		out[i] = Compress(texts[i])
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DecompressAll is the inverse of CompressAll. The first malformed item
// stops the batch; its error names the item index and wraps
// ErrMalformedInput.
func DecompressAll(ctx context.Context, blobs [][]byte, limit int) ([]string, error) {
	out := make([]string, len(blobs))
	err := fanOut(ctx, len(blobs), limit, func(i int) error {
		s, err := Decompress(blobs[i])
		if err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
		out[i] = s
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// fanOut calls fn(i) for every i in [0, n) on at most limit goroutines.
func fanOut(ctx context.Context, n, limit int, fn func(i int) error) error {
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i := range n {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return fn(i)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
