package canvas

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ParseSVGPaths parses independent SVG path data strings concurrently using at most workers goroutines, or GOMAXPROCS if workers is not positive. The returned paths are in input order. The first error cancels the remaining work.
func ParseSVGPaths(ctx context.Context, ds []string, workers int) ([]*Path, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	paths := make([]*Path, len(ds))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, d := range ds {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			p, err := ParseSVGPath(d)
			if err != nil {
				return fmt.Errorf("path %d: %w", i, err)
			}
			paths[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}
