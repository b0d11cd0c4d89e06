package app

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Parallel2 runs two lookups concurrently and returns both results, or the first error.
// The context passed to each function is canceled as soon as either fails.
func Parallel2[T1, T2 any](
	ctx context.Context,
	fn1 func(context.Context) (T1, error),
	fn2 func(context.Context) (T2, error),
) (T1, T2, error) {
	var (
		r1 T1
		r2 T2
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		r1, err = fn1(gctx)
		return err
	})
	g.Go(func() (err error) {
		r2, err = fn2(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		var (
			z1 T1
			z2 T2
		)

		return z1, z2, err
	}

	return r1, r2, nil
}

// FanOut feeds items to a fixed pool of workers and stops at the first error.
func FanOut[T any](ctx context.Context, workers int, items []T, fn func(context.Context, T) error) error {
	if workers < 1 {
		workers = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	work := make(chan T)

	for range workers {
		g.Go(func() error {
			for item := range work {
				if err := fn(gctx, item); err != nil {
					return err
				}
			}

			return nil
		})
	}

	g.Go(func() error {
		defer close(work)

		for _, item := range items {
			select {
			case work <- item:
			case <-gctx.Done():
				return gctx.Err()
			}
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("fan out: %w", err)
	}

	return nil
}
