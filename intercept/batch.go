package intercept

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// SolveBatch runs independent solvers in parallel and returns their reports in input order
// workers <= 0 uses GOMAXPROCS; the context is checked before each solve, its error is returned on cancellation
func SolveBatch(ctx context.Context, solvers []*Solver, workers int) ([]Report, error) {
	for i, s := range solvers {
		if s == nil {
			return nil, fmt.Errorf("%w: nil solver at index %d", ErrInvalidConfig, i)
		}
	}

	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	reports := make([]Report, len(solvers))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)

	for i, s := range solvers {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			// Each goroutine owns its slot
			reports[i] = s.Diagnose()
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}
