// Package fanout runs independent read operations concurrently with a bounded
// number of goroutines. The dashboard uses it to load its sections in
// parallel and to compute per-collaborator workloads.
package fanout

import (
	"context"
	"errors"
	"sync"
)

// Result holds the outcome of processing a single item.
// Either Value is populated (on success) or Err is non-nil (on failure).
type Result[R any] struct {
	Value R
	Err   error
}

// Run executes fn for each item using at most maxWorkers concurrent
// goroutines and returns results in input order. A maxWorkers below 1 is
// treated as 1.
//
// Items still waiting for a worker slot when ctx is canceled record
// ctx.Err() without calling fn. Run blocks until every goroutine returns;
// for empty input it returns an empty non-nil slice.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	if len(items) == 0 {
		return []Result[R]{}
	}
	maxWorkers = max(maxWorkers, 1)

	results := make([]Result[R], len(items))
	sem := make(chan struct{}, maxWorkers)
	var wg sync.WaitGroup

	for i, item := range items {
		wg.Add(1)
		go func(idx int, it T) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				results[idx] = Result[R]{Err: ctx.Err()}
				return
			}

			val, err := fn(ctx, it)
			results[idx] = Result[R]{Value: val, Err: err}
		}(i, item)
	}

	wg.Wait()
	return results
}

// Values unwraps results. Any failures are combined with errors.Join, in
// which case the returned values are nil.
func Values[R any](results []Result[R]) ([]R, error) {
	var errs []error
	values := make([]R, len(results))
	for i, r := range results {
		if r.Err != nil {
			errs = append(errs, r.Err)
			continue
		}
		values[i] = r.Value
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return values, nil
}

// All runs every fn concurrently and returns the joined errors. Each fn is
// expected to write its output to memory no other fn touches.
func All(ctx context.Context, fns ...func(context.Context) error) error {
	results := Run(ctx, len(fns), fns, func(ctx context.Context, fn func(context.Context) error) (struct{}, error) {
		return struct{}{}, fn(ctx)
	})
	_, err := Values(results)
	return err
}
