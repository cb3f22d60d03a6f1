// Package workerpool runs a function over a slice on a fixed number of
// goroutines.
package workerpool

import (
	"context"
	"fmt"
	"sync"
)

// Map applies fn to every item on workerCount goroutines and returns the
// results in input order. The first error cancels the remaining work and is
// returned together with the index of the item that produced it.
func Map[T, R any](
	ctx context.Context,
	workerCount int,
	items []T,
	fn func(context.Context, T) (R, error),
) ([]R, error) {
	if workerCount < 1 {
		workerCount = 1
	}
	if len(items) == 0 {
		return []R{}, ctx.Err()
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make([]R, len(items))
	tasks := make(chan int, workerCount)

	var (
		once     sync.Once
		firstErr error
		wg       sync.WaitGroup
	)
	fail := func(err error) {
		once.Do(func() {
			firstErr = err
			cancel()
		})
	}

	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range tasks {
				if ctx.Err() != nil {
					continue
				}
				res, err := fn(ctx, items[idx])
				if err != nil {
					fail(fmt.Errorf("item %d: %w", idx, err))
					continue
				}
				results[idx] = res
			}
		}()
	}

feed:
	for idx := range items {
		select {
		case <-ctx.Done():
			break feed
		case tasks <- idx:
		}
	}
	close(tasks)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
