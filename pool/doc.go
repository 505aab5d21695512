// Package pool provides a scoped worker pool and an ordered parallel map
// built on top of it.
//
// The package encapsulates the two shutdown protocols that are easy to get
// wrong by hand: normal completion waits for all work to finish and surfaces
// the first failure, while abnormal completion releases the workers
// immediately instead of blocking on work the caller no longer needs.
//
// # Parallel Map
//
// Map is the primary entry point. It runs a function over every element of a
// slice in parallel and returns the results in input order:
//
//	ctx := context.Background()
//	urls := []string{"a", "b", "c"}
//	bodies, err := pool.Map(ctx, urls, func(ctx context.Context, u string) ([]byte, error) {
//	    return fetch(ctx, u)
//	})
//
// Map2 and Map3 zip two or three input slices positionally, truncating to
// the shortest:
//
//	sums, err := pool.Map2(ctx, xs, ys, func(ctx context.Context, x, y int) (int, error) {
//	    return x + y, nil
//	})
//
// By default Map uses one worker per element. WithMaxWorkers bounds the
// concurrency, queuing the excess; WithTimeout bounds the total wait:
//
//	results, err := pool.Map(ctx, items, fn,
//	    pool.WithMaxWorkers(8),
//	    pool.WithTimeout(30*time.Second),
//	)
//	if errors.Is(err, pool.ErrTimeout) {
//	    // not all units finished in time
//	}
//
// The function passed to Map runs on multiple workers at once and must be
// safe for concurrent use. The first unit failure is returned exactly as the
// function produced it, so callers can match on their own error types with
// errors.Is and errors.As.
//
// # Scoped Pool
//
// Acquire exposes the underlying pool for callers that want to submit work
// themselves:
//
//	p, err := pool.Acquire(ctx, 4)
//	if err != nil {
//	    return err
//	}
//	for _, job := range jobs {
//	    if err := p.Submit(job); err != nil {
//	        p.Abort()
//	        return err
//	    }
//	}
//	return p.Wait()
//
// Wait is the graceful exit: it drains the queue and joins every worker.
// Abort is the error-path exit: it discards queued work and returns without
// waiting, so a failed operation never hangs on unrelated slow units. Units
// already running are not interrupted; they finish in the background and
// their results are dropped.
package pool
