package pool

import (
	"context"
	"fmt"
	"time"

	"github.com/samber/lo"
)

// UnitFunc processes one element and produces one result. Map invokes it
// from multiple workers at once, so it MUST be safe for concurrent use; the
// pool cannot verify that, and shared mutable state inside fn is a data race
// waiting to happen.
//
// The context is the pool's context. It is cancelled on the first failing
// unit, on timeout, and on abort, so long-running units can bail out early,
// but they are never forcibly interrupted.
type UnitFunc[T, R any] func(ctx context.Context, item T) (R, error)

// Map runs fn over every element of items in parallel and returns the
// results in input order, regardless of the order in which units complete.
//
// Each call acquires a fresh Pool scoped to the call: sized to one worker
// per element unless WithMaxWorkers bounds it, and torn down exactly once
// before Map returns. On full success the pool is drained gracefully. On the
// first unit failure Map stops waiting immediately, aborts the pool, and
// returns that unit's error exactly as fn returned it, never wrapped. With
// WithTimeout set, expiry aborts the pool and fails with an error satisfying
// errors.Is(err, ErrTimeout).
//
// Callers see either a fully populated result slice or a single error, never
// partial results. After a failure or timeout, units already in flight keep
// running in the background until their current call returns; their results
// are discarded (best-effort cancellation).
func Map[T, R any](ctx context.Context, items []T, fn UnitFunc[T, R], opts ...Option) ([]R, error) {
	cfg := newConfig(len(items), opts...)

	n := len(items)
	if n == 0 {
		return []R{}, nil
	}

	workers := n
	if cfg.maxWorkers > 0 && cfg.maxWorkers < n {
		workers = cfg.maxWorkers
	}

	poolOpts := make([]Option, 0, len(opts)+1)
	poolOpts = append(poolOpts, opts...)
	poolOpts = append(poolOpts, WithQueueSize(n))

	p, err := Acquire(ctx, workers, poolOpts...)
	if err != nil {
		return nil, err
	}

	// Buffered to n so no unit ever blocks reporting, even when Map has
	// already returned on a failure or timeout path.
	done := make(chan unitResult, n)
	results := make([]R, n)

	for i, item := range items {
		if err := p.Submit(func(ctx context.Context) error {
			value, err := runUnit(ctx, fn, item)
			if err == nil {
				results[i] = value
			}
			if cfg.onUnitDone != nil {
				cfg.onUnitDone(i, err)
			}
			done <- unitResult{index: i, err: err}
			return err
		}); err != nil {
			p.Abort()
			return nil, err
		}
	}

	var expired <-chan time.Time
	if cfg.timeout > 0 {
		timer := time.NewTimer(cfg.timeout)
		defer timer.Stop()
		expired = timer.C
	}

	for remaining := n; remaining > 0; remaining-- {
		select {
		case res := <-done:
			if res.err != nil {
				p.Abort()
				return nil, res.err
			}
		case <-expired:
			p.Abort()
			return nil, fmt.Errorf("%w after %v", ErrTimeout, cfg.timeout)
		case <-ctx.Done():
			p.Abort()
			return nil, context.Cause(ctx)
		}
	}

	if err := p.Wait(); err != nil {
		// Every unit reported success, so this is a teardown-time
		// cancellation of the caller's context.
		p.Abort()
		return nil, err
	}
	return results, nil
}

// Map2 runs fn over the positional zip of two slices. The inputs are
// truncated to the length of the shortest one, mirroring zip semantics; a
// length mismatch is not an error. Callers that consider mismatched lengths
// a bug should check before calling.
func Map2[A, B, R any](
	ctx context.Context,
	as []A, bs []B,
	fn func(ctx context.Context, a A, b B) (R, error),
	opts ...Option,
) ([]R, error) {
	n := min(len(as), len(bs))
	pairs := lo.Zip2(as[:n], bs[:n])
	return Map(ctx, pairs, func(ctx context.Context, p lo.Tuple2[A, B]) (R, error) {
		return fn(ctx, p.A, p.B)
	}, opts...)
}

// Map3 runs fn over the positional zip of three slices, truncated to the
// shortest like Map2.
func Map3[A, B, C, R any](
	ctx context.Context,
	as []A, bs []B, cs []C,
	fn func(ctx context.Context, a A, b B, c C) (R, error),
	opts ...Option,
) ([]R, error) {
	n := min(len(as), len(bs), len(cs))
	triples := lo.Zip3(as[:n], bs[:n], cs[:n])
	return Map(ctx, triples, func(ctx context.Context, t lo.Tuple3[A, B, C]) (R, error) {
		return fn(ctx, t.A, t.B, t.C)
	}, opts...)
}

// unitResult reports one unit's completion to the awaiting Map call.
type unitResult struct {
	index int
	err   error
}
