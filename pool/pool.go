package pool

import (
	"context"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/parmap-go/parmap/internal/cpu"
)

// Task is a single unit of work executed by a pool worker. The context passed
// to the task is the pool's own context: it is cancelled when the pool is
// aborted and when any other unit of work fails.
type Task func(ctx context.Context) error

// Pool is a bounded set of worker goroutines with a scoped lifecycle.
//
// A Pool is created by Acquire, fed units of work through Submit, and torn
// down exactly once through one of two exit protocols:
//
//   - Wait: graceful shutdown. Stops accepting work, runs everything that was
//     submitted, waits for in-flight units to finish, then releases the
//     workers. Blocking, bounded only by the slowest unit of work.
//   - Abort: abort shutdown. Releases the workers immediately without waiting
//     for in-flight units; queued units that have not started are discarded.
//     Never blocks.
//
// The pool is fail-fast: the first unit of work that returns a non-nil error
// cancels the pool context, and workers stop picking up queued units. The
// error is retained and returned verbatim by Wait.
//
// A Pool belongs to the scope that acquired it. Submit, Wait and Abort are
// meant to be driven by that single owner; Submit must not be called
// concurrently with Wait. A pool is never reused after Wait or Abort.
type Pool struct {
	tasks chan Task

	grp   *errgroup.Group
	ctx   context.Context
	abort context.CancelCauseFunc

	live   atomic.Int32
	closed atomic.Bool
}

// Acquire creates a pool with exactly workerCount workers and starts them.
// It returns an error wrapping ErrWorkerCount if workerCount is not positive.
//
// The workers observe ctx: cancelling it has the same effect as Abort, with
// the caller's cancellation cause propagated to in-flight units.
func Acquire(ctx context.Context, workerCount int, opts ...Option) (*Pool, error) {
	if workerCount < 1 {
		return nil, fmt.Errorf("%w, got %d", ErrWorkerCount, workerCount)
	}

	cfg := newConfig(workerCount, opts...)

	base, abort := context.WithCancelCause(ctx)
	grp, gctx := errgroup.WithContext(base)

	p := &Pool{
		tasks: make(chan Task, cfg.queueSize),
		grp:   grp,
		ctx:   gctx,
		abort: abort,
	}

	for id := range workerCount {
		p.live.Add(1)
		grp.Go(func() error {
			return p.worker(id, cfg.pinWorkers)
		})
	}
	return p, nil
}

// Submit enqueues one unit of work. It blocks while the task queue is full,
// until a worker frees a slot or the pool is torn down.
//
// It returns ErrPoolReleased once teardown has begun, or the pool's
// cancellation cause if the pool context is already done.
func (p *Pool) Submit(t Task) error {
	if p.closed.Load() {
		return ErrPoolReleased
	}
	select {
	case p.tasks <- t:
		return nil
	case <-p.ctx.Done():
		return context.Cause(p.ctx)
	}
}

// Wait performs graceful shutdown: it stops accepting new work, lets the
// workers drain every queued unit, and blocks until all in-flight units have
// finished and every worker has exited.
//
// It returns nil when all units succeeded, or the first unit failure exactly
// as the unit returned it.
func (p *Pool) Wait() error {
	if p.closed.CompareAndSwap(false, true) {
		close(p.tasks)
	}
	err := p.grp.Wait()
	p.abort(nil) // release the context; no-op if already cancelled
	return err
}

// Abort performs abort shutdown: it cancels the pool context so that workers
// exit without draining the queue. Units of work that have not started are
// discarded. Units already running are not interrupted; they keep running in
// the background until their current call returns, and their results are
// dropped (best-effort cancellation).
//
// Abort never blocks and never fails. It is safe to call more than once and
// after Wait; errors raised by the teardown itself are swallowed so they
// cannot mask the failure that triggered the abort.
func (p *Pool) Abort() {
	p.closed.Store(true)
	p.abort(ErrAborted)
}

// Live reports how many worker goroutines have not yet exited. It is zero
// after Wait returns; after Abort it drops to zero as soon as in-flight
// units return.
func (p *Pool) Live() int {
	return int(p.live.Load())
}

// worker executes queued units until the queue is closed and drained
// (graceful path) or the pool context is cancelled (abort, first failure,
// or caller cancellation).
func (p *Pool) worker(id int, pin bool) error {
	defer p.live.Add(-1)

	if pin {
		unpin := cpu.Pin(id)
		defer unpin()
	}

	for {
		select {
		case <-p.ctx.Done():
			return context.Cause(p.ctx)
		case t, ok := <-p.tasks:
			if !ok {
				return nil
			}
			// Both select cases can be ready at once. Never start a unit
			// once the pool is failing or aborted.
			if p.ctx.Err() != nil {
				return context.Cause(p.ctx)
			}
			if err := t(p.ctx); err != nil {
				return err
			}
		}
	}
}
