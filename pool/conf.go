package pool

import "time"

// Option is a functional option accepted by Acquire and the Map family of
// calls. Options that do not apply to the receiving call are ignored.
type Option func(*config)

type config struct {
	maxWorkers int
	queueSize  int
	timeout    time.Duration
	pinWorkers bool
	onUnitDone func(index int, err error)
}

// newConfig builds the effective configuration. workerCount is used as the
// default task queue capacity, so a full complement of units can be staged
// without blocking the submitter.
func newConfig(workerCount int, opts ...Option) *config {
	cfg := &config{queueSize: workerCount}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithMaxWorkers bounds how many units of work may execute concurrently.
//
// If not set, Map sizes the pool to one worker per unit of work, i.e. fully
// parallel. That default matches the workload rather than the machine and
// can oversubscribe scheduler threads for large inputs; callers with big or
// unbounded inputs should set an explicit bound. Values below 1 are ignored.
func WithMaxWorkers(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.maxWorkers = n
		}
	}
}

// WithTimeout bounds the total wall-clock time Map waits for all results.
// Past the bound the call fails with an error satisfying
// errors.Is(err, ErrTimeout) and the pool is aborted rather than drained.
// Zero or negative durations are ignored (no bound).
func WithTimeout(d time.Duration) Option {
	return func(cfg *config) {
		if d > 0 {
			cfg.timeout = d
		}
	}
}

// WithQueueSize sets the capacity of the pool's task queue for Acquire.
// Submit blocks while the queue is full. If not specified, the queue holds
// one task per worker. Negative sizes are ignored.
func WithQueueSize(n int) Option {
	return func(cfg *config) {
		if n >= 0 {
			cfg.queueSize = n
		}
	}
}

// WithPinnedWorkers locks each worker goroutine to an OS thread and pins it
// to a CPU core. Useful for CPU-bound units that benefit from cache
// locality; a no-op on platforms without affinity control.
func WithPinnedWorkers() Option {
	return func(cfg *config) {
		cfg.pinWorkers = true
	}
}

// WithOnUnitDone registers a hook invoked after each unit of work completes,
// with the unit's input index and its error (nil on success).
//
// The hook is called from worker goroutines and must be safe for concurrent
// use. On failure or timeout paths, units already in flight keep running in
// the background, so the hook may still fire after Map has returned.
func WithOnUnitDone(fn func(index int, err error)) Option {
	return func(cfg *config) {
		cfg.onUnitDone = fn
	}
}
