package pool

import (
	"errors"
	"fmt"
)

var (
	// ErrWorkerCount is returned by Acquire when the requested worker count
	// is not a positive integer.
	ErrWorkerCount = errors.New("pool: worker count must be positive")

	// ErrPoolReleased is returned by Submit once teardown of the pool has
	// begun via Wait or Abort.
	ErrPoolReleased = errors.New("pool: pool already released")

	// ErrAborted is the cancellation cause installed by Abort. Units of work
	// that inspect their context during an abort observe it through
	// context.Cause.
	ErrAborted = errors.New("pool: pool aborted")

	// ErrTimeout is wrapped by Map failures caused by an expired WithTimeout
	// bound. Use errors.Is(err, ErrTimeout) to tell timeouts apart from unit
	// failures; a unit's own error is never wrapped in ErrTimeout.
	ErrTimeout = errors.New("pool: timed out waiting for results")
)

// PanicError is the unit failure produced when a unit of work panics. The
// panic is recovered on the worker so it cannot crash the pool, and surfaces
// as an ordinary first-failure with the panic value and captured stack.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("pool: unit of work panicked: %v\n%s", e.Value, e.Stack)
}
