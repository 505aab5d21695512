package pool

import (
	"context"
	"runtime"
)

// runUnit invokes one unit of work with panic containment. A panicking unit
// becomes a *PanicError carrying the panic value and a captured stack trace,
// and propagates like any other unit failure.
func runUnit[T, R any](ctx context.Context, fn UnitFunc[T, R], item T) (result R, err error) {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			err = &PanicError{Value: r, Stack: buf[:n]}
		}
	}()

	return fn(ctx, item)
}
