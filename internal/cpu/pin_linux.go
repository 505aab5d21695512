//go:build linux

package cpu

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// Pin locks the calling goroutine to an OS thread and pins that thread to
// the CPU core workerID maps onto (modulo the core count). The returned
// function undoes the thread lock; affinity errors are ignored since pinning
// is a locality optimization, not a correctness requirement.
func Pin(workerID int) func() {
	runtime.LockOSThread()

	core := workerID % runtime.NumCPU()
	var mask unix.CPUSet
	mask.Zero()
	mask.Set(core)
	_ = unix.SchedSetaffinity(0, &mask) // 0 = current thread

	return runtime.UnlockOSThread
}
