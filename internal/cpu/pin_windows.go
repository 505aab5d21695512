//go:build windows

package cpu

import (
	"runtime"
	"syscall"
)

var (
	kernel32              = syscall.NewLazyDLL("kernel32.dll")
	setThreadAffinityMask = kernel32.NewProc("SetThreadAffinityMask")
	getCurrentThread      = kernel32.NewProc("GetCurrentThread")
)

// Pin locks the calling goroutine to an OS thread and pins that thread to
// the CPU core workerID maps onto (modulo the core count). The returned
// function undoes the thread lock; affinity errors are ignored since pinning
// is a locality optimization, not a correctness requirement.
func Pin(workerID int) func() {
	runtime.LockOSThread()

	core := workerID % runtime.NumCPU()
	handle, _, _ := getCurrentThread.Call()
	// Bit N of the mask selects CPU N.
	_, _, _ = setThreadAffinityMask.Call(handle, uintptr(1)<<core)

	return runtime.UnlockOSThread
}
