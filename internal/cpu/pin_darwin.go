//go:build darwin

package cpu

import "runtime"

// Pin locks the calling goroutine to an OS thread. macOS offers no public
// thread affinity control, so the thread lock is all we get.
func Pin(workerID int) func() {
	runtime.LockOSThread()
	return runtime.UnlockOSThread
}
