//go:build linux

package tactile

import (
	"golang.org/x/sys/unix"
)

// lockMemory keeps the process resident so the real-time loop never
// waits on a page fault.  Usually needs CAP_IPC_LOCK or a raised
// RLIMIT_MEMLOCK.
func lockMemory() error {
	return unix.Mlockall(unix.MCL_CURRENT | unix.MCL_FUTURE)
}
