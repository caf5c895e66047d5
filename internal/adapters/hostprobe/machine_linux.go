//go:build linux

package hostprobe

import (
	"runtime"

	"golang.org/x/sys/unix"
)

func hostGOOS() string {
	return runtime.GOOS
}

// machineString returns the kernel-reported machine field from uname(2),
// e.g. "x86_64", "aarch64" or "armv7l". On failure it falls back to the
// GOARCH mapping; the probe itself must never fail.
func machineString() string {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return goarchMachine(runtime.GOARCH)
	}
	return unix.ByteSliceToString(uts.Machine[:])
}
