//go:build !linux

package hostprobe

import "runtime"

func hostGOOS() string {
	return runtime.GOOS
}

// machineString derives the machine identifier from GOARCH on platforms
// without a uname machine field worth consulting.
func machineString() string {
	return goarchMachine(runtime.GOARCH)
}
