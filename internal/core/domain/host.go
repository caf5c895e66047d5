// Package domain contains the core value types for toolchain resolution and
// invocation planning.
package domain

// OSFamily classifies the host operating system.
type OSFamily string

const (
	// OSWindows covers all Windows hosts.
	OSWindows OSFamily = "windows"
	// OSLinux covers all Linux hosts.
	OSLinux OSFamily = "linux"
	// OSOther is the conservative default for everything else.
	OSOther OSFamily = "other"
)

// CPUTuning names a microarchitecture-specific code generation profile.
type CPUTuning string

const (
	// TuningGeneric means no tuning flag is emitted.
	TuningGeneric CPUTuning = "generic"
	// TuningCortexA72 targets Cortex-A72 cores (BCM2711 class hardware).
	TuningCortexA72 CPUTuning = "cortex-a72"
	// TuningCortexA76 targets Cortex-A76 cores (BCM2712 class hardware).
	TuningCortexA76 CPUTuning = "cortex-a76"
)

// HostProfile describes the probed host machine.
// It is created once per run and never mutated.
type HostProfile struct {
	OS      OSFamily
	RawArch string
	IsARM   bool
	Is64Bit bool
	Tuning  CPUTuning
}

// String renders the profile in a compact os/arch form for diagnostics.
func (p HostProfile) String() string {
	s := string(p.OS) + "/" + p.RawArch
	if p.Tuning != "" && p.Tuning != TuningGeneric {
		s += " (" + string(p.Tuning) + ")"
	}
	return s
}
