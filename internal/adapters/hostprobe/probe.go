// Package hostprobe provides the environment probe adapter.
//
// Classification is a pure function over injected inputs; the thin
// collectors that gather those inputs from the running host live in the
// platform-specific files of this package.
package hostprobe

import (
	"context"
	"os"
	"strings"

	"go.trai.ch/anvil/internal/core/domain"
	"go.trai.ch/anvil/internal/core/ports"
)

// cpuInfoPath is the Linux CPU-identification source.
const cpuInfoPath = "/proc/cpuinfo"

// armIdentifierPrefixes is the ordered set of machine-identifier prefixes
// classified as ARM. The prefix policy intentionally tolerates suffixed
// variants such as "armv7l".
var armIdentifierPrefixes = []string{
	"aarch64",
	"arm64",
	"armv8",
	"armv7",
	"armv6",
}

// tuningMarker maps a case-sensitive hardware marker found in CPU-info text
// to a tuning profile.
type tuningMarker struct {
	Marker string
	Tuning domain.CPUTuning
}

// tuningMarkers is scanned in order; the first match wins. This is a narrow
// heuristic for known boards, not a general CPU-identification scheme: all
// other ARMv8 silicon stays on the generic profile.
var tuningMarkers = []tuningMarker{
	{Marker: "BCM2711", Tuning: domain.TuningCortexA72},
	{Marker: "Cortex-A72", Tuning: domain.TuningCortexA72},
	{Marker: "BCM2712", Tuning: domain.TuningCortexA76},
	{Marker: "Cortex-A76", Tuning: domain.TuningCortexA76},
}

// Input carries everything Probe needs, injected so classification is pure.
type Input struct {
	// GOOS is the runtime operating system identifier.
	GOOS string
	// Machine is the raw machine identifier reported by the host.
	Machine string
	// ReadCPUInfo reads the CPU-identification text. May be nil.
	ReadCPUInfo func() ([]byte, error)
}

// Probe classifies the injected host information. It never fails: an
// unreadable CPU-info source or an unrecognized machine string degrades to
// the conservative default, not an error.
func Probe(in Input) domain.HostProfile {
	machine := strings.ToLower(strings.TrimSpace(in.Machine))

	profile := domain.HostProfile{
		OS:      classifyOS(in.GOOS),
		RawArch: machine,
		IsARM:   isARM(machine),
		Is64Bit: is64Bit(machine),
		Tuning:  domain.TuningGeneric,
	}

	if profile.IsARM && profile.Is64Bit && profile.OS == domain.OSLinux && in.ReadCPUInfo != nil {
		if text, err := in.ReadCPUInfo(); err == nil {
			profile.Tuning = matchTuning(string(text))
		}
	}

	return profile
}

func classifyOS(goos string) domain.OSFamily {
	switch goos {
	case "windows":
		return domain.OSWindows
	case "linux":
		return domain.OSLinux
	default:
		return domain.OSOther
	}
}

func isARM(machine string) bool {
	for _, prefix := range armIdentifierPrefixes {
		if strings.HasPrefix(machine, prefix) {
			return true
		}
	}
	return false
}

func is64Bit(machine string) bool {
	return strings.Contains(machine, "64") || machine == "aarch64" || machine == "arm64"
}

// matchTuning scans the CPU-info text for known hardware markers.
// Matching is case-sensitive by design; kernel cpuinfo markers are stable.
func matchTuning(text string) domain.CPUTuning {
	for _, m := range tuningMarkers {
		if strings.Contains(text, m.Marker) {
			return m.Tuning
		}
	}
	return domain.TuningGeneric
}

// Prober implements ports.Prober against the running host.
type Prober struct {
	logger ports.Logger
}

// NewProber creates a new host Prober.
func NewProber(logger ports.Logger) *Prober {
	return &Prober{logger: logger}
}

var _ ports.Prober = (*Prober)(nil)

// Probe collects the host's machine identifier and CPU-info source and
// classifies them.
func (p *Prober) Probe(_ context.Context) domain.HostProfile {
	profile := Probe(Input{
		GOOS:    hostGOOS(),
		Machine: machineString(),
		ReadCPUInfo: func() ([]byte, error) {
			return os.ReadFile(cpuInfoPath)
		},
	})
	p.logger.Info("host probed: " + profile.String())
	return profile
}
