package hostprobe_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/anvil/internal/adapters/hostprobe"
	"go.trai.ch/anvil/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestProbe_ARMClassification(t *testing.T) {
	tests := []struct {
		machine string
		isARM   bool
	}{
		{"aarch64", true},
		{"arm64", true},
		{"armv8", true},
		{"armv7", true},
		{"armv7l", true},
		{"armv6", true},
		{"armv6l", true},
		{"x86_64", false},
		{"i686", false},
		{"amd64", false},
		{"riscv64", false},
	}

	for _, tt := range tests {
		t.Run(tt.machine, func(t *testing.T) {
			profile := hostprobe.Probe(hostprobe.Input{GOOS: "linux", Machine: tt.machine})
			assert.Equal(t, tt.isARM, profile.IsARM)
		})
	}
}

func TestProbe_WordWidthClassification(t *testing.T) {
	tests := []struct {
		machine string
		is64Bit bool
	}{
		{"x86_64", true},
		{"aarch64", true},
		{"arm64", true},
		{"amd64", true},
		{"riscv64", true},
		{"armv7l", false},
		{"armv6l", false},
		{"i686", false},
	}

	for _, tt := range tests {
		t.Run(tt.machine, func(t *testing.T) {
			profile := hostprobe.Probe(hostprobe.Input{GOOS: "linux", Machine: tt.machine})
			assert.Equal(t, tt.is64Bit, profile.Is64Bit)
		})
	}
}

func TestProbe_NormalizesMachineIdentifier(t *testing.T) {
	profile := hostprobe.Probe(hostprobe.Input{GOOS: "linux", Machine: "  AArch64\n"})

	assert.Equal(t, "aarch64", profile.RawArch)
	assert.True(t, profile.IsARM)
	assert.True(t, profile.Is64Bit)
}

func TestProbe_OSFamily(t *testing.T) {
	assert.Equal(t, domain.OSWindows, hostprobe.Probe(hostprobe.Input{GOOS: "windows", Machine: "amd64"}).OS)
	assert.Equal(t, domain.OSLinux, hostprobe.Probe(hostprobe.Input{GOOS: "linux", Machine: "x86_64"}).OS)
	assert.Equal(t, domain.OSOther, hostprobe.Probe(hostprobe.Input{GOOS: "darwin", Machine: "arm64"}).OS)
	assert.Equal(t, domain.OSOther, hostprobe.Probe(hostprobe.Input{GOOS: "", Machine: "x86_64"}).OS)
}

func TestProbe_TuningMarkers(t *testing.T) {
	tests := []struct {
		name    string
		cpuinfo string
		want    domain.CPUTuning
	}{
		{"bcm2711", "Hardware\t: BCM2711\n", domain.TuningCortexA72},
		{"cortex_a72_part", "CPU part\t: 0xd08\nmodel name\t: Cortex-A72\n", domain.TuningCortexA72},
		{"bcm2712", "Hardware\t: BCM2712\n", domain.TuningCortexA76},
		{"cortex_a76_part", "model name\t: Cortex-A76\n", domain.TuningCortexA76},
		{"unknown_armv8", "model name\t: Neoverse-N1\n", domain.TuningGeneric},
		{"case_sensitive", "hardware: bcm2711\n", domain.TuningGeneric},
		{"empty", "", domain.TuningGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := hostprobe.Probe(hostprobe.Input{
				GOOS:    "linux",
				Machine: "aarch64",
				ReadCPUInfo: func() ([]byte, error) {
					return []byte(tt.cpuinfo), nil
				},
			})
			assert.Equal(t, tt.want, profile.Tuning)
		})
	}
}

func TestProbe_UnreadableCPUInfoDegradesToGeneric(t *testing.T) {
	profile := hostprobe.Probe(hostprobe.Input{
		GOOS:    "linux",
		Machine: "aarch64",
		ReadCPUInfo: func() ([]byte, error) {
			return nil, zerr.New("no such file or directory")
		},
	})

	assert.Equal(t, domain.TuningGeneric, profile.Tuning)
	assert.True(t, profile.IsARM)
	assert.True(t, profile.Is64Bit)
}

func TestProbe_TuningOnlyOn64BitARMLinux(t *testing.T) {
	read := func() ([]byte, error) { return []byte("Hardware: BCM2711"), nil }

	// 32-bit ARM gets no tuning even with a matching marker.
	armv7 := hostprobe.Probe(hostprobe.Input{GOOS: "linux", Machine: "armv7l", ReadCPUInfo: read})
	assert.Equal(t, domain.TuningGeneric, armv7.Tuning)

	// Non-Linux gets no tuning.
	other := hostprobe.Probe(hostprobe.Input{GOOS: "darwin", Machine: "arm64", ReadCPUInfo: read})
	assert.Equal(t, domain.TuningGeneric, other.Tuning)

	// Non-ARM gets no tuning.
	x86 := hostprobe.Probe(hostprobe.Input{GOOS: "linux", Machine: "x86_64", ReadCPUInfo: read})
	assert.Equal(t, domain.TuningGeneric, x86.Tuning)
}

func TestProbe_NilCPUInfoReader(t *testing.T) {
	profile := hostprobe.Probe(hostprobe.Input{GOOS: "linux", Machine: "aarch64"})
	assert.Equal(t, domain.TuningGeneric, profile.Tuning)
}
