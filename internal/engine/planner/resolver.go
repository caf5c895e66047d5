// Package planner implements toolchain resolution and invocation-plan
// construction.
package planner

import (
	"go.trai.ch/anvil/internal/core/domain"
	"go.trai.ch/anvil/internal/core/ports"
	"go.trai.ch/zerr"
)

// candidate pairs a compiler executable with the toolchain kind it selects.
type candidate struct {
	Executable string
	Kind       domain.ToolchainKind
}

// searchOrder is the OS-dependent compiler priority table. It is scanned in
// order and the first executable found on the search path wins, so identical
// host state always yields the identical selection.
var searchOrder = map[domain.OSFamily][]candidate{
	domain.OSWindows: {
		{Executable: "cl", Kind: domain.ToolchainMSVC},
		{Executable: "g++", Kind: domain.ToolchainGCC},
		{Executable: "clang++", Kind: domain.ToolchainClang},
	},
	domain.OSLinux: {
		{Executable: "g++", Kind: domain.ToolchainGCC},
		{Executable: "clang++", Kind: domain.ToolchainClang},
	},
	domain.OSOther: {
		{Executable: "g++", Kind: domain.ToolchainGCC},
		{Executable: "clang++", Kind: domain.ToolchainClang},
	},
}

// Resolve scans the OS-ordered candidate table and returns the first
// toolchain whose compiler is on the search path. No candidate found is
// fatal: there is no corrective action without operator intervention.
func Resolve(host domain.HostProfile, locator ports.ToolLocator) (domain.ToolchainKind, error) {
	for _, c := range searchOrder[host.OS] {
		if _, ok := locator.Look(c.Executable); ok {
			return c.Kind, nil
		}
	}
	return domain.ToolchainNone, zerr.With(domain.ErrToolchainNotFound, "os", string(host.OS))
}
