package planner

import (
	"os"

	"go.trai.ch/anvil/internal/core/domain"
	"go.trai.ch/anvil/internal/core/ports"
	"go.trai.ch/zerr"
)

// tuningFlags maps a non-generic tuning profile to its compiler flag.
// TuningGeneric is deliberately absent: no tuning flag is emitted for it.
var tuningFlags = map[domain.CPUTuning]string{
	domain.TuningCortexA72: "-mtune=cortex-a72",
	domain.TuningCortexA76: "-mtune=cortex-a76",
}

// armv7Flags is the fixed architecture/FPU/float-ABI triple for 32-bit ARM.
// The 32-bit path is coarse by design: no further tuning branching.
var armv7Flags = []string{"-march=armv7-a", "-mfpu=neon-vfpv4", "-mfloat-abi=hard"}

// Planner resolves the toolchain and constructs invocation plans.
type Planner struct {
	locator ports.ToolLocator

	// fileExists gates the optional resource-compile command. Overridable
	// in tests.
	fileExists func(path string) bool
}

// NewPlanner creates a new Planner.
func NewPlanner(locator ports.ToolLocator) *Planner {
	return &Planner{
		locator: locator,
		fileExists: func(path string) bool {
			_, err := os.Stat(path)
			return err == nil
		},
	}
}

// Resolve selects the toolchain for the host.
func (p *Planner) Resolve(host domain.HostProfile) (domain.ToolchainKind, error) {
	return Resolve(host, p.locator)
}

// PlanFor constructs the invocation plan for an already resolved toolchain.
// The resource-compile command is gated on the declared script actually
// existing on disk.
func (p *Planner) PlanFor(host domain.HostProfile, kind domain.ToolchainKind, target domain.BuildTarget) (domain.InvocationPlan, error) {
	withResource := target.ResourceScript != "" && p.fileExists(target.ResourceScript)
	return BuildPlan(host, kind, target, withResource)
}

// Plan resolves the toolchain for the host and constructs the invocation
// plan for the target.
func (p *Planner) Plan(host domain.HostProfile, target domain.BuildTarget) (domain.InvocationPlan, error) {
	kind, err := p.Resolve(host)
	if err != nil {
		return domain.InvocationPlan{}, err
	}
	return p.PlanFor(host, kind, target)
}

// BuildPlan constructs the invocation plan. It is pure: identical inputs
// yield byte-identical command sequences, independent of actually running
// them.
func BuildPlan(
	host domain.HostProfile,
	kind domain.ToolchainKind,
	target domain.BuildTarget,
	withResource bool,
) (domain.InvocationPlan, error) {
	switch kind {
	case domain.ToolchainMSVC:
		return msvcPlan(target, withResource), nil
	case domain.ToolchainGCC, domain.ToolchainClang:
		return gccClangPlan(host, kind, target), nil
	default:
		return domain.InvocationPlan{}, zerr.With(domain.ErrToolchainNotFound, "kind", string(kind))
	}
}

// msvcPlan emits the optional resource-compile command followed by the
// compile+link command. The flag set is fixed and order-significant.
func msvcPlan(target domain.BuildTarget, withResource bool) domain.InvocationPlan {
	var cmds []domain.Command

	if withResource {
		var args domain.ArgList
		args.Add(domain.FlagOutput, "/fo"+target.ResourceObject()).
			Add(domain.FlagSource, target.ResourceScript)
		cmds = append(cmds, domain.Command{
			Role:     domain.RoleResourceCompile,
			Path:     "rc",
			Args:     args.Strings(),
			Produces: target.ResourceObject(),
		})
	}

	out := target.OutputFile(domain.OSWindows)

	var args domain.ArgList
	args.Add(domain.FlagOutput, "/Fo"+target.ObjectFile()).
		Add(domain.FlagOutput, "/Fe"+out).
		Add(domain.FlagSource, target.SourcePath)
	if withResource {
		args.Add(domain.FlagResource, target.ResourceObject())
	}
	args.Add(domain.FlagStandard, "/std:c++17", "/EHsc").
		Add(domain.FlagDiagnostics, "/W4", "/WX").
		Add(domain.FlagOptimize, "/O2").
		Add(domain.FlagDefine, "/DNDEBUG").
		Add(domain.FlagLinker, "/link", "/SUBSYSTEM:WINDOWS", "/RELEASE", "/GUARD:CF", "/NXCOMPAT", "/DYNAMICBASE")

	cmds = append(cmds, domain.Command{
		Role:     domain.RoleCompile,
		Path:     "cl",
		Args:     args.Strings(),
		Produces: out,
	})

	return domain.InvocationPlan{
		Toolchain: domain.ToolchainMSVC,
		Commands:  cmds,
		Output:    out,
	}
}

// gccClangPlan emits the single compile+link command for GCC or Clang,
// with Linux thread linking and ARM architecture/tuning selection.
func gccClangPlan(host domain.HostProfile, kind domain.ToolchainKind, target domain.BuildTarget) domain.InvocationPlan {
	out := target.OutputFile(host.OS)

	var args domain.ArgList
	args.Add(domain.FlagSource, target.SourcePath).
		Add(domain.FlagOutput, "-o", out).
		Add(domain.FlagStandard, "-std=c++17").
		Add(domain.FlagDiagnostics, "-Wall", "-Wextra", "-Werror").
		Add(domain.FlagOptimize, "-O2").
		Add(domain.FlagDefine, "-DNDEBUG")

	if host.OS == domain.OSLinux {
		args.Add(domain.FlagLinker, "-pthread")

		if host.IsARM {
			if host.Is64Bit {
				args.Add(domain.FlagArch, "-march=armv8-a")
				if flag, ok := tuningFlags[host.Tuning]; ok {
					args.Add(domain.FlagTuning, flag)
				}
			} else {
				args.Add(domain.FlagArch, armv7Flags...)
			}
		}
	}

	return domain.InvocationPlan{
		Toolchain: kind,
		Commands: []domain.Command{{
			Role:     domain.RoleCompile,
			Path:     kind.Compiler(),
			Args:     args.Strings(),
			Produces: out,
		}},
		Output: out,
	}
}
