// Package output renders user-facing build results to the terminal.
package output

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gookit/color"
	"go.trai.ch/anvil/internal/core/domain"
)

// Printer writes human-readable result lines. Diagnostic logging and the
// detailed error report go to the error stream separately.
type Printer struct {
	w io.Writer
}

// New creates a Printer writing to w. A nil writer defaults to stdout.
// Colors are disabled when NO_COLOR is set.
func New(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	if os.Getenv("NO_COLOR") != "" {
		color.Disable()
	}
	return &Printer{w: w}
}

// Host prints the probed host profile.
func (p *Printer) Host(host domain.HostProfile) {
	_, _ = fmt.Fprintf(p.w, "%s %s\n", color.Info.Sprint("host:"), host.String())
}

// Toolchain prints the resolved toolchain kind.
func (p *Printer) Toolchain(kind domain.ToolchainKind) {
	_, _ = fmt.Fprintf(p.w, "%s %s\n", color.Info.Sprint("toolchain:"), kind)
}

// Plan prints the invocation plan without executing it.
func (p *Printer) Plan(host domain.HostProfile, plan domain.InvocationPlan) {
	p.Host(host)
	p.Toolchain(plan.Toolchain)
	for _, cmd := range plan.Commands {
		_, _ = fmt.Fprintf(p.w, "  %s\n", cmd.String())
	}
}

// Success prints the final success line for a completed build.
func (p *Printer) Success(toolchain domain.ToolchainKind, outputPath string, elapsed time.Duration) {
	_, _ = fmt.Fprintf(p.w, "%s built %s with %s in %s\n",
		color.Success.Sprint("ok:"), outputPath, toolchain, elapsed.Round(time.Millisecond))
}

// Failure prints the final failure line.
func (p *Printer) Failure(err error) {
	_, _ = fmt.Fprintf(p.w, "%s %s\n", color.Danger.Sprint("failed:"), err.Error())
}
