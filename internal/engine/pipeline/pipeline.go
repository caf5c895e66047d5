// Package pipeline implements the single-shot build run: probe, resolve,
// plan, execute, receipt.
package pipeline

import (
	"context"
	"os"
	"time"

	"go.trai.ch/anvil/internal/core/domain"
	"go.trai.ch/anvil/internal/core/ports"
	"go.trai.ch/anvil/internal/engine/planner"
	"go.trai.ch/zerr"
)

// Phase identifies a stage of a build run.
type Phase string

const (
	// PhaseIdle is the state before Run is called.
	PhaseIdle Phase = "idle"
	// PhaseProbing is the host inspection stage.
	PhaseProbing Phase = "probing"
	// PhaseResolving is the toolchain resolution stage.
	PhaseResolving Phase = "toolchain-resolution"
	// PhasePlanning is the plan construction stage.
	PhasePlanning Phase = "plan-construction"
	// PhaseExecuting is the sequential command execution stage.
	PhaseExecuting Phase = "executing"
	// PhaseDone is the terminal success state.
	PhaseDone Phase = "done"
	// PhaseFailed is the terminal failure state.
	PhaseFailed Phase = "failed"
)

// Result reports a completed build run.
type Result struct {
	Host     domain.HostProfile
	Plan     domain.InvocationPlan
	Output   string
	Duration time.Duration
}

// Pipeline drives one build run from probe to receipt. A Pipeline is
// single-shot: no transition re-enters an earlier phase and Run must not be
// called twice.
type Pipeline struct {
	prober    ports.Prober
	planner   *planner.Planner
	runner    ports.CommandRunner
	telemetry ports.Telemetry
	receipts  ports.ReceiptStore
	logger    ports.Logger

	phase Phase
}

// New creates a new Pipeline.
func New(
	prober ports.Prober,
	plnr *planner.Planner,
	runner ports.CommandRunner,
	telemetry ports.Telemetry,
	receipts ports.ReceiptStore,
	logger ports.Logger,
) *Pipeline {
	return &Pipeline{
		prober:    prober,
		planner:   plnr,
		runner:    runner,
		telemetry: telemetry,
		receipts:  receipts,
		logger:    logger,
		phase:     PhaseIdle,
	}
}

// Phase returns the current phase of the run.
func (p *Pipeline) Phase() Phase {
	return p.phase
}

// Plan probes the host and constructs the invocation plan without executing
// it. Used for dry runs and host inspection.
func (p *Pipeline) Plan(ctx context.Context, target domain.BuildTarget) (domain.HostProfile, domain.InvocationPlan, error) {
	p.phase = PhaseProbing
	host := p.prober.Probe(ctx)

	p.phase = PhaseResolving
	kind, err := p.planner.Resolve(host)
	if err != nil {
		p.phase = PhaseFailed
		return host, domain.InvocationPlan{}, err
	}

	p.phase = PhasePlanning
	plan, err := p.planner.PlanFor(host, kind, target)
	if err != nil {
		p.phase = PhaseFailed
		return host, domain.InvocationPlan{}, err
	}

	return host, plan, nil
}

// Run executes one full build. Commands run strictly sequentially; the
// first failure aborts the remaining plan. On success the receipt is
// written and the final output path reported.
func (p *Pipeline) Run(ctx context.Context, target domain.BuildTarget) (*Result, error) {
	start := time.Now()

	host, plan, err := p.Plan(ctx, target)
	if err != nil {
		return nil, err
	}

	if err := createDirs(target); err != nil {
		p.phase = PhaseFailed
		return nil, err
	}

	p.phase = PhaseExecuting
	for _, cmd := range plan.Commands {
		if err := p.execute(ctx, cmd); err != nil {
			p.phase = PhaseFailed
			return nil, err
		}
	}

	p.phase = PhaseDone
	p.writeReceipt(host, plan, time.Since(start))

	return &Result{
		Host:     host,
		Plan:     plan,
		Output:   plan.Output,
		Duration: time.Since(start),
	}, nil
}

// execute runs a single command under a telemetry vertex and classifies its
// failure by command role.
func (p *Pipeline) execute(ctx context.Context, cmd domain.Command) error {
	ctx, vertex := p.telemetry.Record(ctx, cmd.String())

	err := p.runner.Run(ctx, cmd, vertex.Stdout(), vertex.Stderr())
	vertex.Complete(err)
	if err == nil {
		return nil
	}

	// Compiler failures are deterministic given the same environment; no
	// retry can succeed without operator change.
	kind := domain.ErrCompileFailed
	if cmd.Role == domain.RoleResourceCompile {
		kind = domain.ErrResourceCompileFailed
	}
	return zerr.With(zerr.Wrap(kind, err.Error()), "command", cmd.String())
}

// createDirs creates the build and binaries directories idempotently.
func createDirs(target domain.BuildTarget) error {
	for _, dir := range []string{target.BuildDir, target.BinDir} {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to create directory"), "dir", dir)
		}
	}
	return nil
}

// writeReceipt records the successful run. Receipt failures never fail a
// build that already produced its artifact.
func (p *Pipeline) writeReceipt(host domain.HostProfile, plan domain.InvocationPlan, elapsed time.Duration) {
	err := p.receipts.Put(domain.BuildReceipt{
		Toolchain:  plan.Toolchain,
		Host:       host.String(),
		OutputPath: plan.Output,
		Duration:   elapsed,
		Timestamp:  time.Now(),
	})
	if err != nil {
		p.logger.Warn("failed to write build receipt: " + err.Error())
	}
}
