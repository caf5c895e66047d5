// Package app implements the application layer for anvil.
package app

import (
	"context"
	"os"

	"go.trai.ch/anvil/internal/adapters/config"
	"go.trai.ch/anvil/internal/core/domain"
	"go.trai.ch/anvil/internal/core/ports"
	"go.trai.ch/anvil/internal/engine/pipeline"
	"go.trai.ch/anvil/internal/engine/planner"
	"go.trai.ch/anvil/internal/ui/output"
	"go.trai.ch/zerr"
)

// RunOptions carries the per-invocation flags for a build.
type RunOptions struct {
	// DryRun prints the invocation plan without executing it.
	DryRun bool
	// ConfigFile overrides the default target definition filename.
	ConfigFile string
}

// App represents the main application logic.
type App struct {
	loader   ports.ConfigLoader
	prober   ports.Prober
	planner  *planner.Planner
	pipeline *pipeline.Pipeline
	printer  *output.Printer
}

// New creates a new App instance.
func New(loader ports.ConfigLoader, prober ports.Prober, plnr *planner.Planner, pipe *pipeline.Pipeline, printer *output.Printer) *App {
	return &App{
		loader:   loader,
		prober:   prober,
		planner:  plnr,
		pipeline: pipe,
		printer:  printer,
	}
}

// Build loads the target definition and runs one build for the current host.
// With DryRun set, the invocation plan is printed instead of executed.
func (a *App) Build(ctx context.Context, opts RunOptions) error {
	target, err := a.loadTarget(opts)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	if opts.DryRun {
		host, plan, err := a.pipeline.Plan(ctx, target)
		if err != nil {
			return err
		}
		a.printer.Plan(host, plan)
		return nil
	}

	result, err := a.pipeline.Run(ctx, target)
	if err != nil {
		a.printer.Failure(err)
		return err
	}

	a.printer.Success(result.Plan.Toolchain, result.Output, result.Duration)
	return nil
}

// Probe prints the detected host profile and the toolchain that a build
// would use, without building anything.
func (a *App) Probe(ctx context.Context) error {
	host := a.prober.Probe(ctx)
	a.printer.Host(host)

	kind, err := a.planner.Resolve(host)
	if err != nil {
		kind = domain.ToolchainNone
	}
	a.printer.Toolchain(kind)
	return nil
}

func (a *App) loadTarget(opts RunOptions) (domain.BuildTarget, error) {
	loader := a.loader
	if opts.ConfigFile != "" {
		loader = &config.Loader{Filename: opts.ConfigFile, Environ: os.Environ()}
	}
	return loader.Load(".")
}
