package shell

import (
	"context"
	"errors"
	"io"
	"os/exec"

	"go.trai.ch/anvil/internal/core/domain"
	"go.trai.ch/anvil/internal/core/ports"
	"go.trai.ch/zerr"
)

// Runner implements ports.CommandRunner using os/exec.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{logger: logger}
}

var _ ports.CommandRunner = (*Runner)(nil)

// Run invokes the command synchronously. The context interrupts the child
// process when cancelled. A launch failure or non-zero exit is returned
// with the exit code attached; -1 means the process did not exit normally.
func (r *Runner) Run(ctx context.Context, cmd domain.Command, stdout, stderr io.Writer) error {
	r.logger.Info("running: " + cmd.String())

	proc := exec.CommandContext(ctx, cmd.Path, cmd.Args...) //nolint:gosec // plan commands are built from fixed tables
	proc.Stdout = stdout
	proc.Stderr = stderr

	if err := proc.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return zerr.With(zerr.With(zerr.Wrap(err, "command failed"),
			"command", cmd.String(),
		), "exit_code", exitCode)
	}

	return nil
}
