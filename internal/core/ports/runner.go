package ports

import (
	"context"
	"io"

	"go.trai.ch/anvil/internal/core/domain"
)

// CommandRunner executes a single plan command synchronously.
//
//go:generate go run go.uber.org/mock/mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type CommandRunner interface {
	// Run invokes the command and blocks until it exits. Command output is
	// streamed to stdout/stderr. A non-zero exit or launch failure is
	// returned as an error carrying the exit code.
	Run(ctx context.Context, cmd domain.Command, stdout, stderr io.Writer) error
}
