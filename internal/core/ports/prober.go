// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/anvil/internal/core/domain"
)

// Prober inspects the host machine.
//
//go:generate go run go.uber.org/mock/mockgen -source=prober.go -destination=mocks/mock_prober.go -package=mocks
type Prober interface {
	// Probe returns the host profile. It never fails: absence of
	// identifying information degrades to a conservative default.
	Probe(ctx context.Context) domain.HostProfile
}
