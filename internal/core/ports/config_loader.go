package ports

import "go.trai.ch/anvil/internal/core/domain"

// ConfigLoader loads the build target definition.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the target definition from the given working directory.
	Load(cwd string) (domain.BuildTarget, error)
}
