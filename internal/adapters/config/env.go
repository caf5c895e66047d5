package config

import (
	"github.com/caarlos0/env/v11"
	"go.trai.ch/anvil/internal/core/domain"
	"go.trai.ch/zerr"
)

// overrides holds the ANVIL_* environment variables that take precedence
// over the file values.
type overrides struct {
	Source   string `env:"ANVIL_SOURCE"`
	BuildDir string `env:"ANVIL_BUILD_DIR"`
	BinDir   string `env:"ANVIL_BIN_DIR"`
	Output   string `env:"ANVIL_OUTPUT"`
	Resource string `env:"ANVIL_RESOURCE"`
}

func applyEnv(target *domain.BuildTarget, environ []string) error {
	var o overrides
	err := env.ParseWithOptions(&o, env.Options{
		Environment: env.ToMap(environ),
	})
	if err != nil {
		return zerr.Wrap(err, "failed to parse environment overrides")
	}

	if o.Source != "" {
		target.SourcePath = o.Source
	}
	if o.BuildDir != "" {
		target.BuildDir = o.BuildDir
	}
	if o.BinDir != "" {
		target.BinDir = o.BinDir
	}
	if o.Output != "" {
		target.OutputName = o.Output
	}
	if o.Resource != "" {
		target.ResourceScript = o.Resource
	}
	return nil
}
