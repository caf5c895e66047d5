// Package config provides the build target configuration loader.
package config

import (
	"os"
	"path/filepath"

	"go.trai.ch/anvil/internal/core/domain"
	"go.trai.ch/anvil/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the target definition file looked up in the working
// directory.
const DefaultFilename = "anvil.yaml"

const (
	defaultBuildDir = "build"
	defaultBinDir   = "bin"
)

// Anvilfile represents the structure of the anvil.yaml configuration file.
type Anvilfile struct {
	Version  string `yaml:"version"`
	Source   string `yaml:"source"`
	BuildDir string `yaml:"build_dir"`
	BinDir   string `yaml:"bin_dir"`
	Output   string `yaml:"output"`
	Resource string `yaml:"resource"`
}

// Loader implements ports.ConfigLoader using a YAML file plus ANVIL_*
// environment overrides.
type Loader struct {
	Filename string
	Environ  []string
}

// NewLoader creates a Loader reading DefaultFilename and the process
// environment.
func NewLoader() *Loader {
	return &Loader{
		Filename: DefaultFilename,
		Environ:  os.Environ(),
	}
}

var _ ports.ConfigLoader = (*Loader)(nil)

// Load reads the target definition from the given working directory,
// applies environment overrides and validates the result.
func (l *Loader) Load(cwd string) (domain.BuildTarget, error) {
	path := filepath.Join(cwd, l.Filename)

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return domain.BuildTarget{}, zerr.Wrap(err, "failed to read config file")
	}

	var file Anvilfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return domain.BuildTarget{}, zerr.Wrap(err, "failed to parse config file")
	}

	target := domain.BuildTarget{
		SourcePath:     file.Source,
		BuildDir:       file.BuildDir,
		BinDir:         file.BinDir,
		OutputName:     file.Output,
		ResourceScript: file.Resource,
	}

	if err := applyEnv(&target, l.Environ); err != nil {
		return domain.BuildTarget{}, err
	}

	if target.BuildDir == "" {
		target.BuildDir = defaultBuildDir
	}
	if target.BinDir == "" {
		target.BinDir = defaultBinDir
	}

	if err := validate(target); err != nil {
		return domain.BuildTarget{}, err
	}

	return target, nil
}

func validate(t domain.BuildTarget) error {
	if t.SourcePath == "" {
		return zerr.With(domain.ErrInvalidTarget, "missing_field", "source")
	}
	if t.OutputName == "" {
		return zerr.With(domain.ErrInvalidTarget, "missing_field", "output")
	}
	return nil
}
