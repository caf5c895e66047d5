// Package shell provides the process-boundary adapters: executable lookup
// and synchronous command execution.
package shell

import (
	"os/exec"

	"go.trai.ch/anvil/internal/core/ports"
)

// Locator implements ports.ToolLocator using exec.LookPath.
type Locator struct{}

// NewLocator creates a new Locator.
func NewLocator() *Locator {
	return &Locator{}
}

var _ ports.ToolLocator = (*Locator)(nil)

// Look resolves an executable name against the search path.
func (l *Locator) Look(name string) (string, bool) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", false
	}
	return path, true
}
