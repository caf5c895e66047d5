// Package wiring registers all graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/anvil/internal/adapters/config"
	_ "go.trai.ch/anvil/internal/adapters/hostprobe"
	_ "go.trai.ch/anvil/internal/adapters/logger"
	_ "go.trai.ch/anvil/internal/adapters/receipt"
	_ "go.trai.ch/anvil/internal/adapters/shell"
	_ "go.trai.ch/anvil/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/anvil/internal/app"
	_ "go.trai.ch/anvil/internal/engine/pipeline"
	_ "go.trai.ch/anvil/internal/engine/planner"
)
