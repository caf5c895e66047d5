package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/anvil/internal/adapters/logger"
	"go.trai.ch/anvil/internal/core/ports"
)

const (
	// LocatorNodeID is the graft node identifier for the tool locator.
	LocatorNodeID graft.ID = "adapter.tool_locator"
	// RunnerNodeID is the graft node identifier for the command runner.
	RunnerNodeID graft.ID = "adapter.command_runner"
)

func init() {
	graft.Register(graft.Node[ports.ToolLocator]{
		ID:        LocatorNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.ToolLocator, error) {
			return NewLocator(), nil
		},
	})

	graft.Register(graft.Node[ports.CommandRunner]{
		ID:        RunnerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.CommandRunner, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewRunner(log), nil
		},
	})
}
