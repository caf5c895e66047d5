package planner

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/anvil/internal/adapters/shell"
	"go.trai.ch/anvil/internal/core/ports"
)

// NodeID is the graft node identifier for the planner.
const NodeID graft.ID = "engine.planner"

func init() {
	graft.Register(graft.Node[*Planner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.LocatorNodeID},
		Run: func(ctx context.Context) (*Planner, error) {
			locator, err := graft.Dep[ports.ToolLocator](ctx)
			if err != nil {
				return nil, err
			}
			return NewPlanner(locator), nil
		},
	})
}
