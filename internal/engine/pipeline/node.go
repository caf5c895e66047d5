package pipeline

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/anvil/internal/adapters/hostprobe"
	"go.trai.ch/anvil/internal/adapters/logger"
	"go.trai.ch/anvil/internal/adapters/receipt"
	"go.trai.ch/anvil/internal/adapters/shell"
	"go.trai.ch/anvil/internal/adapters/telemetry"
	"go.trai.ch/anvil/internal/core/ports"
	"go.trai.ch/anvil/internal/engine/planner"
)

// NodeID is the graft node identifier for the pipeline.
const NodeID graft.ID = "engine.pipeline"

func init() {
	graft.Register(graft.Node[*Pipeline]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			hostprobe.NodeID,
			planner.NodeID,
			shell.RunnerNodeID,
			telemetry.NodeID,
			receipt.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Pipeline, error) {
			prober, err := graft.Dep[ports.Prober](ctx)
			if err != nil {
				return nil, err
			}
			plnr, err := graft.Dep[*planner.Planner](ctx)
			if err != nil {
				return nil, err
			}
			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}
			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}
			receipts, err := graft.Dep[ports.ReceiptStore](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(prober, plnr, runner, tel, receipts, log), nil
		},
	})
}
