package app

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/curveforge/meshsync/internal/adapters/evaluator"
	"github.com/curveforge/meshsync/internal/adapters/logger"
	"github.com/curveforge/meshsync/internal/adapters/scene"
	"github.com/curveforge/meshsync/internal/adapters/telemetry"
	"github.com/curveforge/meshsync/internal/adapters/timers"
	"github.com/curveforge/meshsync/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the application Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			scene.LoaderNodeID,
			evaluator.NodeID,
			timers.NodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[*scene.Loader](ctx)
			if err != nil {
				return nil, err
			}
			eval, err := graft.Dep[ports.Evaluator](ctx)
			if err != nil {
				return nil, err
			}
			timerFacility, err := graft.Dep[ports.Timers](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			return New(loader, eval, timerFacility, log, tracer), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{AppNodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: application, Logger: log}, nil
		},
	})
}
