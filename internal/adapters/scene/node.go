package scene

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/curveforge/meshsync/internal/adapters/logger"
	"github.com/curveforge/meshsync/internal/core/ports"
)

// LoaderNodeID is the unique identifier for the document loader Graft node.
const LoaderNodeID graft.ID = "adapter.scene_loader"

func init() {
	graft.Register(graft.Node[*Loader]{
		ID:        LoaderNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Loader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})
}
