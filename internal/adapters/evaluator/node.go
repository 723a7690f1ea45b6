package evaluator

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/curveforge/meshsync/internal/core/ports"
)

// NodeID is the unique identifier for the tessellator Graft node.
const NodeID graft.ID = "adapter.evaluator"

func init() {
	graft.Register(graft.Node[ports.Evaluator]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Evaluator, error) {
			return NewTessellator(), nil
		},
	})
}
