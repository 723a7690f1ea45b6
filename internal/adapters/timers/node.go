package timers

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/curveforge/meshsync/internal/core/ports"
)

// NodeID is the unique identifier for the timer facility Graft node.
const NodeID graft.ID = "adapter.timers"

func init() {
	graft.Register(graft.Node[ports.Timers]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Timers, error) {
			return New(), nil
		},
	})
}
