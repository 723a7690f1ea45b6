package ports

import (
	"context"

	"github.com/curveforge/meshsync/internal/core/domain"
)

// EvaluateOptions control how a source is tessellated.
type EvaluateOptions struct {
	// ApplyModifiers applies the source's modifier stack to the tessellation.
	ApplyModifiers bool
	// PreserveAllLayers asks the service to retain auxiliary per-vertex data
	// layers on the produced mesh.
	PreserveAllLayers bool
}

// Evaluator is the external evaluation service that tessellates a parametric
// source into a mesh.
//
//go:generate mockgen -source=evaluator.go -destination=mocks/mock_evaluator.go -package=mocks
type Evaluator interface {
	// Evaluate tessellates the source. The call is synchronous and blocking;
	// the engine places no timeout on it.
	Evaluate(ctx context.Context, src *domain.Source, opts EvaluateOptions) (*domain.Mesh, error)
}
