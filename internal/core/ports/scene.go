// Package ports defines the interfaces through which the sync engine talks to
// its external collaborators: the host scene graph, the evaluation service,
// the timer facility, the resource store, and the event feed.
package ports

import (
	"iter"

	"github.com/curveforge/meshsync/internal/core/domain"
)

// SceneGraph is the read surface of the host scene document. The engine never
// owns sources or targets; it only resolves and observes them.
//
//go:generate mockgen -source=scene.go -destination=mocks/mock_scene.go -package=mocks
type SceneGraph interface {
	// SourceByName resolves a live source object by stable name.
	SourceByName(name string) (*domain.Source, bool)

	// Sources iterates all curve/surface source objects in document order.
	Sources() iter.Seq[*domain.Source]

	// Targets iterates all derived mesh targets in document order. The order
	// is stable within one call so batch processing is deterministic.
	Targets() iter.Seq[*domain.Target]

	// SourcesUsingData iterates every source object referencing the named
	// shared curve-data resource.
	SourcesUsingData(dataName string) iter.Seq[*domain.Source]
}
