// Package sync keeps derived mesh targets synchronized with their parametric
// sources: it detects content changes by fingerprint, coalesces bursts of
// change notifications per source, and swaps regenerated artifacts in place.
package sync

import (
	"github.com/curveforge/meshsync/internal/core/domain"
	"github.com/curveforge/meshsync/internal/core/ports"
)

// Registry resolves the many-to-one relationship between derived targets and
// their source. It owns neither side; both live in the host scene graph.
type Registry struct {
	scene ports.SceneGraph
}

// NewRegistry creates a registry over the given scene graph.
func NewRegistry(scene ports.SceneGraph) *Registry {
	return &Registry{scene: scene}
}

// TargetsFor returns the targets linked to src, in document order. Links are
// matched by source identity first and by stable name as a fallback, since
// identity can go stale across host reload boundaries. When includeDisabled
// is false, targets with auto-update switched off are excluded.
func (r *Registry) TargetsFor(src *domain.Source, includeDisabled bool) []*domain.Target {
	if src == nil {
		return nil
	}

	var result []*domain.Target
	for target := range r.scene.Targets() {
		if target.Link == nil {
			continue
		}
		if !includeDisabled && !target.Link.AutoUpdate {
			continue
		}
		if target.Link.Matches(src) {
			result = append(result, target)
		}
	}
	return result
}
