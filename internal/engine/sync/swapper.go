package sync

import (
	"slices"

	"github.com/curveforge/meshsync/internal/core/domain"
	"github.com/curveforge/meshsync/internal/core/ports"
)

// Swapper replaces a target's mesh resource in place. Material assignments
// survive the swap, and the superseded resource's stable name is inherited by
// the replacement once the old resource becomes unreferenced.
type Swapper struct {
	store ports.ResourceStore
}

// NewSwapper creates a swapper over the given resource store.
func NewSwapper(store ports.ResourceStore) *Swapper {
	return &Swapper{store: store}
}

// Swap attaches the freshly built mesh to the target. The previous resource
// is released only when nothing else references it; external references keep
// it alive. When released, the new resource takes over the old stable name so
// references by name remain valid across regenerations.
func (s *Swapper) Swap(target *domain.Target, mesh *domain.Mesh) *domain.MeshResource {
	previous := target.Mesh

	// Materials belong to the target's usage, not to the regenerated
	// geometry; carry the prior assignment list over verbatim.
	if previous != nil && previous.Mesh != nil {
		mesh.Materials = slices.Clone(previous.Mesh.Materials)
	}

	res := s.store.Put(mesh, target.Name)
	target.Mesh = res

	if previous != nil && s.store.Users(previous) == 0 {
		oldName := previous.Name
		if err := s.store.Remove(previous); err == nil {
			s.store.Rename(res, oldName)
		}
	}
	return res
}
