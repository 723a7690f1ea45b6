package ports

import "github.com/curveforge/meshsync/internal/core/domain"

// ResourceStore manages named mesh content resources and their reference
// counts. Reference counts are external usage: target attachments plus any
// host-side pins. The store never removes a resource on its own.
//
//go:generate mockgen -source=resources.go -destination=mocks/mock_resources.go -package=mocks
type ResourceStore interface {
	// Put stores a mesh as a new resource. The hint seeds the stable name;
	// the store disambiguates collisions.
	Put(mesh *domain.Mesh, hint string) *domain.MeshResource

	// Users returns the external reference count of a resource.
	Users(res *domain.MeshResource) int

	// Remove deletes an unreferenced resource. It returns ErrResourceInUse
	// when the resource still has users.
	Remove(res *domain.MeshResource) error

	// Rename gives a resource a new stable name, releasing its old one.
	Rename(res *domain.MeshResource, name string)
}
