package scene

import (
	"fmt"
	"sync"

	"github.com/curveforge/meshsync/internal/core/domain"
	"github.com/curveforge/meshsync/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ResourceStore = (*MeshStore)(nil)

// MeshStore manages the document's named mesh content resources. Reference
// counts are computed from actual usage: target attachments in the document
// plus explicit pins representing host-side external references.
type MeshStore struct {
	doc *Document

	mu     sync.Mutex
	byName map[string]*domain.MeshResource
	pins   map[string]int
}

// NewMeshStore creates a store over the document and adopts any mesh
// resources already attached to its targets.
func NewMeshStore(doc *Document) *MeshStore {
	s := &MeshStore{
		doc:    doc,
		byName: make(map[string]*domain.MeshResource),
		pins:   make(map[string]int),
	}
	for target := range doc.Targets() {
		if target.Mesh != nil {
			s.byName[target.Mesh.Name] = target.Mesh
		}
	}
	return s
}

// Put stores a mesh as a new resource named after the hint, suffixed when the
// name is taken.
func (s *MeshStore) Put(mesh *domain.Mesh, hint string) *domain.MeshResource {
	s.mu.Lock()
	defer s.mu.Unlock()

	name := hint
	for i := 1; ; i++ {
		if _, taken := s.byName[name]; !taken {
			break
		}
		name = fmt.Sprintf("%s.%03d", hint, i)
	}

	res := &domain.MeshResource{Name: name, Mesh: mesh}
	s.byName[name] = res
	return res
}

// Users returns the external reference count of a resource: the number of
// targets it is attached to plus any pins.
func (s *MeshStore) Users(res *domain.MeshResource) int {
	s.mu.Lock()
	pinned := s.pins[res.Name]
	s.mu.Unlock()

	users := pinned
	for target := range s.doc.Targets() {
		if target.Mesh == res {
			users++
		}
	}
	return users
}

// Remove deletes an unreferenced resource from the store.
func (s *MeshStore) Remove(res *domain.MeshResource) error {
	if s.Users(res) > 0 {
		return withName(domain.ErrResourceInUse, res.Name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.byName[res.Name] != res {
		return withName(domain.ErrResourceNotFound, res.Name)
	}
	delete(s.byName, res.Name)
	return nil
}

// Rename gives a resource a new stable name. The caller guarantees the name
// was just freed.
func (s *MeshStore) Rename(res *domain.MeshResource, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.byName, res.Name)
	res.Name = name
	s.byName[name] = res
}

// Pin records one host-side external reference to the resource, keeping it
// alive across swaps.
func (s *MeshStore) Pin(res *domain.MeshResource) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pins[res.Name]++
}

// Unpin releases one host-side external reference.
func (s *MeshStore) Unpin(res *domain.MeshResource) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pins[res.Name] > 1 {
		s.pins[res.Name]--
	} else {
		delete(s.pins, res.Name)
	}
}

func withName(err error, name string) error {
	return zerr.With(zerr.Wrap(err, ""), "name", name)
}
