// Package scene implements the host scene document: an in-memory scene graph
// of curve data, source objects, and derived mesh targets, loaded from and
// saved to YAML documents.
package scene

import (
	"iter"

	"github.com/curveforge/meshsync/internal/core/domain"
	"github.com/curveforge/meshsync/internal/core/ports"
)

var _ ports.SceneGraph = (*Document)(nil)

// rootCollectionName is the fallback collection for objects that belong to no
// collection. It always exists once asked for.
const rootCollectionName = "Scene"

// ToolSettings are the document-wide defaults applied to link records that
// omit a field and to links created by the link command.
type ToolSettings struct {
	DefaultDebounce       float64
	DefaultApplyModifiers bool
}

// Collection is a named grouping of scene objects, referenced by stable name.
// A collection may hold sources and targets alike.
type Collection struct {
	Name    string
	Objects []string
}

// Contains reports whether the named object is a member.
func (c *Collection) Contains(object string) bool {
	for _, name := range c.Objects {
		if name == object {
			return true
		}
	}
	return false
}

// Add appends the object unless it is already a member.
func (c *Collection) Add(object string) {
	if !c.Contains(object) {
		c.Objects = append(c.Objects, object)
	}
}

// Document is a scene document. It owns all sources, curve data, targets, and
// collections. The document is single-writer: all mutations happen on the
// host's execution context, matching the cooperative scheduling model of the
// engine.
type Document struct {
	Path  string
	Tools ToolSettings

	data        []*domain.CurveData
	sources     []*domain.Source
	targets     []*domain.Target
	collections []*Collection

	dataByName       map[string]*domain.CurveData
	sourceByName     map[string]*domain.Source
	targetByName     map[string]*domain.Target
	collectionByName map[string]*Collection
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{
		dataByName:       make(map[string]*domain.CurveData),
		sourceByName:     make(map[string]*domain.Source),
		targetByName:     make(map[string]*domain.Target),
		collectionByName: make(map[string]*Collection),
	}
}

// AddCurveData registers a shared curve-data resource.
func (d *Document) AddCurveData(data *domain.CurveData) error {
	if _, exists := d.dataByName[data.Name]; exists {
		return withName(domain.ErrDuplicateObjectName, data.Name)
	}
	d.data = append(d.data, data)
	d.dataByName[data.Name] = data
	return nil
}

// AddSource registers a source object.
func (d *Document) AddSource(src *domain.Source) error {
	if _, exists := d.sourceByName[src.Name]; exists {
		return withName(domain.ErrDuplicateObjectName, src.Name)
	}
	d.sources = append(d.sources, src)
	d.sourceByName[src.Name] = src
	return nil
}

// AddTarget registers a derived mesh target.
func (d *Document) AddTarget(target *domain.Target) error {
	if _, exists := d.targetByName[target.Name]; exists {
		return withName(domain.ErrDuplicateObjectName, target.Name)
	}
	d.targets = append(d.targets, target)
	d.targetByName[target.Name] = target
	return nil
}

// AddCollection registers a named object grouping.
func (d *Document) AddCollection(coll *Collection) error {
	if _, exists := d.collectionByName[coll.Name]; exists {
		return withName(domain.ErrDuplicateObjectName, coll.Name)
	}
	d.collections = append(d.collections, coll)
	d.collectionByName[coll.Name] = coll
	return nil
}

// RemoveSource deletes a source object by name. The name becomes reusable.
func (d *Document) RemoveSource(name string) {
	src, ok := d.sourceByName[name]
	if !ok {
		return
	}
	delete(d.sourceByName, name)
	for i, s := range d.sources {
		if s == src {
			d.sources = append(d.sources[:i], d.sources[i+1:]...)
			break
		}
	}
}

// SourceByName resolves a live source object by stable name.
func (d *Document) SourceByName(name string) (*domain.Source, bool) {
	src, ok := d.sourceByName[name]
	return src, ok
}

// TargetByName resolves a target by stable name.
func (d *Document) TargetByName(name string) (*domain.Target, bool) {
	target, ok := d.targetByName[name]
	return target, ok
}

// CurveDataByName resolves a shared curve-data resource by name.
func (d *Document) CurveDataByName(name string) (*domain.CurveData, bool) {
	data, ok := d.dataByName[name]
	return data, ok
}

// Sources iterates all source objects in document order.
func (d *Document) Sources() iter.Seq[*domain.Source] {
	return func(yield func(*domain.Source) bool) {
		for _, src := range d.sources {
			if !yield(src) {
				return
			}
		}
	}
}

// Targets iterates all targets in document order.
func (d *Document) Targets() iter.Seq[*domain.Target] {
	return func(yield func(*domain.Target) bool) {
		for _, target := range d.targets {
			if !yield(target) {
				return
			}
		}
	}
}

// Collections iterates all collections in document order.
func (d *Document) Collections() iter.Seq[*Collection] {
	return func(yield func(*Collection) bool) {
		for _, coll := range d.collections {
			if !yield(coll) {
				return
			}
		}
	}
}

// FirstUserCollection returns the first collection holding the named object,
// in document order. Objects outside every collection fall back to the root
// collection, which is created on demand.
func (d *Document) FirstUserCollection(object string) *Collection {
	for _, coll := range d.collections {
		if coll.Contains(object) {
			return coll
		}
	}
	if coll, ok := d.collectionByName[rootCollectionName]; ok {
		return coll
	}
	root := &Collection{Name: rootCollectionName}
	d.collections = append(d.collections, root)
	d.collectionByName[rootCollectionName] = root
	return root
}

// SourcesUsingData iterates every source referencing the named curve data.
func (d *Document) SourcesUsingData(dataName string) iter.Seq[*domain.Source] {
	return func(yield func(*domain.Source) bool) {
		for _, src := range d.sources {
			if src.Data != nil && src.Data.Name == dataName {
				if !yield(src) {
					return
				}
			}
		}
	}
}

// ApplyFrom replaces this document's contents with those of a freshly parsed
// document while keeping the document identity stable. Existing targets keep
// their attached mesh resources when a target of the same name survives, so
// external references stay valid across a file reload.
func (d *Document) ApplyFrom(other *Document) {
	d.Tools = other.Tools
	d.data = other.data
	d.dataByName = other.dataByName
	d.sources = other.sources
	d.sourceByName = other.sourceByName
	d.collections = other.collections
	d.collectionByName = other.collectionByName

	for _, incoming := range other.targets {
		if existing, ok := d.targetByName[incoming.Name]; ok && existing.Mesh != nil {
			incoming.Mesh = existing.Mesh
		}
	}
	d.targets = other.targets
	d.targetByName = other.targetByName
}
