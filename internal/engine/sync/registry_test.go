package sync_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curveforge/meshsync/internal/adapters/scene"
	"github.com/curveforge/meshsync/internal/core/domain"
	"github.com/curveforge/meshsync/internal/engine/sync"
)

// linkedDoc builds a document with one source and the given targets attached
// to it by identity.
func linkedDoc(t *testing.T, src *domain.Source, targets ...*domain.Target) *scene.Document {
	t.Helper()
	doc := scene.NewDocument()
	require.NoError(t, doc.AddSource(src))
	for _, target := range targets {
		require.NoError(t, doc.AddTarget(target))
	}
	return doc
}

func target(name string, link *domain.Link) *domain.Target {
	return &domain.Target{
		Name: name,
		Mesh: &domain.MeshResource{Name: name + ".mesh", Mesh: &domain.Mesh{}},
		Link: link,
	}
}

func TestRegistryMatchesByIdentity(t *testing.T) {
	src := polySource("Path", 0)
	doc := linkedDoc(t, src,
		target("Hull", &domain.Link{Source: src, AutoUpdate: true}),
		target("Unrelated", nil),
	)

	registry := sync.NewRegistry(doc)
	targets := registry.TargetsFor(src, false)
	require.Len(t, targets, 1)
	assert.Equal(t, "Hull", targets[0].Name)
}

func TestRegistryMatchesByNameFallback(t *testing.T) {
	src := polySource("Path", 0)

	// The link holds a stale pointer from before a reload; only the stable
	// name still matches.
	stale := polySource("Path", 5)
	doc := linkedDoc(t, src,
		target("Hull", &domain.Link{Source: stale, AutoUpdate: true}),
	)

	registry := sync.NewRegistry(doc)
	require.Len(t, registry.TargetsFor(src, false), 1)
}

func TestRegistryMatchesPersistedNameWhenRefIsNil(t *testing.T) {
	src := polySource("Path", 0)
	doc := linkedDoc(t, src,
		target("Hull", &domain.Link{SourceName: "Path", AutoUpdate: true}),
		target("Other", &domain.Link{SourceName: "Elsewhere", AutoUpdate: true}),
	)

	registry := sync.NewRegistry(doc)
	targets := registry.TargetsFor(src, false)
	require.Len(t, targets, 1)
	assert.Equal(t, "Hull", targets[0].Name)
}

func TestRegistryFiltersDisabled(t *testing.T) {
	src := polySource("Path", 0)
	doc := linkedDoc(t, src,
		target("Auto", &domain.Link{Source: src, AutoUpdate: true}),
		target("Manual", &domain.Link{Source: src, AutoUpdate: false}),
	)

	registry := sync.NewRegistry(doc)
	assert.Len(t, registry.TargetsFor(src, false), 1)
	assert.Len(t, registry.TargetsFor(src, true), 2)
}

func TestRegistryNilSource(t *testing.T) {
	doc := scene.NewDocument()
	registry := sync.NewRegistry(doc)
	assert.Nil(t, registry.TargetsFor(nil, true))
}
