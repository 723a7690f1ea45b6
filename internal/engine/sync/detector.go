package sync

import (
	"sync"

	"github.com/curveforge/meshsync/internal/core/domain"
	"github.com/curveforge/meshsync/internal/engine/fingerprint"
)

// Detector decides whether a source actually changed in a way that affects
// its derived shape. It caches the last computed fingerprint per source name
// and tracks interaction-mode transitions as a secondary trigger.
//
// Both maps are runtime-only bookkeeping: initialized empty, cleared on
// document load, never persisted.
type Detector struct {
	engine *fingerprint.Engine

	mu           sync.Mutex
	fingerprints map[string]string
	lastModes    map[string]domain.InteractionMode
}

// NewDetector creates a detector with empty caches.
func NewDetector(engine *fingerprint.Engine) *Detector {
	return &Detector{
		engine:       engine,
		fingerprints: make(map[string]string),
		lastModes:    make(map[string]domain.InteractionMode),
	}
}

// Changed computes a fresh fingerprint for the source and compares it to the
// cached digest. A missing or different cache entry reports true and updates
// the cache. Sources the fingerprint engine does not recognize always report
// true: silently skipping updates is worse than an extra regeneration.
func (d *Detector) Changed(src *domain.Source) bool {
	if src == nil || src.Name == "" {
		return false
	}

	digest, ok := d.engine.Fingerprint(src)
	if !ok {
		return true
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.fingerprints[src.Name] == digest {
		return false
	}
	d.fingerprints[src.Name] = digest
	return true
}

// ExitedDirectEdit records the source's current interaction mode and reports
// true exactly on the edit-to-object leaving edge. Some host interaction
// modes do not reliably emit geometry-changed notifications while active, so
// leaving one counts as a change signal regardless of the fingerprint.
func (d *Detector) ExitedDirectEdit(src *domain.Source) bool {
	if src == nil || src.Name == "" || !src.Recognized() {
		return false
	}

	current := src.Mode
	if current == "" {
		current = domain.ModeObject
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	previous, seen := d.lastModes[src.Name]
	d.lastModes[src.Name] = current
	return seen && previous == domain.ModeEdit && current != domain.ModeEdit
}

// Forget drops all cached state for the named source. The next change check
// will always report changed.
func (d *Detector) Forget(name string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.fingerprints, name)
	delete(d.lastModes, name)
}

// Clear resets the detector to its initial empty state. Idempotent.
func (d *Detector) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.fingerprints = make(map[string]string)
	d.lastModes = make(map[string]domain.InteractionMode)
}
