package sync

import (
	"github.com/curveforge/meshsync/internal/core/domain"
	"github.com/curveforge/meshsync/internal/core/ports"
)

// Router is the entry point invoked by the host event feed. Per notification
// it decides whether to consult the change detector and whether to arm the
// debounce scheduler.
type Router struct {
	scene     ports.SceneGraph
	detector  *Detector
	scheduler *Scheduler
}

// NewRouter creates a router.
func NewRouter(scene ports.SceneGraph, detector *Detector, scheduler *Scheduler) *Router {
	return &Router{scene: scene, detector: detector, scheduler: scheduler}
}

// OnSceneChanged processes one notification batch. Batches that report no
// object- or curve-level updates at all are rejected without inspection.
func (r *Router) OnSceneChanged(batch domain.UpdateBatch) {
	if batch.Empty() {
		return
	}

	for _, update := range batch.Updates {
		if update.IsObject {
			r.routeObject(update)
		} else {
			r.routeCurveData(update)
		}
	}
}

// routeObject handles an object-level update. The geometry flag is trusted at
// this granularity, so the fingerprint is only consulted when it is set. The
// mode transition is recorded on every update regardless.
func (r *Router) routeObject(update domain.SceneUpdate) {
	src, ok := r.scene.SourceByName(update.ObjectName)
	if !ok {
		return
	}

	modeExit := r.detector.ExitedDirectEdit(src)
	changed := update.GeometryUpdated && r.detector.Changed(src)
	if changed || modeExit {
		r.scheduler.Schedule(src)
	}
}

// routeCurveData handles an update to a shared curve-data resource. Geometry
// flags are not reliable at this granularity, so every source referencing the
// data is re-evaluated through both triggers unconditionally.
func (r *Router) routeCurveData(update domain.SceneUpdate) {
	for src := range r.scene.SourcesUsingData(update.DataName) {
		modeExit := r.detector.ExitedDirectEdit(src)
		if r.detector.Changed(src) || modeExit {
			r.scheduler.Schedule(src)
		}
	}
}

// OnDocumentLoaded clears all runtime state. Stale fingerprints or pending
// tasks must never carry across a reload boundary: source names can be reused
// by a different object in the loaded document.
func (r *Router) OnDocumentLoaded() {
	r.scheduler.Clear()
	r.detector.Clear()
}
