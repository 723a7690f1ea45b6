package sync

import (
	"context"

	"github.com/curveforge/meshsync/internal/core/domain"
	"github.com/curveforge/meshsync/internal/core/ports"
	"github.com/curveforge/meshsync/internal/engine/fingerprint"
)

// subscriptionToken identifies the engine's event bus subscriptions so that
// repeated activation replaces rather than duplicates them.
const subscriptionToken = "engine.sync"

// Engine wires the fingerprint detector, link registry, debounce scheduler,
// and artifact builder/swapper into one unit bound to a single scene
// document. All runtime state lives inside the engine; constructing a new
// engine starts from a clean slate.
type Engine struct {
	scene     ports.SceneGraph
	registry  *Registry
	detector  *Detector
	scheduler *Scheduler
	updater   *Updater
	router    *Router
}

// New creates an engine for the given scene document and collaborators.
func New(
	scene ports.SceneGraph,
	evaluator ports.Evaluator,
	store ports.ResourceStore,
	timers ports.Timers,
	logger ports.Logger,
	tracer ports.Tracer,
) *Engine {
	e := &Engine{scene: scene}

	e.registry = NewRegistry(scene)
	e.detector = NewDetector(fingerprint.NewEngine())
	e.updater = NewUpdater(scene, e.registry, e.detector, NewBuilder(evaluator), NewSwapper(store), logger, tracer)
	e.scheduler = NewScheduler(e.registry, timers, func(sourceName string) {
		// A fired task regenerates unconditionally: the change was already
		// detected when the task was armed, and the update must observe the
		// source's state at execution time.
		e.updater.UpdateNow(context.Background(), sourceName, UpdateOptions{Force: true})
	})
	e.router = NewRouter(scene, e.detector, e.scheduler)

	e.updater.forget = e.ForgetFingerprint
	return e
}

// Attach subscribes the engine's handlers to the host event feed. Idempotent:
// attaching twice replaces the previous subscription.
func (e *Engine) Attach(bus ports.EventBus) {
	bus.SubscribeSceneChanged(subscriptionToken, e.OnSceneChanged)
	bus.SubscribeDocumentLoaded(subscriptionToken, e.OnDocumentLoaded)
}

// Detach unsubscribes the engine's handlers and clears all runtime state.
func (e *Engine) Detach(bus ports.EventBus) {
	bus.UnsubscribeSceneChanged(subscriptionToken)
	bus.UnsubscribeDocumentLoaded(subscriptionToken)
	e.scheduler.Clear()
	e.detector.Clear()
}

// OnSceneChanged routes one notification batch from the host event feed.
func (e *Engine) OnSceneChanged(batch domain.UpdateBatch) {
	e.router.OnSceneChanged(batch)
}

// OnDocumentLoaded clears all runtime state after a document reload.
func (e *Engine) OnDocumentLoaded() {
	e.router.OnDocumentLoaded()
}

// LinkedMeshesForSource returns the targets linked to the source, for the
// query surface of the UI/command layer.
func (e *Engine) LinkedMeshesForSource(src *domain.Source, includeDisabled bool) []*domain.Target {
	return e.registry.TargetsFor(src, includeDisabled)
}

// UpdateNowByName synchronizes the named source immediately, bypassing the
// debounce. Sources whose fingerprint is unchanged are skipped.
func (e *Engine) UpdateNowByName(ctx context.Context, name string, includeDisabled bool) Report {
	return e.updater.UpdateNow(ctx, name, UpdateOptions{IncludeDisabled: includeDisabled})
}

// ForgetFingerprint purges the cached fingerprint and any pending task for
// the named source. Called on unlink and when a source is found missing.
func (e *Engine) ForgetFingerprint(name string) {
	e.scheduler.Cancel(name)
	e.detector.Forget(name)
}

// Scheduler exposes the debounce scheduler for introspection.
func (e *Engine) Scheduler() *Scheduler {
	return e.scheduler
}

// Detector exposes the change detector for introspection.
func (e *Engine) Detector() *Detector {
	return e.detector
}
