package sync

import (
	"context"

	"github.com/curveforge/meshsync/internal/core/domain"
	"github.com/curveforge/meshsync/internal/core/ports"
	"go.trai.ch/zerr"
)

// UpdateOptions control one update pass for a source.
type UpdateOptions struct {
	// IncludeDisabled also regenerates targets with auto-update switched off.
	IncludeDisabled bool
	// Force skips the fingerprint check. Fired debounce tasks set this: the
	// change was already detected when the task was armed.
	Force bool
}

// TargetResult is the per-target outcome of an update pass.
type TargetResult struct {
	Target string
	Err    error
}

// Report collects the outcome of one update pass for a source. Failures are
// per-target; a failing target never aborts its siblings.
type Report struct {
	Source        string
	SourceMissing bool
	// Unchanged is set when the pass was skipped because the source's
	// fingerprint matched the cache.
	Unchanged bool
	Results   []TargetResult
}

// Failures returns the results that carry an error.
func (r Report) Failures() []TargetResult {
	var failed []TargetResult
	for _, res := range r.Results {
		if res.Err != nil {
			failed = append(failed, res)
		}
	}
	return failed
}

// Rebuilt returns the number of targets that were successfully regenerated.
func (r Report) Rebuilt() int {
	n := 0
	for _, res := range r.Results {
		if res.Err == nil {
			n++
		}
	}
	return n
}

// Updater runs the build-and-swap pass for all targets of a source.
type Updater struct {
	scene    ports.SceneGraph
	registry *Registry
	detector *Detector
	builder  *Builder
	swapper  *Swapper
	logger   ports.Logger
	tracer   ports.Tracer

	// forget purges all runtime state for a source found missing.
	forget func(name string)
}

// NewUpdater creates an updater.
func NewUpdater(
	scene ports.SceneGraph,
	registry *Registry,
	detector *Detector,
	builder *Builder,
	swapper *Swapper,
	logger ports.Logger,
	tracer ports.Tracer,
) *Updater {
	u := &Updater{
		scene:    scene,
		registry: registry,
		detector: detector,
		builder:  builder,
		swapper:  swapper,
		logger:   logger,
		tracer:   tracer,
	}
	u.forget = detector.Forget
	return u
}

// UpdateNow synchronizes all linked targets of the named source immediately.
// A missing source is not a failure: its runtime state is forgotten and the
// pass is skipped. Build failures are logged with the target's identity and
// collected into the report; the prior mesh is kept on failure.
func (u *Updater) UpdateNow(ctx context.Context, name string, opts UpdateOptions) Report {
	report := Report{Source: name}

	src, ok := u.scene.SourceByName(name)
	if !ok {
		u.forget(name)
		report.SourceMissing = true
		return report
	}

	if !opts.Force && !u.detector.Changed(src) {
		report.Unchanged = true
		return report
	}

	targets := u.registry.TargetsFor(src, opts.IncludeDisabled)
	for _, target := range targets {
		err := u.rebuildTarget(ctx, src, target)
		if err != nil {
			u.logger.Error(zerr.With(zerr.With(zerr.Wrap(err, "update failed"), "target", target.Name), "source", name))
		}
		report.Results = append(report.Results, TargetResult{Target: target.Name, Err: err})
	}
	return report
}

func (u *Updater) rebuildTarget(ctx context.Context, src *domain.Source, target *domain.Target) (err error) {
	ctx, span := u.tracer.Start(ctx, "target.rebuild")
	span.SetAttribute("source", src.Name)
	span.SetAttribute("target", target.Name)
	defer func() {
		if err != nil {
			span.RecordError(err)
		}
		span.End()
	}()

	mesh, err := u.builder.Build(ctx, src, ports.EvaluateOptions{
		ApplyModifiers:    target.Link.ApplyModifiers,
		PreserveAllLayers: target.Link.PreserveAllLayers,
	})
	if err != nil {
		return err
	}

	u.swapper.Swap(target, mesh)
	return nil
}
