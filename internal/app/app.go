// Package app implements the application layer for meshsync.
package app

import (
	"context"
	"fmt"

	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"

	"github.com/curveforge/meshsync/internal/adapters/scene"
	"github.com/curveforge/meshsync/internal/adapters/watcher"
	"github.com/curveforge/meshsync/internal/core/domain"
	"github.com/curveforge/meshsync/internal/core/ports"
	"github.com/curveforge/meshsync/internal/engine/sync"
)

// App represents the main application logic.
type App struct {
	loader     *scene.Loader
	evaluator  ports.Evaluator
	timers     ports.Timers
	logger     ports.Logger
	tracer     ports.Tracer
	newWatcher func() (ports.Watcher, error)
}

// Components bundles everything the command layer needs.
type Components struct {
	App    *App
	Logger ports.Logger
}

// New creates a new App instance.
func New(
	loader *scene.Loader,
	evaluator ports.Evaluator,
	timers ports.Timers,
	log ports.Logger,
	tracer ports.Tracer,
) *App {
	return &App{
		loader:    loader,
		evaluator: evaluator,
		timers:    timers,
		logger:    log,
		tracer:    tracer,
		newWatcher: func() (ports.Watcher, error) {
			return watcher.NewWatcher()
		},
	}
}

// WithWatcherFactory replaces the document watcher constructor.
// This is primarily used for testing.
func (a *App) WithWatcherFactory(factory func() (ports.Watcher, error)) *App {
	a.newWatcher = factory
	return a
}

// session is one open scene document with a running sync engine.
type session struct {
	doc    *scene.Document
	store  *scene.MeshStore
	bus    *scene.Bus
	engine *sync.Engine
}

func (a *App) open(docPath string) (*session, error) {
	doc, err := a.loader.Load(docPath)
	if err != nil {
		return nil, err
	}

	store := scene.NewMeshStore(doc)
	bus := scene.NewBus()
	engine := sync.New(doc, a.evaluator, store, a.timers, a.logger, a.tracer)
	engine.Attach(bus)

	return &session{doc: doc, store: store, bus: bus, engine: engine}, nil
}

// SyncOptions configures a one-shot regeneration pass.
type SyncOptions struct {
	// Source restricts the pass to one source object. Empty means every
	// source that has linked targets.
	Source string
	// IncludeDisabled also regenerates targets with auto-update off.
	IncludeDisabled bool
	// Out, when set, writes the regenerated document to this path.
	Out string
}

// Sync loads the document, regenerates linked meshes, and optionally writes
// the result back out. Per-target failures are collected in the reports; the
// returned error covers only document-level problems.
func (a *App) Sync(ctx context.Context, docPath string, opts SyncOptions) ([]sync.Report, error) {
	session, err := a.open(docPath)
	if err != nil {
		return nil, err
	}

	var reports []sync.Report
	if opts.Source != "" {
		if _, ok := session.doc.SourceByName(opts.Source); !ok {
			return nil, zerr.With(zerr.Wrap(domain.ErrSourceNotFound, ""), "source", opts.Source)
		}
		reports = append(reports, session.engine.UpdateNowByName(ctx, opts.Source, opts.IncludeDisabled))
	} else {
		for src := range session.doc.Sources() {
			if len(session.engine.LinkedMeshesForSource(src, opts.IncludeDisabled)) == 0 {
				continue
			}
			reports = append(reports, session.engine.UpdateNowByName(ctx, src.Name, opts.IncludeDisabled))
		}
	}

	if opts.Out != "" {
		if err := a.loader.Save(session.doc, opts.Out); err != nil {
			return reports, err
		}
	}
	return reports, nil
}

// LinkInfo describes one target's link record for display.
type LinkInfo struct {
	Target            string
	Source            string
	Dangling          bool
	AutoUpdate        bool
	Debounce          float64
	ApplyModifiers    bool
	PreserveAllLayers bool
	Note              string
}

// Links loads the document and lists every target's link record. When source
// is non-empty only links referencing that source are returned.
func (a *App) Links(_ context.Context, docPath, source string) ([]LinkInfo, error) {
	session, err := a.open(docPath)
	if err != nil {
		return nil, err
	}

	var infos []LinkInfo
	for target := range session.doc.Targets() {
		link := target.Link
		if link == nil {
			continue
		}

		name := link.SourceName
		if link.Source != nil {
			name = link.Source.Name
		}
		if source != "" && name != source {
			continue
		}

		_, exists := session.doc.SourceByName(name)
		infos = append(infos, LinkInfo{
			Target:            target.Name,
			Source:            name,
			Dangling:          !exists,
			AutoUpdate:        link.AutoUpdate,
			Debounce:          link.Debounce,
			ApplyModifiers:    link.ApplyModifiers,
			PreserveAllLayers: link.PreserveAllLayers,
			Note:              link.Note,
		})
	}
	return infos, nil
}

// LinkOptions configures creation of a new linked mesh target.
type LinkOptions struct {
	// Source names the source object to link.
	Source string
	// Target names the new target object. Empty derives "<source>_mesh".
	Target string
	// Out, when set, writes the updated document to this path instead of
	// overwriting the input.
	Out string
}

// LinkResult describes the target created by Link.
type LinkResult struct {
	Target     string
	Mesh       string
	Collection string
	Debounce   float64
}

// Link builds the source's mesh, creates a new derived target holding it, and
// places the target in the source's first user collection. The link record is
// initialized from the document's tool defaults, and the updated document is
// written back out.
func (a *App) Link(ctx context.Context, docPath string, opts LinkOptions) (*LinkResult, error) {
	session, err := a.open(docPath)
	if err != nil {
		return nil, err
	}

	src, ok := session.doc.SourceByName(opts.Source)
	if !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrSourceNotFound, ""), "source", opts.Source)
	}

	name := opts.Target
	if name == "" {
		name = src.Name + "_mesh"
	}

	link := &domain.Link{
		Source:            src,
		SourceName:        src.Name,
		AutoUpdate:        true,
		Debounce:          session.doc.Tools.DefaultDebounce,
		ApplyModifiers:    session.doc.Tools.DefaultApplyModifiers,
		PreserveAllLayers: true,
	}

	mesh, err := sync.NewBuilder(a.evaluator).Build(ctx, src, ports.EvaluateOptions{
		ApplyModifiers:    link.ApplyModifiers,
		PreserveAllLayers: link.PreserveAllLayers,
	})
	if err != nil {
		return nil, err
	}

	target := &domain.Target{Name: name, Link: link}
	if err := session.doc.AddTarget(target); err != nil {
		return nil, err
	}
	sync.NewSwapper(session.store).Swap(target, mesh)

	coll := session.doc.FirstUserCollection(src.Name)
	coll.Add(name)

	out := opts.Out
	if out == "" {
		out = docPath
	}
	if err := a.loader.Save(session.doc, out); err != nil {
		return nil, err
	}

	a.logger.Info("linked mesh created: " + name)
	return &LinkResult{
		Target:     name,
		Mesh:       target.Mesh.Name,
		Collection: coll.Name,
		Debounce:   link.Debounce,
	}, nil
}

// Watch loads the document, performs an initial regeneration pass, and then
// keeps the linked meshes in sync as the file changes on disk. It returns
// when the context is canceled.
func (a *App) Watch(ctx context.Context, docPath string, opts SyncOptions) error {
	session, err := a.open(docPath)
	if err != nil {
		return err
	}

	for src := range session.doc.Sources() {
		if len(session.engine.LinkedMeshesForSource(src, opts.IncludeDisabled)) == 0 {
			continue
		}
		report := session.engine.UpdateNowByName(ctx, src.Name, opts.IncludeDisabled)
		a.logReport(report)
	}

	w, err := a.newWatcher()
	if err != nil {
		return zerr.Wrap(err, "starting document watcher")
	}
	if err := w.Start(ctx, docPath); err != nil {
		return zerr.Wrap(err, "starting document watcher")
	}

	a.logger.Info("watching " + docPath)

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		for event := range w.Events() {
			switch event.Operation {
			case ports.OpWrite, ports.OpCreate:
				a.reload(session, event.Path)
			case ports.OpRemove:
				a.logger.Warn("document removed: " + event.Path)
			}
		}
		return nil
	})
	group.Go(func() error {
		<-ctx.Done()
		return w.Stop()
	})

	if err := group.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// reload reparses the document in place, clears all runtime sync state, and
// publishes a scene-changed batch covering every source. Object names can be
// reused by different objects across a reload, so neither cached fingerprints
// nor pending tasks may survive it.
func (a *App) reload(session *session, path string) {
	fresh, err := a.loader.Load(path)
	if err != nil {
		a.logger.Error(zerr.Wrap(err, "reloading document"))
		return
	}
	session.doc.ApplyFrom(fresh)
	session.bus.PublishDocumentLoaded()

	batch := domain.UpdateBatch{}
	for src := range session.doc.Sources() {
		batch.Updates = append(batch.Updates, domain.ObjectUpdate(src.Name, true))
	}
	batch.ObjectsUpdated = len(batch.Updates) > 0
	session.bus.PublishSceneChanged(batch)
}

func (a *App) logReport(report sync.Report) {
	if report.SourceMissing {
		a.logger.Warn("source not found: " + report.Source)
		return
	}
	if report.Unchanged {
		return
	}
	if n := report.Rebuilt(); n > 0 {
		a.logger.Info(fmt.Sprintf("%s: %d mesh(es) regenerated", report.Source, n))
	}
}
