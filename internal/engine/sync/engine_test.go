package sync_test

import (
	"context"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/curveforge/meshsync/internal/adapters/scene"
	"github.com/curveforge/meshsync/internal/adapters/timers"
	"github.com/curveforge/meshsync/internal/core/domain"
	"github.com/curveforge/meshsync/internal/core/ports"
	"github.com/curveforge/meshsync/internal/core/ports/mocks"
	"github.com/curveforge/meshsync/internal/engine/sync"
)

type engineHarness struct {
	doc       *scene.Document
	bus       *scene.Bus
	engine    *sync.Engine
	evaluator *mocks.MockEvaluator
}

func newEngineHarness(t *testing.T, doc *scene.Document) *engineHarness {
	t.Helper()
	ctrl := gomock.NewController(t)

	evaluator := mocks.NewMockEvaluator(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	logger.EXPECT().Error(gomock.Any()).AnyTimes()

	span := mocks.NewMockSpan(ctrl)
	span.EXPECT().SetAttribute(gomock.Any(), gomock.Any()).AnyTimes()
	span.EXPECT().RecordError(gomock.Any()).AnyTimes()
	span.EXPECT().End().AnyTimes()
	tracer := mocks.NewMockTracer(ctrl)
	tracer.EXPECT().Start(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string, _ ...ports.SpanOption) (context.Context, ports.Span) {
			return ctx, span
		}).AnyTimes()

	engine := sync.New(doc, evaluator, scene.NewMeshStore(doc), timers.New(), logger, tracer)
	bus := scene.NewBus()
	engine.Attach(bus)
	return &engineHarness{doc: doc, bus: bus, engine: engine, evaluator: evaluator}
}

func geometryBatch(name string) domain.UpdateBatch {
	return domain.UpdateBatch{
		ObjectsUpdated: true,
		Updates:        []domain.SceneUpdate{domain.ObjectUpdate(name, true)},
	}
}

func TestEngineIgnoresEmptyBatch(t *testing.T) {
	src := polySource("Path", 0)
	doc := linkedDoc(t, src, target("Hull", &domain.Link{Source: src, AutoUpdate: true, Debounce: 0.25}))
	h := newEngineHarness(t, doc)

	// Flags unset: the batch is rejected without inspecting its entries.
	h.bus.PublishSceneChanged(domain.UpdateBatch{
		Updates: []domain.SceneUpdate{domain.ObjectUpdate("Path", true)},
	})
	assert.False(t, h.engine.Scheduler().Pending("Path"))
}

func TestEngineSchedulesOnGeometryUpdate(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		src := polySource("Path", 0)
		doc := linkedDoc(t, src, target("Hull", &domain.Link{Source: src, AutoUpdate: true, Debounce: 0.25}))
		h := newEngineHarness(t, doc)

		h.evaluator.EXPECT().
			Evaluate(gomock.Any(), src, gomock.Any()).
			Return(&domain.Mesh{Vertices: [][3]float64{{0, 0, 0}}}, nil)

		h.bus.PublishSceneChanged(geometryBatch("Path"))
		assert.True(t, h.engine.Scheduler().Pending("Path"))

		time.Sleep(250 * time.Millisecond)
		synctest.Wait()

		assert.False(t, h.engine.Scheduler().Pending("Path"))
		hull, ok := doc.TargetByName("Hull")
		require.True(t, ok)
		assert.Len(t, hull.Mesh.Mesh.Vertices, 1)
	})
}

func TestEngineIgnoresUnknownObject(t *testing.T) {
	src := polySource("Path", 0)
	doc := linkedDoc(t, src, target("Hull", &domain.Link{Source: src, AutoUpdate: true}))
	h := newEngineHarness(t, doc)

	h.bus.PublishSceneChanged(geometryBatch("Ghost"))
	assert.False(t, h.engine.Scheduler().Pending("Ghost"))
}

func TestEngineIgnoresUnchangedGeometryFlag(t *testing.T) {
	src := polySource("Path", 0)
	doc := linkedDoc(t, src, target("Hull", &domain.Link{Source: src, AutoUpdate: true, Debounce: 0.25}))
	h := newEngineHarness(t, doc)

	// Seed the fingerprint cache, then notify again without any mutation.
	h.bus.PublishSceneChanged(geometryBatch("Path"))
	h.engine.Scheduler().Cancel("Path")

	h.bus.PublishSceneChanged(geometryBatch("Path"))
	assert.False(t, h.engine.Scheduler().Pending("Path"))
}

func TestEngineSchedulesOnDirectEditExit(t *testing.T) {
	src := polySource("Path", 0)
	doc := linkedDoc(t, src, target("Hull", &domain.Link{Source: src, AutoUpdate: true, Debounce: 0.25}))
	h := newEngineHarness(t, doc)

	// Seed with a geometry update, then enter and leave direct editing
	// without touching the shape. The non-geometry update on exit must
	// still arm a task.
	h.bus.PublishSceneChanged(geometryBatch("Path"))
	h.engine.Scheduler().Cancel("Path")

	src.Mode = domain.ModeEdit
	h.bus.PublishSceneChanged(domain.UpdateBatch{
		ObjectsUpdated: true,
		Updates:        []domain.SceneUpdate{domain.ObjectUpdate("Path", false)},
	})
	assert.False(t, h.engine.Scheduler().Pending("Path"))

	src.Mode = domain.ModeObject
	h.bus.PublishSceneChanged(domain.UpdateBatch{
		ObjectsUpdated: true,
		Updates:        []domain.SceneUpdate{domain.ObjectUpdate("Path", false)},
	})
	assert.True(t, h.engine.Scheduler().Pending("Path"))
}

func TestEngineFansOutSharedCurveData(t *testing.T) {
	shared := &domain.CurveData{
		Name: "SharedData",
		Settings: domain.CurveSettings{
			Dimensions:  "3D",
			ResolutionU: 12,
			ResolutionV: 12,
		},
		Splines: []*domain.Spline{
			{
				Kind: domain.SplinePoly,
				Points: []domain.ControlPoint{
					{Co: [4]float64{0, 0, 0, 1}, Radius: 1},
					{Co: [4]float64{1, 0, 0, 1}, Radius: 1},
				},
			},
		},
	}
	first := &domain.Source{Name: "First", Kind: domain.SourceCurve, Mode: domain.ModeObject, Data: shared}
	second := &domain.Source{Name: "Second", Kind: domain.SourceCurve, Mode: domain.ModeObject, Data: shared}

	doc := scene.NewDocument()
	require.NoError(t, doc.AddSource(first))
	require.NoError(t, doc.AddSource(second))
	require.NoError(t, doc.AddTarget(target("HullA", &domain.Link{Source: first, AutoUpdate: true, Debounce: 0.25})))
	require.NoError(t, doc.AddTarget(target("HullB", &domain.Link{Source: second, AutoUpdate: true, Debounce: 0.25})))
	h := newEngineHarness(t, doc)

	// A curve-data update has no reliable geometry flag: every source
	// referencing the data block is checked.
	h.bus.PublishSceneChanged(domain.UpdateBatch{
		CurveDataUpdated: true,
		Updates:          []domain.SceneUpdate{domain.DataUpdate("SharedData")},
	})
	assert.True(t, h.engine.Scheduler().Pending("First"))
	assert.True(t, h.engine.Scheduler().Pending("Second"))
}

func TestEngineDocumentLoadClearsState(t *testing.T) {
	src := polySource("Path", 0)
	doc := linkedDoc(t, src, target("Hull", &domain.Link{Source: src, AutoUpdate: true, Debounce: 0.25}))
	h := newEngineHarness(t, doc)

	h.bus.PublishSceneChanged(geometryBatch("Path"))
	require.True(t, h.engine.Scheduler().Pending("Path"))

	h.bus.PublishDocumentLoaded()
	assert.False(t, h.engine.Scheduler().Pending("Path"))

	// Fingerprint cache is gone: the same shape reads as changed again.
	h.bus.PublishSceneChanged(geometryBatch("Path"))
	assert.True(t, h.engine.Scheduler().Pending("Path"))
}

func TestEngineDetachStopsRouting(t *testing.T) {
	src := polySource("Path", 0)
	doc := linkedDoc(t, src, target("Hull", &domain.Link{Source: src, AutoUpdate: true, Debounce: 0.25}))
	h := newEngineHarness(t, doc)

	h.engine.Detach(h.bus)
	h.bus.PublishSceneChanged(geometryBatch("Path"))
	assert.False(t, h.engine.Scheduler().Pending("Path"))
}

func TestEngineUpdateNowByName(t *testing.T) {
	src := polySource("Path", 0)
	doc := linkedDoc(t, src, target("Hull", &domain.Link{Source: src, AutoUpdate: true}))
	h := newEngineHarness(t, doc)

	h.evaluator.EXPECT().
		Evaluate(gomock.Any(), src, gomock.Any()).
		Return(&domain.Mesh{}, nil).
		Times(1)

	report := h.engine.UpdateNowByName(context.Background(), "Path", false)
	assert.Equal(t, 1, report.Rebuilt())

	// Second immediate pass is skipped: the fingerprint is unchanged.
	report = h.engine.UpdateNowByName(context.Background(), "Path", false)
	assert.True(t, report.Unchanged)
}

func TestEngineForgetFingerprint(t *testing.T) {
	src := polySource("Path", 0)
	doc := linkedDoc(t, src, target("Hull", &domain.Link{Source: src, AutoUpdate: true, Debounce: 0.25}))
	h := newEngineHarness(t, doc)

	h.bus.PublishSceneChanged(geometryBatch("Path"))
	require.True(t, h.engine.Scheduler().Pending("Path"))

	h.engine.ForgetFingerprint("Path")
	assert.False(t, h.engine.Scheduler().Pending("Path"))
	assert.True(t, h.engine.Detector().Changed(src))
}
