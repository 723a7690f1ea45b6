package scene_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/curveforge/meshsync/internal/adapters/scene"
	"github.com/curveforge/meshsync/internal/core/domain"
	"github.com/curveforge/meshsync/internal/core/ports/mocks"
)

func loadRig(t *testing.T) *scene.Document {
	t.Helper()
	doc, err := scene.NewLoader(nil).Load("testdata/rig.yaml")
	require.NoError(t, err)
	return doc
}

func TestLoaderCurveDefaults(t *testing.T) {
	doc := loadRig(t)

	keel, ok := doc.CurveDataByName("KeelData")
	require.True(t, ok)
	assert.Equal(t, "3D", keel.Settings.Dimensions)
	assert.Equal(t, 12, keel.Settings.ResolutionU)
	assert.Equal(t, 12, keel.Settings.ResolutionV)
	assert.Equal(t, 0.2, keel.Settings.Extrude)
	assert.True(t, keel.Settings.FillCaps)

	require.Len(t, keel.Splines, 1)
	spline := keel.Splines[0]
	assert.Equal(t, domain.SplineBezier, spline.Kind)
	assert.Equal(t, 4, spline.OrderU)
	require.Len(t, spline.BezierPoints, 2)
	assert.Equal(t, [3]float64{4, 1, 0}, spline.BezierPoints[1].Co)
	assert.Equal(t, 0.5, spline.BezierPoints[1].Tilt)
	// Radius defaults to 1 when omitted.
	assert.Equal(t, 1.0, spline.BezierPoints[1].Radius)
}

func TestLoaderControlPointWeights(t *testing.T) {
	doc := loadRig(t)

	rail, ok := doc.CurveDataByName("RailData")
	require.True(t, ok)
	require.Len(t, rail.Splines, 1)
	spline := rail.Splines[0]
	assert.Equal(t, domain.SplineNURBS, spline.Kind)
	assert.True(t, spline.CyclicU)
	assert.Equal(t, 3, spline.OrderU)
	require.Len(t, spline.Points, 4)
	// Omitted weight defaults to 1; an explicit fourth component is kept.
	assert.Equal(t, [4]float64{0, 0, 0, 1}, spline.Points[0].Co)
	assert.Equal(t, [4]float64{1, 0, 0, 2}, spline.Points[1].Co)
	assert.Equal(t, 2.0, spline.Points[1].Radius)
}

func TestLoaderSourcesAndModifiers(t *testing.T) {
	doc := loadRig(t)

	keel, ok := doc.SourceByName("Keel")
	require.True(t, ok)
	assert.Equal(t, domain.SourceCurve, keel.Kind)
	assert.Equal(t, domain.ModeObject, keel.Mode)
	require.NotNil(t, keel.Data)
	assert.Equal(t, "KeelData", keel.Data.Name)

	require.Len(t, keel.Modifiers, 2)
	subsurf := keel.Modifiers[0]
	assert.Equal(t, domain.ModifierSubsurf, subsurf.Kind)
	assert.True(t, subsurf.ShowViewport)
	assert.Equal(t, 2.0, subsurf.Params["levels"].Scalar)
	mirror := keel.Modifiers[1]
	assert.False(t, mirror.ShowViewport)
	assert.Equal(t, "Keel", mirror.Params["mirror_object"].Ref)

	rail, ok := doc.SourceByName("Rail")
	require.True(t, ok)
	assert.Equal(t, domain.ModeEdit, rail.Mode)
	assert.Equal(t, [3]float64{0, 0, 1}, rail.Location)
}

func TestLoaderLinkDefaults(t *testing.T) {
	doc := loadRig(t)

	hull, ok := doc.TargetByName("Hull")
	require.True(t, ok)
	require.NotNil(t, hull.Link)
	assert.Equal(t, "Hull.mesh", hull.Mesh.Name)
	assert.Equal(t, []string{"steel", "glass"}, hull.Mesh.Mesh.Materials)
	assert.True(t, hull.Link.AutoUpdate)
	assert.Equal(t, 1.5, hull.Link.Debounce)
	assert.False(t, hull.Link.ApplyModifiers)
	assert.Equal(t, "main hull shell", hull.Link.Note)
	require.NotNil(t, hull.Link.Source)
	assert.Equal(t, "Keel", hull.Link.Source.Name)

	deck, ok := doc.TargetByName("Deck")
	require.True(t, ok)
	assert.False(t, deck.Link.AutoUpdate)
	// Omitted debounce falls back to the document-wide default.
	assert.Equal(t, 0.3, deck.Link.Debounce)
	assert.True(t, deck.Link.ApplyModifiers)
}

func TestLoaderToolSettings(t *testing.T) {
	doc := loadRig(t)
	assert.Equal(t, 0.3, doc.Tools.DefaultDebounce)
	assert.True(t, doc.Tools.DefaultApplyModifiers)

	// Absent tools fall back to the built-in defaults.
	path := writeDoc(t, "version: \"1\"\n")
	bare, err := scene.NewLoader(nil).Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0.5, bare.Tools.DefaultDebounce)
	assert.True(t, bare.Tools.DefaultApplyModifiers)
}

func TestLoaderCollections(t *testing.T) {
	doc := loadRig(t)

	var names []string
	for coll := range doc.Collections() {
		names = append(names, coll.Name)
	}
	assert.Equal(t, []string{"Boat", "Deck Fittings"}, names)

	assert.Equal(t, "Boat", doc.FirstUserCollection("Keel").Name)
	assert.Equal(t, "Deck Fittings", doc.FirstUserCollection("Rail").Name)
}

func TestLoaderDuplicateCollectionName(t *testing.T) {
	path := writeDoc(t, `
collections:
  - name: Boat
  - name: Boat
`)
	_, err := scene.NewLoader(nil).Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDuplicateObjectName)
}

func TestLoaderDanglingLinkWarns(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Warn("link source not found in document: Missing")

	doc, err := scene.NewLoader(logger).Load("testdata/rig.yaml")
	require.NoError(t, err)

	orphan, ok := doc.TargetByName("Orphan")
	require.True(t, ok)
	require.NotNil(t, orphan.Link)
	assert.Nil(t, orphan.Link.Source)
	assert.Equal(t, "Missing", orphan.Link.SourceName)
}

func TestLoaderUnknownSplineKind(t *testing.T) {
	path := writeDoc(t, `
curves:
  - name: Bad
    splines:
      - kind: SPIRAL
`)
	_, err := scene.NewLoader(nil).Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownSplineKind)
}

func TestLoaderUnknownDataReference(t *testing.T) {
	path := writeDoc(t, `
sources:
  - name: Lost
    data: Nowhere
`)
	_, err := scene.NewLoader(nil).Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDocumentParseFailed)
}

func TestLoaderDuplicateSourceName(t *testing.T) {
	path := writeDoc(t, `
curves:
  - name: Data
    splines:
      - kind: POLY
        points:
          - co: [0, 0, 0]
sources:
  - name: Twin
    data: Data
  - name: Twin
    data: Data
`)
	_, err := scene.NewLoader(nil).Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDuplicateObjectName)
}

func TestLoaderMissingFile(t *testing.T) {
	_, err := scene.NewLoader(nil).Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrDocumentReadFailed.Error())
}

func TestLoaderMalformedYAML(t *testing.T) {
	path := writeDoc(t, "curves: [broken")
	_, err := scene.NewLoader(nil).Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrDocumentParseFailed.Error())
}

func TestLoaderSaveRoundTrip(t *testing.T) {
	doc := loadRig(t)

	hull, ok := doc.TargetByName("Hull")
	require.True(t, ok)
	hull.Mesh.Mesh.Vertices = [][3]float64{{0, 0, 0}, {1, 0, 0}}
	hull.Mesh.Mesh.Edges = [][2]int{{0, 1}}

	out := filepath.Join(t.TempDir(), "rig.yaml")
	loader := scene.NewLoader(nil)
	require.NoError(t, loader.Save(doc, out))

	reloaded, err := loader.Load(out)
	require.NoError(t, err)

	keel, ok := reloaded.CurveDataByName("KeelData")
	require.True(t, ok)
	assert.Equal(t, 0.2, keel.Settings.Extrude)

	rail, ok := reloaded.CurveDataByName("RailData")
	require.True(t, ok)
	assert.Equal(t, [4]float64{1, 0, 0, 2}, rail.Splines[0].Points[1].Co)

	hull2, ok := reloaded.TargetByName("Hull")
	require.True(t, ok)
	assert.Equal(t, "Hull.mesh", hull2.Mesh.Name)
	assert.Equal(t, []string{"steel", "glass"}, hull2.Mesh.Mesh.Materials)
	assert.Equal(t, 1.5, hull2.Link.Debounce)
	assert.False(t, hull2.Link.ApplyModifiers)

	deck2, ok := reloaded.TargetByName("Deck")
	require.True(t, ok)
	assert.False(t, deck2.Link.AutoUpdate)
	assert.Equal(t, 0.3, deck2.Link.Debounce)

	// Tool defaults and collections survive the round trip.
	assert.Equal(t, 0.3, reloaded.Tools.DefaultDebounce)
	boat := reloaded.FirstUserCollection("Keel")
	assert.Equal(t, "Boat", boat.Name)
	assert.Equal(t, []string{"Keel", "Hull"}, boat.Objects)
}

func writeDoc(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
