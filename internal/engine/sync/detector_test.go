package sync_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/curveforge/meshsync/internal/core/domain"
	"github.com/curveforge/meshsync/internal/engine/fingerprint"
	"github.com/curveforge/meshsync/internal/engine/sync"
)

// polySource builds a minimal recognized source with a single poly spline.
func polySource(name string, x float64) *domain.Source {
	return &domain.Source{
		Name: name,
		Kind: domain.SourceCurve,
		Mode: domain.ModeObject,
		Data: &domain.CurveData{
			Name: name + "Data",
			Settings: domain.CurveSettings{
				Dimensions:  "3D",
				ResolutionU: 12,
				ResolutionV: 12,
			},
			Splines: []*domain.Spline{
				{
					Kind: domain.SplinePoly,
					Points: []domain.ControlPoint{
						{Co: [4]float64{x, 0, 0, 1}, Radius: 1},
						{Co: [4]float64{x + 1, 0, 0, 1}, Radius: 1},
					},
				},
			},
		},
	}
}

func TestDetectorChanged(t *testing.T) {
	d := sync.NewDetector(fingerprint.NewEngine())
	src := polySource("Path", 0)

	assert.True(t, d.Changed(src), "first check seeds the cache")
	assert.False(t, d.Changed(src), "identical state is unchanged")

	src.Data.Splines[0].Points[0].Co[0] = 0.5
	assert.True(t, d.Changed(src), "moved point changes the digest")
	assert.False(t, d.Changed(src))
}

func TestDetectorChangedUnrecognized(t *testing.T) {
	d := sync.NewDetector(fingerprint.NewEngine())

	src := polySource("Path", 0)
	src.Data = nil

	// Unrecognized sources always report changed; skipping them silently
	// would freeze their targets forever.
	assert.True(t, d.Changed(src))
	assert.True(t, d.Changed(src))
}

func TestDetectorChangedNilAndUnnamed(t *testing.T) {
	d := sync.NewDetector(fingerprint.NewEngine())

	assert.False(t, d.Changed(nil))
	assert.False(t, d.Changed(&domain.Source{}))
}

func TestDetectorForget(t *testing.T) {
	d := sync.NewDetector(fingerprint.NewEngine())
	src := polySource("Path", 0)

	assert.True(t, d.Changed(src))
	d.Forget("Path")
	assert.True(t, d.Changed(src), "forgotten source reports changed again")
}

func TestDetectorClear(t *testing.T) {
	d := sync.NewDetector(fingerprint.NewEngine())
	a := polySource("A", 0)
	b := polySource("B", 3)

	assert.True(t, d.Changed(a))
	assert.True(t, d.Changed(b))

	d.Clear()
	assert.True(t, d.Changed(a))
	assert.True(t, d.Changed(b))
}

func TestDetectorExitedDirectEdit(t *testing.T) {
	d := sync.NewDetector(fingerprint.NewEngine())
	src := polySource("Path", 0)

	assert.False(t, d.ExitedDirectEdit(src), "first observation is never an exit")

	src.Mode = domain.ModeEdit
	assert.False(t, d.ExitedDirectEdit(src), "entering edit is not an exit")

	src.Mode = domain.ModeObject
	assert.True(t, d.ExitedDirectEdit(src), "edit to object is the exit edge")
	assert.False(t, d.ExitedDirectEdit(src), "the edge fires once")
}

func TestDetectorExitedDirectEditDefaultsMode(t *testing.T) {
	d := sync.NewDetector(fingerprint.NewEngine())
	src := polySource("Path", 0)
	src.Mode = ""

	assert.False(t, d.ExitedDirectEdit(src))

	src.Mode = domain.ModeEdit
	d.ExitedDirectEdit(src)
	src.Mode = ""
	assert.True(t, d.ExitedDirectEdit(src), "empty mode counts as object mode")
}

func TestDetectorExitedDirectEditUnrecognized(t *testing.T) {
	d := sync.NewDetector(fingerprint.NewEngine())
	src := polySource("Path", 0)
	src.Data = nil
	src.Mode = domain.ModeEdit

	assert.False(t, d.ExitedDirectEdit(src))
	src.Mode = domain.ModeObject
	assert.False(t, d.ExitedDirectEdit(src), "unrecognized sources never track modes")
}
