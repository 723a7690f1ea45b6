package fingerprint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curveforge/meshsync/internal/core/domain"
	"github.com/curveforge/meshsync/internal/engine/fingerprint"
)

// bezierSource builds a small recognized curve source. Each call produces a
// fresh, structurally identical value so tests can mutate one copy freely.
func bezierSource() *domain.Source {
	return &domain.Source{
		Name: "Path",
		Kind: domain.SourceCurve,
		Data: &domain.CurveData{
			Name: "PathData",
			Settings: domain.CurveSettings{
				Dimensions:  "3D",
				ResolutionU: 12,
				ResolutionV: 12,
				Extrude:     0.2,
				FillCaps:    true,
			},
			Splines: []*domain.Spline{
				{
					Kind:        domain.SplineBezier,
					OrderU:      4,
					OrderV:      4,
					ResolutionU: 12,
					BezierPoints: []domain.BezierPoint{
						{
							HandleLeft:  [3]float64{-0.5, 0, 0},
							Co:          [3]float64{0, 0, 0},
							HandleRight: [3]float64{0.5, 0, 0},
							Radius:      1,
						},
						{
							HandleLeft:  [3]float64{0.5, 1, 0},
							Co:          [3]float64{1, 1, 0},
							HandleRight: [3]float64{1.5, 1, 0},
							Radius:      1,
						},
					},
				},
			},
		},
		Modifiers: []*domain.Modifier{
			{
				Kind:         domain.ModifierSubsurf,
				ShowViewport: true,
				ShowRender:   true,
				Params: map[string]domain.ParamValue{
					"levels": domain.ScalarParam(2),
				},
			},
		},
	}
}

func digest(t *testing.T, src *domain.Source) string {
	t.Helper()
	d, ok := fingerprint.NewEngine().Fingerprint(src)
	require.True(t, ok)
	return d
}

func TestFingerprintDeterministic(t *testing.T) {
	first := digest(t, bezierSource())
	second := digest(t, bezierSource())
	assert.Equal(t, first, second)
}

func TestFingerprintSensitivity(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(src *domain.Source)
	}{
		{
			name:   "resolution change",
			mutate: func(src *domain.Source) { src.Data.Settings.ResolutionU = 24 },
		},
		{
			name:   "bevel depth change",
			mutate: func(src *domain.Source) { src.Data.Settings.BevelDepth = 0.1 },
		},
		{
			name:   "fill caps toggled",
			mutate: func(src *domain.Source) { src.Data.Settings.FillCaps = false },
		},
		{
			name:   "control point moved",
			mutate: func(src *domain.Source) { src.Data.Splines[0].BezierPoints[1].Co[0] = 1.0001 },
		},
		{
			name:   "handle moved",
			mutate: func(src *domain.Source) { src.Data.Splines[0].BezierPoints[0].HandleRight[1] = 0.25 },
		},
		{
			name:   "tilt change",
			mutate: func(src *domain.Source) { src.Data.Splines[0].BezierPoints[0].Tilt = 0.3 },
		},
		{
			name:   "radius change",
			mutate: func(src *domain.Source) { src.Data.Splines[0].BezierPoints[1].Radius = 0.5 },
		},
		{
			name:   "spline closed",
			mutate: func(src *domain.Source) { src.Data.Splines[0].CyclicU = true },
		},
		{
			name: "spline appended",
			mutate: func(src *domain.Source) {
				src.Data.Splines = append(src.Data.Splines, &domain.Spline{
					Kind:   domain.SplinePoly,
					Points: []domain.ControlPoint{{Co: [4]float64{0, 0, 0, 1}, Radius: 1}},
				})
			},
		},
		{
			name:   "modifier level change",
			mutate: func(src *domain.Source) { src.Modifiers[0].Params["levels"] = domain.ScalarParam(3) },
		},
		{
			name:   "modifier viewport toggled",
			mutate: func(src *domain.Source) { src.Modifiers[0].ShowViewport = false },
		},
		{
			name: "modifier appended",
			mutate: func(src *domain.Source) {
				src.Modifiers = append(src.Modifiers, &domain.Modifier{
					Kind:         domain.ModifierSolidify,
					ShowViewport: true,
					ShowRender:   true,
				})
			},
		},
	}

	base := digest(t, bezierSource())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := bezierSource()
			tt.mutate(src)
			assert.NotEqual(t, base, digest(t, src))
		})
	}
}

func TestFingerprintIgnoresNonShapeState(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(src *domain.Source)
	}{
		{
			name:   "renamed",
			mutate: func(src *domain.Source) { src.Name = "Path.alt" },
		},
		{
			name:   "hidden",
			mutate: func(src *domain.Source) { src.Hidden = true },
		},
		{
			name:   "selected",
			mutate: func(src *domain.Source) { src.Selected = true },
		},
		{
			name:   "moved",
			mutate: func(src *domain.Source) { src.Location = [3]float64{4, 5, 6} },
		},
		{
			name:   "rotated and scaled",
			mutate: func(src *domain.Source) { src.Rotation[2] = 1.57; src.Scale = [3]float64{2, 2, 2} },
		},
		{
			name:   "interaction mode",
			mutate: func(src *domain.Source) { src.Mode = domain.ModeEdit },
		},
	}

	base := digest(t, bezierSource())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := bezierSource()
			tt.mutate(src)
			assert.Equal(t, base, digest(t, src))
		})
	}
}

func TestFingerprintUnrecognized(t *testing.T) {
	engine := fingerprint.NewEngine()

	src := bezierSource()
	src.Data = nil
	_, ok := engine.Fingerprint(src)
	assert.False(t, ok)

	src = bezierSource()
	src.Kind = "MESH"
	_, ok = engine.Fingerprint(src)
	assert.False(t, ok)
}

// TestFingerprintFieldBoundaries verifies that adjacent field encodings can
// never collide: shifting characters across a field boundary must change the
// digest even though the raw concatenation is identical.
func TestFingerprintFieldBoundaries(t *testing.T) {
	withRefs := func(x, y string) *domain.Source {
		src := bezierSource()
		src.Modifiers = []*domain.Modifier{
			{
				Kind:         "CUSTOM",
				ShowViewport: true,
				ShowRender:   true,
				Params: map[string]domain.ParamValue{
					"x": domain.RefParam(x),
					"y": domain.RefParam(y),
				},
			},
		}
		return src
	}

	assert.NotEqual(t, digest(t, withRefs("ab", "c")), digest(t, withRefs("a", "bc")))
}

// Unknown modifier kinds fall back to the modifier's own parameter set, which
// must hash independently of map insertion history.
func TestFingerprintUnknownModifierDeterministic(t *testing.T) {
	build := func(names ...string) *domain.Source {
		src := bezierSource()
		params := make(map[string]domain.ParamValue)
		for i, name := range names {
			params[name] = domain.ScalarParam(float64(i + 1))
		}
		// Re-assign values so both constructions agree on content.
		params["alpha"] = domain.ScalarParam(1)
		params["beta"] = domain.ScalarParam(2)
		params["gamma"] = domain.ScalarParam(3)
		src.Modifiers = []*domain.Modifier{
			{Kind: "CUSTOM", ShowViewport: true, ShowRender: true, Params: params},
		}
		return src
	}

	first := digest(t, build("alpha", "beta", "gamma"))
	second := digest(t, build("gamma", "beta", "alpha"))
	assert.Equal(t, first, second)
}
