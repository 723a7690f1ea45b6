// Package evaluator tessellates parametric curve and surface data into
// polygonal meshes, optionally applying the source's modifier stack.
package evaluator

import (
	"context"

	"github.com/curveforge/meshsync/internal/core/domain"
	"github.com/curveforge/meshsync/internal/core/ports"
	"go.trai.ch/zerr"
)

// Tessellator converts a source's curve data into a mesh. It is stateless and
// safe for concurrent use.
type Tessellator struct{}

var _ ports.Evaluator = (*Tessellator)(nil)

// NewTessellator creates a tessellator.
func NewTessellator() *Tessellator {
	return &Tessellator{}
}

// Evaluate tessellates the source's curve data. When opts.ApplyModifiers is
// set, the viewport-enabled modifiers of the stack are applied in order; a
// modifier the evaluator cannot realize fails the whole evaluation.
func (t *Tessellator) Evaluate(ctx context.Context, src *domain.Source, opts ports.EvaluateOptions) (*domain.Mesh, error) {
	if src == nil || src.Data == nil {
		return nil, domain.ErrNoCurveData
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	mesh := &domain.Mesh{}
	if opts.PreserveAllLayers {
		mesh.Layers = make(map[string][]float64)
	}

	settings := &src.Data.Settings
	for _, spline := range src.Data.Splines {
		if err := tessellateSpline(mesh, spline, settings, opts.PreserveAllLayers); err != nil {
			return nil, zerr.With(err, "curve", src.Data.Name)
		}
	}

	if opts.ApplyModifiers {
		for _, mod := range src.Modifiers {
			if !mod.ShowViewport {
				continue
			}
			next, err := applyModifier(mesh, mod)
			if err != nil {
				return nil, zerr.With(zerr.Wrap(err, ""), "modifier", string(mod.Kind))
			}
			mesh = next
		}
	}
	return mesh, nil
}

func tessellateSpline(mesh *domain.Mesh, spline *domain.Spline, settings *domain.CurveSettings, keepLayers bool) error {
	switch spline.Kind {
	case domain.SplineBezier:
		appendCurve(mesh, sampleBezier(spline, resolutionU(spline, settings)), spline.Cyclic(), settings, keepLayers)
	case domain.SplineNURBS:
		appendCurve(mesh, sampleNURBSCurve(spline, resolutionU(spline, settings)), spline.Cyclic(), settings, keepLayers)
	case domain.SplinePoly:
		appendCurve(mesh, samplePoly(spline), spline.Cyclic(), settings, keepLayers)
	case domain.SplineSurface:
		appendSurface(mesh, spline, settings)
	default:
		return zerr.With(zerr.Wrap(domain.ErrUnknownSplineKind, ""), "kind", string(spline.Kind))
	}
	return nil
}

func resolutionU(spline *domain.Spline, settings *domain.CurveSettings) int {
	res := spline.ResolutionU
	if res <= 0 {
		res = settings.ResolutionU
	}
	if res < 1 {
		res = 1
	}
	return res
}

func resolutionV(spline *domain.Spline, settings *domain.CurveSettings) int {
	res := spline.ResolutionV
	if res <= 0 {
		res = settings.ResolutionV
	}
	if res < 1 {
		res = 1
	}
	return res
}

// sample is one evaluated point along a spline.
type sample struct {
	pos    [3]float64
	t      float64
	tilt   float64
	radius float64
}

func sampleBezier(spline *domain.Spline, res int) []sample {
	points := spline.BezierPoints
	if len(points) == 0 {
		return nil
	}
	if len(points) == 1 {
		p := points[0]
		return []sample{{pos: p.Co, tilt: p.Tilt, radius: p.Radius}}
	}

	segments := len(points) - 1
	if spline.Cyclic() {
		segments = len(points)
	}

	var out []sample
	for seg := range segments {
		a := points[seg]
		b := points[(seg+1)%len(points)]
		for i := range res {
			u := float64(i) / float64(res)
			out = append(out, sample{
				pos:    cubicBezier(a.Co, a.HandleRight, b.HandleLeft, b.Co, u),
				t:      (float64(seg) + u) / float64(segments),
				tilt:   lerp(a.Tilt, b.Tilt, u),
				radius: lerp(a.Radius, b.Radius, u),
			})
		}
	}
	if !spline.Cyclic() {
		last := points[len(points)-1]
		out = append(out, sample{pos: last.Co, t: 1, tilt: last.Tilt, radius: last.Radius})
	}
	return out
}

func samplePoly(spline *domain.Spline) []sample {
	out := make([]sample, 0, len(spline.Points))
	n := len(spline.Points)
	for i, p := range spline.Points {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		out = append(out, sample{pos: p.Projected(), t: t, tilt: p.Tilt, radius: p.Radius})
	}
	return out
}

// appendCurve adds one sampled curve to the mesh. A flat curve becomes an
// edge chain; a curve with extrusion becomes a ribbon of quads.
func appendCurve(mesh *domain.Mesh, samples []sample, cyclic bool, settings *domain.CurveSettings, keepLayers bool) {
	if len(samples) == 0 {
		return
	}
	if settings.Extrude > 0 {
		appendRibbon(mesh, samples, cyclic, settings)
		return
	}

	base := len(mesh.Vertices)
	for _, s := range samples {
		mesh.Vertices = append(mesh.Vertices, s.pos)
		if keepLayers {
			mesh.Layers["t"] = append(mesh.Layers["t"], s.t)
			mesh.Layers["tilt"] = append(mesh.Layers["tilt"], s.tilt)
			mesh.Layers["radius"] = append(mesh.Layers["radius"], s.radius)
		}
	}
	for i := range len(samples) - 1 {
		mesh.Edges = append(mesh.Edges, [2]int{base + i, base + i + 1})
	}
	if cyclic && len(samples) > 2 {
		mesh.Edges = append(mesh.Edges, [2]int{base + len(samples) - 1, base})
	}
}

// appendRibbon extrudes the sampled curve along z by the curve's extrude
// amount, producing a strip of quads with optional end caps.
func appendRibbon(mesh *domain.Mesh, samples []sample, cyclic bool, settings *domain.CurveSettings) {
	base := len(mesh.Vertices)
	for _, s := range samples {
		lo := s.pos
		hi := s.pos
		lo[2] -= settings.Extrude
		hi[2] += settings.Extrude
		mesh.Vertices = append(mesh.Vertices, lo, hi)
	}

	quads := len(samples) - 1
	if cyclic {
		quads = len(samples)
	}
	for i := range quads {
		a := base + 2*i
		b := base + 2*((i+1)%len(samples))
		mesh.Edges = append(mesh.Edges, [2]int{a, b}, [2]int{a + 1, b + 1})
		mesh.Faces = append(mesh.Faces, []int{a, b, b + 1, a + 1})
	}
	for i := range samples {
		mesh.Edges = append(mesh.Edges, [2]int{base + 2*i, base + 2*i + 1})
	}
	if settings.FillCaps && !cyclic && len(samples) > 1 {
		last := base + 2*(len(samples)-1)
		mesh.Faces = append(mesh.Faces, []int{base, base + 1, last + 1, last})
	}
}

// appendSurface tessellates a tensor patch by sampling each control row in U
// and then each resulting column in V.
func appendSurface(mesh *domain.Mesh, spline *domain.Spline, settings *domain.CurveSettings) {
	if len(spline.Rows) == 0 {
		return
	}

	resU := resolutionU(spline, settings)
	resV := resolutionV(spline, settings)

	sampledRows := make([][][3]float64, 0, len(spline.Rows))
	for _, row := range spline.Rows {
		sampledRows = append(sampledRows, sampleNURBS(row, spline.OrderU, spline.CyclicU, resU))
	}

	cols := len(sampledRows[0])
	grid := make([][][3]float64, 0, cols)
	for c := range cols {
		column := make([]domain.ControlPoint, 0, len(sampledRows))
		for _, row := range sampledRows {
			column = append(column, domain.ControlPoint{Co: [4]float64{row[c][0], row[c][1], row[c][2], 1}})
		}
		grid = append(grid, sampleNURBS(column, spline.OrderV, spline.CyclicV, resV))
	}

	base := len(mesh.Vertices)
	rows := len(grid[0])
	for r := range rows {
		for c := range cols {
			mesh.Vertices = append(mesh.Vertices, grid[c][r])
		}
	}

	quadRows := rows - 1
	if spline.CyclicV {
		quadRows = rows
	}
	quadCols := cols - 1
	if spline.CyclicU {
		quadCols = cols
	}
	for r := range quadRows {
		for c := range quadCols {
			a := base + r*cols + c
			b := base + r*cols + (c+1)%cols
			d := base + ((r+1)%rows)*cols + c
			e := base + ((r+1)%rows)*cols + (c+1)%cols
			mesh.Edges = append(mesh.Edges, [2]int{a, b}, [2]int{a, d})
			mesh.Faces = append(mesh.Faces, []int{a, b, e, d})
		}
	}
}

func cubicBezier(p0, h0, h1, p1 [3]float64, u float64) [3]float64 {
	v := 1 - u
	b0 := v * v * v
	b1 := 3 * v * v * u
	b2 := 3 * v * u * u
	b3 := u * u * u

	var out [3]float64
	for i := range out {
		out[i] = b0*p0[i] + b1*h0[i] + b2*h1[i] + b3*p1[i]
	}
	return out
}

func lerp(a, b, u float64) float64 {
	return a + (b-a)*u
}
