package sync

import (
	"context"

	"github.com/curveforge/meshsync/internal/core/domain"
	"github.com/curveforge/meshsync/internal/core/ports"
	"go.trai.ch/zerr"
)

// Builder requests tessellated meshes from the evaluation service and
// normalizes their placement.
type Builder struct {
	evaluator ports.Evaluator
}

// NewBuilder creates a builder over the given evaluation service.
func NewBuilder(evaluator ports.Evaluator) *Builder {
	return &Builder{evaluator: evaluator}
}

// Build tessellates the source and applies placement normalization. The
// evaluation call is blocking and carries no timeout.
func (b *Builder) Build(ctx context.Context, src *domain.Source, opts ports.EvaluateOptions) (*domain.Mesh, error) {
	mesh, err := b.evaluator.Evaluate(ctx, src, opts)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "evaluation failed"), "source", src.Name)
	}

	normalizePlacement(src, mesh)
	return mesh, nil
}

// normalizePlacement translates the mesh so that, when the source has exactly
// one open spline, that spline's first control point sits at the local
// origin. This keeps path-following behavior stable across regenerations.
// Sources with zero or several open splines are left untouched.
func normalizePlacement(src *domain.Source, mesh *domain.Mesh) {
	if src.Data == nil {
		return
	}

	var open *domain.Spline
	for _, spline := range src.Data.Splines {
		if spline.Cyclic() {
			continue
		}
		if open != nil {
			return
		}
		open = spline
	}
	if open == nil {
		return
	}

	origin, ok := firstPoint(open)
	if !ok {
		return
	}
	mesh.Translate([3]float64{-origin[0], -origin[1], -origin[2]})
}

// firstPoint returns the cartesian position of the spline's first control
// point, projecting from homogeneous coordinates for weighted points.
func firstPoint(s *domain.Spline) ([3]float64, bool) {
	switch s.Kind {
	case domain.SplineBezier:
		if len(s.BezierPoints) == 0 {
			return [3]float64{}, false
		}
		return s.BezierPoints[0].Co, true
	case domain.SplineSurface:
		if len(s.Rows) == 0 || len(s.Rows[0]) == 0 {
			return [3]float64{}, false
		}
		return s.Rows[0][0].Projected(), true
	default:
		if len(s.Points) == 0 {
			return [3]float64{}, false
		}
		return s.Points[0].Projected(), true
	}
}
