// Package domain contains the core domain model for meshsync: parametric
// sources, their splines and modifier stacks, derived mesh targets, and the
// link records that tie them together.
package domain

// SourceKind identifies the kind of a parametric source object.
type SourceKind string

const (
	// SourceCurve is a parametric curve object.
	SourceCurve SourceKind = "CURVE"
	// SourceSurface is a parametric surface object.
	SourceSurface SourceKind = "SURFACE"
)

// InteractionMode is the interaction state of an object in the host scene.
type InteractionMode string

const (
	// ModeObject is the default, non-editing interaction mode.
	ModeObject InteractionMode = "OBJECT"
	// ModeEdit is the direct point-editing interaction mode.
	ModeEdit InteractionMode = "EDIT"
)

// SplineKind identifies the kind of a spline within curve data.
type SplineKind string

const (
	// SplineBezier is a cubic bezier spline with handles per point.
	SplineBezier SplineKind = "BEZIER"
	// SplineNURBS is a weighted B-spline.
	SplineNURBS SplineKind = "NURBS"
	// SplinePoly is a polyline.
	SplinePoly SplineKind = "POLY"
	// SplineSurface is a grid of control points forming a surface patch.
	SplineSurface SplineKind = "SURFACE"
)

// ControlPoint is a weighted control point used by NURBS, poly, and surface
// splines. Co holds x, y, z and the homogeneous weight w.
type ControlPoint struct {
	Co     [4]float64
	Tilt   float64
	Radius float64
}

// Projected returns the cartesian position of the point, dividing out the
// homogeneous weight when it is non-zero.
func (p ControlPoint) Projected() [3]float64 {
	w := p.Co[3]
	if w == 0 {
		return [3]float64{p.Co[0], p.Co[1], p.Co[2]}
	}
	return [3]float64{p.Co[0] / w, p.Co[1] / w, p.Co[2] / w}
}

// BezierPoint is a bezier control point with its two handles.
type BezierPoint struct {
	HandleLeft  [3]float64
	Co          [3]float64
	HandleRight [3]float64
	Tilt        float64
	Radius      float64
}

// Spline is one spline of a curve's data. Which point slice is populated
// depends on Kind: BezierPoints for bezier splines, Points for NURBS and poly
// splines, Rows for surface patches.
type Spline struct {
	Kind        SplineKind
	CyclicU     bool
	CyclicV     bool
	OrderU      int
	OrderV      int
	ResolutionU int
	ResolutionV int

	BezierPoints []BezierPoint
	Points       []ControlPoint
	Rows         [][]ControlPoint
}

// Cyclic reports whether the spline closes on itself along its main direction.
func (s *Spline) Cyclic() bool {
	return s.CyclicU
}

// CurveSettings are the curve-level tessellation settings that affect the
// generated shape.
type CurveSettings struct {
	Dimensions        string
	ResolutionU       int
	ResolutionV       int
	RenderResolutionU int
	RenderResolutionV int
	BevelDepth        float64
	BevelResolution   int
	Extrude           float64
	Offset            float64
	TwistSmooth       float64
	FillCaps          bool
	FillDeform        bool
}

// CurveData is the shape data of one or more source objects. It is a shared
// resource in the host scene graph: several objects may reference the same
// data block.
type CurveData struct {
	Name     string
	Settings CurveSettings
	Splines  []*Spline
}

// Source is a parametric curve or surface object in the host scene graph.
// Name is a stable identifier that is unique among live objects but may be
// reused after deletion.
//
// Hidden, Selected, and the transform fields are carried for completeness but
// are deliberately outside the fingerprinted state: they do not affect the
// tessellated shape.
type Source struct {
	Name      string
	Kind      SourceKind
	Data      *CurveData
	Modifiers []*Modifier
	Mode      InteractionMode

	Hidden   bool
	Selected bool
	Location [3]float64
	Rotation [3]float64
	Scale    [3]float64
}

// Recognized reports whether the source is of a kind the fingerprint engine
// understands. Unrecognized sources must be treated as always changed.
func (s *Source) Recognized() bool {
	if s == nil || s.Data == nil {
		return false
	}
	return s.Kind == SourceCurve || s.Kind == SourceSurface
}
