package fingerprint

import (
	"fmt"
	"io"
	"strconv"

	"github.com/curveforge/meshsync/internal/core/domain"
)

// Audit writes a human-readable dump of every field that enters the source's
// fingerprint, in hash order. It exists so the hash schema can be reviewed and
// versioned without decoding digests. The return mirrors Fingerprint: false
// means the source is not a recognized curve/surface type.
func (e *Engine) Audit(src *domain.Source, w io.Writer) bool {
	if !src.Recognized() {
		return false
	}

	s := &src.Data.Settings
	line(w, "settings.dimensions", s.Dimensions)
	line(w, "settings.resolution_u", strconv.Itoa(s.ResolutionU))
	line(w, "settings.resolution_v", strconv.Itoa(s.ResolutionV))
	line(w, "settings.render_resolution_u", strconv.Itoa(s.RenderResolutionU))
	line(w, "settings.render_resolution_v", strconv.Itoa(s.RenderResolutionV))
	line(w, "settings.bevel_depth", floatText(s.BevelDepth))
	line(w, "settings.bevel_resolution", strconv.Itoa(s.BevelResolution))
	line(w, "settings.extrude", floatText(s.Extrude))
	line(w, "settings.offset", floatText(s.Offset))
	line(w, "settings.twist_smooth", floatText(s.TwistSmooth))
	line(w, "settings.fill_caps", boolText(s.FillCaps))
	line(w, "settings.fill_deform", boolText(s.FillDeform))

	for i, spline := range src.Data.Splines {
		auditSpline(w, i, spline)
	}
	for i, mod := range src.Modifiers {
		auditModifier(w, i, mod)
	}
	return true
}

func auditSpline(w io.Writer, idx int, s *domain.Spline) {
	prefix := fmt.Sprintf("spline[%d]", idx)
	line(w, prefix+".kind", string(s.Kind))
	line(w, prefix+".cyclic_u", boolText(s.CyclicU))
	line(w, prefix+".cyclic_v", boolText(s.CyclicV))
	line(w, prefix+".order_u", strconv.Itoa(s.OrderU))
	line(w, prefix+".order_v", strconv.Itoa(s.OrderV))
	line(w, prefix+".resolution_u", strconv.Itoa(s.ResolutionU))
	line(w, prefix+".resolution_v", strconv.Itoa(s.ResolutionV))

	switch s.Kind {
	case domain.SplineBezier:
		for i, p := range s.BezierPoints {
			pp := fmt.Sprintf("%s.point[%d]", prefix, i)
			line(w, pp+".handle_left", vec3Text(p.HandleLeft))
			line(w, pp+".co", vec3Text(p.Co))
			line(w, pp+".handle_right", vec3Text(p.HandleRight))
			line(w, pp+".tilt", floatText(p.Tilt))
			line(w, pp+".radius", floatText(p.Radius))
		}
	case domain.SplineSurface:
		for r, row := range s.Rows {
			for i, p := range row {
				pp := fmt.Sprintf("%s.row[%d].point[%d]", prefix, r, i)
				line(w, pp+".co", vec4Text(p.Co))
				line(w, pp+".tilt", floatText(p.Tilt))
				line(w, pp+".radius", floatText(p.Radius))
			}
		}
	default:
		for i, p := range s.Points {
			pp := fmt.Sprintf("%s.point[%d]", prefix, i)
			line(w, pp+".co", vec4Text(p.Co))
			line(w, pp+".tilt", floatText(p.Tilt))
			line(w, pp+".radius", floatText(p.Radius))
		}
	}
}

func auditModifier(w io.Writer, idx int, mod *domain.Modifier) {
	prefix := fmt.Sprintf("modifier[%d]", idx)
	line(w, prefix+".kind", string(mod.Kind))
	line(w, prefix+".show_viewport", boolText(mod.ShowViewport))
	line(w, prefix+".show_render", boolText(mod.ShowRender))

	for _, spec := range schemaFor(mod) {
		key := prefix + "." + spec.Name
		value, ok := mod.Params[spec.Name]
		if !ok {
			line(w, key, "<unset>")
			continue
		}
		switch spec.Kind {
		case domain.ParamScalar:
			line(w, key, floatText(value.Scalar))
		case domain.ParamRef:
			line(w, key, value.Ref)
		case domain.ParamRefList:
			line(w, key, fmt.Sprintf("%v", value.Refs))
		}
	}
}

func line(w io.Writer, key, value string) {
	_, _ = fmt.Fprintf(w, "%s = %s\n", key, value)
}

func floatText(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func boolText(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

func vec3Text(v [3]float64) string {
	return fmt.Sprintf("(%s, %s, %s)", floatText(v[0]), floatText(v[1]), floatText(v[2]))
}

func vec4Text(v [4]float64) string {
	return fmt.Sprintf("(%s, %s, %s, %s)", floatText(v[0]), floatText(v[1]), floatText(v[2]), floatText(v[3]))
}
