package fingerprint

import (
	"sort"

	"github.com/curveforge/meshsync/internal/core/domain"
)

// ParamSpec is one entry of a modifier kind's hash schema.
type ParamSpec struct {
	Name string
	Kind domain.ParamKind
}

// modifierSchema maps each known modifier kind to the parameters that enter
// its fingerprint. The table is resolved once at startup and sorted
// lexicographically by parameter name, so the digest is independent of any
// incidental declaration order and the schema stays auditable.
var modifierSchema = map[domain.ModifierKind][]ParamSpec{
	domain.ModifierSubsurf: {
		{Name: "levels", Kind: domain.ParamScalar},
		{Name: "render_levels", Kind: domain.ParamScalar},
	},
	domain.ModifierMirror: {
		{Name: "mirror_object", Kind: domain.ParamRef},
		{Name: "use_axis_x", Kind: domain.ParamScalar},
		{Name: "use_axis_y", Kind: domain.ParamScalar},
		{Name: "use_axis_z", Kind: domain.ParamScalar},
	},
	domain.ModifierArray: {
		{Name: "count", Kind: domain.ParamScalar},
		{Name: "offset_object", Kind: domain.ParamRef},
		{Name: "relative_offset_x", Kind: domain.ParamScalar},
		{Name: "relative_offset_y", Kind: domain.ParamScalar},
		{Name: "relative_offset_z", Kind: domain.ParamScalar},
	},
	domain.ModifierSolidify: {
		{Name: "offset", Kind: domain.ParamScalar},
		{Name: "thickness", Kind: domain.ParamScalar},
	},
	domain.ModifierCurveDeform: {
		{Name: "deform_axis", Kind: domain.ParamScalar},
		{Name: "object", Kind: domain.ParamRef},
	},
	domain.ModifierBoolean: {
		{Name: "operands", Kind: domain.ParamRefList},
		{Name: "solver", Kind: domain.ParamScalar},
	},
}

func init() {
	for _, specs := range modifierSchema {
		sort.Slice(specs, func(i, j int) bool { return specs[i].Name < specs[j].Name })
	}
}

// schemaFor returns the hash schema for a modifier. Unknown kinds fall back to
// the modifier's own parameter set sorted by name, so the digest stays
// deterministic even for kinds the table has not caught up with.
func schemaFor(mod *domain.Modifier) []ParamSpec {
	if specs, ok := modifierSchema[mod.Kind]; ok {
		return specs
	}

	specs := make([]ParamSpec, 0, len(mod.Params))
	for name, value := range mod.Params {
		specs = append(specs, ParamSpec{Name: name, Kind: value.Kind})
	}
	sort.Slice(specs, func(i, j int) bool { return specs[i].Name < specs[j].Name })
	return specs
}
