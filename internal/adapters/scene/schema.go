package scene

// DocumentDTO is the YAML shape of a scene document.
type DocumentDTO struct {
	Version     string          `yaml:"version,omitempty"`
	Tools       ToolsDTO        `yaml:"tools,omitempty"`
	Curves      []CurveDTO      `yaml:"curves,omitempty"`
	Sources     []SourceDTO     `yaml:"sources,omitempty"`
	Targets     []TargetDTO     `yaml:"targets,omitempty"`
	Collections []CollectionDTO `yaml:"collections,omitempty"`
}

// CollectionDTO is one named grouping of scene objects.
type CollectionDTO struct {
	Name    string   `yaml:"name"`
	Objects []string `yaml:"objects,omitempty,flow"`
}

// ToolsDTO holds document-wide defaults applied to link records that omit the
// corresponding field.
type ToolsDTO struct {
	DefaultDebounce       *float64 `yaml:"default_debounce,omitempty"`
	DefaultApplyModifiers *bool    `yaml:"default_apply_modifiers,omitempty"`
}

// CurveDTO is one shared curve-data resource.
type CurveDTO struct {
	Name     string       `yaml:"name"`
	Settings SettingsDTO  `yaml:"settings,omitempty"`
	Splines  []SplineDTO  `yaml:"splines,omitempty"`
}

// SettingsDTO mirrors domain.CurveSettings.
type SettingsDTO struct {
	Dimensions        string  `yaml:"dimensions,omitempty"`
	ResolutionU       int     `yaml:"resolution_u,omitempty"`
	ResolutionV       int     `yaml:"resolution_v,omitempty"`
	RenderResolutionU int     `yaml:"render_resolution_u,omitempty"`
	RenderResolutionV int     `yaml:"render_resolution_v,omitempty"`
	BevelDepth        float64 `yaml:"bevel_depth,omitempty"`
	BevelResolution   int     `yaml:"bevel_resolution,omitempty"`
	Extrude           float64 `yaml:"extrude,omitempty"`
	Offset            float64 `yaml:"offset,omitempty"`
	TwistSmooth       float64 `yaml:"twist_smooth,omitempty"`
	FillCaps          bool    `yaml:"fill_caps,omitempty"`
	FillDeform        bool    `yaml:"fill_deform,omitempty"`
}

// SplineDTO is one spline of a curve.
type SplineDTO struct {
	Kind        string           `yaml:"kind"`
	CyclicU     bool             `yaml:"cyclic_u,omitempty"`
	CyclicV     bool             `yaml:"cyclic_v,omitempty"`
	OrderU      int              `yaml:"order_u,omitempty"`
	OrderV      int              `yaml:"order_v,omitempty"`
	ResolutionU int              `yaml:"resolution_u,omitempty"`
	ResolutionV int              `yaml:"resolution_v,omitempty"`

	BezierPoints []BezierPointDTO `yaml:"bezier_points,omitempty"`
	Points       []PointDTO       `yaml:"points,omitempty"`
	Rows         [][]PointDTO     `yaml:"rows,omitempty"`
}

// BezierPointDTO is one bezier control point.
type BezierPointDTO struct {
	HandleLeft  []float64 `yaml:"handle_left,flow"`
	Co          []float64 `yaml:"co,flow"`
	HandleRight []float64 `yaml:"handle_right,flow"`
	Tilt        float64   `yaml:"tilt,omitempty"`
	Radius      float64   `yaml:"radius,omitempty"`
}

// PointDTO is one weighted control point. Co is x, y, z and optionally w;
// the weight defaults to 1.
type PointDTO struct {
	Co     []float64 `yaml:"co,flow"`
	Tilt   float64   `yaml:"tilt,omitempty"`
	Radius float64   `yaml:"radius,omitempty"`
}

// SourceDTO is one parametric source object.
type SourceDTO struct {
	Name      string        `yaml:"name"`
	Kind      string        `yaml:"kind,omitempty"`
	Data      string        `yaml:"data"`
	Mode      string        `yaml:"mode,omitempty"`
	Hidden    bool          `yaml:"hidden,omitempty"`
	Selected  bool          `yaml:"selected,omitempty"`
	Location  []float64     `yaml:"location,flow,omitempty"`
	Rotation  []float64     `yaml:"rotation,flow,omitempty"`
	Scale     []float64     `yaml:"scale,flow,omitempty"`
	Modifiers []ModifierDTO `yaml:"modifiers,omitempty"`
}

// ModifierDTO is one modifier stack entry.
type ModifierDTO struct {
	Kind         string              `yaml:"kind"`
	ShowViewport *bool               `yaml:"show_viewport,omitempty"`
	ShowRender   *bool               `yaml:"show_render,omitempty"`
	Params       map[string]ParamDTO `yaml:"params,omitempty"`
}

// ParamDTO is one modifier parameter. Exactly one field should be set.
type ParamDTO struct {
	Scalar *float64 `yaml:"scalar,omitempty"`
	Ref    string   `yaml:"ref,omitempty"`
	Refs   []string `yaml:"refs,omitempty,flow"`
}

// TargetDTO is one derived mesh target.
type TargetDTO struct {
	Name      string      `yaml:"name"`
	Materials []string    `yaml:"materials,omitempty,flow"`
	Link      *LinkDTO    `yaml:"link,omitempty"`
	Mesh      *MeshStatsDTO `yaml:"mesh,omitempty"`
}

// LinkDTO is the persisted link record of a target.
type LinkDTO struct {
	Source            string   `yaml:"source"`
	AutoUpdate        *bool    `yaml:"auto_update,omitempty"`
	Debounce          *float64 `yaml:"debounce,omitempty"`
	ApplyModifiers    *bool    `yaml:"apply_modifiers,omitempty"`
	PreserveAllLayers bool     `yaml:"preserve_all_data_layers,omitempty"`
	Note              string   `yaml:"note,omitempty"`
}

// MeshStatsDTO summarizes a generated mesh resource when a document is saved.
// It is informational output; loading ignores everything but the name and
// materials.
type MeshStatsDTO struct {
	Name      string   `yaml:"name"`
	Vertices  int      `yaml:"vertices"`
	Edges     int      `yaml:"edges"`
	Faces     int      `yaml:"faces"`
	Materials []string `yaml:"materials,omitempty,flow"`
}
