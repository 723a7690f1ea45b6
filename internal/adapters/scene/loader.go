package scene

import (
	"os"

	"github.com/curveforge/meshsync/internal/core/domain"
	"github.com/curveforge/meshsync/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Defaults applied when a document omits the corresponding settings.
const (
	defaultResolution = 12
	defaultDebounce   = 0.5
)

// Loader reads and writes scene documents in YAML form.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads a scene document from the given path.
func (l *Loader) Load(path string) (*Document, error) {
	raw, err := os.ReadFile(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrDocumentReadFailed.Error()), "path", path)
	}

	var dto DocumentDTO
	if err := yaml.Unmarshal(raw, &dto); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrDocumentParseFailed.Error()), "path", path)
	}

	doc, err := l.build(&dto)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	doc.Path = path
	return doc, nil
}

func (l *Loader) build(dto *DocumentDTO) (*Document, error) {
	doc := NewDocument()
	doc.Tools = ToolSettings{
		DefaultDebounce:       clampDebounce(resolveDebounce(nil, &dto.Tools)),
		DefaultApplyModifiers: orBool(dto.Tools.DefaultApplyModifiers, true),
	}

	for i := range dto.Curves {
		data, err := buildCurveData(&dto.Curves[i])
		if err != nil {
			return nil, err
		}
		if err := doc.AddCurveData(data); err != nil {
			return nil, err
		}
	}

	for i := range dto.Sources {
		src, err := l.buildSource(doc, &dto.Sources[i])
		if err != nil {
			return nil, err
		}
		if err := doc.AddSource(src); err != nil {
			return nil, err
		}
	}

	for i := range dto.Targets {
		target := l.buildTarget(doc, &dto.Targets[i], &dto.Tools)
		if err := doc.AddTarget(target); err != nil {
			return nil, err
		}
	}

	for i := range dto.Collections {
		coll := &Collection{Name: dto.Collections[i].Name}
		coll.Objects = append(coll.Objects, dto.Collections[i].Objects...)
		if err := doc.AddCollection(coll); err != nil {
			return nil, err
		}
	}

	return doc, nil
}

func buildCurveData(dto *CurveDTO) (*domain.CurveData, error) {
	data := &domain.CurveData{
		Name: dto.Name,
		Settings: domain.CurveSettings{
			Dimensions:        orString(dto.Settings.Dimensions, "3D"),
			ResolutionU:       orInt(dto.Settings.ResolutionU, defaultResolution),
			ResolutionV:       orInt(dto.Settings.ResolutionV, defaultResolution),
			RenderResolutionU: dto.Settings.RenderResolutionU,
			RenderResolutionV: dto.Settings.RenderResolutionV,
			BevelDepth:        dto.Settings.BevelDepth,
			BevelResolution:   dto.Settings.BevelResolution,
			Extrude:           dto.Settings.Extrude,
			Offset:            dto.Settings.Offset,
			TwistSmooth:       dto.Settings.TwistSmooth,
			FillCaps:          dto.Settings.FillCaps,
			FillDeform:        dto.Settings.FillDeform,
		},
	}

	for i := range dto.Splines {
		spline, err := buildSpline(&dto.Splines[i])
		if err != nil {
			return nil, zerr.With(err, "curve", dto.Name)
		}
		data.Splines = append(data.Splines, spline)
	}
	return data, nil
}

func buildSpline(dto *SplineDTO) (*domain.Spline, error) {
	kind := domain.SplineKind(dto.Kind)
	switch kind {
	case domain.SplineBezier, domain.SplineNURBS, domain.SplinePoly, domain.SplineSurface:
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrUnknownSplineKind, ""), "kind", dto.Kind)
	}

	spline := &domain.Spline{
		Kind:        kind,
		CyclicU:     dto.CyclicU,
		CyclicV:     dto.CyclicV,
		OrderU:      orInt(dto.OrderU, 4),
		OrderV:      orInt(dto.OrderV, 4),
		ResolutionU: dto.ResolutionU,
		ResolutionV: dto.ResolutionV,
	}

	for _, p := range dto.BezierPoints {
		spline.BezierPoints = append(spline.BezierPoints, domain.BezierPoint{
			HandleLeft:  vec3(p.HandleLeft),
			Co:          vec3(p.Co),
			HandleRight: vec3(p.HandleRight),
			Tilt:        p.Tilt,
			Radius:      orFloat(p.Radius, 1),
		})
	}
	for _, p := range dto.Points {
		spline.Points = append(spline.Points, controlPoint(p))
	}
	for _, row := range dto.Rows {
		points := make([]domain.ControlPoint, 0, len(row))
		for _, p := range row {
			points = append(points, controlPoint(p))
		}
		spline.Rows = append(spline.Rows, points)
	}
	return spline, nil
}

func (l *Loader) buildSource(doc *Document, dto *SourceDTO) (*domain.Source, error) {
	src := &domain.Source{
		Name:     dto.Name,
		Kind:     domain.SourceKind(orString(dto.Kind, string(domain.SourceCurve))),
		Mode:     domain.InteractionMode(orString(dto.Mode, string(domain.ModeObject))),
		Hidden:   dto.Hidden,
		Selected: dto.Selected,
		Location: vec3(dto.Location),
		Rotation: vec3(dto.Rotation),
		Scale:    vec3(dto.Scale),
	}

	if dto.Data != "" {
		data, ok := doc.CurveDataByName(dto.Data)
		if !ok {
			return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrDocumentParseFailed, "unknown curve data reference"),
				"source", dto.Name), "data", dto.Data)
		}
		src.Data = data
	}

	for i := range dto.Modifiers {
		src.Modifiers = append(src.Modifiers, buildModifier(&dto.Modifiers[i]))
	}
	return src, nil
}

func buildModifier(dto *ModifierDTO) *domain.Modifier {
	mod := &domain.Modifier{
		Kind:         domain.ModifierKind(dto.Kind),
		ShowViewport: orBool(dto.ShowViewport, true),
		ShowRender:   orBool(dto.ShowRender, true),
		Params:       make(map[string]domain.ParamValue, len(dto.Params)),
	}
	for name, p := range dto.Params {
		switch {
		case p.Scalar != nil:
			mod.Params[name] = domain.ScalarParam(*p.Scalar)
		case p.Refs != nil:
			mod.Params[name] = domain.RefListParam(p.Refs...)
		default:
			mod.Params[name] = domain.RefParam(p.Ref)
		}
	}
	return mod
}

func (l *Loader) buildTarget(doc *Document, dto *TargetDTO, tools *ToolsDTO) *domain.Target {
	target := &domain.Target{Name: dto.Name}

	meshName := dto.Name + ".mesh"
	materials := dto.Materials
	if dto.Mesh != nil {
		meshName = orString(dto.Mesh.Name, meshName)
		if materials == nil {
			materials = dto.Mesh.Materials
		}
	}
	target.Mesh = &domain.MeshResource{
		Name: meshName,
		Mesh: &domain.Mesh{Materials: materials},
	}

	if dto.Link != nil {
		link := &domain.Link{
			SourceName:        dto.Link.Source,
			AutoUpdate:        orBool(dto.Link.AutoUpdate, true),
			Debounce:          clampDebounce(resolveDebounce(dto.Link.Debounce, tools)),
			ApplyModifiers:    orBool(dto.Link.ApplyModifiers, orBool(tools.DefaultApplyModifiers, true)),
			PreserveAllLayers: dto.Link.PreserveAllLayers,
			Note:              dto.Link.Note,
		}
		// The reference may legitimately dangle; resolution by name happens
		// again at every registry lookup.
		if src, ok := doc.SourceByName(dto.Link.Source); ok {
			link.Source = src
		} else if l.logger != nil {
			l.logger.Warn("link source not found in document: " + dto.Link.Source)
		}
		target.Link = link
	}
	return target
}

// Save writes the document back to the given path, summarizing each target's
// generated mesh resource.
func (l *Loader) Save(doc *Document, path string) error {
	dto := DocumentDTO{Version: "1"}
	dto.Tools = ToolsDTO{
		DefaultDebounce:       &doc.Tools.DefaultDebounce,
		DefaultApplyModifiers: &doc.Tools.DefaultApplyModifiers,
	}

	for _, data := range doc.data {
		dto.Curves = append(dto.Curves, curveDTO(data))
	}
	for _, src := range doc.sources {
		dto.Sources = append(dto.Sources, sourceDTO(src))
	}
	for _, target := range doc.targets {
		dto.Targets = append(dto.Targets, targetDTO(target))
	}
	for _, coll := range doc.collections {
		dto.Collections = append(dto.Collections, CollectionDTO{Name: coll.Name, Objects: coll.Objects})
	}

	raw, err := yaml.Marshal(&dto)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrDocumentWriteFailed.Error()), "path", path)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil { //nolint:gosec // Scene documents are not secrets
		return zerr.With(zerr.Wrap(err, domain.ErrDocumentWriteFailed.Error()), "path", path)
	}
	return nil
}

func orString(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func orInt(v, fallback int) int {
	if v == 0 {
		return fallback
	}
	return v
}

func orFloat(v, fallback float64) float64 {
	if v == 0 {
		return fallback
	}
	return v
}

func orBool(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}

func resolveDebounce(v *float64, tools *ToolsDTO) float64 {
	if v != nil {
		return *v
	}
	if tools.DefaultDebounce != nil {
		return *tools.DefaultDebounce
	}
	return defaultDebounce
}

func clampDebounce(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

func vec3(v []float64) [3]float64 {
	var out [3]float64
	copy(out[:], v)
	return out
}

func controlPoint(p PointDTO) domain.ControlPoint {
	var co [4]float64
	co[3] = 1
	copy(co[:], p.Co)
	return domain.ControlPoint{Co: co, Tilt: p.Tilt, Radius: orFloat(p.Radius, 1)}
}
