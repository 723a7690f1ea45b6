package scene

import "github.com/curveforge/meshsync/internal/core/domain"

func curveDTO(data *domain.CurveData) CurveDTO {
	dto := CurveDTO{
		Name: data.Name,
		Settings: SettingsDTO{
			Dimensions:        data.Settings.Dimensions,
			ResolutionU:       data.Settings.ResolutionU,
			ResolutionV:       data.Settings.ResolutionV,
			RenderResolutionU: data.Settings.RenderResolutionU,
			RenderResolutionV: data.Settings.RenderResolutionV,
			BevelDepth:        data.Settings.BevelDepth,
			BevelResolution:   data.Settings.BevelResolution,
			Extrude:           data.Settings.Extrude,
			Offset:            data.Settings.Offset,
			TwistSmooth:       data.Settings.TwistSmooth,
			FillCaps:          data.Settings.FillCaps,
			FillDeform:        data.Settings.FillDeform,
		},
	}
	for _, spline := range data.Splines {
		dto.Splines = append(dto.Splines, splineDTO(spline))
	}
	return dto
}

func splineDTO(spline *domain.Spline) SplineDTO {
	dto := SplineDTO{
		Kind:        string(spline.Kind),
		CyclicU:     spline.CyclicU,
		CyclicV:     spline.CyclicV,
		OrderU:      spline.OrderU,
		OrderV:      spline.OrderV,
		ResolutionU: spline.ResolutionU,
		ResolutionV: spline.ResolutionV,
	}
	for _, p := range spline.BezierPoints {
		dto.BezierPoints = append(dto.BezierPoints, BezierPointDTO{
			HandleLeft:  p.HandleLeft[:],
			Co:          p.Co[:],
			HandleRight: p.HandleRight[:],
			Tilt:        p.Tilt,
			Radius:      p.Radius,
		})
	}
	for _, p := range spline.Points {
		dto.Points = append(dto.Points, pointDTO(p))
	}
	for _, row := range spline.Rows {
		points := make([]PointDTO, 0, len(row))
		for _, p := range row {
			points = append(points, pointDTO(p))
		}
		dto.Rows = append(dto.Rows, points)
	}
	return dto
}

func pointDTO(p domain.ControlPoint) PointDTO {
	co := p.Co[:]
	if p.Co[3] == 1 {
		co = co[:3]
	}
	return PointDTO{Co: co, Tilt: p.Tilt, Radius: p.Radius}
}

func sourceDTO(src *domain.Source) SourceDTO {
	dto := SourceDTO{
		Name:     src.Name,
		Kind:     string(src.Kind),
		Mode:     string(src.Mode),
		Hidden:   src.Hidden,
		Selected: src.Selected,
		Location: src.Location[:],
		Rotation: src.Rotation[:],
		Scale:    src.Scale[:],
	}
	if src.Data != nil {
		dto.Data = src.Data.Name
	}
	for _, mod := range src.Modifiers {
		dto.Modifiers = append(dto.Modifiers, modifierDTO(mod))
	}
	return dto
}

func modifierDTO(mod *domain.Modifier) ModifierDTO {
	dto := ModifierDTO{Kind: string(mod.Kind)}
	if !mod.ShowViewport {
		dto.ShowViewport = &mod.ShowViewport
	}
	if !mod.ShowRender {
		dto.ShowRender = &mod.ShowRender
	}
	if len(mod.Params) > 0 {
		dto.Params = make(map[string]ParamDTO, len(mod.Params))
		for name, p := range mod.Params {
			switch p.Kind {
			case domain.ParamScalar:
				scalar := p.Scalar
				dto.Params[name] = ParamDTO{Scalar: &scalar}
			case domain.ParamRefList:
				dto.Params[name] = ParamDTO{Refs: p.Refs}
			default:
				dto.Params[name] = ParamDTO{Ref: p.Ref}
			}
		}
	}
	return dto
}

func targetDTO(target *domain.Target) TargetDTO {
	dto := TargetDTO{Name: target.Name}
	if target.Mesh != nil {
		stats := MeshStatsDTO{Name: target.Mesh.Name}
		if m := target.Mesh.Mesh; m != nil {
			stats.Vertices = len(m.Vertices)
			stats.Edges = len(m.Edges)
			stats.Faces = len(m.Faces)
			stats.Materials = m.Materials
		}
		dto.Mesh = &stats
	}
	if link := target.Link; link != nil {
		name := link.SourceName
		if link.Source != nil {
			name = link.Source.Name
		}
		auto := link.AutoUpdate
		debounce := link.Debounce
		apply := link.ApplyModifiers
		dto.Link = &LinkDTO{
			Source:            name,
			AutoUpdate:        &auto,
			Debounce:          &debounce,
			ApplyModifiers:    &apply,
			PreserveAllLayers: link.PreserveAllLayers,
			Note:              link.Note,
		}
	}
	return dto
}
