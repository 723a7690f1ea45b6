package evaluator

import (
	"github.com/curveforge/meshsync/internal/core/domain"
)

// applyModifier realizes one modifier on the evaluated mesh, returning the
// resulting mesh. Deform and boolean modifiers depend on other scene objects
// the evaluator has no access to and fail the evaluation.
func applyModifier(mesh *domain.Mesh, mod *domain.Modifier) (*domain.Mesh, error) {
	switch mod.Kind {
	case domain.ModifierSubsurf:
		return applySubsurf(mesh, scalarParam(mod, "levels", 1)), nil
	case domain.ModifierMirror:
		return applyMirror(mesh, mod), nil
	case domain.ModifierArray:
		return applyArray(mesh, mod), nil
	case domain.ModifierSolidify:
		return applySolidify(mesh, mod), nil
	default:
		return nil, domain.ErrUnsupportedModifier
	}
}

func scalarParam(mod *domain.Modifier, name string, fallback float64) float64 {
	p, ok := mod.Params[name]
	if !ok || p.Kind != domain.ParamScalar {
		return fallback
	}
	return p.Scalar
}

// applySubsurf linearly subdivides the mesh the given number of times. Each
// level splits every edge at its midpoint and every quad into four.
func applySubsurf(mesh *domain.Mesh, levels float64) *domain.Mesh {
	n := int(levels)
	if n < 0 {
		n = 0
	}
	if n > 6 {
		n = 6
	}
	for range n {
		mesh = subdivideOnce(mesh)
	}
	return mesh
}

func subdivideOnce(mesh *domain.Mesh) *domain.Mesh {
	out := &domain.Mesh{
		Vertices:  append([][3]float64{}, mesh.Vertices...),
		Materials: mesh.Materials,
		Layers:    mesh.Layers,
	}

	midpoints := make(map[[2]int]int)
	midpoint := func(a, b int) int {
		key := [2]int{min(a, b), max(a, b)}
		if idx, ok := midpoints[key]; ok {
			return idx
		}
		va, vb := mesh.Vertices[a], mesh.Vertices[b]
		idx := len(out.Vertices)
		out.Vertices = append(out.Vertices, [3]float64{
			(va[0] + vb[0]) / 2,
			(va[1] + vb[1]) / 2,
			(va[2] + vb[2]) / 2,
		})
		midpoints[key] = idx
		return idx
	}

	inFace := make(map[[2]int]bool)
	for _, face := range mesh.Faces {
		for i := range face {
			a, b := face[i], face[(i+1)%len(face)]
			inFace[[2]int{min(a, b), max(a, b)}] = true
		}
	}

	for _, e := range mesh.Edges {
		if inFace[[2]int{min(e[0], e[1]), max(e[0], e[1])}] {
			continue
		}
		m := midpoint(e[0], e[1])
		out.Edges = append(out.Edges, [2]int{e[0], m}, [2]int{m, e[1]})
	}

	for _, face := range mesh.Faces {
		center := len(out.Vertices)
		var c [3]float64
		for _, idx := range face {
			v := mesh.Vertices[idx]
			for j := range c {
				c[j] += v[j] / float64(len(face))
			}
		}
		out.Vertices = append(out.Vertices, c)

		for i := range face {
			a := face[i]
			prev := midpoint(face[(i+len(face)-1)%len(face)], a)
			next := midpoint(a, face[(i+1)%len(face)])
			out.Faces = append(out.Faces, []int{a, next, center, prev})
			out.Edges = append(out.Edges, [2]int{a, next}, [2]int{next, center})
		}
	}
	return out
}

// applyMirror duplicates the geometry across each enabled local axis. The
// mirror object reference only changes the pivot in the host application and
// has no effect here.
func applyMirror(mesh *domain.Mesh, mod *domain.Modifier) *domain.Mesh {
	axes := []struct {
		param string
		axis  int
	}{
		{"use_axis_x", 0},
		{"use_axis_y", 1},
		{"use_axis_z", 2},
	}

	out := mesh
	for _, a := range axes {
		if scalarParam(mod, a.param, 0) == 0 {
			continue
		}
		mirrored := copyTopology(out)
		mirrored.Vertices = append(mirrored.Vertices, out.Vertices...)
		appendShifted(mirrored, out, 0, false)
		offset := len(mirrored.Vertices)
		for _, v := range out.Vertices {
			v[a.axis] = -v[a.axis]
			mirrored.Vertices = append(mirrored.Vertices, v)
		}
		appendShifted(mirrored, out, offset, true)
		out = mirrored
	}
	return out
}

// applyArray repeats the geometry count times, each copy offset by the
// relative offset times the mesh's bounding extent.
func applyArray(mesh *domain.Mesh, mod *domain.Modifier) *domain.Mesh {
	count := int(scalarParam(mod, "count", 2))
	if count < 1 {
		count = 1
	}

	extent := boundingExtent(mesh)
	step := [3]float64{
		scalarParam(mod, "relative_offset_x", 1) * extent[0],
		scalarParam(mod, "relative_offset_y", 0) * extent[1],
		scalarParam(mod, "relative_offset_z", 0) * extent[2],
	}

	out := copyTopology(mesh)
	out.Vertices = append(out.Vertices, mesh.Vertices...)
	appendShifted(out, mesh, 0, false)
	for i := 1; i < count; i++ {
		offset := len(out.Vertices)
		for _, v := range mesh.Vertices {
			out.Vertices = append(out.Vertices, [3]float64{
				v[0] + float64(i)*step[0],
				v[1] + float64(i)*step[1],
				v[2] + float64(i)*step[2],
			})
		}
		appendShifted(out, mesh, offset, false)
	}
	return out
}

// applySolidify shells the geometry by duplicating it offset along z by the
// thickness and stitching rim faces along boundary edges.
func applySolidify(mesh *domain.Mesh, mod *domain.Modifier) *domain.Mesh {
	thickness := scalarParam(mod, "thickness", 0.01)
	offset := scalarParam(mod, "offset", -1)
	shift := thickness * (offset + 1) / 2
	lower := shift - thickness

	out := copyTopology(mesh)
	for _, v := range mesh.Vertices {
		out.Vertices = append(out.Vertices, [3]float64{v[0], v[1], v[2] + shift})
	}
	appendShifted(out, mesh, 0, false)

	base := len(out.Vertices)
	for _, v := range mesh.Vertices {
		out.Vertices = append(out.Vertices, [3]float64{v[0], v[1], v[2] + lower})
	}
	appendShifted(out, mesh, base, true)

	for _, e := range boundaryEdges(mesh) {
		out.Faces = append(out.Faces, []int{e[0], e[1], base + e[1], base + e[0]})
		out.Edges = append(out.Edges, [2]int{e[0], base + e[0]}, [2]int{e[1], base + e[1]})
	}
	return out
}

func copyTopology(mesh *domain.Mesh) *domain.Mesh {
	return &domain.Mesh{Materials: mesh.Materials, Layers: mesh.Layers}
}

// appendShifted copies the source mesh's edges and faces with all indices
// shifted by offset. Flipped copies reverse face winding.
func appendShifted(dst, src *domain.Mesh, offset int, flip bool) {
	for _, e := range src.Edges {
		dst.Edges = append(dst.Edges, [2]int{e[0] + offset, e[1] + offset})
	}
	for _, face := range src.Faces {
		shifted := make([]int, len(face))
		for i, idx := range face {
			if flip {
				shifted[len(face)-1-i] = idx + offset
			} else {
				shifted[i] = idx + offset
			}
		}
		dst.Faces = append(dst.Faces, shifted)
	}
}

func boundingExtent(mesh *domain.Mesh) [3]float64 {
	if len(mesh.Vertices) == 0 {
		return [3]float64{}
	}
	lo, hi := mesh.Vertices[0], mesh.Vertices[0]
	for _, v := range mesh.Vertices[1:] {
		for j := range v {
			lo[j] = min(lo[j], v[j])
			hi[j] = max(hi[j], v[j])
		}
	}
	return [3]float64{hi[0] - lo[0], hi[1] - lo[1], hi[2] - lo[2]}
}

// boundaryEdges returns the edges used by exactly one face.
func boundaryEdges(mesh *domain.Mesh) [][2]int {
	uses := make(map[[2]int]int)
	for _, face := range mesh.Faces {
		for i := range face {
			a, b := face[i], face[(i+1)%len(face)]
			uses[[2]int{min(a, b), max(a, b)}]++
		}
	}
	var out [][2]int
	for _, face := range mesh.Faces {
		for i := range face {
			a, b := face[i], face[(i+1)%len(face)]
			if uses[[2]int{min(a, b), max(a, b)}] == 1 {
				out = append(out, [2]int{a, b})
			}
		}
	}
	return out
}
