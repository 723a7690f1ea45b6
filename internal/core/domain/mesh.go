package domain

// Mesh is a tessellated artifact produced by the evaluation service.
type Mesh struct {
	Vertices [][3]float64
	Edges    [][2]int
	Faces    [][]int
	// Materials is the ordered material assignment list. It is a property of
	// the target's usage and is copied forward on every swap.
	Materials []string
	// Layers holds auxiliary per-vertex data layers, keyed by layer name.
	// Each layer has one value per vertex.
	Layers map[string][]float64
}

// Translate shifts every vertex of the mesh by the given delta in place.
func (m *Mesh) Translate(delta [3]float64) {
	for i := range m.Vertices {
		m.Vertices[i][0] += delta[0]
		m.Vertices[i][1] += delta[1]
		m.Vertices[i][2] += delta[2]
	}
}

// MeshResource is a mesh stored as a named content resource. Names are stable
// identifiers that external references (and link records) rely on across
// regenerations.
type MeshResource struct {
	Name string
	Mesh *Mesh
}
