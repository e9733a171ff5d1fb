package assetgen

import "github.com/go-gl/mathgl/mgl64"

// Vertex is a single mesh record: a position and the normal emitted
// alongside it. For the generated primitives the normal is already unit
// length.
type Vertex struct {
	Position mgl64.Vec3
	Normal   mgl64.Vec3
}

// Face is a triangle referencing vertices by 1-based index. The same index
// addresses both the position and the normal, since normals are emitted one
// per vertex in the same order.
type Face struct {
	A, B, C int
}

// MeshDocument is an append-only list of vertex and face records, built once
// by a generator and then handed to an encoder. Vertices are stored in
// emission order; faces always reference existing vertices.
type MeshDocument struct {
	Vertices []Vertex
	Faces    []Face
}

// AddVertex appends a vertex record and returns its 1-based index.
func (m *MeshDocument) AddVertex(position, normal mgl64.Vec3) int {
	m.Vertices = append(m.Vertices, Vertex{Position: position, Normal: normal})
	return len(m.Vertices)
}

// AddFace appends a triangle of 1-based vertex indices.
func (m *MeshDocument) AddFace(a, b, c int) {
	m.Faces = append(m.Faces, Face{A: a, B: b, C: c})
}

func (m *MeshDocument) VertexCount() int {
	return len(m.Vertices)
}

func (m *MeshDocument) FaceCount() int {
	return len(m.Faces)
}
