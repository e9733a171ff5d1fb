package assetgen

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// NewCubeMesh builds an axis-aligned cube centered at the origin with edge
// length size. Each of the six faces contributes four vertices carrying the
// flat face normal, split into two counter-clockwise triangles, so the mesh
// has 24 vertices and 12 faces.
func NewCubeMesh(size float64) (*MeshDocument, error) {
	if math.IsNaN(size) || math.IsInf(size, 0) || size <= 0 {
		return nil, fmt.Errorf("%w: size must be finite and positive, got %v", ErrInvalidArgument, size)
	}

	h := size / 2
	quads := []struct {
		normal  mgl64.Vec3
		corners [4]mgl64.Vec3
	}{
		{mgl64.Vec3{0, 0, 1}, [4]mgl64.Vec3{{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h}}},
		{mgl64.Vec3{0, 0, -1}, [4]mgl64.Vec3{{-h, -h, -h}, {-h, h, -h}, {h, h, -h}, {h, -h, -h}}},
		{mgl64.Vec3{0, 1, 0}, [4]mgl64.Vec3{{-h, h, h}, {h, h, h}, {h, h, -h}, {-h, h, -h}}},
		{mgl64.Vec3{0, -1, 0}, [4]mgl64.Vec3{{-h, -h, -h}, {h, -h, -h}, {h, -h, h}, {-h, -h, h}}},
		{mgl64.Vec3{1, 0, 0}, [4]mgl64.Vec3{{h, -h, -h}, {h, h, -h}, {h, h, h}, {h, -h, h}}},
		{mgl64.Vec3{-1, 0, 0}, [4]mgl64.Vec3{{-h, -h, -h}, {-h, -h, h}, {-h, h, h}, {-h, h, -h}}},
	}

	doc := &MeshDocument{
		Vertices: make([]Vertex, 0, 24),
		Faces:    make([]Face, 0, 12),
	}
	for _, q := range quads {
		base := doc.VertexCount()
		for _, corner := range q.corners {
			doc.AddVertex(corner, q.normal)
		}
		doc.AddFace(base+1, base+2, base+3)
		doc.AddFace(base+1, base+3, base+4)
	}

	return doc, nil
}
