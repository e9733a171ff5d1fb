package assetgen

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// NewSphereMesh builds a latitude/longitude tessellated sphere centered at
// the origin. Rings run from the +Z pole (theta = 0) to the -Z pole
// (theta = pi); each ring carries segments+1 columns, the last one a seam
// duplicate of the first so the texture seam stays addressable.
//
// The emission order is the compatibility contract: consumers depend on the
// exact vertex traversal and the (a,b,d)/(a,d,c) quad split, which winds
// every non-degenerate face the same way, so neither may change.
func NewSphereMesh(radius float64, segments int) (*MeshDocument, error) {
	if math.IsNaN(radius) || math.IsInf(radius, 0) || radius <= 0 {
		return nil, fmt.Errorf("%w: radius must be finite and positive, got %v", ErrInvalidArgument, radius)
	}
	if segments < 1 {
		return nil, fmt.Errorf("%w: segments must be at least 1, got %d", ErrInvalidArgument, segments)
	}

	cols := segments + 1
	doc := &MeshDocument{
		Vertices: make([]Vertex, 0, cols*cols),
		Faces:    make([]Face, 0, 2*segments*segments),
	}

	for i := 0; i <= segments; i++ {
		theta := float64(i) * math.Pi / float64(segments)
		for j := 0; j <= segments; j++ {
			phi := float64(j) * 2 * math.Pi / float64(segments)
			pos := mgl64.Vec3{
				radius * math.Sin(theta) * math.Cos(phi),
				radius * math.Sin(theta) * math.Sin(phi),
				radius * math.Cos(theta),
			}
			doc.AddVertex(pos, pos.Mul(1/radius))
		}
	}

	for i := 0; i < segments; i++ {
		for j := 0; j < segments; j++ {
			a := i*cols + j + 1
			b := a + 1
			c := (i+1)*cols + j + 1
			d := c + 1
			doc.AddFace(a, b, d)
			doc.AddFace(a, d, c)
		}
	}

	return doc, nil
}
