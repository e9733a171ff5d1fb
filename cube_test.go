package assetgen

import (
	"errors"
	"math"
	"testing"
)

func TestNewCubeMeshCounts(t *testing.T) {
	doc, err := NewCubeMesh(2.0)
	if err != nil {
		t.Fatal(err)
	}
	if doc.VertexCount() != 24 {
		t.Errorf("VertexCount() = %d, want 24", doc.VertexCount())
	}
	if doc.FaceCount() != 12 {
		t.Errorf("FaceCount() = %d, want 12", doc.FaceCount())
	}
}

func TestCubeVerticesOnSurface(t *testing.T) {
	const size = 3.0
	doc, err := NewCubeMesh(size)
	if err != nil {
		t.Fatal(err)
	}

	half := size / 2
	for i, v := range doc.Vertices {
		for axis := 0; axis < 3; axis++ {
			if !almostEqual(math.Abs(v.Position[axis]), half) {
				t.Fatalf("vertex %d: |position[%d]| = %v, want %v", i, axis, math.Abs(v.Position[axis]), half)
			}
		}
		if !almostEqual(v.Normal.Len(), 1.0) {
			t.Fatalf("vertex %d: |normal| = %v, want 1", i, v.Normal.Len())
		}
	}
}

func TestCubeFaceWindingMatchesNormals(t *testing.T) {
	doc, err := NewCubeMesh(2.0)
	if err != nil {
		t.Fatal(err)
	}

	for i, f := range doc.Faces {
		a := doc.Vertices[f.A-1].Position
		b := doc.Vertices[f.B-1].Position
		c := doc.Vertices[f.C-1].Position
		normal := doc.Vertices[f.A-1].Normal

		cross := b.Sub(a).Cross(c.Sub(a))
		if cross.Dot(normal) <= 0 {
			t.Errorf("face %d winds against its normal %v", i, normal)
		}
	}
}

func TestNewCubeMeshInvalidArguments(t *testing.T) {
	for _, size := range []float64{0, -2, math.NaN(), math.Inf(-1)} {
		if _, err := NewCubeMesh(size); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("NewCubeMesh(%v) error = %v, want ErrInvalidArgument", size, err)
		}
	}
}
