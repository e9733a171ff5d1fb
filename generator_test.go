package assetgen

import (
	"errors"
	"os"
	"testing"
)

func TestGeneratorTexture(t *testing.T) {
	g, err := NewGenerator(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	res, err := g.Generate(Request{
		Type:   AssetTexture,
		Name:   "stone noise",
		Params: Params{Width: 32, Height: 32},
	})
	if err != nil {
		t.Fatal(err)
	}

	img, err := LoadPNG(res.Path)
	if err != nil {
		t.Fatalf("generated texture is not readable: %v", err)
	}
	if img.Bounds().Dx() != 32 || img.Bounds().Dy() != 32 {
		t.Errorf("bounds = %v, want 32x32", img.Bounds())
	}
	if res.Metadata["texture_type"] != "noise" {
		t.Errorf("texture_type = %v, want noise (default)", res.Metadata["texture_type"])
	}
}

func TestGeneratorMesh(t *testing.T) {
	g, err := NewGenerator(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	res, err := g.Generate(Request{
		Type:   AssetMesh,
		Name:   "unit sphere",
		Params: Params{Radius: 1.0, Segments: 4},
	})
	if err != nil {
		t.Fatal(err)
	}

	doc, err := LoadOBJ(res.Path)
	if err != nil {
		t.Fatalf("generated mesh is not readable: %v", err)
	}
	if doc.VertexCount() != 25 || doc.FaceCount() != 32 {
		t.Errorf("loaded %d vertices / %d faces, want 25 / 32", doc.VertexCount(), doc.FaceCount())
	}
}

func TestGeneratorCubeMesh(t *testing.T) {
	g, err := NewGenerator(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	res, err := g.Generate(Request{
		Type:   AssetMesh,
		Name:   "crate",
		Params: Params{Shape: "cube", Size: 2.0},
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.Metadata["vertices"] != 24 || res.Metadata["faces"] != 12 {
		t.Errorf("metadata = %v, want 24 vertices / 12 faces", res.Metadata)
	}
}

func TestGeneratorMaterial(t *testing.T) {
	g, err := NewGenerator(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	res, err := g.Generate(Request{Type: AssetMaterial, Name: "hull plating", Params: Params{Style: "metal"}})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(res.Path); err != nil {
		t.Errorf("material file missing: %v", err)
	}
}

func TestGeneratorRejectsUnknownTypes(t *testing.T) {
	g, err := NewGenerator(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	testCases := []struct {
		name string
		req  Request
	}{
		{"unknown asset type", Request{Type: "animation", Name: "walk"}},
		{"unknown texture type", Request{Type: AssetTexture, Name: "x", Params: Params{TextureType: "fractal"}}},
		{"unknown mesh shape", Request{Type: AssetMesh, Name: "x", Params: Params{Shape: "torus"}}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := g.Generate(tc.req); !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("Generate(%+v) error = %v, want ErrInvalidArgument", tc.req, err)
			}
		})
	}
}

func TestGeneratorSurfacesGeneratorErrors(t *testing.T) {
	g, err := NewGenerator(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	_, err = g.Generate(Request{
		Type:   AssetMesh,
		Name:   "bad sphere",
		Params: Params{Radius: -1, Segments: 4},
	})
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("negative radius: error = %v, want ErrInvalidArgument", err)
	}
}
