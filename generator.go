package assetgen

import (
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// AssetType selects which generator a Request is dispatched to.
type AssetType string

const (
	AssetTexture  AssetType = "texture"
	AssetMesh     AssetType = "mesh"
	AssetMaterial AssetType = "material"
)

// Params carries the numeric knobs for a generation request. Zero values
// are replaced by the defaults below, so a Request only needs the fields
// its asset type cares about.
type Params struct {
	// Texture parameters.
	TextureType string // noise, gradient, pattern (noise when empty)
	Style       string // palette/pattern keyword, also the material prompt
	Width       int
	Height      int
	Seed        int64

	// Mesh parameters.
	Shape    string // sphere or cube (sphere when empty)
	Radius   float64
	Segments int
	Size     float64
}

const (
	defaultTextureSize = 512
	defaultRadius      = 1.0
	defaultSegments    = 32
	defaultCubeSize    = 2.0
)

// Request names an asset and the parameters to build it with.
type Request struct {
	Type   AssetType
	Name   string
	Params Params
}

// Result describes a finished generation: where the asset was written and
// what was generated.
type Result struct {
	Path     string
	Metadata map[string]any
}

// Generator dispatches requests to the pure generators and lays the results
// out under a single output root, one subdirectory per asset type.
type Generator struct {
	dirs map[AssetType]string
}

// NewGenerator creates the output directory tree under root.
func NewGenerator(root string) (*Generator, error) {
	g := &Generator{
		dirs: map[AssetType]string{
			AssetTexture:  filepath.Join(root, "textures"),
			AssetMesh:     filepath.Join(root, "meshes"),
			AssetMaterial: filepath.Join(root, "materials"),
		},
	}
	for _, dir := range g.dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("%w: creating output dir %s: %v", ErrIO, dir, err)
		}
	}
	return g, nil
}

// Generate runs one request to completion. Every failure is surfaced; there
// are no retries and no fallback output.
func (g *Generator) Generate(req Request) (*Result, error) {
	switch req.Type {
	case AssetTexture:
		return g.generateTexture(req)
	case AssetMesh:
		return g.generateMesh(req)
	case AssetMaterial:
		return g.generateMaterial(req)
	default:
		return nil, fmt.Errorf("%w: unsupported asset type %q", ErrInvalidArgument, req.Type)
	}
}

func (g *Generator) generateTexture(req Request) (*Result, error) {
	p := req.Params
	width, height := p.Width, p.Height
	if width == 0 {
		width = defaultTextureSize
	}
	if height == 0 {
		height = defaultTextureSize
	}

	textureType := p.TextureType
	if textureType == "" {
		textureType = "noise"
	}

	var (
		img *image.NRGBA
		err error
	)
	switch textureType {
	case "noise":
		seed := p.Seed
		if seed == 0 {
			seed = DefaultNoiseSeed
		}
		img, err = NoiseTextureSeeded(width, height, seed)
	case "gradient":
		img, err = GradientTexture(width, height, p.Style)
	case "pattern":
		img, err = PatternTexture(width, height, p.Style)
	default:
		return nil, fmt.Errorf("%w: unsupported texture type %q", ErrInvalidArgument, textureType)
	}
	if err != nil {
		return nil, err
	}

	path := g.assetPath(AssetTexture, req.Name, ".png")
	if err := SavePNG(path, img); err != nil {
		return nil, err
	}

	log.Printf("generated texture: %s", path)
	return &Result{
		Path: path,
		Metadata: map[string]any{
			"type":         "texture",
			"texture_type": textureType,
			"width":        width,
			"height":       height,
		},
	}, nil
}

func (g *Generator) generateMesh(req Request) (*Result, error) {
	p := req.Params
	shape := p.Shape
	if shape == "" {
		shape = "sphere"
	}

	var (
		doc *MeshDocument
		err error
	)
	switch shape {
	case "sphere":
		radius, segments := p.Radius, p.Segments
		if radius == 0 {
			radius = defaultRadius
		}
		if segments == 0 {
			segments = defaultSegments
		}
		doc, err = NewSphereMesh(radius, segments)
	case "cube":
		size := p.Size
		if size == 0 {
			size = defaultCubeSize
		}
		doc, err = NewCubeMesh(size)
	default:
		return nil, fmt.Errorf("%w: unsupported mesh shape %q", ErrInvalidArgument, shape)
	}
	if err != nil {
		return nil, err
	}

	path := g.assetPath(AssetMesh, req.Name, ".obj")
	if err := doc.SaveOBJ(path); err != nil {
		return nil, err
	}

	log.Printf("generated mesh: %s", path)
	return &Result{
		Path: path,
		Metadata: map[string]any{
			"type":     "mesh",
			"shape":    shape,
			"vertices": doc.VertexCount(),
			"faces":    doc.FaceCount(),
		},
	}, nil
}

func (g *Generator) generateMaterial(req Request) (*Result, error) {
	prompt := req.Params.Style
	if prompt == "" {
		prompt = req.Name
	}
	material := MaterialFromPrompt(prompt)

	path := g.assetPath(AssetMaterial, req.Name, ".json")
	if err := material.SaveJSON(path); err != nil {
		return nil, err
	}

	log.Printf("generated material: %s", path)
	return &Result{
		Path: path,
		Metadata: map[string]any{
			"type":          "material",
			"material_type": material.Type,
			"prompt":        prompt,
		},
	}, nil
}

func (g *Generator) assetPath(kind AssetType, name, ext string) string {
	return filepath.Join(g.dirs[kind], strings.ReplaceAll(name, " ", "_")+ext)
}
