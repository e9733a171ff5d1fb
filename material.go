package assetgen

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// MaterialProperties are the PBR scalars the engine's standard shader reads.
type MaterialProperties struct {
	Metallic  float64    `json:"metallic"`
	Roughness float64    `json:"roughness"`
	BaseColor [4]float64 `json:"base_color"`
}

// Material is a named material definition, serialized as a JSON document
// next to the meshes and textures it belongs to.
type Material struct {
	Name       string             `json:"name"`
	Type       string             `json:"type"`
	Properties MaterialProperties `json:"properties"`
}

// MaterialFromPrompt derives a standard material from a free-form prompt by
// keyword. The first matching keyword wins: metal, wood, plastic, glass,
// then a neutral default.
func MaterialFromPrompt(prompt string) *Material {
	return NewMaterial(prompt, "standard")
}

// NewMaterial builds a material of the given type from a prompt. The prompt
// becomes the material name with spaces replaced by underscores.
func NewMaterial(prompt, materialType string) *Material {
	m := &Material{
		Name: strings.ReplaceAll(prompt, " ", "_"),
		Type: materialType,
	}

	p := strings.ToLower(prompt)
	switch {
	case strings.Contains(p, "metal"):
		m.Properties = MaterialProperties{Metallic: 1.0, Roughness: 0.2, BaseColor: [4]float64{0.7, 0.7, 0.7, 1.0}}
	case strings.Contains(p, "wood"):
		m.Properties = MaterialProperties{Metallic: 0.0, Roughness: 0.8, BaseColor: [4]float64{0.6, 0.4, 0.2, 1.0}}
	case strings.Contains(p, "plastic"):
		m.Properties = MaterialProperties{Metallic: 0.0, Roughness: 0.3, BaseColor: [4]float64{0.8, 0.2, 0.2, 1.0}}
	case strings.Contains(p, "glass"):
		m.Properties = MaterialProperties{Metallic: 0.0, Roughness: 0.0, BaseColor: [4]float64{0.9, 0.9, 1.0, 0.3}}
	default:
		m.Properties = MaterialProperties{Metallic: 0.0, Roughness: 0.5, BaseColor: [4]float64{0.8, 0.8, 0.8, 1.0}}
	}
	return m
}

// SaveJSON writes the material as an indented JSON document.
func (m *Material) SaveJSON(path string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding material %s: %w", m.Name, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: writing %s: %v", ErrIO, path, err)
	}
	return nil
}
