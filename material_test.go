package assetgen

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestMaterialFromPromptPresets(t *testing.T) {
	testCases := []struct {
		name          string
		prompt        string
		wantMetallic  float64
		wantRoughness float64
		wantBaseColor [4]float64
	}{
		{"metal", "brushed metal panel", 1.0, 0.2, [4]float64{0.7, 0.7, 0.7, 1.0}},
		{"wood", "Oak Wood Plank", 0.0, 0.8, [4]float64{0.6, 0.4, 0.2, 1.0}},
		{"plastic", "red plastic toy", 0.0, 0.3, [4]float64{0.8, 0.2, 0.2, 1.0}},
		{"glass", "frosted glass", 0.0, 0.0, [4]float64{0.9, 0.9, 1.0, 0.3}},
		{"default", "mystery substance", 0.0, 0.5, [4]float64{0.8, 0.8, 0.8, 1.0}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := MaterialFromPrompt(tc.prompt)
			if m.Type != "standard" {
				t.Errorf("Type = %q, want standard", m.Type)
			}
			if m.Properties.Metallic != tc.wantMetallic {
				t.Errorf("Metallic = %v, want %v", m.Properties.Metallic, tc.wantMetallic)
			}
			if m.Properties.Roughness != tc.wantRoughness {
				t.Errorf("Roughness = %v, want %v", m.Properties.Roughness, tc.wantRoughness)
			}
			if m.Properties.BaseColor != tc.wantBaseColor {
				t.Errorf("BaseColor = %v, want %v", m.Properties.BaseColor, tc.wantBaseColor)
			}
		})
	}
}

func TestMaterialNameSanitized(t *testing.T) {
	m := MaterialFromPrompt("shiny metal sphere")
	if m.Name != "shiny_metal_sphere" {
		t.Errorf("Name = %q, want shiny_metal_sphere", m.Name)
	}
}

func TestMaterialSaveJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metal.json")
	if err := MaterialFromPrompt("metal").SaveJSON(path); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var decoded Material
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("saved material is not valid JSON: %v", err)
	}
	if decoded.Properties.Metallic != 1.0 {
		t.Errorf("decoded Metallic = %v, want 1.0", decoded.Properties.Metallic)
	}
}
