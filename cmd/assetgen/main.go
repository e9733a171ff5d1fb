// Package main provides the assetgen binary: a thin CLI over the Nexlify
// procedural asset generators (meshes, textures, materials) with an optional
// wireframe preview window.
package main

import (
	"fmt"
	"image"
	"os"

	"github.com/spf13/cobra"

	"github.com/nexlify/assetgen"
)

const (
	Version = "0.1.0"
	appName = "assetgen"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   appName,
		Short: "Procedural asset generator",
		Long: `Assetgen generates deterministic procedural assets:

- sphere and cube meshes as Wavefront OBJ
- noise, gradient and pattern textures as PNG
- material definitions as JSON

All parameters are explicit flags; identical invocations produce identical
output files.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(sphereCmd(), cubeCmd(), textureCmd(), materialCmd(), previewCmd())
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s\n", appName, Version)
		},
	})
	return cmd
}

func sphereCmd() *cobra.Command {
	var (
		radius   float64
		segments int
		output   string
	)
	cmd := &cobra.Command{
		Use:   "sphere",
		Short: "Generate a sphere mesh as OBJ",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := assetgen.NewSphereMesh(radius, segments)
			if err != nil {
				return err
			}
			return doc.SaveOBJ(output)
		},
	}
	cmd.Flags().Float64Var(&radius, "radius", 1.0, "Sphere radius")
	cmd.Flags().IntVar(&segments, "segments", 32, "Latitude/longitude subdivisions")
	cmd.Flags().StringVarP(&output, "output", "o", "sphere.obj", "Output OBJ path")
	return cmd
}

func cubeCmd() *cobra.Command {
	var (
		size   float64
		output string
	)
	cmd := &cobra.Command{
		Use:   "cube",
		Short: "Generate a cube mesh as OBJ",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := assetgen.NewCubeMesh(size)
			if err != nil {
				return err
			}
			return doc.SaveOBJ(output)
		},
	}
	cmd.Flags().Float64Var(&size, "size", 2.0, "Cube edge length")
	cmd.Flags().StringVarP(&output, "output", "o", "cube.obj", "Output OBJ path")
	return cmd
}

func textureCmd() *cobra.Command {
	var (
		textureType   string
		style         string
		width, height int
		seed          int64
		output        string
	)
	cmd := &cobra.Command{
		Use:   "texture",
		Short: "Generate a texture as PNG",
		RunE: func(cmd *cobra.Command, args []string) error {
			switch textureType {
			case "noise":
				tex, err := assetgen.NoiseTextureSeeded(width, height, seed)
				if err != nil {
					return err
				}
				return assetgen.SavePNG(output, tex)
			case "gradient":
				tex, err := assetgen.GradientTexture(width, height, style)
				if err != nil {
					return err
				}
				return assetgen.SavePNG(output, tex)
			case "pattern":
				tex, err := assetgen.PatternTexture(width, height, style)
				if err != nil {
					return err
				}
				return assetgen.SavePNG(output, tex)
			default:
				return fmt.Errorf("unsupported texture type %q (want noise, gradient or pattern)", textureType)
			}
		},
	}
	cmd.Flags().StringVar(&textureType, "type", "noise", "Texture type (noise, gradient, pattern)")
	cmd.Flags().StringVar(&style, "style", "", "Style keyword (sky, fire, water, brick, checker, ...)")
	cmd.Flags().IntVar(&width, "width", 512, "Texture width in pixels")
	cmd.Flags().IntVar(&height, "height", 512, "Texture height in pixels")
	cmd.Flags().Int64Var(&seed, "seed", assetgen.DefaultNoiseSeed, "Noise permutation seed")
	cmd.Flags().StringVarP(&output, "output", "o", "texture.png", "Output PNG path")
	return cmd
}

func materialCmd() *cobra.Command {
	var (
		prompt string
		output string
	)
	cmd := &cobra.Command{
		Use:   "material",
		Short: "Generate a material definition as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			return assetgen.MaterialFromPrompt(prompt).SaveJSON(output)
		},
	}
	cmd.Flags().StringVar(&prompt, "prompt", "", "Material prompt (metal, wood, plastic, glass, ...)")
	cmd.Flags().StringVarP(&output, "output", "o", "material.json", "Output JSON path")
	return cmd
}

func previewCmd() *cobra.Command {
	var (
		meshPath    string
		texturePath string
	)
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Show a generated mesh (and texture) in a window",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := assetgen.LoadOBJ(meshPath)
			if err != nil {
				return err
			}
			var tex image.Image
			if texturePath != "" {
				tex, err = assetgen.LoadPNG(texturePath)
				if err != nil {
					return err
				}
			}
			return assetgen.Preview(doc, tex)
		},
	}
	cmd.Flags().StringVar(&meshPath, "mesh", "", "OBJ file to display")
	cmd.Flags().StringVar(&texturePath, "texture", "", "PNG file to display behind the mesh")
	cmd.MarkFlagRequired("mesh")
	return cmd
}
