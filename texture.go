package assetgen

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/aquilax/go-perlin"
)

// Noise field constants. The 0.1 spatial frequency is what gives the
// generated textures their characteristic grain; changing it changes every
// texture the engine has ever produced, so it stays a constant rather than
// a parameter. Alpha/beta/octaves follow the usual terrain-friendly
// go-perlin setup.
const (
	noiseFrequency = 0.1
	noiseAlpha     = 2.0
	noiseBeta      = 2.0
	noiseOctaves   = 3

	// DefaultNoiseSeed is the permutation table seed used when the caller
	// does not supply one. Identical seeds produce byte-identical textures.
	DefaultNoiseSeed int64 = 100
)

// NoiseTexture renders a grayscale Perlin noise texture using the default
// seed. The result is deterministic: the same dimensions always produce the
// same bytes.
func NoiseTexture(width, height int) (*image.NRGBA, error) {
	return NoiseTextureSeeded(width, height, DefaultNoiseSeed)
}

// NoiseTextureSeeded renders a grayscale Perlin noise texture from the given
// seed. Each pixel samples the noise field at (x, y) scaled by the fixed
// frequency, maps the [-1, 1] sample into [0, 255] and writes the same byte
// to all three color channels.
func NoiseTextureSeeded(width, height int, seed int64) (*image.NRGBA, error) {
	if err := checkDimensions(width, height); err != nil {
		return nil, err
	}

	noise := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, seed)
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			n := noise.Noise2D(float64(x)*noiseFrequency, float64(y)*noiseFrequency)
			v := uint8(clamp(int(math.Round((n+1.0)*0.5*255)), 0, 255))
			img.SetNRGBA(x, y, color.NRGBA{R: v, G: v, B: v, A: 255})
		}
	}
	return img, nil
}

func checkDimensions(width, height int) error {
	if width < 1 || height < 1 {
		return fmt.Errorf("%w: texture dimensions must be positive, got %dx%d", ErrInvalidArgument, width, height)
	}
	return nil
}

func clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
