package assetgen

import (
	"image"
	"image/color"
	"strings"
)

// GradientTexture renders a vertical two-color gradient. The style string is
// matched by keyword: "sky", "fire" and "water" select fixed palettes, any
// other style falls back to gray-to-white.
func GradientTexture(width, height int, style string) (*image.NRGBA, error) {
	if err := checkDimensions(width, height); err != nil {
		return nil, err
	}

	top, bottom := gradientPalette(style)
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		ratio := float64(y) / float64(height)
		c := color.NRGBA{
			R: lerpByte(top.R, bottom.R, ratio),
			G: lerpByte(top.G, bottom.G, ratio),
			B: lerpByte(top.B, bottom.B, ratio),
			A: 255,
		}
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img, nil
}

func gradientPalette(style string) (top, bottom color.NRGBA) {
	s := strings.ToLower(style)
	switch {
	case strings.Contains(s, "sky"):
		return color.NRGBA{135, 206, 235, 255}, color.NRGBA{70, 130, 180, 255}
	case strings.Contains(s, "fire"):
		return color.NRGBA{255, 0, 0, 255}, color.NRGBA{255, 255, 0, 255}
	case strings.Contains(s, "water"):
		return color.NRGBA{0, 0, 139, 255}, color.NRGBA{173, 216, 230, 255}
	default:
		return color.NRGBA{128, 128, 128, 255}, color.NRGBA{255, 255, 255, 255}
	}
}

func lerpByte(a, b uint8, t float64) uint8 {
	return uint8(float64(a)*(1-t) + float64(b)*t)
}
