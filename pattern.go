package assetgen

import (
	"image"
	"image/color"
	"image/draw"
	"strings"
)

var (
	brickFill    = color.NRGBA{139, 69, 19, 255}
	brickOutline = color.NRGBA{101, 67, 33, 255}
)

// PatternTexture renders a tiled pattern on a white canvas. "brick" and
// "checker" keywords in the style select the pattern; any other style
// returns the plain white canvas.
func PatternTexture(width, height int, style string) (*image.NRGBA, error) {
	if err := checkDimensions(width, height); err != nil {
		return nil, err
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.NRGBA{255, 255, 255, 255}), image.Point{}, draw.Src)

	s := strings.ToLower(style)
	switch {
	case strings.Contains(s, "brick"):
		drawBricks(img, width, height)
	case strings.Contains(s, "checker"):
		drawChecker(img, width, height)
	}
	return img, nil
}

// drawBricks lays bricks of width/8 by height/4, offsetting every other row
// by half a brick.
func drawBricks(img *image.NRGBA, width, height int) {
	brickW := clamp(width/8, 1, width)
	brickH := clamp(height/4, 1, height)

	for y := 0; y < height; y += brickH {
		offset := 0
		if (y/brickH)%2 == 1 {
			offset = brickW / 2
		}
		for x := 0; x < width; x += brickW {
			fillBrick(img, x+offset, y, brickW, brickH, width, height)
		}
	}
}

func fillBrick(img *image.NRGBA, x0, y0, brickW, brickH, width, height int) {
	if x0 >= width {
		return
	}
	x1 := clamp(x0+brickW, 0, width)
	y1 := clamp(y0+brickH, 0, height)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c := brickFill
			if x == x0 || x == x1-1 || y == y0 || y == y1-1 {
				c = brickOutline
			}
			img.SetNRGBA(x, y, c)
		}
	}
}

// drawChecker blacks out every other width/8 square.
func drawChecker(img *image.NRGBA, width, height int) {
	square := clamp(width/8, 1, width)
	black := color.NRGBA{0, 0, 0, 255}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if (x/square+y/square)%2 == 0 {
				img.SetNRGBA(x, y, black)
			}
		}
	}
}
