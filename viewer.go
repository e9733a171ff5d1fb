package assetgen

import (
	"fmt"
	"image"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	previewWidth   = 640
	previewHeight  = 480
	cameraDistance = 300
	focalLength    = 400
	modelRadius    = 100
)

// Preview opens a window showing the mesh as a slowly rotating wireframe,
// with the texture (if any) drawn behind it. It blocks until the window is
// closed. This is a development aid; none of the generators depend on it.
func Preview(doc *MeshDocument, tex image.Image) error {
	v := &viewer{doc: doc, scale: 1}
	if tex != nil {
		v.tex = ebiten.NewImageFromImage(tex)
	}
	if doc != nil {
		var max float64
		for _, vert := range doc.Vertices {
			if l := vert.Position.Len(); l > max {
				max = l
			}
		}
		if max > 0 {
			v.scale = modelRadius / max
		}
	}

	ebiten.SetWindowSize(previewWidth, previewHeight)
	ebiten.SetWindowTitle("assetgen preview")
	if err := ebiten.RunGame(v); err != nil {
		return fmt.Errorf("preview window: %w", err)
	}
	return nil
}

type viewer struct {
	doc    *MeshDocument
	tex    *ebiten.Image
	scale  float64
	angleX float64
	angleY float64
}

func (v *viewer) Update() error {
	v.angleX += 0.005
	v.angleY += 0.009
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	if v.tex != nil {
		screen.DrawImage(v.tex, &ebiten.DrawImageOptions{})
	}
	if v.doc == nil {
		return
	}

	rot := mgl64.Rotate3DY(v.angleY).Mul3(mgl64.Rotate3DX(v.angleX))
	projected := make([][2]float32, len(v.doc.Vertices))
	visible := make([]bool, len(v.doc.Vertices))
	for i, vert := range v.doc.Vertices {
		p := rot.Mul3x1(vert.Position.Mul(v.scale))
		z := p.Z() + cameraDistance
		if z <= 1 {
			continue
		}
		visible[i] = true
		projected[i] = [2]float32{
			float32(focalLength*p.X()/z) + previewWidth/2,
			-float32(focalLength*p.Y()/z) + previewHeight/2,
		}
	}

	edge := color.RGBA{R: 90, G: 220, B: 120, A: 255}
	for _, f := range v.doc.Faces {
		corners := [3]int{f.A - 1, f.B - 1, f.C - 1}
		for i := 0; i < 3; i++ {
			a, b := corners[i], corners[(i+1)%3]
			if !visible[a] || !visible[b] {
				continue
			}
			vector.StrokeLine(screen,
				projected[a][0], projected[a][1],
				projected[b][0], projected[b][1],
				1, edge, false)
		}
	}
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return previewWidth, previewHeight
}
