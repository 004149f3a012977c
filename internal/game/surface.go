package game

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/neural-canvas/internal/effects"
)

// layerSurface lets the particle renderer draw on an ebiten image.
type layerSurface struct {
	img *ebiten.Image
}

func (s layerSurface) Clear() { s.img.Clear() }

func (s layerSurface) FillCircle(x, y, r float64, c color.Color) {
	vector.DrawFilledCircle(s.img, float32(x), float32(y), float32(r), c, true)
}

func (s layerSurface) StrokeLine(x1, y1, x2, y2 float64, c color.Color, width float64) {
	vector.StrokeLine(s.img, float32(x1), float32(y1), float32(x2), float32(y2), float32(width), c, true)
}

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// fillQuad fills the convex quad q with c.
func fillQuad(dst *ebiten.Image, q [4]effects.Point, c color.NRGBA) {
	r, g, b, a := float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255
	vs := make([]ebiten.Vertex, 0, 4)
	for _, p := range q {
		vs = append(vs, ebiten.Vertex{
			DstX: float32(p.X), DstY: float32(p.Y),
			SrcX: 1, SrcY: 1,
			ColorR: r, ColorG: g, ColorB: b, ColorA: a,
		})
	}
	dst.DrawTriangles(vs, []uint16{0, 1, 2, 0, 2, 3}, whiteSubImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// strokeQuad outlines q with c.
func strokeQuad(dst *ebiten.Image, q [4]effects.Point, width float32, c color.Color) {
	for i := range q {
		a, b := q[i], q[(i+1)%len(q)]
		vector.StrokeLine(dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), width, c, true)
	}
}
