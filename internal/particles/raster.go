package particles

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

const circleSegments = 24

// RasterSurface draws onto an in-memory RGBA image. It backs the headless
// renderer and needs no display.
type RasterSurface struct {
	img        *image.RGBA
	background color.Color
	z          *vector.Rasterizer
}

// NewRasterSurface returns a w by h surface cleared to background.
func NewRasterSurface(w, h int, background color.Color) *RasterSurface {
	s := &RasterSurface{
		img:        image.NewRGBA(image.Rect(0, 0, w, h)),
		background: background,
		z:          vector.NewRasterizer(w, h),
	}
	s.Clear()
	return s
}

// Image returns the backing image.
func (s *RasterSurface) Image() *image.RGBA { return s.img }

func (s *RasterSurface) Clear() {
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(s.background), image.Point{}, draw.Src)
}

func (s *RasterSurface) FillCircle(x, y, r float64, c color.Color) {
	if r <= 0 {
		return
	}
	s.begin()
	for i := 0; i <= circleSegments; i++ {
		a := 2 * math.Pi * float64(i) / circleSegments
		px, py := s.clamp(x+r*math.Cos(a), y+r*math.Sin(a))
		if i == 0 {
			s.z.MoveTo(px, py)
		} else {
			s.z.LineTo(px, py)
		}
	}
	s.finish(c)
}

func (s *RasterSurface) StrokeLine(x1, y1, x2, y2 float64, c color.Color, width float64) {
	dx, dy := x2-x1, y2-y1
	length := math.Hypot(dx, dy)
	if length == 0 || width <= 0 {
		return
	}
	// Offset both endpoints along the segment normal to build a quad.
	nx, ny := -dy/length*width/2, dx/length*width/2
	s.begin()
	s.z.MoveTo(s.clamp(x1+nx, y1+ny))
	s.z.LineTo(s.clamp(x2+nx, y2+ny))
	s.z.LineTo(s.clamp(x2-nx, y2-ny))
	s.z.LineTo(s.clamp(x1-nx, y1-ny))
	s.finish(c)
}

func (s *RasterSurface) begin() {
	b := s.img.Bounds()
	s.z.Reset(b.Dx(), b.Dy())
}

func (s *RasterSurface) finish(c color.Color) {
	s.z.ClosePath()
	s.z.Draw(s.img, s.img.Bounds(), image.NewUniform(c), image.Point{})
}

func (s *RasterSurface) clamp(x, y float64) (float32, float32) {
	b := s.img.Bounds()
	x = math.Max(0, math.Min(x, float64(b.Dx())))
	y = math.Max(0, math.Min(y, float64(b.Dy())))
	return float32(x), float32(y)
}
