package particles

import (
	"image/color"
	"math"

	"github.com/iburimskiy/neural-canvas/internal/config"
	"github.com/iburimskiy/neural-canvas/internal/theme"
)

// Surface is a 2D drawing target sized to the viewport.
type Surface interface {
	Clear()
	FillCircle(x, y, r float64, c color.Color)
	StrokeLine(x1, y1, x2, y2 float64, c color.Color, width float64)
}

// Palette supplies the current accent color as a CSS hex string.
type Palette interface {
	Accent() string
}

var fallbackAccent = theme.MustHex(theme.DarkAccent)

// LineColor is the connection color for an opacity, clamped to [0, 1].
func LineColor(alpha float64) color.NRGBA {
	return color.NRGBA{R: 0, G: 243, B: 255, A: uint8(math.Round(clamp01(alpha) * 255))}
}

// Render draws the field onto s. It reads the accent once and leaves the
// particles untouched.
func Render(f *Field, s Surface, p Palette) {
	s.Clear()

	accent := fallbackAccent
	if p != nil {
		if c, err := theme.ParseHex(p.Accent()); err == nil {
			accent = c
		}
	}
	for _, pt := range f.Particles {
		s.FillCircle(pt.X, pt.Y, pt.Radius, accent)
	}

	limit := Threshold(f.Width, f.Height)
	ps := f.Particles
	for a := 0; a < len(ps); a++ {
		for b := a; b < len(ps); b++ {
			d := squaredDistance(ps[a], ps[b])
			if d < limit {
				s.StrokeLine(ps[a].X, ps[a].Y, ps[b].X, ps[b].Y, LineColor(LineAlpha(d)), config.LineWidth)
			}
		}
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
