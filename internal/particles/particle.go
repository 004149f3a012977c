// Package particles simulates and renders the neural network background: a
// field of bouncing points joined by faint lines when they are close.
package particles

import (
	"math"
	"math/rand"

	"github.com/iburimskiy/neural-canvas/internal/config"
)

// Particle is one animated point.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Radius float64
}

// Field is the particle collection for one viewport size.
type Field struct {
	Width, Height float64
	Particles     []Particle
}

// Count returns the number of particles a viewport of w by h holds.
func Count(w, h float64) int {
	if w <= 0 || h <= 0 {
		return 0
	}
	return int(math.Floor(w * h / config.ParticleArea))
}

// Initialize samples a fresh field for a w by h viewport.
func Initialize(w, h float64, rng *rand.Rand) *Field {
	n := Count(w, h)
	f := &Field{Width: w, Height: h, Particles: make([]Particle, n)}
	for i := range f.Particles {
		f.Particles[i] = Particle{
			X:      rng.Float64() * w,
			Y:      rng.Float64() * h,
			Radius: rng.Float64()*config.RadiusSpan + config.RadiusMin,
			VX:     rng.Float64()*config.SpeedSpan - config.SpeedSpan/2,
			VY:     rng.Float64()*config.SpeedSpan - config.SpeedSpan/2,
		}
	}
	return f
}

// Advance moves every particle by its velocity and reflects the velocity on
// any axis that left the viewport. Positions are not clamped.
func Advance(f *Field) {
	for i := range f.Particles {
		p := &f.Particles[i]
		p.X += p.VX
		p.Y += p.VY
		if p.X > f.Width || p.X < 0 {
			p.VX = -p.VX
		}
		if p.Y > f.Height || p.Y < 0 {
			p.VY = -p.VY
		}
	}
}

// Threshold is the squared distance below which two particles are connected.
func Threshold(w, h float64) float64 {
	return (w / config.ConnectionDivisor) * (h / config.ConnectionDivisor)
}

// LineAlpha is the unclamped line opacity for squared distance d. Pairs near
// the threshold of a large viewport go negative.
func LineAlpha(d float64) float64 {
	return (1 - d/config.LineFalloff) * config.LineOpacity
}

func squaredDistance(a, b Particle) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}
