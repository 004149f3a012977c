package particles

import (
	"context"
	"log"
	"math/rand"
	"sync/atomic"
	"time"
)

// Simulator owns the active field and drives advance and render.
type Simulator struct {
	field   atomic.Pointer[Field]
	rng     *rand.Rand
	palette Palette
}

// NewSimulator creates a simulator with a field for a w by h viewport. rng
// seeds every field the simulator builds.
func NewSimulator(w, h float64, rng *rand.Rand, p Palette) *Simulator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	s := &Simulator{rng: rng, palette: p}
	s.field.Store(Initialize(w, h, rng))
	return s
}

// Field returns the current field.
func (s *Simulator) Field() *Field {
	return s.field.Load()
}

// Resize discards the field and swaps in a freshly sampled one.
func (s *Simulator) Resize(w, h float64) {
	s.field.Store(Initialize(w, h, s.rng))
}

// Advance moves the current field one frame.
func (s *Simulator) Advance() {
	Advance(s.field.Load())
}

// Render draws the current field onto surface.
func (s *Simulator) Render(surface Surface) {
	Render(s.field.Load(), surface, s.palette)
}

// Step advances then renders one frame.
func (s *Simulator) Step(surface Surface) {
	f := s.field.Load()
	Advance(f)
	Render(f, surface, s.palette)
}

// Run steps once per value received on frames until ctx is done or frames is
// closed. A nil surface disables the animation entirely.
func (s *Simulator) Run(ctx context.Context, frames <-chan time.Time, surface Surface) error {
	if surface == nil {
		log.Printf("particles: no drawing surface, animation disabled")
		return nil
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case _, ok := <-frames:
			if !ok {
				return nil
			}
			s.Step(surface)
		}
	}
}
