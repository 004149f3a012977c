// Package effects computes the page's motion effects: card tilt, scroll
// reveal and scroll progress.
package effects

import "math"

const (
	MaxTilt     = 10.0 // degrees
	HoverScale  = 1.05
	Perspective = 1000.0
)

// Rect is an axis aligned box in screen pixels.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether (px, py) lies inside r.
func (r Rect) Contains(px, py float64) bool {
	return px >= r.X && px <= r.X+r.W && py >= r.Y && py <= r.Y+r.H
}

// Point is a projected screen position.
type Point struct {
	X, Y float64
}

// Transform is a card's rotation in degrees plus a uniform scale.
type Transform struct {
	RotateX, RotateY float64
	Scale            float64
}

// Rest is the transform of a card the cursor is not over.
var Rest = Transform{Scale: 1}

// Tilt returns the transform for a cursor at (px, py) over r. The card leans
// toward the cursor by up to MaxTilt degrees on each axis.
func Tilt(r Rect, px, py float64) Transform {
	cx, cy := r.W/2, r.H/2
	if cx == 0 || cy == 0 {
		return Rest
	}
	x, y := px-r.X, py-r.Y
	return Transform{
		RotateX: ((y - cy) / cy) * -MaxTilt,
		RotateY: ((x - cx) / cx) * MaxTilt,
		Scale:   HoverScale,
	}
}

// Project maps the corners of r through t with a perspective camera at
// distance perspective. Corners are returned clockwise from the top left.
func Project(r Rect, t Transform, perspective float64) [4]Point {
	cx, cy := r.X+r.W/2, r.Y+r.H/2
	hw, hh := r.W/2*t.Scale, r.H/2*t.Scale
	ax := t.RotateX * math.Pi / 180
	ay := t.RotateY * math.Pi / 180

	corners := [4][2]float64{{-hw, -hh}, {hw, -hh}, {hw, hh}, {-hw, hh}}
	var out [4]Point
	for i, c := range corners {
		x, y, z := c[0], c[1], 0.0
		// rotateY, then rotateX; z points toward the viewer.
		x, z = x*math.Cos(ay)+z*math.Sin(ay), -x*math.Sin(ay)+z*math.Cos(ay)
		y, z = y*math.Cos(ax)-z*math.Sin(ax), y*math.Sin(ax)+z*math.Cos(ax)
		f := 1.0
		if perspective > 0 {
			f = perspective / (perspective - z)
		}
		out[i] = Point{X: cx + x*f, Y: cy + y*f}
	}
	return out
}
