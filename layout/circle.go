// SPDX-License-Identifier: MIT
//
// File: circle.go
// Role: evenly spaced circular placement.

package layout

import "math"

const (
	// DefaultWidth and DefaultHeight match the initial window canvas.
	DefaultWidth  = 800.0
	DefaultHeight = 600.0

	// DefaultPadding keeps node discs clear of the viewport border.
	DefaultPadding = 50.0
)

// Point is a 2D position in canvas units.
type Point struct {
	X float64
	Y float64
}

// Viewport is the drawable area a layout fits into.
type Viewport struct {
	Width   float64
	Height  float64
	Padding float64
}

// DefaultViewport returns an 800x600 viewport with 50 units of padding.
func DefaultViewport() Viewport {
	return Viewport{Width: DefaultWidth, Height: DefaultHeight, Padding: DefaultPadding}
}

// Center returns the midpoint of the viewport.
func (vp Viewport) Center() Point {
	return Point{X: vp.Width / 2, Y: vp.Height / 2}
}

// Radius returns min(Width, Height)/2 - Padding, clamped at 0 so a viewport
// smaller than twice its padding collapses onto the centre instead of
// mirroring the circle.
func (vp Viewport) Radius() float64 {
	r := math.Min(vp.Width, vp.Height)/2 - vp.Padding
	if r < 0 {
		return 0
	}

	return r
}

// Circle returns n positions evenly spaced on the viewport's circle.
// Node k sits at angle k·2π/n, starting at angle 0 (due east of the centre).
// n <= 0 yields an empty, non-nil slice.
//
// Complexity: O(n).
func Circle(n int, vp Viewport) []Point {
	if n <= 0 {
		return []Point{}
	}
	var (
		c     = vp.Center()
		r     = vp.Radius()
		step  = 2 * math.Pi / float64(n)
		pts   = make([]Point, n)
		k     int
		theta float64
	)
	for k = 0; k < n; k++ {
		theta = float64(k) * step
		pts[k] = Point{X: c.X + r*math.Cos(theta), Y: c.Y + r*math.Sin(theta)}
	}

	return pts
}
