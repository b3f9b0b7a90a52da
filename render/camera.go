// Package render turns simulation draw records into pixels and terminal cells.
package render

import (
	"math"

	"golang.org/x/image/math/f64"

	"spacedemos/game"
)

// Camera maps the world's [-1, 1] square onto a viewport. World +Y points up,
// screen +Y points down.
type Camera struct {
	Width  float64 // Viewport width in pixels or cells
	Height float64 // Viewport height in pixels or cells
	Zoom   float64 // 1 fits the unit square into the shorter side

	// Aspect is the height of one viewport unit divided by its width.
	// 1 for pixels, about 2 for terminal cells.
	Aspect float64
}

// NewCamera creates a camera for a square-pixel viewport
func NewCamera(width, height float64) *Camera {
	return &Camera{
		Width:  width,
		Height: height,
		Zoom:   1.0,
		Aspect: 1.0,
	}
}

// Matrix returns the world to screen transform
func (c *Camera) Matrix() f64.Aff3 {
	aspect := c.Aspect
	if aspect <= 0 {
		aspect = 1
	}
	s := c.Zoom * math.Min(c.Width, c.Height*aspect) / 2
	return f64.Aff3{
		s, 0, c.Width / 2,
		0, -s / aspect, c.Height / 2,
	}
}

// WorldToScreen converts a world position to screen coordinates
func (c *Camera) WorldToScreen(p game.Vec2) (float64, float64) {
	return apply(c.Matrix(), p.X, p.Y)
}

// ScreenToWorld converts screen coordinates to a world position
func (c *Camera) ScreenToWorld(sx, sy float64) game.Vec2 {
	x, y := apply(invert(c.Matrix()), sx, sy)
	return game.V2(x, y)
}

// PixelsPerUnit returns how many horizontal screen units one world unit spans
func (c *Camera) PixelsPerUnit() float64 {
	return c.Matrix()[0]
}

func apply(m f64.Aff3, x, y float64) (float64, float64) {
	return m[0]*x + m[1]*y + m[2], m[3]*x + m[4]*y + m[5]
}

// invert returns the inverse of an affine transform; singular transforms map everything to the origin
func invert(m f64.Aff3) f64.Aff3 {
	det := m[0]*m[4] - m[1]*m[3]
	if det == 0 {
		return f64.Aff3{}
	}
	a := m[4] / det
	b := -m[1] / det
	d := -m[3] / det
	e := m[0] / det
	return f64.Aff3{
		a, b, -(a*m[2] + b*m[5]),
		d, e, -(d*m[2] + e*m[5]),
	}
}
