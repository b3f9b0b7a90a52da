package game

import (
	"image/color"
	"math"
)

// Color is a linear RGBA color with components in [0, 1]
type Color struct {
	R, G, B, A float64
}

// White is used for the ship and bullets
var White = Color{R: 1, G: 1, B: 1, A: 1}

// Gray returns an opaque grayscale color
func Gray(v float64) Color {
	return Color{R: v, G: v, B: v, A: 1}
}

// NRGBA converts c to an 8-bit color for image and windowing APIs
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: to8(c.R), G: to8(c.G), B: to8(c.B), A: to8(c.A)}
}

func to8(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

// EntityKind tells hosts what a draw record represents
type EntityKind int

const (
	KindShip EntityKind = iota
	KindAsteroid
	KindBullet
	KindPolygon
)

func (k EntityKind) String() string {
	switch k {
	case KindShip:
		return "ship"
	case KindAsteroid:
		return "asteroid"
	case KindBullet:
		return "bullet"
	case KindPolygon:
		return "polygon"
	default:
		return "unknown"
	}
}

// DrawRecord is everything a host needs to draw one entity.
// Ring is a triangle fan in local space and is shared; treat it as read-only.
type DrawRecord struct {
	ID       EntityID
	Kind     EntityKind
	Position Vec2
	Rotation float64
	Scale    float64
	Color    Color
	Ring     []Vec2
}

// ToWorld transforms a local-space vertex: scale, then rotate, then translate
func (r DrawRecord) ToWorld(local Vec2) Vec2 {
	return local.Scale(r.Scale).Rotate(r.Rotation).Add(r.Position)
}

// ToLocal is the inverse of ToWorld
func (r DrawRecord) ToLocal(world Vec2) Vec2 {
	if r.Scale == 0 {
		return Vec2{X: math.Inf(1), Y: math.Inf(1)}
	}
	return world.Sub(r.Position).Rotate(-r.Rotation).Scale(1 / r.Scale)
}

// WorldRing returns the fan vertices transformed to world space
func (r DrawRecord) WorldRing() []Vec2 {
	out := make([]Vec2, len(r.Ring))
	for i, v := range r.Ring {
		out[i] = r.ToWorld(v)
	}
	return out
}

// Contains reports whether the world-space point is covered by the record's fan
func (r DrawRecord) Contains(world Vec2) bool {
	if r.Scale == 0 {
		return false
	}
	return fanContains(r.Ring, r.ToLocal(world))
}

// Translated returns a copy of r moved by offset, for tiled drawing
func (r DrawRecord) Translated(offset Vec2) DrawRecord {
	r.Position = r.Position.Add(offset)
	return r
}
