package game

import "math"

// EntityID identifies an asteroid, bullet or ship within one simulation.
// Hosts may key render-side caches by it instead of by slice index.
type EntityID uint64

// InvalidEntityID marks an unset entity reference
const InvalidEntityID EntityID = 0

// idSource hands out monotonically increasing entity IDs
type idSource struct {
	next EntityID
}

func (s *idSource) nextID() EntityID {
	s.next++
	return s.next
}

// Body is the kinematic state shared by every entity kind
type Body struct {
	// Position in world coordinates
	Position Vec2

	// Rotation in radians, kept in [0, 2π)
	Rotation float64

	// LinearVelocity in world units per second
	LinearVelocity Vec2

	// AngularVelocity in radians per second
	AngularVelocity float64

	// Scale applied to the entity's unit-sized geometry
	Scale float64
}

// Integrate advances the body by dt seconds. Motion is measured relative to
// reference, so a body moving with the reference stays put.
func (b *Body) Integrate(dt float64, reference Vec2) {
	b.Position = b.Position.Add(b.LinearVelocity.Sub(reference).Scale(dt))
	b.Rotation = WrapAngle(b.Rotation + b.AngularVelocity*dt)
}

// ApplyImpulse adds a velocity delta
func (b *Body) ApplyImpulse(dv Vec2) {
	b.LinearVelocity = b.LinearVelocity.Add(dv)
}

// Forward returns the unit vector the body faces. Rotation 0 faces +Y.
func (b *Body) Forward() Vec2 {
	return Vec2{X: 0, Y: 1}.Rotate(b.Rotation)
}

// Right returns the unit vector to the body's right. Rotation 0 gives +X.
func (b *Body) Right() Vec2 {
	return Vec2{X: 1, Y: 0}.Rotate(b.Rotation)
}

// WrapAngle normalizes an angle to the range [0, 2π)
func WrapAngle(angle float64) float64 {
	const turn = 2 * math.Pi
	a := math.Mod(angle, turn)
	if a < 0 {
		a += turn
	}
	// Mod of a tiny negative value can round back up to a full turn
	if a >= turn {
		a = 0
	}
	return a
}
