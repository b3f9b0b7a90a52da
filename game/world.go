package game

// World is the square toroidal domain [-Bound, Bound] x [-Bound, Bound]
type World struct {
	Bound float64
}

// NewWorld creates a world with the given half-extent
func NewWorld(bound float64) World {
	return World{Bound: bound}
}

// Wrap moves a position that left the domain back in from the opposite edge
func (w World) Wrap(p Vec2) Vec2 {
	return Wrap(p, w.Bound)
}

// Contains reports whether p lies inside the domain, edges included
func (w World) Contains(p Vec2) bool {
	return InBounds(p, w.Bound)
}

// Tiles returns p translated by every offset in {-2b, 0, 2b}^2.
// Drawing all nine copies makes shapes straddling an edge show on both sides.
func (w World) Tiles(p Vec2) [9]Vec2 {
	var tiles [9]Vec2
	span := 2 * w.Bound
	n := 0
	for _, dy := range [3]float64{-span, 0, span} {
		for _, dx := range [3]float64{-span, 0, span} {
			tiles[n] = Vec2{X: p.X + dx, Y: p.Y + dy}
			n++
		}
	}
	return tiles
}

// Wrap applies a single toroidal correction per axis.
// Displacements per step must stay under 2*bound.
func Wrap(p Vec2, bound float64) Vec2 {
	return Vec2{X: wrapAxis(p.X, bound), Y: wrapAxis(p.Y, bound)}
}

func wrapAxis(v, bound float64) float64 {
	if v < -bound {
		v += 2 * bound
	}
	if v > bound {
		v -= 2 * bound
	}
	return v
}

// InBounds reports whether both coordinates of p are within [-bound, bound]
func InBounds(p Vec2, bound float64) bool {
	return p.X >= -bound && p.X <= bound && p.Y >= -bound && p.Y <= bound
}
