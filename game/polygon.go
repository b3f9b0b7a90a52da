package game

import (
	"fmt"
	"math"
)

// Polygon side count limits
const (
	MinPolygonSides = 3
	MaxPolygonSides = 20
)

// RadiusRange bounds the per-vertex radius of a generated polygon
type RadiusRange struct {
	Min, Max float64
}

// FixedRadius produces unjittered polygons with every vertex on the unit circle
var FixedRadius = RadiusRange{Min: 1.0, Max: 1.0}

// Polygon is a star-shaped vertex ring laid out as a triangle fan:
// Ring[0] is the center, Ring[1..Sides] the boundary, Ring[Sides+1] repeats Ring[1].
type Polygon struct {
	Sides int
	Ring  []Vec2

	// Radii holds the sampled radius of each boundary vertex
	Radii []float64
}

// GeneratePolygon builds a polygon with the given number of sides.
// Each boundary vertex radius is sampled uniformly from radius; when
// radius.Min == radius.Max no random draws are made and rng may be nil.
func GeneratePolygon(sides int, radius RadiusRange, rng Rand) (Polygon, error) {
	if sides < MinPolygonSides || sides > MaxPolygonSides {
		return Polygon{}, fmt.Errorf("%w: %d not in [%d, %d]", ErrInvalidSides, sides, MinPolygonSides, MaxPolygonSides)
	}
	if radius.Min <= 0 || radius.Max < radius.Min {
		return Polygon{}, fmt.Errorf("%w: [%v, %v]", ErrInvalidRadius, radius.Min, radius.Max)
	}
	jitter := radius.Max > radius.Min
	if jitter && rng == nil {
		return Polygon{}, fmt.Errorf("%w: jittered radius needs a random source", ErrInvalidRadius)
	}

	ring := make([]Vec2, 0, sides+2)
	radii := make([]float64, 0, sides)
	ring = append(ring, Vec2{})

	step := 2 * math.Pi / float64(sides)
	for i := 0; i < sides; i++ {
		r := radius.Min
		if jitter {
			r = uniform(rng, radius.Min, radius.Max)
		}
		sinA, cosA := math.Sincos(float64(i) * step)
		ring = append(ring, Vec2{X: r * cosA, Y: r * sinA})
		radii = append(radii, r)
	}
	ring = append(ring, ring[1])

	return Polygon{Sides: sides, Ring: ring, Radii: radii}, nil
}

// RegularPolygon builds an unjittered polygon of unit radius
func RegularPolygon(sides int) (Polygon, error) {
	return GeneratePolygon(sides, FixedRadius, nil)
}

// mustRegularPolygon is for package-level templates with constant side counts
func mustRegularPolygon(sides int) Polygon {
	p, err := RegularPolygon(sides)
	if err != nil {
		panic(err)
	}
	return p
}

// VertexCount returns the number of fan vertices (Sides + 2)
func (p Polygon) VertexCount() int {
	return len(p.Ring)
}

// FanIndices expands the fan into a triangle list for renderers without a fan primitive
func (p Polygon) FanIndices() []uint16 {
	return AppendFanIndices(make([]uint16, 0, 3*p.Sides), len(p.Ring))
}

// AppendFanIndices appends the triangle list of a fan with vertexCount vertices to dst
func AppendFanIndices(dst []uint16, vertexCount int) []uint16 {
	for i := 1; i < vertexCount-1; i++ {
		dst = append(dst, 0, uint16(i), uint16(i+1))
	}
	return dst
}

// Contains reports whether the local-space point lies inside the fan (edges inclusive)
func (p Polygon) Contains(pt Vec2) bool {
	return fanContains(p.Ring, pt)
}

func fanContains(ring []Vec2, pt Vec2) bool {
	if len(ring) < 4 {
		return false
	}
	c := ring[0]
	for i := 1; i < len(ring)-1; i++ {
		if triangleContains(c, ring[i], ring[i+1], pt) {
			return true
		}
	}
	return false
}

func triangleContains(a, b, c, p Vec2) bool {
	d1 := cross(a, b, p)
	d2 := cross(b, c, p)
	d3 := cross(c, a, p)
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

func cross(a, b, p Vec2) float64 {
	return (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
}
