// Package viewer steps a regular polygon from a triangle up to an icosagon
// and restarts once the largest polygon has been shown.
package viewer

import (
	"math/rand/v2"

	"spacedemos/game"
)

// State is the viewer's simulation state
type State int

const (
	SimulationInProgress State = iota
	SimulationEnded
)

func (s State) String() string {
	if s == SimulationEnded {
		return "ended"
	}
	return "in progress"
}

// Input is the set of viewer controls held during a frame
type Input uint8

const (
	InputRight Input = 1 << iota
	InputLeft
	InputRestart
	InputZoomIn
	InputZoomOut
)

// Has reports whether every flag in f is set
func (in Input) Has(f Input) bool {
	return in&f == f
}

const (
	// StartSides is the side count after every restart
	StartSides = game.MinPolygonSides

	// TerminalSides ends the simulation when reached
	TerminalSides = game.MaxPolygonSides

	DefaultScale  = 0.25
	ZoomedInScale = 0.5
)

// Viewer holds the polygon viewer state
type Viewer struct {
	rng      *rand.Rand
	state    State
	sides    int
	scale    float64
	polygon  game.Polygon
	colors   []game.Color
	prev     Input
	restarts int
}

// New creates a viewer showing a triangle
func New(seed uint64) *Viewer {
	v := &Viewer{rng: game.NewRand(seed)}
	v.restart()
	v.restarts = 0
	return v
}

// Update applies newly pressed inputs. A viewer that ended on the previous
// update restarts instead.
func (v *Viewer) Update(in Input) {
	pressed := in &^ v.prev
	v.prev = in

	if v.state == SimulationEnded {
		v.restart()
		return
	}
	if pressed.Has(InputRestart) {
		v.restart()
		return
	}

	if pressed.Has(InputRight) && v.sides < TerminalSides {
		v.setSides(v.sides + 1)
	}
	if pressed.Has(InputLeft) && v.sides > StartSides {
		v.setSides(v.sides - 1)
	}
	if pressed.Has(InputZoomIn) {
		v.scale = ZoomedInScale
	}
	if pressed.Has(InputZoomOut) {
		v.scale = DefaultScale
	}

	if v.sides >= TerminalSides {
		v.state = SimulationEnded
		game.Logger().Debug("viewer simulation ended", "sides", v.sides)
	}
}

func (v *Viewer) restart() {
	v.state = SimulationInProgress
	v.scale = DefaultScale
	v.setSides(StartSides)
	v.restarts++
	game.Logger().Debug("viewer restarted", "restarts", v.restarts)
}

func (v *Viewer) setSides(sides int) {
	// sides is kept within [StartSides, TerminalSides] by the callers
	polygon, err := game.RegularPolygon(sides)
	if err != nil {
		panic(err)
	}
	v.sides = sides
	v.polygon = polygon

	v.colors = make([]game.Color, len(polygon.Ring))
	for i := range v.colors[:len(v.colors)-1] {
		v.colors[i] = game.Color{R: v.rng.Float64(), G: v.rng.Float64(), B: v.rng.Float64(), A: 1}
	}
	v.colors[len(v.colors)-1] = v.colors[1]
}

// State returns the current simulation state
func (v *Viewer) State() State { return v.state }

// Sides returns the current side count
func (v *Viewer) Sides() int { return v.sides }

// Scale returns the current zoom scale
func (v *Viewer) Scale() float64 { return v.scale }

// Polygon returns the polygon on display
func (v *Viewer) Polygon() game.Polygon { return v.polygon }

// Colors returns one color per fan vertex; the last repeats vertex 1
func (v *Viewer) Colors() []game.Color { return v.colors }

// Restarts returns how many times the viewer restarted since New
func (v *Viewer) Restarts() int { return v.restarts }

// Record returns a draw record for the polygon centered at the origin
func (v *Viewer) Record() game.DrawRecord {
	return game.DrawRecord{
		Kind:  game.KindPolygon,
		Scale: v.scale,
		Color: game.White,
		Ring:  v.polygon.Ring,
	}
}
