package viewer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spacedemos/game"
)

// press simulates pressing and releasing in over two updates
func press(v *Viewer, in Input) {
	v.Update(in)
	v.Update(0)
}

func TestNew(t *testing.T) {
	v := New(1)
	assert.Equal(t, SimulationInProgress, v.State())
	assert.Equal(t, 3, v.Sides())
	assert.Equal(t, DefaultScale, v.Scale())
	assert.Zero(t, v.Restarts())

	colors := v.Colors()
	require.Len(t, colors, 5)
	assert.Equal(t, colors[1], colors[len(colors)-1])
	assert.Len(t, v.Polygon().Ring, 5)
}

func TestViewer_StepsToTerminalAndRestarts(t *testing.T) {
	v := New(1)
	for want := 4; want < TerminalSides; want++ {
		press(v, InputRight)
		require.Equal(t, want, v.Sides())
		require.Equal(t, SimulationInProgress, v.State())
	}

	v.Update(InputRight)
	assert.Equal(t, TerminalSides, v.Sides())
	assert.Equal(t, SimulationEnded, v.State())
	assert.Len(t, v.Colors(), TerminalSides+2)

	v.Update(0)
	assert.Equal(t, SimulationInProgress, v.State())
	assert.Equal(t, StartSides, v.Sides())
	assert.Equal(t, 1, v.Restarts())
}

func TestViewer_HeldKeyStepsOnce(t *testing.T) {
	v := New(1)
	v.Update(InputRight)
	v.Update(InputRight)
	v.Update(InputRight)
	assert.Equal(t, 4, v.Sides())
}

func TestViewer_LeftStopsAtStart(t *testing.T) {
	v := New(1)
	press(v, InputLeft)
	assert.Equal(t, StartSides, v.Sides())

	press(v, InputRight)
	press(v, InputRight)
	press(v, InputLeft)
	assert.Equal(t, 4, v.Sides())
}

func TestViewer_Zoom(t *testing.T) {
	v := New(1)
	press(v, InputZoomIn)
	assert.Equal(t, ZoomedInScale, v.Scale())
	assert.Equal(t, ZoomedInScale, v.Record().Scale)

	press(v, InputZoomOut)
	assert.Equal(t, DefaultScale, v.Scale())
}

func TestViewer_Restart(t *testing.T) {
	v := New(1)
	press(v, InputRight)
	press(v, InputZoomIn)

	press(v, InputRestart)
	assert.Equal(t, StartSides, v.Sides())
	assert.Equal(t, DefaultScale, v.Scale())
	assert.Equal(t, 1, v.Restarts())
}

func TestViewer_Record(t *testing.T) {
	v := New(1)
	r := v.Record()
	assert.Equal(t, game.KindPolygon, r.Kind)
	assert.Equal(t, game.Vec2{}, r.Position)
	assert.True(t, r.Contains(game.Vec2{}))
	assert.False(t, r.Contains(game.V2(0.3, 0)))
}

func TestViewer_ColorsInRange(t *testing.T) {
	v := New(8)
	for i := 0; i < 10; i++ {
		press(v, InputRight)
		for _, c := range v.Colors() {
			assert.GreaterOrEqual(t, c.R, 0.0)
			assert.Less(t, c.R, 1.0)
			assert.Equal(t, 1.0, c.A)
		}
	}
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "in progress", SimulationInProgress.String())
	assert.Equal(t, "ended", SimulationEnded.String())
}
