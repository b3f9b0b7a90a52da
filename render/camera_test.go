package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"spacedemos/game"
)

func TestCamera_WorldToScreen(t *testing.T) {
	cam := NewCamera(800, 600)

	tests := []struct {
		name   string
		world  game.Vec2
		sx, sy float64
	}{
		{"origin is the center", game.V2(0, 0), 400, 300},
		{"up is up", game.V2(0, 1), 400, 0},
		{"right edge", game.V2(1, 0), 700, 300},
		{"bottom left", game.V2(-1, -1), 100, 600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := cam.WorldToScreen(tt.world)
			assert.InDelta(t, tt.sx, x, 1e-9)
			assert.InDelta(t, tt.sy, y, 1e-9)
		})
	}
}

func TestCamera_RoundTrip(t *testing.T) {
	cam := &Camera{Width: 120, Height: 40, Zoom: 0.5, Aspect: 2}
	for _, p := range []game.Vec2{{X: 0, Y: 0}, {X: 0.3, Y: -0.8}, {X: -1, Y: 1}, {X: 2, Y: 3}} {
		sx, sy := cam.WorldToScreen(p)
		got := cam.ScreenToWorld(sx, sy)
		assert.True(t, got.Approx(p, 1e-9), "p=%v got=%v", p, got)
	}
}

func TestCamera_Aspect(t *testing.T) {
	cam := &Camera{Width: 80, Height: 40, Zoom: 1, Aspect: 2}
	assert.InDelta(t, 40.0, cam.PixelsPerUnit(), 1e-9)

	_, top := cam.WorldToScreen(game.V2(0, 1))
	assert.InDelta(t, 0.0, top, 1e-9, "unit square fills the rows")

	right, _ := cam.WorldToScreen(game.V2(1, 0))
	assert.InDelta(t, 80.0, right, 1e-9)
}

func TestCamera_Zoom(t *testing.T) {
	cam := NewCamera(400, 400)
	cam.Zoom = 0.25
	x, _ := cam.WorldToScreen(game.V2(1, 0))
	assert.InDelta(t, 250.0, x, 1e-9)
}

func TestInvertSingular(t *testing.T) {
	cam := &Camera{Width: 100, Height: 100, Zoom: 0, Aspect: 1}
	assert.Equal(t, game.Vec2{}, cam.ScreenToWorld(10, 10))
}
