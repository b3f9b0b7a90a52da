package main

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"spacedemos/game"
	"spacedemos/render"
	"spacedemos/render/screen"
)

// app adapts the simulation to ebiten's Game interface
type app struct {
	sim      *game.Simulation
	renderer *screen.Renderer

	lastUpdate   time.Time
	prevAltEnter bool
	showHUD      bool
}

func newApp(sim *game.Simulation) *app {
	return &app{
		sim:        sim,
		renderer:   screen.NewRenderer(screenWidth, screenHeight),
		lastUpdate: time.Now(),
		showHUD:    true,
	}
}

// Update advances the simulation by the wall-clock time since the last tick
func (a *app) Update() error {
	now := time.Now()
	dt := now.Sub(a.lastUpdate).Seconds()
	a.lastUpdate = now

	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	a.handleWindowKeys()

	a.sim.Update(dt, readInput())
	return nil
}

// Draw renders the world tiled so wrapping shapes show on both edges
func (a *app) Draw(dst *ebiten.Image) {
	dst.Fill(color.Black)
	a.renderer.DrawRecords(dst, a.sim.RenderState(), a.sim.World().Bound)

	if a.showHUD {
		screen.DrawLines(dst, render.HUDLines(a.sim.Stats()), 8, 8)
	}
}

// Layout follows the window size and keeps the camera in sync
func (a *app) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.renderer.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
