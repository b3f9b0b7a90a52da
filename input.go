package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"spacedemos/game"
)

// readInput maps the keyboard to simulation input flags
func readInput() game.Input {
	var in game.Input
	in = in.With(game.InputThrust, ebiten.IsKeyPressed(ebiten.KeyUp) || ebiten.IsKeyPressed(ebiten.KeyW))
	in = in.With(game.InputTurnLeft, ebiten.IsKeyPressed(ebiten.KeyLeft) || ebiten.IsKeyPressed(ebiten.KeyA))
	in = in.With(game.InputTurnRight, ebiten.IsKeyPressed(ebiten.KeyRight) || ebiten.IsKeyPressed(ebiten.KeyD))
	in = in.With(game.InputFire, ebiten.IsKeyPressed(ebiten.KeySpace))
	in = in.With(game.InputRestart, ebiten.IsKeyPressed(ebiten.KeyR))
	return in
}

// handleWindowKeys toggles fullscreen on Alt+Enter and the HUD on H
func (a *app) handleWindowKeys() {
	altPressed := ebiten.IsKeyPressed(ebiten.KeyAlt)
	altEnterPressed := altPressed && ebiten.IsKeyPressed(ebiten.KeyEnter)
	if altEnterPressed && !a.prevAltEnter {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	a.prevAltEnter = altEnterPressed

	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		a.showHUD = !a.showHUD
	}
}
