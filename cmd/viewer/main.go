// Command viewer steps a vertex-colored regular polygon from 3 to 20 sides.
//
// Right and Left change the side count, Up and Down zoom, R restarts.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"spacedemos/game"
	"spacedemos/render/screen"
	"spacedemos/viewer"
)

const (
	screenWidth  = 640
	screenHeight = 640
)

type app struct {
	viewer   *viewer.Viewer
	renderer *screen.Renderer
}

func (a *app) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	a.viewer.Update(readInput())
	return nil
}

func (a *app) Draw(dst *ebiten.Image) {
	dst.Fill(color.Black)
	a.renderer.DrawFan(dst, a.viewer.Record(), a.viewer.Colors())

	ebitenutil.DebugPrint(dst, fmt.Sprintf("sides %d  zoom %.2f  %s  restarts %d",
		a.viewer.Sides(), a.viewer.Scale(), a.viewer.State(), a.viewer.Restarts()))
}

func (a *app) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.renderer.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func readInput() viewer.Input {
	var in viewer.Input
	if ebiten.IsKeyPressed(ebiten.KeyRight) {
		in |= viewer.InputRight
	}
	if ebiten.IsKeyPressed(ebiten.KeyLeft) {
		in |= viewer.InputLeft
	}
	if ebiten.IsKeyPressed(ebiten.KeyR) {
		in |= viewer.InputRestart
	}
	if ebiten.IsKeyPressed(ebiten.KeyUp) {
		in |= viewer.InputZoomIn
	}
	if ebiten.IsKeyPressed(ebiten.KeyDown) {
		in |= viewer.InputZoomOut
	}
	return in
}

func main() {
	seed := flag.Uint64("seed", 1, "seed for vertex colors")
	verbose := flag.Bool("v", false, "log debug events to stderr")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	game.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	a := &app{
		viewer:   viewer.New(*seed),
		renderer: screen.NewRenderer(screenWidth, screenHeight),
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Polygon Viewer")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(a); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
